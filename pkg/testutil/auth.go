package testutil

import (
	"os"
	"testing"
)

func maskSecret(s string) string {
	if len(s) <= 4 {
		return "****"
	}
	return s[:4] + "******"
}

// IntegrationTestConfigured loads PREFIX_API_KEY and PREFIX_API_SECRET from
// the environment. Live tests additionally require TEST_PREFIX=1 so they
// never run by accident against a funded account.
func IntegrationTestConfigured(t *testing.T, prefix string) (key, secret string, ok bool) {
	var hasKey, hasSecret bool
	key, hasKey = os.LookupEnv(prefix + "_API_KEY")
	secret, hasSecret = os.LookupEnv(prefix + "_API_SECRET")
	ok = hasKey && hasSecret && os.Getenv("TEST_"+prefix) == "1"
	if ok {
		t.Logf("%s api integration test enabled, key = %s, secret = %s", prefix, maskSecret(key), maskSecret(secret))
	}

	return key, secret, ok
}
