package bitvavoapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(handler http.Handler) (*RestClient, *httptest.Server) {
	server := httptest.NewServer(handler)
	client := NewClientWithHttpClient(server.URL, server.Client())
	return client, server
}

func TestSign_Deterministic(t *testing.T) {
	payload := "1700000000000GET/v2/time"
	first := sign("SK", payload)
	second := sign("SK", payload)

	assert.Equal(t, first, second)
	assert.Len(t, first, 64)
	assert.Regexp(t, "^[0-9a-f]+$", first)
}

func TestSign_Sensitivity(t *testing.T) {
	base := sign("SK", "1700000000000GET/v2/time")

	// vary timestamp, method, path and body one at a time
	variants := []string{
		"1700000000001GET/v2/time",
		"1700000000000POST/v2/time",
		"1700000000000GET/v2/markets",
		"1700000000000GET/v2/time" + `{"a":1}`,
	}

	for _, v := range variants {
		assert.NotEqual(t, base, sign("SK", v), "payload %q", v)
	}

	assert.NotEqual(t, base, sign("other", "1700000000000GET/v2/time"))
}

func TestNewAuthenticatedRequest_Headers(t *testing.T) {
	client := NewClient().Auth("AK", "SK")

	req, err := client.NewAuthenticatedRequest(context.Background(), "GET", "/v2/balance", nil, nil)
	require.NoError(t, err)

	assert.Equal(t, "AK", req.Header.Get("Bitvavo-Access-Key"))
	assert.NotEmpty(t, req.Header.Get("Bitvavo-Access-Signature"))
	assert.Regexp(t, "^[0-9]{13}$", req.Header.Get("Bitvavo-Access-Timestamp"))
	assert.Equal(t, "10000", req.Header.Get("Bitvavo-Access-Window"))

	// the signature must be reproducible from the request itself
	ts := req.Header.Get("Bitvavo-Access-Timestamp")
	expected := sign("SK", ts+"GET"+"/v2/balance")
	assert.Equal(t, expected, req.Header.Get("Bitvavo-Access-Signature"))
}

func TestNewAuthenticatedRequest_SignsQueryAndBody(t *testing.T) {
	client := NewClient().Auth("AK", "SK")

	payload := map[string]interface{}{"market": "BTC-EUR"}
	req, err := client.NewAuthenticatedRequest(context.Background(), "POST", "/v2/order", nil, payload)
	require.NoError(t, err)

	ts := req.Header.Get("Bitvavo-Access-Timestamp")
	expected := sign("SK", ts+"POST"+"/v2/order"+`{"market":"BTC-EUR"}`)
	assert.Equal(t, expected, req.Header.Get("Bitvavo-Access-Signature"))
	assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
}

func TestNewAuthenticatedRequest_MissingCredentials(t *testing.T) {
	client := NewClient()

	_, err := client.NewAuthenticatedRequest(context.Background(), "GET", "/v2/account", nil, nil)
	assert.ErrorIs(t, err, ErrMissingAPIKey)

	client.Auth("AK", "")
	_, err = client.NewAuthenticatedRequest(context.Background(), "GET", "/v2/account", nil, nil)
	assert.ErrorIs(t, err, ErrMissingAPISecret)
}

func TestNewRequest_NoAuthHeaders(t *testing.T) {
	client := NewClient()

	req, err := client.NewRequest(context.Background(), "GET", "/v2/time", nil, nil)
	require.NoError(t, err)

	assert.Empty(t, req.Header.Get("Bitvavo-Access-Key"))
	assert.Empty(t, req.Header.Get("Bitvavo-Access-Signature"))
	assert.Empty(t, req.Header.Get("Bitvavo-Access-Timestamp"))
}

func TestQueryParamOmission(t *testing.T) {
	var rawQuery string
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	_, err := client.NewGetTradesRequest().Market("BTC-EUR").Limit(5).Do(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "limit=5", rawQuery)

	_, err = client.NewGetMarketsRequest().Do(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "", rawQuery)
}

func TestSendRequest_ErrorResponse(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"errorCode": 205, "error": "no active order"}`))
	}))
	defer server.Close()

	_, err := client.NewGetTimeRequest().Do(context.Background())
	require.Error(t, err)

	var errResponse *ErrorResponse
	require.True(t, errors.As(err, &errResponse))
	assert.Equal(t, 205, errResponse.Code)
	assert.Equal(t, "no active order", errResponse.Message)
}

func TestSendRequest_ErrorResponseOnStatus200(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"errorCode": 110, "error": "rate limit exceeded"}`))
	}))
	defer server.Close()

	_, err := client.NewGetTimeRequest().Do(context.Background())
	require.Error(t, err)

	var errResponse *ErrorResponse
	require.True(t, errors.As(err, &errResponse))
	assert.Equal(t, 110, errResponse.Code)
	assert.True(t, errResponse.IsRateLimit())
}

func TestSendRequest_StatusError(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`bad gateway`))
	}))
	defer server.Close()

	_, err := client.NewGetTimeRequest().Do(context.Background())
	require.Error(t, err)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusBadGateway, statusErr.StatusCode)
}

func TestClosedClient(t *testing.T) {
	var called bool
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client.Close()

	_, err := client.NewGetTimeRequest().Do(context.Background())
	assert.ErrorIs(t, err, ErrClientClosed)
	assert.False(t, called, "closed client must not issue network calls")

	// closing twice is fine
	client.Close()
}

func TestGetTime(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/time", r.URL.Path)
		_, _ = w.Write([]byte(`{"time": 1700000000000}`))
	}))
	defer server.Close()

	client.Auth("AK", "SK")

	serverTime, err := client.NewGetTimeRequest().Do(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1700000000000), serverTime.Time.Time().UnixMilli())
}

func TestSendRequest_CancelledContext(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.NewGetTimeRequest().Do(ctx)
	require.Error(t, err)

	var transportErr *TransportError
	assert.True(t, errors.As(err, &transportErr))
}
