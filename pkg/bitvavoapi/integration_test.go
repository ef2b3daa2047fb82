package bitvavoapi_test

import (
	"context"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tradeware/go-bitvavo/pkg/bitvavoapi"
	"github.com/tradeware/go-bitvavo/pkg/testutil"
)

func getTestClientOrSkip(t *testing.T) *bitvavoapi.RestClient {
	if b, _ := strconv.ParseBool(os.Getenv("CI")); b {
		t.Skip("skip test for CI")
	}

	key, secret, ok := testutil.IntegrationTestConfigured(t, "BITVAVO")
	if !ok {
		t.Skip("BITVAVO_* env vars are not configured")
		return nil
	}

	return bitvavoapi.NewClient().Auth(key, secret)
}

func TestClient(t *testing.T) {
	client := getTestClientOrSkip(t)
	ctx := context.Background()

	t.Run("GetTimeRequest", func(t *testing.T) {
		serverTime, err := client.NewGetTimeRequest().Do(ctx)
		assert.NoError(t, err)
		assert.WithinDuration(t, time.Now(), serverTime.Time.Time(), time.Minute)
	})

	t.Run("GetMarketsRequest", func(t *testing.T) {
		markets, err := client.NewGetMarketsRequest().Do(ctx)
		assert.NoError(t, err)
		assert.NotEmpty(t, markets)
		t.Logf("markets: %d", len(markets))
	})

	t.Run("GetOrderBookRequest", func(t *testing.T) {
		book, err := client.NewGetOrderBookRequest().Market("BTC-EUR").Depth(5).Do(ctx)
		assert.NoError(t, err)
		assert.LessOrEqual(t, len(book.Bids), 5)
		t.Logf("book: %+v", book)
	})

	t.Run("GetCandlesRequest", func(t *testing.T) {
		candles, err := client.NewGetCandlesRequest().
			Market("BTC-EUR").
			Interval(bitvavoapi.Interval1h).
			Limit(10).
			Do(ctx)
		assert.NoError(t, err)
		t.Logf("candles: %d", len(candles))
	})

	t.Run("GetBalanceRequest", func(t *testing.T) {
		balances, err := client.NewGetBalanceRequest().Do(ctx)
		assert.NoError(t, err)
		t.Logf("balances: %+v", balances)
	})

	t.Run("GetOpenOrdersRequest", func(t *testing.T) {
		orders, err := client.NewGetOpenOrdersRequest().Do(ctx)
		assert.NoError(t, err)
		t.Logf("open orders: %+v", orders)
	})
}
