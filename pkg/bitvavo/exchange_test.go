package bitvavo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tradeware/go-bitvavo/pkg/bitvavoapi"
	"github.com/tradeware/go-bitvavo/pkg/types"
)

func newTestExchange(handler http.Handler) (*Exchange, *httptest.Server) {
	server := httptest.NewServer(handler)
	client := bitvavoapi.NewClientWithHttpClient(server.URL, server.Client())
	client.Auth("AK", "SK")
	return NewWithClient(client), server
}

func TestExchange_QueryMarkets(t *testing.T) {
	ex, server := newTestExchange(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v2/markets", r.URL.Path)
		_, _ = w.Write([]byte(`[
			{"market":"BTC-EUR","status":"trading","base":"BTC","quote":"EUR","pricePrecision":5,"minOrderInBaseAsset":"0.0001","minOrderInQuoteAsset":"5"},
			{"market":"OLD-EUR","status":"halted","base":"OLD","quote":"EUR","pricePrecision":5,"minOrderInBaseAsset":"1","minOrderInQuoteAsset":"5"}
		]`))
	}))
	defer server.Close()

	markets, err := ex.QueryMarkets(context.Background())
	require.NoError(t, err)

	assert.True(t, markets.Has("BTC-EUR"))
	assert.False(t, markets.Has("OLD-EUR"), "halted markets are filtered out")
	assert.Equal(t, "EUR", markets["BTC-EUR"].QuoteCurrency)
}

func TestExchange_QueryTicker(t *testing.T) {
	ex, server := newTestExchange(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v2/ticker/24h", r.URL.Path)
		require.Equal(t, "BTC-EUR", r.URL.Query().Get("market"))
		_, _ = w.Write([]byte(`{"market":"BTC-EUR","open":"33000","high":"34500","low":"32900","last":"34012.5","volume":"120.5","volumeQuote":"4050000","bid":"34010","bidSize":"0.4","ask":"34015","askSize":"0.2","timestamp":1700000000000}`))
	}))
	defer server.Close()

	ticker, err := ex.QueryTicker(context.Background(), "BTC-EUR")
	require.NoError(t, err)

	assert.True(t, ticker.Last.Equal(decimal.RequireFromString("34012.5")))
	assert.True(t, ticker.Buy.Equal(decimal.RequireFromString("34010")))
	assert.Equal(t, int64(1700000000000), ticker.Time.UnixMilli())
}

func TestExchange_QueryAccountBalances(t *testing.T) {
	ex, server := newTestExchange(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v2/balance", r.URL.Path)
		require.NotEmpty(t, r.Header.Get("Bitvavo-Access-Signature"))
		_, _ = w.Write([]byte(`[
			{"symbol":"EUR","available":"1000.5","inOrder":"100"},
			{"symbol":"BTC","available":"0.5","inOrder":"0"}
		]`))
	}))
	defer server.Close()

	balances, err := ex.QueryAccountBalances(context.Background())
	require.NoError(t, err)

	assert.Len(t, balances, 2)
	assert.True(t, balances["EUR"].Total().Equal(decimal.RequireFromString("1100.5")))
	assert.True(t, balances["BTC"].Locked.IsZero())
}

func TestExchange_SubmitOrder(t *testing.T) {
	ex, server := newTestExchange(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v2/order", r.URL.Path)
		_, _ = w.Write([]byte(`{"orderId":"99c1c41d-ed1c-4ec5-8f3e-8b9bdbf6971f","market":"BTC-EUR","created":1700000000000,"updated":1700000000000,"status":"new","side":"buy","orderType":"limit","amount":"0.1","amountRemaining":"0.1","price":"30000","visible":true,"timeInForce":"GTC","postOnly":false}`))
	}))
	defer server.Close()

	order, err := ex.SubmitOrder(context.Background(), types.SubmitOrder{
		Symbol:   "BTC-EUR",
		Side:     types.SideTypeBuy,
		Type:     types.OrderTypeLimit,
		Quantity: decimal.RequireFromString("0.1"),
		Price:    decimal.NewFromInt(30000),
	})
	require.NoError(t, err)

	assert.Equal(t, "99c1c41d-ed1c-4ec5-8f3e-8b9bdbf6971f", order.OrderID)
	assert.Equal(t, types.OrderStatusNew, order.Status)
	assert.True(t, order.IsWorking())
}

func TestExchange_QueryKLines(t *testing.T) {
	ex, server := newTestExchange(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v2/BTC-EUR/candles", r.URL.Path)
		require.Equal(t, "1h", r.URL.Query().Get("interval"))
		_, _ = w.Write([]byte(`[[1700000000000,"34012","34100","33950","34050","12.5"]]`))
	}))
	defer server.Close()

	klines, err := ex.QueryKLines(context.Background(), "BTC-EUR", types.Interval1h, 0, nil, nil)
	require.NoError(t, err)

	require.Len(t, klines, 1)
	assert.Equal(t, types.Interval1h, klines[0].Interval)
	assert.Equal(t, types.SideTypeBuy, klines[0].Direction())

	_, err = ex.QueryKLines(context.Background(), "BTC-EUR", "7m", 0, nil, nil)
	assert.Error(t, err, "unsupported interval must be rejected before dispatch")
}
