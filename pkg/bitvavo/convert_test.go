package bitvavo

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tradeware/go-bitvavo/pkg/bitvavoapi"
	"github.com/tradeware/go-bitvavo/pkg/types"
)

func TestToGlobalMarket(t *testing.T) {
	m := bitvavoapi.Market{
		Market:               "BTC-EUR",
		Status:               bitvavoapi.MarketStatusTrading,
		Base:                 "BTC",
		Quote:                "EUR",
		PricePrecision:       5,
		MinOrderInBaseAsset:  decimal.RequireFromString("0.0001"),
		MinOrderInQuoteAsset: decimal.NewFromInt(5),
	}

	market := toGlobalMarket(m)
	assert.Equal(t, "BTC-EUR", market.Symbol)
	assert.Equal(t, "BTC", market.BaseCurrency)
	assert.Equal(t, "EUR", market.QuoteCurrency)
	assert.Equal(t, types.Pair{Base: "BTC", Quote: "EUR"}, market.Pair())
	assert.True(t, market.MinQuoteQuantity.Equal(decimal.NewFromInt(5)))
}

func TestToGlobalOrderStatus(t *testing.T) {
	cases := map[bitvavoapi.OrderStatus]types.OrderStatus{
		bitvavoapi.OrderStatusNew:             types.OrderStatusNew,
		bitvavoapi.OrderStatusAwaitingTrigger: types.OrderStatusNew,
		bitvavoapi.OrderStatusPartiallyFilled: types.OrderStatusPartiallyFilled,
		bitvavoapi.OrderStatusFilled:          types.OrderStatusFilled,
		bitvavoapi.OrderStatusCanceled:        types.OrderStatusCanceled,
		"canceledIOC":                         types.OrderStatusCanceled,
		"canceledSelfTradePrevention":         types.OrderStatusCanceled,
		bitvavoapi.OrderStatusExpired:         types.OrderStatusExpired,
		bitvavoapi.OrderStatusRejected:        types.OrderStatusRejected,
	}

	for local, global := range cases {
		assert.Equal(t, global, toGlobalOrderStatus(local), "status %s", local)
	}
}

func TestToGlobalOrder(t *testing.T) {
	o := bitvavoapi.Order{
		OrderID:      "1be6d0df-d5dc-4b53-a250-3376f3b393e6",
		Market:       "ETH-EUR",
		Status:       bitvavoapi.OrderStatusPartiallyFilled,
		Side:         bitvavoapi.OrderSideSell,
		OrderType:    bitvavoapi.OrderTypeLimit,
		Amount:       decimal.NewFromInt(2),
		Price:        decimal.NewFromInt(2000),
		FilledAmount: decimal.NewFromInt(1),
		TimeInForce:  bitvavoapi.TimeInForceGTC,
	}

	order := toGlobalOrder(o)
	assert.Equal(t, "1be6d0df-d5dc-4b53-a250-3376f3b393e6", order.OrderID)
	assert.Equal(t, types.SideTypeSell, order.Side)
	assert.Equal(t, types.OrderTypeLimit, order.Type)
	assert.Equal(t, types.OrderStatusPartiallyFilled, order.Status)
	assert.True(t, order.IsWorking())
	assert.True(t, order.ExecutedQuantity.Equal(decimal.NewFromInt(1)))
}

func TestToLocalConversions(t *testing.T) {
	side, err := toLocalSide(types.SideTypeBuy)
	require.NoError(t, err)
	assert.Equal(t, bitvavoapi.OrderSideBuy, side)

	_, err = toLocalSide("HOLD")
	assert.Error(t, err)

	orderType, err := toLocalOrderType(types.OrderTypeStopLossLimit)
	require.NoError(t, err)
	assert.Equal(t, bitvavoapi.OrderTypeStopLossLimit, orderType)

	_, err = toLocalOrderType("TRAILING_STOP")
	assert.Error(t, err)
}

func TestToPlaceOrderRequest(t *testing.T) {
	ex := New("", "")

	t.Run("limit order", func(t *testing.T) {
		req, err := toPlaceOrderRequest(ex.Client(), types.SubmitOrder{
			Symbol:      "BTC-EUR",
			Side:        types.SideTypeBuy,
			Type:        types.OrderTypeLimit,
			Quantity:    decimal.RequireFromString("0.1"),
			Price:       decimal.NewFromInt(30000),
			TimeInForce: types.TimeInForceGTC,
		})
		require.NoError(t, err)

		params := req.Parameters()
		assert.Equal(t, "0.1", params["amount"])
		assert.Equal(t, "30000", params["price"])
		assert.Equal(t, bitvavoapi.TimeInForceGTC, params["timeInForce"])
	})

	t.Run("market order by quote amount", func(t *testing.T) {
		req, err := toPlaceOrderRequest(ex.Client(), types.SubmitOrder{
			Symbol:        "BTC-EUR",
			Side:          types.SideTypeBuy,
			Type:          types.OrderTypeMarket,
			QuoteQuantity: decimal.NewFromInt(100),
		})
		require.NoError(t, err)

		params := req.Parameters()
		assert.Equal(t, "100", params["amountQuote"])
		assert.NotContains(t, params, "amount")
		assert.NotContains(t, params, "price")
	})
}
