package bitvavo

import (
	"fmt"
	"strings"

	"github.com/tradeware/go-bitvavo/pkg/bitvavoapi"
	"github.com/tradeware/go-bitvavo/pkg/types"
)

func toGlobalMarket(m bitvavoapi.Market) types.Market {
	return types.Market{
		Symbol:           m.Market,
		BaseCurrency:     m.Base,
		QuoteCurrency:    m.Quote,
		Status:           types.MarketStatus(m.Status),
		PricePrecision:   m.PricePrecision,
		MinQuantity:      m.MinOrderInBaseAsset,
		MinQuoteQuantity: m.MinOrderInQuoteAsset,
	}
}

func toGlobalTicker(t bitvavoapi.Ticker24h) types.Ticker {
	return types.Ticker{
		Time:        t.Timestamp.Time(),
		Last:        t.Last,
		Open:        t.Open,
		High:        t.High,
		Low:         t.Low,
		Buy:         t.Bid,
		BuySize:     t.BidSize,
		Sell:        t.Ask,
		SellSize:    t.AskSize,
		Volume:      t.Volume,
		QuoteVolume: t.VolumeQuote,
	}
}

func toGlobalBalanceMap(balances []bitvavoapi.Balance) types.BalanceMap {
	bm := types.BalanceMap{}
	for _, b := range balances {
		bm[b.Symbol] = types.Balance{
			Currency:  b.Symbol,
			Available: b.Available,
			Locked:    b.InOrder,
		}
	}

	return bm
}

func toGlobalSide(side bitvavoapi.OrderSide) types.SideType {
	if side == bitvavoapi.OrderSideSell {
		return types.SideTypeSell
	}
	return types.SideTypeBuy
}

func toLocalSide(side types.SideType) (bitvavoapi.OrderSide, error) {
	switch side {
	case types.SideTypeBuy:
		return bitvavoapi.OrderSideBuy, nil
	case types.SideTypeSell:
		return bitvavoapi.OrderSideSell, nil
	}

	return "", fmt.Errorf("unknown order side: %s", side)
}

func toGlobalOrderType(orderType bitvavoapi.OrderType) types.OrderType {
	switch orderType {
	case bitvavoapi.OrderTypeLimit:
		return types.OrderTypeLimit
	case bitvavoapi.OrderTypeMarket:
		return types.OrderTypeMarket
	case bitvavoapi.OrderTypeStopLoss:
		return types.OrderTypeStopLoss
	case bitvavoapi.OrderTypeStopLossLimit:
		return types.OrderTypeStopLossLimit
	case bitvavoapi.OrderTypeTakeProfit:
		return types.OrderTypeTakeProfit
	case bitvavoapi.OrderTypeTakeProfitLimit:
		return types.OrderTypeTakeProfitLimit
	}

	return types.OrderType(strings.ToUpper(string(orderType)))
}

func toLocalOrderType(orderType types.OrderType) (bitvavoapi.OrderType, error) {
	switch orderType {
	case types.OrderTypeLimit:
		return bitvavoapi.OrderTypeLimit, nil
	case types.OrderTypeMarket:
		return bitvavoapi.OrderTypeMarket, nil
	case types.OrderTypeStopLoss:
		return bitvavoapi.OrderTypeStopLoss, nil
	case types.OrderTypeStopLossLimit:
		return bitvavoapi.OrderTypeStopLossLimit, nil
	case types.OrderTypeTakeProfit:
		return bitvavoapi.OrderTypeTakeProfit, nil
	case types.OrderTypeTakeProfitLimit:
		return bitvavoapi.OrderTypeTakeProfitLimit, nil
	}

	return "", fmt.Errorf("unknown order type: %s", orderType)
}

func toGlobalOrderStatus(status bitvavoapi.OrderStatus) types.OrderStatus {
	switch status {
	case bitvavoapi.OrderStatusNew, bitvavoapi.OrderStatusAwaitingTrigger:
		return types.OrderStatusNew
	case bitvavoapi.OrderStatusPartiallyFilled:
		return types.OrderStatusPartiallyFilled
	case bitvavoapi.OrderStatusFilled:
		return types.OrderStatusFilled
	case bitvavoapi.OrderStatusExpired:
		return types.OrderStatusExpired
	case bitvavoapi.OrderStatusRejected:
		return types.OrderStatusRejected
	}

	// the exchange reports several cancellation reasons as distinct states
	if strings.HasPrefix(string(status), "canceled") {
		return types.OrderStatusCanceled
	}

	log.Warnf("unexpected order status: %s", status)
	return types.OrderStatus(status)
}

func toGlobalOrder(o bitvavoapi.Order) types.Order {
	return types.Order{
		SubmitOrder: types.SubmitOrder{
			Symbol:        o.Market,
			Side:          toGlobalSide(o.Side),
			Type:          toGlobalOrderType(o.OrderType),
			Quantity:      o.Amount,
			Price:         o.Price,
			QuoteQuantity: o.AmountQuote,
			TimeInForce:   types.TimeInForce(o.TimeInForce),
			PostOnly:      o.PostOnly,
		},
		OrderID:          o.OrderID,
		Status:           toGlobalOrderStatus(o.Status),
		ExecutedQuantity: o.FilledAmount,
		CreationTime:     o.Created,
		UpdateTime:       o.Updated,
	}
}

func toGlobalKLine(symbol string, interval types.Interval, c bitvavoapi.Candle) types.KLine {
	return types.KLine{
		Symbol:    symbol,
		Interval:  interval,
		StartTime: c.Timestamp.Time(),
		Open:      c.Open,
		High:      c.High,
		Low:       c.Low,
		Close:     c.Close,
		Volume:    c.Volume,
	}
}

func toPlaceOrderRequest(client *bitvavoapi.RestClient, order types.SubmitOrder) (*bitvavoapi.PlaceOrderRequest, error) {
	side, err := toLocalSide(order.Side)
	if err != nil {
		return nil, err
	}

	orderType, err := toLocalOrderType(order.Type)
	if err != nil {
		return nil, err
	}

	req := client.NewPlaceOrderRequest().
		Market(order.Symbol).
		Side(side).
		OrderType(orderType)

	switch orderType {
	case bitvavoapi.OrderTypeMarket:
		// market orders take either a base or a quote amount
		if !order.QuoteQuantity.IsZero() {
			req.AmountQuote(order.QuoteQuantity)
		} else {
			req.Amount(order.Quantity)
		}

	default:
		req.Amount(order.Quantity)
		if !order.Price.IsZero() {
			req.Price(order.Price)
		}
	}

	if order.TimeInForce != "" {
		req.TimeInForce(bitvavoapi.TimeInForce(order.TimeInForce))
	}

	if order.PostOnly {
		req.PostOnly(true)
	}

	return req, nil
}
