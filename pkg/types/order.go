package types

import (
	"github.com/shopspring/decimal"
)

type SideType string

const (
	SideTypeBuy  SideType = "BUY"
	SideTypeSell SideType = "SELL"
)

func (s SideType) Reverse() SideType {
	if s == SideTypeBuy {
		return SideTypeSell
	}
	return SideTypeBuy
}

type OrderType string

const (
	OrderTypeLimit           OrderType = "LIMIT"
	OrderTypeMarket          OrderType = "MARKET"
	OrderTypeStopLoss        OrderType = "STOP_LOSS"
	OrderTypeStopLossLimit   OrderType = "STOP_LOSS_LIMIT"
	OrderTypeTakeProfit      OrderType = "TAKE_PROFIT"
	OrderTypeTakeProfitLimit OrderType = "TAKE_PROFIT_LIMIT"
)

type OrderStatus string

const (
	OrderStatusNew             OrderStatus = "NEW"
	OrderStatusPartiallyFilled OrderStatus = "PARTIALLY_FILLED"
	OrderStatusFilled          OrderStatus = "FILLED"
	OrderStatusCanceled        OrderStatus = "CANCELED"
	OrderStatusExpired         OrderStatus = "EXPIRED"
	OrderStatusRejected        OrderStatus = "REJECTED"
)

type TimeInForce string

const (
	TimeInForceGTC TimeInForce = "GTC"
	TimeInForceIOC TimeInForce = "IOC"
	TimeInForceFOK TimeInForce = "FOK"
)

// SubmitOrder is the order creation parameter set handed to the exchange.
type SubmitOrder struct {
	Symbol string    `json:"symbol"`
	Side   SideType  `json:"side"`
	Type   OrderType `json:"orderType"`

	Quantity decimal.Decimal `json:"quantity"`
	Price    decimal.Decimal `json:"price"`

	// QuoteQuantity places a market order denominated in the quote
	// currency instead of Quantity.
	QuoteQuantity decimal.Decimal `json:"quoteQuantity"`

	TimeInForce TimeInForce `json:"timeInForce,omitempty"`
	PostOnly    bool        `json:"postOnly,omitempty"`
}

type Order struct {
	SubmitOrder

	OrderID string      `json:"orderID"`
	Status  OrderStatus `json:"status"`

	ExecutedQuantity decimal.Decimal `json:"executedQuantity"`

	CreationTime MillisecondTimestamp `json:"creationTime"`
	UpdateTime   MillisecondTimestamp `json:"updateTime"`
}

func (o Order) IsWorking() bool {
	return o.Status == OrderStatusNew || o.Status == OrderStatusPartiallyFilled
}
