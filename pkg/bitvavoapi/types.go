package bitvavoapi

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tradeware/go-bitvavo/pkg/types"
)

type OrderSide string

const (
	OrderSideBuy  OrderSide = "buy"
	OrderSideSell OrderSide = "sell"
)

type OrderType string

const (
	OrderTypeMarket          OrderType = "market"
	OrderTypeLimit           OrderType = "limit"
	OrderTypeStopLoss        OrderType = "stopLoss"
	OrderTypeStopLossLimit   OrderType = "stopLossLimit"
	OrderTypeTakeProfit      OrderType = "takeProfit"
	OrderTypeTakeProfitLimit OrderType = "takeProfitLimit"
)

type OrderStatus string

const (
	OrderStatusNew             OrderStatus = "new"
	OrderStatusAwaitingTrigger OrderStatus = "awaitingTrigger"
	OrderStatusPartiallyFilled OrderStatus = "partiallyFilled"
	OrderStatusFilled          OrderStatus = "filled"
	OrderStatusCanceled        OrderStatus = "canceled"
	OrderStatusExpired         OrderStatus = "expired"
	OrderStatusRejected        OrderStatus = "rejected"
)

type TimeInForce string

const (
	TimeInForceGTC TimeInForce = "GTC"
	TimeInForceIOC TimeInForce = "IOC"
	TimeInForceFOK TimeInForce = "FOK"
)

type SelfTradePrevention string

const (
	SelfTradePreventionDecrementAndCancel SelfTradePrevention = "decrementAndCancel"
	SelfTradePreventionCancelOldest       SelfTradePrevention = "cancelOldest"
	SelfTradePreventionCancelNewest       SelfTradePrevention = "cancelNewest"
	SelfTradePreventionCancelBoth         SelfTradePrevention = "cancelBoth"
)

type Interval string

const (
	Interval1m  Interval = "1m"
	Interval5m  Interval = "5m"
	Interval15m Interval = "15m"
	Interval30m Interval = "30m"
	Interval1h  Interval = "1h"
	Interval2h  Interval = "2h"
	Interval4h  Interval = "4h"
	Interval6h  Interval = "6h"
	Interval8h  Interval = "8h"
	Interval12h Interval = "12h"
	Interval1d  Interval = "1d"
)

type MarketStatus string

const (
	MarketStatusTrading MarketStatus = "trading"
	MarketStatusHalted  MarketStatus = "halted"
	MarketStatusAuction MarketStatus = "auction"
)

type ServerTime struct {
	Time types.MillisecondTimestamp `json:"time"`
}

type Market struct {
	Market               string          `json:"market"`
	Status               MarketStatus    `json:"status"`
	Base                 string          `json:"base"`
	Quote                string          `json:"quote"`
	PricePrecision       int             `json:"pricePrecision"`
	MinOrderInBaseAsset  decimal.Decimal `json:"minOrderInBaseAsset"`
	MinOrderInQuoteAsset decimal.Decimal `json:"minOrderInQuoteAsset"`
	OrderTypes           []OrderType     `json:"orderTypes"`
}

type Asset struct {
	Symbol               string          `json:"symbol"`
	Name                 string          `json:"name"`
	Decimals             int             `json:"decimals"`
	DepositFee           decimal.Decimal `json:"depositFee"`
	DepositConfirmations int             `json:"depositConfirmations"`
	DepositStatus        string          `json:"depositStatus"`
	WithdrawalFee        decimal.Decimal `json:"withdrawalFee"`
	WithdrawalMinAmount  decimal.Decimal `json:"withdrawalMinAmount"`
	WithdrawalStatus     string          `json:"withdrawalStatus"`
	Networks             []string        `json:"networks"`
	Message              string          `json:"message"`
}

// PriceLevel is one order book level, encoded by the exchange as a
// ["price", "amount"] tuple.
type PriceLevel struct {
	Price  decimal.Decimal
	Amount decimal.Decimal
}

func (l *PriceLevel) UnmarshalJSON(data []byte) error {
	var tuple []decimal.Decimal
	if err := json.Unmarshal(data, &tuple); err != nil {
		return err
	}

	if len(tuple) < 2 {
		return fmt.Errorf("price level requires 2 fields, got %d", len(tuple))
	}

	l.Price = tuple[0]
	l.Amount = tuple[1]
	return nil
}

type OrderBook struct {
	Market string       `json:"market"`
	Nonce  int64        `json:"nonce"`
	Bids   []PriceLevel `json:"bids"`
	Asks   []PriceLevel `json:"asks"`
}

type Trade struct {
	ID        string                     `json:"id"`
	Timestamp types.MillisecondTimestamp `json:"timestamp"`
	Amount    decimal.Decimal            `json:"amount"`
	Price     decimal.Decimal            `json:"price"`
	Side      OrderSide                  `json:"side"`
}

// Candle is one candlestick, encoded by the exchange as a
// [timestamp, open, high, low, close, volume] tuple.
type Candle struct {
	Timestamp types.MillisecondTimestamp
	Open      decimal.Decimal
	High      decimal.Decimal
	Low       decimal.Decimal
	Close     decimal.Decimal
	Volume    decimal.Decimal
}

func (c *Candle) UnmarshalJSON(data []byte) error {
	var tuple []json.RawMessage
	if err := json.Unmarshal(data, &tuple); err != nil {
		return err
	}

	if len(tuple) < 6 {
		return fmt.Errorf("candle requires 6 fields, got %d", len(tuple))
	}

	if err := json.Unmarshal(tuple[0], &c.Timestamp); err != nil {
		return err
	}

	for i, v := range []*decimal.Decimal{&c.Open, &c.High, &c.Low, &c.Close, &c.Volume} {
		if err := json.Unmarshal(tuple[i+1], v); err != nil {
			return err
		}
	}

	return nil
}

type TickerPrice struct {
	Market string          `json:"market"`
	Price  decimal.Decimal `json:"price"`
}

type TickerBook struct {
	Market  string          `json:"market"`
	Bid     decimal.Decimal `json:"bid"`
	BidSize decimal.Decimal `json:"bidSize"`
	Ask     decimal.Decimal `json:"ask"`
	AskSize decimal.Decimal `json:"askSize"`
}

type Ticker24h struct {
	Market      string                     `json:"market"`
	Open        decimal.Decimal            `json:"open"`
	High        decimal.Decimal            `json:"high"`
	Low         decimal.Decimal            `json:"low"`
	Last        decimal.Decimal            `json:"last"`
	Volume      decimal.Decimal            `json:"volume"`
	VolumeQuote decimal.Decimal            `json:"volumeQuote"`
	Bid         decimal.Decimal            `json:"bid"`
	BidSize     decimal.Decimal            `json:"bidSize"`
	Ask         decimal.Decimal            `json:"ask"`
	AskSize     decimal.Decimal            `json:"askSize"`
	Timestamp   types.MillisecondTimestamp `json:"timestamp"`
}

type Fill struct {
	ID          string                     `json:"id"`
	Timestamp   types.MillisecondTimestamp `json:"timestamp"`
	Amount      decimal.Decimal            `json:"amount"`
	Price       decimal.Decimal            `json:"price"`
	Taker       bool                       `json:"taker"`
	Fee         decimal.Decimal            `json:"fee"`
	FeeCurrency string                     `json:"feeCurrency"`
	Settled     bool                       `json:"settled"`
}

type Order struct {
	OrderID                 string                     `json:"orderId"`
	Market                  string                     `json:"market"`
	Created                 types.MillisecondTimestamp `json:"created"`
	Updated                 types.MillisecondTimestamp `json:"updated"`
	Status                  OrderStatus                `json:"status"`
	Side                    OrderSide                  `json:"side"`
	OrderType               OrderType                  `json:"orderType"`
	Amount                  decimal.Decimal            `json:"amount"`
	AmountRemaining         decimal.Decimal            `json:"amountRemaining"`
	AmountQuote             decimal.Decimal            `json:"amountQuote"`
	AmountQuoteRemaining    decimal.Decimal            `json:"amountQuoteRemaining"`
	Price                   decimal.Decimal            `json:"price"`
	TriggerPrice            decimal.Decimal            `json:"triggerPrice"`
	TriggerAmount           decimal.Decimal            `json:"triggerAmount"`
	TriggerType             string                     `json:"triggerType"`
	TriggerReference        string                     `json:"triggerReference"`
	OnHold                  decimal.Decimal            `json:"onHold"`
	OnHoldCurrency          string                     `json:"onHoldCurrency"`
	FilledAmount            decimal.Decimal            `json:"filledAmount"`
	FilledAmountQuote       decimal.Decimal            `json:"filledAmountQuote"`
	FeePaid                 decimal.Decimal            `json:"feePaid"`
	FeeCurrency             string                     `json:"feeCurrency"`
	Fills                   []Fill                     `json:"fills"`
	SelfTradePrevention     SelfTradePrevention        `json:"selfTradePrevention"`
	Visible                 bool                       `json:"visible"`
	TimeInForce             TimeInForce                `json:"timeInForce"`
	PostOnly                bool                       `json:"postOnly"`
	DisableMarketProtection bool                       `json:"disableMarketProtection"`
}

type CanceledOrder struct {
	OrderID string `json:"orderId"`
}

type AccountTrade struct {
	ID          string                     `json:"id"`
	OrderID     string                     `json:"orderId"`
	Timestamp   types.MillisecondTimestamp `json:"timestamp"`
	Market      string                     `json:"market"`
	Side        OrderSide                  `json:"side"`
	Amount      decimal.Decimal            `json:"amount"`
	Price       decimal.Decimal            `json:"price"`
	Taker       bool                       `json:"taker"`
	Fee         decimal.Decimal            `json:"fee"`
	FeeCurrency string                     `json:"feeCurrency"`
	Settled     bool                       `json:"settled"`
}

type FeeTier struct {
	Taker  decimal.Decimal `json:"taker"`
	Maker  decimal.Decimal `json:"maker"`
	Volume decimal.Decimal `json:"volume"`
}

type Account struct {
	Fees FeeTier `json:"fees"`
}

type Balance struct {
	Symbol    string          `json:"symbol"`
	Available decimal.Decimal `json:"available"`
	InOrder   decimal.Decimal `json:"inOrder"`
}

type DepositAsset struct {
	// Address is set for digital assets.
	Address   string `json:"address"`
	PaymentID string `json:"paymentid"`

	// IBAN and BIC are set for fiat deposits.
	IBAN        string `json:"iban"`
	BIC         string `json:"bic"`
	Description string `json:"description"`
}

type DepositHistoryEntry struct {
	Timestamp types.MillisecondTimestamp `json:"timestamp"`
	Symbol    string                     `json:"symbol"`
	Amount    decimal.Decimal            `json:"amount"`
	Address   string                     `json:"address"`
	PaymentID string                     `json:"paymentId"`
	TxID      string                     `json:"txId"`
	Fee       decimal.Decimal            `json:"fee"`
	Status    string                     `json:"status"`
}

type WithdrawalHistoryEntry struct {
	Timestamp types.MillisecondTimestamp `json:"timestamp"`
	Symbol    string                     `json:"symbol"`
	Amount    decimal.Decimal            `json:"amount"`
	Address   string                     `json:"address"`
	PaymentID string                     `json:"paymentId"`
	TxID      string                     `json:"txId"`
	Fee       decimal.Decimal            `json:"fee"`
	Status    string                     `json:"status"`
}

type WithdrawResult struct {
	Success bool            `json:"success"`
	Symbol  string          `json:"symbol"`
	Amount  decimal.Decimal `json:"amount"`
}
