package types

import (
	"github.com/shopspring/decimal"
)

type MarketStatus string

const (
	MarketStatusTrading MarketStatus = "trading"
	MarketStatusHalted  MarketStatus = "halted"
	MarketStatusAuction MarketStatus = "auction"
)

// Market describes one tradable market and its order constraints.
type Market struct {
	Symbol string `json:"symbol"`

	BaseCurrency  string `json:"baseCurrency"`
	QuoteCurrency string `json:"quoteCurrency"`

	Status MarketStatus `json:"status"`

	// PricePrecision is the number of significant digits accepted in the
	// price field of limit orders.
	PricePrecision int `json:"pricePrecision"`

	MinQuantity      decimal.Decimal `json:"minQuantity"`
	MinQuoteQuantity decimal.Decimal `json:"minQuoteQuantity"`
}

func (m Market) Pair() Pair {
	return Pair{Base: m.BaseCurrency, Quote: m.QuoteCurrency}
}

type MarketMap map[string]Market

func (m MarketMap) Has(symbol string) bool {
	_, ok := m[symbol]
	return ok
}
