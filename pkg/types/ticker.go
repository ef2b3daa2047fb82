package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// Ticker is a 24h rolling market summary.
type Ticker struct {
	Time time.Time

	Last decimal.Decimal
	Open decimal.Decimal
	High decimal.Decimal
	Low  decimal.Decimal

	Buy      decimal.Decimal // best bid price
	BuySize  decimal.Decimal
	Sell     decimal.Decimal // best ask price
	SellSize decimal.Decimal

	Volume      decimal.Decimal
	QuoteVolume decimal.Decimal
}
