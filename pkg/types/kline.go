package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// KLine is one candlestick.
type KLine struct {
	Symbol   string
	Interval Interval

	StartTime time.Time

	Open  decimal.Decimal
	High  decimal.Decimal
	Low   decimal.Decimal
	Close decimal.Decimal

	Volume decimal.Decimal
}

func (k KLine) EndTime() time.Time {
	return k.StartTime.Add(k.Interval.Duration())
}

func (k KLine) Direction() SideType {
	if k.Close.GreaterThanOrEqual(k.Open) {
		return SideTypeBuy
	}
	return SideTypeSell
}
