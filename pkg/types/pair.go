package types

import (
	"fmt"
	"strings"
)

// Pair is a base/quote asset combination identifying a market,
// e.g. Pair{Base: "ETH", Quote: "BTC"}.
type Pair struct {
	Base  string
	Quote string
}

func NewPair(base, quote string) Pair {
	return Pair{Base: strings.ToUpper(base), Quote: strings.ToUpper(quote)}
}

// ParsePair parses the exchange market symbol convention, e.g. "BTC-EUR".
func ParsePair(symbol string) (Pair, error) {
	fields := strings.Split(symbol, "-")
	if len(fields) != 2 || fields[0] == "" || fields[1] == "" {
		return Pair{}, fmt.Errorf("invalid market symbol: %q", symbol)
	}

	return NewPair(fields[0], fields[1]), nil
}

// String returns the market path segment the exchange expects, "BASE-QUOTE".
func (p Pair) String() string {
	return p.Base + "-" + p.Quote
}

func (p Pair) Eq(other Pair) bool {
	return p.Base == other.Base && p.Quote == other.Quote
}
