package types

import (
	"github.com/shopspring/decimal"
)

type Balance struct {
	Currency  string          `json:"currency"`
	Available decimal.Decimal `json:"available"`

	// Locked is the amount reserved by open orders and pending withdrawals.
	Locked decimal.Decimal `json:"locked"`
}

func (b Balance) Total() decimal.Decimal {
	return b.Available.Add(b.Locked)
}

type BalanceMap map[string]Balance

// NotZero filters out the zero balances.
func (m BalanceMap) NotZero() BalanceMap {
	bm := make(BalanceMap)
	for c, b := range m {
		if b.Total().IsZero() {
			continue
		}

		bm[c] = b
	}

	return bm
}
