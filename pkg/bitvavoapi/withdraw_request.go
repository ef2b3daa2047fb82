package bitvavoapi

import (
	"context"

	"github.com/shopspring/decimal"
)

// WithdrawRequest requests a withdrawal to an address or bank account.
type WithdrawRequest struct {
	client *RestClient

	symbol  string
	amount  decimal.Decimal
	address string

	paymentID        *string
	internal         *bool
	addWithdrawalFee *bool
}

func (c *RestClient) NewWithdrawRequest() *WithdrawRequest {
	return &WithdrawRequest{client: c}
}

func (r *WithdrawRequest) Symbol(symbol string) *WithdrawRequest {
	r.symbol = symbol
	return r
}

func (r *WithdrawRequest) Amount(amount decimal.Decimal) *WithdrawRequest {
	r.amount = amount
	return r
}

// Address is a digital asset address or an IBAN for fiat.
func (r *WithdrawRequest) Address(address string) *WithdrawRequest {
	r.address = address
	return r
}

func (r *WithdrawRequest) PaymentID(paymentID string) *WithdrawRequest {
	r.paymentID = &paymentID
	return r
}

// Internal transfers to another exchange account instead of the chain.
func (r *WithdrawRequest) Internal(internal bool) *WithdrawRequest {
	r.internal = &internal
	return r
}

// AddWithdrawalFee deducts the fee on top of the amount instead of from it.
func (r *WithdrawRequest) AddWithdrawalFee(add bool) *WithdrawRequest {
	r.addWithdrawalFee = &add
	return r
}

func (r *WithdrawRequest) Parameters() map[string]interface{} {
	payload := map[string]interface{}{
		"symbol":  r.symbol,
		"amount":  r.amount.String(),
		"address": r.address,
	}

	if r.paymentID != nil {
		payload["paymentId"] = *r.paymentID
	}
	if r.internal != nil {
		payload["internal"] = *r.internal
	}
	if r.addWithdrawalFee != nil {
		payload["addWithdrawalFee"] = *r.addWithdrawalFee
	}

	return payload
}

func (r *WithdrawRequest) Do(ctx context.Context) (*WithdrawResult, error) {
	req, err := r.client.NewAuthenticatedRequest(ctx, "POST", "/v2/withdrawal", nil, r.Parameters())
	if err != nil {
		return nil, err
	}

	response, err := r.client.SendRequest(req)
	if err != nil {
		return nil, err
	}

	var result WithdrawResult
	if err := response.DecodeJSON(&result); err != nil {
		return nil, err
	}

	return &result, nil
}
