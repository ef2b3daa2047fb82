package bitvavoapi

import (
	"context"

	"github.com/shopspring/decimal"
)

// UpdateOrderRequest amends an open limit or trigger order in place,
// keeping its queue priority where the exchange allows it.
type UpdateOrderRequest struct {
	client *RestClient

	market  string
	orderID string

	amount          *decimal.Decimal
	amountQuote     *decimal.Decimal
	amountRemaining *decimal.Decimal
	price           *decimal.Decimal
	triggerAmount   *decimal.Decimal

	timeInForce         *TimeInForce
	selfTradePrevention *SelfTradePrevention
	postOnly            *bool
	responseRequired    *bool
}

func (c *RestClient) NewUpdateOrderRequest() *UpdateOrderRequest {
	return &UpdateOrderRequest{client: c}
}

func (r *UpdateOrderRequest) Market(market string) *UpdateOrderRequest {
	r.market = market
	return r
}

func (r *UpdateOrderRequest) OrderID(orderID string) *UpdateOrderRequest {
	r.orderID = orderID
	return r
}

func (r *UpdateOrderRequest) Amount(amount decimal.Decimal) *UpdateOrderRequest {
	r.amount = &amount
	return r
}

func (r *UpdateOrderRequest) AmountQuote(amountQuote decimal.Decimal) *UpdateOrderRequest {
	r.amountQuote = &amountQuote
	return r
}

func (r *UpdateOrderRequest) AmountRemaining(amountRemaining decimal.Decimal) *UpdateOrderRequest {
	r.amountRemaining = &amountRemaining
	return r
}

func (r *UpdateOrderRequest) Price(price decimal.Decimal) *UpdateOrderRequest {
	r.price = &price
	return r
}

func (r *UpdateOrderRequest) TriggerAmount(triggerAmount decimal.Decimal) *UpdateOrderRequest {
	r.triggerAmount = &triggerAmount
	return r
}

func (r *UpdateOrderRequest) TimeInForce(tif TimeInForce) *UpdateOrderRequest {
	r.timeInForce = &tif
	return r
}

func (r *UpdateOrderRequest) SelfTradePrevention(stp SelfTradePrevention) *UpdateOrderRequest {
	r.selfTradePrevention = &stp
	return r
}

func (r *UpdateOrderRequest) PostOnly(postOnly bool) *UpdateOrderRequest {
	r.postOnly = &postOnly
	return r
}

func (r *UpdateOrderRequest) ResponseRequired(required bool) *UpdateOrderRequest {
	r.responseRequired = &required
	return r
}

func (r *UpdateOrderRequest) Parameters() map[string]interface{} {
	payload := map[string]interface{}{
		"market":  r.market,
		"orderId": r.orderID,
	}

	if r.amount != nil {
		payload["amount"] = r.amount.String()
	}
	if r.amountQuote != nil {
		payload["amountQuote"] = r.amountQuote.String()
	}
	if r.amountRemaining != nil {
		payload["amountRemaining"] = r.amountRemaining.String()
	}
	if r.price != nil {
		payload["price"] = r.price.String()
	}
	if r.triggerAmount != nil {
		payload["triggerAmount"] = r.triggerAmount.String()
	}
	if r.timeInForce != nil {
		payload["timeInForce"] = *r.timeInForce
	}
	if r.selfTradePrevention != nil {
		payload["selfTradePrevention"] = *r.selfTradePrevention
	}
	if r.postOnly != nil {
		payload["postOnly"] = *r.postOnly
	}
	if r.responseRequired != nil {
		payload["responseRequired"] = *r.responseRequired
	}

	return payload
}

func (r *UpdateOrderRequest) Do(ctx context.Context) (*Order, error) {
	req, err := r.client.NewAuthenticatedRequest(ctx, "PUT", "/v2/order", nil, r.Parameters())
	if err != nil {
		return nil, err
	}

	response, err := r.client.SendRequest(req)
	if err != nil {
		return nil, err
	}

	var order Order
	if err := response.DecodeJSON(&order); err != nil {
		return nil, err
	}

	return &order, nil
}
