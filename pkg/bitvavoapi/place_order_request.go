package bitvavoapi

import (
	"context"

	"github.com/shopspring/decimal"
)

type PlaceOrderRequest struct {
	client *RestClient

	market    string
	side      OrderSide
	orderType OrderType

	amount      *decimal.Decimal
	price       *decimal.Decimal
	amountQuote *decimal.Decimal

	triggerAmount    *decimal.Decimal
	triggerType      *string
	triggerReference *string

	timeInForce             *TimeInForce
	selfTradePrevention     *SelfTradePrevention
	postOnly                *bool
	disableMarketProtection *bool
	responseRequired        *bool
}

func (c *RestClient) NewPlaceOrderRequest() *PlaceOrderRequest {
	return &PlaceOrderRequest{client: c}
}

func (r *PlaceOrderRequest) Market(market string) *PlaceOrderRequest {
	r.market = market
	return r
}

func (r *PlaceOrderRequest) Side(side OrderSide) *PlaceOrderRequest {
	r.side = side
	return r
}

func (r *PlaceOrderRequest) OrderType(orderType OrderType) *PlaceOrderRequest {
	r.orderType = orderType
	return r
}

func (r *PlaceOrderRequest) Amount(amount decimal.Decimal) *PlaceOrderRequest {
	r.amount = &amount
	return r
}

func (r *PlaceOrderRequest) Price(price decimal.Decimal) *PlaceOrderRequest {
	r.price = &price
	return r
}

// AmountQuote places a market order denominated in the quote currency.
func (r *PlaceOrderRequest) AmountQuote(amountQuote decimal.Decimal) *PlaceOrderRequest {
	r.amountQuote = &amountQuote
	return r
}

func (r *PlaceOrderRequest) TriggerAmount(triggerAmount decimal.Decimal) *PlaceOrderRequest {
	r.triggerAmount = &triggerAmount
	return r
}

// TriggerType is "price" for the stop order types.
func (r *PlaceOrderRequest) TriggerType(triggerType string) *PlaceOrderRequest {
	r.triggerType = &triggerType
	return r
}

// TriggerReference selects the price the trigger compares against:
// "lastTrade", "bestBid", "bestAsk" or "midPrice".
func (r *PlaceOrderRequest) TriggerReference(triggerReference string) *PlaceOrderRequest {
	r.triggerReference = &triggerReference
	return r
}

func (r *PlaceOrderRequest) TimeInForce(tif TimeInForce) *PlaceOrderRequest {
	r.timeInForce = &tif
	return r
}

func (r *PlaceOrderRequest) SelfTradePrevention(stp SelfTradePrevention) *PlaceOrderRequest {
	r.selfTradePrevention = &stp
	return r
}

func (r *PlaceOrderRequest) PostOnly(postOnly bool) *PlaceOrderRequest {
	r.postOnly = &postOnly
	return r
}

func (r *PlaceOrderRequest) DisableMarketProtection(disable bool) *PlaceOrderRequest {
	r.disableMarketProtection = &disable
	return r
}

// ResponseRequired set to false makes the exchange return only an ack,
// which is faster.
func (r *PlaceOrderRequest) ResponseRequired(required bool) *PlaceOrderRequest {
	r.responseRequired = &required
	return r
}

func (r *PlaceOrderRequest) Parameters() map[string]interface{} {
	payload := map[string]interface{}{
		"market":    r.market,
		"side":      r.side,
		"orderType": r.orderType,
	}

	if r.amount != nil {
		payload["amount"] = r.amount.String()
	}
	if r.price != nil {
		payload["price"] = r.price.String()
	}
	if r.amountQuote != nil {
		payload["amountQuote"] = r.amountQuote.String()
	}
	if r.triggerAmount != nil {
		payload["triggerAmount"] = r.triggerAmount.String()
	}
	if r.triggerType != nil {
		payload["triggerType"] = *r.triggerType
	}
	if r.triggerReference != nil {
		payload["triggerReference"] = *r.triggerReference
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
	if r.disableMarketProtection != nil {
		payload["disableMarketProtection"] = *r.disableMarketProtection
	}
	if r.responseRequired != nil {
		payload["responseRequired"] = *r.responseRequired
	}

	return payload
}

func (r *PlaceOrderRequest) Do(ctx context.Context) (*Order, error) {
	req, err := r.client.NewAuthenticatedRequest(ctx, "POST", "/v2/order", nil, r.Parameters())
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
