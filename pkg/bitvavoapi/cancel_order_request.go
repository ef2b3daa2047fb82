package bitvavoapi

import (
	"context"
	"net/url"
)

type CancelOrderRequest struct {
	client *RestClient

	market  string
	orderID string
}

func (c *RestClient) NewCancelOrderRequest() *CancelOrderRequest {
	return &CancelOrderRequest{client: c}
}

func (r *CancelOrderRequest) Market(market string) *CancelOrderRequest {
	r.market = market
	return r
}

func (r *CancelOrderRequest) OrderID(orderID string) *CancelOrderRequest {
	r.orderID = orderID
	return r
}

func (r *CancelOrderRequest) Do(ctx context.Context) (*CanceledOrder, error) {
	params := url.Values{}
	params.Add("market", r.market)
	params.Add("orderId", r.orderID)

	req, err := r.client.NewAuthenticatedRequest(ctx, "DELETE", "/v2/order", params, nil)
	if err != nil {
		return nil, err
	}

	response, err := r.client.SendRequest(req)
	if err != nil {
		return nil, err
	}

	var canceled CanceledOrder
	if err := response.DecodeJSON(&canceled); err != nil {
		return nil, err
	}

	return &canceled, nil
}
