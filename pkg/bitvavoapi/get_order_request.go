package bitvavoapi

import (
	"context"
	"net/url"
)

type GetOrderRequest struct {
	client *RestClient

	market  string
	orderID string
}

func (c *RestClient) NewGetOrderRequest() *GetOrderRequest {
	return &GetOrderRequest{client: c}
}

func (r *GetOrderRequest) Market(market string) *GetOrderRequest {
	r.market = market
	return r
}

func (r *GetOrderRequest) OrderID(orderID string) *GetOrderRequest {
	r.orderID = orderID
	return r
}

func (r *GetOrderRequest) Do(ctx context.Context) (*Order, error) {
	params := url.Values{}
	params.Add("market", r.market)
	params.Add("orderId", r.orderID)

	req, err := r.client.NewAuthenticatedRequest(ctx, "GET", "/v2/order", params, nil)
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
