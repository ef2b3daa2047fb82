package bitvavoapi

import (
	"context"
	"net/url"
)

type GetOpenOrdersRequest struct {
	client *RestClient

	market *string
}

func (c *RestClient) NewGetOpenOrdersRequest() *GetOpenOrdersRequest {
	return &GetOpenOrdersRequest{client: c}
}

func (r *GetOpenOrdersRequest) Market(market string) *GetOpenOrdersRequest {
	r.market = &market
	return r
}

func (r *GetOpenOrdersRequest) Do(ctx context.Context) ([]Order, error) {
	params := url.Values{}
	if r.market != nil {
		params.Add("market", *r.market)
	}

	req, err := r.client.NewAuthenticatedRequest(ctx, "GET", "/v2/ordersOpen", params, nil)
	if err != nil {
		return nil, err
	}

	response, err := r.client.SendRequest(req)
	if err != nil {
		return nil, err
	}

	var orders []Order
	if err := response.DecodeJSON(&orders); err != nil {
		return nil, err
	}

	return orders, nil
}
