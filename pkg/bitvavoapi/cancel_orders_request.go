package bitvavoapi

import (
	"context"
	"net/url"
)

// CancelOrdersRequest cancels all open orders, optionally scoped to one
// market.
type CancelOrdersRequest struct {
	client *RestClient

	market *string
}

func (c *RestClient) NewCancelOrdersRequest() *CancelOrdersRequest {
	return &CancelOrdersRequest{client: c}
}

func (r *CancelOrdersRequest) Market(market string) *CancelOrdersRequest {
	r.market = &market
	return r
}

func (r *CancelOrdersRequest) Do(ctx context.Context) ([]CanceledOrder, error) {
	params := url.Values{}
	if r.market != nil {
		params.Add("market", *r.market)
	}

	req, err := r.client.NewAuthenticatedRequest(ctx, "DELETE", "/v2/orders", params, nil)
	if err != nil {
		return nil, err
	}

	response, err := r.client.SendRequest(req)
	if err != nil {
		return nil, err
	}

	var canceled []CanceledOrder
	if err := response.DecodeJSON(&canceled); err != nil {
		return nil, err
	}

	return canceled, nil
}
