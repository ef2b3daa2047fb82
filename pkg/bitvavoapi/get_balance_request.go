package bitvavoapi

import (
	"context"
	"net/url"
)

type GetBalanceRequest struct {
	client *RestClient

	symbol *string
}

func (c *RestClient) NewGetBalanceRequest() *GetBalanceRequest {
	return &GetBalanceRequest{client: c}
}

func (r *GetBalanceRequest) Symbol(symbol string) *GetBalanceRequest {
	r.symbol = &symbol
	return r
}

func (r *GetBalanceRequest) Do(ctx context.Context) ([]Balance, error) {
	params := url.Values{}
	if r.symbol != nil {
		params.Add("symbol", *r.symbol)
	}

	req, err := r.client.NewAuthenticatedRequest(ctx, "GET", "/v2/balance", params, nil)
	if err != nil {
		return nil, err
	}

	response, err := r.client.SendRequest(req)
	if err != nil {
		return nil, err
	}

	var balances []Balance
	if err := response.DecodeJSON(&balances); err != nil {
		return nil, err
	}

	return balances, nil
}
