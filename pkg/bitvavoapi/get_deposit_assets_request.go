package bitvavoapi

import (
	"context"
	"net/url"
)

// GetDepositAssetsRequest returns the deposit address or fiat account
// details for one asset.
type GetDepositAssetsRequest struct {
	client *RestClient

	symbol string
}

func (c *RestClient) NewGetDepositAssetsRequest() *GetDepositAssetsRequest {
	return &GetDepositAssetsRequest{client: c}
}

func (r *GetDepositAssetsRequest) Symbol(symbol string) *GetDepositAssetsRequest {
	r.symbol = symbol
	return r
}

func (r *GetDepositAssetsRequest) Do(ctx context.Context) (*DepositAsset, error) {
	params := url.Values{}
	params.Add("symbol", r.symbol)

	req, err := r.client.NewAuthenticatedRequest(ctx, "GET", "/v2/deposit", params, nil)
	if err != nil {
		return nil, err
	}

	response, err := r.client.SendRequest(req)
	if err != nil {
		return nil, err
	}

	var deposit DepositAsset
	if err := response.DecodeJSON(&deposit); err != nil {
		return nil, err
	}

	return &deposit, nil
}
