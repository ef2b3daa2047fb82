package bitvavoapi

import (
	"context"
	"net/url"
)

type GetAssetsRequest struct {
	client *RestClient

	symbol *string
}

func (c *RestClient) NewGetAssetsRequest() *GetAssetsRequest {
	return &GetAssetsRequest{client: c}
}

func (r *GetAssetsRequest) Symbol(symbol string) *GetAssetsRequest {
	r.symbol = &symbol
	return r
}

func (r *GetAssetsRequest) Do(ctx context.Context) ([]Asset, error) {
	params := url.Values{}
	if r.symbol != nil {
		params.Add("symbol", *r.symbol)
	}

	req, err := r.client.NewRequest(ctx, "GET", "/v2/assets", params, nil)
	if err != nil {
		return nil, err
	}

	response, err := r.client.SendRequest(req)
	if err != nil {
		return nil, err
	}

	var assets []Asset
	if isJSONObject(response.Body) {
		var asset Asset
		if err := response.DecodeJSON(&asset); err != nil {
			return nil, err
		}
		assets = append(assets, asset)
	} else if err := response.DecodeJSON(&assets); err != nil {
		return nil, err
	}

	return assets, nil
}
