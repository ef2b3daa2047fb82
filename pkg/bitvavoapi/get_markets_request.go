package bitvavoapi

import (
	"context"
	"net/url"
)

type GetMarketsRequest struct {
	client *RestClient

	market *string
}

func (c *RestClient) NewGetMarketsRequest() *GetMarketsRequest {
	return &GetMarketsRequest{client: c}
}

// Market restricts the response to a single market, e.g. "BTC-EUR".
func (r *GetMarketsRequest) Market(market string) *GetMarketsRequest {
	r.market = &market
	return r
}

func (r *GetMarketsRequest) Do(ctx context.Context) ([]Market, error) {
	params := url.Values{}
	if r.market != nil {
		params.Add("market", *r.market)
	}

	req, err := r.client.NewRequest(ctx, "GET", "/v2/markets", params, nil)
	if err != nil {
		return nil, err
	}

	response, err := r.client.SendRequest(req)
	if err != nil {
		return nil, err
	}

	var markets []Market
	if isJSONObject(response.Body) {
		var market Market
		if err := response.DecodeJSON(&market); err != nil {
			return nil, err
		}
		markets = append(markets, market)
	} else if err := response.DecodeJSON(&markets); err != nil {
		return nil, err
	}

	return markets, nil
}
