package bitvavoapi

import (
	"context"
	"net/url"
)

type GetTicker24hRequest struct {
	client *RestClient

	market *string
}

func (c *RestClient) NewGetTicker24hRequest() *GetTicker24hRequest {
	return &GetTicker24hRequest{client: c}
}

func (r *GetTicker24hRequest) Market(market string) *GetTicker24hRequest {
	r.market = &market
	return r
}

func (r *GetTicker24hRequest) Do(ctx context.Context) ([]Ticker24h, error) {
	params := url.Values{}
	if r.market != nil {
		params.Add("market", *r.market)
	}

	req, err := r.client.NewRequest(ctx, "GET", "/v2/ticker/24h", params, nil)
	if err != nil {
		return nil, err
	}

	response, err := r.client.SendRequest(req)
	if err != nil {
		return nil, err
	}

	var tickers []Ticker24h
	if isJSONObject(response.Body) {
		var ticker Ticker24h
		if err := response.DecodeJSON(&ticker); err != nil {
			return nil, err
		}
		tickers = append(tickers, ticker)
	} else if err := response.DecodeJSON(&tickers); err != nil {
		return nil, err
	}

	return tickers, nil
}
