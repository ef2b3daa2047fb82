package bitvavoapi

import (
	"context"
	"net/url"
)

type GetTickerBookRequest struct {
	client *RestClient

	market *string
}

func (c *RestClient) NewGetTickerBookRequest() *GetTickerBookRequest {
	return &GetTickerBookRequest{client: c}
}

func (r *GetTickerBookRequest) Market(market string) *GetTickerBookRequest {
	r.market = &market
	return r
}

func (r *GetTickerBookRequest) Do(ctx context.Context) ([]TickerBook, error) {
	params := url.Values{}
	if r.market != nil {
		params.Add("market", *r.market)
	}

	req, err := r.client.NewRequest(ctx, "GET", "/v2/ticker/book", params, nil)
	if err != nil {
		return nil, err
	}

	response, err := r.client.SendRequest(req)
	if err != nil {
		return nil, err
	}

	var tickers []TickerBook
	if isJSONObject(response.Body) {
		var ticker TickerBook
		if err := response.DecodeJSON(&ticker); err != nil {
			return nil, err
		}
		tickers = append(tickers, ticker)
	} else if err := response.DecodeJSON(&tickers); err != nil {
		return nil, err
	}

	return tickers, nil
}
