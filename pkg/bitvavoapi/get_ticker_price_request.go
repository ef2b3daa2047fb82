package bitvavoapi

import (
	"context"
	"net/url"
)

type GetTickerPriceRequest struct {
	client *RestClient

	market *string
}

func (c *RestClient) NewGetTickerPriceRequest() *GetTickerPriceRequest {
	return &GetTickerPriceRequest{client: c}
}

func (r *GetTickerPriceRequest) Market(market string) *GetTickerPriceRequest {
	r.market = &market
	return r
}

func (r *GetTickerPriceRequest) Do(ctx context.Context) ([]TickerPrice, error) {
	params := url.Values{}
	if r.market != nil {
		params.Add("market", *r.market)
	}

	req, err := r.client.NewRequest(ctx, "GET", "/v2/ticker/price", params, nil)
	if err != nil {
		return nil, err
	}

	response, err := r.client.SendRequest(req)
	if err != nil {
		return nil, err
	}

	// the market filter switches the response from an array to one object
	var tickers []TickerPrice
	if isJSONObject(response.Body) {
		var ticker TickerPrice
		if err := response.DecodeJSON(&ticker); err != nil {
			return nil, err
		}
		tickers = append(tickers, ticker)
	} else if err := response.DecodeJSON(&tickers); err != nil {
		return nil, err
	}

	return tickers, nil
}
