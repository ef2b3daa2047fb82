package bitvavoapi

import (
	"context"
	"net/url"
	"strconv"
)

type GetOrderBookRequest struct {
	client *RestClient

	market string
	depth  *int
}

func (c *RestClient) NewGetOrderBookRequest() *GetOrderBookRequest {
	return &GetOrderBookRequest{client: c}
}

func (r *GetOrderBookRequest) Market(market string) *GetOrderBookRequest {
	r.market = market
	return r
}

// Depth limits the number of returned bid and ask levels.
func (r *GetOrderBookRequest) Depth(depth int) *GetOrderBookRequest {
	r.depth = &depth
	return r
}

func (r *GetOrderBookRequest) Do(ctx context.Context) (*OrderBook, error) {
	params := url.Values{}
	if r.depth != nil {
		params.Add("depth", strconv.Itoa(*r.depth))
	}

	req, err := r.client.NewRequest(ctx, "GET", "/v2/"+r.market+"/book", params, nil)
	if err != nil {
		return nil, err
	}

	response, err := r.client.SendRequest(req)
	if err != nil {
		return nil, err
	}

	var book OrderBook
	if err := response.DecodeJSON(&book); err != nil {
		return nil, err
	}

	return &book, nil
}
