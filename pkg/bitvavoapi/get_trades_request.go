package bitvavoapi

import (
	"context"
	"net/url"
	"strconv"
	"time"
)

// GetTradesRequest queries the public trade tape of one market.
type GetTradesRequest struct {
	client *RestClient

	market string

	limit       *int
	start       *time.Time
	end         *time.Time
	tradeIDFrom *string
	tradeIDTo   *string
}

func (c *RestClient) NewGetTradesRequest() *GetTradesRequest {
	return &GetTradesRequest{client: c}
}

func (r *GetTradesRequest) Market(market string) *GetTradesRequest {
	r.market = market
	return r
}

func (r *GetTradesRequest) Limit(limit int) *GetTradesRequest {
	r.limit = &limit
	return r
}

func (r *GetTradesRequest) Start(start time.Time) *GetTradesRequest {
	r.start = &start
	return r
}

func (r *GetTradesRequest) End(end time.Time) *GetTradesRequest {
	r.end = &end
	return r
}

func (r *GetTradesRequest) TradeIDFrom(id string) *GetTradesRequest {
	r.tradeIDFrom = &id
	return r
}

func (r *GetTradesRequest) TradeIDTo(id string) *GetTradesRequest {
	r.tradeIDTo = &id
	return r
}

func (r *GetTradesRequest) Do(ctx context.Context) ([]Trade, error) {
	params := url.Values{}
	if r.limit != nil {
		params.Add("limit", strconv.Itoa(*r.limit))
	}
	if r.start != nil {
		params.Add("start", strconv.FormatInt(r.start.UnixMilli(), 10))
	}
	if r.end != nil {
		params.Add("end", strconv.FormatInt(r.end.UnixMilli(), 10))
	}
	if r.tradeIDFrom != nil {
		params.Add("tradeIdFrom", *r.tradeIDFrom)
	}
	if r.tradeIDTo != nil {
		params.Add("tradeIdTo", *r.tradeIDTo)
	}

	req, err := r.client.NewRequest(ctx, "GET", "/v2/"+r.market+"/trades", params, nil)
	if err != nil {
		return nil, err
	}

	response, err := r.client.SendRequest(req)
	if err != nil {
		return nil, err
	}

	var trades []Trade
	if err := response.DecodeJSON(&trades); err != nil {
		return nil, err
	}

	return trades, nil
}
