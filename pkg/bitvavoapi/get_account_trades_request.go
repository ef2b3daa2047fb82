package bitvavoapi

import (
	"context"
	"net/url"
	"strconv"
	"time"
)

// GetAccountTradesRequest queries the account's own trade history for one
// market.
type GetAccountTradesRequest struct {
	client *RestClient

	market string

	limit       *int
	start       *time.Time
	end         *time.Time
	tradeIDFrom *string
	tradeIDTo   *string
}

func (c *RestClient) NewGetAccountTradesRequest() *GetAccountTradesRequest {
	return &GetAccountTradesRequest{client: c}
}

func (r *GetAccountTradesRequest) Market(market string) *GetAccountTradesRequest {
	r.market = market
	return r
}

func (r *GetAccountTradesRequest) Limit(limit int) *GetAccountTradesRequest {
	r.limit = &limit
	return r
}

func (r *GetAccountTradesRequest) Start(start time.Time) *GetAccountTradesRequest {
	r.start = &start
	return r
}

func (r *GetAccountTradesRequest) End(end time.Time) *GetAccountTradesRequest {
	r.end = &end
	return r
}

func (r *GetAccountTradesRequest) TradeIDFrom(id string) *GetAccountTradesRequest {
	r.tradeIDFrom = &id
	return r
}

func (r *GetAccountTradesRequest) TradeIDTo(id string) *GetAccountTradesRequest {
	r.tradeIDTo = &id
	return r
}

func (r *GetAccountTradesRequest) Do(ctx context.Context) ([]AccountTrade, error) {
	params := url.Values{}
	params.Add("market", r.market)
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

	req, err := r.client.NewAuthenticatedRequest(ctx, "GET", "/v2/trades", params, nil)
	if err != nil {
		return nil, err
	}

	response, err := r.client.SendRequest(req)
	if err != nil {
		return nil, err
	}

	var trades []AccountTrade
	if err := response.DecodeJSON(&trades); err != nil {
		return nil, err
	}

	return trades, nil
}
