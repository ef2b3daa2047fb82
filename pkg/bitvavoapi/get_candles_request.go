package bitvavoapi

import (
	"context"
	"net/url"
	"strconv"
	"time"
)

type GetCandlesRequest struct {
	client *RestClient

	market   string
	interval Interval

	limit *int
	start *time.Time
	end   *time.Time
}

func (c *RestClient) NewGetCandlesRequest() *GetCandlesRequest {
	return &GetCandlesRequest{client: c, interval: Interval1m}
}

func (r *GetCandlesRequest) Market(market string) *GetCandlesRequest {
	r.market = market
	return r
}

func (r *GetCandlesRequest) Interval(interval Interval) *GetCandlesRequest {
	r.interval = interval
	return r
}

func (r *GetCandlesRequest) Limit(limit int) *GetCandlesRequest {
	r.limit = &limit
	return r
}

func (r *GetCandlesRequest) Start(start time.Time) *GetCandlesRequest {
	r.start = &start
	return r
}

func (r *GetCandlesRequest) End(end time.Time) *GetCandlesRequest {
	r.end = &end
	return r
}

func (r *GetCandlesRequest) Do(ctx context.Context) ([]Candle, error) {
	params := url.Values{}
	params.Add("interval", string(r.interval))
	if r.limit != nil {
		params.Add("limit", strconv.Itoa(*r.limit))
	}
	if r.start != nil {
		params.Add("start", strconv.FormatInt(r.start.UnixMilli(), 10))
	}
	if r.end != nil {
		params.Add("end", strconv.FormatInt(r.end.UnixMilli(), 10))
	}

	req, err := r.client.NewRequest(ctx, "GET", "/v2/"+r.market+"/candles", params, nil)
	if err != nil {
		return nil, err
	}

	response, err := r.client.SendRequest(req)
	if err != nil {
		return nil, err
	}

	var candles []Candle
	if err := response.DecodeJSON(&candles); err != nil {
		return nil, err
	}

	return candles, nil
}
