package bitvavoapi

import (
	"context"
	"net/url"
	"strconv"
	"time"
)

type GetDepositHistoryRequest struct {
	client *RestClient

	symbol *string
	limit  *int
	start  *time.Time
	end    *time.Time
}

func (c *RestClient) NewGetDepositHistoryRequest() *GetDepositHistoryRequest {
	return &GetDepositHistoryRequest{client: c}
}

func (r *GetDepositHistoryRequest) Symbol(symbol string) *GetDepositHistoryRequest {
	r.symbol = &symbol
	return r
}

func (r *GetDepositHistoryRequest) Limit(limit int) *GetDepositHistoryRequest {
	r.limit = &limit
	return r
}

func (r *GetDepositHistoryRequest) Start(start time.Time) *GetDepositHistoryRequest {
	r.start = &start
	return r
}

func (r *GetDepositHistoryRequest) End(end time.Time) *GetDepositHistoryRequest {
	r.end = &end
	return r
}

func (r *GetDepositHistoryRequest) Do(ctx context.Context) ([]DepositHistoryEntry, error) {
	params := url.Values{}
	if r.symbol != nil {
		params.Add("symbol", *r.symbol)
	}
	if r.limit != nil {
		params.Add("limit", strconv.Itoa(*r.limit))
	}
	if r.start != nil {
		params.Add("start", strconv.FormatInt(r.start.UnixMilli(), 10))
	}
	if r.end != nil {
		params.Add("end", strconv.FormatInt(r.end.UnixMilli(), 10))
	}

	req, err := r.client.NewAuthenticatedRequest(ctx, "GET", "/v2/depositHistory", params, nil)
	if err != nil {
		return nil, err
	}

	response, err := r.client.SendRequest(req)
	if err != nil {
		return nil, err
	}

	var deposits []DepositHistoryEntry
	if err := response.DecodeJSON(&deposits); err != nil {
		return nil, err
	}

	return deposits, nil
}
