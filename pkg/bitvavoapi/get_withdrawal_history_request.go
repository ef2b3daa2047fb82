package bitvavoapi

import (
	"context"
	"net/url"
	"strconv"
	"time"
)

type GetWithdrawalHistoryRequest struct {
	client *RestClient

	symbol *string
	limit  *int
	start  *time.Time
	end    *time.Time
}

func (c *RestClient) NewGetWithdrawalHistoryRequest() *GetWithdrawalHistoryRequest {
	return &GetWithdrawalHistoryRequest{client: c}
}

func (r *GetWithdrawalHistoryRequest) Symbol(symbol string) *GetWithdrawalHistoryRequest {
	r.symbol = &symbol
	return r
}

func (r *GetWithdrawalHistoryRequest) Limit(limit int) *GetWithdrawalHistoryRequest {
	r.limit = &limit
	return r
}

func (r *GetWithdrawalHistoryRequest) Start(start time.Time) *GetWithdrawalHistoryRequest {
	r.start = &start
	return r
}

func (r *GetWithdrawalHistoryRequest) End(end time.Time) *GetWithdrawalHistoryRequest {
	r.end = &end
	return r
}

func (r *GetWithdrawalHistoryRequest) Do(ctx context.Context) ([]WithdrawalHistoryEntry, error) {
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

	req, err := r.client.NewAuthenticatedRequest(ctx, "GET", "/v2/withdrawalHistory", params, nil)
	if err != nil {
		return nil, err
	}

	response, err := r.client.SendRequest(req)
	if err != nil {
		return nil, err
	}

	var withdrawals []WithdrawalHistoryEntry
	if err := response.DecodeJSON(&withdrawals); err != nil {
		return nil, err
	}

	return withdrawals, nil
}
