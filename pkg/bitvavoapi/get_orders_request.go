package bitvavoapi

import (
	"context"
	"net/url"
	"strconv"
	"time"
)

// GetOrdersRequest queries the order history of one market.
type GetOrdersRequest struct {
	client *RestClient

	market string

	limit       *int
	start       *time.Time
	end         *time.Time
	orderIDFrom *string
	orderIDTo   *string
}

func (c *RestClient) NewGetOrdersRequest() *GetOrdersRequest {
	return &GetOrdersRequest{client: c}
}

func (r *GetOrdersRequest) Market(market string) *GetOrdersRequest {
	r.market = market
	return r
}

func (r *GetOrdersRequest) Limit(limit int) *GetOrdersRequest {
	r.limit = &limit
	return r
}

func (r *GetOrdersRequest) Start(start time.Time) *GetOrdersRequest {
	r.start = &start
	return r
}

func (r *GetOrdersRequest) End(end time.Time) *GetOrdersRequest {
	r.end = &end
	return r
}

func (r *GetOrdersRequest) OrderIDFrom(id string) *GetOrdersRequest {
	r.orderIDFrom = &id
	return r
}

func (r *GetOrdersRequest) OrderIDTo(id string) *GetOrdersRequest {
	r.orderIDTo = &id
	return r
}

func (r *GetOrdersRequest) Do(ctx context.Context) ([]Order, error) {
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
	if r.orderIDFrom != nil {
		params.Add("orderIdFrom", *r.orderIDFrom)
	}
	if r.orderIDTo != nil {
		params.Add("orderIdTo", *r.orderIDTo)
	}

	req, err := r.client.NewAuthenticatedRequest(ctx, "GET", "/v2/orders", params, nil)
	if err != nil {
		return nil, err
	}

	response, err := r.client.SendRequest(req)
	if err != nil {
		return nil, err
	}

	var orders []Order
	if err := response.DecodeJSON(&orders); err != nil {
		return nil, err
	}

	return orders, nil
}
