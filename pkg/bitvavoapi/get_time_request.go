package bitvavoapi

import (
	"context"
)

type GetTimeRequest struct {
	client *RestClient
}

func (c *RestClient) NewGetTimeRequest() *GetTimeRequest {
	return &GetTimeRequest{client: c}
}

func (r *GetTimeRequest) Do(ctx context.Context) (*ServerTime, error) {
	req, err := r.client.NewRequest(ctx, "GET", "/v2/time", nil, nil)
	if err != nil {
		return nil, err
	}

	response, err := r.client.SendRequest(req)
	if err != nil {
		return nil, err
	}

	var serverTime ServerTime
	if err := response.DecodeJSON(&serverTime); err != nil {
		return nil, err
	}

	return &serverTime, nil
}
