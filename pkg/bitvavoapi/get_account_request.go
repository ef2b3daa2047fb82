package bitvavoapi

import (
	"context"
)

type GetAccountRequest struct {
	client *RestClient
}

func (c *RestClient) NewGetAccountRequest() *GetAccountRequest {
	return &GetAccountRequest{client: c}
}

func (r *GetAccountRequest) Do(ctx context.Context) (*Account, error) {
	req, err := r.client.NewAuthenticatedRequest(ctx, "GET", "/v2/account", nil, nil)
	if err != nil {
		return nil, err
	}

	response, err := r.client.SendRequest(req)
	if err != nil {
		return nil, err
	}

	var account Account
	if err := response.DecodeJSON(&account); err != nil {
		return nil, err
	}

	return &account, nil
}
