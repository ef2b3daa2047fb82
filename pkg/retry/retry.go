package retry

import (
	"context"
	"errors"

	"github.com/cenkalti/backoff/v4"

	"github.com/tradeware/go-bitvavo/pkg/bitvavoapi"
	"github.com/tradeware/go-bitvavo/pkg/types"
)

var MaxRetries uint64 = 101

type orderQueryService interface {
	QueryOrder(ctx context.Context, symbol, orderID string) (*types.Order, error)
}

type orderCancelService interface {
	CancelOrder(ctx context.Context, symbol, orderID string) error
	CancelAllOrders(ctx context.Context, symbol string) ([]string, error)
}

type openOrderQueryService interface {
	QueryOpenOrders(ctx context.Context, symbol string) ([]types.Order, error)
}

// GeneralBackoff retries op with exponential backoff until it succeeds, the
// context is done, or MaxRetries attempts have been made. Credential and
// rejected-request errors are not retried, more attempts can not fix them.
func GeneralBackoff(ctx context.Context, op backoff.Operation) error {
	wrapped := func() error {
		err := op()
		if isPermanent(err) {
			return backoff.Permanent(err)
		}
		return err
	}

	return backoff.Retry(wrapped, backoff.WithContext(
		backoff.WithMaxRetries(
			backoff.NewExponentialBackOff(),
			MaxRetries),
		ctx))
}

func isPermanent(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, bitvavoapi.ErrMissingAPIKey) ||
		errors.Is(err, bitvavoapi.ErrMissingAPISecret) ||
		errors.Is(err, bitvavoapi.ErrClientClosed) {
		return true
	}

	var apiErr *bitvavoapi.ErrorResponse
	if errors.As(err, &apiErr) {
		// rate limit errors resolve themselves after backing off, the rest
		// will fail the same way on every attempt
		return !apiErr.IsRateLimit()
	}

	return false
}

func QueryOrderUntilFilled(ctx context.Context, service orderQueryService, symbol, orderID string) (o *types.Order, err error) {
	err = GeneralBackoff(ctx, func() (err2 error) {
		o, err2 = service.QueryOrder(ctx, symbol, orderID)
		if err2 != nil || o == nil {
			return err2
		}

		if o.Status != types.OrderStatusFilled {
			return errors.New("order is not filled yet")
		}

		return nil
	})

	return o, err
}

func QueryOpenOrdersUntilSuccessful(ctx context.Context, service openOrderQueryService, symbol string) (openOrders []types.Order, err error) {
	var op = func() (err2 error) {
		openOrders, err2 = service.QueryOpenOrders(ctx, symbol)
		return err2
	}

	err = GeneralBackoff(ctx, op)
	return openOrders, err
}

func CancelOrderUntilSuccessful(ctx context.Context, service orderCancelService, symbol, orderID string) error {
	var op = func() (err2 error) {
		return service.CancelOrder(ctx, symbol, orderID)
	}

	return GeneralBackoff(ctx, op)
}

func CancelAllOrdersUntilSuccessful(ctx context.Context, service orderCancelService, symbol string) error {
	var op = func() (err2 error) {
		_, err2 = service.CancelAllOrders(ctx, symbol)
		return err2
	}

	return GeneralBackoff(ctx, op)
}
