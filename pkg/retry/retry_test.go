package retry

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tradeware/go-bitvavo/pkg/bitvavoapi"
	"github.com/tradeware/go-bitvavo/pkg/types"
)

type fakeOrderService struct {
	calls  int
	orders []*types.Order
	errs   []error
}

func (s *fakeOrderService) QueryOrder(ctx context.Context, symbol, orderID string) (*types.Order, error) {
	i := s.calls
	s.calls++
	return s.orders[i], s.errs[i]
}

func TestQueryOrderUntilFilled(t *testing.T) {
	working := &types.Order{Status: types.OrderStatusPartiallyFilled}
	filled := &types.Order{Status: types.OrderStatusFilled}

	service := &fakeOrderService{
		orders: []*types.Order{working, filled},
		errs:   []error{nil, nil},
	}

	o, err := QueryOrderUntilFilled(context.Background(), service, "BTC-EUR", "oid")
	require.NoError(t, err)
	assert.Equal(t, types.OrderStatusFilled, o.Status)
	assert.Equal(t, 2, service.calls)
}

func TestGeneralBackoff_PermanentError(t *testing.T) {
	authErr := &bitvavoapi.ErrorResponse{Code: 305, Message: "no active api key"}

	calls := 0
	err := GeneralBackoff(context.Background(), func() error {
		calls++
		return authErr
	})

	require.Error(t, err)
	assert.Equal(t, 1, calls, "authentication errors must not be retried")

	var apiErr *bitvavoapi.ErrorResponse
	assert.True(t, errors.As(err, &apiErr))
}

func TestGeneralBackoff_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := GeneralBackoff(ctx, func() error {
		return errors.New("transient")
	})

	assert.Error(t, err)
}

func TestIsPermanent(t *testing.T) {
	assert.False(t, isPermanent(nil))
	assert.False(t, isPermanent(errors.New("connection reset")))
	assert.False(t, isPermanent(&bitvavoapi.ErrorResponse{Code: 110, Message: "rate limit"}))
	assert.True(t, isPermanent(&bitvavoapi.ErrorResponse{Code: 205, Message: "parameter invalid"}))
	assert.True(t, isPermanent(bitvavoapi.ErrMissingAPIKey))
	assert.True(t, isPermanent(bitvavoapi.ErrClientClosed))
}
