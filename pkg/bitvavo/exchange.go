package bitvavo

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/tradeware/go-bitvavo/pkg/bitvavoapi"
	"github.com/tradeware/go-bitvavo/pkg/types"
)

const ID = "bitvavo"

var log = logrus.WithFields(logrus.Fields{
	"exchange": ID,
})

// The exchange grants a budget of 1000 request weight points per minute per
// account; these limiters keep a well-behaved client under it without
// relying on server-side rejections.
var (
	marketDataRateLimiter = rate.NewLimiter(rate.Every(time.Second/10), 5)

	queryAccountRateLimiter = rate.NewLimiter(rate.Every(time.Second/5), 5)

	// order book and candle queries carry a higher request weight
	queryBookRateLimiter = rate.NewLimiter(rate.Every(time.Second/5), 2)

	submitOrderRateLimiter = rate.NewLimiter(rate.Every(time.Second/10), 10)

	cancelOrderRateLimiter = rate.NewLimiter(rate.Every(time.Second/10), 10)
)

type Exchange struct {
	key, secret string

	client *bitvavoapi.RestClient
}

func New(key, secret string) *Exchange {
	client := bitvavoapi.NewClient()

	if len(key) > 0 && len(secret) > 0 {
		client.Auth(key, secret)
	}

	return &Exchange{
		key:    key,
		secret: secret,
		client: client,
	}
}

// NewWithClient wraps an existing api client, for tests and custom base
// URLs.
func NewWithClient(client *bitvavoapi.RestClient) *Exchange {
	return &Exchange{client: client}
}

func (e *Exchange) Name() string {
	return ID
}

// Client exposes the underlying api client for requests the facade does not
// cover.
func (e *Exchange) Client() *bitvavoapi.RestClient {
	return e.client
}

// Close releases the underlying http session. The exchange instance can not
// be used afterwards.
func (e *Exchange) Close() {
	e.client.Close()
}

func (e *Exchange) QueryTime(ctx context.Context) (time.Time, error) {
	serverTime, err := e.client.NewGetTimeRequest().Do(ctx)
	if err != nil {
		return time.Time{}, err
	}

	return serverTime.Time.Time(), nil
}

func (e *Exchange) QueryMarkets(ctx context.Context) (types.MarketMap, error) {
	if err := marketDataRateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("markets rate limiter wait error: %w", err)
	}

	apiMarkets, err := e.client.NewGetMarketsRequest().Do(ctx)
	if err != nil {
		return nil, err
	}

	markets := types.MarketMap{}
	for _, m := range apiMarkets {
		if m.Status != bitvavoapi.MarketStatusTrading {
			// ignore halted and auction markets
			continue
		}

		markets[m.Market] = toGlobalMarket(m)
	}

	return markets, nil
}

func (e *Exchange) QueryTicker(ctx context.Context, symbol string) (*types.Ticker, error) {
	if err := marketDataRateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("ticker rate limiter wait error: %w", err)
	}

	tickers, err := e.client.NewGetTicker24hRequest().Market(symbol).Do(ctx)
	if err != nil {
		return nil, err
	}

	if len(tickers) == 0 {
		return nil, fmt.Errorf("ticker of %s not found", symbol)
	}

	ticker := toGlobalTicker(tickers[0])
	return &ticker, nil
}

func (e *Exchange) QueryTickers(ctx context.Context, symbols ...string) (map[string]types.Ticker, error) {
	if err := marketDataRateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("tickers rate limiter wait error: %w", err)
	}

	apiTickers, err := e.client.NewGetTicker24hRequest().Do(ctx)
	if err != nil {
		return nil, err
	}

	wanted := make(map[string]struct{}, len(symbols))
	for _, s := range symbols {
		wanted[s] = struct{}{}
	}

	tickers := make(map[string]types.Ticker, len(apiTickers))
	for _, t := range apiTickers {
		if len(wanted) > 0 {
			if _, ok := wanted[t.Market]; !ok {
				continue
			}
		}

		tickers[t.Market] = toGlobalTicker(t)
	}

	return tickers, nil
}

func (e *Exchange) QueryAccountBalances(ctx context.Context) (types.BalanceMap, error) {
	if err := queryAccountRateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("account rate limiter wait error: %w", err)
	}

	balances, err := e.client.NewGetBalanceRequest().Do(ctx)
	if err != nil {
		return nil, err
	}

	return toGlobalBalanceMap(balances), nil
}

func (e *Exchange) QueryOpenOrders(ctx context.Context, symbol string) ([]types.Order, error) {
	if err := queryAccountRateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("open orders rate limiter wait error: %w", err)
	}

	req := e.client.NewGetOpenOrdersRequest()
	if symbol != "" {
		req.Market(symbol)
	}

	apiOrders, err := req.Do(ctx)
	if err != nil {
		return nil, err
	}

	orders := make([]types.Order, 0, len(apiOrders))
	for _, o := range apiOrders {
		orders = append(orders, toGlobalOrder(o))
	}

	return orders, nil
}

func (e *Exchange) QueryOrder(ctx context.Context, symbol, orderID string) (*types.Order, error) {
	if err := queryAccountRateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("query order rate limiter wait error: %w", err)
	}

	apiOrder, err := e.client.NewGetOrderRequest().Market(symbol).OrderID(orderID).Do(ctx)
	if err != nil {
		return nil, err
	}

	order := toGlobalOrder(*apiOrder)
	return &order, nil
}

func (e *Exchange) SubmitOrder(ctx context.Context, order types.SubmitOrder) (*types.Order, error) {
	if err := submitOrderRateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("submit order rate limiter wait error: %w", err)
	}

	req, err := toPlaceOrderRequest(e.client, order)
	if err != nil {
		return nil, err
	}

	log.Infof("submitting order: %+v", order)

	apiOrder, err := req.Do(ctx)
	if err != nil {
		return nil, err
	}

	created := toGlobalOrder(*apiOrder)
	return &created, nil
}

func (e *Exchange) CancelOrder(ctx context.Context, symbol, orderID string) error {
	if err := cancelOrderRateLimiter.Wait(ctx); err != nil {
		return fmt.Errorf("cancel order rate limiter wait error: %w", err)
	}

	canceled, err := e.client.NewCancelOrderRequest().Market(symbol).OrderID(orderID).Do(ctx)
	if err != nil {
		return err
	}

	log.Infof("order %s canceled", canceled.OrderID)
	return nil
}

// CancelAllOrders cancels every open order, optionally scoped to one market.
func (e *Exchange) CancelAllOrders(ctx context.Context, symbol string) ([]string, error) {
	if err := cancelOrderRateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("cancel orders rate limiter wait error: %w", err)
	}

	req := e.client.NewCancelOrdersRequest()
	if symbol != "" {
		req.Market(symbol)
	}

	canceled, err := req.Do(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(canceled))
	for _, c := range canceled {
		ids = append(ids, c.OrderID)
	}

	return ids, nil
}

func (e *Exchange) QueryKLines(
	ctx context.Context, symbol string, interval types.Interval, limit int, startTime, endTime *time.Time,
) ([]types.KLine, error) {
	if !interval.IsValid() {
		return nil, fmt.Errorf("interval %s is not supported", interval)
	}

	if err := queryBookRateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("klines rate limiter wait error: %w", err)
	}

	req := e.client.NewGetCandlesRequest().
		Market(symbol).
		Interval(bitvavoapi.Interval(interval))

	if limit > 0 {
		req.Limit(limit)
	}
	if startTime != nil {
		req.Start(*startTime)
	}
	if endTime != nil {
		req.End(*endTime)
	}

	candles, err := req.Do(ctx)
	if err != nil {
		return nil, err
	}

	klines := make([]types.KLine, 0, len(candles))
	for _, c := range candles {
		klines = append(klines, toGlobalKLine(symbol, interval, c))
	}

	return klines, nil
}
