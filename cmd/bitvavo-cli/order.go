package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tradeware/go-bitvavo/pkg/types"
)

func init() {
	balanceCmd.Flags().Bool("all", false, "include zero balances")

	openOrdersCmd.Flags().String("market", "", "restrict to one market")

	placeOrderCmd.Flags().String("market", "", "market symbol, BASE-QUOTE")
	placeOrderCmd.Flags().String("side", "BUY", "BUY or SELL")
	placeOrderCmd.Flags().String("type", "LIMIT", "order type")
	placeOrderCmd.Flags().String("amount", "", "order amount in base currency")
	placeOrderCmd.Flags().String("amount-quote", "", "market order amount in quote currency")
	placeOrderCmd.Flags().String("price", "", "limit price")
	placeOrderCmd.Flags().Bool("post-only", false, "reject the order instead of taking liquidity")

	getOrderCmd.Flags().String("market", "", "market symbol, BASE-QUOTE")
	getOrderCmd.Flags().String("order-id", "", "order id")

	cancelOrderCmd.Flags().String("market", "", "market symbol, BASE-QUOTE")
	cancelOrderCmd.Flags().String("order-id", "", "order id, cancels all open orders on the market when omitted")
}

var balanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "print account balances",

	RunE: func(cmd *cobra.Command, args []string) error {
		showAll, err := cmd.Flags().GetBool("all")
		if err != nil {
			return err
		}

		ex := newExchange()
		defer ex.Close()

		balances, err := ex.QueryAccountBalances(cmd.Context())
		if err != nil {
			return err
		}

		if !showAll {
			balances = balances.NotZero()
		}

		for _, b := range balances {
			fmt.Printf("%-6s available=%s locked=%s\n", b.Currency, b.Available, b.Locked)
		}

		return nil
	},
}

var openOrdersCmd = &cobra.Command{
	Use:   "open-orders",
	Short: "list open orders",

	RunE: func(cmd *cobra.Command, args []string) error {
		symbol, err := cmd.Flags().GetString("market")
		if err != nil {
			return err
		}

		ex := newExchange()
		defer ex.Close()

		orders, err := ex.QueryOpenOrders(cmd.Context(), symbol)
		if err != nil {
			return err
		}

		for _, o := range orders {
			fmt.Printf("%s %s %s %s amount=%s filled=%s price=%s status=%s\n",
				o.OrderID, o.Symbol, o.Side, o.Type,
				o.Quantity, o.ExecutedQuantity, o.Price, o.Status)
		}

		return nil
	},
}

var placeOrderCmd = &cobra.Command{
	Use:   "place-order",
	Short: "place an order",

	RunE: func(cmd *cobra.Command, args []string) error {
		symbol, err := cmd.Flags().GetString("market")
		if err != nil {
			return err
		}
		if symbol == "" {
			return errors.New("--market is required")
		}

		side, err := cmd.Flags().GetString("side")
		if err != nil {
			return err
		}

		orderType, err := cmd.Flags().GetString("type")
		if err != nil {
			return err
		}

		postOnly, err := cmd.Flags().GetBool("post-only")
		if err != nil {
			return err
		}

		submitOrder := types.SubmitOrder{
			Symbol:   symbol,
			Side:     types.SideType(side),
			Type:     types.OrderType(orderType),
			PostOnly: postOnly,
		}

		if s, _ := cmd.Flags().GetString("amount"); s != "" {
			submitOrder.Quantity, err = decimal.NewFromString(s)
			if err != nil {
				return errors.Wrap(err, "invalid amount")
			}
		}

		if s, _ := cmd.Flags().GetString("amount-quote"); s != "" {
			submitOrder.QuoteQuantity, err = decimal.NewFromString(s)
			if err != nil {
				return errors.Wrap(err, "invalid amount-quote")
			}
		}

		if s, _ := cmd.Flags().GetString("price"); s != "" {
			submitOrder.Price, err = decimal.NewFromString(s)
			if err != nil {
				return errors.Wrap(err, "invalid price")
			}
		}

		ex := newExchange()
		defer ex.Close()

		order, err := ex.SubmitOrder(cmd.Context(), submitOrder)
		if err != nil {
			return err
		}

		log.Infof("order placed: %s status=%s", order.OrderID, order.Status)
		return nil
	},
}

var getOrderCmd = &cobra.Command{
	Use:   "get-order",
	Short: "query one order",

	RunE: func(cmd *cobra.Command, args []string) error {
		symbol, err := cmd.Flags().GetString("market")
		if err != nil {
			return err
		}

		orderID, err := cmd.Flags().GetString("order-id")
		if err != nil {
			return err
		}

		if symbol == "" || orderID == "" {
			return errors.New("--market and --order-id are required")
		}

		ex := newExchange()
		defer ex.Close()

		order, err := ex.QueryOrder(cmd.Context(), symbol, orderID)
		if err != nil {
			return err
		}

		fmt.Printf("%s %s %s %s amount=%s filled=%s price=%s status=%s\n",
			order.OrderID, order.Symbol, order.Side, order.Type,
			order.Quantity, order.ExecutedQuantity, order.Price, order.Status)
		return nil
	},
}

var cancelOrderCmd = &cobra.Command{
	Use:   "cancel-order",
	Short: "cancel one order, or all open orders on a market",

	RunE: func(cmd *cobra.Command, args []string) error {
		symbol, err := cmd.Flags().GetString("market")
		if err != nil {
			return err
		}
		if symbol == "" {
			return errors.New("--market is required")
		}

		orderID, err := cmd.Flags().GetString("order-id")
		if err != nil {
			return err
		}

		ex := newExchange()
		defer ex.Close()

		if orderID != "" {
			if err := ex.CancelOrder(cmd.Context(), symbol, orderID); err != nil {
				return err
			}

			log.Infof("order %s canceled", orderID)
			return nil
		}

		ids, err := ex.CancelAllOrders(cmd.Context(), symbol)
		if err != nil {
			return err
		}

		log.Infof("%d orders canceled on %s", len(ids), symbol)
		return nil
	},
}
