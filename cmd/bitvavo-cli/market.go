package main

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tradeware/go-bitvavo/pkg/types"
)

func init() {
	tickerCmd.Flags().String("market", "BTC-EUR", "market symbol, BASE-QUOTE")

	bookCmd.Flags().String("market", "BTC-EUR", "market symbol, BASE-QUOTE")
	bookCmd.Flags().Int("depth", 5, "number of price levels per side")

	candlesCmd.Flags().String("market", "BTC-EUR", "market symbol, BASE-QUOTE")
	candlesCmd.Flags().String("interval", "1h", "candle interval")
	candlesCmd.Flags().Int("limit", 10, "number of candles")
}

var timeCmd = &cobra.Command{
	Use:   "time",
	Short: "print the exchange server time",

	RunE: func(cmd *cobra.Command, args []string) error {
		ex := newExchange()
		defer ex.Close()

		serverTime, err := ex.QueryTime(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Println(serverTime.Format(time.RFC3339Nano))
		return nil
	},
}

var marketsCmd = &cobra.Command{
	Use:   "markets",
	Short: "list tradable markets",

	RunE: func(cmd *cobra.Command, args []string) error {
		ex := newExchange()
		defer ex.Close()

		markets, err := ex.QueryMarkets(cmd.Context())
		if err != nil {
			return err
		}

		for _, m := range markets {
			fmt.Printf("%-12s min %s %s / %s %s\n",
				m.Symbol,
				m.MinQuantity.String(), m.BaseCurrency,
				m.MinQuoteQuantity.String(), m.QuoteCurrency)
		}

		return nil
	},
}

var tickerCmd = &cobra.Command{
	Use:   "ticker",
	Short: "print the 24h ticker of a market",

	RunE: func(cmd *cobra.Command, args []string) error {
		symbol, err := cmd.Flags().GetString("market")
		if err != nil {
			return err
		}

		ex := newExchange()
		defer ex.Close()

		ticker, err := ex.QueryTicker(cmd.Context(), symbol)
		if err != nil {
			return err
		}

		log.Infof("%s last=%s bid=%s ask=%s volume=%s",
			symbol, ticker.Last, ticker.Buy, ticker.Sell, ticker.Volume)
		return nil
	},
}

var bookCmd = &cobra.Command{
	Use:   "book",
	Short: "print the order book of a market",

	RunE: func(cmd *cobra.Command, args []string) error {
		symbol, err := cmd.Flags().GetString("market")
		if err != nil {
			return err
		}

		depth, err := cmd.Flags().GetInt("depth")
		if err != nil {
			return err
		}

		ex := newExchange()
		defer ex.Close()

		book, err := ex.Client().NewGetOrderBookRequest().Market(symbol).Depth(depth).Do(cmd.Context())
		if err != nil {
			return err
		}

		for _, ask := range book.Asks {
			fmt.Printf("ask %s x %s\n", ask.Price, ask.Amount)
		}
		for _, bid := range book.Bids {
			fmt.Printf("bid %s x %s\n", bid.Price, bid.Amount)
		}

		return nil
	},
}

var candlesCmd = &cobra.Command{
	Use:   "candles",
	Short: "print recent candles of a market",

	RunE: func(cmd *cobra.Command, args []string) error {
		symbol, err := cmd.Flags().GetString("market")
		if err != nil {
			return err
		}

		interval, err := cmd.Flags().GetString("interval")
		if err != nil {
			return err
		}

		limit, err := cmd.Flags().GetInt("limit")
		if err != nil {
			return err
		}

		ex := newExchange()
		defer ex.Close()

		klines, err := ex.QueryKLines(cmd.Context(), symbol, types.Interval(interval), limit, nil, nil)
		if err != nil {
			return err
		}

		for _, k := range klines {
			fmt.Printf("%s O=%s H=%s L=%s C=%s V=%s\n",
				k.StartTime.Format(time.RFC3339),
				k.Open, k.High, k.Low, k.Close, k.Volume)
		}

		return nil
	},
}
