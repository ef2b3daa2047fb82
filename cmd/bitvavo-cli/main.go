package main

import (
	"context"
	"os"
	"strings"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tradeware/go-bitvavo/pkg/bitvavo"
)

func init() {
	rootCmd.PersistentFlags().String("bitvavo-api-key", "", "bitvavo api key")
	rootCmd.PersistentFlags().String("bitvavo-api-secret", "", "bitvavo api secret")

	rootCmd.AddCommand(timeCmd)
	rootCmd.AddCommand(marketsCmd)
	rootCmd.AddCommand(tickerCmd)
	rootCmd.AddCommand(bookCmd)
	rootCmd.AddCommand(candlesCmd)
	rootCmd.AddCommand(balanceCmd)
	rootCmd.AddCommand(openOrdersCmd)
	rootCmd.AddCommand(placeOrderCmd)
	rootCmd.AddCommand(getOrderCmd)
	rootCmd.AddCommand(cancelOrderCmd)
}

var rootCmd = &cobra.Command{
	Use:   "bitvavo-cli",
	Short: "query markets and manage orders on bitvavo",

	// SilenceUsage is an option to silence usage when an error occurs.
	SilenceUsage: true,
}

// newExchange builds an exchange session from flags or environment. Public
// commands work without credentials.
func newExchange() *bitvavo.Exchange {
	key := viper.GetString("bitvavo-api-key")
	secret := viper.GetString("bitvavo-api-secret")
	return bitvavo.New(key, secret)
}

func main() {
	if err := godotenv.Load(".env.local"); err != nil && !os.IsNotExist(err) {
		log.WithError(err).Warn("can not load .env.local")
	}

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		log.WithError(err).Error("bind pflags error")
	}

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		log.WithError(err).Error("cmd error")
		os.Exit(1)
	}
}
