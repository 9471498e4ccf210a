package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/klever-io/klv-gas-station-go/aggregator"
	gas "github.com/klever-io/klv-gas-station-go/aggregator/gasStation"
	"github.com/klever-io/klv-gas-station-go/converter"
	"github.com/shopspring/decimal"
	"github.com/urfave/cli"
)

const (
	unitNative = "native"
	unitGwei   = "gwei"
	unitWei    = "wei"

	defaultRequestTimeout = 10 * time.Second
)

func getCommands() []cli.Command {
	return []cli.Command{
		{
			Name:   "quote",
			Usage:  "Fetch the raw ETH gas station quote and print it as JSON",
			Action: printQuote,
		},
		{
			Name:   "price",
			Usage:  "Fetch the gas price, in wei, for the provided priority",
			Flags:  []cli.Flag{priority},
			Action: printPriceInWei,
		},
		{
			Name:      "convert",
			Usage:     "Convert an amount between gas station units (gwei * 10), gwei and wei",
			ArgsUsage: "AMOUNT",
			Flags:     []cli.Flag{fromUnit, toUnit},
			Action:    printConversion,
		},
	}
}

func createGasPriceFetcher(requestTimeout time.Duration) (aggregator.GasPriceFetcher, error) {
	httpResponseGetter, err := aggregator.NewHttpResponseGetter(requestTimeout)
	if err != nil {
		return nil, err
	}

	fetcher, err := gas.NewGasPriceFetcher(gas.ArgsGasPriceFetcher{
		ResponseGetter: httpResponseGetter,
	})
	if err != nil {
		return nil, err
	}

	return fetcher, nil
}

func printQuote(_ *cli.Context) error {
	fetcher, err := createGasPriceFetcher(defaultRequestTimeout)
	if err != nil {
		return err
	}

	quote, err := fetcher.FetchPriceQuote(context.Background())
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	return encoder.Encode(quote)
}

func printPriceInWei(ctx *cli.Context) error {
	selectedPriority, err := gas.ParsePriority(ctx.String(priority.Name))
	if err != nil {
		return err
	}

	fetcher, err := createGasPriceFetcher(defaultRequestTimeout)
	if err != nil {
		return err
	}

	priceWei, err := fetcher.FetchPriceInWei(context.Background(), selectedPriority)
	if err != nil {
		return err
	}

	priceGwei, err := converter.WeiToGwei(priceWei)
	if err != nil {
		return err
	}

	fmt.Printf("%s: %s wei (%s gwei)\n", selectedPriority, priceWei.String(), priceGwei.String())

	return nil
}

func printConversion(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return fmt.Errorf("expected exactly one AMOUNT argument, got %d", ctx.NArg())
	}

	result, err := convertAmount(ctx.Args().First(), ctx.String(fromUnit.Name), ctx.String(toUnit.Name))
	if err != nil {
		return err
	}

	fmt.Println(result.String())

	return nil
}

func convertAmount(amount string, from string, to string) (decimal.Decimal, error) {
	switch {
	case from == unitNative && to == unitGwei:
		return converter.NativeUnitsToGwei(amount)
	case from == unitNative && to == unitWei:
		gwei, err := converter.NativeUnitsToGwei(amount)
		if err != nil {
			return decimal.Zero, err
		}
		return converter.GweiToWei(gwei)
	case from == unitGwei && to == unitWei:
		return converter.GweiToWei(amount)
	case from == unitWei && to == unitGwei:
		return converter.WeiToGwei(amount)
	}

	return decimal.Zero, fmt.Errorf("unsupported conversion from %q to %q", from, to)
}
