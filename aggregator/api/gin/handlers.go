package gin

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	gas "github.com/klever-io/klv-gas-station-go/aggregator/gasStation"
	"github.com/klever-io/klv-gas-station-go/converter"
	"github.com/shopspring/decimal"
)

const (
	nativeToGweiConversion = "native-to-gwei"
	gweiToWeiConversion    = "gwei-to-wei"
	weiToGweiConversion    = "wei-to-gwei"
)

var conversions = map[string]func(amount interface{}) (decimal.Decimal, error){
	nativeToGweiConversion: converter.NativeUnitsToGwei,
	gweiToWeiConversion:    converter.GweiToWei,
	weiToGweiConversion:    converter.WeiToGwei,
}

type priceResponse struct {
	Priority string          `json:"priority"`
	Wei      decimal.Decimal `json:"wei"`
	Gwei     decimal.Decimal `json:"gwei"`
}

type conversionResponse struct {
	Conversion string          `json:"conversion"`
	Amount     string          `json:"amount"`
	Result     decimal.Decimal `json:"result"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (ws *webServer) getQuote(c *gin.Context) {
	quote, err := ws.gasPriceFetcher.FetchPriceQuote(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, quote)
}

func (ws *webServer) getPrice(c *gin.Context) {
	name := c.Param("priority")
	if len(name) == 0 {
		name = c.DefaultQuery("priority", gas.DefaultPriority.String())
	}

	priority, err := gas.ParsePriority(name)
	if err != nil {
		respondWithError(c, err)
		return
	}

	priceWei, err := ws.gasPriceFetcher.FetchPriceInWei(c.Request.Context(), priority)
	if err != nil {
		respondWithUpstreamError(c, err)
		return
	}

	priceGwei, err := converter.WeiToGwei(priceWei)
	if err != nil {
		respondWithUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, priceResponse{
		Priority: priority.String(),
		Wei:      priceWei,
		Gwei:     priceGwei,
	})
}

func convert(c *gin.Context) {
	conversion := c.Param("conversion")
	convertHandler, found := conversions[conversion]
	if !found {
		c.JSON(http.StatusNotFound, errorResponse{Error: "unknown conversion " + conversion})
		return
	}

	amount := c.Param("amount")
	result, err := convertHandler(amount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, conversionResponse{
		Conversion: conversion,
		Amount:     amount,
		Result:     result,
	})
}

func respondWithError(c *gin.Context, err error) {
	c.JSON(statusFromError(err), errorResponse{Error: err.Error()})
}

// respondWithUpstreamError is used once the request itself was validated: an invalid amount
// at this point comes from the gas station data, not from the client
func respondWithUpstreamError(c *gin.Context, err error) {
	status := statusFromError(err)
	if errors.Is(err, converter.ErrInvalidAmount) {
		status = http.StatusBadGateway
	}

	c.JSON(status, errorResponse{Error: err.Error()})
}

func statusFromError(err error) int {
	switch {
	case errors.Is(err, gas.ErrFetchFailed):
		return http.StatusBadGateway
	case errors.Is(err, converter.ErrInvalidAmount), errors.Is(err, gas.ErrInvalidPriority):
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}
