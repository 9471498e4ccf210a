package gin

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	gas "github.com/klever-io/klv-gas-station-go/aggregator/gasStation"
	"github.com/klever-io/klv-gas-station-go/aggregator/mock"
	"github.com/klever-io/klv-gas-station-go/converter"
	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func createMockArgsWebServer() ArgsWebServerHandler {
	return ArgsWebServerHandler{
		ListenAddress:   "localhost:0",
		GasPriceFetcher: &mock.GasPriceFetcherStub{},
	}
}

func doRequest(t *testing.T, ws *webServer, path string) (int, map[string]interface{}) {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, path, nil)
	ws.createEngine().ServeHTTP(recorder, request)

	body := make(map[string]interface{})
	err := json.Unmarshal(recorder.Body.Bytes(), &body)
	require.Nil(t, err)

	return recorder.Code, body
}

func TestNewWebServerHandler(t *testing.T) {
	t.Parallel()

	t.Run("empty listen address should error", func(t *testing.T) {
		t.Parallel()

		args := createMockArgsWebServer()
		args.ListenAddress = ""

		ws, err := NewWebServerHandler(args)
		assert.True(t, check.IfNil(ws))
		assert.Equal(t, ErrEmptyListenAddress, err)
	})
	t.Run("nil gas price fetcher should error", func(t *testing.T) {
		t.Parallel()

		args := createMockArgsWebServer()
		args.GasPriceFetcher = nil

		ws, err := NewWebServerHandler(args)
		assert.True(t, check.IfNil(ws))
		assert.Equal(t, ErrNilGasPriceFetcher, err)
	})
	t.Run("should work", func(t *testing.T) {
		t.Parallel()

		ws, err := NewWebServerHandler(createMockArgsWebServer())
		assert.False(t, check.IfNil(ws))
		assert.Nil(t, err)
	})
}

func TestWebServer_StartAndClose(t *testing.T) {
	t.Parallel()

	t.Run("disabled interface should not start", func(t *testing.T) {
		t.Parallel()

		args := createMockArgsWebServer()
		args.ListenAddress = DisabledInterface
		ws, _ := NewWebServerHandler(args)

		err := ws.StartHttpServer()
		assert.Nil(t, err)
		assert.Nil(t, ws.httpServer)
		assert.Nil(t, ws.Close())
	})
	t.Run("double start should error", func(t *testing.T) {
		t.Parallel()

		ws, _ := NewWebServerHandler(createMockArgsWebServer())

		err := ws.StartHttpServer()
		require.Nil(t, err)

		err = ws.StartHttpServer()
		assert.Equal(t, ErrServerAlreadyStarted, err)

		assert.Nil(t, ws.Close())
		assert.Nil(t, ws.httpServer)
	})
}

func TestWebServer_GetQuote(t *testing.T) {
	t.Parallel()

	t.Run("fetch error should return bad gateway", func(t *testing.T) {
		t.Parallel()

		args := createMockArgsWebServer()
		args.GasPriceFetcher = &mock.GasPriceFetcherStub{
			FetchPriceQuoteCalled: func(ctx context.Context) (*gas.PriceQuoteResponse, error) {
				return nil, fmt.Errorf("%w: %w", gas.ErrFetchFailed, assert.AnError)
			},
		}
		ws, _ := NewWebServerHandler(args)

		code, body := doRequest(t, ws, "/gas/quote")
		assert.Equal(t, http.StatusBadGateway, code)
		assert.Contains(t, body["error"], assert.AnError.Error())
	})
	t.Run("should work", func(t *testing.T) {
		t.Parallel()

		args := createMockArgsWebServer()
		args.GasPriceFetcher = &mock.GasPriceFetcherStub{
			FetchPriceQuoteCalled: func(ctx context.Context) (*gas.PriceQuoteResponse, error) {
				return &gas.PriceQuoteResponse{
					Fast:     decimal.RequireFromString("120.4"),
					BlockNum: 42,
				}, nil
			},
		}
		ws, _ := NewWebServerHandler(args)

		code, body := doRequest(t, ws, "/gas/quote")
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, "120.4", body["fast"])
		assert.Equal(t, float64(42), body["blockNum"])
	})
}

func TestWebServer_GetPrice(t *testing.T) {
	t.Parallel()

	createFetcher := func(requested *gas.Priority) *mock.GasPriceFetcherStub {
		return &mock.GasPriceFetcherStub{
			FetchPriceInWeiCalled: func(ctx context.Context, priority gas.Priority) (decimal.Decimal, error) {
				*requested = priority
				return decimal.RequireFromString("12040000000"), nil
			},
		}
	}

	t.Run("invalid priority should return bad request", func(t *testing.T) {
		t.Parallel()

		var requested gas.Priority
		args := createMockArgsWebServer()
		args.GasPriceFetcher = createFetcher(&requested)
		ws, _ := NewWebServerHandler(args)

		code, body := doRequest(t, ws, "/gas/price/foo")
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Contains(t, body["error"], "foo")
		assert.Equal(t, gas.Priority(""), requested)
	})
	t.Run("missing priority should use the default one", func(t *testing.T) {
		t.Parallel()

		var requested gas.Priority
		args := createMockArgsWebServer()
		args.GasPriceFetcher = createFetcher(&requested)
		ws, _ := NewWebServerHandler(args)

		code, body := doRequest(t, ws, "/gas/price")
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, gas.DefaultPriority, requested)
		assert.Equal(t, "fast", body["priority"])
		assert.Equal(t, "12040000000", body["wei"])
		assert.Equal(t, "12.04", body["gwei"])
	})
	t.Run("query priority should work", func(t *testing.T) {
		t.Parallel()

		var requested gas.Priority
		args := createMockArgsWebServer()
		args.GasPriceFetcher = createFetcher(&requested)
		ws, _ := NewWebServerHandler(args)

		code, _ := doRequest(t, ws, "/gas/price?priority=safeLow")
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, gas.PrioritySafeLow, requested)
	})
	t.Run("path priority should work", func(t *testing.T) {
		t.Parallel()

		var requested gas.Priority
		args := createMockArgsWebServer()
		args.GasPriceFetcher = createFetcher(&requested)
		ws, _ := NewWebServerHandler(args)

		code, _ := doRequest(t, ws, "/gas/price/fastest")
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, gas.PriorityFastest, requested)
	})
	t.Run("unexpected error should return internal server error", func(t *testing.T) {
		t.Parallel()

		args := createMockArgsWebServer()
		args.GasPriceFetcher = &mock.GasPriceFetcherStub{
			FetchPriceInWeiCalled: func(ctx context.Context, priority gas.Priority) (decimal.Decimal, error) {
				return decimal.Zero, assert.AnError
			},
		}
		ws, _ := NewWebServerHandler(args)

		code, _ := doRequest(t, ws, "/gas/price/average")
		assert.Equal(t, http.StatusInternalServerError, code)
	})
	t.Run("invalid upstream price should return bad gateway", func(t *testing.T) {
		t.Parallel()

		args := createMockArgsWebServer()
		args.GasPriceFetcher = &mock.GasPriceFetcherStub{
			FetchPriceInWeiCalled: func(ctx context.Context, priority gas.Priority) (decimal.Decimal, error) {
				return decimal.Zero, fmt.Errorf("%w: -1, expected a non-negative value in %s",
					converter.ErrInvalidAmount, converter.NativeUnitName)
			},
		}
		ws, _ := NewWebServerHandler(args)

		code, body := doRequest(t, ws, "/gas/price/fast")
		assert.Equal(t, http.StatusBadGateway, code)
		assert.Contains(t, body["error"], converter.ErrInvalidAmount.Error())
	})
	t.Run("fetch failure wrapping an invalid amount should return bad gateway", func(t *testing.T) {
		t.Parallel()

		args := createMockArgsWebServer()
		args.GasPriceFetcher = &mock.GasPriceFetcherStub{
			FetchPriceQuoteCalled: func(ctx context.Context) (*gas.PriceQuoteResponse, error) {
				return nil, fmt.Errorf("%w: %w", gas.ErrFetchFailed, converter.ErrInvalidAmount)
			},
		}
		ws, _ := NewWebServerHandler(args)

		code, _ := doRequest(t, ws, "/gas/quote")
		assert.Equal(t, http.StatusBadGateway, code)
	})
}

func TestWebServer_Convert(t *testing.T) {
	t.Parallel()

	ws, _ := NewWebServerHandler(createMockArgsWebServer())

	testCases := []struct {
		path           string
		expectedCode   int
		expectedResult string
	}{
		{path: "/convert/native-to-gwei/120.4", expectedCode: http.StatusOK, expectedResult: "12.04"},
		{path: "/convert/gwei-to-wei/361", expectedCode: http.StatusOK, expectedResult: "361000000000"},
		{path: "/convert/wei-to-gwei/1000000000", expectedCode: http.StatusOK, expectedResult: "1"},
		{path: "/convert/wei-to-gwei/-1", expectedCode: http.StatusBadRequest},
		{path: "/convert/gwei-to-wei/abc", expectedCode: http.StatusBadRequest},
		{path: "/convert/gwei-to-wei/1e50000000", expectedCode: http.StatusBadRequest},
		{path: "/convert/wei-to-gwei/1e-2147483648", expectedCode: http.StatusBadRequest},
		{path: "/convert/ether-to-wei/1", expectedCode: http.StatusNotFound},
	}

	for _, tc := range testCases {
		code, body := doRequest(t, ws, tc.path)
		assert.Equal(t, tc.expectedCode, code, tc.path)
		if tc.expectedCode == http.StatusOK {
			assert.Equal(t, tc.expectedResult, body["result"], tc.path)
		} else {
			assert.NotEmpty(t, body["error"], tc.path)
		}
	}
}
