package gin

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/klever-io/klv-gas-station-go/aggregator"
	"github.com/multiversx/mx-chain-core-go/core/check"
	logger "github.com/multiversx/mx-chain-logger-go"
)

// DisabledInterface is the listen address value that disables the REST API
const DisabledInterface = "off"

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 5 * time.Second
)

var log = logger.GetOrCreate("klv-gas-station-go/api/gin")

// ArgsWebServerHandler is the argument DTO for the NewWebServerHandler function
type ArgsWebServerHandler struct {
	ListenAddress   string
	GasPriceFetcher aggregator.GasPriceFetcher
}

type webServer struct {
	mutHttpServer   sync.Mutex
	httpServer      *http.Server
	listenAddress   string
	gasPriceFetcher aggregator.GasPriceFetcher
}

// NewWebServerHandler returns a new instance of the web server exposing the gas station endpoints
func NewWebServerHandler(args ArgsWebServerHandler) (*webServer, error) {
	if len(args.ListenAddress) == 0 {
		return nil, ErrEmptyListenAddress
	}
	if check.IfNil(args.GasPriceFetcher) {
		return nil, ErrNilGasPriceFetcher
	}

	return &webServer{
		listenAddress:   args.ListenAddress,
		gasPriceFetcher: args.GasPriceFetcher,
	}, nil
}

// StartHttpServer starts serving the REST API in a separate goroutine
func (ws *webServer) StartHttpServer() error {
	ws.mutHttpServer.Lock()
	defer ws.mutHttpServer.Unlock()

	if ws.listenAddress == DisabledInterface {
		log.Debug("web server is disabled")
		return nil
	}
	if ws.httpServer != nil {
		return ErrServerAlreadyStarted
	}

	ws.httpServer = &http.Server{
		Addr:              ws.listenAddress,
		Handler:           ws.createEngine(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func(server *http.Server) {
		log.Info("starting web server", "interface", server.Addr)
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("could not start web server", "interface", server.Addr, "error", err.Error())
		}
	}(ws.httpServer)

	return nil
}

func (ws *webServer) createEngine() *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(cors.Default())
	engine.Use(requestLogger())

	gasGroup := engine.Group("/gas")
	gasGroup.GET("/quote", ws.getQuote)
	gasGroup.GET("/price", ws.getPrice)
	gasGroup.GET("/price/:priority", ws.getPrice)

	engine.GET("/convert/:conversion/:amount", convert)

	return engine
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Debug("api request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}

// Close stops the web server, if started
func (ws *webServer) Close() error {
	ws.mutHttpServer.Lock()
	defer ws.mutHttpServer.Unlock()

	if ws.httpServer == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err := ws.httpServer.Shutdown(ctx)
	ws.httpServer = nil

	return err
}

// IsInterfaceNil returns true if there is no value under the interface
func (ws *webServer) IsInterfaceNil() bool {
	return ws == nil
}
