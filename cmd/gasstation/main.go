package main

import (
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/klever-io/klv-gas-station-go/aggregator"
	"github.com/klever-io/klv-gas-station-go/aggregator/api/gin"
	gas "github.com/klever-io/klv-gas-station-go/aggregator/gasStation"
	"github.com/klever-io/klv-gas-station-go/aggregator/notifees"
	"github.com/klever-io/klv-gas-station-go/config"
	chainCore "github.com/multiversx/mx-chain-core-go/core"
	"github.com/multiversx/mx-chain-core-go/core/check"
	chainFactory "github.com/multiversx/mx-chain-go/cmd/node/factory"
	chainCommon "github.com/multiversx/mx-chain-go/common"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/multiversx/mx-chain-logger-go/file"
	"github.com/multiversx/mx-sdk-go/core/polling"
	"github.com/urfave/cli"
)

const (
	defaultLogsPath = "logs"
	logFilePrefix   = "klv-gas-station"

	defaultPercentDifferenceToNotify = 1
)

var log = logger.GetOrCreate("gasStation/main")

// appVersion should be populated at build time using ldflags
// Usage examples:
// linux/mac:
//
//	go build -i -v -ldflags="-X main.appVersion=$(git describe --tags --long --dirty)"
//
// windows:
//
//	for /f %i in ('git describe --tags --long --dirty') do set VERS=%i
//	go build -i -v -ldflags="-X main.appVersion=%VERS%"
var appVersion = chainCommon.UnVersionedAppString

func main() {
	app := cli.NewApp()
	app.Name = "Gas station CLI app"
	app.Usage = "Gas station will fetch the ETH gas station recommended gas prices, convert them to wei and" +
		" report the priorities whose price changed"
	app.Flags = getFlags()
	app.Commands = getCommands()
	machineID := chainCore.GetAnonymizedMachineID(app.Name)
	app.Version = fmt.Sprintf("%s/%s/%s-%s/%s", appVersion, runtime.Version(), runtime.GOOS, runtime.GOARCH, machineID)
	app.Authors = []cli.Author{
		{
			Name:  "The Klever Blockchain Team",
			Email: "contact@klever.io",
		},
	}

	app.Action = func(c *cli.Context) error {
		return startGasStation(c, app.Version)
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}

func startGasStation(ctx *cli.Context, version string) error {
	flagsConfig := getFlagsConfig(ctx)

	fileLogging, errLogger := attachFileLogger(log, flagsConfig)
	if errLogger != nil {
		return errLogger
	}

	log.Info("starting gas station watcher", "version", version, "pid", os.Getpid())

	cfg, err := loadConfig(flagsConfig.ConfigurationFile)
	if err != nil {
		return err
	}

	if !check.IfNil(fileLogging) {
		logsCfg := cfg.GeneralConfig.Logs
		timeLogLifeSpan := time.Second * time.Duration(logsCfg.LogFileLifeSpanInSec)
		sizeLogLifeSpanInMB := uint64(logsCfg.LogFileLifeSpanInMB)
		err = fileLogging.ChangeFileLifeSpan(timeLogLifeSpan, sizeLogLifeSpanInMB)
		if err != nil {
			return err
		}
	}

	httpResponseGetter, err := aggregator.NewHttpResponseGetter(time.Second * time.Duration(cfg.GeneralConfig.RequestTimeoutInSeconds))
	if err != nil {
		return err
	}

	gasPriceFetcher, err := gas.NewGasPriceFetcher(gas.ArgsGasPriceFetcher{
		ResponseGetter: httpResponseGetter,
	})
	if err != nil {
		return err
	}

	logNotifee, err := notifees.NewLogNotifee(notifees.ArgsLogNotifee{})
	if err != nil {
		return err
	}

	argsGasPriceNotifier := aggregator.ArgsGasPriceNotifier{
		Priorities:       createWatchedPriorities(cfg.Priorities),
		GasPriceFetcher:  gasPriceFetcher,
		Notifee:          logNotifee,
		AutoSendInterval: time.Second * time.Duration(cfg.GeneralConfig.AutoSendIntervalInSeconds),
	}
	for _, watched := range argsGasPriceNotifier.Priorities {
		log.Info("watching gas station priority", "priority", watched.Priority.String(),
			"percent difference to notify", watched.PercentDifferenceToNotify)
	}

	gasPriceNotifier, err := aggregator.NewGasPriceNotifier(argsGasPriceNotifier)
	if err != nil {
		return err
	}

	argsPollingHandler := polling.ArgsPollingHandler{
		Log:              log,
		Name:             "gas price notifier polling handler",
		PollingInterval:  time.Second * time.Duration(cfg.GeneralConfig.PollIntervalInSeconds),
		PollingWhenError: time.Second * time.Duration(cfg.GeneralConfig.PollIntervalInSeconds),
		Executor:         gasPriceNotifier,
	}

	pollingHandler, err := polling.NewPollingHandler(argsPollingHandler)
	if err != nil {
		return err
	}

	httpServerWrapper, err := gin.NewWebServerHandler(gin.ArgsWebServerHandler{
		ListenAddress:   flagsConfig.RestApiInterface,
		GasPriceFetcher: gasPriceFetcher,
	})
	if err != nil {
		return err
	}

	err = httpServerWrapper.StartHttpServer()
	if err != nil {
		return err
	}

	log.Info("starting gas price polling", "url", gas.EthGasStationAPIURL)

	err = pollingHandler.StartProcessingLoop()
	if err != nil {
		return err
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	<-sigs

	log.Info("application closing, closing polling handler and web server...")

	err = httpServerWrapper.Close()
	log.LogIfError(err)

	return pollingHandler.Close()
}

func loadConfig(filepath string) (config.GasStationConfig, error) {
	cfg := config.GasStationConfig{}
	err := chainCore.LoadTomlFile(&cfg, filepath)
	if err != nil {
		return config.GasStationConfig{}, err
	}

	return cfg, nil
}

func createWatchedPriorities(priorities []config.PriorityConfig) []*aggregator.ArgsWatchedPriority {
	watched := make([]*aggregator.ArgsWatchedPriority, 0, len(gas.Priorities))
	if len(priorities) == 0 {
		for _, priority := range gas.Priorities {
			watched = append(watched, &aggregator.ArgsWatchedPriority{
				Priority:                  priority,
				PercentDifferenceToNotify: defaultPercentDifferenceToNotify,
			})
		}

		return watched
	}

	for _, priority := range priorities {
		watched = append(watched, &aggregator.ArgsWatchedPriority{
			Priority:                  gas.Priority(priority.Priority),
			PercentDifferenceToNotify: priority.PercentDifferenceToNotify,
		})
	}

	return watched
}

func attachFileLogger(log logger.Logger, flagsConfig config.ContextFlagsConfig) (chainFactory.FileLoggingHandler, error) {
	var fileLogging chainFactory.FileLoggingHandler
	var err error
	if flagsConfig.SaveLogFile {
		args := file.ArgsFileLogging{
			WorkingDir:      flagsConfig.WorkingDir,
			DefaultLogsPath: defaultLogsPath,
			LogFilePrefix:   logFilePrefix,
		}
		fileLogging, err = file.NewFileLogging(args)
		if err != nil {
			return nil, fmt.Errorf("%w creating a log file", err)
		}
	}

	err = logger.SetDisplayByteSlice(logger.ToHex)
	log.LogIfError(err)
	logger.ToggleLoggerName(flagsConfig.EnableLogName)
	logLevelFlagValue := flagsConfig.LogLevel
	err = logger.SetLogLevel(logLevelFlagValue)
	if err != nil {
		return nil, err
	}

	if flagsConfig.DisableAnsiColor {
		err = logger.RemoveLogObserver(os.Stdout)
		if err != nil {
			return nil, err
		}

		err = logger.AddLogObserver(os.Stdout, &logger.PlainFormatter{})
		if err != nil {
			return nil, err
		}
	}
	log.Trace("logger updated", "level", logLevelFlagValue, "disable ANSI color", flagsConfig.DisableAnsiColor)

	return fileLogging, nil
}
