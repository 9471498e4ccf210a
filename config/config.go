package config

// GasStationConfig will hold the gas station watcher configuration
type GasStationConfig struct {
	GeneralConfig GeneralConfig
	Priorities    []PriorityConfig
}

// GeneralConfig will hold the general settings
type GeneralConfig struct {
	PollIntervalInSeconds     uint64
	AutoSendIntervalInSeconds uint64
	RequestTimeoutInSeconds   uint64
	Logs                      LogsConfig
}

// LogsConfig will hold settings related to the logging sub-system
type LogsConfig struct {
	LogFileLifeSpanInSec int
	LogFileLifeSpanInMB  int
}

// PriorityConfig will hold the settings for a watched gas station priority
type PriorityConfig struct {
	Priority                  string
	PercentDifferenceToNotify uint32
}

// ContextFlagsConfig the configuration for flags
type ContextFlagsConfig struct {
	WorkingDir        string
	LogLevel          string
	DisableAnsiColor  bool
	ConfigurationFile string
	SaveLogFile       bool
	EnableLogName     bool
	RestApiInterface  string
}
