package notifees

// Logger defines the logging component used to report gas price changes
type Logger interface {
	Info(message string, args ...interface{})
	IsInterfaceNil() bool
}
