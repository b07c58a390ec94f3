package logs

import logging "github.com/ipfs/go-log/v2"

// SetAllLoggers sets the level of every logger, keeping the chatty
// storage and dependency injection internals quieter than the node's own modules.
func SetAllLoggers(level logging.LogLevel) {
	logging.SetAllLoggers(level)
	_ = logging.SetLogLevel("badger", "WARN")
	_ = logging.SetLogLevel("fx", "WARN")
}
