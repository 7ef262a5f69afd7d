// Package strata defines the global resources shared by the components of the
// repository, namely the logger and the list of prometheus collectors.
package strata

import (
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

var logout = zerolog.ConsoleWriter{
	Out:        os.Stderr,
	TimeFormat: time.RFC3339,
}

// Logger is a globally available logger instance.
var Logger = zerolog.New(logout).
	With().Timestamp().Logger().
	With().Caller().Logger().
	Level(zerolog.InfoLevel)

// PromCollectors exposes the prometheus collectors created by the packages of
// this module. An embedding application can register them to the registry of
// its choice.
var PromCollectors []prometheus.Collector
