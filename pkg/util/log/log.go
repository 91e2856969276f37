package log

import (
	"flag"
	"fmt"
	"os"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/weaveworks/common/logging"
)

var (
	// Logger is usable before InitLogger so that early fatal errors are
	// still printed.
	Logger = newBasicLogger(logging.Format{})
)

type Config struct {
	LogFormat logging.Format `yaml:"log_format"`
	LogLevel  logging.Level  `yaml:"log_level"`
}

func (c *Config) RegisterFlags(f *flag.FlagSet) {
	c.LogFormat.RegisterFlags(f)
	c.LogLevel.RegisterFlags(f)
}

func InitLogger(cfg *Config) {
	l := newBasicLogger(cfg.LogFormat)

	logger := log.With(l, "caller", log.Caller(5))
	Logger = level.NewFilter(logger, cfg.LogLevel.Gokit)
}

func newBasicLogger(format logging.Format) log.Logger {
	var logger log.Logger
	if format.String() == "json" {
		logger = log.NewJSONLogger(log.NewSyncWriter(os.Stdout))
	} else {
		logger = log.NewLogfmtLogger(log.NewSyncWriter(os.Stdout))
	}

	return log.With(logger, "ts", log.DefaultTimestampUTC)
}

func CheckFatal(location string, err error) {
	if err != nil {
		logger := level.Error(Logger)
		if location != "" {
			logger = log.With(logger, "msg", "error "+location)
		}

		_ = logger.Log("err", fmt.Sprintf("%+v", err))
		os.Exit(1)
	}
}
