package main

import (
	"context"
	"flag"
	"os"

	"github.com/ValerySidorin/assetmirror/pkg/fetcher"
	util_log "github.com/ValerySidorin/assetmirror/pkg/util/log"
	"github.com/prometheus/client_golang/prometheus"
	"gopkg.in/yaml.v2"
)

type config struct {
	Fetcher fetcher.Config  `yaml:"fetcher"`
	Log     util_log.Config `yaml:"log"`
}

func (c *config) registerFlags(f *flag.FlagSet) {
	c.Fetcher.RegisterFlags(f)
	c.Log.RegisterFlags(f)
}

func main() {
	var (
		cfg        config
		configFile string
	)

	flag.StringVar(&configFile, "config.file", "", "Path to a YAML configuration file. Flags take precedence over values from the file.")
	cfg.registerFlags(flag.CommandLine)
	flag.Parse()

	if configFile != "" {
		buf, err := os.ReadFile(configFile)
		util_log.CheckFatal("reading config file", err)
		util_log.CheckFatal("parsing config file", yaml.Unmarshal(buf, &cfg))

		//Reparse so that flags win over the config file
		flag.Parse()
	}

	util_log.InitLogger(&cfg.Log)

	f, err := fetcher.New(cfg.Fetcher, fetcher.FallbackImages(), prometheus.DefaultRegisterer, util_log.Logger)
	util_log.CheckFatal("initializing fetcher", err)

	ctx := context.Background()
	util_log.CheckFatal("starting fetcher", f.StartAsync(ctx))

	if err := f.AwaitTerminated(ctx); err != nil {
		if failure := f.FailureCase(); failure != nil {
			err = failure
		}

		util_log.CheckFatal("downloading fallback images", err)
	}
}
