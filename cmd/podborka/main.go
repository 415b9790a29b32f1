package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"podborka/pkg/aggregator"
	"podborka/pkg/cache"
	"podborka/pkg/config"
	"podborka/pkg/dispatcher"
	"podborka/pkg/fetch"
	"podborka/pkg/refresh"
	"podborka/pkg/source"
	"podborka/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"f" long:"config" env:"CONFIG" default:"config.yml" description:"config file"`
	Listen string `short:"l" long:"listen" env:"LISTEN" description:"listen address, overrides config"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	setupLog(opts.Debug, opts.NoColor, os.Getenv("TMDB_API_KEY"))

	log.Printf("[INFO] starting podborka version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	if err := run(ctx, opts); err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}

	log.Print("[INFO] shutdown complete")
}

func run(ctx context.Context, opts Opts) error {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	disp := makeDispatcher(cfg)

	refresher := refresh.New(disp, cfg.Schedule.RefreshInterval, nil)
	refresher.Start(ctx)

	srv := server.New(cfg, disp, revision, opts.Debug)
	err = srv.Run(ctx)

	cancel()
	refresher.Wait()

	return err
}

// makeDispatcher wires the fetch client, source adapters, topic registry and
// cache into a single provider the server and the refresher share
func makeDispatcher(cfg *config.Config) *dispatcher.Dispatcher {
	client := fetch.New(cfg.Fetch.Timeout, cfg.Fetch.UserAgent, cfg.Fetch.AcceptLanguage)

	telegram := source.NewTelegram(client, "")
	links := source.NewSiteLinks(client)
	catalog := source.NewTMDB(client, source.TMDBConfig{
		APIKey:        cfg.TMDB.APIKey,
		Language:      cfg.TMDB.Language,
		MinRating:     cfg.TMDB.MinRating,
		MinVotesTV:    cfg.TMDB.MinVotesTV,
		MinVotesMovie: cfg.TMDB.MinVotesMovie,
	})
	events := source.NewKudaGo(client, source.KudaGoConfig{
		Location:    cfg.KudaGo.Location,
		PageSize:    cfg.KudaGo.PageSize,
		HorizonDays: cfg.KudaGo.HorizonDays,
	})

	registry := aggregator.New(telegram, links, catalog, events, aggregator.Config{
		EventsSite:     cfg.Sources.EventsSite,
		AgroSites:      cfg.Sources.AgroSites,
		AISites:        cfg.Sources.AISites,
		EventsChannels: cfg.Telegram.Afisha,
		AgroChannels:   cfg.Telegram.Agro,
		SVOChannels:    cfg.Telegram.SVO,
	})

	return dispatcher.New(registry, cache.NewStore(), cfg.TTL)
}

func setupLog(dbg, noColor bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	if dbg {
		logOpts = append(logOpts, lgr.Debug)
	}

	if !noColor {
		colorizer := lgr.Mapper{
			ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
			WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
			InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
			DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
			CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
			TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
		}
		logOpts = append(logOpts, lgr.Map(colorizer))
	}

	var secrets []string
	for _, s := range secs {
		if s != "" {
			secrets = append(secrets, s)
		}
	}
	if len(secrets) > 0 {
		logOpts = append(logOpts, lgr.Secret(secrets...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
