package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/MKhiriev/go-holocron/internal/adapter"
	"github.com/MKhiriev/go-holocron/internal/client"
	"github.com/MKhiriev/go-holocron/internal/logger"
	"github.com/MKhiriev/go-holocron/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fs := flag.NewFlagSet("holocron-client", flag.ExitOnError)
	address := fs.String("a", envOr("HOLOCRON_SERVER_URL", "http://localhost:3000"), "Server base URL")
	timeout := fs.Duration("timeout", 10*time.Second, "Request timeout")
	logLevel := fs.String("log-level", "warn", "Log level")
	showBuild := fs.Bool("build-info", false, "Print build info and exit")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: holocron-client [flags] <command> [args]\n\nflags:\n")
		fs.PrintDefaults()
		fmt.Fprintln(fs.Output(), "\n"+client.Usage)
	}
	_ = fs.Parse(os.Args[1:])

	if *showBuild {
		printBuildInfo()
		return
	}

	log := logger.NewLoggerWithLevel("holocron-client", *logLevel)

	api, err := adapter.NewHTTPAPIClient(*address, *timeout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating API client")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err = client.NewApp(api, os.Stdout, log).Run(ctx, fs.Args()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, client.ErrUsage) || errors.Is(err, client.ErrUnknownCommand) {
			fs.Usage()
		}
		stop()
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func printBuildInfo() {
	info := models.AppBuildInfo{Version: buildVersion, Date: buildDate, Commit: buildCommit}
	if info.Version == "" {
		info.Version = "N/A"
	}
	if info.Date == "" {
		info.Date = "N/A"
	}
	if info.Commit == "" {
		info.Commit = "N/A"
	}

	fmt.Printf("Build version: %s\n", info.Version)
	fmt.Printf("Build date: %s\n", info.Date)
	fmt.Printf("Build commit: %s\n", info.Commit)
}
