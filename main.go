package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"studynexus/internal/di"
	"studynexus/internal/structures"
	"syscall"
)

func main() {
	flags := &structures.CliFlags{}
	flag.StringVar(&flags.ConfigPath, "config", "config/config.yaml", "path to the YAML config file")
	flag.BoolVar(&flags.DebugMode, "debug", false, "mirror logs to the console")
	flag.Parse()

	app, err := di.InitApp(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init error: %s\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "run error: %s\n", err)
		os.Exit(1)
	}
}
