package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/idilsaglam/todolist/internal/cli"
	"github.com/idilsaglam/todolist/internal/config"
)

func main() {
	// Root flags (apply to every subcommand)
	configFile := flag.String("config", "", "config file (default $XDG_CONFIG_HOME/todo/config.yaml)")
	endpoint := flag.String("endpoint", "", "endpoint to load todos from")
	theme := flag.String("theme", "", "color theme: classic, neon or mono")
	flag.Usage = func() { cli.PrintHelp(os.Stderr) }
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Hand the remaining args to the CLI runner.
	code := cli.Run(ctx, flag.Args(), cli.Options{
		ConfigFile: *configFile,
		Overrides: config.Overrides{
			"endpoint": *endpoint,
			"theme":    *theme,
		},
	})
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	stop()
	os.Exit(code)
}
