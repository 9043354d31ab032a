package main

import (
	"context"
	"fmt"
	"os"

	"github.com/saikaranam22/VA-Demo/internal/cli"
	"github.com/saikaranam22/VA-Demo/internal/config"
	"github.com/saikaranam22/VA-Demo/internal/logging"
	"github.com/saikaranam22/VA-Demo/internal/session"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		return err
	}

	log, err := logging.New(cfg.LogLevel, os.Stderr)
	if err != nil {
		return err
	}

	sess := session.New(log)
	return cli.NewApp(cfg, sess, log, os.Stdin, os.Stdout).Run(ctx)
}
