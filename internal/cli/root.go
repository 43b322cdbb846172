// Package cli implements qrctl, which runs the desktop commands in-process.
package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"qrdesk/internal/app"
	"qrdesk/internal/config"
	"qrdesk/internal/logging"
	"qrdesk/internal/platform"
	"qrdesk/internal/service"
)

// Version is set at build time with -ldflags "-X qrdesk/internal/cli.Version=...".
var Version = "dev"

// builder returns the command service and a cleanup func.
type builder func(ctx context.Context, debug bool) (service.CommandService, func() error, error)

func Execute() {
	cmd := newRootCmd(buildService, platform.OS{})
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildService assembles the same service the HTTP API uses. Logs go to stderr,
// and only with --debug, so stdout carries command output alone.
func buildService(ctx context.Context, debug bool) (service.CommandService, func() error, error) {
	cfg := config.Load()

	log := logging.Discard()
	if debug {
		log = logging.New(os.Stderr, logging.LoadLocation(cfg.Timezone))
	}

	a, err := app.Build(ctx, cfg, log)
	if err != nil {
		return nil, nil, err
	}
	return a.Commands, a.Close, nil
}

func newRootCmd(build builder, files platform.FileWriter) *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:          "qrctl",
		Short:        "qrctl runs the qrdesk commands from the terminal",
		Version:      Version,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "write JSON logs to stderr")

	// run builds the service for one invocation and releases it afterwards.
	run := func(cmd *cobra.Command, fn func(svc service.CommandService) error) error {
		svc, cleanup, err := build(cmd.Context(), debug)
		if err != nil {
			return err
		}
		if cleanup != nil {
			defer func() { _ = cleanup() }()
		}
		return fn(svc)
	}

	cmd.AddCommand(
		greetCmd(run),
		qrcodeCmd(run, files),
		downloadsCmd(run),
		validateCmd(run),
		exportCmd(run),
	)
	return cmd
}

type runner func(cmd *cobra.Command, fn func(svc service.CommandService) error) error
