// Command wiimousedriverd discovers a Wii Remote, drives it through the
// tracking and button-mapping pipeline, and writes an absolute-position
// virtual pointer plus mapped key presses to the host. It serves a Unix
// control socket for live calibration and rebinding and persists settings
// to a plain-text config file.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/friedelschoen/wiimouse/pkg/driver"
	"github.com/friedelschoen/wiimouse/pkg/udev"
	"github.com/friedelschoen/wiimouse/pkg/wmconfig"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var socketPath string
	var configPath string
	var logFormat string

	root := &cobra.Command{
		Use:     "wiimousedriverd",
		Short:   "Turns a Wii Remote's IR camera into an absolute-position mouse",
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(logFormat)
			return runDriver(cmd.Context(), socketPath, configPath, log)
		},
	}

	root.PersistentFlags().StringVar(&socketPath, "socket-path", "", "control socket path (default: config file's socket_address, or "+driver.DefaultSocketAddress+")")
	root.PersistentFlags().StringVar(&configPath, "config-file", "wiimouse.conf", "path to the on-disk configuration store")
	root.PersistentFlags().StringVar(&logFormat, "log-format", "console", "log output format: console or json")

	root.AddCommand(newDevicesCmd())
	return root
}

func newLogger(format string) zerolog.Logger {
	if format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
}

func runDriver(ctx context.Context, socketPath, configPath string, log zerolog.Logger) error {
	cfg := wmconfig.New(configPath)
	if err := cfg.ProvideDefault("socket_address", driver.DefaultSocketAddress); err != nil {
		return err
	}
	if err := cfg.Load(func(err error) {
		log.Warn().Err(err).Msg("config: dropping malformed entry")
	}); err != nil {
		return fmt.Errorf("loading config file: %w", err)
	}

	if socketPath == "" {
		socketPath, _ = cfg.String("socket_address")
	}

	d := driver.New(cfg, log)
	if err := d.OpenControlSocket(socketPath); err != nil {
		return err
	}
	log.Info().Str("path", socketPath).Msg("driver: control socket listening")

	stop := make(chan struct{})
	if err := cfg.Watch(stop, log); err != nil {
		log.Warn().Err(err).Msg("config: hot-reload watcher unavailable")
	}
	defer close(stop)

	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	return d.Run(ctx)
}

func newDevicesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "devices",
		Short: "List all HID devices currently visible to udev",
		RunE: func(cmd *cobra.Command, args []string) error {
			enumerate := udev.NewEnumerate()
			if err := enumerate.AddMatchSubsystem("hid"); err != nil {
				return err
			}
			syspaths, err := enumerate.Devices()
			if err != nil {
				return err
			}
			for p := range syspaths {
				fmt.Println(p)
			}
			return nil
		},
	}
}
