package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/hazz-dev/netcheck/internal/config"
	"github.com/hazz-dev/netcheck/internal/journal"
	"github.com/hazz-dev/netcheck/internal/version"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type probeFlags struct {
	configFile     string
	site           string
	timeout        float64
	suppressNormal bool
	iterate        bool
	waitMinutes    int
	logFile        string
	debug          bool
}

func rootCmd() *cobra.Command {
	var f probeFlags
	root := &cobra.Command{
		Use:          "internet-check",
		Short:        "Check internet connection by retrieving a web page",
		Version:      version.String(),
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := f.resolve(cmd.Flags())
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			return executeProbe(ctx, cmd.OutOrStdout(), cfg, filepath.Base(os.Args[0]))
		},
	}
	bindProbeFlags(root.Flags(), &f)
	return root
}

func bindProbeFlags(fs *pflag.FlagSet, f *probeFlags) {
	def := config.Default()
	fs.StringVarP(&f.configFile, "config", "c", "", "optional YAML config file")
	fs.StringVarP(&f.site, "site", "s", def.Site, "web site to use for test")
	fs.Float64VarP(&f.timeout, "timeout", "t", def.Timeout.Seconds(), "time out in seconds")
	fs.BoolVarP(&f.suppressNormal, "suppress-normal-messages", "x", false, "do not display informational messages")
	fs.BoolVarP(&f.iterate, "iterate", "i", false, "do iterative checking")
	fs.IntVarP(&f.waitMinutes, "wait-time", "w", int(def.Wait.Minutes()), "minutes between iterations")
	fs.StringVarP(&f.logFile, "logfile", "l", def.Journal.Path, "log file for messages")
	fs.BoolVarP(&f.debug, "debug", "d", false, "display debugging messages")
}

// resolve layers explicitly set flags over the config file (if any) over
// the built-in defaults.
func (f *probeFlags) resolve(fs *pflag.FlagSet) (*config.Config, error) {
	cfg := config.Default()
	if f.configFile != "" {
		loaded, err := config.Load(f.configFile)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	if fs.Changed("site") {
		cfg.Site = f.site
	}
	if fs.Changed("timeout") {
		cfg.Timeout = config.Duration{Duration: secondsToDuration(f.timeout)}
	}
	if fs.Changed("iterate") {
		cfg.Iterate = f.iterate
	}
	if fs.Changed("wait-time") {
		cfg.Wait = config.Duration{Duration: time.Duration(f.waitMinutes) * time.Minute}
	}
	if fs.Changed("logfile") {
		cfg.Journal.Path = f.logFile
	}
	if fs.Changed("debug") {
		cfg.Heartbeat = f.debug
	}
	if f.suppressNormal {
		cfg.SetLevel(journal.LevelInformation, false)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	return cfg, nil
}

func secondsToDuration(s float64) time.Duration {
	return time.Duration(math.Round(s * float64(time.Second)))
}
