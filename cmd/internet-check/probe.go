package main

import (
	"context"
	"fmt"
	"io"

	"github.com/hazz-dev/netcheck/internal/checker"
	"github.com/hazz-dev/netcheck/internal/config"
	"github.com/hazz-dev/netcheck/internal/journal"
	"github.com/hazz-dev/netcheck/internal/monitor"
)

// executeProbe runs one check and, in iterate mode, keeps checking until
// ctx is cancelled. Check outcomes never produce an error; only failing to
// open the journal does.
func executeProbe(ctx context.Context, out io.Writer, cfg *config.Config, program string) error {
	opts, err := cfg.JournalOptions()
	if err != nil {
		return err
	}
	opts = append(opts, journal.WithConsole(out))

	j, err := journal.New("command", cfg.Journal.Path, program, opts...)
	if err != nil {
		return fmt.Errorf("opening journal: %w", err)
	}
	defer j.Close()

	m := monitor.New(
		checker.NewHTTP(cfg.Site, cfg.Timeout.Duration),
		j,
		cfg.Wait.Duration,
		cfg.Heartbeat,
	)
	m.RunOnce(ctx)

	if !cfg.Iterate {
		return nil
	}

	m.Run(ctx)
	// Leave the terminal on a clean line after ^C.
	fmt.Fprintln(out, "\r")
	return nil
}
