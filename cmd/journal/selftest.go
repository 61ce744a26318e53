package main

import (
	"fmt"
	"io"

	"github.com/hazz-dev/netcheck/internal/journal"
)

// runSelfTest logs one message per level three times: with every level
// on, with every level off (nothing should appear), and with every level
// back on.
func runSelfTest(out io.Writer, logFile, program string) error {
	j, err := journal.New("test", logFile, program, journal.WithConsole(out))
	if err != nil {
		return fmt.Errorf("opening journal: %w", err)
	}
	defer j.Close()

	fmt.Fprintln(out, "Log messages with default settings.")
	logEveryLevel(j)

	j.SetAll(false)
	fmt.Fprintln(out, "Log messages with all logging set to False.")
	logEveryLevel(j)

	j.SetAll(true)
	fmt.Fprintln(out, "Log messages with all logging set to True.")
	logEveryLevel(j)

	return nil
}

func logEveryLevel(j *journal.Journal) {
	j.Debug("internally speaking, this might be interesting")
	j.Information("you might want to know this")
	j.Warning("this might be serious")
	j.Error("we have a problem Houston")
	j.Critical("it's all over")
}
