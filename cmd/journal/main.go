package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/hazz-dev/netcheck/internal/journal"
	"github.com/hazz-dev/netcheck/internal/version"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// levelFlags maps each mutually exclusive severity flag to its level.
var levelFlags = []struct {
	name      string
	shorthand string
	level     journal.Level
	usage     string
}{
	{"debug", "d", journal.LevelDebug, "send a debug message to the specified log file"},
	{"info", "i", journal.LevelInformation, "send an information message to the specified log file"},
	{"warn", "w", journal.LevelWarning, "send a warning message to the specified log file"},
	{"error", "e", journal.LevelError, "send an error message to the specified log file"},
	{"crit", "c", journal.LevelCritical, "send a critical message to the specified log file"},
}

type journalFlags struct {
	logFile string
	test    bool
	levels  map[string]*bool
}

func rootCmd() *cobra.Command {
	f := journalFlags{levels: make(map[string]*bool, len(levelFlags))}
	root := &cobra.Command{
		Use:          "journal [message]",
		Short:        "Send a message to a log file",
		Version:      version.String(),
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			program := filepath.Base(os.Args[0])
			if f.test {
				return runSelfTest(cmd.OutOrStdout(), f.logFile, program)
			}
			if len(args) == 0 {
				return fmt.Errorf("a message is required")
			}
			level, ok := f.selected()
			return sendMessage(cmd.OutOrStdout(), f.logFile, program, level, ok, args[0])
		},
	}

	names := make([]string, 0, len(levelFlags))
	for _, lf := range levelFlags {
		f.levels[lf.name] = root.Flags().BoolP(lf.name, lf.shorthand, false, lf.usage)
		names = append(names, lf.name)
	}
	root.MarkFlagsMutuallyExclusive(names...)

	root.Flags().StringVarP(&f.logFile, "logfile", "l", "", "log file to write to")
	root.Flags().BoolVarP(&f.test, "test", "t", false, "runs test cases")
	_ = root.MarkFlagRequired("logfile")

	return root
}

// selected returns the level chosen on the command line, if any.
func (f *journalFlags) selected() (journal.Level, bool) {
	for _, lf := range levelFlags {
		if *f.levels[lf.name] {
			return lf.level, true
		}
	}
	return 0, false
}

// sendMessage logs message once at level. Without a level flag nothing is
// written, though the log file is still created.
func sendMessage(out io.Writer, logFile, program string, level journal.Level, ok bool, message string) error {
	j, err := journal.New("command", logFile, program, journal.WithConsole(out))
	if err != nil {
		return fmt.Errorf("opening journal: %w", err)
	}
	defer j.Close()

	if ok {
		j.Log(level, message)
	}
	return nil
}
