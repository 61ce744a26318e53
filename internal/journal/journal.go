// Package journal is a small logger that tags every message with a program
// label and writes it to the console and to a size-rotated log file. Each of
// the five severities can be switched on or off at any time.
package journal

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync/atomic"
)

const (
	// DefaultMaxBytes is the log file size that triggers rotation.
	DefaultMaxBytes = 10000
	// DefaultBackupCount is the number of rotated files kept.
	DefaultBackupCount = 1
)

// Journal writes leveled messages to the console and a rotating log file.
type Journal struct {
	name    string
	program string
	enabled [len(levelNames)]atomic.Bool
	file    *RotatingFile
	logger  *slog.Logger
}

type options struct {
	console  io.Writer
	errOut   io.Writer
	maxBytes int64
	backups  int
	levels   map[Level]bool
}

// Option configures a Journal.
type Option func(*options)

// WithLevel sets the initial enable flag for level. Levels default to enabled.
func WithLevel(level Level, enabled bool) Option {
	return func(o *options) { o.levels[level] = enabled }
}

// WithMaxBytes sets the rotation threshold. Zero disables rotation.
func WithMaxBytes(n int64) Option {
	return func(o *options) { o.maxBytes = n }
}

// WithBackupCount sets how many rotated files are kept. Zero disables rotation.
func WithBackupCount(n int) Option {
	return func(o *options) { o.backups = n }
}

// WithConsole replaces standard output as the console sink.
func WithConsole(w io.Writer) Option {
	return func(o *options) { o.console = w }
}

// WithErrorOutput replaces standard error for reporting log file write failures.
func WithErrorOutput(w io.Writer) Option {
	return func(o *options) { o.errOut = w }
}

// New opens the log file at path and returns a Journal named name whose
// lines are labelled with program. A log file that cannot be opened is an
// error; later write failures are reported on the error output.
func New(name, path, program string, opts ...Option) (*Journal, error) {
	o := options{
		console:  os.Stdout,
		errOut:   os.Stderr,
		maxBytes: DefaultMaxBytes,
		backups:  DefaultBackupCount,
		levels:   make(map[Level]bool),
	}
	for _, opt := range opts {
		opt(&o)
	}

	f, err := OpenRotatingFile(path, o.maxBytes, o.backups)
	if err != nil {
		return nil, fmt.Errorf("journal %q: opening log file: %w", name, err)
	}

	j := &Journal{
		name:    name,
		program: program,
		file:    f,
		logger:  slog.New(newLineHandler(program, o.console, f, o.errOut)),
	}
	for _, l := range Levels {
		enabled, ok := o.levels[l]
		j.enabled[l].Store(!ok || enabled)
	}
	return j, nil
}

// Name returns the journal's logical name.
func (j *Journal) Name() string { return j.name }

// Program returns the label prefixed to every message.
func (j *Journal) Program() string { return j.program }

// Path returns the active log file path.
func (j *Journal) Path() string { return j.file.Path() }

// SetEnabled switches level on or off; it takes effect on the next call.
func (j *Journal) SetEnabled(level Level, enabled bool) {
	if level.valid() {
		j.enabled[level].Store(enabled)
	}
}

// SetAll switches every level on or off.
func (j *Journal) SetAll(enabled bool) {
	for _, l := range Levels {
		j.enabled[l].Store(enabled)
	}
}

// Enabled reports whether messages at level are currently written.
func (j *Journal) Enabled(level Level) bool {
	return level.valid() && j.enabled[level].Load()
}

// Log writes msg at level unless that level is disabled.
func (j *Journal) Log(level Level, msg string) {
	if !j.Enabled(level) {
		return
	}
	j.logger.Log(context.Background(), level.slogLevel(), msg)
}

func (j *Journal) Debug(msg string)       { j.Log(LevelDebug, msg) }
func (j *Journal) Information(msg string) { j.Log(LevelInformation, msg) }
func (j *Journal) Warning(msg string)     { j.Log(LevelWarning, msg) }
func (j *Journal) Error(msg string)       { j.Log(LevelError, msg) }
func (j *Journal) Critical(msg string)    { j.Log(LevelCritical, msg) }

// Close closes the log file.
func (j *Journal) Close() error {
	return j.file.Close()
}
