package journal

import (
	"fmt"
	"log/slog"
	"strings"
)

// Level is a journal severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInformation
	LevelWarning
	LevelError
	LevelCritical
)

// Levels lists every severity in ascending order.
var Levels = []Level{LevelDebug, LevelInformation, LevelWarning, LevelError, LevelCritical}

// slogLevelCritical sits above slog.LevelError so handlers order it last.
const slogLevelCritical = slog.LevelError + 4

var levelNames = [...]string{"DEBUG", "INFO", "WARNING", "ERROR", "CRITICAL"}

func (l Level) String() string {
	if l < LevelDebug || l > LevelCritical {
		return fmt.Sprintf("LEVEL(%d)", int(l))
	}
	return levelNames[l]
}

func (l Level) valid() bool {
	return l >= LevelDebug && l <= LevelCritical
}

func (l Level) slogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelInformation:
		return slog.LevelInfo
	case LevelWarning:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slogLevelCritical
	}
}

// levelName maps a slog level back to the journal's level names.
func levelName(l slog.Level) string {
	switch {
	case l >= slogLevelCritical:
		return LevelCritical.String()
	case l >= slog.LevelError:
		return LevelError.String()
	case l >= slog.LevelWarn:
		return LevelWarning.String()
	case l >= slog.LevelInfo:
		return LevelInformation.String()
	default:
		return LevelDebug.String()
	}
}

// ParseLevel accepts the short and long spellings used by the CLIs and the
// config file, case-insensitively.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info", "information":
		return LevelInformation, nil
	case "warn", "warning":
		return LevelWarning, nil
	case "error":
		return LevelError, nil
	case "crit", "critical":
		return LevelCritical, nil
	default:
		return 0, fmt.Errorf("unknown level %q", s)
	}
}
