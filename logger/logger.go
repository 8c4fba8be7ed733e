package logger

import (
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/jsphweid/fifths/constants"
)

// Fields represents structured log fields
type Fields map[string]interface{}

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var threshold = ParseLevel(constants.GetLogLevel())

func ParseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	}
	return LevelInfo
}

// SetLevel overrides the level read from FIFTHS_LOG_LEVEL.
func SetLevel(l Level) {
	threshold = l
}

func Enabled(l Level) bool {
	return l >= threshold
}

func Debug(msg string, fields Fields) {
	if Enabled(LevelDebug) {
		log.Printf("[DEBUG] %s %v", msg, formatFields(fields))
	}
}

func Info(msg string, fields Fields) {
	if Enabled(LevelInfo) {
		log.Printf("[INFO] %s %v", msg, formatFields(fields))
	}
}

func Warn(msg string, fields Fields) {
	if Enabled(LevelWarn) {
		log.Printf("[WARN] %s %v", msg, formatFields(fields))
	}
}

func Error(msg string, err error, fields Fields) {
	if Enabled(LevelError) {
		log.Printf("[ERROR] %s: %v %v", msg, err, formatFields(fields))
	}
}

// formatFields prints fields as {k=v, ...} with sorted keys
func formatFields(fields Fields) string {
	if len(fields) == 0 {
		return ""
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, fields[k]))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
