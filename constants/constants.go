package constants

import (
	"os"
	"strconv"
)

// A4 in Hz for the standard well-tempered tuning.
const StandardReferenceHz = 440.0

// midi number of A4
const ReferenceMidi = 69

func GetCacheSize() int {
	return getInt("FIFTHS_CACHE_SIZE", 0)
}

func GetReferenceHz() float64 {
	val := os.Getenv("FIFTHS_REFERENCE_HZ")
	if val == "" {
		return StandardReferenceHz
	}
	hz, err := strconv.ParseFloat(val, 64)
	if err != nil || hz <= 0 {
		panic("FIFTHS_REFERENCE_HZ must be a positive number, got " + val)
	}
	return hz
}

func GetLogLevel() string {
	level := os.Getenv("FIFTHS_LOG_LEVEL")
	if level != "" {
		return level
	}
	return "info"
}

// GetDefaultOctave is where pitch classes are placed when a melodic contour
// needs a height for them and nothing earlier carries an octave.
func GetDefaultOctave() int {
	return getInt("FIFTHS_DEFAULT_OCTAVE", 4)
}

func getInt(name string, fallback int) int {
	val := os.Getenv(name)
	if val == "" {
		return fallback
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		panic(name + " must be an integer, got " + val)
	}
	return n
}
