package models

import "strconv"

// Config holds the shape of a blank grid.
type Config struct {
	// DefaultRows is the data-row count of a blank grid.
	DefaultRows int `yaml:"rows"`
	// DefaultColumns is the column count of a blank grid.
	DefaultColumns int `yaml:"columns"`
	// DefaultHeaders labels the columns of a blank grid. Missing labels
	// fall back to the 1-based column number.
	DefaultHeaders []string `yaml:"headers"`
}

// DefaultConfig returns the 10 × 11 grid with headers "1".."11".
func DefaultConfig() Config {
	return Config{
		DefaultRows:    10,
		DefaultColumns: 11,
		DefaultHeaders: NumberedHeaders(11),
	}
}

// Headers returns n labels taken from DefaultHeaders, numbered where
// DefaultHeaders runs out.
func (c Config) Headers(n int) []string {
	out := make([]string, n)
	for i := range out {
		if i < len(c.DefaultHeaders) {
			out[i] = c.DefaultHeaders[i]
		} else {
			out[i] = strconv.Itoa(i + 1)
		}
	}
	return out
}

// NumberedHeaders returns "1".."n".
func NumberedHeaders(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = strconv.Itoa(i + 1)
	}
	return out
}
