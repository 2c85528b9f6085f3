package faultline

import (
	"errors"

	"faultline.dev/pkg/faultline/logging"
)

// Matcher reports whether an error belongs to a class of interest. It is
// the unit of classification for level rules and report suppression.
type Matcher func(error) bool

// IsType builds a Matcher that reports whether an error is, or wraps, a
// value of type T.
func IsType[T error]() Matcher {
	return func(err error) bool {
		var target T

		return errors.As(err, &target)
	}
}

// LevelRule binds an error class to a logging severity. Rules are
// evaluated in configured order and the first match wins.
type LevelRule struct {
	Matches Matcher
	Level   logging.Level
}

// Config carries the full pipeline configuration: ordered level rules,
// the transformer chain, the displayer candidates with their filters and
// fallback, and the report suppression list. It is assembled once at
// startup and must not be mutated afterwards.
type Config struct {
	Levels       []LevelRule
	Transformers []Transformer
	Filters      []Filter
	Displayers   []Displayer
	Default      Displayer
	DoNotReport  []Matcher
}
