package faultline

import (
	"faultline.dev/pkg/faultline/logging"
)

// resolveLevel returns the logging severity for err by scanning rules in
// configured order. The first matching rule wins. Errors matching no
// rule log at ERROR.
func resolveLevel(err error, rules []LevelRule) logging.Level {
	for _, rule := range rules {
		if rule.Matches != nil && rule.Matches(err) {
			return rule.Level
		}
	}

	return logging.ERROR
}
