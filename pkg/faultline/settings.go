package faultline

import (
	"fmt"
	"strings"

	"faultline.dev/pkg/faultline/config"
	"faultline.dev/pkg/faultline/logging"
)

// Configuration keys for pipeline assembly. All component lists are
// ordered, comma separated names resolved through the registry.
const (
	keyDisplayers       = "FAULT_DISPLAYERS"
	keyDefaultDisplayer = "FAULT_DEFAULT_DISPLAYER"
	keyFilters          = "FAULT_FILTERS"
	keyTransformers     = "FAULT_TRANSFORMERS"
	keyLevels           = "FAULT_LEVELS"
	keyDoNotReport      = "FAULT_DO_NOT_REPORT"

	defaultDisplayers = "json,html,text"
	defaultDisplayer  = "html"
	defaultFilters    = "accept,eligible"
	defaultTransforms = "token_mismatch"
)

// FromConfig assembles a Handler from the configuration surface,
// resolving every configured component name through reg. Resolution
// failures surface at startup, not at request time.
//
// FAULT_LEVELS holds ordered matcher:severity pairs, e.g.
// "token_mismatch:warn,not_found:notice". FAULT_DO_NOT_REPORT holds
// matcher names whose errors are never reported.
func FromConfig(conf config.Config, logger logging.Logger, reg *Registry) (*Handler, error) {
	cfg := Config{}

	for _, name := range splitList(conf.GetOrDefault(keyDisplayers, defaultDisplayers)) {
		d, err := reg.Displayer(name, nil)
		if err != nil {
			return nil, err
		}

		cfg.Displayers = append(cfg.Displayers, d)
	}

	def, err := reg.Displayer(conf.GetOrDefault(keyDefaultDisplayer, defaultDisplayer), nil)
	if err != nil {
		return nil, err
	}

	cfg.Default = def

	for _, name := range splitList(conf.GetOrDefault(keyFilters, defaultFilters)) {
		f, err := reg.Filter(name, nil)
		if err != nil {
			return nil, err
		}

		cfg.Filters = append(cfg.Filters, f)
	}

	for _, name := range splitList(conf.GetOrDefault(keyTransformers, defaultTransforms)) {
		t, err := reg.Transformer(name, nil)
		if err != nil {
			return nil, err
		}

		cfg.Transformers = append(cfg.Transformers, t)
	}

	rules, err := parseLevelRules(conf.Get(keyLevels), reg)
	if err != nil {
		return nil, err
	}

	cfg.Levels = rules

	for _, name := range splitList(conf.Get(keyDoNotReport)) {
		m, err := reg.Matcher(name)
		if err != nil {
			return nil, err
		}

		cfg.DoNotReport = append(cfg.DoNotReport, m)
	}

	return New(cfg, logger), nil
}

func parseLevelRules(value string, reg *Registry) ([]LevelRule, error) {
	var rules []LevelRule

	for _, pair := range splitList(value) {
		name, level, found := strings.Cut(pair, ":")
		if !found {
			return nil, fmt.Errorf("level rule %q must be of the form matcher:severity", pair)
		}

		m, err := reg.Matcher(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}

		rules = append(rules, LevelRule{
			Matches: m,
			Level:   logging.GetLevelFromString(level),
		})
	}

	return rules, nil
}

func splitList(value string) []string {
	var names []string

	for _, part := range strings.Split(value, ",") {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}

	return names
}
