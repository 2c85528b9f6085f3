package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelString(t *testing.T) {
	tests := []struct {
		level          Level
		expectedString string
	}{
		{DEBUG, levelDEBUG},
		{INFO, levelINFO},
		{NOTICE, levelNOTICE},
		{WARN, levelWARN},
		{ERROR, levelERROR},
		{CRITICAL, levelCRITICAL},
		{ALERT, levelALERT},
		{EMERGENCY, levelEMERGENCY},
		{Level(99), ""}, // Test default case
	}

	for i, tc := range tests {
		assert.Equal(t, tc.expectedString, tc.level.String(), "TEST[%d], Failed.\n", i)
	}
}

func TestLevelMarshalJSON(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{NOTICE, `"NOTICE"`},
		{EMERGENCY, `"EMERGENCY"`},
	}

	for i, tc := range tests {
		b, err := tc.level.MarshalJSON()

		assert.NoError(t, err, "TEST[%d], Failed.\n", i)
		assert.Equal(t, tc.expected, string(b), "TEST[%d], Failed.\n", i)
	}
}

func TestGetLevelFromString(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
	}{
		{"DEBUG", DEBUG},
		{"info", INFO},
		{"notice", NOTICE},
		{"WARN", WARN},
		{"warning", WARN},
		{"Error", ERROR},
		{"CRITICAL", CRITICAL},
		{"alert", ALERT},
		{"emergency", EMERGENCY},
		{"", INFO},
		{"bogus", INFO},
	}

	for i, tc := range tests {
		assert.Equal(t, tc.expected, GetLevelFromString(tc.input), "TEST[%d], Failed.\n", i)
	}
}

func TestLevelOrdering(t *testing.T) {
	ordered := []Level{DEBUG, INFO, NOTICE, WARN, ERROR, CRITICAL, ALERT, EMERGENCY}

	for i := 1; i < len(ordered); i++ {
		assert.Less(t, ordered[i-1], ordered[i], "TEST[%d], Failed.\nseverity scale must be totally ordered", i)
	}
}
