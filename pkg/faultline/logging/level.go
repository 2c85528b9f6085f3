package logging

import (
	"bytes"
	"strings"
)

// Level represents the severity of a log entry. The scale and its
// ordering follow the standard syslog severities.
type Level int

const (
	DEBUG Level = iota + 1
	INFO
	NOTICE
	WARN
	ERROR
	CRITICAL
	ALERT
	EMERGENCY

	// String constants for logging levels.
	levelDEBUG     = "DEBUG"
	levelINFO      = "INFO"
	levelNOTICE    = "NOTICE"
	levelWARN      = "WARN"
	levelERROR     = "ERROR"
	levelCRITICAL  = "CRITICAL"
	levelALERT     = "ALERT"
	levelEMERGENCY = "EMERGENCY"
)

func (l Level) String() string {
	switch l {
	case DEBUG:
		return levelDEBUG
	case INFO:
		return levelINFO
	case NOTICE:
		return levelNOTICE
	case WARN:
		return levelWARN
	case ERROR:
		return levelERROR
	case CRITICAL:
		return levelCRITICAL
	case ALERT:
		return levelALERT
	case EMERGENCY:
		return levelEMERGENCY
	default:
		return ""
	}
}

//nolint:gomnd // Color codes are sent as numbers
func (l Level) color() uint {
	switch l {
	case ERROR, CRITICAL, ALERT, EMERGENCY:
		return 31
	case WARN, NOTICE:
		return 33
	case INFO:
		return 36
	case DEBUG:
		return 36
	default:
		return 37
	}
}

func (l Level) MarshalJSON() ([]byte, error) {
	buffer := bytes.NewBufferString(`"`)
	buffer.WriteString(l.String())
	buffer.WriteString(`"`)

	return buffer.Bytes(), nil
}

// GetLevelFromString converts a severity name into its Level value.
// "WARNING" is accepted as an alias for WARN. Unknown names map to INFO.
func GetLevelFromString(level string) Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case levelDEBUG:
		return DEBUG
	case levelINFO:
		return INFO
	case levelNOTICE:
		return NOTICE
	case levelWARN, "WARNING":
		return WARN
	case levelERROR:
		return ERROR
	case levelCRITICAL:
		return CRITICAL
	case levelALERT:
		return ALERT
	case levelEMERGENCY:
		return EMERGENCY
	default:
		return INFO
	}
}
