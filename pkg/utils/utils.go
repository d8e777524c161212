package utils

import (
	"strings"
	"time"
	"unicode"

	"github.com/benedict-erwin/soc-dashboard/config"
	"github.com/benedict-erwin/soc-dashboard/pkg/logger"
)

var appLocation *time.Location

// init initializes timezone with UTC as default
func init() {
	appLocation = time.UTC
}

// InitTimezone initializes the application timezone from config
func InitTimezone() error {
	cfg := config.Get()
	if cfg == nil || cfg.App.Timezone == "" {
		logger.Warn().Msg("No timezone configured, using UTC")
		appLocation = time.UTC
		return nil
	}

	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		logger.Error().Err(err).Str("timezone", cfg.App.Timezone).Msg("Failed to load timezone, using UTC")
		appLocation = time.UTC
		return err
	}

	appLocation = loc
	return nil
}

// Now returns current time in application timezone
func Now() time.Time {
	return time.Now().In(appLocation)
}

// FormatTime formats given time to application timezone
func FormatTime(t time.Time) string {
	return t.In(appLocation).Format(time.RFC3339)
}

// UcFirst returns a copy of s with the first rune uppercased
func UcFirst(s string) string {
	if s == "" {
		return ""
	}

	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// Humanize turns a snake_case column name into a title, e.g. asset_type -> Asset Type
func Humanize(column string) string {
	parts := strings.Split(column, "_")
	for i, p := range parts {
		parts[i] = UcFirst(p)
	}
	return strings.Join(parts, " ")
}
