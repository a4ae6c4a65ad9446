// Package config reads namespaced settings from the environment
package config

import (
	"errors"
	"io/fs"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"housepricing/internal/platform/logger"

	"github.com/joho/godotenv"
)

// Conf is a namespaced view over environment variables. New() is the root;
// Prefix("SSB_") scopes a module
type Conf struct{ prefix string }

// New creates a root Conf
func New() Conf { return Conf{} }

// Prefix returns a child Conf with p appended, e.g. cfg.Prefix("CORE_API_")
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

func (c Conf) key(k string) string { return c.prefix + k }

func (c Conf) lookup(k string) (string, bool) {
	v := strings.TrimSpace(os.Getenv(c.key(k)))
	return v, v != ""
}

// LoadDotenv reads KEY=VALUE files into the process env. Variables already
// set win and missing files are skipped. No paths means .env
func LoadDotenv(paths ...string) {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		err := godotenv.Load(p)
		switch {
		case err == nil:
			logger.Get().Debug().Str("path", p).Msg("loaded env file")
		case errors.Is(err, fs.ErrNotExist):
		default:
			logger.Get().Warn().Err(err).Str("path", p).Msg("env file unreadable; skipping")
		}
	}
}

// Has reports whether key is set to a non-blank value
func (c Conf) Has(key string) bool {
	_, ok := c.lookup(key)
	return ok
}

// may returns parse(value) when key is set and parses, def otherwise.
// A value that does not parse is logged with hint
func may[T any](c Conf, key string, def T, hint string, parse func(string) (T, bool)) T {
	s, ok := c.lookup(key)
	if !ok {
		return def
	}
	if v, ok := parse(s); ok {
		return v
	}
	logger.Get().Warn().Str("key", c.key(key)).Str("value", s).Interface("default", def).Msg(hint)
	return def
}

// MayString returns the trimmed value or def
func (c Conf) MayString(key, def string) string {
	return may(c, key, def, "", func(s string) (string, bool) { return s, true })
}

// MayInt returns the value as an int or def
func (c Conf) MayInt(key string, def int) int {
	return may(c, key, def, "invalid int; using default", func(s string) (int, bool) {
		v, err := strconv.Atoi(s)
		return v, err == nil
	})
}

// MayBool returns the value as a bool or def
func (c Conf) MayBool(key string, def bool) bool {
	return may(c, key, def, "invalid bool; using default", func(s string) (bool, bool) {
		v, err := strconv.ParseBool(s)
		return v, err == nil
	})
}

// MayDuration returns the value as a duration (250ms, 2s) or def
func (c Conf) MayDuration(key string, def time.Duration) time.Duration {
	return may(c, key, def, "invalid duration; using default", func(s string) (time.Duration, bool) {
		v, err := time.ParseDuration(s)
		return v, err == nil
	})
}

// MayURL returns an absolute URL without trailing slashes, or def
func (c Conf) MayURL(key, def string) string {
	return may(c, key, def, "invalid absolute URL; using default", func(s string) (string, bool) {
		u, err := url.Parse(s)
		return strings.TrimRight(s, "/"), err == nil && u.IsAbs()
	})
}

// MayCSV splits a comma separated value, dropping blanks. All blank means def
func (c Conf) MayCSV(key string, def []string) []string {
	s, ok := c.lookup(key)
	if !ok {
		return def
	}
	var out []string
	for p := range strings.SplitSeq(s, ",") {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
