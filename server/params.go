package server

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/katalvlaran/sinspline/config"
	"github.com/spf13/cast"
)

// parseParams overlays ticks, control and degree from q on def. Empty or
// missing values keep the default.
func parseParams(q url.Values, def config.Params) (config.Params, error) {
	p := def
	fields := []struct {
		key string
		dst *int
	}{
		{"ticks", &p.Ticks},
		{"control", &p.Control},
		{"degree", &p.Degree},
	}
	for _, f := range fields {
		raw := strings.TrimSpace(q.Get(f.key))
		if raw == "" {
			continue
		}
		digits, ok := decimal(raw)
		if !ok {
			return p, fmt.Errorf("%w: %s=%q", ErrBadParam, f.key, raw)
		}
		v, err := cast.ToIntE(digits)
		if err != nil {
			return p, fmt.Errorf("%w: %s=%q", ErrBadParam, f.key, raw)
		}
		*f.dst = v
	}

	return p, nil
}

// decimal normalizes a signed base-10 integer literal by dropping leading
// zeros, so cast never reads it as octal or hex.
func decimal(raw string) (string, bool) {
	sign := ""
	if raw[0] == '+' || raw[0] == '-' {
		sign, raw = raw[:1], raw[1:]
	}
	if raw == "" || strings.Trim(raw, "0123456789") != "" {
		return "", false
	}
	raw = strings.TrimLeft(raw, "0")
	if raw == "" {
		raw = "0"
	}

	return sign + raw, true
}

// parseFlag reads a boolean query flag, falling back to def when absent or
// unreadable.
func parseFlag(q url.Values, key string, def bool) bool {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return def
	}
	v, err := cast.ToBoolE(raw)
	if err != nil {
		return def
	}

	return v
}
