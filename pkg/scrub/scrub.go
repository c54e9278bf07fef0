// Package scrub removes secrets from data that leaves the primary
// processing path (dead-letter records, error messages). Scrubbing is
// regex-based and defensive: on any internal failure the original data is
// returned rather than blocking the DLQ write.
package scrub

import (
	"log/slog"
	"regexp"
)

// pattern pairs a compiled regex with its replacement.
type pattern struct {
	name        string
	regex       *regexp.Regexp
	replacement string
}

// Scrubber applies the built-in secret patterns to byte slices.
type Scrubber struct {
	patterns []pattern
}

// builtinPatterns is the default secret pattern set. Order matters:
// structured patterns run before the generic bearer-token catch-all so
// replacements keep their field context.
var builtinPatterns = []struct {
	name        string
	expr        string
	replacement string
}{
	{
		name:        "api_key",
		expr:        `(?i)(?:api[_-]?key|apikey)["']?\s*[:=]\s*["']?([A-Za-z0-9_\-]{20,})["']?`,
		replacement: `"api_key": "__SCRUBBED_API_KEY__"`,
	},
	{
		name:        "password",
		expr:        `(?i)(?:password|pwd|pass)["']?\s*[:=]\s*["']?([^"'\s\n]{6,})["']?`,
		replacement: `"password": "__SCRUBBED_PASSWORD__"`,
	},
	{
		name:        "token",
		expr:        `(?i)(?:token|bearer|jwt)["']?\s*[:=]\s*["']?([A-Za-z0-9_\-\.]{20,})["']?`,
		replacement: `"token": "__SCRUBBED_TOKEN__"`,
	},
	{
		name:        "secret_key",
		expr:        `(?i)(?:secret[_-]?key)["']?\s*[:=]\s*["']?([A-Za-z0-9_\-\.]{20,})["']?`,
		replacement: `"secret_key": "__SCRUBBED_SECRET_KEY__"`,
	},
	{
		name:        "private_key",
		expr:        `(?i)(?:private[_-]?key)["']?\s*[:=]\s*["']?([A-Za-z0-9_\-\.]{20,})["']?`,
		replacement: `"private_key": "__SCRUBBED_PRIVATE_KEY__"`,
	},
	{
		name:        "certificate",
		expr:        `(?s)-----BEGIN [A-Z ]+-----.*?-----END [A-Z ]+-----`,
		replacement: `__SCRUBBED_CERTIFICATE__`,
	},
	{
		name:        "connection_string",
		expr:        `(?i)\b(?:postgres|postgresql|mysql|redis|amqp)://[^:\s]+:([^@\s]+)@`,
		replacement: `__SCRUBBED_CONNECTION_STRING__@`,
	},
}

// New compiles the built-in pattern set. Invalid patterns are logged and
// skipped so one bad expression never disables scrubbing entirely.
func New() *Scrubber {
	s := &Scrubber{}
	for _, p := range builtinPatterns {
		compiled, err := regexp.Compile(p.expr)
		if err != nil {
			slog.Error("Failed to compile scrub pattern, skipping",
				"pattern", p.name, "error", err)
			continue
		}
		s.patterns = append(s.patterns, pattern{
			name:        p.name,
			regex:       compiled,
			replacement: p.replacement,
		})
	}
	return s
}

// Scrub applies every pattern to the data and returns the result.
func (s *Scrubber) Scrub(data []byte) []byte {
	result := data
	for _, p := range s.patterns {
		result = p.regex.ReplaceAll(result, []byte(p.replacement))
	}
	return result
}

// ScrubString is Scrub for strings.
func (s *Scrubber) ScrubString(data string) string {
	return string(s.Scrub([]byte(data)))
}
