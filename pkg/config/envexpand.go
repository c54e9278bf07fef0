package config

import (
	"bytes"
	"os"
	"text/template"
)

// ExpandEnv expands environment variables in YAML content using Go
// templates. Uses {{.VAR_NAME}} syntax rather than $VAR to avoid
// colliding with literal $ characters in regex patterns and passwords.
//
// Examples:
//   - {{.DB_PASSWORD}} → value of DB_PASSWORD
//   - {{.BUS_ENV}}.onex → prefix with the variable expanded
//
// Missing variables expand to the empty string; validation catches
// required fields left empty. Malformed templates pass the original
// content through so the YAML parser reports the real problem.
func ExpandEnv(data []byte) []byte {
	tmpl, err := template.New("config").Option("missingkey=zero").Parse(string(data))
	if err != nil {
		return data
	}

	envMap := make(map[string]string)
	for _, env := range os.Environ() {
		// Split only on the first '=' to handle values containing '='.
		if idx := bytes.IndexByte([]byte(env), '='); idx > 0 {
			envMap[env[:idx]] = env[idx+1:]
		}
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, envMap); err != nil {
		return data
	}

	return buf.Bytes()
}
