package compute

import (
	"fmt"
	"strings"
	"time"
)

// TraceEntry is one parsed tool invocation from a hook event's trace.
type TraceEntry struct {
	Tool      string
	Action    string
	Target    string
	Succeeded bool
	At        time.Time
}

// ParseToolTrace parses the flat text trace format some hook sources
// emit: one entry per line, `tool.action target [ok|err] [rfc3339]`.
// Malformed lines are skipped rather than failing the whole trace; a
// fully unparseable trace returns an empty slice and an error naming the
// first bad line.
func ParseToolTrace(raw string) ([]TraceEntry, error) {
	var entries []TraceEntry
	var firstErr error

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		entry, err := parseTraceLine(line)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		entries = append(entries, entry)
	}

	if len(entries) == 0 && firstErr != nil {
		return nil, firstErr
	}
	return entries, nil
}

func parseTraceLine(line string) (TraceEntry, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return TraceEntry{}, fmt.Errorf("malformed trace line %q", line)
	}

	toolAction := strings.SplitN(fields[0], ".", 2)
	if len(toolAction) != 2 || toolAction[0] == "" || toolAction[1] == "" {
		return TraceEntry{}, fmt.Errorf("malformed tool.action in trace line %q", line)
	}

	entry := TraceEntry{
		Tool:      normalizeToolName(toolAction[0]),
		Action:    strings.ToLower(toolAction[1]),
		Target:    fields[1],
		Succeeded: true,
	}

	for _, extra := range fields[2:] {
		switch extra {
		case "ok":
			entry.Succeeded = true
		case "err":
			entry.Succeeded = false
		default:
			if ts, err := time.Parse(time.RFC3339, extra); err == nil {
				entry.At = ts
			}
		}
	}
	return entry, nil
}
