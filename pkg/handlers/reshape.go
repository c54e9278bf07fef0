package handlers

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// envelopeKeys are the top-level fields the envelope schema owns. During
// reshape everything else nests under payload.
var envelopeKeys = map[string]bool{
	"event_id":       true,
	"event_type":     true,
	"schema_version": true,
	"correlation_id": true,
	"session_id":     true,
	"occurred_at":    true,
	"payload":        true,
}

// ReshapeFlatHookEvent converts legacy flat hook JSON into the nested
// envelope shape. Some hook sources emit their fields at the top level
// next to the envelope identifiers; detection is the absence of a payload
// object. Messages already carrying a payload pass through untouched.
func ReshapeFlatHookEvent(data []byte) ([]byte, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("hook event is not a JSON object: %w", err)
	}
	if _, nested := raw["payload"]; nested {
		return data, nil
	}

	out := make(map[string]json.RawMessage, len(envelopeKeys))
	payload := make(map[string]json.RawMessage)
	for k, v := range raw {
		if envelopeKeys[k] {
			out[k] = v
		} else {
			payload[k] = v
		}
	}
	if len(payload) == 0 {
		return nil, fmt.Errorf("flat hook event carries no payload fields")
	}

	// Legacy emitters predate some envelope fields; fill the gaps so the
	// reshaped message validates.
	if _, ok := out["event_type"]; !ok {
		out["event_type"] = mustRaw(EventHookEvent)
	}
	if _, ok := out["schema_version"]; !ok {
		out["schema_version"] = json.RawMessage("1")
	}
	if _, ok := out["event_id"]; !ok {
		out["event_id"] = mustRaw(uuid.NewString())
	}
	if _, ok := out["correlation_id"]; !ok {
		out["correlation_id"] = mustRaw(uuid.NewString())
	}
	if _, ok := out["occurred_at"]; !ok {
		out["occurred_at"] = mustRaw(time.Now().UTC().Format(time.RFC3339))
	}

	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to nest hook payload: %w", err)
	}
	out["payload"] = payloadJSON

	return json.Marshal(out)
}

func mustRaw(s string) json.RawMessage {
	b, _ := json.Marshal(s)
	return b
}
