// Package bus implements the PostgreSQL-backed message bus: a persistent
// append-only message table partitioned by key, per-group committed offsets,
// NOTIFY wakeups with a polling fallback, a non-blocking publisher, and
// dead-letter routing.
package bus

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Envelope is the uniform JSON frame wrapping every message on the bus.
// Unknown fields on the envelope are rejected at decode time; unknown
// fields inside Payload are preserved pass-through.
type Envelope struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	SchemaVersion int             `json:"schema_version"`
	CorrelationID string          `json:"correlation_id"`
	SessionID     *string         `json:"session_id"`
	OccurredAt    time.Time       `json:"occurred_at"`
	Payload       json.RawMessage `json:"payload"`
}

// NewEnvelope builds a valid envelope with fresh identifiers.
// sessionID may be empty for events with no session scope.
func NewEnvelope(eventType, correlationID, sessionID string, payload any) (*Envelope, error) {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload for %s: %w", eventType, err)
	}

	if correlationID == "" {
		correlationID = uuid.NewString()
	}

	env := &Envelope{
		EventID:       uuid.NewString(),
		EventType:     eventType,
		SchemaVersion: 1,
		CorrelationID: correlationID,
		OccurredAt:    time.Now().UTC(),
		Payload:       payloadJSON,
	}
	if sessionID != "" {
		env.SessionID = &sessionID
	}
	return env, nil
}

// Validate checks the envelope's required fields.
func (e *Envelope) Validate() error {
	if e.EventID == "" {
		return fmt.Errorf("%w: event_id is required", ErrInvalidEnvelope)
	}
	if _, err := uuid.Parse(e.EventID); err != nil {
		return fmt.Errorf("%w: event_id must be a UUID: %v", ErrInvalidEnvelope, err)
	}
	if e.EventType == "" {
		return fmt.Errorf("%w: event_type is required", ErrInvalidEnvelope)
	}
	if e.SchemaVersion < 1 {
		return fmt.Errorf("%w: schema_version must be >= 1", ErrInvalidEnvelope)
	}
	if e.CorrelationID == "" {
		return fmt.Errorf("%w: correlation_id is required", ErrInvalidEnvelope)
	}
	if e.OccurredAt.IsZero() {
		return fmt.Errorf("%w: occurred_at is required", ErrInvalidEnvelope)
	}
	if len(e.Payload) == 0 {
		return fmt.Errorf("%w: payload is required", ErrInvalidEnvelope)
	}
	return nil
}

// Marshal serializes the envelope for the wire.
func (e *Envelope) Marshal() ([]byte, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}
	data, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal envelope %s: %w", e.EventID, err)
	}
	return data, nil
}

// DecodeEnvelope parses wire bytes into an envelope, rejecting unknown
// fields on the envelope itself. Payload bytes are kept verbatim.
func DecodeEnvelope(data []byte) (*Envelope, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var env Envelope
	if err := dec.Decode(&env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEnvelope, err)
	}
	if err := env.Validate(); err != nil {
		return nil, err
	}
	return &env, nil
}

// UnmarshalPayload decodes the payload into the given typed struct.
// Unknown payload fields are ignored: producers may add fields ahead of
// consumers, and strictness applies to the envelope frame only.
func (e *Envelope) UnmarshalPayload(v any) error {
	if err := json.Unmarshal(e.Payload, v); err != nil {
		return fmt.Errorf("%w: payload for %s: %v", ErrInvalidPayload, e.EventType, err)
	}
	return nil
}
