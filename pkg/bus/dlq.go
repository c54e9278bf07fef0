package bus

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Scrubber removes secrets from payload bytes before they leave the
// primary processing path. Implemented by pkg/scrub.
type Scrubber interface {
	Scrub(data []byte) []byte
}

// DeadLetter wraps a failed message for the DLQ topic. The original
// envelope is preserved verbatim (scrubbed) so operators can replay it.
type DeadLetter struct {
	Original        json.RawMessage   `json:"original"`
	OriginalTopic   string            `json:"original_topic"`
	ErrorKind       string            `json:"error_kind"`
	ErrorMessage    string            `json:"error_message"`
	FirstFailureAt  time.Time         `json:"first_failure_at"`
	RetryCount      int               `json:"retry_count"`
	ServiceMetadata map[string]string `json:"service_metadata,omitempty"`
}

// Error kinds recorded on DLQ records.
const (
	ErrorKindValidation = "validation"
	ErrorKindDomain     = "domain"
	ErrorKindTransient  = "transient"
	ErrorKindOverflow   = "overflow"
	ErrorKindPublish    = "publish"
)

// DLQWriter appends dead letters. Both the publisher (emit-side failures)
// and the dispatch engine (consume-side failures) route through it so the
// scrubbing and envelope shape stay uniform.
type DLQWriter struct {
	store    *Store
	scrubber Scrubber
	metadata map[string]string
}

// NewDLQWriter creates a DLQ writer. scrubber may be nil (no scrubbing,
// tests only). metadata is attached to every record (service name, pod ID).
func NewDLQWriter(store *Store, scrubber Scrubber, metadata map[string]string) *DLQWriter {
	return &DLQWriter{store: store, scrubber: scrubber, metadata: metadata}
}

// Write appends a dead letter for originalEnvelope to the topic's DLQ.
// correlationKey keeps DLQ records for one partition key together.
func (w *DLQWriter) Write(ctx context.Context, originalTopic, correlationKey string, originalEnvelope []byte, errorKind, errorMessage string, retryCount int) error {
	scrubbed := originalEnvelope
	if w.scrubber != nil {
		scrubbed = w.scrubber.Scrub(originalEnvelope)
		errorMessage = string(w.scrubber.Scrub([]byte(errorMessage)))
	}
	// Serialization dead letters carry originals that are not valid JSON;
	// wrap those as a JSON string so the record still marshals.
	if !json.Valid(scrubbed) {
		quoted, err := json.Marshal(string(scrubbed))
		if err != nil {
			return fmt.Errorf("failed to quote unparseable original: %w", err)
		}
		scrubbed = quoted
	}

	record := DeadLetter{
		Original:        scrubbed,
		OriginalTopic:   originalTopic,
		ErrorKind:       errorKind,
		ErrorMessage:    errorMessage,
		FirstFailureAt:  time.Now().UTC(),
		RetryCount:      retryCount,
		ServiceMetadata: w.metadata,
	}

	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal dead letter: %w", err)
	}

	// The DLQ record rides the bus as a regular envelope so the same
	// tooling can consume it.
	env := &Envelope{
		EventID:       uuid.NewString(),
		EventType:     "dead-letter",
		SchemaVersion: 1,
		CorrelationID: correlationIDFrom(scrubbed),
		OccurredAt:    time.Now().UTC(),
		Payload:       payload,
	}
	envJSON, err := env.Marshal()
	if err != nil {
		return fmt.Errorf("failed to marshal DLQ envelope: %w", err)
	}

	if _, err := w.store.Append(ctx, DLQTopic(originalTopic), correlationKey, envJSON); err != nil {
		return fmt.Errorf("failed to append dead letter for %s: %w", originalTopic, err)
	}
	return nil
}

// correlationIDFrom extracts the correlation_id from envelope bytes so
// the DLQ record threads the original correlation chain. Falls back to a
// fresh UUID when the original is unparseable, which is exactly the case
// for serialization dead letters.
func correlationIDFrom(envelope []byte) string {
	var probe struct {
		CorrelationID string `json:"correlation_id"`
	}
	if err := json.Unmarshal(envelope, &probe); err == nil && probe.CorrelationID != "" {
		return probe.CorrelationID
	}
	return uuid.NewString()
}
