// Package mining abstracts pattern extraction behind the Miner interface:
// either the external gRPC mining service or the in-process compute
// fallback.
package mining

import (
	"context"

	"github.com/onex-platform/omniintelligence/pkg/compute"
)

// Input is one hook event's mining material.
type Input struct {
	SessionID     string
	CorrelationID string
	Description   string
	Trace         []compute.TraceEntry
}

// Miner extracts candidate patterns from a hook event.
type Miner interface {
	ExtractPatterns(ctx context.Context, in *Input) ([]compute.ExtractedPattern, error)
	Close() error
}

// LocalMiner is the in-process fallback used when no mining service
// address is configured.
type LocalMiner struct{}

// NewLocalMiner creates the fallback miner.
func NewLocalMiner() *LocalMiner {
	return &LocalMiner{}
}

// ExtractPatterns runs the pure in-process extractor.
func (m *LocalMiner) ExtractPatterns(_ context.Context, in *Input) ([]compute.ExtractedPattern, error) {
	return compute.ExtractPatterns(in.Description, in.Trace), nil
}

// Close is a no-op for the local miner.
func (m *LocalMiner) Close() error {
	return nil
}
