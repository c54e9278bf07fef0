package mining

import (
	"context"
	"fmt"
	"time"

	"github.com/onex-platform/omniintelligence/pkg/compute"
	miningv1 "github.com/onex-platform/omniintelligence/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// GRPCMiner implements Miner by calling the external mining service.
type GRPCMiner struct {
	conn   *grpc.ClientConn
	client miningv1.MiningServiceClient
}

// NewGRPCMiner creates a gRPC mining client.
func NewGRPCMiner(addr string) (*GRPCMiner, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mining service at %s: %w", addr, err)
	}
	return &GRPCMiner{
		conn:   conn,
		client: miningv1.NewMiningServiceClient(conn),
	}, nil
}

// ExtractPatterns calls the mining service and maps the response.
func (m *GRPCMiner) ExtractPatterns(ctx context.Context, in *Input) ([]compute.ExtractedPattern, error) {
	resp, err := m.client.ExtractPatterns(ctx, toProtoRequest(in))
	if err != nil {
		return nil, fmt.Errorf("gRPC ExtractPatterns call failed: %w", err)
	}
	return fromProtoResponse(resp), nil
}

// Close releases the gRPC connection.
func (m *GRPCMiner) Close() error {
	return m.conn.Close()
}

func toProtoRequest(in *Input) *miningv1.ExtractPatternsRequest {
	req := &miningv1.ExtractPatternsRequest{
		SessionId:     in.SessionID,
		CorrelationId: in.CorrelationID,
		Description:   in.Description,
	}
	for _, t := range in.Trace {
		entry := &miningv1.TraceEntry{
			Tool:      t.Tool,
			Action:    t.Action,
			Target:    t.Target,
			Succeeded: t.Succeeded,
		}
		if !t.At.IsZero() {
			entry.OccurredAt = t.At.Format(time.RFC3339)
		}
		req.Trace = append(req.Trace, entry)
	}
	return req
}

func fromProtoResponse(resp *miningv1.ExtractPatternsResponse) []compute.ExtractedPattern {
	out := make([]compute.ExtractedPattern, 0, len(resp.Patterns))
	for _, p := range resp.Patterns {
		out = append(out, compute.ExtractedPattern{
			Body:       p.Body,
			VersionTag: p.VersionTag,
			Confidence: p.Confidence,
			Intent:     compute.Intent(p.Intent),
		})
	}
	return out
}
