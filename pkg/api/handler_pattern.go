package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/onex-platform/omniintelligence/ent"
	"github.com/onex-platform/omniintelligence/ent/pattern"
	"github.com/onex-platform/omniintelligence/pkg/store"
)

// PatternResponse is the JSON projection of a pattern row. The body is
// included; injections and audit entries are not.
type PatternResponse struct {
	PatternID       string     `json:"pattern_id"`
	SignatureHash   string     `json:"signature_hash"`
	Body            string     `json:"body"`
	LifecycleStatus string     `json:"lifecycle_status"`
	QualityScore    float64    `json:"quality_score"`
	Confidence      float64    `json:"confidence"`
	EvidenceTier    string     `json:"evidence_tier"`
	VersionTag      string     `json:"version_tag"`
	CreatedAt       time.Time  `json:"created_at"`
	LastPromotedAt  *time.Time `json:"last_promoted_at,omitempty"`
	LastDemotedAt   *time.Time `json:"last_demoted_at,omitempty"`
	DeprecatedAt    *time.Time `json:"deprecated_at,omitempty"`
}

func toPatternResponse(p *ent.Pattern) PatternResponse {
	return PatternResponse{
		PatternID:       p.ID,
		SignatureHash:   p.SignatureHash,
		Body:            p.Body,
		LifecycleStatus: string(p.LifecycleStatus),
		QualityScore:    p.QualityScore,
		Confidence:      p.Confidence,
		EvidenceTier:    string(p.EvidenceTier),
		VersionTag:      p.VersionTag,
		CreatedAt:       p.CreatedAt,
		LastPromotedAt:  p.LastPromotedAt,
		LastDemotedAt:   p.LastDemotedAt,
		DeprecatedAt:    p.DeprecatedAt,
	}
}

// getPatternHandler handles GET /api/v1/patterns/:id.
func (s *Server) getPatternHandler(c *gin.Context) {
	tx, err := s.db.Tx(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer func() { _ = tx.Rollback() }()

	p, err := s.store.QueryByID(c.Request.Context(), tx, c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "pattern not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toPatternResponse(p))
}

// listPatternsHandler handles GET /api/v1/patterns. Supported filters:
//
//	?signature_hash=<hash>  the active pattern for a signature
//	?status=<lifecycle>     patterns in a lifecycle status (max 100)
//	?disabled=true          patterns currently under a disable event
func (s *Server) listPatternsHandler(c *gin.Context) {
	ctx := c.Request.Context()

	tx, err := s.db.Tx(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer func() { _ = tx.Rollback() }()

	if sig := c.Query("signature_hash"); sig != "" {
		p, err := s.store.QueryBySignature(ctx, tx, sig)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "no active pattern for signature"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, []PatternResponse{toPatternResponse(p)})
		return
	}

	if c.Query("disabled") == "true" {
		events, err := s.store.ListCurrentlyDisabled(ctx, tx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		out := make([]gin.H, 0, len(events))
		for _, e := range events {
			out = append(out, gin.H{
				"pattern_id":  e.PatternID,
				"reason":      string(e.Reason),
				"detail":      e.Detail,
				"disabled_by": e.DisabledBy,
				"disabled_at": e.CreatedAt,
			})
		}
		c.JSON(http.StatusOK, out)
		return
	}

	query := tx.Pattern.Query().Order(ent.Desc(pattern.FieldCreatedAt)).Limit(100)
	if status := c.Query("status"); status != "" {
		query = query.Where(pattern.LifecycleStatusEQ(pattern.LifecycleStatus(status)))
	}
	rows, err := query.All(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	out := make([]PatternResponse, 0, len(rows))
	for _, p := range rows {
		out = append(out, toPatternResponse(p))
	}
	c.JSON(http.StatusOK, out)
}
