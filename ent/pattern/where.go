// Code generated by ent, DO NOT EDIT.

package pattern

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/onex-platform/omniintelligence/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Pattern {
	return predicate.Pattern(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Pattern {
	return predicate.Pattern(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Pattern {
	return predicate.Pattern(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Pattern {
	return predicate.Pattern(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Pattern {
	return predicate.Pattern(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Pattern {
	return predicate.Pattern(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Pattern {
	return predicate.Pattern(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Pattern {
	return predicate.Pattern(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Pattern {
	return predicate.Pattern(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Pattern {
	return predicate.Pattern(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Pattern {
	return predicate.Pattern(sql.FieldContainsFold(FieldID, id))
}

// SignatureHash applies equality check predicate on the "signature_hash" field. It's identical to SignatureHashEQ.
func SignatureHash(v string) predicate.Pattern {
	return predicate.Pattern(sql.FieldEQ(FieldSignatureHash, v))
}

// Body applies equality check predicate on the "body" field. It's identical to BodyEQ.
func Body(v string) predicate.Pattern {
	return predicate.Pattern(sql.FieldEQ(FieldBody, v))
}

// QualityScore applies equality check predicate on the "quality_score" field. It's identical to QualityScoreEQ.
func QualityScore(v float64) predicate.Pattern {
	return predicate.Pattern(sql.FieldEQ(FieldQualityScore, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.Pattern {
	return predicate.Pattern(sql.FieldEQ(FieldConfidence, v))
}

// VersionTag applies equality check predicate on the "version_tag" field. It's identical to VersionTagEQ.
func VersionTag(v string) predicate.Pattern {
	return predicate.Pattern(sql.FieldEQ(FieldVersionTag, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Pattern {
	return predicate.Pattern(sql.FieldEQ(FieldCreatedAt, v))
}

// LastPromotedAt applies equality check predicate on the "last_promoted_at" field. It's identical to LastPromotedAtEQ.
func LastPromotedAt(v time.Time) predicate.Pattern {
	return predicate.Pattern(sql.FieldEQ(FieldLastPromotedAt, v))
}

// LastDemotedAt applies equality check predicate on the "last_demoted_at" field. It's identical to LastDemotedAtEQ.
func LastDemotedAt(v time.Time) predicate.Pattern {
	return predicate.Pattern(sql.FieldEQ(FieldLastDemotedAt, v))
}

// DeprecatedAt applies equality check predicate on the "deprecated_at" field. It's identical to DeprecatedAtEQ.
func DeprecatedAt(v time.Time) predicate.Pattern {
	return predicate.Pattern(sql.FieldEQ(FieldDeprecatedAt, v))
}

// SignatureHashEQ applies the EQ predicate on the "signature_hash" field.
func SignatureHashEQ(v string) predicate.Pattern {
	return predicate.Pattern(sql.FieldEQ(FieldSignatureHash, v))
}

// SignatureHashNEQ applies the NEQ predicate on the "signature_hash" field.
func SignatureHashNEQ(v string) predicate.Pattern {
	return predicate.Pattern(sql.FieldNEQ(FieldSignatureHash, v))
}

// SignatureHashIn applies the In predicate on the "signature_hash" field.
func SignatureHashIn(vs ...string) predicate.Pattern {
	return predicate.Pattern(sql.FieldIn(FieldSignatureHash, vs...))
}

// SignatureHashNotIn applies the NotIn predicate on the "signature_hash" field.
func SignatureHashNotIn(vs ...string) predicate.Pattern {
	return predicate.Pattern(sql.FieldNotIn(FieldSignatureHash, vs...))
}

// SignatureHashGT applies the GT predicate on the "signature_hash" field.
func SignatureHashGT(v string) predicate.Pattern {
	return predicate.Pattern(sql.FieldGT(FieldSignatureHash, v))
}

// SignatureHashGTE applies the GTE predicate on the "signature_hash" field.
func SignatureHashGTE(v string) predicate.Pattern {
	return predicate.Pattern(sql.FieldGTE(FieldSignatureHash, v))
}

// SignatureHashLT applies the LT predicate on the "signature_hash" field.
func SignatureHashLT(v string) predicate.Pattern {
	return predicate.Pattern(sql.FieldLT(FieldSignatureHash, v))
}

// SignatureHashLTE applies the LTE predicate on the "signature_hash" field.
func SignatureHashLTE(v string) predicate.Pattern {
	return predicate.Pattern(sql.FieldLTE(FieldSignatureHash, v))
}

// SignatureHashContains applies the Contains predicate on the "signature_hash" field.
func SignatureHashContains(v string) predicate.Pattern {
	return predicate.Pattern(sql.FieldContains(FieldSignatureHash, v))
}

// SignatureHashHasPrefix applies the HasPrefix predicate on the "signature_hash" field.
func SignatureHashHasPrefix(v string) predicate.Pattern {
	return predicate.Pattern(sql.FieldHasPrefix(FieldSignatureHash, v))
}

// SignatureHashHasSuffix applies the HasSuffix predicate on the "signature_hash" field.
func SignatureHashHasSuffix(v string) predicate.Pattern {
	return predicate.Pattern(sql.FieldHasSuffix(FieldSignatureHash, v))
}

// SignatureHashEqualFold applies the EqualFold predicate on the "signature_hash" field.
func SignatureHashEqualFold(v string) predicate.Pattern {
	return predicate.Pattern(sql.FieldEqualFold(FieldSignatureHash, v))
}

// SignatureHashContainsFold applies the ContainsFold predicate on the "signature_hash" field.
func SignatureHashContainsFold(v string) predicate.Pattern {
	return predicate.Pattern(sql.FieldContainsFold(FieldSignatureHash, v))
}

// BodyEQ applies the EQ predicate on the "body" field.
func BodyEQ(v string) predicate.Pattern {
	return predicate.Pattern(sql.FieldEQ(FieldBody, v))
}

// BodyNEQ applies the NEQ predicate on the "body" field.
func BodyNEQ(v string) predicate.Pattern {
	return predicate.Pattern(sql.FieldNEQ(FieldBody, v))
}

// BodyIn applies the In predicate on the "body" field.
func BodyIn(vs ...string) predicate.Pattern {
	return predicate.Pattern(sql.FieldIn(FieldBody, vs...))
}

// BodyNotIn applies the NotIn predicate on the "body" field.
func BodyNotIn(vs ...string) predicate.Pattern {
	return predicate.Pattern(sql.FieldNotIn(FieldBody, vs...))
}

// BodyGT applies the GT predicate on the "body" field.
func BodyGT(v string) predicate.Pattern {
	return predicate.Pattern(sql.FieldGT(FieldBody, v))
}

// BodyGTE applies the GTE predicate on the "body" field.
func BodyGTE(v string) predicate.Pattern {
	return predicate.Pattern(sql.FieldGTE(FieldBody, v))
}

// BodyLT applies the LT predicate on the "body" field.
func BodyLT(v string) predicate.Pattern {
	return predicate.Pattern(sql.FieldLT(FieldBody, v))
}

// BodyLTE applies the LTE predicate on the "body" field.
func BodyLTE(v string) predicate.Pattern {
	return predicate.Pattern(sql.FieldLTE(FieldBody, v))
}

// BodyContains applies the Contains predicate on the "body" field.
func BodyContains(v string) predicate.Pattern {
	return predicate.Pattern(sql.FieldContains(FieldBody, v))
}

// BodyHasPrefix applies the HasPrefix predicate on the "body" field.
func BodyHasPrefix(v string) predicate.Pattern {
	return predicate.Pattern(sql.FieldHasPrefix(FieldBody, v))
}

// BodyHasSuffix applies the HasSuffix predicate on the "body" field.
func BodyHasSuffix(v string) predicate.Pattern {
	return predicate.Pattern(sql.FieldHasSuffix(FieldBody, v))
}

// BodyEqualFold applies the EqualFold predicate on the "body" field.
func BodyEqualFold(v string) predicate.Pattern {
	return predicate.Pattern(sql.FieldEqualFold(FieldBody, v))
}

// BodyContainsFold applies the ContainsFold predicate on the "body" field.
func BodyContainsFold(v string) predicate.Pattern {
	return predicate.Pattern(sql.FieldContainsFold(FieldBody, v))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.Pattern {
	return predicate.Pattern(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.Pattern {
	return predicate.Pattern(sql.FieldNotNull(FieldMetadata))
}

// LifecycleStatusEQ applies the EQ predicate on the "lifecycle_status" field.
func LifecycleStatusEQ(v LifecycleStatus) predicate.Pattern {
	return predicate.Pattern(sql.FieldEQ(FieldLifecycleStatus, v))
}

// LifecycleStatusNEQ applies the NEQ predicate on the "lifecycle_status" field.
func LifecycleStatusNEQ(v LifecycleStatus) predicate.Pattern {
	return predicate.Pattern(sql.FieldNEQ(FieldLifecycleStatus, v))
}

// LifecycleStatusIn applies the In predicate on the "lifecycle_status" field.
func LifecycleStatusIn(vs ...LifecycleStatus) predicate.Pattern {
	return predicate.Pattern(sql.FieldIn(FieldLifecycleStatus, vs...))
}

// LifecycleStatusNotIn applies the NotIn predicate on the "lifecycle_status" field.
func LifecycleStatusNotIn(vs ...LifecycleStatus) predicate.Pattern {
	return predicate.Pattern(sql.FieldNotIn(FieldLifecycleStatus, vs...))
}

// QualityScoreEQ applies the EQ predicate on the "quality_score" field.
func QualityScoreEQ(v float64) predicate.Pattern {
	return predicate.Pattern(sql.FieldEQ(FieldQualityScore, v))
}

// QualityScoreNEQ applies the NEQ predicate on the "quality_score" field.
func QualityScoreNEQ(v float64) predicate.Pattern {
	return predicate.Pattern(sql.FieldNEQ(FieldQualityScore, v))
}

// QualityScoreIn applies the In predicate on the "quality_score" field.
func QualityScoreIn(vs ...float64) predicate.Pattern {
	return predicate.Pattern(sql.FieldIn(FieldQualityScore, vs...))
}

// QualityScoreNotIn applies the NotIn predicate on the "quality_score" field.
func QualityScoreNotIn(vs ...float64) predicate.Pattern {
	return predicate.Pattern(sql.FieldNotIn(FieldQualityScore, vs...))
}

// QualityScoreGT applies the GT predicate on the "quality_score" field.
func QualityScoreGT(v float64) predicate.Pattern {
	return predicate.Pattern(sql.FieldGT(FieldQualityScore, v))
}

// QualityScoreGTE applies the GTE predicate on the "quality_score" field.
func QualityScoreGTE(v float64) predicate.Pattern {
	return predicate.Pattern(sql.FieldGTE(FieldQualityScore, v))
}

// QualityScoreLT applies the LT predicate on the "quality_score" field.
func QualityScoreLT(v float64) predicate.Pattern {
	return predicate.Pattern(sql.FieldLT(FieldQualityScore, v))
}

// QualityScoreLTE applies the LTE predicate on the "quality_score" field.
func QualityScoreLTE(v float64) predicate.Pattern {
	return predicate.Pattern(sql.FieldLTE(FieldQualityScore, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.Pattern {
	return predicate.Pattern(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.Pattern {
	return predicate.Pattern(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.Pattern {
	return predicate.Pattern(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.Pattern {
	return predicate.Pattern(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.Pattern {
	return predicate.Pattern(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.Pattern {
	return predicate.Pattern(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.Pattern {
	return predicate.Pattern(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.Pattern {
	return predicate.Pattern(sql.FieldLTE(FieldConfidence, v))
}

// EvidenceTierEQ applies the EQ predicate on the "evidence_tier" field.
func EvidenceTierEQ(v EvidenceTier) predicate.Pattern {
	return predicate.Pattern(sql.FieldEQ(FieldEvidenceTier, v))
}

// EvidenceTierNEQ applies the NEQ predicate on the "evidence_tier" field.
func EvidenceTierNEQ(v EvidenceTier) predicate.Pattern {
	return predicate.Pattern(sql.FieldNEQ(FieldEvidenceTier, v))
}

// EvidenceTierIn applies the In predicate on the "evidence_tier" field.
func EvidenceTierIn(vs ...EvidenceTier) predicate.Pattern {
	return predicate.Pattern(sql.FieldIn(FieldEvidenceTier, vs...))
}

// EvidenceTierNotIn applies the NotIn predicate on the "evidence_tier" field.
func EvidenceTierNotIn(vs ...EvidenceTier) predicate.Pattern {
	return predicate.Pattern(sql.FieldNotIn(FieldEvidenceTier, vs...))
}

// VersionTagEQ applies the EQ predicate on the "version_tag" field.
func VersionTagEQ(v string) predicate.Pattern {
	return predicate.Pattern(sql.FieldEQ(FieldVersionTag, v))
}

// VersionTagNEQ applies the NEQ predicate on the "version_tag" field.
func VersionTagNEQ(v string) predicate.Pattern {
	return predicate.Pattern(sql.FieldNEQ(FieldVersionTag, v))
}

// VersionTagIn applies the In predicate on the "version_tag" field.
func VersionTagIn(vs ...string) predicate.Pattern {
	return predicate.Pattern(sql.FieldIn(FieldVersionTag, vs...))
}

// VersionTagNotIn applies the NotIn predicate on the "version_tag" field.
func VersionTagNotIn(vs ...string) predicate.Pattern {
	return predicate.Pattern(sql.FieldNotIn(FieldVersionTag, vs...))
}

// VersionTagGT applies the GT predicate on the "version_tag" field.
func VersionTagGT(v string) predicate.Pattern {
	return predicate.Pattern(sql.FieldGT(FieldVersionTag, v))
}

// VersionTagGTE applies the GTE predicate on the "version_tag" field.
func VersionTagGTE(v string) predicate.Pattern {
	return predicate.Pattern(sql.FieldGTE(FieldVersionTag, v))
}

// VersionTagLT applies the LT predicate on the "version_tag" field.
func VersionTagLT(v string) predicate.Pattern {
	return predicate.Pattern(sql.FieldLT(FieldVersionTag, v))
}

// VersionTagLTE applies the LTE predicate on the "version_tag" field.
func VersionTagLTE(v string) predicate.Pattern {
	return predicate.Pattern(sql.FieldLTE(FieldVersionTag, v))
}

// VersionTagContains applies the Contains predicate on the "version_tag" field.
func VersionTagContains(v string) predicate.Pattern {
	return predicate.Pattern(sql.FieldContains(FieldVersionTag, v))
}

// VersionTagHasPrefix applies the HasPrefix predicate on the "version_tag" field.
func VersionTagHasPrefix(v string) predicate.Pattern {
	return predicate.Pattern(sql.FieldHasPrefix(FieldVersionTag, v))
}

// VersionTagHasSuffix applies the HasSuffix predicate on the "version_tag" field.
func VersionTagHasSuffix(v string) predicate.Pattern {
	return predicate.Pattern(sql.FieldHasSuffix(FieldVersionTag, v))
}

// VersionTagEqualFold applies the EqualFold predicate on the "version_tag" field.
func VersionTagEqualFold(v string) predicate.Pattern {
	return predicate.Pattern(sql.FieldEqualFold(FieldVersionTag, v))
}

// VersionTagContainsFold applies the ContainsFold predicate on the "version_tag" field.
func VersionTagContainsFold(v string) predicate.Pattern {
	return predicate.Pattern(sql.FieldContainsFold(FieldVersionTag, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Pattern {
	return predicate.Pattern(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Pattern {
	return predicate.Pattern(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Pattern {
	return predicate.Pattern(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Pattern {
	return predicate.Pattern(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Pattern {
	return predicate.Pattern(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Pattern {
	return predicate.Pattern(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Pattern {
	return predicate.Pattern(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Pattern {
	return predicate.Pattern(sql.FieldLTE(FieldCreatedAt, v))
}

// LastPromotedAtEQ applies the EQ predicate on the "last_promoted_at" field.
func LastPromotedAtEQ(v time.Time) predicate.Pattern {
	return predicate.Pattern(sql.FieldEQ(FieldLastPromotedAt, v))
}

// LastPromotedAtNEQ applies the NEQ predicate on the "last_promoted_at" field.
func LastPromotedAtNEQ(v time.Time) predicate.Pattern {
	return predicate.Pattern(sql.FieldNEQ(FieldLastPromotedAt, v))
}

// LastPromotedAtIn applies the In predicate on the "last_promoted_at" field.
func LastPromotedAtIn(vs ...time.Time) predicate.Pattern {
	return predicate.Pattern(sql.FieldIn(FieldLastPromotedAt, vs...))
}

// LastPromotedAtNotIn applies the NotIn predicate on the "last_promoted_at" field.
func LastPromotedAtNotIn(vs ...time.Time) predicate.Pattern {
	return predicate.Pattern(sql.FieldNotIn(FieldLastPromotedAt, vs...))
}

// LastPromotedAtGT applies the GT predicate on the "last_promoted_at" field.
func LastPromotedAtGT(v time.Time) predicate.Pattern {
	return predicate.Pattern(sql.FieldGT(FieldLastPromotedAt, v))
}

// LastPromotedAtGTE applies the GTE predicate on the "last_promoted_at" field.
func LastPromotedAtGTE(v time.Time) predicate.Pattern {
	return predicate.Pattern(sql.FieldGTE(FieldLastPromotedAt, v))
}

// LastPromotedAtLT applies the LT predicate on the "last_promoted_at" field.
func LastPromotedAtLT(v time.Time) predicate.Pattern {
	return predicate.Pattern(sql.FieldLT(FieldLastPromotedAt, v))
}

// LastPromotedAtLTE applies the LTE predicate on the "last_promoted_at" field.
func LastPromotedAtLTE(v time.Time) predicate.Pattern {
	return predicate.Pattern(sql.FieldLTE(FieldLastPromotedAt, v))
}

// LastPromotedAtIsNil applies the IsNil predicate on the "last_promoted_at" field.
func LastPromotedAtIsNil() predicate.Pattern {
	return predicate.Pattern(sql.FieldIsNull(FieldLastPromotedAt))
}

// LastPromotedAtNotNil applies the NotNil predicate on the "last_promoted_at" field.
func LastPromotedAtNotNil() predicate.Pattern {
	return predicate.Pattern(sql.FieldNotNull(FieldLastPromotedAt))
}

// LastDemotedAtEQ applies the EQ predicate on the "last_demoted_at" field.
func LastDemotedAtEQ(v time.Time) predicate.Pattern {
	return predicate.Pattern(sql.FieldEQ(FieldLastDemotedAt, v))
}

// LastDemotedAtNEQ applies the NEQ predicate on the "last_demoted_at" field.
func LastDemotedAtNEQ(v time.Time) predicate.Pattern {
	return predicate.Pattern(sql.FieldNEQ(FieldLastDemotedAt, v))
}

// LastDemotedAtIn applies the In predicate on the "last_demoted_at" field.
func LastDemotedAtIn(vs ...time.Time) predicate.Pattern {
	return predicate.Pattern(sql.FieldIn(FieldLastDemotedAt, vs...))
}

// LastDemotedAtNotIn applies the NotIn predicate on the "last_demoted_at" field.
func LastDemotedAtNotIn(vs ...time.Time) predicate.Pattern {
	return predicate.Pattern(sql.FieldNotIn(FieldLastDemotedAt, vs...))
}

// LastDemotedAtGT applies the GT predicate on the "last_demoted_at" field.
func LastDemotedAtGT(v time.Time) predicate.Pattern {
	return predicate.Pattern(sql.FieldGT(FieldLastDemotedAt, v))
}

// LastDemotedAtGTE applies the GTE predicate on the "last_demoted_at" field.
func LastDemotedAtGTE(v time.Time) predicate.Pattern {
	return predicate.Pattern(sql.FieldGTE(FieldLastDemotedAt, v))
}

// LastDemotedAtLT applies the LT predicate on the "last_demoted_at" field.
func LastDemotedAtLT(v time.Time) predicate.Pattern {
	return predicate.Pattern(sql.FieldLT(FieldLastDemotedAt, v))
}

// LastDemotedAtLTE applies the LTE predicate on the "last_demoted_at" field.
func LastDemotedAtLTE(v time.Time) predicate.Pattern {
	return predicate.Pattern(sql.FieldLTE(FieldLastDemotedAt, v))
}

// LastDemotedAtIsNil applies the IsNil predicate on the "last_demoted_at" field.
func LastDemotedAtIsNil() predicate.Pattern {
	return predicate.Pattern(sql.FieldIsNull(FieldLastDemotedAt))
}

// LastDemotedAtNotNil applies the NotNil predicate on the "last_demoted_at" field.
func LastDemotedAtNotNil() predicate.Pattern {
	return predicate.Pattern(sql.FieldNotNull(FieldLastDemotedAt))
}

// DeprecatedAtEQ applies the EQ predicate on the "deprecated_at" field.
func DeprecatedAtEQ(v time.Time) predicate.Pattern {
	return predicate.Pattern(sql.FieldEQ(FieldDeprecatedAt, v))
}

// DeprecatedAtNEQ applies the NEQ predicate on the "deprecated_at" field.
func DeprecatedAtNEQ(v time.Time) predicate.Pattern {
	return predicate.Pattern(sql.FieldNEQ(FieldDeprecatedAt, v))
}

// DeprecatedAtIn applies the In predicate on the "deprecated_at" field.
func DeprecatedAtIn(vs ...time.Time) predicate.Pattern {
	return predicate.Pattern(sql.FieldIn(FieldDeprecatedAt, vs...))
}

// DeprecatedAtNotIn applies the NotIn predicate on the "deprecated_at" field.
func DeprecatedAtNotIn(vs ...time.Time) predicate.Pattern {
	return predicate.Pattern(sql.FieldNotIn(FieldDeprecatedAt, vs...))
}

// DeprecatedAtGT applies the GT predicate on the "deprecated_at" field.
func DeprecatedAtGT(v time.Time) predicate.Pattern {
	return predicate.Pattern(sql.FieldGT(FieldDeprecatedAt, v))
}

// DeprecatedAtGTE applies the GTE predicate on the "deprecated_at" field.
func DeprecatedAtGTE(v time.Time) predicate.Pattern {
	return predicate.Pattern(sql.FieldGTE(FieldDeprecatedAt, v))
}

// DeprecatedAtLT applies the LT predicate on the "deprecated_at" field.
func DeprecatedAtLT(v time.Time) predicate.Pattern {
	return predicate.Pattern(sql.FieldLT(FieldDeprecatedAt, v))
}

// DeprecatedAtLTE applies the LTE predicate on the "deprecated_at" field.
func DeprecatedAtLTE(v time.Time) predicate.Pattern {
	return predicate.Pattern(sql.FieldLTE(FieldDeprecatedAt, v))
}

// DeprecatedAtIsNil applies the IsNil predicate on the "deprecated_at" field.
func DeprecatedAtIsNil() predicate.Pattern {
	return predicate.Pattern(sql.FieldIsNull(FieldDeprecatedAt))
}

// DeprecatedAtNotNil applies the NotNil predicate on the "deprecated_at" field.
func DeprecatedAtNotNil() predicate.Pattern {
	return predicate.Pattern(sql.FieldNotNull(FieldDeprecatedAt))
}

// HasAuditEntries applies the HasEdge predicate on the "audit_entries" edge.
func HasAuditEntries() predicate.Pattern {
	return predicate.Pattern(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AuditEntriesTable, AuditEntriesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAuditEntriesWith applies the HasEdge predicate on the "audit_entries" edge with a given conditions (other predicates).
func HasAuditEntriesWith(preds ...predicate.PatternAudit) predicate.Pattern {
	return predicate.Pattern(func(s *sql.Selector) {
		step := newAuditEntriesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasInjections applies the HasEdge predicate on the "injections" edge.
func HasInjections() predicate.Pattern {
	return predicate.Pattern(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, InjectionsTable, InjectionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasInjectionsWith applies the HasEdge predicate on the "injections" edge with a given conditions (other predicates).
func HasInjectionsWith(preds ...predicate.PatternInjection) predicate.Pattern {
	return predicate.Pattern(func(s *sql.Selector) {
		step := newInjectionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasDisableEvents applies the HasEdge predicate on the "disable_events" edge.
func HasDisableEvents() predicate.Pattern {
	return predicate.Pattern(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, DisableEventsTable, DisableEventsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDisableEventsWith applies the HasEdge predicate on the "disable_events" edge with a given conditions (other predicates).
func HasDisableEventsWith(preds ...predicate.PatternDisable) predicate.Pattern {
	return predicate.Pattern(func(s *sql.Selector) {
		step := newDisableEventsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasOutcomes applies the HasEdge predicate on the "outcomes" edge.
func HasOutcomes() predicate.Pattern {
	return predicate.Pattern(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, OutcomesTable, OutcomesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasOutcomesWith applies the HasEdge predicate on the "outcomes" edge with a given conditions (other predicates).
func HasOutcomesWith(preds ...predicate.SessionOutcome) predicate.Pattern {
	return predicate.Pattern(func(s *sql.Selector) {
		step := newOutcomesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasFeedbackAggregate applies the HasEdge predicate on the "feedback_aggregate" edge.
func HasFeedbackAggregate() predicate.Pattern {
	return predicate.Pattern(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, FeedbackAggregateTable, FeedbackAggregateColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFeedbackAggregateWith applies the HasEdge predicate on the "feedback_aggregate" edge with a given conditions (other predicates).
func HasFeedbackAggregateWith(preds ...predicate.FeedbackAggregate) predicate.Pattern {
	return predicate.Pattern(func(s *sql.Selector) {
		step := newFeedbackAggregateStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Pattern) predicate.Pattern {
	return predicate.Pattern(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Pattern) predicate.Pattern {
	return predicate.Pattern(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Pattern) predicate.Pattern {
	return predicate.Pattern(sql.NotPredicates(p))
}
