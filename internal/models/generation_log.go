package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GenerationLog records one call to the generative provider. Insert-only,
// expired by a TTL index on ExpiresAt.
type GenerationLog struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID string             `bson:"user_id" json:"user_id"`
	Kind   string             `bson:"kind" json:"kind"`     // careers|roadmap|extract
	Status string             `bson:"status" json:"status"` // done|fallback|failed

	ResponseBytes    int   `bson:"response_bytes,omitempty" json:"response_bytes,omitempty"`
	ProcessingTimeMS int64 `bson:"processing_time_ms,omitempty" json:"processing_time_ms,omitempty"`

	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
	ExpiresAt time.Time `bson:"expires_at" json:"expires_at"` // for TTL index
}

const (
	GenKindCareers = "careers"
	GenKindRoadmap = "roadmap"
	GenKindExtract = "extract"

	GenStatusDone     = "done"
	GenStatusFallback = "fallback"
	GenStatusFailed   = "failed"
)
