package mongo

import (
	"context"
	"time"

	"github.com/yoockh/pathwise/internal/models"
	"go.mongodb.org/mongo-driver/mongo"
)

type GenerationLogRepository interface {
	Insert(ctx context.Context, l *models.GenerationLog) error
}

type generationLogRepo struct {
	col *mongo.Collection
}

func NewGenerationLogRepo(db *mongo.Database) GenerationLogRepository {
	return &generationLogRepo{col: db.Collection("generation_logs")}
}

func (r *generationLogRepo) Insert(ctx context.Context, l *models.GenerationLog) error {
	if l.Timestamp.IsZero() {
		l.Timestamp = time.Now().UTC()
	}
	if l.ExpiresAt.IsZero() {
		l.ExpiresAt = l.Timestamp.Add(30 * 24 * time.Hour)
	}
	_, err := r.col.InsertOne(ctx, l)
	return err
}
