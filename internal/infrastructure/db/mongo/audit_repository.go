package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shivfurnitures/books-api/internal/core/domain"
)

const auditCollection = "session_events"

// AuditRepository persists session lifecycle events to the session_events
// audit collection.
type AuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{coll: db.Collection(auditCollection)}
}

// Insert appends one session event.
func (r *AuditRepository) Insert(ctx context.Context, event domain.SessionEvent) error {
	doc := bson.M{
		"email":        event.Email,
		"role":         event.Role,
		"action":       event.Action,
		"timestamp":    event.Timestamp.UTC(),
		"processed_at": time.Now().UTC(),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert session event: %w", err)
	}
	return nil
}

// FindByEmail returns the most recent events for one subject, newest first.
func (r *AuditRepository) FindByEmail(ctx context.Context, email string, limit int64) ([]domain.SessionEvent, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(limit)

	cur, err := r.coll.Find(ctx, bson.M{"email": email}, opts)
	if err != nil {
		return nil, fmt.Errorf("find session events: %w", err)
	}
	defer cur.Close(ctx)

	var out []domain.SessionEvent
	for cur.Next(ctx) {
		var doc struct {
			Email     string    `bson:"email"`
			Role      string    `bson:"role"`
			Action    string    `bson:"action"`
			Timestamp time.Time `bson:"timestamp"`
		}
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode session event: %w", err)
		}
		out = append(out, domain.SessionEvent{
			Email:     doc.Email,
			Role:      doc.Role,
			Action:    doc.Action,
			Timestamp: doc.Timestamp,
		})
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("find session events: %w", err)
	}
	return out, nil
}
