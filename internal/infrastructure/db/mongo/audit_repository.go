package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/smarttask/task-system/internal/core/ports"
)

const auditCollection = "auth_events"

// MongoAuditRepository persists the authentication audit trail. This is the
// only place the internal failure reasons (unknown_email, wrong_password)
// are stored; the API surface never sees them.
type MongoAuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *MongoAuditRepository {
	return &MongoAuditRepository{coll: db.Collection(auditCollection)}
}

type mongoAuthEvent struct {
	Email  string    `bson:"email"`
	Action string    `bson:"action"`
	Result string    `bson:"result"`
	At     time.Time `bson:"at"`
}

func (r *MongoAuditRepository) Record(ctx context.Context, event ports.AuthEvent) error {
	doc := mongoAuthEvent{
		Email:  event.Email,
		Action: event.Action,
		Result: event.Result,
		At:     event.At,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert auth event: %w", err)
	}
	return nil
}
