package domain

import "time"

// Audit actions recorded for content mutations.
const (
	AuditCreated = "created"
	AuditUpdated = "updated"
	AuditDeleted = "deleted"
)

// AuditEntry records a single content mutation for the admin activity feed.
type AuditEntry struct {
	Entity   string    `json:"entity" bson:"entity"` // "article" or "author"
	EntityID int       `json:"entityId" bson:"entity_id"`
	Action   string    `json:"action" bson:"action"`
	Actor    string    `json:"actor" bson:"actor"` // email of the admin who acted
	At       time.Time `json:"at" bson:"at"`
}
