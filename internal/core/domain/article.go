package domain

import "time"

// Article is the core content entity. IDs are server-assigned positive
// integers; non-positive IDs never reach persistence (clients use negative
// IDs for unsynced local drafts, zero for "new").
type Article struct {
	ID          int        `json:"id" bson:"id"`
	Title       string     `json:"title" bson:"title"`
	Description string     `json:"description" bson:"description"`
	AuthorID    int        `json:"authorId" bson:"author_id"`
	Author      *Author    `json:"author,omitempty" bson:"-"`
	CreatedAt   time.Time  `json:"createdDate" bson:"created_at"`
	UpdatedAt   *time.Time `json:"updatedDate,omitempty" bson:"updated_at,omitempty"`
}
