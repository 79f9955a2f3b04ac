package domain

// Author writes articles. One author has many articles; an article
// references zero-or-one author.
//
// Embedding policy: Articles is populated one level deep on author detail
// reads, and the embedded articles never carry a nested Author. This keeps
// serialization depth bounded.
type Author struct {
	ID       int       `json:"id" bson:"id"`
	Name     string    `json:"name" bson:"name"`
	Articles []Article `json:"articles,omitempty" bson:"-"`
}
