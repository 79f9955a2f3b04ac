package catalog

import (
	"time"

	"github.com/ujsag/newspress/internal/client/cache"
	"github.com/ujsag/newspress/internal/client/rest"
)

// Article is the display model: the flattened shape the terminal and web
// clients render. Negative ids mark device-local articles.
type Article struct {
	ID          int
	Title       string
	Description string
	AuthorID    int
	AuthorName  string
	CreatedDate time.Time
	UpdatedDate *time.Time
}

// Local reports whether the article exists only on this device.
func (a Article) Local() bool {
	return a.ID < 0
}

func fromWire(a rest.Article) Article {
	out := Article{
		ID:          a.ID,
		Title:       a.Title,
		Description: a.Description,
		AuthorID:    a.AuthorID,
		CreatedDate: a.CreatedDate,
		UpdatedDate: a.UpdatedDate,
	}
	if a.Author != nil {
		out.AuthorName = a.Author.Name
	}
	return out
}

func fromCache(a cache.Article) Article {
	out := Article{
		ID:          a.ID,
		Title:       a.Title,
		Description: a.Description,
		AuthorID:    a.AuthorID,
		CreatedDate: a.CreatedDate,
		UpdatedDate: a.UpdatedDate,
	}
	if a.Author != nil {
		out.AuthorName = a.Author.Name
	}
	return out
}

func toCache(a Article) cache.Article {
	out := cache.Article{
		ID:          a.ID,
		Title:       a.Title,
		Description: a.Description,
		AuthorID:    a.AuthorID,
		CreatedDate: a.CreatedDate,
		UpdatedDate: a.UpdatedDate,
	}
	if a.AuthorID != 0 || a.AuthorName != "" {
		out.Author = &cache.Author{ID: a.AuthorID, Name: a.AuthorName}
	}
	return out
}
