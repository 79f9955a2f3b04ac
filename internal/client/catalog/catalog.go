// Package catalog holds the client-side article collection: the server's
// articles merged with the device-local, negative-id articles the user created
// offline or optimistically.
package catalog

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/ujsag/newspress/internal/client/cache"
	"github.com/ujsag/newspress/internal/client/rest"
)

// ErrEmptyTitle rejects create/update input before any network call.
var ErrEmptyTitle = errors.New("title must not be empty")

// API is the slice of the REST client the catalog needs.
type API interface {
	ListArticles(ctx context.Context) ([]rest.Article, error)
	CreateArticle(ctx context.Context, in rest.ArticleInput) (*rest.Article, error)
	UpdateArticle(ctx context.Context, id int, in rest.ArticleInput) error
	DeleteArticle(ctx context.Context, id int) error
}

// Options tunes catalog behaviour.
type Options struct {
	// ReconcileOnCreate, when true, replaces a local negative-id entry with
	// the server-assigned entity after a successful create and rewrites the
	// cache file. When false the local entry is kept as-is and the server
	// copy shows up as a separate article on the next load.
	ReconcileOnCreate bool
}

// Catalog is the merged display collection plus the operations that mutate it.
// Not safe for concurrent use; it models a single interactive session.
type Catalog struct {
	api   API
	store *cache.Store
	opts  Options
	log   zerolog.Logger

	items []Article
}

// New creates a Catalog over the given API client and local store.
func New(api API, store *cache.Store, opts Options, log zerolog.Logger) *Catalog {
	return &Catalog{api: api, store: store, opts: opts, log: log}
}

// Items returns the current display collection.
func (c *Catalog) Items() []Article {
	return c.items
}

// Refresh rebuilds the display collection: the full server list in server
// order, with any persisted local article whose id is not already present
// prepended in local-list order. A failed server fetch degrades to an empty
// server list so the local articles still render.
func (c *Catalog) Refresh(ctx context.Context) {
	server, err := c.api.ListArticles(ctx)
	if err != nil {
		c.log.Debug().Err(err).Msg("article list fetch failed, rendering local only")
		server = nil
	}
	c.items = Merge(server, c.store.Load())
}

// Merge combines server and local article lists. Identifier equality is the
// only de-duplication key: a local article whose id also appears in the server
// list is dropped in favour of the server copy.
func Merge(server []rest.Article, local []cache.Article) []Article {
	seen := make(map[int]struct{}, len(server))
	for _, a := range server {
		seen[a.ID] = struct{}{}
	}

	out := make([]Article, 0, len(server)+len(local))
	for _, a := range local {
		if _, ok := seen[a.ID]; ok {
			continue
		}
		out = append(out, fromCache(a))
	}
	for _, a := range server {
		out = append(out, fromWire(a))
	}
	return out
}

// Create adds a new article: it is assigned the next negative local id,
// prepended to the display collection, persisted to the cache file, and then
// posted to the server. The server call's outcome is returned to the caller;
// the optimistic local entry survives a failed post either way.
func (c *Catalog) Create(ctx context.Context, title, description string, authorID int, authorName string) (Article, error) {
	if title == "" {
		return Article{}, ErrEmptyTitle
	}

	art := Article{
		ID:          c.store.NextLocalID(),
		Title:       title,
		Description: description,
		AuthorID:    authorID,
		AuthorName:  authorName,
		CreatedDate: time.Now().UTC(),
	}
	c.items = append([]Article{art}, c.items...)
	if err := c.persistLocal(); err != nil {
		return art, err
	}

	created, err := c.api.CreateArticle(ctx, rest.ArticleInput{
		Title:       title,
		Description: description,
		AuthorID:    authorID,
	})
	if err != nil {
		return art, err
	}

	if c.opts.ReconcileOnCreate {
		if err := c.reconcile(art.ID, *created); err != nil {
			return art, err
		}
		return fromWire(*created), nil
	}
	return art, nil
}

// Update edits an article. A server-known (positive) id is replaced in the
// display collection and sent as a PUT; a local (negative) id mutates the
// persisted entry with no network call.
func (c *Catalog) Update(ctx context.Context, art Article) error {
	if art.Title == "" {
		return ErrEmptyTitle
	}

	now := time.Now().UTC()
	art.UpdatedDate = &now
	c.replace(art)

	if art.ID < 0 {
		return c.persistLocal()
	}
	return c.api.UpdateArticle(ctx, art.ID, rest.ArticleInput{
		Title:       art.Title,
		Description: art.Description,
		AuthorID:    art.AuthorID,
	})
}

// Delete removes an article from the display collection. A local id rewrites
// the cache file; a server id issues a DELETE and reports its outcome.
func (c *Catalog) Delete(ctx context.Context, id int) error {
	c.remove(id)
	if id < 0 {
		return c.persistLocal()
	}
	return c.api.DeleteArticle(ctx, id)
}

// reconcile swaps the local entry for the server-assigned one.
func (c *Catalog) reconcile(localID int, created rest.Article) error {
	c.remove(localID)
	c.items = append([]Article{fromWire(created)}, c.items...)
	return c.persistLocal()
}

// persistLocal rewrites the cache file from the negative-id slice of the
// display collection.
func (c *Catalog) persistLocal() error {
	local := make([]cache.Article, 0)
	for _, a := range c.items {
		if a.ID < 0 {
			local = append(local, toCache(a))
		}
	}
	return c.store.Save(local)
}

func (c *Catalog) replace(art Article) {
	for i := range c.items {
		if c.items[i].ID == art.ID {
			c.items[i] = art
			return
		}
	}
}

func (c *Catalog) remove(id int) {
	for i := range c.items {
		if c.items[i].ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}
