// Package cache persists locally-created articles between sessions.
//
// Articles in the cache carry negative identifiers: they exist only on this
// device until a create against the server succeeds and reconciliation is
// enabled. The Store owns the negative-id counter, so new local ids are
// strictly decreasing across a session and never collide with persisted ones.
package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const fileName = "local_articles.json"

// Article is the locally persisted shape. The embedded author keeps only its
// id and name: its own article list is stripped before writing to avoid
// serialising the article→author→articles cycle.
type Article struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	AuthorID    int        `json:"authorId"`
	Author      *Author    `json:"author,omitempty"`
	CreatedDate time.Time  `json:"createdDate"`
	UpdatedDate *time.Time `json:"updatedDate,omitempty"`
}

// Author is the defanged author reference stored alongside a cached article.
type Author struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Store reads and writes the local article list under a fixed file in dir.
type Store struct {
	mu     sync.Mutex
	dir    string
	nextID int
	seeded bool
}

// NewStore creates a Store rooted at dir. The directory is created on first
// Save; Load before any Save simply reports an empty list.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) path() string {
	return filepath.Join(s.dir, fileName)
}

// Load returns the persisted local articles. A missing or unreadable file and
// corrupt JSON all yield an empty list without error: local history is
// best-effort and must never block rendering.
func (s *Store) Load() []Article {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := s.read()
	s.seed(list)
	return list
}

// Save writes the list as indented JSON, stripping each embedded author down
// to id and name first.
func (s *Store) Save(list []Article) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Article, len(list))
	for i, a := range list {
		out[i] = a
		if a.Author != nil {
			out[i].Author = &Author{ID: a.Author.ID, Name: a.Author.Name}
		}
	}

	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}
	buf, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("encode cache: %w", err)
	}
	if err := os.WriteFile(s.path(), buf, 0o600); err != nil {
		return fmt.Errorf("write cache: %w", err)
	}
	s.seed(out)
	return nil
}

// NextLocalID reserves the next negative identifier. Ids decrease
// monotonically and start below the minimum id ever seen in the persisted
// list, so a fresh session cannot reuse an id already on disk.
func (s *Store) NextLocalID() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.seeded {
		s.seed(s.read())
	}
	id := s.nextID
	s.nextID--
	return id
}

// read loads and decodes the cache file, swallowing every failure.
func (s *Store) read() []Article {
	buf, err := os.ReadFile(s.path())
	if err != nil {
		return nil
	}
	var list []Article
	if err := json.Unmarshal(buf, &list); err != nil {
		return nil
	}
	return list
}

// seed positions the counter below the smallest id in list. Never moves the
// counter upward once set.
func (s *Store) seed(list []Article) {
	min := 0
	for _, a := range list {
		if a.ID < min {
			min = a.ID
		}
	}
	candidate := min - 1
	if !s.seeded || candidate < s.nextID {
		s.nextID = candidate
	}
	s.seeded = true
}
