package catalog

import (
	"context"
	"database/sql"
	"sync"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const postsSchema = `
CREATE TABLE IF NOT EXISTS posts (
	slug TEXT PRIMARY KEY,
	title TEXT NOT NULL DEFAULT '',
	published_at INTEGER NOT NULL DEFAULT 0
)`

// SQLiteSource lists posts from a posts table in a SQLite database.
// The dsn can be ":memory:" for an in-memory database or a file path.
type SQLiteSource struct {
	mu  sync.RWMutex
	dsn string
	db  *sql.DB
}

func NewSQLiteSource(dsn string) *SQLiteSource {
	return &SQLiteSource{dsn: dsn}
}

func (*SQLiteSource) Name() string {
	return "sqlite"
}

// Open connects and creates the posts table if needed.
func (s *SQLiteSource) Open(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db != nil {
		return nil
	}

	db, err := sql.Open("sqlite", s.dsn)
	if err != nil {
		return err
	}
	// An in-memory database exists once per connection
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return err
	}
	if _, err := db.ExecContext(ctx, postsSchema); err != nil {
		db.Close()
		return err
	}

	s.db = db
	return nil
}

func (s *SQLiteSource) Close(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}

	err := s.db.Close()
	s.db = nil
	return err
}

// Add inserts or replaces a post.
func (s *SQLiteSource) Add(ctx context.Context, post Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return ErrNotOpen
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT OR REPLACE INTO posts (slug, title, published_at) VALUES (?, ?, ?)",
		post.Slug, post.Title, post.Published.Unix())
	return err
}

func (s *SQLiteSource) Posts(ctx context.Context) ([]Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return nil, ErrNotOpen
	}

	rows, err := s.db.QueryContext(ctx, "SELECT slug, title, published_at FROM posts ORDER BY published_at DESC, slug")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []Post
	for rows.Next() {
		var (
			post      Post
			published int64
		)
		if err := rows.Scan(&post.Slug, &post.Title, &published); err != nil {
			return nil, err
		}
		post.Published = time.Unix(published, 0).UTC()
		posts = append(posts, post)
	}

	return posts, rows.Err()
}
