// Package catalog lists the blog posts a session's /blog directory is built
// from. Sources mirror the storage backends posts may live in; Cache
// memoizes their queries for the lifetime of the host.
package catalog

import (
	"context"
	"errors"
	"sort"
	"time"
)

var (
	ErrNotOpen       = errors.New("catalog: source not open")
	ErrUnknownSource = errors.New("catalog: unknown source kind")
)

// Post is a single blog post as seen by the terminal.
type Post struct {
	Slug      string
	Title     string
	Published time.Time
}

// Source lists blog posts from one storage backend.
type Source interface {
	// Name returns the identifier of this source
	Name() string

	// Open prepares the source; it is called once before Posts
	Open(ctx context.Context) error

	// Close releases the source
	Close(ctx context.Context) error

	// Posts returns every post, newest first
	Posts(ctx context.Context) ([]Post, error)
}

// Slugs returns the slugs of posts in order.
func Slugs(posts []Post) []string {
	slugs := make([]string, len(posts))
	for i, p := range posts {
		slugs[i] = p.Slug
	}
	return slugs
}

// sortPosts orders newest first, then by slug.
func sortPosts(posts []Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		if !posts[i].Published.Equal(posts[j].Published) {
			return posts[i].Published.After(posts[j].Published)
		}
		return posts[i].Slug < posts[j].Slug
	})
}
