package catalog

import (
	"context"
	"fmt"
	"path"

	lru "github.com/hashicorp/golang-lru"
)

type cacheKind int

const (
	queryKey cacheKind = iota
	postKey
)

// cacheKey keeps glob queries and single-post lookups apart in one LRU.
type cacheKey struct {
	kind  cacheKind
	value string
}

// Cache memoizes post queries of a source, keyed by glob pattern. It lives
// as long as the host; Purge drops everything after posts changed.
type Cache struct {
	source Source
	lru    *lru.Cache
}

func NewCache(source Source, size int) (*Cache, error) {
	c, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("failed to create catalog cache: %w", err)
	}

	return &Cache{source: source, lru: c}, nil
}

// Open opens source and wraps it in a cache of the given size. The returned
// cache owns the source until Close.
func Open(ctx context.Context, source Source, size int) (*Cache, error) {
	cache, err := NewCache(source, size)
	if err != nil {
		return nil, err
	}

	if err := source.Open(ctx); err != nil {
		return nil, fmt.Errorf("failed to open %s catalog: %w", source.Name(), err)
	}

	return cache, nil
}

// Name returns the name of the underlying source.
func (c *Cache) Name() string {
	return c.source.Name()
}

// Close purges the cache and closes the source.
func (c *Cache) Close(ctx context.Context) error {
	c.lru.Purge()
	if err := c.source.Close(ctx); err != nil {
		return fmt.Errorf("failed to close %s catalog: %w", c.source.Name(), err)
	}
	return nil
}

// Find returns the posts whose slug matches pattern, in source order. The
// source is only consulted on a miss.
func (c *Cache) Find(ctx context.Context, pattern string) ([]Post, error) {
	if _, err := path.Match(pattern, ""); err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}

	key := cacheKey{kind: queryKey, value: pattern}
	if cached, ok := c.lru.Get(key); ok {
		if posts, ok := cached.([]Post); ok {
			return append([]Post(nil), posts...), nil
		}
	}

	all, err := c.source.Posts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s catalog: %w", c.source.Name(), err)
	}

	var matches []Post
	for _, post := range all {
		if ok, _ := path.Match(pattern, post.Slug); ok {
			matches = append(matches, post)
		}
	}

	c.lru.Add(key, matches)
	return append([]Post(nil), matches...), nil
}

// Post returns the post with the given slug.
func (c *Cache) Post(ctx context.Context, slug string) (Post, bool, error) {
	key := cacheKey{kind: postKey, value: slug}
	if cached, ok := c.lru.Get(key); ok {
		if post, ok := cached.(Post); ok {
			return post, true, nil
		}
	}

	all, err := c.source.Posts(ctx)
	if err != nil {
		return Post{}, false, fmt.Errorf("failed to list %s catalog: %w", c.source.Name(), err)
	}

	for _, post := range all {
		if post.Slug == slug {
			c.lru.Add(key, post)
			return post, true, nil
		}
	}
	return Post{}, false, nil
}

// Purge drops every memoized query.
func (c *Cache) Purge() {
	c.lru.Purge()
}

// Len returns the number of memoized queries.
func (c *Cache) Len() int {
	return c.lru.Len()
}
