package catalog

import "context"

// StaticSource serves a fixed list of posts, in the order given.
type StaticSource struct {
	posts []Post
}

func NewStaticSource(slugs ...string) *StaticSource {
	posts := make([]Post, len(slugs))
	for i, slug := range slugs {
		posts[i] = Post{Slug: slug, Title: slug}
	}
	return &StaticSource{posts: posts}
}

func (*StaticSource) Name() string {
	return "static"
}

func (s *StaticSource) Open(ctx context.Context) error {
	return nil
}

func (s *StaticSource) Close(ctx context.Context) error {
	return nil
}

func (s *StaticSource) Posts(ctx context.Context) ([]Post, error) {
	return append([]Post(nil), s.posts...), nil
}
