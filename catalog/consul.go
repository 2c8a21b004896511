package catalog

import (
	"context"
	"strings"
	"sync"

	"github.com/hashicorp/consul/api"
)

// ConsulSource lists posts stored as Consul KV entries below a prefix. Each
// key's last segment is the slug and its value the title.
type ConsulSource struct {
	mu     sync.RWMutex
	client *api.Client
	kv     *api.KV

	config *ConsulSourceConfig
}

// ConsulSourceConfig contains configuration options for the Consul source
type ConsulSourceConfig struct {
	// Address of the Consul server (default: "127.0.0.1:8500")
	Address string

	// Token for Consul ACL authentication (optional)
	Token string

	// Prefix all post keys live under (default: "blog/")
	Prefix string
}

func NewConsulSource(config *ConsulSourceConfig) (*ConsulSource, error) {
	if config == nil {
		config = &ConsulSourceConfig{}
	}
	if config.Address == "" {
		config.Address = "127.0.0.1:8500"
	}
	if config.Prefix == "" {
		config.Prefix = "blog/"
	}
	if !strings.HasSuffix(config.Prefix, "/") {
		config.Prefix += "/"
	}

	clientConfig := api.DefaultConfig()
	clientConfig.Address = config.Address
	if config.Token != "" {
		clientConfig.Token = config.Token
	}

	client, err := api.NewClient(clientConfig)
	if err != nil {
		return nil, err
	}

	return &ConsulSource{
		client: client,
		kv:     client.KV(),
		config: config,
	}, nil
}

func (*ConsulSource) Name() string {
	return "consul"
}

// Open verifies the agent is reachable.
func (c *ConsulSource) Open(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, err := c.client.Status().Leader()
	return err
}

func (c *ConsulSource) Close(ctx context.Context) error {
	return nil
}

func (c *ConsulSource) Posts(ctx context.Context) ([]Post, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	pairs, _, err := c.kv.List(c.config.Prefix, (&api.QueryOptions{}).WithContext(ctx))
	if err != nil {
		return nil, err
	}

	var posts []Post
	for _, pair := range pairs {
		slug, ok := consulSlug(c.config.Prefix, pair.Key)
		if !ok {
			continue
		}
		posts = append(posts, Post{Slug: slug, Title: string(pair.Value)})
	}

	sortPosts(posts)
	return posts, nil
}

// consulSlug returns the slug of a key directly below prefix. Folder keys
// and nested keys are skipped.
func consulSlug(prefix, key string) (string, bool) {
	slug, ok := strings.CutPrefix(key, prefix)
	if !ok || slug == "" || strings.Contains(slug, "/") {
		return "", false
	}
	return slug, true
}
