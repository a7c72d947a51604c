// Package config loads builder configuration from a vlb.toml file.
package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/jhlee0409/visual-layout-builder-sub001/pkg/cache"
	"github.com/jhlee0409/visual-layout-builder-sub001/pkg/linkgroup"
)

// DefaultFilename is the config file looked up in the working directory.
const DefaultFilename = "vlb.toml"

// Cache backend names accepted in [cache].backend.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendMongo = "mongo"
	BackendNone  = "none"
)

// Config is the full builder configuration.
type Config struct {
	Server ServerConfig `toml:"server"`
	Cache  CacheConfig  `toml:"cache"`
	Links  LinksConfig  `toml:"links"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// CacheConfig selects and configures the cache backend.
type CacheConfig struct {
	Backend string      `toml:"backend"`
	Dir     string      `toml:"dir"`
	Redis   RedisConfig `toml:"redis"`
	Mongo   MongoConfig `toml:"mongo"`
}

// RedisConfig configures the redis backend.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// MongoConfig configures the mongo backend.
type MongoConfig struct {
	URI        string `toml:"uri"`
	Database   string `toml:"database"`
	Collection string `toml:"collection"`
}

// LinksConfig configures link-group resolution.
type LinksConfig struct {
	Policy string `toml:"policy"`
}

// Default returns the configuration used when no file is present:
// a file cache under the user cache directory and transitive links.
func Default() Config {
	return Config{
		Server: ServerConfig{Addr: ":8080"},
		Cache: CacheConfig{
			Backend: BackendFile,
			Dir:     defaultCacheDir(),
			Redis:   RedisConfig{Addr: "localhost:6379"},
			Mongo: MongoConfig{
				URI:        "mongodb://localhost:27017",
				Database:   "vlb",
				Collection: "cache",
			},
		},
		Links: LinksConfig{Policy: linkgroup.PolicyTransitive.String()},
	}
}

func defaultCacheDir() string {
	if dir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(dir, "vlb")
	}
	return ".vlb-cache"
}

// Load reads the config file at path, layering it over the defaults.
// A missing file is not an error; the defaults are returned as-is.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks field values that Load cannot catch structurally.
func (c Config) Validate() error {
	switch c.Cache.Backend {
	case BackendFile, BackendRedis, BackendMongo, BackendNone:
	default:
		return fmt.Errorf("unknown cache backend: %q (must be one of: file, redis, mongo, none)", c.Cache.Backend)
	}
	if _, err := linkgroup.ParsePolicy(c.Links.Policy); err != nil {
		return err
	}
	return nil
}

// LinkPolicy returns the configured link policy.
func (c Config) LinkPolicy() linkgroup.Policy {
	policy, err := linkgroup.ParsePolicy(c.Links.Policy)
	if err != nil {
		return linkgroup.PolicyTransitive
	}
	return policy
}

// OpenCache constructs the configured cache backend.
func (c Config) OpenCache(ctx context.Context) (cache.Cache, error) {
	switch c.Cache.Backend {
	case BackendNone:
		return cache.NewNullCache(), nil
	case BackendFile:
		dir := c.Cache.Dir
		if dir == "" {
			dir = defaultCacheDir()
		}
		return cache.NewFileCache(dir)
	case BackendRedis:
		return cache.NewRedisCache(ctx, c.Cache.Redis.Addr, c.Cache.Redis.Password, c.Cache.Redis.DB)
	case BackendMongo:
		return cache.NewMongoCache(ctx, c.Cache.Mongo.URI, c.Cache.Mongo.Database, c.Cache.Mongo.Collection)
	default:
		return nil, fmt.Errorf("unknown cache backend: %q", c.Cache.Backend)
	}
}
