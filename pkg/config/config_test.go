package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/jhlee0409/visual-layout-builder-sub001/pkg/linkgroup"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "vlb.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Cache.Backend != BackendFile {
		t.Errorf("default backend = %q, want %q", cfg.Cache.Backend, BackendFile)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("default addr = %q, want :8080", cfg.Server.Addr)
	}
	if cfg.LinkPolicy() != linkgroup.PolicyTransitive {
		t.Errorf("default policy = %v, want transitive", cfg.LinkPolicy())
	}
}

func TestLoadLayersOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vlb.toml")
	content := `
[server]
addr = ":9090"

[cache]
backend = "redis"

[cache.redis]
addr = "redis.internal:6379"
db = 2

[links]
policy = "one-to-one"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Addr != ":9090" {
		t.Errorf("addr = %q, want :9090", cfg.Server.Addr)
	}
	if cfg.Cache.Backend != BackendRedis {
		t.Errorf("backend = %q, want redis", cfg.Cache.Backend)
	}
	if cfg.Cache.Redis.Addr != "redis.internal:6379" || cfg.Cache.Redis.DB != 2 {
		t.Errorf("redis config = %+v", cfg.Cache.Redis)
	}
	// Unset sections keep their defaults.
	if cfg.Cache.Mongo.Database != "vlb" {
		t.Errorf("mongo database = %q, want default", cfg.Cache.Mongo.Database)
	}
	if cfg.LinkPolicy() != linkgroup.PolicyOneToOne {
		t.Errorf("policy = %v, want one-to-one", cfg.LinkPolicy())
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown backend", "[cache]\nbackend = \"memcached\"\n"},
		{"unknown policy", "[links]\npolicy = \"many-to-many\"\n"},
		{"malformed toml", "[cache\nbackend =\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "vlb.toml")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestOpenCache(t *testing.T) {
	ctx := context.Background()

	t.Run("none", func(t *testing.T) {
		cfg := Default()
		cfg.Cache.Backend = BackendNone
		c, err := cfg.OpenCache(ctx)
		if err != nil {
			t.Fatalf("OpenCache() error = %v", err)
		}
		defer c.Close()
		_, hit, err := c.Get(ctx, "anything")
		if err != nil || hit {
			t.Errorf("null cache Get = hit %v, err %v", hit, err)
		}
	})

	t.Run("file", func(t *testing.T) {
		cfg := Default()
		cfg.Cache.Backend = BackendFile
		cfg.Cache.Dir = t.TempDir()
		c, err := cfg.OpenCache(ctx)
		if err != nil {
			t.Fatalf("OpenCache() error = %v", err)
		}
		defer c.Close()
		if err := c.Set(ctx, "k", []byte("v"), 0); err != nil {
			t.Errorf("Set() error = %v", err)
		}
	})
}
