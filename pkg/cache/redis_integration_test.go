//go:build integration

package cache

import (
	"context"
	"os"
	"testing"
	"time"
)

func testRedis(t *testing.T) *RedisCache {
	t.Helper()
	addr := os.Getenv("ADDONSCAN_REDIS_ADDR")
	if addr == "" {
		t.Skip("ADDONSCAN_REDIS_ADDR not set")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	c, err := NewRedisCache(ctx, addr, "addonscan-test:"+t.Name()+":")
	if err != nil {
		t.Fatalf("NewRedisCache: %v", err)
	}
	t.Cleanup(func() {
		_, _ = c.Clear(context.Background())
		c.Close()
	})
	return c
}

func TestRedisCache_Integration(t *testing.T) {
	c := testRedis(t)
	ctx := context.Background()

	if _, hit, err := c.Get(ctx, "missing"); hit || err != nil {
		t.Fatalf("Get(missing) = %v, %v; want miss", hit, err)
	}

	if err := c.Set(ctx, "npm:downloads:sharp", []byte("42"), time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	data, hit, err := c.Get(ctx, "npm:downloads:sharp")
	if err != nil || !hit || string(data) != "42" {
		t.Fatalf("Get = %q, %v, %v; want 42, true, nil", data, hit, err)
	}

	if err := c.Delete(ctx, "npm:downloads:sharp"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "npm:downloads:sharp"); hit {
		t.Error("Get after Delete should miss")
	}
}

func TestRedisCacheClear_Integration(t *testing.T) {
	c := testRedis(t)
	ctx := context.Background()

	for _, k := range []string{"a", "b"} {
		if err := c.Set(ctx, k, []byte(k), time.Minute); err != nil {
			t.Fatal(err)
		}
	}
	n, err := c.Clear(ctx)
	if err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if n != 2 {
		t.Errorf("Clear removed %d keys, want 2", n)
	}
}

func TestNewRedisCacheUnreachable_Integration(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if _, err := NewRedisCache(ctx, "127.0.0.1:1", ""); err == nil {
		t.Error("NewRedisCache should fail for an unreachable server")
	}
}
