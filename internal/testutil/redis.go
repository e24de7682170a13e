//go:build integration

package testutil

import (
	"context"
	"testing"
)

// FlushDB flushes a specific Redis database.
func FlushDB(t *testing.T, db int) {
	t.Helper()

	if err := RedisClient(t, db).FlushDB(context.Background()).Err(); err != nil {
		t.Fatalf("flushing DB %d: %v", db, err)
	}
}

// ReadHash reads a hash from a specific Redis DB.
func ReadHash(t *testing.T, db int, key string) map[string]string {
	t.Helper()

	vals, err := RedisClient(t, db).HGetAll(context.Background(), key).Result()
	if err != nil {
		t.Fatalf("reading %s: %v", key, err)
	}
	return vals
}

// ReadList returns every element of a list in a specific Redis DB.
func ReadList(t *testing.T, db int, key string) []string {
	t.Helper()

	vals, err := RedisClient(t, db).LRange(context.Background(), key, 0, -1).Result()
	if err != nil {
		t.Fatalf("reading %s: %v", key, err)
	}
	return vals
}

// KeyCount returns the number of keys in a Redis database.
func KeyCount(t *testing.T, db int) int {
	t.Helper()

	n, err := RedisClient(t, db).DBSize(context.Background()).Result()
	if err != nil {
		t.Fatalf("counting keys in DB %d: %v", db, err)
	}
	return int(n)
}
