package config

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
)

func TestNewRedisClient(t *testing.T) {
	t.Setenv("REDIS_URL", "")
	t.Setenv("REDIS_ADDR", "")
	if c := NewRedisClient(); c != nil {
		t.Fatal("client built without any redis configuration")
	}

	mr := miniredis.RunT(t)
	t.Setenv("REDIS_ADDR", mr.Addr())
	c := NewRedisClient()
	if c == nil {
		t.Fatal("no client for a reachable server")
	}
	defer c.Close()

	mr.Close()
	t.Setenv("REDIS_URL", "redis://"+mr.Addr()+"/0")
	if c := NewRedisClient(); c != nil {
		t.Error("client returned for an unreachable server")
	}
}
