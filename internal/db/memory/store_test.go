package memory

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/kailas-cloud/hbnb/internal/db"
)

func TestKV_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	if _, err := s.Get(ctx, "k"); !errors.Is(err, db.ErrKeyNotFound) {
		t.Fatalf("expected ErrKeyNotFound, got %v", err)
	}

	val := []byte("v1")
	if err := s.Set(ctx, "k", val); err != nil {
		t.Fatalf("Set: %v", err)
	}
	val[0] = 'X' // caller mutation must not leak into the store

	got, err := s.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != "v1" {
		t.Errorf("Get = %q, want v1", got)
	}

	ok, _ := s.Exists(ctx, "k")
	if !ok {
		t.Error("Exists = false after Set")
	}

	if err := s.Del(ctx, "k"); err != nil {
		t.Fatalf("Del: %v", err)
	}
	ok, _ = s.Exists(ctx, "k")
	if ok {
		t.Error("Exists = true after Del")
	}
}

func TestGetMulti(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	_ = s.Set(ctx, "a", []byte("1"))
	_ = s.Set(ctx, "c", []byte("3"))

	out, err := s.GetMulti(ctx, []string{"a", "b", "c"})
	if err != nil {
		t.Fatalf("GetMulti: %v", err)
	}
	if string(out[0]) != "1" || out[1] != nil || string(out[2]) != "3" {
		t.Errorf("GetMulti = %q", out)
	}
}

func TestZSet_OrderAndRemoval(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	_ = s.ZAdd(ctx, "z", 3, "c")
	_ = s.ZAdd(ctx, "z", 1, "b")
	_ = s.ZAdd(ctx, "z", 1, "a")
	_ = s.ZAdd(ctx, "z", 2, "d")
	_ = s.ZAdd(ctx, "z", 2, "d") // re-adding is idempotent

	got, _ := s.ZRange(ctx, "z")
	want := []string{"a", "b", "d", "c"}
	if len(got) != len(want) {
		t.Fatalf("ZRange = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ZRange = %v, want %v", got, want)
		}
	}

	n, _ := s.ZCard(ctx, "z")
	if n != 4 {
		t.Errorf("ZCard = %d, want 4", n)
	}

	score, ok, _ := s.ZScore(ctx, "z", "c")
	if !ok || score != 3 {
		t.Errorf("ZScore(c) = %v, %v", score, ok)
	}

	_ = s.ZRem(ctx, "z", "a", "b", "c", "d")
	if ok, _ := s.Exists(ctx, "z"); ok {
		t.Error("empty sorted set should not exist")
	}
	if _, ok, _ := s.ZScore(ctx, "z", "c"); ok {
		t.Error("ZScore after removal should be absent")
	}
}

func TestConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			member := string(rune('a' + i))
			_ = s.ZAdd(ctx, "z", float64(i), member)
			_ = s.Set(ctx, member, []byte(member))
			_, _ = s.ZRange(ctx, "z")
		}(i)
	}
	wg.Wait()

	if n, _ := s.ZCard(ctx, "z"); n != 16 {
		t.Errorf("ZCard = %d, want 16", n)
	}
}
