package store

import (
	"context"
	"reflect"
	"testing"
)

func TestMemoryStoreGetSet(t *testing.T) {
	ms := NewMemoryStore()
	defer ms.Close()
	ctx := context.Background()

	if _, err := ms.Get(ctx, "missing"); err != ErrNotFound {
		t.Errorf("Get missing = %v, want ErrNotFound", err)
	}

	if err := ms.Set(ctx, "k", []byte("v")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, err := ms.Get(ctx, "k")
	if err != nil || string(got) != "v" {
		t.Errorf("Get = %q, %v", got, err)
	}

	ms.Delete(ctx, "k")
	if _, err := ms.Get(ctx, "k"); err != ErrNotFound {
		t.Errorf("Get after Delete = %v, want ErrNotFound", err)
	}
}

func TestMemoryStoreZRangeDescending(t *testing.T) {
	ms := NewMemoryStore()
	defer ms.Close()
	ctx := context.Background()

	ms.ZAdd(ctx, "hot", 5, "p3")
	ms.ZAdd(ctx, "hot", 1, "p1")
	ms.ZAdd(ctx, "hot", 3, "p2")
	// 同分按 member 字典序升序
	ms.ZAdd(ctx, "hot", 3, "p0")

	got, err := ms.ZRange(ctx, "hot", 0, -1)
	if err != nil {
		t.Fatalf("ZRange: %v", err)
	}
	want := []string{"p3", "p0", "p2", "p1"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ZRange = %v, want %v", got, want)
	}

	top2, _ := ms.ZRange(ctx, "hot", 0, 1)
	if !reflect.DeepEqual(top2, []string{"p3", "p0"}) {
		t.Errorf("ZRange top2 = %v", top2)
	}

	score, err := ms.ZScore(ctx, "hot", "p2")
	if err != nil || score != 3 {
		t.Errorf("ZScore = %v, %v", score, err)
	}
	if _, err := ms.ZScore(ctx, "hot", "nope"); err != ErrNotFound {
		t.Errorf("ZScore missing = %v, want ErrNotFound", err)
	}
}
