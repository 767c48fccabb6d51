package storage

import (
	"context"
	"testing"
	"time"

	"brandforge/server/internal/models"
)

func TestMemoryCache(t *testing.T) {
	cache := NewMemoryCache(time.Minute)
	ctx := context.Background()

	if _, ok := cache.Get(ctx, "missing"); ok {
		t.Error("expected a miss for an unknown key")
	}

	brand := &models.BrandDescription{BrandName: "Acme", BrandColors: []string{"#112233"}}
	cache.Set(ctx, "k", brand)

	got, ok := cache.Get(ctx, "k")
	if !ok {
		t.Fatal("expected a hit")
	}
	if got.BrandName != "Acme" {
		t.Errorf("wrong cached value: %+v", got)
	}
}

func TestMemoryCache_Expiry(t *testing.T) {
	cache := NewMemoryCache(10 * time.Millisecond)
	ctx := context.Background()

	cache.Set(ctx, "k", &models.BrandDescription{BrandName: "Acme"})
	time.Sleep(30 * time.Millisecond)

	if _, ok := cache.Get(ctx, "k"); ok {
		t.Error("expected the entry to expire")
	}
}
