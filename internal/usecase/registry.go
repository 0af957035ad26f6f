package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Hayal27/Cv-generator/internal/domain"

	"github.com/redis/go-redis/v9"
)

// TemplateStore is the persistence port for presentation definitions.
type TemplateStore interface {
	GetTemplate(ctx context.Context, id string) (*domain.Template, error)
	ListTemplates(ctx context.Context) ([]domain.Template, error)
}

const templateCacheTTL = 5 * time.Minute

// Registry resolves template identifiers to presentation definitions.
// Lookups go cache -> store -> compiled-in built-ins; both cache and store
// are optional so the service keeps rendering when infrastructure is down.
// Callers get a snapshot copy; templates are never mutated in place.
type Registry struct {
	store    TemplateStore
	cache    *redis.Client
	builtins map[string]domain.Template
}

func NewRegistry(store TemplateStore, cache *redis.Client) *Registry {
	builtins := map[string]domain.Template{}
	for _, t := range BuiltinTemplates() {
		builtins[t.ID] = t
	}
	return &Registry{store: store, cache: cache, builtins: builtins}
}

func templateCacheKey(id string) string { return "cv:template:" + id }

// Get returns the presentation definition for id, or domain.ErrNotFound.
func (r *Registry) Get(ctx context.Context, id string) (*domain.Template, error) {
	if id == "" {
		id = domain.DefaultTemplateID
	}

	if r.cache != nil {
		if raw, err := r.cache.Get(ctx, templateCacheKey(id)).Bytes(); err == nil {
			var t domain.Template
			if err := json.Unmarshal(raw, &t); err == nil {
				return &t, nil
			}
		}
	}

	if r.store != nil {
		if t, err := r.store.GetTemplate(ctx, id); err == nil && t != nil {
			if r.cache != nil {
				if raw, err := json.Marshal(t); err == nil {
					// best-effort; a cache failure never fails the lookup
					r.cache.Set(ctx, templateCacheKey(id), raw, templateCacheTTL)
				}
			}
			snapshot := *t
			return &snapshot, nil
		}
	}

	if t, ok := r.builtins[id]; ok {
		snapshot := t
		return &snapshot, nil
	}
	return nil, fmt.Errorf("template %q: %w", id, domain.ErrNotFound)
}

type usageCounter interface {
	BumpUsage(ctx context.Context, id string) error
}

// NoteUse records one use of a template when the store keeps counters.
// Best-effort.
func (r *Registry) NoteUse(ctx context.Context, id string) {
	if uc, ok := r.store.(usageCounter); ok {
		_ = uc.BumpUsage(ctx, id)
	}
}

// List returns the active template set, falling back to the built-ins when
// no store is configured or the store read fails.
func (r *Registry) List(ctx context.Context) ([]domain.Template, error) {
	if r.store != nil {
		if ts, err := r.store.ListTemplates(ctx); err == nil && len(ts) > 0 {
			return ts, nil
		}
	}
	return BuiltinTemplates(), nil
}
