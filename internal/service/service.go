// Package service coordinates record workflows on top of the repositories:
// cache read-through on single-record lookups, event publication after
// successful mutations, and cache invalidation on every write.
package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/alegonzalezz/ATS-backend/internal/cache"
	"github.com/alegonzalezz/ATS-backend/internal/events"
)

// publish stamps event identity and fans out. Dispatch failures never
// surface to callers; mutations have already committed by the time an
// event goes out.
func publish(ctx context.Context, d events.Dispatcher, event events.Event) {
	if d == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	_ = d.Publish(ctx, event)
}

// cachedGet reads one record through the cache. Absent records are not
// cached, so a later insert under the same id is visible immediately.
func cachedGet[E any](ctx context.Context, c *cache.Cache, key string, load func(context.Context) (*E, error)) (*E, error) {
	b, err := c.GetOrLoad(ctx, key, func(ctx context.Context) ([]byte, error) {
		e, err := load(ctx)
		if err != nil {
			return nil, err
		}
		if e == nil {
			return nil, nil
		}
		return json.Marshal(e)
	})
	if err != nil || b == nil {
		return nil, err
	}
	out := new(E)
	if err := json.Unmarshal(b, out); err != nil {
		return nil, err
	}
	return out, nil
}
