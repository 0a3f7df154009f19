package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryDispatcher(t *testing.T) {
	ctx := context.Background()

	t.Run("delivers to subscribers of the type", func(t *testing.T) {
		d := NewInMemoryDispatcher()
		var got []Event
		d.Subscribe(EventEntityCreated, func(_ context.Context, e Event) error {
			got = append(got, e)
			return nil
		})
		d.Subscribe(EventEntityDeleted, func(_ context.Context, e Event) error {
			t.Fatal("wrong event type delivered")
			return nil
		})

		err := d.Publish(ctx, Event{Type: EventEntityCreated, Table: "applicants", EntityID: "a1"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "applicants", got[0].Table)
		assert.Equal(t, "a1", got[0].EntityID)
	})

	t.Run("no subscribers is a no-op", func(t *testing.T) {
		d := NewInMemoryDispatcher()
		assert.NoError(t, d.Publish(ctx, Event{Type: EventEntityUpdated}))
	})

	t.Run("a failing handler does not stop the others", func(t *testing.T) {
		d := NewInMemoryDispatcher()
		boom := errors.New("boom")
		var calls int
		d.Subscribe(EventEntityDeactivated, func(context.Context, Event) error { return boom })
		d.Subscribe(EventEntityDeactivated, func(context.Context, Event) error {
			calls++
			return nil
		})

		err := d.Publish(ctx, Event{Type: EventEntityDeactivated})
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, 1, calls)
	})
}
