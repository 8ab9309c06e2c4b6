package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatcher_PublishRunsEveryHandler(t *testing.T) {
	d := NewInMemoryDispatcher()

	var calls []string
	d.Subscribe(EventItemCreated, func(_ context.Context, e Event) error {
		calls = append(calls, "first")
		return errors.New("first failed")
	})
	d.Subscribe(EventItemCreated, func(_ context.Context, e Event) error {
		calls = append(calls, "second")
		assert.Equal(t, int32(4), e.SubjectID)
		return nil
	})
	d.Subscribe(EventItemDeleted, func(context.Context, Event) error {
		calls = append(calls, "other")
		return nil
	})

	err := d.Publish(context.Background(), New(EventItemCreated, 1, 4, nil))

	assert.EqualError(t, err, "first failed")
	assert.Equal(t, []string{"first", "second"}, calls)
}

func TestNew(t *testing.T) {
	e := New(EventUserDeleted, 1, 2, map[string]string{"username": "bob"})

	assert.NotEmpty(t, e.ID)
	assert.Equal(t, EventUserDeleted, e.Type)
	assert.False(t, e.Timestamp.IsZero())
}

func TestDispatcher_RecoversHandlerPanic(t *testing.T) {
	d := NewInMemoryDispatcher()

	var reached bool
	d.Subscribe(EventUserCreated, func(context.Context, Event) error {
		panic("boom")
	})
	d.Subscribe(EventUserCreated, func(context.Context, Event) error {
		reached = true
		return nil
	})

	err := d.Publish(context.Background(), New(EventUserCreated, 1, 2, nil))
	assert.EqualError(t, err, "user_created handler panicked: boom")
	assert.True(t, reached)
}

func TestDispatcher_NoSubscribers(t *testing.T) {
	d := NewInMemoryDispatcher()
	assert.NoError(t, d.Publish(context.Background(), New(EventItemDeleted, 1, 2, nil)))
}
