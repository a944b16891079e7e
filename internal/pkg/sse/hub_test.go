package sse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishReachesOnlyOwner(t *testing.T) {
	hub := NewHub()

	ch1, cleanup1 := hub.Subscribe("emp-1")
	defer cleanup1()
	ch2, cleanup2 := hub.Subscribe("emp-2")
	defer cleanup2()

	hub.Publish("emp-1", Event{EmployeeID: "emp-1", Event: "leave_request", Data: "payload"})

	select {
	case evt := <-ch1:
		assert.Equal(t, "leave_request", evt.Event)
	default:
		t.Fatal("expected event on emp-1 stream")
	}

	select {
	case <-ch2:
		t.Fatal("emp-2 must not receive emp-1 events")
	default:
	}
}

func TestMultipleStreamsPerEmployee(t *testing.T) {
	hub := NewHub()

	ch1, cleanup1 := hub.Subscribe("emp-1")
	defer cleanup1()
	ch2, cleanup2 := hub.Subscribe("emp-1")
	defer cleanup2()

	require.Equal(t, 2, hub.SubscriberCount("emp-1"))

	hub.Publish("emp-1", Event{EmployeeID: "emp-1", Event: "ping"})

	assert.Len(t, ch1, 1)
	assert.Len(t, ch2, 1)
}

func TestCleanupRemovesSubscriber(t *testing.T) {
	hub := NewHub()

	_, cleanup := hub.Subscribe("emp-1")
	require.Equal(t, 1, hub.SubscriberCount("emp-1"))

	cleanup()
	assert.Equal(t, 0, hub.SubscriberCount("emp-1"))

	// Publishing to an employee with no streams is a no-op.
	hub.Publish("emp-1", Event{EmployeeID: "emp-1", Event: "ping"})
}

func TestPublishSkipsFullChannel(t *testing.T) {
	hub := NewHub()

	ch, cleanup := hub.Subscribe("emp-1")
	defer cleanup()

	// Channel capacity is 10; overfill and make sure Publish never
	// blocks.
	for i := 0; i < 15; i++ {
		hub.Publish("emp-1", Event{EmployeeID: "emp-1", Event: "ping"})
	}
	assert.Len(t, ch, 10)
}
