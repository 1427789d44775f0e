package progress

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishSubscribe_Order(t *testing.T) {
	bus := NewBus()
	sub := bus.Subscribe("job-1")
	defer bus.Unsubscribe(sub)

	for i := 1; i <= 3; i++ {
		bus.Publish(Event{JobID: "job-1", Status: "PROCESSING", Progress: i * 10})
	}

	for i := 1; i <= 3; i++ {
		ev := <-sub.C
		assert.Equal(t, i*10, ev.Progress)
		assert.False(t, ev.Timestamp.IsZero())
	}
}

func TestPublish_OnlyMatchingJob(t *testing.T) {
	bus := NewBus()
	sub1 := bus.Subscribe("job-1")
	sub2 := bus.Subscribe("job-2")
	defer bus.Unsubscribe(sub1)
	defer bus.Unsubscribe(sub2)

	bus.Publish(Event{JobID: "job-1", Progress: 50})

	select {
	case ev := <-sub1.C:
		assert.Equal(t, "job-1", ev.JobID)
	case <-time.After(time.Second):
		t.Fatal("subscriber did not receive event")
	}
	select {
	case <-sub2.C:
		t.Fatal("event leaked to wrong job's subscriber")
	default:
	}
}

func TestPublish_NoSubscribersIsNoop(t *testing.T) {
	bus := NewBus()
	bus.Publish(Event{JobID: "job-x", Progress: 10})
}

func TestUnsubscribe_ClosesChannel(t *testing.T) {
	bus := NewBus()
	sub := bus.Subscribe("job-1")
	bus.Unsubscribe(sub)

	_, open := <-sub.C
	assert.False(t, open)

	// Double unsubscribe must not panic.
	bus.Unsubscribe(sub)
}

func TestPublish_SlowSubscriberDropsOldest(t *testing.T) {
	bus := NewBus()
	sub := bus.Subscribe("job-1")
	defer bus.Unsubscribe(sub)

	for i := 0; i < subscriberBuffer+10; i++ {
		bus.Publish(Event{JobID: "job-1", Progress: i})
	}

	first := <-sub.C
	// The oldest events were evicted; delivery starts later than zero.
	assert.Greater(t, first.Progress, 0)

	drained := 1
	for {
		select {
		case <-sub.C:
			drained++
		default:
			assert.LessOrEqual(t, drained, subscriberBuffer)
			return
		}
	}
}

func TestLateSubscriberNoReplay(t *testing.T) {
	bus := NewBus()
	bus.Publish(Event{JobID: "job-1", Progress: 40})

	sub := bus.Subscribe("job-1")
	defer bus.Unsubscribe(sub)
	select {
	case <-sub.C:
		t.Fatal("late subscriber replayed history")
	default:
	}
}

func TestMultipleSubscribersEachReceive(t *testing.T) {
	bus := NewBus()
	sub1 := bus.Subscribe("job-1")
	sub2 := bus.Subscribe("job-1")
	defer bus.Unsubscribe(sub1)
	defer bus.Unsubscribe(sub2)

	bus.Publish(Event{JobID: "job-1", Status: "COMPLETED", Progress: 100})

	for _, sub := range []*Subscription{sub1, sub2} {
		select {
		case ev := <-sub.C:
			require.Equal(t, 100, ev.Progress)
		case <-time.After(time.Second):
			t.Fatal("subscriber missed terminal event")
		}
	}
}
