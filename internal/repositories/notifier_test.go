package repositories

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNotifierDeliversToAllSubscribers(t *testing.T) {
	n := NewNotifier()
	first, cancelFirst := n.Subscribe()
	second, cancelSecond := n.Subscribe()
	defer cancelFirst()
	defer cancelSecond()

	n.Publish(TableBudgets)

	for _, ch := range []<-chan TableChange{first, second} {
		select {
		case change := <-ch:
			assert.Equal(t, TableBudgets, change.Table)
		case <-time.After(time.Second):
			t.Fatal("expected a change notification")
		}
	}
}

func TestNotifierCoalescesWhenSubscriberIsSlow(t *testing.T) {
	n := NewNotifier()
	ch, cancel := n.Subscribe()
	defer cancel()

	// Nobody is draining, so repeated publishes collapse into the one
	// buffered event instead of blocking.
	for i := 0; i < 10; i++ {
		n.Publish(TableTransactions)
	}

	select {
	case change := <-ch:
		assert.Equal(t, TableTransactions, change.Table)
	case <-time.After(time.Second):
		t.Fatal("expected the buffered change notification")
	}

	select {
	case <-ch:
		t.Fatal("expected coalescing to drop the extra notifications")
	default:
	}
}

func TestNotifierCoalescesAcrossTables(t *testing.T) {
	n := NewNotifier()
	ch, cancel := n.Subscribe()
	defer cancel()

	// Publishes for different tables collapse into whichever event is
	// already buffered. The surviving event names the first table only,
	// so consumers must re-read the store on any event rather than
	// filtering by table.
	n.Publish(TableCategories)
	n.Publish(TableTransactions)

	select {
	case change := <-ch:
		assert.Equal(t, TableCategories, change.Table)
	case <-time.After(time.Second):
		t.Fatal("expected the buffered change notification")
	}

	select {
	case <-ch:
		t.Fatal("expected the cross-table publish to coalesce")
	default:
	}
}

func TestNotifierCancelClosesChannel(t *testing.T) {
	n := NewNotifier()
	ch, cancel := n.Subscribe()

	cancel()
	_, open := <-ch
	assert.False(t, open)

	// Cancel is idempotent and publishing after cancel must not panic.
	cancel()
	n.Publish(TableCategories)
}
