package repositories

import (
	"log/slog"
	"sync"
)

// Table identifies one of the persisted ledger tables.
type Table string

const (
	TableTransactions Table = "transactions"
	TableCategories   Table = "categories"
	TableBudgets      Table = "budgets"
)

// TableChange is a store change notification. It carries no row data: a
// subscriber is expected to re-read whatever it derives from the table.
type TableChange struct {
	Table Table
}

// Notifier is the store's subscription primitive. Repositories publish a
// TableChange after every committed write; failed writes publish nothing, so
// subscribers only ever react to confirmed state.
type Notifier struct {
	mu   sync.Mutex
	subs map[int]chan TableChange
	next int
}

// NewNotifier creates an empty notifier.
func NewNotifier() *Notifier {
	return &Notifier{subs: make(map[int]chan TableChange)}
}

// Subscribe registers a change listener. The returned cancel function
// unregisters it and closes the channel.
//
// Channels are level-triggered with capacity one: if a subscriber has not yet
// consumed a pending notification, further publishes are coalesced into it.
// That is lossless for consumers that re-read the store on every event.
func (n *Notifier) Subscribe() (<-chan TableChange, func()) {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.next
	n.next++

	ch := make(chan TableChange, 1)
	n.subs[id] = ch

	cancel := func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		if sub, ok := n.subs[id]; ok {
			delete(n.subs, id)
			close(sub)
		}
	}

	return ch, cancel
}

// Publish notifies all subscribers that the given table changed.
func (n *Notifier) Publish(table Table) {
	n.mu.Lock()
	defer n.mu.Unlock()

	for _, ch := range n.subs {
		select {
		case ch <- TableChange{Table: table}:
		default:
			// A notification is already pending; the subscriber will
			// observe this change when it re-reads.
		}
	}

	slog.Debug("table change published", "table", table, "subscribers", len(n.subs))
}
