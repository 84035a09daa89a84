package client

// Ops binds a Manager to one resource's API operations.
type Ops[T any, D Draft] struct {
	List   func() ([]T, error)
	Create func(D) (*T, error)
	Update func(string, D) (*T, error)
	Delete func(string) error
	IDOf   func(T) string
}

// Manager owns the in-memory list for one entity type. It caches the
// latest fetched snapshot; the server stays the source of truth. Every
// mutation goes through a write-through refresh: save always refetches
// the full list instead of patching locally, so the displayed list
// reflects the server's view at the cost of one extra round trip.
//
// A Manager is not safe for concurrent use. It is built for a
// single-admin, single-flow caller; overlapping saves are last-write-wins.
type Manager[T any, D Draft] struct {
	ops     Ops[T, D]
	confirm func(id string) bool

	items   []T
	loading bool
	lastErr string
}

// NewManager builds a Manager. confirm gates Remove: it is asked before
// any delete call and a false answer aborts with no network traffic.
// A nil confirm means destructive actions proceed unprompted.
func NewManager[T any, D Draft](ops Ops[T, D], confirm func(id string) bool) *Manager[T, D] {
	if confirm == nil {
		confirm = func(string) bool { return true }
	}
	return &Manager[T, D]{ops: ops, confirm: confirm}
}

// Items returns the current cached list.
func (m *Manager[T, D]) Items() []T { return m.items }

// Loading reports whether a refresh is in flight.
func (m *Manager[T, D]) Loading() bool { return m.loading }

// Err returns the most recent error message, empty after a success.
// Errors are not queued; only the latest failure is kept.
func (m *Manager[T, D]) Err() string { return m.lastErr }

// Refresh replaces the whole cached list with the server's. On failure
// the previous list is left untouched, stale but present.
func (m *Manager[T, D]) Refresh() error {
	m.loading = true
	defer func() { m.loading = false }()

	items, err := m.ops.List()
	if err != nil {
		m.lastErr = err.Error()
		return err
	}
	m.items = items
	m.lastErr = ""
	return nil
}

// Save validates the draft, then updates when id is set and creates
// otherwise. Either way a successful write forces a Refresh.
func (m *Manager[T, D]) Save(draft D, id string) error {
	if err := draft.Validate(); err != nil {
		m.lastErr = err.Error()
		return err
	}

	var err error
	if id != "" {
		_, err = m.ops.Update(id, draft)
	} else {
		_, err = m.ops.Create(draft)
	}
	if err != nil {
		m.lastErr = err.Error()
		return err
	}
	return m.Refresh()
}

// Remove asks for confirmation, deletes on the server, then drops the
// matching item from the cache by id without a full refresh. A declined
// confirmation is not an error and performs no network call.
func (m *Manager[T, D]) Remove(id string) error {
	if !m.confirm(id) {
		return nil
	}

	if err := m.ops.Delete(id); err != nil {
		m.lastErr = err.Error()
		return err
	}

	kept := m.items[:0:0]
	for _, item := range m.items {
		if m.ops.IDOf(item) != id {
			kept = append(kept, item)
		}
	}
	m.items = kept
	m.lastErr = ""
	return nil
}
