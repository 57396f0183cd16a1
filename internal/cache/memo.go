// Package cache provides a small in-memory LRU memo used by the
// transliteration fallback. Entries are cheap (word → spoken form) but
// documents can repeat the same unknown words thousands of times.
package cache

import (
	"container/list"
	"sync"
)

// Memo is an LRU string→string cache with a fixed entry capacity.
type Memo struct {
	capacity int

	items    map[string]*list.Element
	eviction *list.List

	mu sync.RWMutex

	stats Stats
}

// Stats holds memo hit/miss counters.
type Stats struct {
	Hits    int64
	Misses  int64
	Entries int
}

type memoEntry struct {
	key   string
	value string
}

// NewMemo creates a memo holding at most capacity entries. A capacity
// of zero or less disables eviction.
func NewMemo(capacity int) *Memo {
	return &Memo{
		capacity: capacity,
		items:    make(map[string]*list.Element),
		eviction: list.New(),
	}
}

// Get retrieves a memoized value.
func (m *Memo) Get(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	elem, ok := m.items[key]
	if !ok {
		m.stats.Misses++
		return "", false
	}
	m.eviction.MoveToFront(elem)
	m.stats.Hits++
	return elem.Value.(*memoEntry).value, true
}

// Put stores a value, evicting the least recently used entry when the
// memo is full.
func (m *Memo) Put(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if elem, ok := m.items[key]; ok {
		m.eviction.MoveToFront(elem)
		elem.Value.(*memoEntry).value = value
		return
	}

	elem := m.eviction.PushFront(&memoEntry{key: key, value: value})
	m.items[key] = elem

	if m.capacity > 0 && m.eviction.Len() > m.capacity {
		oldest := m.eviction.Back()
		if oldest != nil {
			m.eviction.Remove(oldest)
			delete(m.items, oldest.Value.(*memoEntry).key)
		}
	}
}

// Reset drops all entries and zeroes the counters.
func (m *Memo) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.items = make(map[string]*list.Element)
	m.eviction.Init()
	m.stats = Stats{}
}

// Stats returns a snapshot of the memo counters.
func (m *Memo) Stats() Stats {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s := m.stats
	s.Entries = m.eviction.Len()
	return s
}
