package list

// node is a node in a doubly-linked list.
// The node stores a key for O(1) deletion from the parent map.
type node[K comparable] struct {
	key  K
	prev *node[K]
	next *node[K]
}

// Ordered is a set of keys kept in insertion order.
// It is not thread-safe; callers must handle synchronization.
//
// The head is the oldest key, the tail the newest.
type Ordered[K comparable] struct {
	head  *node[K]
	tail  *node[K]
	nodes map[K]*node[K]
}

// New creates an empty ordered set.
func New[K comparable]() *Ordered[K] {
	return &Ordered[K]{nodes: make(map[K]*node[K])}
}

// Len returns the number of keys in the set.
func (l *Ordered[K]) Len() int {
	return len(l.nodes)
}

// PushBack appends key as the newest entry.
// Returns false if key is already present; its position is unchanged.
func (l *Ordered[K]) PushBack(key K) bool {
	if _, ok := l.nodes[key]; ok {
		return false
	}
	n := &node[K]{key: key}
	if l.tail == nil {
		// Empty list
		l.head = n
		l.tail = n
	} else {
		n.prev = l.tail
		l.tail.next = n
		l.tail = n
	}
	l.nodes[key] = n
	return true
}

// Remove deletes key from the set. Returns false if it was not present.
func (l *Ordered[K]) Remove(key K) bool {
	n, ok := l.nodes[key]
	if !ok {
		return false
	}
	l.unlink(n)
	delete(l.nodes, key)
	return true
}

// PopFront removes and returns the oldest key.
// Returns zero value and false if the set is empty.
func (l *Ordered[K]) PopFront() (K, bool) {
	if l.head == nil {
		var zero K
		return zero, false
	}
	n := l.head
	l.unlink(n)
	delete(l.nodes, n.key)
	return n.key, true
}

// Keys returns the keys from oldest to newest.
func (l *Ordered[K]) Keys() []K {
	keys := make([]K, 0, len(l.nodes))
	for n := l.head; n != nil; n = n.next {
		keys = append(keys, n.key)
	}
	return keys
}

// Clear removes all keys.
func (l *Ordered[K]) Clear() {
	l.head = nil
	l.tail = nil
	clear(l.nodes)
}

// unlink removes a node from the chain and clears its pointers.
func (l *Ordered[K]) unlink(n *node[K]) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}

	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}

	n.prev = nil
	n.next = nil
}
