package transit

import (
	"sync"
)

// Collection is a keyed set of PublicTransport Graph instances plus a
// mutable selection subset. Only networks named by the selection
// participate in the composite graph's iteration, counting, and EdgeIndex
// — but VertexIndex counts the stops of every network regardless of
// selection, so the Collection also exposes its full,
// selection-independent network order via Networks().
//
// Selection changes are cheap (O(selection size)) and protected by mu so
// that a reader iterating the Collection concurrently with a selection
// change observes a consistent snapshot, though synchronizing iteration
// against concurrent selection *writes* is still the caller's
// responsibility.
type Collection struct {
	mu sync.RWMutex

	// order is the deterministic, insertion-order list of network ids.
	// It never shrinks or reorders after Add — this is what keeps
	// VertexIndex stable across selection changes.
	order    []string
	graphs   map[string]*Graph
	selected map[string]struct{}
}

// NewCollection returns an empty PT graph collection.
func NewCollection() *Collection {
	return &Collection{
		graphs:   make(map[string]*Graph),
		selected: make(map[string]struct{}),
	}
}

// Add registers g under networkID, in insertion order. Re-adding an
// existing id replaces its graph but keeps its position in Networks().
func (c *Collection) Add(networkID string, g *Graph) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.graphs[networkID]; !exists {
		c.order = append(c.order, networkID)
	}
	c.graphs[networkID] = g
}

// Networks returns the full list of network ids in the Collection's
// deterministic (insertion) order, regardless of selection. This is the
// order VertexIndex uses for its prefix sums.
func (c *Collection) Networks() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]string, len(c.order))
	copy(out, c.order)

	return out
}

// Graph returns the sub-graph registered under networkID.
func (c *Collection) Graph(networkID string) (*Graph, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	g, ok := c.graphs[networkID]

	return g, ok
}

// SelectAll makes every registered network participate in iteration.
func (c *Collection) SelectAll() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.selected = make(map[string]struct{}, len(c.order))
	for _, id := range c.order {
		c.selected[id] = struct{}{}
	}
}

// Select replaces the selection with exactly the given network ids.
// Unknown ids are ignored rather than rejected: the selection is a pure
// scoping mechanism, not a validation point.
func (c *Collection) Select(ids map[string]struct{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.selected = make(map[string]struct{}, len(ids))
	for id := range ids {
		if _, known := c.graphs[id]; known {
			c.selected[id] = struct{}{}
		}
	}
}

// Selection returns the current set of selected network ids.
func (c *Collection) Selection() map[string]struct{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make(map[string]struct{}, len(c.selected))
	for id := range c.selected {
		out[id] = struct{}{}
	}

	return out
}

// IsSelected reports whether networkID currently participates in
// iteration.
func (c *Collection) IsSelected(networkID string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	_, ok := c.selected[networkID]

	return ok
}

// SelectedNetworks returns the selected network ids in the Collection's
// deterministic order (a subsequence of Networks()).
func (c *Collection) SelectedNetworks() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]string, 0, len(c.selected))
	for _, id := range c.order {
		if _, ok := c.selected[id]; ok {
			out = append(out, id)
		}
	}

	return out
}
