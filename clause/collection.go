package clause

// Collection is the arena for one parsing run: a flat mapping from clause
// identifier to node that preserves insertion (document) order. Children are
// referenced by identifier rather than by containment, so partial population
// of sub-clauses needs no tree surgery.
type Collection struct {
	order []string
	nodes map[string]*Node
}

// NewCollection creates an empty clause collection.
func NewCollection() *Collection {
	return &Collection{nodes: make(map[string]*Node)}
}

// Add inserts a node. Re-adding an existing identifier replaces the node in
// place without disturbing document order.
func (c *Collection) Add(n *Node) {
	if _, exists := c.nodes[n.ClauseID]; !exists {
		c.order = append(c.order, n.ClauseID)
	}
	c.nodes[n.ClauseID] = n
}

// Get returns the node for an identifier, or nil if absent.
func (c *Collection) Get(id string) *Node {
	return c.nodes[id]
}

// IDs returns clause identifiers in document order.
func (c *Collection) IDs() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Nodes returns all nodes in document order.
func (c *Collection) Nodes() []*Node {
	out := make([]*Node, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.nodes[id])
	}
	return out
}

// Len returns the number of clauses in the collection.
func (c *Collection) Len() int {
	return len(c.order)
}
