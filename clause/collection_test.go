package clause

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollection_PreservesInsertionOrder(t *testing.T) {
	c := NewCollection()
	c.Add(&Node{ClauseID: "1"})
	c.Add(&Node{ClauseID: "4"})
	c.Add(&Node{ClauseID: "2"})

	assert.Equal(t, []string{"1", "4", "2"}, c.IDs())
	assert.Equal(t, 3, c.Len())
}

func TestCollection_ReplaceKeepsOrder(t *testing.T) {
	c := NewCollection()
	c.Add(&Node{ClauseID: "1", Title: "old"})
	c.Add(&Node{ClauseID: "2"})
	c.Add(&Node{ClauseID: "1", Title: "new"})

	assert.Equal(t, []string{"1", "2"}, c.IDs())
	assert.Equal(t, "new", c.Get("1").Title)
}

func TestCollection_GetMissing(t *testing.T) {
	c := NewCollection()
	assert.Nil(t, c.Get("7"))
}

func TestCollection_NodesMatchesOrder(t *testing.T) {
	c := NewCollection()
	c.Add(&Node{ClauseID: "3"})
	c.Add(&Node{ClauseID: "1"})

	nodes := c.Nodes()
	assert.Equal(t, "3", nodes[0].ClauseID)
	assert.Equal(t, "1", nodes[1].ClauseID)
}
