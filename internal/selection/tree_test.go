package selection

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// buildTaxonomy mirrors the three-tier vocabulary:
//
//	JOB(1) -> Software(10) -> Backend(100), Frontend(101)
//	       -> Finance(11)  -> Accounting(110)
//	SCHOLARSHIP(2)
func buildTaxonomy() *Tree {
	t := NewTree()
	t.Add(1, "JOB", 0)
	t.Add(2, "SCHOLARSHIP", 0)
	t.Add(10, "Software", 1)
	t.Add(11, "Finance", 1)
	t.Add(100, "Backend", 10)
	t.Add(101, "Frontend", 10)
	t.Add(110, "Accounting", 11)
	return t
}

func TestSelect_MarksAncestorChain(t *testing.T) {
	tree := buildTaxonomy()
	sel := NewSet()

	tree.Select(sel, 100) // Backend

	require.True(t, sel.Contains(100), "specialization itself")
	require.True(t, sel.Contains(10), "its domain")
	require.True(t, sel.Contains(1), "its opportunity type")
	require.False(t, sel.Contains(101), "siblings untouched")
}

func TestDeselect_CascadesDownOnly(t *testing.T) {
	tree := buildTaxonomy()
	sel := NewSet()
	tree.Select(sel, 100) // Backend    -> {1,10,100}
	tree.Select(sel, 110) // Accounting -> +{11,110}

	tree.Deselect(sel, 10) // drop Software domain

	require.False(t, sel.Contains(10))
	require.False(t, sel.Contains(100), "descendants removed")
	require.True(t, sel.Contains(1), "ancestor type stays selected")
	require.True(t, sel.Contains(11), "unrelated domain untouched")
	require.True(t, sel.Contains(110))
}

func TestDeselect_LeafLeavesAncestors(t *testing.T) {
	tree := buildTaxonomy()
	sel := NewSet()
	tree.Select(sel, 100)

	tree.Deselect(sel, 100)

	require.False(t, sel.Contains(100))
	// ancestors are not auto-removed even when no child remains selected
	require.True(t, sel.Contains(10))
	require.True(t, sel.Contains(1))
}

func TestDeselect_TypeDropsWholeBranch(t *testing.T) {
	tree := buildTaxonomy()
	sel := NewSet()
	tree.Select(sel, 100)
	tree.Select(sel, 110)

	tree.Deselect(sel, 1)

	require.True(t, sel.IsEmpty())
}

func TestSubtree(t *testing.T) {
	tree := NewTree()
	tree.Add(1, "Africa", 0)
	tree.Add(2, "Ethiopia", 1)
	tree.Add(3, "Kenya", 1)
	tree.Add(20, "Addis Ababa", 2)
	tree.Add(200, "Bole", 20)

	sub := tree.Subtree(2)

	require.Equal(t, []int64{2}, sub.Roots())
	require.True(t, sub.Contains(20))
	require.True(t, sub.Contains(200))
	require.False(t, sub.Contains(3), "siblings excluded")
	require.False(t, sub.Contains(1), "ancestors excluded")
	require.Equal(t, []int64{2}, sub.Ancestors(20))
}

func TestFindByName(t *testing.T) {
	tree := buildTaxonomy()

	id, ok := tree.FindByName("Finance")
	require.True(t, ok)
	require.Equal(t, int64(11), id)

	_, ok = tree.FindByName("Absent")
	require.False(t, ok)
}

func TestSelect_UnknownID_NoOp(t *testing.T) {
	tree := buildTaxonomy()
	sel := NewSet()

	tree.Select(sel, 999)
	require.True(t, sel.IsEmpty())
}

func TestAdd_DuplicateIgnored(t *testing.T) {
	tree := buildTaxonomy()
	tree.Add(10, "Software-dup", 2)

	require.Equal(t, "Software", tree.Name(10))
	require.Equal(t, []int64{10, 11}, tree.ChildrenOf(1))
}
