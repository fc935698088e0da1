package textdist

// Tree is a BK-tree over strings keyed by Distance. BK-trees partition a
// metric space by distance from interior nodes, which allows radius-bounded
// lookups to skip entire subtrees via the triangle inequality.
//
// The tree is append-only: there is no delete or rebalance. Once a word is
// indexed it stays indexed for the lifetime of the tree, even if the caller
// no longer considers it canonical.
type Tree struct {
	root *node
	size int
}

// node owns a word and one child per distinct distance value. A second word
// at an occupied distance descends into the existing child rather than
// replacing it.
type node struct {
	word     string
	children map[int]*node
}

// Match is a single search hit with its distance to the query.
type Match struct {
	Word     string
	Distance int
}

// NewTree creates an empty BK-tree.
func NewTree() *Tree {
	return &Tree{}
}

// Insert adds a word to the tree. The first inserted word becomes the root.
// Inserting a word that is already present is a no-op: a zero-distance edge
// would descend forever, and the index has nothing to gain from duplicates.
func (t *Tree) Insert(word string) {
	if t.root == nil {
		t.root = &node{word: word, children: make(map[int]*node)}
		t.size++
		return
	}

	current := t.root
	for {
		dist := Distance(word, current.word)
		if dist == 0 {
			return
		}

		child, ok := current.children[dist]
		if !ok {
			current.children[dist] = &node{word: word, children: make(map[int]*node)}
			t.size++
			return
		}
		current = child
	}
}

// Search returns every indexed word within maxDist edits of target, in no
// particular order. Searching an empty tree returns nil without traversal.
func (t *Tree) Search(target string, maxDist int) []Match {
	if t.root == nil || maxDist < 0 {
		return nil
	}

	var matches []Match
	searchNode(t.root, target, maxDist, &matches)
	return matches
}

func searchNode(n *node, target string, maxDist int, matches *[]Match) {
	dist := Distance(target, n.word)
	if dist <= maxDist {
		*matches = append(*matches, Match{Word: n.word, Distance: dist})
	}

	// Any word under the child at edge k is at least |k - dist| from the
	// target, so children outside [dist-maxDist, dist+maxDist] cannot match.
	for k, child := range n.children {
		if k >= dist-maxDist && k <= dist+maxDist {
			searchNode(child, target, maxDist, matches)
		}
	}
}

// Size returns the number of indexed words.
func (t *Tree) Size() int {
	return t.size
}
