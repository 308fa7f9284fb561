package output

import (
	"path/filepath"

	"github.com/disiqueira/gotree/v3"
)

// VisualFileTree renders relative paths as an indented tree, intermediate nodes are created on demand.
type VisualFileTree struct {
	tree  gotree.Tree
	nodes map[string]gotree.Tree
}

func NewVisualFileTree(rootLabel string) VisualFileTree {
	return VisualFileTree{tree: gotree.New(rootLabel), nodes: make(map[string]gotree.Tree)}
}

func (t VisualFileTree) node(path string) gotree.Tree {
	if path == "." {
		return t.tree
	}
	n := t.nodes[path]
	if n == nil {
		n = t.node(filepath.Dir(path)).Add(filepath.Base(path))
		t.nodes[path] = n
	}
	return n
}

// InsertPath adds the leaf of a relative path, e.g. "2024/03/Notes.txt" below "2024" and "03".
func (t VisualFileTree) InsertPath(relativePath string) {
	t.node(filepath.Dir(relativePath)).Add(filepath.Base(relativePath))
}

func (t VisualFileTree) Render() string {
	return t.tree.Print()
}
