package md2wiki

import (
	"path"
	"sort"
	"strings"

	"github.com/alnah/go-md2wiki/internal/bundle"
	"github.com/alnah/go-md2wiki/internal/scan"
)

// Node is a folder or a leaf in the navigation tree. Leaves carry the
// identifier of their Document; folders carry children.
type Node struct {
	Name     string
	Path     string
	ID       string
	Folder   bool
	Children []*Node
}

// fromScan copies a traversal tree, labelling each leaf through name.
// Leaves for which keep reports false are dropped, and folders left
// empty by that are pruned.
func fromScan(n *scan.Node, keep func(leaf *scan.Node) bool, name func(id string) string) *Node {
	out := &Node{Name: n.Name, Path: n.Path, Folder: n.Dir}
	for _, c := range n.Children {
		if c.Dir {
			if sub := fromScan(c, keep, name); len(sub.Children) > 0 {
				out.Children = append(out.Children, sub)
			}
			continue
		}
		if !keep(c) {
			continue
		}
		out.Children = append(out.Children, &Node{Name: name(c.Name), Path: c.Path, ID: c.Name})
	}
	return out
}

// insert places a leaf for doc under root, creating folders along its path
// and keeping folders first with each group sorted by name.
func insert(root *Node, doc Document) {
	dir := path.Dir(doc.Path)
	parent := root
	if dir != "." && dir != "/" {
		for _, part := range strings.Split(dir, "/") {
			parent = childFolder(parent, part)
		}
	}

	for _, c := range parent.Children {
		if !c.Folder && c.Path == doc.Path {
			c.Name, c.ID = doc.Name, doc.ID
			return
		}
	}
	parent.Children = append(parent.Children, &Node{Name: doc.Name, Path: doc.Path, ID: doc.ID})
	sortChildren(parent)
}

func childFolder(parent *Node, name string) *Node {
	for _, c := range parent.Children {
		if c.Folder && c.Name == name {
			return c
		}
	}
	p := name
	if parent.Path != "." && parent.Path != "" {
		p = parent.Path + "/" + name
	}
	f := &Node{Name: name, Path: p, Folder: true}
	parent.Children = append(parent.Children, f)
	sortChildren(parent)
	return f
}

// sortChildren orders folders before leaves, each group by path base name.
func sortChildren(n *Node) {
	sort.SliceStable(n.Children, func(i, j int) bool {
		a, b := n.Children[i], n.Children[j]
		if a.Folder != b.Folder {
			return a.Folder
		}
		return path.Base(a.Path) < path.Base(b.Path)
	})
}

func toBundle(n *Node) *bundle.Node {
	if n == nil {
		return nil
	}
	out := &bundle.Node{Name: n.Name, Path: n.Path, ID: n.ID, Folder: n.Folder}
	for _, c := range n.Children {
		out.Children = append(out.Children, toBundle(c))
	}
	return out
}
