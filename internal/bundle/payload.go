package bundle

import "encoding/json"

// payload is the JSON read by the navigation script.
type payload struct {
	Title string     `json:"title"`
	Theme string     `json:"theme"`
	Docs  []Document `json:"docs"`
	Tree  *treeNode  `json:"tree"`
}

// treeNode is a Node with leaves pointing at their index in Docs.
type treeNode struct {
	Name     string      `json:"name"`
	Path     string      `json:"path,omitempty"`
	Doc      *int        `json:"doc,omitempty"`
	Children []*treeNode `json:"children,omitempty"`
}

func marshalPayload(p *Page) ([]byte, error) {
	index := make(map[string]int, len(p.Documents))
	for i, d := range p.Documents {
		index[d.ID] = i
	}

	docs := p.Documents
	if docs == nil {
		docs = []Document{}
	}

	return json.Marshal(payload{
		Title: p.Title,
		Theme: p.Theme,
		Docs:  docs,
		Tree:  convertTree(p.Tree, index),
	})
}

// convertTree drops leaves without a document and folders left empty by that.
func convertTree(n *Node, index map[string]int) *treeNode {
	if n == nil {
		return &treeNode{}
	}
	out := &treeNode{Name: n.Name, Path: n.Path}
	for _, c := range n.Children {
		if c.Folder {
			if sub := convertTree(c, index); len(sub.Children) > 0 {
				out.Children = append(out.Children, sub)
			}
			continue
		}
		i, ok := index[c.ID]
		if !ok {
			continue
		}
		out.Children = append(out.Children, &treeNode{Name: c.Name, Path: c.Path, Doc: &i})
	}
	return out
}
