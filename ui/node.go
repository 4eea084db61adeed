package ui

import "iter"

// Text is a single run of text in one font.
type Text struct {
	Value string
	Font  FontHandle
	Size  float64
}

// Node is one element of a UI tree. Trees are plain values: building one
// does not touch any global state.
type Node struct {
	Name        string
	Style       Style
	Background  Color
	BorderColor Color
	Text        *Text
	Image       ImageHandle
	// Tint multiplies the image colors.
	Tint     Color
	Children []*Node
}

// NewNode builds a container.
func NewNode(name string, style Style, children ...*Node) *Node {
	return &Node{Name: name, Style: style, Children: children}
}

// NewLabel builds a text node sized by its content.
func NewLabel(name, value string, font FontHandle, size float64) *Node {
	return &Node{Name: name, Text: &Text{Value: value, Font: font, Size: size}}
}

func (n *Node) WithBackground(c Color) *Node {
	n.Background = c
	return n
}

func (n *Node) WithBorder(width float64, c Color) *Node {
	n.Style.Border = width
	n.BorderColor = c
	return n
}

func (n *Node) WithImage(img ImageHandle, tint Color) *Node {
	n.Image = img
	n.Tint = tint
	return n
}

// All iterates the subtree rooted at n depth first, parents before children.
func (n *Node) All() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		n.walk(yield)
	}
}

func (n *Node) walk(yield func(*Node) bool) bool {
	if !yield(n) {
		return false
	}
	for _, c := range n.Children {
		if !c.walk(yield) {
			return false
		}
	}
	return true
}

// Find returns the first node in the subtree with the given name.
func (n *Node) Find(name string) *Node {
	for node := range n.All() {
		if node.Name == name {
			return node
		}
	}
	return nil
}
