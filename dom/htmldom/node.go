package htmldom

import (
	"fmt"
	"strings"

	"github.com/npillmayer/subfx/dom"
	"github.com/npillmayer/subfx/dom/style"
	"golang.org/x/net/html"
)

// Node is an element of a Document. It implements dom.Element.
type Node struct {
	doc *Document
	h   *html.Node
}

var _ dom.Element = &Node{}

// HTMLNode returns the underlying node of the parse tree.
func (n *Node) HTMLNode() *html.Node {
	return n.h
}

func (n *Node) String() string {
	var b strings.Builder
	b.WriteString("<" + n.h.Data)
	if id, ok := n.Attribute("id"); ok {
		fmt.Fprintf(&b, " id=%q", id)
	}
	if cl, ok := n.Attribute("class"); ok {
		fmt.Fprintf(&b, " class=%q", cl)
	}
	b.WriteString(">")
	return b.String()
}

// Attributes is part of interface dom.Element.
func (n *Node) Attributes() []dom.Attr {
	attrs := make([]dom.Attr, 0, len(n.h.Attr))
	for _, a := range n.h.Attr {
		if a.Namespace != "" {
			continue
		}
		attrs = append(attrs, dom.Attr{Key: a.Key, Value: a.Val})
	}
	return attrs
}

// Attribute is part of interface dom.Element.
func (n *Node) Attribute(key string) (string, bool) {
	for _, a := range n.h.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttribute sets an attribute, appending it if not yet present.
func (n *Node) SetAttribute(key, value string) {
	for i, a := range n.h.Attr {
		if a.Namespace == "" && a.Key == key {
			n.h.Attr[i].Val = value
			return
		}
	}
	n.h.Attr = append(n.h.Attr, html.Attribute{Key: key, Val: value})
}

// RemoveAttribute removes an attribute, if present.
func (n *Node) RemoveAttribute(key string) {
	for i, a := range n.h.Attr {
		if a.Namespace == "" && a.Key == key {
			n.h.Attr = append(n.h.Attr[:i], n.h.Attr[i+1:]...)
			return
		}
	}
}

// Classes returns the class tokens of the element.
func (n *Node) Classes() []string {
	cl, _ := n.Attribute("class")
	return dom.Classes(cl)
}

// HasClass is part of interface dom.Element.
func (n *Node) HasClass(class string) bool {
	return hasAnyClass(n.h, []string{class})
}

// AddClass adds a class token, if not already present.
func (n *Node) AddClass(class string) {
	if class == "" || n.HasClass(class) {
		return
	}
	n.SetAttribute("class", strings.Join(append(n.Classes(), class), " "))
}

// RemoveClass removes all occurences of a class token.
func (n *Node) RemoveClass(class string) {
	if !n.HasClass(class) {
		return
	}
	var kept []string
	for _, c := range n.Classes() {
		if c != class {
			kept = append(kept, c)
		}
	}
	n.SetAttribute("class", strings.Join(kept, " "))
}

// Style is part of interface dom.Element.
func (n *Node) Style() string {
	s, _ := n.Attribute("style")
	return s
}

// SetStyle is part of interface dom.Element.
func (n *Node) SetStyle(s string) {
	n.SetAttribute("style", s)
}

// StyleProperty is part of interface dom.Element.
func (n *Node) StyleProperty(key string) style.Property {
	return style.ParseInline(n.Style()).Get(key)
}

// SetStyleProperty is part of interface dom.Element.
// Removing a property from an element without a style attribute does not
// create one.
func (n *Node) SetStyleProperty(key string, value style.Property) {
	s, ok := n.Attribute("style")
	if !ok && value.IsEmpty() {
		return
	}
	n.SetStyle(style.ParseInline(s).Set(key, value).String())
}

// ElementsByClass is part of interface dom.Element.
func (n *Node) ElementsByClass(classes ...string) []dom.Element {
	return n.doc.elements(n.doc.byClass(n.h, classes))
}

func hasAnyClass(h *html.Node, classes []string) bool {
	for _, a := range h.Attr {
		if a.Namespace != "" || a.Key != "class" {
			continue
		}
		for _, c := range dom.Classes(a.Val) {
			for _, want := range classes {
				if c == want {
					return true
				}
			}
		}
	}
	return false
}
