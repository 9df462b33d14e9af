package htmldom

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/subfx/dom"
	"golang.org/x/net/html"
)

// Document wraps an HTML parse tree.
type Document struct {
	root  *html.Node
	nodes map[*html.Node]*Node
}

// Parse reads an HTML document.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("htmldom: %w", err)
	}
	return Wrap(root), nil
}

// ParseString is a convenience wrapper around Parse.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// Wrap a parse tree into a Document. The tree is now managed by the
// document; clients should not mutate it behind its back.
func Wrap(root *html.Node) *Document {
	return &Document{
		root:  root,
		nodes: make(map[*html.Node]*Node),
	}
}

// Root returns the root of the parse tree.
func (doc *Document) Root() *html.Node {
	return doc.root
}

// Element returns the node for an HTML element of this document.
// It returns nil for anything but element nodes.
func (doc *Document) Element(h *html.Node) *Node {
	if h == nil || h.Type != html.ElementNode {
		return nil
	}
	if n, ok := doc.nodes[h]; ok {
		return n
	}
	n := &Node{doc: doc, h: h}
	doc.nodes[h] = n
	return n
}

// ElementsByClass is part of interface dom.Document.
func (doc *Document) ElementsByClass(classes ...string) []dom.Element {
	return doc.elements(doc.byClass(doc.root, classes))
}

// Select returns all elements matching a CSS selector group, in document
// order. An invalid selector is an error.
func (doc *Document) Select(selector string) ([]*Node, error) {
	sel, err := cascadia.ParseGroup(selector)
	if err != nil {
		return nil, fmt.Errorf("htmldom: invalid selector %q: %w", selector, err)
	}
	matches := cascadia.QueryAll(doc.root, sel)
	nodes := make([]*Node, len(matches))
	for i, h := range matches {
		nodes[i] = doc.Element(h)
	}
	return nodes, nil
}

// Render writes the document as HTML.
func (doc *Document) Render(w io.Writer) error {
	return html.Render(w, doc.root)
}

func (doc *Document) String() string {
	var buf bytes.Buffer
	if err := doc.Render(&buf); err != nil {
		return fmt.Sprintf("<!-- %v -->", err)
	}
	return buf.String()
}

func (doc *Document) elements(hs []*html.Node) []dom.Element {
	elems := make([]dom.Element, len(hs))
	for i, h := range hs {
		elems[i] = doc.Element(h)
	}
	return elems
}

// byClass finds the descendants of h carrying any of classes. Class names
// are turned into a selector group like ".a, .b", which cascadia matches in
// document order without duplicates. Names cascadia will not accept, even
// escaped, fall back to a plain walk of the tree.
func (doc *Document) byClass(h *html.Node, classes []string) []*html.Node {
	classes = dom.NonEmpty(classes)
	if h == nil || len(classes) == 0 {
		return nil
	}
	sels := make([]string, len(classes))
	for i, c := range classes {
		sels[i] = "." + escapeIdent(c)
	}
	group := strings.Join(sels, ", ")
	sel, err := cascadia.ParseGroup(group)
	if err != nil {
		tracer().Debugf("class selector %q does not compile, walking tree: %v", group, err)
		return walkByClass(h, classes)
	}
	return cascadia.QueryAll(h, sel)
}

func walkByClass(h *html.Node, classes []string) []*html.Node {
	var found []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
			if ch.Type == html.ElementNode && hasAnyClass(ch, classes) {
				found = append(found, ch)
			}
			walk(ch)
		}
	}
	walk(h)
	return found
}

// escapeIdent escapes a class name for use in a CSS selector.
func escapeIdent(s string) string {
	var b strings.Builder
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_', r >= 0x80:
			b.WriteRune(r)
		case r == '-' && !(i == 0 && len(s) == 1):
			b.WriteRune(r)
		case r >= '0' && r <= '9':
			if i == 0 {
				fmt.Fprintf(&b, "\\%x ", r)
			} else {
				b.WriteRune(r)
			}
		default:
			b.WriteRune('\\')
			b.WriteRune(r)
		}
	}
	return b.String()
}
