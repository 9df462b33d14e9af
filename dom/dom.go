package dom

import (
	"strings"

	"github.com/npillmayer/subfx/dom/style"
)

// Attr is a single attribute of an element, in document order.
type Attr struct {
	Key   string
	Value string
}

// Element is the view on a document element.
//
// Implementations must return the same Element value for the same underlying
// element from every lookup, as clients use elements as map keys.
type Element interface {
	Attributes() []Attr                                // all attributes in document order
	Attribute(key string) (string, bool)               // value of an attribute, if set
	HasClass(class string) bool                        // is class among the element's classes?
	Style() string                                     // raw inline style, "" if unset
	SetStyle(string)                                   // replace the inline style wholesale
	StyleProperty(key string) style.Property           // a single inline style property
	SetStyleProperty(key string, value style.Property) // set a single property; "" removes it
	ElementsByClass(classes ...string) []Element       // descendants carrying any of classes
}

// Document is a tree of elements.
type Document interface {
	// ElementsByClass returns every element of the document carrying at least
	// one of the given classes, in document order and without duplicates.
	// Empty class names are ignored.
	ElementsByClass(classes ...string) []Element
}

// Classes splits the value of a class attribute into its tokens.
func Classes(attr string) []string {
	return strings.Fields(attr)
}

// NonEmpty filters out empty class names. It is a helper for implementations
// of ElementsByClass.
func NonEmpty(classes []string) []string {
	r := make([]string, 0, len(classes))
	for _, c := range classes {
		if c = strings.TrimSpace(c); c != "" {
			r = append(r, c)
		}
	}
	if len(r) < len(classes) {
		tracer().Debugf("ignoring %d empty class name(s)", len(classes)-len(r))
	}
	return r
}
