package style

import (
	"strings"

	"github.com/aymerick/douceur/parser"
)

// Declaration is a single "key: value" entry of an inline style block.
type Declaration struct {
	Key       string
	Value     Property
	Important bool
}

func (d Declaration) String() string {
	if d.Important {
		return d.Key + ": " + d.Value.String() + " !important;"
	}
	return d.Key + ": " + d.Value.String() + ";"
}

// Declarations is an inline style block, i.e. the content of a style
// attribute. Order of declarations is preserved. nil is a legal (empty)
// block.
type Declarations []Declaration

// ParseDeclarations parses the content of a style attribute. Keys are
// converted to lower case.
func ParseDeclarations(inline string) (Declarations, error) {
	if strings.TrimSpace(inline) == "" {
		return nil, nil
	}
	// douceur only completes a declaration at a terminating semicolon
	text := strings.TrimSpace(inline)
	if !strings.HasSuffix(text, ";") {
		text += ";"
	}
	decls, err := parser.ParseDeclarations(text)
	if err != nil {
		return nil, err
	}
	block := make(Declarations, 0, len(decls))
	for _, d := range decls {
		block = block.Set(d.Property, Property(strings.TrimSpace(d.Value)))
		block.markImportant(d.Property, d.Important)
	}
	return block, nil
}

// ParseInline is like ParseDeclarations, but never fails. Style blocks the
// CSS parser rejects are split on semicolons and colons instead, dropping
// fragments without a key.
func ParseInline(inline string) Declarations {
	block, err := ParseDeclarations(inline)
	if err == nil {
		return block
	}
	tracer().Debugf("inline style %q does not parse: %v", inline, err)
	block = nil
	for _, frag := range strings.Split(inline, ";") {
		kv := strings.SplitN(frag, ":", 2)
		if len(kv) != 2 || strings.TrimSpace(kv[0]) == "" {
			continue
		}
		value := strings.TrimSpace(kv[1])
		important := false
		if Property(value).IsImportant() {
			value = strings.TrimSpace(value[:strings.LastIndex(value, "!")])
			important = true
		}
		block = block.Set(kv[0], Property(value))
		block.markImportant(kv[0], important)
	}
	return block
}

func (block Declarations) index(key string) int {
	key = normKey(key)
	for i, d := range block {
		if d.Key == key {
			return i
		}
	}
	return -1
}

func (block Declarations) markImportant(key string, important bool) {
	if i := block.index(key); i >= 0 && important {
		block[i].Important = true
	}
}

// Get returns the value for key, or NullStyle.
func (block Declarations) Get(key string) Property {
	if i := block.index(key); i >= 0 {
		return block[i].Value
	}
	return NullStyle
}

// Set overwrites the value for key in place, or appends it if not present.
// Setting NullStyle removes the declaration. Set returns the modified block.
func (block Declarations) Set(key string, value Property) Declarations {
	key = normKey(key)
	if key == "" {
		return block
	}
	i := block.index(key)
	if value.IsEmpty() {
		if i < 0 {
			return block
		}
		return append(block[:i:i], block[i+1:]...)
	}
	if i >= 0 {
		block[i].Value = value
		block[i].Important = false
		return block
	}
	return append(block, Declaration{Key: key, Value: value})
}

// String serializes the block the way browsers do for the style attribute,
// e.g. "opacity: 0; transition: opacity 1s;".
func (block Declarations) String() string {
	parts := make([]string, len(block))
	for i, d := range block {
		parts[i] = d.String()
	}
	return strings.Join(parts, " ")
}

func normKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}
