package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'subfx.dom'
func tracer() tracing.Trace {
	return tracing.Select("subfx.dom")
}

// Property is a raw value for a CSS property. For example, with
//
//     opacity: 0
//
// a property value of "0" is set. Values are never interpreted beyond
// what is needed to keep them apart; the browser (or any other consumer
// of the document) owns their meaning.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

// Opacity values the effects engine works with. Opacity is a binary intent,
// interpolation is left to CSS transitions.
const (
	Hidden Property = "0"
	Shown  Property = "1"
)

func (p Property) String() string {
	return string(p)
}

// IsEmpty checks whether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return p == ""
}

// IsImportant checks for a trailing "!important" marker.
func (p Property) IsImportant() bool {
	s := strings.TrimSpace(string(p))
	return strings.HasSuffix(strings.ToLower(s), "!important")
}
