/*
Package htmldom implements the interfaces of package dom on top of
golang.org/x/net/html parse trees.

Class lookups are translated to CSS selectors and matched with
cascadia. Inline styles are handled with package style, which delegates
parsing of declaration blocks to douceur.

A Document hands out exactly one *Node per HTML element, so nodes may be
compared and used as map keys.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2020–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package htmldom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'subfx.dom'.
func tracer() tracing.Trace {
	return tracing.Select("subfx.dom")
}
