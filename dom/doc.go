/*
Package dom defines the view of a document this module operates on.

Overview

Substep effects never build or destroy document nodes. They read
attributes, look up elements by class name and mutate inline styles.
Package dom captures exactly this surface as interfaces, so the effects
engine may run against any document implementation. A concrete
implementation on top of golang.org/x/net/html parse trees lives in
package htmldom.

Class lookups are fail-open: an empty or unusable class name selects
nothing, it never produces an error.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2020–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'subfx.dom'.
func tracer() tracing.Trace {
	return tracing.Select("subfx.dom")
}
