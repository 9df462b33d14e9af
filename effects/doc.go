/*
Package effects implements visibility and style effects for the substeps
of a presentation slide.

Overview

A slide (an element of class "step") contains substep markers (class
"substep"). The host presentation engine moves a cursor over these markers
and flags each one as active (at the cursor), visible (already passed) or
neither (not yet reached). Markers declare effects on other elements,
which are addressed by class name:

    data-show-only="C"      elements of class C are shown only at this substep
    data-hide-only="C"      ... hidden only at this substep
    data-show-from="C"      shown from this substep on, until a data-show-to="C"
    data-hide-from="C"      hidden from this substep on, until a data-hide-to="C"
    data-style-only-C="S"   inline style S for class C only at this substep
    data-style-from-C="S"   inline style S for class C until a data-style-to-C
    data-style-to-C="..."   closes the style window for class C

Closing a style window restores a target to the value of its
data-style-base attribute, or to an empty style.

The engine never drives traversal. It listens to four events of the host
(see EventType) and re-computes the opacity and style of every target from
the role flags it finds, so that entering a slide at any position, or
aborting a transition half-way, converges to the same state.

Opacity is set to 0 or 1 only; fading is left to the CSS transition the
engine puts on targets while moving between substeps.

All work happens synchronously inside the event handlers. An Engine is not
safe for concurrent use; the host delivers events one at a time.

Errors

There are none. Missing attributes, class names that select no element and
style strings that do not parse make the respective mutation a no-op.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2020–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package effects

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'subfx.effects'.
func tracer() tracing.Trace {
	return tracing.Select("subfx.effects")
}
