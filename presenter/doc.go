/*
Package presenter is a minimal host presentation engine.

It walks the slides of a document (elements of class "step") and the
substep markers inside them, maintains the substep role classes and emits
lifecycle events the way impress.js and its substep plugin do:

    leaving a slide       slide-about-to-leave, then slide-entered
    revealing a substep   substep-transition-aborted, then substep-entered
    hiding a substep      substep-transition-aborted

A Presentation does not know about effects. It is an effects.Bus, and
anything subscribed to it receives its events synchronously, in
subscription order.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2020–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package presenter

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'subfx.presenter'.
func tracer() tracing.Trace {
	return tracing.Select("subfx.presenter")
}
