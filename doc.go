/*
Package subfx adds timed visibility and style effects to the substeps of
presentation slides.

Status

The engine follows the markup conventions of the impress.js substep
effects plugin. It is driven by lifecycle events of a host presentation
engine and never moves through slides by itself.

Overview

Substep markers declare, by attribute, which elements (addressed by class)
appear, disappear or receive a temporary inline style while the substep is
active, or from one substep to another:

    <div class="step">
      <p class="substep" data-show-from="detail"></p>
      <p class="substep" data-style-from-term="color: red"></p>
      <p class="substep" data-show-to="detail" data-style-to-term=""></p>
    </div>

Package effects implements the engine, package dom and its sub-packages the
document it works on, and package presenter a minimal host for driving a
document from tests and the command line. Install wires everything up:

    doc, _ := htmldom.Parse(r)
    p, _ := presenter.New(doc, config.Default())
    subfx.Install(doc, p, config.Default())
    p.Start(0)
    p.Next()

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2020–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package subfx

import (
	"github.com/npillmayer/subfx/config"
	"github.com/npillmayer/subfx/dom"
	"github.com/npillmayer/subfx/effects"
)

// Install creates an effects engine for a document and subscribes it to
// the lifecycle events of a host.
func Install(doc dom.Document, host effects.Bus, conf config.Config) *effects.Engine {
	eng := effects.New(doc, conf)
	eng.Attach(host)
	return eng
}
