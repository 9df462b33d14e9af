/*
Package domdbg implements helpers to debug substep effects on a document.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>


*/
package domdbg

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/subfx/config"
	"github.com/npillmayer/subfx/dom"
	"github.com/npillmayer/subfx/effects"
	"github.com/xlab/treeprint"
)

// Dump outputs the substep structure of a document as a tree: every slide,
// its substep markers with their role, and for every effect of a marker the
// elements it targets together with their current inline style.
//
//    .
//    └── slide 0 "intro"
//        ├── substep 0 [active]
//        │   └── show-only="a"
//        │       └── <id="a" class="a"> style="opacity: 1; transition: opacity 1s;"
//        └── substep 1
//
func Dump(w io.Writer, doc dom.Document, conf config.Config) error {
	tree := treeprint.New()
	for i, slide := range doc.ElementsByClass(conf.StepClass) {
		label := fmt.Sprintf("slide %d", i)
		if id, ok := slide.Attribute("id"); ok {
			label += fmt.Sprintf(" %q", id)
		}
		branch := tree.AddBranch(label)
		for k, el := range slide.ElementsByClass(conf.SubstepClass) {
			m := effects.ParseMarker(el, conf)
			sub := branch.AddBranch(fmt.Sprintf("substep %d%s", k, role(el, conf)))
			for _, win := range m.Windows() {
				targets := doc.ElementsByClass(win.Class)
				if len(targets) == 0 {
					sub.AddNode(win.String() + " (no targets)")
					continue
				}
				wb := sub.AddBranch(win.String())
				for _, t := range targets {
					wb.AddNode(fmt.Sprintf("%s style=%q", Label(t), t.Style()))
				}
			}
		}
	}
	_, err := io.WriteString(w, tree.String())
	return err
}

// Label returns a short tag-like description of an element, made of its id
// and class attributes.
func Label(el dom.Element) string {
	var b strings.Builder
	b.WriteString("<")
	sep := ""
	for _, key := range []string{"id", "class"} {
		if v, ok := el.Attribute(key); ok {
			fmt.Fprintf(&b, "%s%s=%q", sep, key, v)
			sep = " "
		}
	}
	b.WriteString(">")
	return b.String()
}

func role(el dom.Element, conf config.Config) string {
	switch {
	case el.HasClass(conf.ActiveClass):
		return " [active]"
	case el.HasClass(conf.VisibleClass):
		return " [visible]"
	}
	return ""
}
