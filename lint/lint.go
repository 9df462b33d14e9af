/*
Package lint checks the substep markup of a document.

The effects engine accepts any markup and silently ignores what it cannot
use. Check reports what an author most likely did not intend:

    - a "from" window without a later "to" (the window extends to the end
      of the slide, which may well be intended)
    - a "to" without an earlier "from"
    - "only" combined with "from" or "to" of the same kind and class on one
      substep
    - style declarations and style-base values that do not parse

Findings are errors of type Finding, combined with multierr.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2020–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lint

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/subfx/config"
	"github.com/npillmayer/subfx/dom"
	"github.com/npillmayer/subfx/dom/style"
	"github.com/npillmayer/subfx/effects"
	"go.uber.org/multierr"
)

// tracer traces with key 'subfx.lint'.
func tracer() tracing.Trace {
	return tracing.Select("subfx.lint")
}

// Severity of a finding.
type Severity int

const (
	Info Severity = iota
	Warning
	Error
)

func (s Severity) String() string {
	switch s {
	case Info:
		return "info"
	case Warning:
		return "warning"
	}
	return "error"
}

// Finding is a single lint result.
type Finding struct {
	Severity Severity
	Slide    int // index of the slide, -1 for findings outside of slides
	Substep  int // index of the substep within its slide, -1 if not applicable
	Message  string
}

func (f Finding) Error() string {
	switch {
	case f.Slide < 0:
		return fmt.Sprintf("%s: %s", f.Severity, f.Message)
	case f.Substep < 0:
		return fmt.Sprintf("%s: slide %d: %s", f.Severity, f.Slide, f.Message)
	}
	return fmt.Sprintf("%s: slide %d, substep %d: %s", f.Severity, f.Slide, f.Substep, f.Message)
}

// Findings unpacks the result of Check.
func Findings(err error) []Finding {
	var fs []Finding
	for _, e := range multierr.Errors(err) {
		if f, ok := e.(Finding); ok {
			fs = append(fs, f)
		}
	}
	return fs
}

// HasErrors is true if any finding has severity Error.
func HasErrors(err error) bool {
	for _, f := range Findings(err) {
		if f.Severity == Error {
			return true
		}
	}
	return false
}

// Check inspects all slides of a document. It returns nil for clean
// markup.
func Check(doc dom.Document, conf config.Config) error {
	var err error
	for i, slide := range doc.ElementsByClass(conf.StepClass) {
		var markers []*effects.Marker
		for _, el := range slide.ElementsByClass(conf.SubstepClass) {
			markers = append(markers, effects.ParseMarker(el, conf))
		}
		err = multierr.Append(err, checkSlide(i, markers))
	}
	base := conf.Attr("style-base")
	for _, el := range doc.ElementsByClass(styledClasses(doc, conf)...) {
		if v, ok := el.Attribute(base); ok && v != "" {
			if _, perr := style.ParseDeclarations(v); perr != nil {
				err = multierr.Append(err, Finding{Error, -1, -1,
					fmt.Sprintf("%s=%q does not parse: %v", base, v, perr)})
			}
		}
	}
	tracer().Debugf("lint: %d finding(s)", len(multierr.Errors(err)))
	return err
}

func checkSlide(slide int, markers []*effects.Marker) error {
	var err error
	for _, d := range effects.DanglingWindows(markers) {
		sev := Warning
		if d.Scope == effects.From {
			sev = Info
		}
		msg := fmt.Sprintf("%s has no matching from", d.Window)
		if d.Scope == effects.From {
			msg = fmt.Sprintf("%s has no matching to, window extends to end of slide", d.Window)
		}
		err = multierr.Append(err, Finding{sev, slide, d.Index, msg})
	}
	for i, m := range markers {
		ws := m.Windows()
		for _, only := range ws {
			if only.Scope != effects.Only {
				continue
			}
			for _, w := range ws {
				if w.Scope != effects.Only && w.Kind == only.Kind && w.Class == only.Class {
					err = multierr.Append(err, Finding{Warning, slide, i,
						fmt.Sprintf("%s combined with %s", only, w)})
				}
			}
		}
		for _, s := range m.Styles {
			if s.Scope == effects.To {
				continue
			}
			if _, perr := style.ParseDeclarations(s.Declaration); perr != nil {
				err = multierr.Append(err, Finding{Error, slide, i,
					fmt.Sprintf("style-%s-%s=%q does not parse: %v", s.Scope, s.Class, s.Declaration, perr)})
			}
		}
	}
	return err
}

// styledClasses collects all classes targeted by style effects.
func styledClasses(doc dom.Document, conf config.Config) []string {
	seen := make(map[string]bool)
	var classes []string
	for _, el := range doc.ElementsByClass(conf.SubstepClass) {
		for _, s := range effects.ParseMarker(el, conf).Styles {
			if !seen[s.Class] {
				seen[s.Class] = true
				classes = append(classes, s.Class)
			}
		}
	}
	return classes
}
