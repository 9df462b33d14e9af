package effects

import "github.com/npillmayer/subfx/dom"

// enterSlide puts the targets of a freshly entered slide into their resting
// state, independent of whatever substep events did before. This covers
// direct entry, e.g. after a page reload, where no substep event ever fired.
//
// Afterwards, opacity overrides and styles set on behalf of the slide left
// last are withdrawn.
func (e *Engine) enterSlide(slide dom.Element) {
	markers := e.Markers(slide)
	tracer().Debugf("slide entered with %d substeps", len(markers))
	for _, m := range markers {
		e.hide(keepTransition, m.ShowOnly, m.ShowFrom)
		e.show(keepTransition, m.HideOnly, m.HideFrom)
		e.resetStyles(m)
	}
	if e.conf.Warnings {
		for _, d := range DanglingWindows(markers) {
			tracer().Infof("substep effects: %s", d)
		}
	}
	if e.left == nil {
		return
	}
	for _, m := range e.Markers(e.left) {
		e.clearOpacity(m.ShowOnly, m.HideOnly, m.ShowFrom, m.HideFrom)
		e.resetStyles(m)
	}
}
