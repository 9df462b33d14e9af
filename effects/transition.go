package effects

import "github.com/npillmayer/subfx/dom"

// transition re-computes all targets of a slide after the cursor moved or
// a slide-leave was turned into a substep move (aborted).
//
// Three passes run in order, each over the markers in document order:
//
//   1. every marker not at the cursor falls back to its resting state
//      (show targets hidden, hide targets shown); on an aborted leave its
//      style windows are closed as well
//   2. markers already passed open their "from" windows and close their
//      "to" windows
//   3. the marker at the cursor applies its "only", "from" and "to" effects
//
// Where windows of different markers overlap on the same class, the
// marker processed last wins.
func (e *Engine) transition(slide dom.Element, aborted bool) {
	markers := e.Markers(slide)
	for _, m := range markers {
		if m.active(e.conf) {
			continue
		}
		e.hide(animate, m.ShowOnly, m.ShowFrom)
		e.show(animate, m.HideOnly, m.HideFrom)
		if aborted {
			e.resetStyles(m)
		}
	}
	for _, m := range markers {
		if !m.visible(e.conf) || m.active(e.conf) {
			continue
		}
		e.show(animate, m.ShowFrom, m.HideTo)
		e.hide(animate, m.ShowTo, m.HideFrom)
		e.applyStyles(m, From)
	}
	for _, m := range markers {
		if !m.active(e.conf) {
			continue
		}
		e.show(animate, m.ShowOnly, m.ShowFrom, m.HideTo)
		e.hide(animate, m.HideOnly, m.ShowTo, m.HideFrom)
		e.applyStyles(m, Only, From)
	}
}
