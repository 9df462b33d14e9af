package effects

import "github.com/npillmayer/subfx/dom"

// prepareLeave remembers the slide being left and pre-arms the resting
// state of the upcoming slide without animation, before its own entry
// event arrives.
func (e *Engine) prepareLeave(slide, next dom.Element) {
	e.left = slide
	if next == nil {
		return
	}
	for _, m := range e.Markers(next) {
		e.hide(noTransition, m.ShowOnly, m.ShowFrom)
		e.show(noTransition, m.HideOnly, m.HideFrom)
	}
}
