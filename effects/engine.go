package effects

import (
	"github.com/npillmayer/subfx/config"
	"github.com/npillmayer/subfx/dom"
	"github.com/npillmayer/subfx/dom/style"
)

// Inline style properties the engine mutates on targets.
const (
	opacityKey    = "opacity"
	transitionKey = "transition"
)

// Engine applies substep effects to a document in response to host events.
// Create one with New and either feed events to Handle or attach it to a
// host with Attach.
type Engine struct {
	doc     dom.Document
	conf    config.Config
	markers map[dom.Element]*Marker
	left    dom.Element // slide most recently left, nil before the first leave
}

// New creates an engine for a document. All substep markers present in the
// document are parsed up front.
func New(doc dom.Document, conf config.Config) *Engine {
	e := &Engine{
		doc:     doc,
		conf:    conf,
		markers: make(map[dom.Element]*Marker),
	}
	for _, el := range doc.ElementsByClass(conf.SubstepClass) {
		e.markers[el] = ParseMarker(el, conf)
	}
	tracer().Debugf("effects engine indexed %d substep markers", len(e.markers))
	return e
}

// Attach subscribes the engine to all host events it handles.
func (e *Engine) Attach(bus Bus) {
	for _, t := range EventTypes {
		bus.Subscribe(t, e.Handle)
	}
}

// LastLeft returns the slide most recently left, or nil.
func (e *Engine) LastLeft() dom.Element {
	return e.left
}

// Handle processes a single host event. Events without a target are
// ignored.
func (e *Engine) Handle(ev Event) {
	if ev.Target == nil {
		tracer().Debugf("ignoring %s event without target", ev.Type)
		return
	}
	tracer().Debugf("handling %s", ev.Type)
	switch ev.Type {
	case SlideEntered:
		e.enterSlide(ev.Target)
	case SubstepEntered:
		e.transition(ev.Target, false)
	case SubstepLeaveAborted:
		e.transition(ev.Target, true)
	case SlideLeaving:
		e.prepareLeave(ev.Target, ev.Next)
	default:
		tracer().Debugf("ignoring unknown event %s", ev.Type)
	}
}

// Markers returns the substep markers of a slide in document order.
func (e *Engine) Markers(slide dom.Element) []*Marker {
	if slide == nil {
		return nil
	}
	els := slide.ElementsByClass(e.conf.SubstepClass)
	markers := make([]*Marker, len(els))
	for i, el := range els {
		m, ok := e.markers[el]
		if !ok {
			m = ParseMarker(el, e.conf)
			e.markers[el] = m
		}
		markers[i] = m
	}
	return markers
}

// --- Opacity ---------------------------------------------------------------

// fade selects what happens to a target's transition property along with
// an opacity change.
type fade int

const (
	keepTransition fade = iota // leave transition untouched
	animate                    // set the configured transition
	noTransition               // remove any transition
)

func (e *Engine) setOpacity(opacity style.Property, f fade, classes ...string) {
	for _, t := range e.doc.ElementsByClass(classes...) {
		t.SetStyleProperty(opacityKey, opacity)
		switch f {
		case animate:
			t.SetStyleProperty(transitionKey, style.Property(e.conf.Transition))
		case noTransition:
			t.SetStyleProperty(transitionKey, style.NullStyle)
		}
	}
}

func (e *Engine) show(f fade, classes ...string) {
	e.setOpacity(style.Shown, f, classes...)
}

func (e *Engine) hide(f fade, classes ...string) {
	e.setOpacity(style.Hidden, f, classes...)
}

// clearOpacity hands opacity back to the stylesheet.
func (e *Engine) clearOpacity(classes ...string) {
	e.setOpacity(style.NullStyle, keepTransition, classes...)
}
