package presenter

import (
	"errors"
	"fmt"

	"github.com/npillmayer/subfx/config"
	"github.com/npillmayer/subfx/dom/htmldom"
	"github.com/npillmayer/subfx/effects"
)

// ErrNoSlide is returned for documents without any slide.
var ErrNoSlide = errors.New("document contains no slide")

// ErrNoSuchSlide is returned for slide indices out of range.
var ErrNoSuchSlide = errors.New("no such slide")

// ErrNotStarted is returned for moves before Start.
var ErrNotStarted = errors.New("presentation not started")

// Reason tells in which direction a move happened.
type Reason int

const (
	Next Reason = iota
	Prev
)

// Presentation drives a document slide by slide.
type Presentation struct {
	doc      *htmldom.Document
	conf     config.Config
	steps    []*htmldom.Node
	current  int
	handlers map[effects.EventType][]effects.Handler
}

var _ effects.Bus = &Presentation{}

// New collects the slides of a document.
func New(doc *htmldom.Document, conf config.Config) (*Presentation, error) {
	steps, err := doc.Select("." + conf.StepClass)
	if err != nil {
		return nil, fmt.Errorf("presenter: %w", err)
	}
	if len(steps) == 0 {
		return nil, ErrNoSlide
	}
	return &Presentation{
		doc:      doc,
		conf:     conf,
		steps:    steps,
		current:  -1,
		handlers: make(map[effects.EventType][]effects.Handler),
	}, nil
}

// Subscribe is part of interface effects.Bus.
func (p *Presentation) Subscribe(t effects.EventType, h effects.Handler) {
	p.handlers[t] = append(p.handlers[t], h)
}

// Steps returns all slides.
func (p *Presentation) Steps() []*htmldom.Node {
	return p.steps
}

// Current returns the index of the active slide, or -1 before Start.
func (p *Presentation) Current() int {
	return p.current
}

// Substeps returns the substep markers of slide i.
func (p *Presentation) Substeps(i int) []*htmldom.Node {
	if i < 0 || i >= len(p.steps) {
		return nil
	}
	els := p.steps[i].ElementsByClass(p.conf.SubstepClass)
	subs := make([]*htmldom.Node, len(els))
	for k, el := range els {
		subs[k] = el.(*htmldom.Node)
	}
	return subs
}

// Cursor returns the number of visible substeps of the active slide.
func (p *Presentation) Cursor() int {
	k := 0
	for _, s := range p.Substeps(p.current) {
		if s.HasClass(p.conf.VisibleClass) {
			k++
		}
	}
	return k
}

// Start enters slide i directly, as after loading a page. No slide has been
// left before, and role flags found in the markup are kept.
func (p *Presentation) Start(i int) error {
	if i < 0 || i >= len(p.steps) {
		return fmt.Errorf("%w: %d", ErrNoSuchSlide, i)
	}
	p.enter(i)
	return nil
}

// GoTo leaves the active slide for slide i. Slides before the active one
// are entered with all substeps revealed, all others with none. Going to
// the active slide does nothing.
func (p *Presentation) GoTo(i int) error {
	if p.current < 0 {
		return ErrNotStarted
	}
	if i < 0 || i >= len(p.steps) {
		return fmt.Errorf("%w: %d", ErrNoSuchSlide, i)
	}
	if i == p.current {
		tracer().Debugf("slide %d is already active", i)
		return nil
	}
	reason := Next
	if i < p.current {
		reason = Prev
	}
	p.goTo(i, reason)
	return nil
}

// Next reveals the next substep of the active slide or, if all are
// revealed, moves on to the next slide. After the last slide the
// presentation wraps around to the first.
func (p *Presentation) Next() error {
	if p.current < 0 {
		return ErrNotStarted
	}
	if p.revealSubstep() {
		return nil
	}
	p.goTo((p.current+1)%len(p.steps), Next)
	return nil
}

// Prev hides the last revealed substep of the active slide or, if none is
// revealed, moves back to the previous slide.
func (p *Presentation) Prev() error {
	if p.current < 0 {
		return ErrNotStarted
	}
	if p.hideSubstep() {
		return nil
	}
	p.goTo((p.current+len(p.steps)-1)%len(p.steps), Prev)
	return nil
}

func (p *Presentation) goTo(i int, reason Reason) {
	// a single slide wraps around onto itself without being left
	if i != p.current {
		from, to := p.steps[p.current], p.steps[i]
		tracer().Debugf("leaving slide %d for slide %d", p.current, i)
		p.emit(effects.Event{Type: effects.SlideLeaving, Target: from, Next: to})
	}
	subs := p.Substeps(i)
	for _, s := range subs {
		s.RemoveClass(p.conf.ActiveClass)
		if reason == Prev {
			s.AddClass(p.conf.VisibleClass)
		} else {
			s.RemoveClass(p.conf.VisibleClass)
		}
	}
	if reason == Prev && len(subs) > 0 {
		subs[len(subs)-1].AddClass(p.conf.ActiveClass)
	}
	p.enter(i)
}

// enter makes slide i the active one. If substeps are revealed already, the
// entry is followed by a substep move onto the cursor, so effects match the
// role flags.
func (p *Presentation) enter(i int) {
	p.current = i
	slide := p.steps[i]
	p.emit(effects.Event{Type: effects.SlideEntered, Target: slide})
	if p.Cursor() > 0 {
		tracer().Debugf("slide %d entered at substep %d", i, p.Cursor())
		p.emit(effects.Event{Type: effects.SubstepEntered, Target: slide})
	}
}

func (p *Presentation) revealSubstep() bool {
	subs := p.Substeps(p.current)
	k := p.Cursor()
	if k >= len(subs) {
		return false
	}
	for _, s := range subs {
		s.RemoveClass(p.conf.ActiveClass)
	}
	subs[k].AddClass(p.conf.VisibleClass)
	subs[k].AddClass(p.conf.ActiveClass)
	tracer().Debugf("slide %d: substep %d revealed", p.current, k)
	slide := p.steps[p.current]
	p.emit(effects.Event{Type: effects.SubstepLeaveAborted, Target: slide})
	p.emit(effects.Event{Type: effects.SubstepEntered, Target: slide})
	return true
}

func (p *Presentation) hideSubstep() bool {
	var visible []*htmldom.Node
	for _, s := range p.Substeps(p.current) {
		if s.HasClass(p.conf.VisibleClass) {
			visible = append(visible, s)
		}
		s.RemoveClass(p.conf.ActiveClass)
	}
	if len(visible) == 0 {
		return false
	}
	last := len(visible) - 1
	visible[last].RemoveClass(p.conf.VisibleClass)
	if last > 0 {
		visible[last-1].AddClass(p.conf.ActiveClass)
	}
	tracer().Debugf("slide %d: substep %d hidden", p.current, last)
	p.emit(effects.Event{Type: effects.SubstepLeaveAborted, Target: p.steps[p.current]})
	return true
}

func (p *Presentation) emit(ev effects.Event) {
	for _, h := range p.handlers[ev.Type] {
		h(ev)
	}
}

// Document returns the document being presented.
func (p *Presentation) Document() *htmldom.Document {
	return p.doc
}

// Config returns the markup conventions in use.
func (p *Presentation) Config() config.Config {
	return p.conf
}
