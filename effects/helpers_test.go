package effects_test

import (
	"testing"

	"github.com/npillmayer/subfx/config"
	"github.com/npillmayer/subfx/dom/htmldom"
	"github.com/npillmayer/subfx/dom/style"
	"github.com/npillmayer/subfx/effects"
	"github.com/stretchr/testify/require"
)

// fixture is a parsed document with an engine attached. It moves the
// substep cursor by setting role classes, the way a host would.
type fixture struct {
	t    *testing.T
	conf config.Config
	doc  *htmldom.Document
	eng  *effects.Engine
}

func newFixture(t *testing.T, body string) *fixture {
	return newFixtureWithConfig(t, body, config.Default())
}

func newFixtureWithConfig(t *testing.T, body string, conf config.Config) *fixture {
	doc, err := htmldom.ParseString("<html><body>" + body + "</body></html>")
	require.NoError(t, err)
	return &fixture{t: t, conf: conf, doc: doc, eng: effects.New(doc, conf)}
}

func (f *fixture) byID(id string) *htmldom.Node {
	nodes, err := f.doc.Select("#" + id)
	require.NoError(f.t, err)
	require.Len(f.t, nodes, 1, "no element with id %q", id)
	return nodes[0]
}

func (f *fixture) opacity(id string) style.Property {
	return f.byID(id).StyleProperty("opacity")
}

func (f *fixture) style(id string) string {
	return f.byID(id).Style()
}

// cursor flags the first k substeps of a slide as visible and the k-th as
// active. k = 0 means no substep has been reached.
func (f *fixture) cursor(slide string, k int) {
	subs := f.byID(slide).ElementsByClass(f.conf.SubstepClass)
	for i, el := range subs {
		n := el.(*htmldom.Node)
		n.RemoveClass(f.conf.ActiveClass)
		n.RemoveClass(f.conf.VisibleClass)
		if i < k {
			n.AddClass(f.conf.VisibleClass)
		}
		if i == k-1 {
			n.AddClass(f.conf.ActiveClass)
		}
	}
}

// moveTo positions the cursor and fires the events a host fires for it:
// an aborted leave, followed by a substep-enter unless no substep is
// reached.
func (f *fixture) moveTo(slide string, k int) {
	f.cursor(slide, k)
	f.fire(effects.SubstepLeaveAborted, slide)
	if k > 0 {
		f.fire(effects.SubstepEntered, slide)
	}
}

func (f *fixture) fire(t effects.EventType, slide string) {
	f.eng.Handle(effects.Event{Type: t, Target: f.byID(slide)})
}

func (f *fixture) leave(from, to string) {
	f.eng.Handle(effects.Event{Type: effects.SlideLeaving, Target: f.byID(from), Next: f.byID(to)})
}
