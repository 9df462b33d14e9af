package presenter_test

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/subfx/config"
	"github.com/npillmayer/subfx/dom/htmldom"
	"github.com/npillmayer/subfx/dom/style"
	"github.com/npillmayer/subfx/effects"
	"github.com/npillmayer/subfx/presenter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const deck = `<html><body>
<div id="s1" class="step">
  <span class="substep" data-show-only="only"></span>
  <span class="substep" data-show-from="win" data-style-from-hl="color: blue"></span>
  <span class="substep"></span>
  <span class="substep" data-show-to="win" data-style-to-hl="x"></span>
</div>
<div id="s2" class="step">
  <span class="substep" data-hide-only="hidden"></span>
</div>
<div id="s3" class="step"></div>
<p id="only" class="only">only</p>
<p id="win" class="win">window</p>
<p id="hl" class="hl" data-style-base="color: red">highlight</p>
<p id="hidden" class="hidden">hidden</p>
</body></html>`

type recorder struct {
	events []string
}

func (r *recorder) handle(ev effects.Event) {
	id, _ := ev.Target.Attribute("id")
	r.events = append(r.events, ev.Type.String()+"@"+id)
}

func setup(t *testing.T) (*presenter.Presentation, *htmldom.Document, *recorder) {
	return present(t, deck)
}

func node(t *testing.T, doc *htmldom.Document, id string) *htmldom.Node {
	nodes, err := doc.Select("#" + id)
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	return nodes[0]
}

func TestEventOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "subfx.presenter")
	defer teardown()
	//
	p, _, rec := setup(t)
	require.NoError(t, p.Start(1))
	require.NoError(t, p.Next()) // reveal substep of s2
	require.NoError(t, p.Next()) // on to s3
	require.NoError(t, p.Prev()) // back to s2, all revealed
	require.NoError(t, p.Prev()) // hide its substep
	assert.Equal(t, []string{
		"slide-entered@s2",
		"substep-transition-aborted@s2",
		"substep-entered@s2",
		"slide-about-to-leave@s2",
		"slide-entered@s3",
		"slide-about-to-leave@s3",
		"slide-entered@s2",
		"substep-entered@s2",
		"substep-transition-aborted@s2",
	}, rec.events)
	assert.Equal(t, 0, p.Cursor())
}

func TestRoleFlags(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "subfx.presenter")
	defer teardown()
	//
	p, _, _ := setup(t)
	conf := config.Default()
	require.NoError(t, p.Start(0))
	require.NoError(t, p.Next())
	require.NoError(t, p.Next())
	subs := p.Substeps(0)
	assert.True(t, subs[0].HasClass(conf.VisibleClass))
	assert.False(t, subs[0].HasClass(conf.ActiveClass))
	assert.True(t, subs[1].HasClass(conf.ActiveClass))
	assert.False(t, subs[2].HasClass(conf.VisibleClass))
	require.NoError(t, p.Prev())
	assert.True(t, subs[0].HasClass(conf.ActiveClass))
	assert.False(t, subs[1].HasClass(conf.VisibleClass))
	//
	require.NoError(t, p.GoTo(1))
	require.NoError(t, p.GoTo(0)) // backwards: everything revealed
	assert.Equal(t, 4, p.Cursor())
	assert.True(t, subs[3].HasClass(conf.ActiveClass))
}

func TestErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "subfx.presenter")
	defer teardown()
	//
	p, _, _ := setup(t)
	assert.True(t, errors.Is(p.Next(), presenter.ErrNotStarted))
	assert.True(t, errors.Is(p.GoTo(1), presenter.ErrNotStarted))
	assert.True(t, errors.Is(p.Start(7), presenter.ErrNoSuchSlide))
	require.NoError(t, p.Start(0))
	assert.True(t, errors.Is(p.GoTo(-1), presenter.ErrNoSuchSlide))
	//
	doc, err := htmldom.ParseString("<p>no slides</p>")
	require.NoError(t, err)
	_, err = presenter.New(doc, config.Default())
	assert.True(t, errors.Is(err, presenter.ErrNoSlide))
}

func TestWrapAround(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "subfx.presenter")
	defer teardown()
	//
	p, _, _ := setup(t)
	require.NoError(t, p.Start(2))
	require.NoError(t, p.Next())
	assert.Equal(t, 0, p.Current())
	assert.Equal(t, 0, p.Cursor(), "forward entry starts without revealed substeps")
	require.NoError(t, p.Prev())
	assert.Equal(t, 2, p.Current())
}

// Walk through the deck and check every target after every move.
func TestEffectsThroughPresentation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "subfx.presenter")
	defer teardown()
	//
	p, doc, _ := setup(t)
	opacity := func(id string) style.Property {
		return node(t, doc, id).StyleProperty("opacity")
	}
	hl := func() string {
		return node(t, doc, "hl").Style()
	}
	require.NoError(t, p.Start(0))
	type state struct {
		only, win style.Property
		hl        string
	}
	expected := []state{
		{style.Hidden, style.Hidden, "color: red"}, // entered
		{style.Shown, style.Hidden, "color: red"},  // show-only
		{style.Hidden, style.Shown, "color: blue"}, // windows open
		{style.Hidden, style.Shown, "color: blue"}, // still open
		{style.Hidden, style.Hidden, "color: red"}, // windows closed
	}
	for k, exp := range expected {
		if k > 0 {
			require.NoError(t, p.Next())
		}
		assert.Equal(t, exp.only, opacity("only"), "only at substep %d", k)
		assert.Equal(t, exp.win, opacity("win"), "win at substep %d", k)
		assert.Equal(t, exp.hl, hl(), "hl at substep %d", k)
	}
	for k := len(expected) - 2; k >= 0; k-- {
		require.NoError(t, p.Prev())
		assert.Equal(t, expected[k].only, opacity("only"), "only back at substep %d", k)
		assert.Equal(t, expected[k].win, opacity("win"), "win back at substep %d", k)
		assert.Equal(t, expected[k].hl, hl(), "hl back at substep %d", k)
	}
	// leave for s2: its hide-only target is pre-armed without transition
	require.NoError(t, p.GoTo(1))
	assert.Equal(t, "opacity: 1;", node(t, doc, "hidden").Style())
	assert.Equal(t, style.NullStyle, opacity("only"), "expected left slide to be cleaned up")
	assert.Equal(t, style.NullStyle, opacity("win"))
	require.NoError(t, p.Next())
	assert.Equal(t, style.Hidden, opacity("hidden"))
}

func TestRevisitRestoresEntryState(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "subfx.presenter")
	defer teardown()
	//
	p, doc, _ := setup(t)
	ids := []string{"only", "win", "hl"}
	snapshot := func() map[string]string {
		m := make(map[string]string)
		for _, id := range ids {
			m[id] = node(t, doc, id).Style()
		}
		return m
	}
	require.NoError(t, p.Start(0))
	first := snapshot()
	for i := 0; i < 3; i++ {
		require.NoError(t, p.Next())
	}
	require.NoError(t, p.GoTo(1))
	require.NoError(t, p.GoTo(2))
	require.NoError(t, p.GoTo(0)) // backwards: s1 entered fully revealed
	require.NoError(t, p.GoTo(1))
	require.NoError(t, p.Next())
	require.NoError(t, p.Next()) // s2 -> s3
	require.NoError(t, p.Next()) // s3 -> s1, forward entry
	assert.Equal(t, 0, p.Current())
	assert.Equal(t, first, snapshot())
}

const window = `<html><body>
<div id="s1" class="step">
  <span class="substep" data-show-from="w"></span>
</div>
<div id="s2" class="step"></div>
<p id="w" class="w">window</p>
</body></html>`

func present(t *testing.T, html string) (*presenter.Presentation, *htmldom.Document, *recorder) {
	doc, err := htmldom.ParseString(html)
	require.NoError(t, err)
	conf := config.Default()
	p, err := presenter.New(doc, conf)
	require.NoError(t, err)
	effects.New(doc, conf).Attach(p)
	rec := &recorder{}
	for _, et := range effects.EventTypes {
		p.Subscribe(et, rec.handle)
	}
	return p, doc, rec
}

func TestBackwardEntryShowsLastSubstep(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "subfx.presenter")
	defer teardown()
	//
	p, doc, _ := present(t, window)
	require.NoError(t, p.Start(0))
	require.NoError(t, p.Next()) // reveal substep
	revealed := node(t, doc, "w").Style()
	assert.Equal(t, "opacity: 1; transition: opacity 1s;", revealed)
	require.NoError(t, p.Next()) // on to s2
	require.NoError(t, p.Prev()) // back to s1, fully revealed
	assert.Equal(t, 0, p.Current())
	assert.Equal(t, 1, p.Cursor())
	assert.Equal(t, revealed, node(t, doc, "w").Style())
	require.NoError(t, p.Prev()) // hide the substep again
	assert.Equal(t, style.Hidden, node(t, doc, "w").StyleProperty("opacity"))
}

func TestGoToActiveSlide(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "subfx.presenter")
	defer teardown()
	//
	p, doc, rec := present(t, window)
	require.NoError(t, p.Start(0))
	entered := node(t, doc, "w").Style()
	assert.Equal(t, "opacity: 0;", entered)
	require.NoError(t, p.GoTo(0))
	assert.Equal(t, []string{"slide-entered@s1"}, rec.events)
	assert.Equal(t, entered, node(t, doc, "w").Style())
}

func TestSingleSlideWrapAround(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "subfx.presenter")
	defer teardown()
	//
	p, doc, rec := present(t, `<div id="s" class="step">
  <span class="substep" data-show-from="w"></span>
</div>
<p id="w" class="w">window</p>`)
	require.NoError(t, p.Start(0))
	require.NoError(t, p.Next()) // reveal substep
	require.NoError(t, p.Next()) // wrap around onto the same slide
	assert.Equal(t, 0, p.Cursor())
	assert.Equal(t, style.Hidden, node(t, doc, "w").StyleProperty("opacity"))
	assert.NotContains(t, rec.events, "slide-about-to-leave@s")
}
