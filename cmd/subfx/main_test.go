package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const deck = `<html><body>
<div id="s1" class="step">
  <span class="substep" data-show-only="a"></span>
  <span class="substep" data-style-only-a="color: red"></span>
</div>
<div id="s2" class="step"></div>
<p id="a" class="a">a</p>
</body></html>`

func run(t *testing.T, args ...string) (string, error) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func writeDeck(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "deck.html")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReplay(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "subfx.effects")
	defer teardown()
	//
	path := writeDeck(t, deck)
	out, err := run(t, "replay", path, "--moves", "next,next,goto:1", "--html")
	require.NoError(t, err)
	t.Logf("\n%s", out)
	assert.Contains(t, out, "== start 0 (slide 0, substep 0)")
	assert.Contains(t, out, "== next (slide 0, substep 1)")
	assert.Contains(t, out, `style="opacity: 1; transition: opacity 1s;"`)
	assert.Contains(t, out, `style="color: red"`)
	assert.Contains(t, out, "== goto:1 (slide 1, substep 0)")
	assert.Contains(t, out, `<p id="a" class="a" style="">a</p>`)
}

func TestReplayRejectsUnknownMove(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "subfx.effects")
	defer teardown()
	//
	path := writeDeck(t, deck)
	_, err := run(t, "replay", path, "--moves", "sideways")
	assert.Error(t, err)
}

func TestLint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "subfx.lint")
	defer teardown()
	//
	out, err := run(t, "lint", writeDeck(t, deck))
	assert.NoError(t, err)
	assert.Empty(t, out)
	//
	bad := `<div class="step"><span class="substep" data-style-from-a="color red;"></span></div>`
	out, err = run(t, "lint", writeDeck(t, bad))
	assert.ErrorIs(t, err, errLint)
	assert.Contains(t, out, "does not parse")
}
