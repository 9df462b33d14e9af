package effects

import "fmt"

// Window is one visibility or style effect of a marker.
type Window struct {
	Kind  Kind
	Scope Scope
	Class string
}

func (w Window) String() string {
	if w.Kind == KindStyle {
		return fmt.Sprintf("style-%s-%s", w.Scope, w.Class)
	}
	return fmt.Sprintf("%s-%s=%q", w.Kind, w.Scope, w.Class)
}

// Dangling is one end of a window without its counterpart in a slide.
// A From without a later To extends to the end of the slide, which is
// legal. A To without an earlier From closes nothing.
type Dangling struct {
	Window
	Index  int     // position of the marker within its slide
	Marker *Marker // marker declaring the window
}

func (d Dangling) String() string {
	if d.Scope == From {
		return fmt.Sprintf("substep %d: %s has no matching to, window extends to end of slide", d.Index, d.Window)
	}
	return fmt.Sprintf("substep %d: %s has no matching from", d.Index, d.Window)
}

// DanglingWindows pairs "from" and "to" effects of the markers of a slide,
// given in traversal order, and returns the ones left unpaired. A "to"
// pairs with any "from" of the same kind and class on an earlier marker.
func DanglingWindows(markers []*Marker) []Dangling {
	type key struct {
		kind  Kind
		class string
	}
	type end struct {
		index  int
		window Window
	}
	froms := make(map[key][]end)
	tos := make(map[key][]end)
	var order []end
	for i, m := range markers {
		for _, w := range m.Windows() {
			k := key{w.Kind, w.Class}
			switch w.Scope {
			case From:
				froms[k] = append(froms[k], end{i, w})
				order = append(order, end{i, w})
			case To:
				tos[k] = append(tos[k], end{i, w})
				order = append(order, end{i, w})
			}
		}
	}
	var dangling []Dangling
	for _, e := range order {
		k := key{e.window.Kind, e.window.Class}
		paired := false
		if e.window.Scope == From {
			for _, t := range tos[k] {
				paired = paired || t.index > e.index
			}
		} else {
			for _, f := range froms[k] {
				paired = paired || f.index < e.index
			}
		}
		if !paired {
			dangling = append(dangling, Dangling{Window: e.window, Index: e.index, Marker: markers[e.index]})
		}
	}
	return dangling
}
