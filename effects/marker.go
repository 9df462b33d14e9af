package effects

import (
	"strings"

	"github.com/npillmayer/subfx/config"
	"github.com/npillmayer/subfx/dom"
)

// Scope tells which part of a window an effect declares.
type Scope int

const (
	Only Scope = iota // effect holds for a single substep
	From              // effect opens a window
	To                // effect closes a window
)

func (s Scope) String() string {
	switch s {
	case Only:
		return "only"
	case From:
		return "from"
	case To:
		return "to"
	}
	return "?"
}

// Kind is the kind of an effect.
type Kind int

const (
	KindShow Kind = iota
	KindHide
	KindStyle
)

func (k Kind) String() string {
	switch k {
	case KindShow:
		return "show"
	case KindHide:
		return "hide"
	case KindStyle:
		return "style"
	}
	return "?"
}

// StyleEffect is one entry of a marker's style mapping: targets of Class
// get Declaration as their inline style (Only, From), or are restored to
// their base style (To).
type StyleEffect struct {
	Scope       Scope
	Class       string
	Declaration string
}

// Marker is a substep element together with the effects it declares.
// An empty class name means "no effect of this kind".
type Marker struct {
	Element  dom.Element
	ShowOnly string
	HideOnly string
	ShowFrom string
	ShowTo   string
	HideFrom string
	HideTo   string
	Styles   []StyleEffect // in attribute order
}

// ParseMarker reads the declarative attributes of a substep element.
// Attributes are scanned once; style attributes keep their order of
// appearance, as later mutations of the same class win.
func ParseMarker(el dom.Element, conf config.Config) *Marker {
	m := &Marker{Element: el}
	if el == nil {
		return m
	}
	visibility := map[string]*string{
		conf.Attr("show-only"): &m.ShowOnly,
		conf.Attr("hide-only"): &m.HideOnly,
		conf.Attr("show-from"): &m.ShowFrom,
		conf.Attr("show-to"):   &m.ShowTo,
		conf.Attr("hide-from"): &m.HideFrom,
		conf.Attr("hide-to"):   &m.HideTo,
	}
	styles := []struct {
		prefix string
		scope  Scope
	}{
		{conf.Attr("style-only-"), Only},
		{conf.Attr("style-from-"), From},
		{conf.Attr("style-to-"), To},
	}
	for _, a := range el.Attributes() {
		if field, ok := visibility[a.Key]; ok {
			*field = strings.TrimSpace(a.Value)
			continue
		}
		for _, s := range styles {
			if !strings.HasPrefix(a.Key, s.prefix) {
				continue
			}
			if class := a.Key[len(s.prefix):]; class != "" {
				m.Styles = append(m.Styles, StyleEffect{
					Scope:       s.scope,
					Class:       class,
					Declaration: a.Value,
				})
			}
			break
		}
	}
	return m
}

// Windows lists the visibility effects of a marker as (kind, scope, class)
// triples, skipping empty ones.
func (m *Marker) Windows() []Window {
	var ws []Window
	add := func(k Kind, s Scope, class string) {
		if class != "" {
			ws = append(ws, Window{Kind: k, Scope: s, Class: class})
		}
	}
	add(KindShow, Only, m.ShowOnly)
	add(KindShow, From, m.ShowFrom)
	add(KindShow, To, m.ShowTo)
	add(KindHide, Only, m.HideOnly)
	add(KindHide, From, m.HideFrom)
	add(KindHide, To, m.HideTo)
	for _, s := range m.Styles {
		add(KindStyle, s.Scope, s.Class)
	}
	return ws
}

// IsEmpty is true for markers without any effects.
func (m *Marker) IsEmpty() bool {
	return len(m.Windows()) == 0
}

func (m *Marker) active(conf config.Config) bool {
	return m.Element.HasClass(conf.ActiveClass)
}

func (m *Marker) visible(conf config.Config) bool {
	return m.Element.HasClass(conf.VisibleClass)
}
