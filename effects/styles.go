package effects

// resetStyles closes every style window a marker may have opened, i.e. all
// its "only" and "from" style effects. Targets get their base style back.
// Calling it repeatedly yields the same result.
func (e *Engine) resetStyles(m *Marker) {
	for _, s := range m.Styles {
		if s.Scope == Only || s.Scope == From {
			e.restoreStyle(s.Class)
		}
	}
}

// restoreStyle sets targets of class to their declared base style, or to
// an empty style.
func (e *Engine) restoreStyle(class string) {
	attr := e.conf.Attr("style-base")
	for _, t := range e.doc.ElementsByClass(class) {
		base, _ := t.Attribute(attr)
		t.SetStyle(base)
	}
}

func (e *Engine) applyStyle(class, declaration string) {
	for _, t := range e.doc.ElementsByClass(class) {
		t.SetStyle(declaration)
	}
}

// applyStyles opens the style windows of m with a scope in open and closes
// the ones ending at m, in attribute order.
func (e *Engine) applyStyles(m *Marker, open ...Scope) {
	for _, s := range m.Styles {
		if s.Scope == To {
			e.restoreStyle(s.Class)
			continue
		}
		for _, o := range open {
			if s.Scope == o {
				tracer().Debugf("style window %s-%s opens", s.Scope, s.Class)
				e.applyStyle(s.Class, s.Declaration)
				break
			}
		}
	}
}
