package schema

import "slices"

// RemoveComponent deletes the component with the given id and cascades the
// removal through every breakpoint's layout configuration (membership list
// and role assignments) and through every link referencing the id.
// Removing an unknown id is a no-op.
func (s *Schema) RemoveComponent(id string) {
	s.Components = slices.DeleteFunc(s.Components, func(c Component) bool {
		return c.ID == id
	})

	for name, cfg := range s.Layouts {
		cfg.Components = slices.DeleteFunc(cfg.Components, func(cid string) bool {
			return cid == id
		})
		for role, cid := range cfg.Roles {
			if cid == id {
				delete(cfg.Roles, role)
			}
		}
		s.Layouts[name] = cfg
	}

	s.Links = slices.DeleteFunc(s.Links, func(l ComponentLink) bool {
		return l.Source == id || l.Target == id
	})
}

// RemoveBreakpoint deletes the named breakpoint, its layout configuration,
// and every component's explicit rectangle for it.
func (s *Schema) RemoveBreakpoint(name string) {
	s.Breakpoints = slices.DeleteFunc(s.Breakpoints, func(bp Breakpoint) bool {
		return bp.Name == name
	})
	delete(s.Layouts, name)
	for i := range s.Components {
		delete(s.Components[i].ResponsiveCanvasLayout, name)
	}
}

// HasLink reports whether the schema already holds a link between a and b,
// in either direction.
func (s *Schema) HasLink(a, b string) bool {
	for _, l := range s.Links {
		if (l.Source == a && l.Target == b) || (l.Source == b && l.Target == a) {
			return true
		}
	}
	return false
}
