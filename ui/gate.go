package ui

// Forward passes event to handler if the presented button is interactive.
// Events for a disabled or loading button are dropped without calling handler.
// It reports whether the event was forwarded.
func Forward[E any](spec RenderSpec, event E, handler func(E)) bool {
	if !spec.InteractionEnabled {
		return false
	}
	if handler != nil {
		handler(event)
	}
	return true
}

// OnActivate binds handler to spec, so callers can hand out a single gated callback.
func OnActivate[E any](spec RenderSpec, handler func(E)) func(E) bool {
	return func(event E) bool {
		return Forward(spec, event, handler)
	}
}
