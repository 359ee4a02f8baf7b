package scrollhero

// --- Handler registry ---

type scrollHandler struct {
	id uint32
	fn func(y float64)
}

type signalHandler struct {
	id uint32
	fn func()
}

type updateHandler struct {
	id uint32
	fn func(Snapshot)
}

// handlerKind selects which slice of a registry a CallbackHandle points into.
type handlerKind uint8

const (
	handlerScroll handlerKind = iota
	handlerResize
	handlerFocus
	handlerUpdate
)

type handlerRegistry struct {
	scroll []scrollHandler
	resize []signalHandler
	focus  []signalHandler
	update []updateHandler
	nextID uint32
}

// CallbackHandle allows removing a registered callback.
type CallbackHandle struct {
	id   uint32
	reg  *handlerRegistry
	kind handlerKind
}

// Remove unregisters this callback so it no longer fires. Removing a zero
// handle or removing twice is a no-op.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.kind {
	case handlerScroll:
		h.reg.scroll = removeScrollHandler(h.reg.scroll, h.id)
	case handlerResize:
		h.reg.resize = removeSignalHandler(h.reg.resize, h.id)
	case handlerFocus:
		h.reg.focus = removeSignalHandler(h.reg.focus, h.id)
	case handlerUpdate:
		h.reg.update = removeUpdateHandler(h.reg.update, h.id)
	}
}

func removeScrollHandler(s []scrollHandler, id uint32) []scrollHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = scrollHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

func removeSignalHandler(s []signalHandler, id uint32) []signalHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = signalHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

func removeUpdateHandler(s []updateHandler, id uint32) []updateHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = updateHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

func (r *handlerRegistry) onScroll(fn func(float64)) CallbackHandle {
	r.nextID++
	r.scroll = append(r.scroll, scrollHandler{id: r.nextID, fn: fn})
	return CallbackHandle{id: r.nextID, reg: r, kind: handlerScroll}
}

func (r *handlerRegistry) onResize(fn func()) CallbackHandle {
	r.nextID++
	r.resize = append(r.resize, signalHandler{id: r.nextID, fn: fn})
	return CallbackHandle{id: r.nextID, reg: r, kind: handlerResize}
}

func (r *handlerRegistry) onFocus(fn func()) CallbackHandle {
	r.nextID++
	r.focus = append(r.focus, signalHandler{id: r.nextID, fn: fn})
	return CallbackHandle{id: r.nextID, reg: r, kind: handlerFocus}
}

func (r *handlerRegistry) onUpdate(fn func(Snapshot)) CallbackHandle {
	r.nextID++
	r.update = append(r.update, updateHandler{id: r.nextID, fn: fn})
	return CallbackHandle{id: r.nextID, reg: r, kind: handlerUpdate}
}

// clear drops every handler. Outstanding handles become no-ops.
func (r *handlerRegistry) clear() {
	r.scroll = nil
	r.resize = nil
	r.focus = nil
	r.update = nil
}

// --- Dispatch ---
//
// Handlers may remove themselves while being dispatched, so each dispatch
// iterates over a snapshot of the slice.

func (r *handlerRegistry) fireScroll(y float64) {
	if len(r.scroll) == 0 {
		return
	}
	hs := append([]scrollHandler(nil), r.scroll...)
	for _, h := range hs {
		h.fn(y)
	}
}

func (r *handlerRegistry) fireResize() {
	fireSignal(r.resize)
}

func (r *handlerRegistry) fireFocus() {
	fireSignal(r.focus)
}

func fireSignal(s []signalHandler) {
	if len(s) == 0 {
		return
	}
	hs := append([]signalHandler(nil), s...)
	for _, h := range hs {
		h.fn()
	}
}

func (r *handlerRegistry) fireUpdate(snap Snapshot) {
	if len(r.update) == 0 {
		return
	}
	hs := append([]updateHandler(nil), r.update...)
	for _, h := range hs {
		h.fn(snap)
	}
}
