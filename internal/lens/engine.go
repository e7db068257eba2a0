package lens

import (
	"sync"

	"image-magnifier/internal/ratelimit"
	"image-magnifier/pkg/geometry"
)

// State is the lens visibility state.
type State int

const (
	Hidden State = iota
	Shown
)

func (s State) String() string {
	if s == Shown {
		return "shown"
	}
	return "hidden"
}

// Engine owns the interaction state of the magnifier: the cached image
// bounds, the last relative pointer position, the active offset pair and
// the visibility flag. All state changes happen inside the event entry
// points below; the host is poked through the update callback and reads
// the derived output back via Geometry and Visible.
//
// Failure modes are absorbed as no-ops: events arriving before the bounds
// are measured, measurements while the image is unattached, and degenerate
// (zero-area) bounds all leave the state unchanged. Worst case the lens
// silently stays hidden.
type Engine struct {
	mu         sync.Mutex
	cfg        Config
	boundsProv BoundsProvider
	vpProv     ViewportProvider

	bounds     *geometry.Rect // nil until first successful measure
	rel        Relative
	off        Offset
	visible    bool
	loadedSent bool
	attached   bool

	mouseGate *ratelimit.Throttle
	touchGate *ratelimit.Throttle
	remeasure *ratelimit.Debouncer

	onUpdate func()
	onLoaded func()
}

// New creates an engine reading image bounds and viewport snapshots from
// the given providers.
func New(cfg Config, bounds BoundsProvider, viewport ViewportProvider) *Engine {
	e := &Engine{
		cfg:        cfg,
		boundsProv: bounds,
		vpProv:     viewport,
		mouseGate:  ratelimit.NewThrottle(MoveInterval),
		touchGate:  ratelimit.NewThrottle(MoveInterval),
	}
	e.remeasure = ratelimit.NewDebouncer(RemeasureDelay, e.remeasureNow)
	return e
}

// OnUpdate registers the callback invoked whenever the derived output
// (visibility or geometry inputs) may have changed. Must be set before
// events are delivered.
func (e *Engine) OnUpdate(fn func()) {
	e.mu.Lock()
	e.onUpdate = fn
	e.mu.Unlock()
}

// OnLoaded registers the callback invoked once, after the image bounds
// have been measured for the first time following ImageLoaded.
func (e *Engine) OnLoaded(fn func()) {
	e.mu.Lock()
	e.onLoaded = fn
	e.mu.Unlock()
}

// SetConfig replaces the engine configuration.
func (e *Engine) SetConfig(cfg Config) {
	e.mu.Lock()
	e.cfg = cfg
	e.mu.Unlock()
	e.notifyUpdate()
}

// Config returns the current configuration.
func (e *Engine) Config() Config {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cfg
}

// Attach marks the engine live. The host calls it exactly once when the
// component enters a live document, and from then on routes resize/scroll
// into Remeasure.
func (e *Engine) Attach() {
	e.mu.Lock()
	e.attached = true
	e.mu.Unlock()
}

// Detach releases the engine. Pending re-measure timers are cancelled so
// no stale callback fires after disposal.
func (e *Engine) Detach() {
	e.mu.Lock()
	e.attached = false
	e.mu.Unlock()
	e.remeasure.Cancel()
}

// ImageLoaded re-measures the bounds after the image finished loading and
// forwards a single loaded notification to the host once bounds exist.
func (e *Engine) ImageLoaded() {
	measured := e.measure()

	e.mu.Lock()
	var loaded func()
	if measured && !e.loadedSent {
		e.loadedSent = true
		loaded = e.onLoaded
	}
	e.mu.Unlock()

	if loaded != nil {
		loaded()
	}
	e.notifyUpdate()
}

// MouseEnter re-measures the bounds. Visibility is unchanged until the
// first move.
func (e *Engine) MouseEnter() {
	e.measure()
}

// MouseMove handles a mouse move at the given viewport position. The
// handler only fires while the pointer is over the image element, so
// motion with bounds present always shows the lens; no in-bounds check is
// needed. Calls inside the throttle window are dropped.
func (e *Engine) MouseMove(x, y float64) {
	if !e.mouseGate.Allow() {
		return
	}

	e.mu.Lock()
	if e.bounds == nil || e.bounds.Empty() {
		e.mu.Unlock()
		return
	}
	e.rel = ToRelative(x, y, *e.bounds, e.bounds.Width, e.bounds.Height)
	e.off = e.cfg.MouseOffset()
	e.visible = true
	e.mu.Unlock()

	e.notifyUpdate()
}

// MouseLeave hides the lens.
func (e *Engine) MouseLeave() {
	e.setHidden()
}

// TouchStart re-measures the bounds. Visibility is unchanged. Hosts must
// not synthesize touch events when no touch point is active.
func (e *Engine) TouchStart() {
	e.measure()
}

// TouchMove handles a touch move at the given viewport position. Unlike
// the mouse path, the touch point can wander off the image while the
// gesture continues, so the lens is shown only while the relative
// position stays inside [0,1] on both axes and hidden otherwise. Calls
// inside the throttle window are dropped.
func (e *Engine) TouchMove(x, y float64) {
	if !e.touchGate.Allow() {
		return
	}

	e.mu.Lock()
	if e.bounds == nil || e.bounds.Empty() {
		e.mu.Unlock()
		return
	}
	rel := ToRelative(x, y, *e.bounds, e.bounds.Width, e.bounds.Height)
	e.rel = rel
	if rel.InUnitSquare() {
		e.off = e.cfg.TouchOffset()
		e.visible = true
	} else {
		e.visible = false
	}
	e.mu.Unlock()

	e.notifyUpdate()
}

// TouchEnd hides the lens.
func (e *Engine) TouchEnd() {
	e.setHidden()
}

// Remeasure is the debounced entry point for window resize and ancestor
// scroll events: a burst collapses into a single measurement after the
// quiet period. No-op unless attached.
func (e *Engine) Remeasure() {
	e.mu.Lock()
	attached := e.attached
	e.mu.Unlock()
	if attached {
		e.remeasure.Call()
	}
}

// Visible reports whether the lens should currently be painted.
func (e *Engine) Visible() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.visible
}

// State returns the visibility state.
func (e *Engine) State() State {
	if e.Visible() {
		return Shown
	}
	return Hidden
}

// Bounds returns the cached image bounds, if measured.
func (e *Engine) Bounds() (geometry.Rect, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.bounds == nil {
		return geometry.Rect{}, false
	}
	return *e.bounds, true
}

// Geometry derives the current lens geometry. ok is false while the lens
// is hidden or the bounds are absent or degenerate.
func (e *Engine) Geometry() (Geometry, bool) {
	e.mu.Lock()
	if !e.visible || e.bounds == nil || e.bounds.Empty() {
		e.mu.Unlock()
		return Geometry{}, false
	}
	rel, bounds, off, cfg := e.rel, *e.bounds, e.off, e.cfg
	e.mu.Unlock()

	return Position(rel, bounds, off, cfg, e.vpProv.Viewport()), true
}

// measure asks the bounds provider for the image's current rectangle and
// replaces the cached bounds wholesale. A provider that cannot measure
// yet leaves the previous bounds in place. Reports whether bounds are
// present afterwards.
func (e *Engine) measure() bool {
	b, ok := e.boundsProv.ImageBounds()

	e.mu.Lock()
	defer e.mu.Unlock()
	if ok {
		e.bounds = &b
	}
	return e.bounds != nil
}

// remeasureNow runs on the debounce timer after resize/scroll quiescence.
func (e *Engine) remeasureNow() {
	e.mu.Lock()
	attached := e.attached
	e.mu.Unlock()
	if !attached {
		return
	}
	e.measure()
	e.notifyUpdate()
}

func (e *Engine) setHidden() {
	e.mu.Lock()
	e.visible = false
	e.mu.Unlock()
	e.notifyUpdate()
}

func (e *Engine) notifyUpdate() {
	e.mu.Lock()
	fn := e.onUpdate
	e.mu.Unlock()
	if fn != nil {
		fn()
	}
}
