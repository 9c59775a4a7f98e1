package grid

// DragPhase is the state of a column drag session.
type DragPhase int

const (
	DragIdle DragPhase = iota
	DragDragging
	DragHovering
)

func (p DragPhase) String() string {
	switch p {
	case DragIdle:
		return "idle"
	case DragDragging:
		return "dragging"
	case DragHovering:
		return "hovering"
	default:
		return "unknown"
	}
}

// DragSession is the transient state of a column drag. The zero value is idle.
// Sessions are only built through the coordinator, so an over id without an
// active id cannot exist.
type DragSession struct {
	phase  DragPhase
	active string
	over   string
}

func (s DragSession) Phase() DragPhase { return s.phase }
func (s DragSession) ActiveID() string { return s.active }
func (s DragSession) OverID() string   { return s.over }

// DragCoordinator turns gesture callbacks (start, hover, end, cancel) into
// column moves. One session is active at a time.
type DragCoordinator struct {
	session DragSession
	locks   Locks
}

// NewDragCoordinator returns an idle coordinator that refuses moves touching
// any id in locks.
func NewDragCoordinator(locks Locks) *DragCoordinator {
	return &DragCoordinator{locks: locks}
}

func (d *DragCoordinator) SetLocks(locks Locks) { d.locks = locks }

func (d *DragCoordinator) Session() DragSession { return d.session }
func (d *DragCoordinator) ActiveID() string     { return d.session.active }
func (d *DragCoordinator) OverID() string       { return d.session.over }

// IsDropTarget reports whether id is the column currently hovered.
func (d *DragCoordinator) IsDropTarget(id string) bool {
	return d.session.phase == DragHovering && d.session.over == id
}

// Start begins a drag on id. Locked ids are recorded too so the caller can
// render them consistently; End rejects any move they would cause.
func (d *DragCoordinator) Start(id string) {
	if id == "" {
		d.session = DragSession{}
		return
	}
	d.session = DragSession{phase: DragDragging, active: id}
}

// Hover records id as the drop target. An empty id, or the dragged id
// itself, clears the target.
func (d *DragCoordinator) Hover(id string) {
	if d.session.phase == DragIdle {
		return
	}
	if id == "" || id == d.session.active {
		d.session = DragSession{phase: DragDragging, active: d.session.active}
		return
	}
	d.session = DragSession{phase: DragHovering, active: d.session.active, over: id}
}

// End finishes the session. When hovering a distinct, unlocked column it
// returns order with the dragged column moved to the target's position and
// true; otherwise it returns order unchanged and false. The session is idle
// afterwards either way.
func (d *DragCoordinator) End(order []string) ([]string, bool) {
	s := d.session
	d.session = DragSession{}
	if s.phase != DragHovering {
		return order, false
	}
	return MoveColumn(order, s.active, s.over, d.locks)
}

// Cancel drops the session without moving anything.
func (d *DragCoordinator) Cancel() {
	d.session = DragSession{}
}
