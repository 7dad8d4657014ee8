package core

// Action is a discrete user input code delivered to a game once per tick.
// Key presses are translated to actions by the platform layer, so games never
// see raw keys.
type Action int

const (
	ActionStart     Action = iota // Enter - start the game or resume from pause
	ActionPause                   // P - pause
	ActionTerminate               // Q, Ctrl+C - end the session
	ActionLeft                    // Left arrow
	ActionRight                   // Right arrow
	ActionUp                      // no-op; also sent when no key was pressed
	ActionDown                    // Down arrow - hard drop
	ActionRotate                  // Space - the "Action" button, rotates the piece
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionStart:
		return "Start"
	case ActionPause:
		return "Pause"
	case ActionTerminate:
		return "Terminate"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionRotate:
		return "Action"
	default:
		return "Unknown"
	}
}

// ActionQueue buffers actions between ticks so that a burst of key presses is
// spread over consecutive ticks instead of being dropped.
type ActionQueue struct {
	items []Action
	limit int
}

// NewActionQueue creates a queue holding at most limit actions.
func NewActionQueue(limit int) ActionQueue {
	if limit <= 0 {
		limit = 1
	}
	return ActionQueue{limit: limit}
}

// Push appends an action. When the queue is full the oldest action is dropped.
func (q *ActionQueue) Push(a Action) {
	if q.limit <= 0 {
		q.limit = 1
	}
	if len(q.items) >= q.limit {
		q.items = q.items[1:]
	}
	q.items = append(q.items, a)
}

// Pop returns the next action, or ActionUp if nothing is queued.
func (q *ActionQueue) Pop() Action {
	if len(q.items) == 0 {
		return ActionUp
	}
	a := q.items[0]
	q.items = q.items[1:]
	return a
}

// Len returns the number of queued actions.
func (q ActionQueue) Len() int {
	return len(q.items)
}

// Clear drops all queued actions.
func (q *ActionQueue) Clear() {
	q.items = q.items[:0]
}
