package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// ControlState is the externally visible controller state.
type ControlState int

const (
	ReadyToStart ControlState = iota
	Paused
	Terminated
	GameOver
	NoSignal
	MoveLeftPending
	MoveRightPending
	FallPending
	RotatePending
	AutoShiftPending
	NextFigurePending
)

var controlStateNames = [...]string{
	ReadyToStart:      "ready_to_start",
	Paused:            "paused",
	Terminated:        "terminated",
	GameOver:          "game_over",
	NoSignal:          "no_signal",
	MoveLeftPending:   "move_left",
	MoveRightPending:  "move_right",
	FallPending:       "fall",
	RotatePending:     "rotate",
	AutoShiftPending:  "auto_shift",
	NextFigurePending: "next_figure",
}

// String returns a snake_case name for the state.
func (s ControlState) String() string {
	if s < 0 || int(s) >= len(controlStateNames) {
		return "unknown"
	}
	return controlStateNames[s]
}

// Terminal reports whether the session is over.
func (s ControlState) Terminal() bool {
	return s == Terminated || s == GameOver
}

// phase is the persistent part of the controller state.
type phase int

const (
	phaseReady phase = iota
	phasePlaying
	phasePaused
	phaseTerminated
	phaseGameOver
)

// command is the one-shot request consumed by the next dispatch.
type command int

const (
	commandNone command = iota
	commandMoveLeft
	commandMoveRight
	commandFall
	commandRotate
	commandAutoShift
	commandNextFigure
)

// controller keeps the session phase and the pending command apart.
type controller struct {
	phase   phase
	pending command
}

// live reports whether the fall timer and dispatch apply.
func (c controller) live() bool {
	return c.phase == phasePlaying
}

func (c controller) terminal() bool {
	return c.phase == phaseTerminated || c.phase == phaseGameOver
}

// translate turns an action into a phase change or a pending command.
func (c *controller) translate(a core.Action) {
	switch c.phase {
	case phaseTerminated, phaseGameOver:
		return
	case phasePaused:
		switch a {
		case core.ActionStart:
			c.phase = phasePlaying
			c.pending = commandNone
		case core.ActionTerminate:
			c.phase = phaseTerminated
			c.pending = commandNone
		}
		return
	}

	switch a {
	case core.ActionStart:
		if c.phase == phaseReady {
			c.request(commandAutoShift)
		}
	case core.ActionPause:
		c.phase = phasePaused
		c.pending = commandNone
	case core.ActionTerminate:
		c.phase = phaseTerminated
		c.pending = commandNone
	case core.ActionLeft:
		c.request(commandMoveLeft)
	case core.ActionRight:
		c.request(commandMoveRight)
	case core.ActionDown:
		c.request(commandFall)
	case core.ActionRotate:
		c.request(commandRotate)
	default:
		if c.phase != phaseReady {
			c.pending = commandNone
		}
	}
}

// request queues a command; any command also starts a game that is waiting.
func (c *controller) request(cmd command) {
	c.phase = phasePlaying
	c.pending = cmd
}

func (c *controller) gameOver() {
	c.phase = phaseGameOver
	c.pending = commandNone
}

// state folds phase and pending command into a ControlState.
func (c controller) state() ControlState {
	switch c.phase {
	case phaseReady:
		return ReadyToStart
	case phasePaused:
		return Paused
	case phaseTerminated:
		return Terminated
	case phaseGameOver:
		return GameOver
	}

	switch c.pending {
	case commandMoveLeft:
		return MoveLeftPending
	case commandMoveRight:
		return MoveRightPending
	case commandFall:
		return FallPending
	case commandRotate:
		return RotatePending
	case commandAutoShift:
		return AutoShiftPending
	case commandNextFigure:
		return NextFigurePending
	default:
		return NoSignal
	}
}
