package anim

// Phase is the lifecycle position of an element.
type Phase uint8

const (
	Uninitialized Phase = iota
	Running
	Paused
)

func (p Phase) String() string {
	switch p {
	case Uninitialized:
		return "uninitialized"
	case Running:
		return "running"
	case Paused:
		return "paused"
	default:
		return "unknown"
	}
}

// Toggle holds the enabled flag and phase shared by every element.
type Toggle struct {
	Enabled bool
	phase   Phase
}

// Phase reports the current lifecycle position.
func (t *Toggle) Phase() Phase { return t.phase }

// Running reports whether the element is currently advancing.
func (t *Toggle) Running() bool { return t.phase == Running }

// Active reports whether the element should advance and render this tick.
func (t *Toggle) Active() bool { return t.Enabled && t.phase == Running }

// Start moves to Running, calling reset first if the element was never started.
func (t *Toggle) Start(reset func()) {
	if t.phase == Uninitialized && reset != nil {
		reset()
	}
	t.phase = Running
}

// Pause stops advancing without losing state.
func (t *Toggle) Pause() {
	if t.phase == Running {
		t.phase = Paused
	}
}
