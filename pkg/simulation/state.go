package simulation

// State is the lifecycle phase of a Simulator.
type State int

const (
	// Init: resources allocated, no worker started.
	Init State = iota
	// Running: every worker is cycling.
	Running
	// Draining: at least one worker is done, waiting on the rest.
	Draining
	// Terminated: all workers joined and shared resources released.
	Terminated
)

func (s State) String() string {
	switch s {
	case Init:
		return "INIT"
	case Running:
		return "RUNNING"
	case Draining:
		return "DRAINING"
	case Terminated:
		return "TERMINATED"
	}
	return "UNKNOWN"
}
