package statspanel

// Phase is the controller life cycle: Idle, then Loading, then Rendered or Failed.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseRendered
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseRendered:
		return "rendered"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}
