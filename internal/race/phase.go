package race

type Phase int

const (
	Idle Phase = iota
	Running
	Finished
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Finished:
		return "finished"
	default:
		return "unknown"
	}
}
