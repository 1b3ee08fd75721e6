package gsm0338

// State is the decoder state carried between incremental decode calls.
type State int

const (
	StateNormal  State = 0 // default
	StateEscaped State = 1 // previous byte was Escape
)

func (s State) String() string {
	switch s {
	case StateNormal:
		return "normal"
	case StateEscaped:
		return "escaped"
	}
	return "unknown"
}
