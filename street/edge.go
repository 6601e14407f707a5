package street

//*******************************************
// edges
//*******************************************

type EdgeKind byte

const (
	STREET_EDGE EdgeKind = 0
	TURN_EDGE   EdgeKind = 1
	OTHER_EDGE  EdgeKind = 2
)

func (self EdgeKind) String() string {
	switch self {
	case STREET_EDGE:
		return "street"
	case TURN_EDGE:
		return "turn"
	case OTHER_EDGE:
		return "other"
	default:
		panic("unknown edge kind")
	}
}

// Edge is a directed edge with mutable endpoint references. Length is in the
// graph's distance units; Angle is only meaningful on turn edges.
type Edge struct {
	From *Vertex
	To   *Vertex

	Kind   EdgeKind
	Name   string
	Length int32
	Angle  int32
}
