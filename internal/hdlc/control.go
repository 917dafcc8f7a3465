package hdlc

// Control byte codes.
const (
	ControlXID          Hex = 0xBF
	ControlSNRM         Hex = 0x93
	ControlUA           Hex = 0x73
	ControlCalibrateReq Hex = 0x10
	ControlCalibrateRes Hex = 0x30
)

// Kind is the closed set of frame body kinds.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindI
	KindU
	KindXID
)

func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindU:
		return "U"
	case KindXID:
		return "XID"
	default:
		return "unknown"
	}
}

var (
	frameUControls = [...]Hex{ControlSNRM, ControlUA}
	frameIControls = [...]Hex{ControlCalibrateReq, ControlCalibrateRes}
)

// Classify maps a control byte to its frame kind. XID is checked first,
// then the U set, then the I set.
func Classify(ctrl Hex) Kind {
	if ctrl == ControlXID {
		return KindXID
	}
	for _, c := range frameUControls {
		if ctrl == c {
			return KindU
		}
	}
	for _, c := range frameIControls {
		if ctrl == c {
			return KindI
		}
	}
	return KindUnknown
}
