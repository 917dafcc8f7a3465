package hdlc

// Frame is one decoded frame body: *FrameI, *FrameU or *FrameXID.
type Frame interface {
	Kind() Kind
	AddressByte() Hex
	ControlByte() Hex
	sealed()
}

// FrameI is an information frame body.
type FrameI struct {
	Address         Hex
	Control         Hex
	ProcedureCode   Hex
	ParameterLength [2]Hex // big-endian, kept as two bytes
	ParameterValues []Hex  // nil when the first length byte is zero
}

// FrameU is an unnumbered frame body.
type FrameU struct {
	Address Hex
	Control Hex
}

// FrameXID is an exchange identification frame body.
type FrameXID struct {
	Address     Hex
	Control     Hex
	FormatID    Hex
	GroupID     Hex
	GroupLength Hex
	Parameters  []ParameterGroup
}

// ParameterGroup is one (id, length, values) subgroup of an XID parameter
// area. len(Values) == Length.
type ParameterGroup struct {
	ID     Hex
	Length int
	Values []Hex
}

func (*FrameI) Kind() Kind   { return KindI }
func (*FrameU) Kind() Kind   { return KindU }
func (*FrameXID) Kind() Kind { return KindXID }

func (f *FrameI) AddressByte() Hex   { return f.Address }
func (f *FrameU) AddressByte() Hex   { return f.Address }
func (f *FrameXID) AddressByte() Hex { return f.Address }

func (f *FrameI) ControlByte() Hex   { return f.Control }
func (f *FrameU) ControlByte() Hex   { return f.Control }
func (f *FrameXID) ControlByte() Hex { return f.Control }

func (*FrameI) sealed()   {}
func (*FrameU) sealed()   {}
func (*FrameXID) sealed() {}

// ParameterLengthValue combines the two length bytes big-endian.
func (f *FrameI) ParameterLengthValue() uint16 {
	return uint16(f.ParameterLength[0])<<8 | uint16(f.ParameterLength[1])
}

// Parameter returns the first subgroup with the given id.
func (f *FrameXID) Parameter(id Hex) (ParameterGroup, bool) {
	for _, p := range f.Parameters {
		if p.ID == id {
			return p, true
		}
	}
	return ParameterGroup{}, false
}
