package hdlc

import "fmt"

// FrameI wire offsets within the trimmed payload.
const (
	iIdxAddr          = 0
	iIdxCtrl          = 1
	iIdxProc          = 2
	iIdxLengthFstBE   = 3
	iIdxLengthSndBE   = 4
	iIdxParameterByte = 5
)

// FrameU wire offsets within the trimmed payload.
const (
	uIdxAddr = 0
	uIdxCtrl = 1
)

func (in *Interpreter) decodeFrameI(payload []string) (Frame, error) {
	var (
		f   FrameI
		err error
	)
	if f.Address, err = at(payload, iIdxAddr); err != nil {
		return nil, fmt.Errorf("frame I address: %w", err)
	}
	if f.Control, err = at(payload, iIdxCtrl); err != nil {
		return nil, fmt.Errorf("frame I control: %w", err)
	}
	if f.ProcedureCode, err = at(payload, iIdxProc); err != nil {
		return nil, fmt.Errorf("frame I procedure: %w", err)
	}
	lengthTokens, err := Slice(payload, iIdxLengthFstBE, iIdxLengthSndBE-iIdxLengthFstBE+1)
	if err != nil {
		return nil, fmt.Errorf("frame I parameter length: %w", err)
	}
	lengthValues, err := ToHexesInt(lengthTokens)
	if err != nil {
		return nil, fmt.Errorf("frame I parameter length: %w", err)
	}
	copy(f.ParameterLength[:], ToHexes(lengthValues))

	// Only one value byte is carried regardless of the declared length.
	if !isZeroToken(payload[iIdxLengthFstBE]) {
		v, err := at(payload, iIdxParameterByte)
		if err != nil {
			return nil, fmt.Errorf("frame I parameter value: %w", err)
		}
		f.ParameterValues = []Hex{v}
	}

	in.log.Debugf("hdlc.FrameI addr=%s ctrl=%s proc=%s len=%s,%s values=%v",
		f.Address, f.Control, f.ProcedureCode, f.ParameterLength[0], f.ParameterLength[1], f.ParameterValues)
	return &f, nil
}

func (in *Interpreter) decodeFrameU(payload []string) (Frame, error) {
	addr, err := at(payload, uIdxAddr)
	if err != nil {
		return nil, fmt.Errorf("frame U address: %w", err)
	}
	ctrl, err := at(payload, uIdxCtrl)
	if err != nil {
		return nil, fmt.Errorf("frame U control: %w", err)
	}
	in.log.Debugf("hdlc.FrameU addr=%s ctrl=%s", addr, ctrl)
	return &FrameU{Address: addr, Control: ctrl}, nil
}
