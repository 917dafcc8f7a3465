package hdlc

import (
	"errors"
	"fmt"
	"strings"
)

const idxCtrlByte = 1

// Interpreter decodes frame body text into typed frames. It holds no
// per-call state and is safe for concurrent use.
type Interpreter struct {
	log Logger
}

func NewInterpreter(opts ...Option) *Interpreter {
	in := &Interpreter{log: nopLogger{}}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// Apply decodes text and returns nil with no error when the control byte
// matches no known frame kind. Malformed input is returned as an error.
func (in *Interpreter) Apply(text string) (Frame, error) {
	f, err := in.Decode(text)
	if errors.Is(err, ErrUnknownFrameType) {
		return nil, nil
	}
	return f, err
}

// Decode is Apply with the unknown-kind case surfaced as ErrUnknownFrameType.
func (in *Interpreter) Decode(text string) (Frame, error) {
	lexed := Lex(text)
	in.log.Tracef("hdlc.Decode input=[%s]", strings.Join(lexed, ","))

	payload, err := TrimFlagsAndCRC(lexed)
	if err != nil {
		return nil, err
	}
	ctrl, err := at(payload, idxCtrlByte)
	if err != nil {
		return nil, fmt.Errorf("control byte: %w", err)
	}

	switch Classify(ctrl) {
	case KindXID:
		return in.decodeFrameXID(payload)
	case KindU:
		return in.decodeFrameU(payload)
	case KindI:
		return in.decodeFrameI(payload)
	default:
		in.log.Errorf("hdlc.Decode frame of unknown type control=%s", ctrl)
		return nil, fmt.Errorf("%w: control=%s", ErrUnknownFrameType, ctrl)
	}
}

// Decode uses a logger-less Interpreter.
func Decode(text string) (Frame, error) {
	return NewInterpreter().Decode(text)
}
