package hdlc

import "errors"

var (
	ErrTooFewTokens      = errors.New("hdlc: too few tokens")
	ErrInvalidHexToken   = errors.New("hdlc: invalid hex token")
	ErrOutOfRange        = errors.New("hdlc: token range out of bounds")
	ErrPartitionMismatch = errors.New("hdlc: parameter area not partitioned by subgroups")
	ErrUnknownFrameType  = errors.New("hdlc: unknown frame type")
)
