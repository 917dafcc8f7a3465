package hdlc

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	tokenSeparator = " "
	hexBase        = 16

	leadingFramingTokens  = 1 // start flag
	trailingFramingTokens = 3 // CRC[0], CRC[1], stop flag
	minFramedTokens       = leadingFramingTokens + trailingFramingTokens
)

// Hex is one decoded frame byte.
type Hex uint8

func (h Hex) String() string {
	return fmt.Sprintf("0x%02X", uint8(h))
}

// Lex splits frame text on single spaces. Consecutive separators yield
// empty tokens which later fail hex conversion.
func Lex(text string) []string {
	return strings.Split(text, tokenSeparator)
}

// TrimFlagsAndCRC drops the start flag from the front and the stop flag
// plus both CRC bytes from the back.
func TrimFlagsAndCRC(tokens []string) ([]string, error) {
	if len(tokens) < minFramedTokens {
		return nil, fmt.Errorf("%w: got %d want at least %d", ErrTooFewTokens, len(tokens), minFramedTokens)
	}
	out := make([]string, len(tokens)-leadingFramingTokens-trailingFramingTokens)
	copy(out, tokens[leadingFramingTokens:len(tokens)-trailingFramingTokens])
	return out, nil
}

// ToHexInt parses a byte token as base 16.
func ToHexInt(token string) (uint64, error) {
	v, err := strconv.ParseUint(token, hexBase, 8)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidHexToken, token)
	}
	return v, nil
}

// ToInt parses a byte token as a base 16 count.
func ToInt(token string) (int, error) {
	v, err := ToHexInt(token)
	if err != nil {
		return 0, err
	}
	return int(v), nil
}

// ToHex parses a byte token into a frame field value.
func ToHex(token string) (Hex, error) {
	v, err := ToHexInt(token)
	if err != nil {
		return 0, err
	}
	return Hex(v), nil
}

// Slice returns tokens[start:start+length] as a fresh slice.
func Slice(tokens []string, start, length int) ([]string, error) {
	if start < 0 || length < 0 || start > len(tokens) || length > len(tokens)-start {
		return nil, fmt.Errorf("%w: start=%d length=%d tokens=%d", ErrOutOfRange, start, length, len(tokens))
	}
	out := make([]string, length)
	copy(out, tokens[start:start+length])
	return out, nil
}

func ToHexesInt(tokens []string) ([]uint64, error) {
	out := make([]uint64, 0, len(tokens))
	for _, tok := range tokens {
		v, err := ToHexInt(tok)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func ToHexes(values []uint64) []Hex {
	out := make([]Hex, 0, len(values))
	for _, v := range values {
		out = append(out, Hex(v))
	}
	return out
}

// at reads the byte at idx, reporting a short payload as ErrOutOfRange.
func at(tokens []string, idx int) (Hex, error) {
	if idx < 0 || idx >= len(tokens) {
		return 0, fmt.Errorf("%w: index %d tokens=%d", ErrOutOfRange, idx, len(tokens))
	}
	return ToHex(tokens[idx])
}

func isZeroToken(token string) bool {
	return token != "" && strings.Trim(token, "0") == ""
}
