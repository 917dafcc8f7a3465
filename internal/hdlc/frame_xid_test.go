package hdlc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyFrameXIDSingleSubgroup(t *testing.T) {
	f, err := newTestInterpreter(t).Apply("7E A0 BF 81 80 04 02 02 0A 0B 12 34 7E")
	require.NoError(t, err)
	x, ok := f.(*FrameXID)
	require.True(t, ok, "expected *FrameXID, got %T", f)

	assert.Equal(t, Hex(0xA0), x.Address)
	assert.Equal(t, ControlXID, x.Control)
	assert.Equal(t, Hex(0x81), x.FormatID)
	assert.Equal(t, Hex(0x80), x.GroupID)
	assert.Equal(t, Hex(0x04), x.GroupLength)
	require.Len(t, x.Parameters, 1)
	assert.Equal(t, ParameterGroup{ID: 0x02, Length: 2, Values: []Hex{0x0A, 0x0B}}, x.Parameters[0])
}

func TestApplyFrameXIDSubgroupsPartitionGroupLength(t *testing.T) {
	// 05: 02 00 80 | 06: 02 00 80 | 07: 04 00 00 00 01 | 08: 04 00 00 00 01 | 09: 00
	text := "7E 03 BF 81 80 16 05 02 00 80 06 02 00 80 07 04 00 00 00 01 08 04 00 00 00 01 09 00 5A 5B 7E"
	f, err := newTestInterpreter(t).Apply(text)
	require.NoError(t, err)
	x := f.(*FrameXID)

	ids := make([]Hex, 0, len(x.Parameters))
	sum := 0
	for _, p := range x.Parameters {
		ids = append(ids, p.ID)
		assert.Len(t, p.Values, p.Length)
		sum += p.Length + subgroupHeaderLen
	}
	assert.Equal(t, []Hex{0x05, 0x06, 0x07, 0x08, 0x09}, ids)
	assert.Equal(t, int(x.GroupLength), sum)

	window, ok := x.Parameter(0x07)
	require.True(t, ok)
	assert.Equal(t, []Hex{0x00, 0x00, 0x00, 0x01}, window.Values)
	empty, ok := x.Parameter(0x09)
	require.True(t, ok)
	assert.Empty(t, empty.Values)
	_, ok = x.Parameter(0x42)
	assert.False(t, ok)
}

func TestApplyFrameXIDEmptyParameterArea(t *testing.T) {
	f, err := newTestInterpreter(t).Apply("7E A0 BF 81 80 00 12 34 7E")
	require.NoError(t, err)
	assert.Empty(t, f.(*FrameXID).Parameters)
}

func TestApplyFrameXIDIgnoresBytesAfterParameterArea(t *testing.T) {
	f, err := newTestInterpreter(t).Apply("7E A0 BF 81 80 02 01 00 EE EE 12 34 7E")
	require.NoError(t, err)
	x := f.(*FrameXID)
	require.Len(t, x.Parameters, 1)
	assert.Equal(t, ParameterGroup{ID: 0x01, Length: 0, Values: []Hex{}}, x.Parameters[0])
}

func TestApplyFrameXIDPartitionMismatch(t *testing.T) {
	in := newTestInterpreter(t)
	cases := map[string]string{
		"subgroup overshoots area": "7E A0 BF 81 80 04 02 03 0A 0B 12 34 7E",
		"dangling header byte":     "7E A0 BF 81 80 05 02 02 0A 0B 07 12 34 7E",
		"length byte beyond area":  "7E A0 BF 81 80 01 02 12 34 7E",
	}
	for name, text := range cases {
		f, err := in.Apply(text)
		assert.Nil(t, f, name)
		assert.ErrorIs(t, err, ErrPartitionMismatch, name)
	}
}

func TestApplyFrameXIDGroupLengthBeyondPayload(t *testing.T) {
	_, err := newTestInterpreter(t).Apply("7E A0 BF 81 80 09 02 02 0A 0B 12 34 7E")
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestApplyFrameXIDInvalidValueToken(t *testing.T) {
	_, err := newTestInterpreter(t).Apply("7E A0 BF 81 80 04 02 02 0A XX 12 34 7E")
	assert.ErrorIs(t, err, ErrInvalidHexToken)
}

func TestDecodeSubgroupAdvancesByLengthPlusHeader(t *testing.T) {
	in := NewInterpreter()
	area := []string{"02", "02", "0A", "0B", "03", "01", "FF"}

	g, next, err := in.decodeSubgroup(area, 0)
	require.NoError(t, err)
	assert.Equal(t, 4, next)
	assert.Equal(t, Hex(0x02), g.ID)

	g, next, err = in.decodeSubgroup(area, next)
	require.NoError(t, err)
	assert.Equal(t, len(area), next)
	assert.Equal(t, ParameterGroup{ID: 0x03, Length: 1, Values: []Hex{0xFF}}, g)
}
