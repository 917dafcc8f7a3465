package render

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/danmuck/hdlcbody/internal/hdlc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func mustDecode(t *testing.T, text string) hdlc.Frame {
	t.Helper()
	f, err := hdlc.Decode(text)
	require.NoError(t, err)
	return f
}

func TestFromFrameU(t *testing.T) {
	rec := FromFrame(mustDecode(t, "7E A0 93 01 00 7E"))
	assert.Equal(t, Record{Kind: "U", Address: "0xA0", Control: "0x93"}, rec)
}

func TestFromFrameI(t *testing.T) {
	rec := FromFrame(mustDecode(t, "7E 01 30 07 03 00 42 AB CD 7E"))
	assert.Equal(t, "I", rec.Kind)
	assert.Equal(t, "0x07", rec.ProcedureCode)
	assert.Equal(t, []string{"0x03", "0x00"}, rec.ParameterLength)
	assert.Equal(t, []string{"0x42"}, rec.ParameterValues)
}

func TestWriteJSONXID(t *testing.T) {
	rec := FromFrame(mustDecode(t, "7E A0 BF 81 80 04 02 02 0A 0B 12 34 7E"))
	rec.RequestID = "req-1"

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatJSON, rec))

	var out Record
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, rec, out)
	require.NotNil(t, out.GroupLength)
	assert.Equal(t, 4, *out.GroupLength)
	assert.Equal(t, []Parameter{{ID: "0x02", Length: 2, Values: []string{"0x0A", "0x0B"}}}, out.Parameters)
}

func TestWriteYAMLXID(t *testing.T) {
	rec := FromFrame(mustDecode(t, "7E A0 BF 81 80 04 02 02 0A 0B 12 34 7E"))

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatYAML, rec))
	assert.Contains(t, buf.String(), "kind: XID")
	assert.Contains(t, buf.String(), "group_length: 4")

	var out Record
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, rec, out)
}

func TestWriteUnknownFormat(t *testing.T) {
	err := Write(&bytes.Buffer{}, "xml", Record{})
	assert.ErrorIs(t, err, ErrUnknownFormat)
}
