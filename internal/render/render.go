// Package render converts decoded frames into JSON or YAML documents.
package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/danmuck/hdlcbody/internal/hdlc"
	"gopkg.in/yaml.v3"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

var ErrUnknownFormat = errors.New("render: unknown format")

// Record is the serialized view of one decoded frame.
type Record struct {
	RequestID       string      `json:"request_id,omitempty" yaml:"request_id,omitempty"`
	Kind            string      `json:"kind" yaml:"kind"`
	Address         string      `json:"address" yaml:"address"`
	Control         string      `json:"control" yaml:"control"`
	ProcedureCode   string      `json:"procedure_code,omitempty" yaml:"procedure_code,omitempty"`
	ParameterLength []string    `json:"parameter_length,omitempty" yaml:"parameter_length,omitempty"`
	ParameterValues []string    `json:"parameter_values,omitempty" yaml:"parameter_values,omitempty"`
	FormatID        string      `json:"format_id,omitempty" yaml:"format_id,omitempty"`
	GroupID         string      `json:"group_id,omitempty" yaml:"group_id,omitempty"`
	GroupLength     *int        `json:"group_length,omitempty" yaml:"group_length,omitempty"`
	Parameters      []Parameter `json:"parameters,omitempty" yaml:"parameters,omitempty"`
}

type Parameter struct {
	ID     string   `json:"id" yaml:"id"`
	Length int      `json:"length" yaml:"length"`
	Values []string `json:"values" yaml:"values,flow"`
}

// FromFrame builds the Record for f.
func FromFrame(f hdlc.Frame) Record {
	rec := Record{
		Kind:    f.Kind().String(),
		Address: f.AddressByte().String(),
		Control: f.ControlByte().String(),
	}
	switch v := f.(type) {
	case *hdlc.FrameI:
		rec.ProcedureCode = v.ProcedureCode.String()
		rec.ParameterLength = hexStrings(v.ParameterLength[:])
		rec.ParameterValues = hexStrings(v.ParameterValues)
	case *hdlc.FrameU:
	case *hdlc.FrameXID:
		groupLen := int(v.GroupLength)
		rec.FormatID = v.FormatID.String()
		rec.GroupID = v.GroupID.String()
		rec.GroupLength = &groupLen
		rec.Parameters = make([]Parameter, 0, len(v.Parameters))
		for _, p := range v.Parameters {
			rec.Parameters = append(rec.Parameters, Parameter{
				ID:     p.ID.String(),
				Length: p.Length,
				Values: hexStrings(p.Values),
			})
		}
	}
	return rec
}

// Write encodes rec to w in the given format.
func Write(w io.Writer, format string, rec Record) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rec)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rec); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func hexStrings(values []hdlc.Hex) []string {
	if values == nil {
		return nil
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, v.String())
	}
	return out
}
