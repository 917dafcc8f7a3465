package hdlc

import (
	"fmt"
	"strings"
)

// FrameXID wire offsets within the trimmed payload.
const (
	xidIdxAddr            = 0
	xidIdxCtrl            = 1
	xidIdxFormatID        = 2
	xidIdxGroupID         = 3
	xidIdxGroupLength     = 4
	xidIdxParametersStart = 5
)

// Subgroup offsets relative to the subgroup start.
const (
	subgroupIdxParID       = 0
	subgroupIdxLength      = 1
	subgroupIdxValuesStart = 2
	subgroupHeaderLen      = subgroupIdxValuesStart
)

func (in *Interpreter) decodeFrameXID(payload []string) (Frame, error) {
	var (
		f   FrameXID
		err error
	)
	header := []struct {
		idx  int
		dst  *Hex
		name string
	}{
		{xidIdxAddr, &f.Address, "address"},
		{xidIdxCtrl, &f.Control, "control"},
		{xidIdxFormatID, &f.FormatID, "format id"},
		{xidIdxGroupID, &f.GroupID, "group id"},
		{xidIdxGroupLength, &f.GroupLength, "group length"},
	}
	for _, h := range header {
		if *h.dst, err = at(payload, h.idx); err != nil {
			return nil, fmt.Errorf("frame XID %s: %w", h.name, err)
		}
	}

	area, err := Slice(payload, xidIdxParametersStart, int(f.GroupLength))
	if err != nil {
		return nil, fmt.Errorf("frame XID parameter area: %w", err)
	}
	params, err := in.decodeParameterArea(area)
	if err != nil {
		return nil, fmt.Errorf("frame XID parameters: %w", err)
	}
	f.Parameters = params

	in.log.Debugf("hdlc.FrameXID addr=%s ctrl=%s format=%s group=%s group_len=%d params=%d",
		f.Address, f.Control, f.FormatID, f.GroupID, int(f.GroupLength), len(f.Parameters))
	return &f, nil
}

// decodeParameterArea walks area subgroup by subgroup. The area must be
// consumed exactly.
func (in *Interpreter) decodeParameterArea(area []string) ([]ParameterGroup, error) {
	params := make([]ParameterGroup, 0, 4)
	for offset := 0; offset != len(area); {
		group, next, err := in.decodeSubgroup(area, offset)
		if err != nil {
			return nil, err
		}
		params = append(params, group)
		offset = next
	}
	return params, nil
}

// decodeSubgroup decodes the subgroup starting at offset and returns the
// offset of the next one.
func (in *Interpreter) decodeSubgroup(area []string, offset int) (ParameterGroup, int, error) {
	remaining := len(area) - offset
	if remaining < subgroupHeaderLen {
		return ParameterGroup{}, 0, fmt.Errorf("%w: offset=%d header needs %d tokens, %d remain",
			ErrPartitionMismatch, offset, subgroupHeaderLen, remaining)
	}
	id, err := ToHex(area[offset+subgroupIdxParID])
	if err != nil {
		return ParameterGroup{}, 0, fmt.Errorf("subgroup id at offset %d: %w", offset, err)
	}
	length, err := ToInt(area[offset+subgroupIdxLength])
	if err != nil {
		return ParameterGroup{}, 0, fmt.Errorf("subgroup length at offset %d: %w", offset, err)
	}
	if length > remaining-subgroupHeaderLen {
		return ParameterGroup{}, 0, fmt.Errorf("%w: offset=%d id=%s length=%d exceeds %d remaining",
			ErrPartitionMismatch, offset, id, length, remaining-subgroupHeaderLen)
	}
	valueTokens := area[offset+subgroupIdxValuesStart : offset+subgroupIdxValuesStart+length]
	values, err := ToHexesInt(valueTokens)
	if err != nil {
		return ParameterGroup{}, 0, fmt.Errorf("subgroup %s values: %w", id, err)
	}

	in.log.Tracef("hdlc.Subgroup id=%s len=%d vals=[%s]", id, length, strings.Join(valueTokens, ","))
	return ParameterGroup{ID: id, Length: length, Values: ToHexes(values)}, offset + length + subgroupHeaderLen, nil
}
