package profiler

import (
	"encoding/json"
	"fmt"

	"github.com/quadboy321/CSV-Analyzer/internal/parser"
)

// ColumnType is the observed type state of a column. It only moves forward:
// unknown becomes number or text on the first non-empty value, number decays
// to mixed when a non-numeric value shows up later. Text and mixed are
// terminal. Empty values never transition the state.
type ColumnType uint8

const (
	UnknownType ColumnType = iota
	NumberType
	TextType
	MixedType
)

var columnTypeNames = map[ColumnType]string{
	UnknownType: "unknown",
	NumberType:  "number",
	TextType:    "text",
	MixedType:   "mixed",
}

func (t ColumnType) String() string {
	if name, ok := columnTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("ColumnType(%d)", uint8(t))
}

// MarshalJSON encodes the type as its lowercase name.
func (t ColumnType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// observe returns the state after seeing the trimmed non-empty value v.
func (t ColumnType) observe(v string) ColumnType {
	numeric := parser.LooksNumeric(v)
	switch t {
	case UnknownType:
		if numeric {
			return NumberType
		}
		return TextType
	case NumberType:
		if !numeric {
			return MixedType
		}
	}
	return t
}
