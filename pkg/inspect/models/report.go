// Package models defines the report structures emitted by workbook inspection.
package models

import (
	"bytes"
	"encoding/json"
)

// Report represents the full inspection result for one workbook.
type Report struct {
	// Filename is the workbook path as passed to the inspector.
	Filename string `json:"filename"`
	// SheetNames lists sheet names in workbook order.
	SheetNames []string `json:"sheet_names"`
	// Sheets maps sheet name to SheetInfo.
	Sheets map[string]*SheetInfo `json:"sheets"`
}

// MarshalJSON emits the sheets object in workbook order rather than the
// sorted-key order encoding/json uses for maps, so that sheet_names and the
// keys of sheets always line up.
func (r *Report) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"filename":`)
	if err := encodeTo(&buf, r.Filename); err != nil {
		return nil, err
	}
	buf.WriteString(`,"sheet_names":`)
	if err := encodeTo(&buf, r.SheetNames); err != nil {
		return nil, err
	}
	buf.WriteString(`,"sheets":{`)
	for i, name := range r.SheetNames {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := encodeTo(&buf, name); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := encodeTo(&buf, r.Sheets[name]); err != nil {
			return nil, err
		}
	}
	buf.WriteString("}}")
	return buf.Bytes(), nil
}

func encodeTo(buf *bytes.Buffer, v interface{}) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	buf.Write(b)
	return nil
}
