package robot

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Placeholder marks a field that does not apply to a row, such as the
// Master's position values or a Slave's IP address.
const Placeholder = "NA"

// ErrMalformedDocument reports a network description that parsed as JSON but
// does not carry the expected shape.
var ErrMalformedDocument = errors.New("robot: malformed network description")

// Document mirrors the measurement export produced by the commissioning
// tool: the Master controller at the top level plus one measurement entry
// per Slave.
type Document struct {
	RobotName    string
	RobotType    string
	IP           string
	Measurements []Measurement
}

// Measurement carries one Slave controller: its raw name, type, and the
// measured pose relative to the Master.
type Measurement struct {
	RobotName  string
	RobotType  string
	X, Y, Z    Value
	RX, RY, RZ Value
}

// Value is a position field kept as verbatim text. JSON numbers keep their
// literal form and strings pass through untouched; no numeric validation is
// performed at any point.
type Value string

// UnmarshalJSON accepts both string and number tokens so measured poses can
// be exported either way without losing their textual form.
func (v *Value) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*v = ""
		return nil
	}
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*v = Value(s)
		return nil
	}
	*v = Value(trimmed)
	return nil
}

type rawMeasurement struct {
	RobotName *string `json:"RobotName"`
	RobotType string  `json:"RobotType"`
	X         Value   `json:"X"`
	Y         Value   `json:"Y"`
	Z         Value   `json:"Z"`
	RX        Value   `json:"RX"`
	RY        Value   `json:"RY"`
	RZ        Value   `json:"RZ"`
}

// ParseDocument decodes a network description. It fails with
// ErrMalformedDocument when Measurements is missing or not a list, or when
// any measurement lacks a RobotName.
func ParseDocument(data []byte) (Document, error) {
	var raw struct {
		RobotName    string          `json:"RobotName"`
		RobotType    string          `json:"RobotType"`
		IP           string          `json:"IP"`
		Measurements json.RawMessage `json:"Measurements"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return Document{}, fmt.Errorf("robot: parse network description: %w", err)
	}

	if len(raw.Measurements) == 0 || bytes.Equal(bytes.TrimSpace(raw.Measurements), []byte("null")) {
		return Document{}, fmt.Errorf("%w: Measurements key is missing", ErrMalformedDocument)
	}

	var measurements []rawMeasurement
	if err := json.Unmarshal(raw.Measurements, &measurements); err != nil {
		return Document{}, fmt.Errorf("%w: Measurements is not a list: %v", ErrMalformedDocument, err)
	}

	doc := Document{
		RobotName:    raw.RobotName,
		RobotType:    raw.RobotType,
		IP:           raw.IP,
		Measurements: make([]Measurement, 0, len(measurements)),
	}
	for i, m := range measurements {
		if m.RobotName == nil {
			return Document{}, fmt.Errorf("%w: measurement %d lacks RobotName", ErrMalformedDocument, i)
		}
		doc.Measurements = append(doc.Measurements, Measurement{
			RobotName: *m.RobotName,
			RobotType: m.RobotType,
			X:         m.X,
			Y:         m.Y,
			Z:         m.Z,
			RX:        m.RX,
			RY:        m.RY,
			RZ:        m.RZ,
		})
	}
	return doc, nil
}
