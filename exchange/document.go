package exchange

import (
	"bytes"
	"encoding/json"
	"fmt"

	"dirpx.dev/rxmerr"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/orbiloops/orbifold"
)

// ParamPoint is one edge end: a side and the glued parameter on it.
type ParamPoint struct {
	Side orbifold.Side `json:"side" yaml:"side"`
	T    float64       `json:"t" yaml:"t"`
}

// ParamEdge is one edge in parameter form.
type ParamEdge struct {
	From ParamPoint `json:"from" yaml:"from"`
	To   ParamPoint `json:"to" yaml:"to"`
}

// Document is the exchange form of a path.
type Document struct {
	// ID identifies the document; a UUID when set.
	ID string `json:"id,omitempty" yaml:"id,omitempty"`

	// Type is the orbifold the path lives on.
	Type orbifold.Type `json:"type" yaml:"type"`

	// Closed records whether the last edge closes the loop.
	Closed bool `json:"closed" yaml:"closed"`

	// Edges in path order, closing edge last.
	Edges []ParamEdge `json:"edges" yaml:"edges"`
}

// Issues returns every field-level problem of d, in field order: a UUID id
// when present, a known type, at least 3 edges when closed, sides of that
// type and parameters inside [0, 1]. Sides are only checked when the type
// is known.
func (d Document) Issues() []*ValidationError {
	var out []*ValidationError
	if d.ID != "" {
		if _, err := uuid.Parse(d.ID); err != nil {
			out = append(out, &ValidationError{Field: "id", Reason: "must be a UUID", Value: d.ID})
		}
	}
	p, err := orbifold.Lookup(d.Type)
	if err != nil {
		out = append(out, &ValidationError{Field: "type", Reason: "unknown orbifold type", Value: int(d.Type)})
	}
	if d.Closed && len(d.Edges) < 3 {
		out = append(out, &ValidationError{Field: "edges", Reason: "a closed loop needs at least 3 edges", Value: len(d.Edges)})
	}
	for i, e := range d.Edges {
		for _, end := range []struct {
			name string
			pt   ParamPoint
		}{{"from", e.From}, {"to", e.To}} {
			field := fmt.Sprintf("edges[%d].%s", i, end.name)
			if p != nil && !p.Has(end.pt.Side) {
				out = append(out, &ValidationError{Field: field + ".side", Reason: "not a side of " + d.Type.String(), Value: end.pt.Side.String()})
			}
			if end.pt.T < 0 || end.pt.T > 1 {
				out = append(out, &ValidationError{Field: field + ".t", Reason: "must be within [0, 1]", Value: end.pt.T})
			}
		}
	}

	return out
}

// Validate returns nil when d has no Issues, and otherwise one error
// combining all of them.
func (d Document) Validate() error {
	c := rxmerr.NewCollector()
	for _, issue := range d.Issues() {
		c.Append(issue)
	}

	return c.Err()
}

// ToYAML validates d and encodes it as YAML.
func ToYAML(d Document) ([]byte, error) {
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid Document: %w", err)
	}

	return yaml.Marshal(d)
}

// FromYAML decodes YAML and validates the result.
func FromYAML(data []byte) (Document, error) {
	var d Document
	if err := yaml.Unmarshal(data, &d); err != nil {
		return Document{}, fmt.Errorf("cannot unmarshal YAML: %w", err)
	}
	if err := d.Validate(); err != nil {
		return Document{}, fmt.Errorf("unmarshaled Document is invalid: %w", err)
	}

	return d, nil
}

// ToJSON validates d and encodes it as indented JSON.
func ToJSON(d Document) ([]byte, error) {
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid Document: %w", err)
	}

	return json.MarshalIndent(d, "", "  ")
}

// FromJSON decodes JSON and validates the result.
func FromJSON(data []byte) (Document, error) {
	var d Document
	if err := json.Unmarshal(data, &d); err != nil {
		return Document{}, fmt.Errorf("cannot unmarshal JSON: %w", err)
	}
	if err := d.Validate(); err != nil {
		return Document{}, fmt.Errorf("unmarshaled Document is invalid: %w", err)
	}

	return d, nil
}

// Decode reads JSON when data starts with '{' and YAML otherwise.
func Decode(data []byte) (Document, error) {
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '{' {
		return FromJSON(data)
	}

	return FromYAML(data)
}
