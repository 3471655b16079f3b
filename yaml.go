package temporal

/*
yaml.go implements yaml.Marshaler and yaml.Unmarshaler for every value
type. Values are written as plain scalars in their text form.
*/

import "gopkg.in/yaml.v3"

/*
yamlScalar returns the raw text of n, which must be a scalar node. The
YAML resolver may well have tagged a date as !!timestamp; the text is
read verbatim regardless.
*/
func yamlScalar(kind string, n *yaml.Node) (string, error) {
	if n == nil || n.Kind != yaml.ScalarNode {
		line := 0
		if n != nil {
			line = n.Line
		}
		return "", parseErrorf("yaml ", kind, " at line ", line, ": ", errNonScalarYAML)
	}
	debugCodec("yaml", kind, n.Value)
	return n.Value, nil
}

func (r Date) MarshalYAML() (any, error)              { return r.String(), nil }
func (r Time) MarshalYAML() (any, error)              { return r.String(), nil }
func (r PrimitiveDateTime) MarshalYAML() (any, error) { return r.String(), nil }
func (r UtcOffset) MarshalYAML() (any, error)         { return r.String(), nil }
func (r OffsetDateTime) MarshalYAML() (any, error)    { return r.String(), nil }
func (r Duration) MarshalYAML() (any, error)          { return r.String(), nil }

func (r *Date) UnmarshalYAML(n *yaml.Node) error {
	s, err := yamlScalar("date", n)
	if err == nil {
		*r, err = ParseDate(s)
	}
	return err
}

func (r *Time) UnmarshalYAML(n *yaml.Node) error {
	s, err := yamlScalar("time", n)
	if err == nil {
		*r, err = ParseTime(s)
	}
	return err
}

func (r *PrimitiveDateTime) UnmarshalYAML(n *yaml.Node) error {
	s, err := yamlScalar("date-time", n)
	if err == nil {
		*r, err = ParsePrimitiveDateTime(s)
	}
	return err
}

func (r *UtcOffset) UnmarshalYAML(n *yaml.Node) error {
	s, err := yamlScalar("offset", n)
	if err == nil {
		*r, err = ParseOffset(s)
	}
	return err
}

func (r *OffsetDateTime) UnmarshalYAML(n *yaml.Node) error {
	s, err := yamlScalar("offset date-time", n)
	if err == nil {
		*r, err = ParseOffsetDateTime(s)
	}
	return err
}

func (r *Duration) UnmarshalYAML(n *yaml.Node) error {
	s, err := yamlScalar("duration", n)
	if err == nil {
		*r, err = ParseDuration(s)
	}
	return err
}
