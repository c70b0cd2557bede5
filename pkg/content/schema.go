package content

import (
	"github.com/spf13/cast"
)

// Kind is the semantic type of an attribute and decides how a missing or
// malformed value is defaulted.
type Kind int

const (
	// Text is a plain string. Missing or non string values become "".
	Text Kind = iota
	// RichText is a formatted text object of the form {"value": "..."}.
	// A missing wrapper or value becomes "".
	RichText
	// Number is a JSON number or a numeric string. Anything else becomes 0.
	Number
	// Enum is a string copied verbatim without membership checks. An absent
	// attribute becomes the field default.
	Enum
	// OptionalText is a string that is absent when missing, empty or not a string
	OptionalText
	// OptionalRichText is a rich text value that is absent when the attribute is missing
	OptionalRichText
	// OptionalNumber is a number that is absent when missing, zero or not numeric
	OptionalNumber
	// TextList is a list of strings. Non string elements are dropped.
	TextList
)

// Field declares how one attribute is decoded
type Field struct {
	Attribute string
	Kind      Kind
	// Default is used by Enum fields when the attribute is absent
	Default string
	// Fallback names an attribute that is read when Attribute is absent
	Fallback string
}

// Schema is the declared attribute layout of one content type
type Schema []Field

// Record holds decoded attribute values keyed by attribute name. Lookups of
// undeclared attributes yield zero values.
type Record struct {
	values map[string]any
}

// Decode applies the schema to an attribute bag. It never fails, every field
// resolves to a value or to absent according to its kind.
func (s Schema) Decode(attrs map[string]any) Record {
	rec := Record{values: make(map[string]any, len(s))}

	for _, f := range s {
		raw, ok := attrs[f.Attribute]
		if (!ok || raw == nil) && f.Fallback != "" {
			raw, ok = attrs[f.Fallback]
		}
		present := ok && raw != nil

		switch f.Kind {
		case Text:
			str, _ := raw.(string)
			rec.values[f.Attribute] = str
		case RichText:
			rec.values[f.Attribute] = richText(raw)
		case Number:
			rec.values[f.Attribute] = number(raw)
		case Enum:
			str, isString := raw.(string)
			if !present || !isString {
				str = f.Default
			}
			rec.values[f.Attribute] = str
		case OptionalText:
			if str, isString := raw.(string); isString && str != "" {
				rec.values[f.Attribute] = &str
			}
		case OptionalRichText:
			if present {
				str := richText(raw)
				rec.values[f.Attribute] = &str
			}
		case OptionalNumber:
			if n := number(raw); n != 0 {
				rec.values[f.Attribute] = &n
			}
		case TextList:
			rec.values[f.Attribute] = textList(raw)
		}
	}

	return rec
}

func (r Record) Text(attribute string) string {
	str, _ := r.values[attribute].(string)
	return str
}

func (r Record) Number(attribute string) float64 {
	n, _ := r.values[attribute].(float64)
	return n
}

func (r Record) Optional(attribute string) *string {
	str, _ := r.values[attribute].(*string)
	return str
}

func (r Record) OptionalNumber(attribute string) *float64 {
	n, _ := r.values[attribute].(*float64)
	return n
}

// List returns a non nil slice
func (r Record) List(attribute string) []string {
	l, ok := r.values[attribute].([]string)
	if !ok {
		return []string{}
	}
	return l
}

func richText(raw any) string {
	obj, ok := raw.(map[string]any)
	if !ok {
		return ""
	}
	str, _ := obj["value"].(string)
	return str
}

func number(raw any) float64 {
	switch raw.(type) {
	case float64, string, int, int64, float32, int32:
		n, err := cast.ToFloat64E(raw)
		if err != nil {
			return 0
		}
		return n
	}
	return 0
}

func textList(raw any) []string {
	items, ok := raw.([]any)
	if !ok {
		return []string{}
	}

	result := make([]string, 0, len(items))
	for _, item := range items {
		if str, ok := item.(string); ok {
			result = append(result, str)
		}
	}

	return result
}
