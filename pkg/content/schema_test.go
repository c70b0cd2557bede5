package content

import (
	"testing"
	"time"

	"github.com/matryer/is"
)

func TestSchemaDefaultsEveryKind(t *testing.T) {
	is := is.New(t)

	schema := Schema{
		{Attribute: "text", Kind: Text},
		{Attribute: "rich", Kind: RichText},
		{Attribute: "num", Kind: Number},
		{Attribute: "enum", Kind: Enum, Default: "fallback"},
		{Attribute: "opt", Kind: OptionalText},
		{Attribute: "optrich", Kind: OptionalRichText},
		{Attribute: "optnum", Kind: OptionalNumber},
		{Attribute: "list", Kind: TextList},
	}

	rec := schema.Decode(nil)

	is.Equal(rec.Text("text"), "")
	is.Equal(rec.Text("rich"), "")
	is.Equal(rec.Number("num"), 0.0)
	is.Equal(rec.Text("enum"), "fallback")
	is.True(rec.Optional("opt") == nil)
	is.True(rec.Optional("optrich") == nil)
	is.True(rec.OptionalNumber("optnum") == nil)
	is.Equal(rec.List("list"), []string{})
	is.Equal(rec.Text("undeclared"), "")
}

func TestSchemaReadsPresentValues(t *testing.T) {
	is := is.New(t)

	schema := Schema{
		{Attribute: "enum", Kind: Enum, Default: "fallback"},
		{Attribute: "null_enum", Kind: Enum, Default: "fallback"},
		{Attribute: "optrich", Kind: OptionalRichText},
		{Attribute: "optnum", Kind: OptionalNumber},
		{Attribute: "seo", Kind: Text, Fallback: "title"},
	}

	rec := schema.Decode(map[string]any{
		"enum":      "",
		"null_enum": nil,
		"optrich":   map[string]any{},
		"optnum":    "4",
		"title":     "Go Basics",
	})

	is.Equal(rec.Text("enum"), "")
	is.Equal(rec.Text("null_enum"), "fallback")
	is.Equal(*rec.Optional("optrich"), "")
	is.Equal(*rec.OptionalNumber("optnum"), 4.0)
	is.Equal(rec.Text("seo"), "Go Basics")
}

func TestParseDate(t *testing.T) {
	is := is.New(t)

	d, ok := ParseDate("2024-01-15")
	is.True(ok)
	is.Equal(Day(d), "2024-01-15")

	d, ok = ParseDate("2024-01-15T23:30:00-05:00")
	is.True(ok)
	is.Equal(Day(d), "2024-01-16")

	_, ok = ParseDate("")
	is.True(!ok)

	_, ok = ParseDate("soon")
	is.True(!ok)

	is.Equal(Day(time.Date(2024, 1, 10, 23, 59, 0, 0, time.UTC)), "2024-01-10")
}
