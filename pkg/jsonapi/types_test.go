package jsonapi

import (
	"encoding/json"
	"testing"

	"github.com/matryer/is"
)

func TestRelationshipCardinalityIsStructural(t *testing.T) {
	is := is.New(t)

	rels := map[string]Relationship{}
	err := json.Unmarshal([]byte(`{
		"one": {"data": {"type": "a", "id": "1"}},
		"many": {"data": [{"type": "a", "id": "1"}, {"type": "a", "id": "2"}]},
		"none": {"data": null},
		"empty": {"data": []}
	}`), &rels)
	is.NoErr(err)

	ref, ok := rels["one"].Ref()
	is.True(ok)
	is.Equal(ref, ResourceRef{Type: "a", ID: "1"})
	is.True(!rels["one"].IsCollection())

	is.True(rels["many"].IsCollection())
	is.Equal(len(rels["many"].Refs()), 2)

	is.True(rels["none"].IsNull())

	is.True(rels["empty"].IsCollection())
	is.True(!rels["empty"].IsNull())
	is.Equal(len(rels["empty"].Refs()), 0)
}

func TestMalformedMembersAreDroppedNotFatal(t *testing.T) {
	is := is.New(t)

	r := Resource{}
	err := json.Unmarshal([]byte(`{
		"type": "node--course",
		"id": "c-1",
		"attributes": ["not", "an", "object"],
		"relationships": {
			"field_trainer": "oops",
			"field_category": {"data": [1, {"type": "t", "id": "x"}]}
		},
		"links": {"self": {"href": "https://cms/jsonapi/node/course/c-1"}}
	}`), &r)

	is.NoErr(err)
	is.Equal(r.ID, "c-1")
	is.True(r.Attributes == nil)
	is.True(r.Relationship("field_trainer").IsNull())
	is.Equal(len(r.Relationship("field_category").Refs()), 1)
	is.Equal(r.Links["self"].Href, "https://cms/jsonapi/node/course/c-1")
}

func TestCollectionWithNullDataIsEmpty(t *testing.T) {
	is := is.New(t)

	c, err := NewCollectionFromJSON([]byte(`{"data": null}`))

	is.NoErr(err)
	is.True(c.Data != nil)
	is.Equal(len(c.Data), 0)
}

func TestCollectionLinksAndMeta(t *testing.T) {
	is := is.New(t)

	c, err := NewCollectionFromJSON([]byte(`{
		"data": [],
		"links": {"next": "https://cms/jsonapi/node/course?page%5Boffset%5D=50"},
		"meta": {"count": 120}
	}`))
	is.NoErr(err)

	is.Equal(c.Links["next"].Href, "https://cms/jsonapi/node/course?page%5Boffset%5D=50")
	is.Equal(c.Meta["count"], float64(120))
}

func TestOneUndecodableAttributeKeepsTheOthers(t *testing.T) {
	is := is.New(t)

	r := Resource{}
	err := json.Unmarshal([]byte(`{
		"type": "node--course",
		"id": "c-1",
		"attributes": {"title": "Go Basics", "field_slug": "go-basics", "field_duration": 1e400}
	}`), &r)

	is.NoErr(err)
	is.Equal(r.Attributes["title"], "Go Basics")
	is.Equal(r.Attributes["field_slug"], "go-basics")
	_, found := r.Attributes["field_duration"]
	is.True(!found)
}

func TestRelationshipMarshalRoundTrip(t *testing.T) {
	is := is.New(t)

	b, err := json.Marshal(ToMany(ResourceRef{Type: "a", ID: "1"}))
	is.NoErr(err)
	is.Equal(string(b), `{"data":[{"type":"a","id":"1"}]}`)

	b, err = json.Marshal(Relationship{})
	is.NoErr(err)
	is.Equal(string(b), `{"data":null}`)
}

func TestInvalidDocumentIsAnError(t *testing.T) {
	is := is.New(t)

	_, err := NewDocumentFromJSON([]byte(`<html>maintenance</html>`))
	is.True(err != nil)
}
