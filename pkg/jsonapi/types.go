package jsonapi

import (
	"bytes"
	"encoding/json"
)

// MediaType is the content type used by JSON:API documents
const MediaType string = "application/vnd.api+json"

// ResourceRef is the (type, id) pair that identifies a resource within a response
type ResourceRef struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

// Resource is one typed and identified record in a JSON:API document.
type Resource struct {
	Type          string                  `json:"type"`
	ID            string                  `json:"id"`
	Attributes    map[string]any          `json:"attributes"`
	Relationships map[string]Relationship `json:"relationships,omitempty"`
	Links         Links                   `json:"links,omitempty"`
}

func (r Resource) Ref() ResourceRef {
	return ResourceRef{Type: r.Type, ID: r.ID}
}

// Relationship returns the named relationship, or nil if the resource has none by that name
func (r Resource) Relationship(name string) *Relationship {
	rel, ok := r.Relationships[name]
	if !ok {
		return nil
	}
	return &rel
}

// UnmarshalJSON decodes a resource without failing on attribute, relationship
// or link members that have an unexpected shape. Those members are dropped,
// attributes one by one.
func (r *Resource) UnmarshalJSON(data []byte) error {
	header := struct {
		Type          string          `json:"type"`
		ID            string          `json:"id"`
		Attributes    json.RawMessage `json:"attributes"`
		Relationships json.RawMessage `json:"relationships"`
		Links         json.RawMessage `json:"links"`
	}{}

	err := json.Unmarshal(data, &header)
	if err != nil {
		return err
	}

	r.Type = header.Type
	r.ID = header.ID
	r.Attributes = nil
	r.Relationships = nil
	r.Links = nil

	if isObject(header.Attributes) {
		raw := map[string]json.RawMessage{}
		if json.Unmarshal(header.Attributes, &raw) == nil {
			r.Attributes = make(map[string]any, len(raw))
			for name, value := range raw {
				var v any
				if json.Unmarshal(value, &v) == nil {
					r.Attributes[name] = v
				}
			}
		}
	}

	if isObject(header.Relationships) {
		relationships := map[string]Relationship{}
		if json.Unmarshal(header.Relationships, &relationships) == nil {
			r.Relationships = relationships
		}
	}

	if isObject(header.Links) {
		links := Links{}
		if json.Unmarshal(header.Links, &links) == nil {
			r.Links = links
		}
	}

	return nil
}

// Relationship is a named reference from one resource to zero, one or many others.
// Cardinality is decided by the shape of the data member.
type Relationship struct {
	refs       []ResourceRef
	collection bool

	Links Links
}

// ToOne returns a relationship that points at a single resource
func ToOne(resourceType, id string) Relationship {
	return Relationship{refs: []ResourceRef{{Type: resourceType, ID: id}}}
}

// ToMany returns a relationship that points at a collection of resources
func ToMany(refs ...ResourceRef) Relationship {
	return Relationship{refs: append([]ResourceRef{}, refs...), collection: true}
}

// IsNull reports whether the relationship carries no data at all
func (r Relationship) IsNull() bool {
	return !r.collection && len(r.refs) == 0
}

func (r Relationship) IsCollection() bool {
	return r.collection
}

// Ref returns the referenced resource of a to-one relationship
func (r Relationship) Ref() (ResourceRef, bool) {
	if r.collection || len(r.refs) != 1 {
		return ResourceRef{}, false
	}
	return r.refs[0], true
}

// Refs returns the referenced resources of a to-many relationship, in wire order
func (r Relationship) Refs() []ResourceRef {
	if !r.collection {
		return nil
	}
	return r.refs
}

func (r Relationship) MarshalJSON() ([]byte, error) {
	var data any

	if r.collection {
		data = r.refs
	} else if len(r.refs) == 1 {
		data = r.refs[0]
	}

	return json.Marshal(struct {
		Data  any   `json:"data"`
		Links Links `json:"links,omitempty"`
	}{
		Data:  data,
		Links: r.Links,
	})
}

func (r *Relationship) UnmarshalJSON(data []byte) error {
	r.refs = nil
	r.collection = false
	r.Links = nil

	if !isObject(data) {
		return nil
	}

	body := struct {
		Data  json.RawMessage `json:"data"`
		Links json.RawMessage `json:"links"`
	}{}

	if json.Unmarshal(data, &body) != nil {
		return nil
	}

	if isObject(body.Links) {
		links := Links{}
		if json.Unmarshal(body.Links, &links) == nil {
			r.Links = links
		}
	}

	d := bytes.TrimSpace(body.Data)

	if isObject(d) {
		ref := ResourceRef{}
		if json.Unmarshal(d, &ref) == nil {
			r.refs = []ResourceRef{ref}
		}
	} else if len(d) > 0 && d[0] == '[' {
		items := []json.RawMessage{}
		if json.Unmarshal(d, &items) == nil {
			r.collection = true
			r.refs = make([]ResourceRef, 0, len(items))
			for _, item := range items {
				ref := ResourceRef{}
				if isObject(item) && json.Unmarshal(item, &ref) == nil {
					r.refs = append(r.refs, ref)
				}
			}
		}
	}

	return nil
}

// Link is a JSON:API link, given on the wire either as a plain URL or as an
// object with an href member
type Link struct {
	Href string         `json:"href"`
	Meta map[string]any `json:"meta,omitempty"`
}

type Links map[string]Link

func (l *Link) UnmarshalJSON(data []byte) error {
	d := bytes.TrimSpace(data)

	if len(d) > 0 && d[0] == '"' {
		return json.Unmarshal(d, &l.Href)
	}

	if isObject(d) {
		obj := struct {
			Href string         `json:"href"`
			Meta map[string]any `json:"meta"`
		}{}
		if json.Unmarshal(d, &obj) == nil {
			l.Href = obj.Href
			l.Meta = obj.Meta
		}
	}

	return nil
}

// Meta holds the non standard meta information of a document
type Meta map[string]any

func isObject(data []byte) bool {
	d := bytes.TrimSpace(data)
	return len(d) > 0 && d[0] == '{'
}
