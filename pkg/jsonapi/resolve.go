package jsonapi

const (
	// MediaImageField is the relationship (or attribute) on a media resource that holds the image file
	MediaImageField string = "field_media_image"
)

// Index resolves relationship references against the included resources of
// a single response. It is built once per response and never follows
// references into other responses.
type Index struct {
	resources map[ResourceRef]Resource
}

// NewIndex builds an index over included. When the same (type, id) occurs
// more than once the first occurrence wins.
func NewIndex(included []Resource) Index {
	idx := Index{
		resources: make(map[ResourceRef]Resource, len(included)),
	}

	for _, r := range included {
		ref := r.Ref()
		if _, exists := idx.resources[ref]; !exists {
			idx.resources[ref] = r
		}
	}

	return idx
}

// Len returns the number of distinct resources in the index
func (idx Index) Len() int {
	return len(idx.resources)
}

func (idx Index) Lookup(ref ResourceRef) (Resource, bool) {
	r, ok := idx.resources[ref]
	return r, ok
}

// One resolves a to-one relationship. A missing relationship, null data,
// to-many data or a reference without a match all resolve to nothing.
func (idx Index) One(rel *Relationship) (Resource, bool) {
	if rel == nil {
		return Resource{}, false
	}

	ref, ok := rel.Ref()
	if !ok {
		return Resource{}, false
	}

	return idx.Lookup(ref)
}

// Many resolves a to-many relationship in relationship order. References
// without a match are skipped.
func (idx Index) Many(rel *Relationship) []Resource {
	if rel == nil {
		return []Resource{}
	}

	refs := rel.Refs()
	result := make([]Resource, 0, len(refs))

	for _, ref := range refs {
		if r, ok := idx.Lookup(ref); ok {
			result = append(result, r)
		}
	}

	return result
}

// MediaURL resolves an image field through its media resource. If the media
// resource relates to a file resource the url is read from the file's uri
// attribute, otherwise from a field_media_image attribute on the media itself.
func (idx Index) MediaURL(rel *Relationship) (string, bool) {
	media, ok := idx.One(rel)
	if !ok {
		return "", false
	}

	if fileRel := media.Relationship(MediaImageField); fileRel != nil && !fileRel.IsNull() {
		file, ok := idx.One(fileRel)
		if !ok {
			return "", false
		}
		return stringMember(file.Attributes["uri"], "url")
	}

	return stringMember(media.Attributes[MediaImageField], "url")
}

func stringMember(v any, name string) (string, bool) {
	obj, ok := v.(map[string]any)
	if !ok {
		return "", false
	}

	s, ok := obj[name].(string)
	if !ok || s == "" {
		return "", false
	}

	return s, true
}
