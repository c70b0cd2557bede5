package query

import (
	"maps"
	"net/url"
	"slices"
	"strconv"
	"strings"
)

type Operator string

const (
	Equal          Operator = "="
	NotEqual       Operator = "!="
	GreaterThan    Operator = ">"
	LessThan       Operator = "<"
	GreaterOrEqual Operator = ">="
	LessOrEqual    Operator = "<="
	In             Operator = "IN"
	NotIn          Operator = "NOT IN"
	Contains       Operator = "CONTAINS"
	StartsWith     Operator = "STARTS_WITH"
)

type filterKind int

const (
	literal filterKind = iota
	list
	scalarCondition
	listCondition
)

// Filter is the right hand side of a filter[key] entry. It is either a
// literal value, a list of values or an explicit operator condition.
type Filter struct {
	kind     filterKind
	operator Operator
	values   []string
}

// Eq filters on equality, encoded as filter[key]=value
func Eq(value string) Filter {
	return Filter{kind: literal, operator: Equal, values: []string{value}}
}

// AnyOf filters on membership, encoded as an IN condition with enumerated values
func AnyOf(values ...string) Filter {
	return Filter{kind: list, operator: In, values: slices.Clone(values)}
}

// Condition filters with an explicit operator against a single value
func Condition(op Operator, value string) Filter {
	return Filter{kind: scalarCondition, operator: op, values: []string{value}}
}

// ConditionList filters with an explicit operator against a list of values
func ConditionList(op Operator, values ...string) Filter {
	return Filter{kind: listCondition, operator: op, values: slices.Clone(values)}
}

func (f Filter) Operator() Operator {
	return f.operator
}

// Values returns a copy of the filter values in the order they were given
func (f Filter) Values() []string {
	return slices.Clone(f.values)
}

func (f Filter) encode(key string, add func(k, v string)) {
	if len(f.values) == 0 {
		return
	}

	prefix := "filter[" + key + "]"

	switch f.kind {
	case literal:
		add(prefix, f.values[0])
	case scalarCondition:
		add(prefix+"[operator]", string(f.operator))
		add(prefix+"[value]", f.values[0])
	case list, listCondition:
		add(prefix+"[operator]", string(f.operator))
		for i, v := range f.values {
			add(prefix+"[value]["+strconv.Itoa(i)+"]", v)
		}
	}
}

type Page struct {
	Limit  int
	Offset int
}

// Params describes a JSON:API collection query. Every facet is optional and
// an empty facet is left out of the encoded query string.
type Params struct {
	Filter  map[string]Filter
	Include []string
	Sort    []string
	Page    Page
	Fields  map[string][]string
}

type DecoratorFunc func(*Params)

func New(decorators ...DecoratorFunc) Params {
	p := Params{}
	for _, decorate := range decorators {
		decorate(&p)
	}
	return p
}

func Where(key string, f Filter) DecoratorFunc {
	return func(p *Params) {
		p.SetFilter(key, f)
	}
}

func Include(relationships ...string) DecoratorFunc {
	return func(p *Params) {
		p.Include = append(p.Include, relationships...)
	}
}

// SortBy appends sort fields. A leading - sorts the field in descending order.
func SortBy(fields ...string) DecoratorFunc {
	return func(p *Params) {
		p.Sort = append(p.Sort, fields...)
	}
}

func Limit(limit int) DecoratorFunc {
	return func(p *Params) {
		p.Page.Limit = limit
	}
}

func Offset(offset int) DecoratorFunc {
	return func(p *Params) {
		p.Page.Offset = offset
	}
}

func Fields(resourceType string, fields ...string) DecoratorFunc {
	return func(p *Params) {
		if p.Fields == nil {
			p.Fields = map[string][]string{}
		}
		p.Fields[resourceType] = append(p.Fields[resourceType], fields...)
	}
}

// SetFilter adds or replaces the filter for key
func (p *Params) SetFilter(key string, f Filter) {
	if p.Filter == nil {
		p.Filter = map[string]Filter{}
	}
	p.Filter[key] = f
}

// RemoveFilter removes the filter for key along with every filter whose key
// would be encoded below filter[key], such as "field_brand.id][value"
func (p *Params) RemoveFilter(key string) {
	for k := range p.Filter {
		if k == key || strings.HasPrefix(k, key+"]") {
			delete(p.Filter, k)
		}
	}
}

// Clone returns a copy of p that shares no maps or slices with it
func (p Params) Clone() Params {
	c := Params{
		Include: slices.Clone(p.Include),
		Sort:    slices.Clone(p.Sort),
		Page:    p.Page,
	}

	if p.Filter != nil {
		c.Filter = make(map[string]Filter, len(p.Filter))
		for k, f := range p.Filter {
			f.values = slices.Clone(f.values)
			c.Filter[k] = f
		}
	}

	if p.Fields != nil {
		c.Fields = make(map[string][]string, len(p.Fields))
		for k, v := range p.Fields {
			c.Fields[k] = slices.Clone(v)
		}
	}

	return c
}

type pair struct {
	key   string
	value string
}

func (p Params) pairs() []pair {
	result := []pair{}
	add := func(k, v string) {
		result = append(result, pair{key: k, value: v})
	}

	for _, key := range slices.Sorted(maps.Keys(p.Filter)) {
		p.Filter[key].encode(key, add)
	}

	if len(p.Include) > 0 {
		add("include", strings.Join(p.Include, ","))
	}

	if len(p.Sort) > 0 {
		add("sort", strings.Join(p.Sort, ","))
	}

	if p.Page.Limit > 0 {
		add("page[limit]", strconv.Itoa(p.Page.Limit))
	}

	if p.Page.Offset > 0 {
		add("page[offset]", strconv.Itoa(p.Page.Offset))
	}

	for _, resourceType := range slices.Sorted(maps.Keys(p.Fields)) {
		add("fields["+resourceType+"]", strings.Join(p.Fields[resourceType], ","))
	}

	return result
}

// Values returns the query parameters described by p
func (p Params) Values() url.Values {
	v := url.Values{}
	for _, kv := range p.pairs() {
		v.Add(kv.key, kv.value)
	}
	return v
}

// Encode returns the query string described by p. Facets are written in a
// fixed order (filter, include, sort, page, fields) so that equal params
// always produce equal strings.
func (p Params) Encode() string {
	sb := strings.Builder{}

	for i, kv := range p.pairs() {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(kv.key))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(kv.value))
	}

	return sb.String()
}

// URL appends the encoded params to path
func URL(path string, p Params) string {
	q := p.Encode()
	if q == "" {
		return path
	}

	if strings.Contains(path, "?") {
		return path + "&" + q
	}

	return path + "?" + q
}
