package expr

import (
	"strings"

	"github.com/casengine/core/domain"
	"github.com/casengine/core/symbol"
)

var headDictionary = symbol.New("Dictionary")

// DictionaryExpr boxes spec 3.1's Dictionary variant: an ordered,
// string-keyed (by expression identity) map. It is grounded on the
// teacher's core/association.go Association type, which keeps an
// insertion-order key slice alongside a hash-bucket map for lookup;
// unlike the teacher's copy-on-write Set, this type is built once by
// the boxer and then treated as immutable like every other Expression.
type DictionaryExpr struct {
	order  []Expression // keys, insertion order
	values map[string]Expression
	meta   *Metadata
}

func hashKeyOf(e Expression) string { return e.String() }

// NewDictionary builds a dictionary from key/value pairs in order,
// later duplicate keys overwriting earlier ones (matching Association.Set).
func NewDictionary(keys, vals []Expression) *DictionaryExpr {
	d := &DictionaryExpr{values: make(map[string]Expression, len(keys))}
	for i, k := range keys {
		hk := hashKeyOf(k)
		if _, exists := d.values[hk]; !exists {
			d.order = append(d.order, k)
		}
		d.values[hk] = vals[i]
	}
	return d
}

func (d *DictionaryExpr) Kind() Kind            { return KindDictionary }
func (d *DictionaryExpr) Head() symbol.Symbol   { return headDictionary }
func (d *DictionaryExpr) IsAtom() bool          { return false }
func (d *DictionaryExpr) IsCanonical() bool     { return true }
func (d *DictionaryExpr) Metadata() *Metadata   { return d.meta }
func (d *DictionaryExpr) Domain() domain.Domain { return domain.Lit(domain.Dictionaries) }

func (d *DictionaryExpr) String() string {
	var b strings.Builder
	b.WriteString("Dictionary(")
	for i, k := range d.order {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(k.String())
		b.WriteString(" -> ")
		b.WriteString(d.values[hashKeyOf(k)].String())
	}
	b.WriteByte(')')
	return b.String()
}

func (d *DictionaryExpr) isSame(o Expression) bool {
	other, ok := o.(*DictionaryExpr)
	if !ok || len(d.order) != len(other.order) {
		return false
	}
	for _, k := range d.order {
		hk := hashKeyOf(k)
		ov, exists := other.values[hk]
		if !exists || !d.values[hk].isSame(ov) {
			return false
		}
	}
	return true
}

// Get looks up the value bound to a key by structural identity.
func (d *DictionaryExpr) Get(key Expression) (Expression, bool) {
	v, ok := d.values[hashKeyOf(key)]
	return v, ok
}

func (d *DictionaryExpr) Keys() []Expression { return d.order }

// Set returns a new dictionary with key bound to value, preserving
// insertion order of existing keys (spec 3.1 treats Dictionary as
// persistent/immutable, so mutation always produces a fresh value).
func (d *DictionaryExpr) Set(key, value Expression) *DictionaryExpr {
	nd := &DictionaryExpr{values: make(map[string]Expression, len(d.values)+1)}
	nd.order = append(nd.order, d.order...)
	for k, v := range d.values {
		nd.values[k] = v
	}
	hk := hashKeyOf(key)
	if _, exists := nd.values[hk]; !exists {
		nd.order = append(nd.order, key)
	}
	nd.values[hk] = value
	return nd
}
