package contents

import (
	"sort"
	"strings"
)

// Extra is the sentinel token flagging that an associate's true contents may
// extend beyond what is recorded, deferred to a post-hoc propagation pass.
// It is an ordinary element of the token set/sequence, not a distinct case.
const Extra = "__extra__"

// Contents is an associate's payload. Exactly one concrete representation
// ([NewUnordered] or [NewOrdered]) is used within a single reconciliation
// run; mixing the two in a set operation (Union, Intersect, Difference,
// SubsetOf, InsertGain, ExtractSegment) panics, while Equal compares keys
// and reports false.
type Contents interface {
	Union(other Contents) Contents
	Intersect(other Contents) Contents
	Difference(other Contents) Contents
	SubsetOf(other Contents) bool
	Equal(other Contents) bool
	IsEmpty() bool
	HasExtra() bool
	Tokens() []string
	Key() string

	// WithExtra returns these contents with the [Extra] sentinel token
	// added, a no-op if it is already present.
	WithExtra() Contents

	// InsertGain returns the contents obtained by adding gained's tokens.
	InsertGain(gained Contents) Contents

	// ExtractSegment splits off segment's tokens, returning the matched
	// portion and what remains.
	ExtractSegment(segment Contents) (result, remainder Contents)
}

// unordered is the set representation the reconciliation recurrence
// operates over.
type unordered map[string]struct{}

// NewUnordered builds an unordered Contents value from the given tokens.
func NewUnordered(tokens ...string) Contents {
	set := make(unordered, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return set
}

func asUnordered(c Contents) unordered {
	u, ok := c.(unordered)
	if !ok {
		panic("contents: mixed representations in one call")
	}
	return u
}

func (u unordered) Union(other Contents) Contents {
	o := asUnordered(other)
	out := make(unordered, len(u)+len(o))
	for t := range u {
		out[t] = struct{}{}
	}
	for t := range o {
		out[t] = struct{}{}
	}
	return out
}

func (u unordered) Intersect(other Contents) Contents {
	o := asUnordered(other)
	out := make(unordered)
	for t := range u {
		if _, ok := o[t]; ok {
			out[t] = struct{}{}
		}
	}
	return out
}

func (u unordered) Difference(other Contents) Contents {
	o := asUnordered(other)
	out := make(unordered)
	for t := range u {
		if _, ok := o[t]; !ok {
			out[t] = struct{}{}
		}
	}
	return out
}

func (u unordered) SubsetOf(other Contents) bool {
	o := asUnordered(other)
	for t := range u {
		if _, ok := o[t]; !ok {
			return false
		}
	}
	return true
}

func (u unordered) Equal(other Contents) bool {
	return u.Key() == other.Key()
}

func (u unordered) IsEmpty() bool { return len(u) == 0 }

func (u unordered) HasExtra() bool {
	_, ok := u[Extra]
	return ok
}

func (u unordered) Tokens() []string {
	out := make([]string, 0, len(u))
	for t := range u {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

func (u unordered) Key() string {
	return "{" + strings.Join(u.Tokens(), ",") + "}"
}

func (u unordered) InsertGain(gained Contents) Contents {
	return u.Union(gained)
}

func (u unordered) WithExtra() Contents {
	out := make(unordered, len(u)+1)
	for t := range u {
		out[t] = struct{}{}
	}
	out[Extra] = struct{}{}
	return out
}

func (u unordered) ExtractSegment(segment Contents) (result, remainder Contents) {
	seg := asUnordered(segment)
	res := make(unordered)
	rem := make(unordered)
	for t := range u {
		if _, ok := seg[t]; ok {
			res[t] = struct{}{}
		} else {
			rem[t] = struct{}{}
		}
	}
	return res, rem
}

// ordered is the sequence representation, kept alongside unordered for
// associate models where token order within an associate is meaningful
// (e.g. gene order within a synteny block). The reconciliation recurrence
// itself, grounded on the authoritative compute engine, only ever
// instantiates the unordered representation; ordered is provided to satisfy
// the dual-representation data model and is exercised by its own tests.
type ordered []string

// NewOrdered builds an ordered Contents value from the given tokens.
func NewOrdered(tokens ...string) Contents {
	return ordered(append([]string(nil), tokens...))
}

func asOrdered(c Contents) ordered {
	o, ok := c.(ordered)
	if !ok {
		panic("contents: mixed representations in one call")
	}
	return o
}

func toSet(o ordered) map[string]struct{} {
	set := make(map[string]struct{}, len(o))
	for _, t := range o {
		set[t] = struct{}{}
	}
	return set
}

func (o ordered) Union(other Contents) Contents {
	seen := make(map[string]struct{}, len(o))
	out := make(ordered, 0, len(o)+len(asOrdered(other)))
	for _, t := range o {
		if _, ok := seen[t]; !ok {
			seen[t] = struct{}{}
			out = append(out, t)
		}
	}
	for _, t := range asOrdered(other) {
		if _, ok := seen[t]; !ok {
			seen[t] = struct{}{}
			out = append(out, t)
		}
	}
	return out
}

func (o ordered) Intersect(other Contents) Contents {
	os := toSet(asOrdered(other))
	out := make(ordered, 0, len(o))
	for _, t := range o {
		if _, ok := os[t]; ok {
			out = append(out, t)
		}
	}
	return out
}

func (o ordered) Difference(other Contents) Contents {
	os := toSet(asOrdered(other))
	out := make(ordered, 0, len(o))
	for _, t := range o {
		if _, ok := os[t]; !ok {
			out = append(out, t)
		}
	}
	return out
}

func (o ordered) SubsetOf(other Contents) bool {
	os := toSet(asOrdered(other))
	for _, t := range o {
		if _, ok := os[t]; !ok {
			return false
		}
	}
	return true
}

func (o ordered) Equal(other Contents) bool {
	return o.Key() == other.Key()
}

func (o ordered) IsEmpty() bool { return len(o) == 0 }

func (o ordered) HasExtra() bool {
	for _, t := range o {
		if t == Extra {
			return true
		}
	}
	return false
}

func (o ordered) Tokens() []string { return append([]string(nil), o...) }

func (o ordered) Key() string { return "(" + strings.Join(o, ",") + ")" }

func (o ordered) InsertGain(gained Contents) Contents {
	return o.Union(gained)
}

func (o ordered) WithExtra() Contents {
	if o.HasExtra() {
		return o
	}
	out := append(ordered(nil), o...)
	return append(out, Extra)
}

func (o ordered) ExtractSegment(segment Contents) (result, remainder Contents) {
	segSet := toSet(asOrdered(segment))
	var res, rem ordered
	for _, t := range o {
		if _, ok := segSet[t]; ok {
			res = append(res, t)
		} else {
			rem = append(rem, t)
		}
	}
	return res, rem
}
