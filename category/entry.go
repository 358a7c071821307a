package category

import (
	"sort"

	"github.com/emirpasic/gods/sets/treeset"
)

// Entry maps a part role to the set of concrete members filling it.
type Entry struct {
	roles map[string]*treeset.Set
}

// NewEntry returns an empty entry.
func NewEntry() *Entry {
	return &Entry{roles: make(map[string]*treeset.Set)}
}

// EntryOf builds an entry from a plain role → members map.
func EntryOf(m map[string][]string) *Entry {
	e := NewEntry()
	for role, members := range m {
		e.Add(role, members...)
	}

	return e
}

// Add records members under role. A role added without members is kept so
// that role-only categories survive a round trip.
func (e *Entry) Add(role string, members ...string) {
	if e.roles == nil {
		e.roles = make(map[string]*treeset.Set)
	}
	set, ok := e.roles[role]
	if !ok {
		set = treeset.NewWithStringComparator()
		e.roles[role] = set
	}
	for _, m := range members {
		set.Add(m)
	}
}

// Roles returns the role names, sorted.
func (e *Entry) Roles() []string {
	if e == nil {
		return nil
	}
	out := make([]string, 0, len(e.roles))
	for role := range e.roles {
		out = append(out, role)
	}
	sort.Strings(out)

	return out
}

// HasRole reports whether role is present.
func (e *Entry) HasRole(role string) bool {
	if e == nil {
		return false
	}
	_, ok := e.roles[role]

	return ok
}

// Members returns the members of role, sorted.
func (e *Entry) Members(role string) []string {
	if e == nil {
		return nil
	}
	set, ok := e.roles[role]
	if !ok {
		return nil
	}

	return toStrings(set.Values())
}

// AllMembers returns the distinct members over every role, sorted.
func (e *Entry) AllMembers() []string {
	all := treeset.NewWithStringComparator()
	if e != nil {
		for _, set := range e.roles {
			all.Add(set.Values()...)
		}
	}

	return toStrings(all.Values())
}

// IsEmpty reports whether the entry has no roles.
func (e *Entry) IsEmpty() bool { return e == nil || len(e.roles) == 0 }

// Equal reports whether both entries hold the same roles with the same members.
func (e *Entry) Equal(o *Entry) bool {
	if e.IsEmpty() || o.IsEmpty() {
		return e.IsEmpty() && o.IsEmpty()
	}
	if len(e.roles) != len(o.roles) {
		return false
	}
	for role, set := range e.roles {
		other, ok := o.roles[role]
		if !ok || set.Size() != other.Size() {
			return false
		}
		if !other.Contains(set.Values()...) {
			return false
		}
	}

	return true
}

// Clone returns a deep copy; a nil receiver yields an empty entry.
func (e *Entry) Clone() *Entry {
	out := NewEntry()
	if e == nil {
		return out
	}
	for role, set := range e.roles {
		out.Add(role, toStrings(set.Values())...)
	}

	return out
}

// Intersect keeps the roles present in both entries with the members common
// to both. Roles whose intersection is empty are dropped.
func (e *Entry) Intersect(o *Entry) *Entry {
	out := NewEntry()
	if e.IsEmpty() || o.IsEmpty() {
		return out
	}
	for role, set := range e.roles {
		other, ok := o.roles[role]
		if !ok {
			continue
		}
		var common []string
		for _, m := range toStrings(set.Values()) {
			if other.Contains(m) {
				common = append(common, m)
			}
		}
		if len(common) > 0 {
			out.Add(role, common...)
		}
	}

	return out
}

// Union merges the roles and members of both entries.
func (e *Entry) Union(o *Entry) *Entry {
	out := e.Clone()
	if o == nil {
		return out
	}
	for role, set := range o.roles {
		out.Add(role, toStrings(set.Values())...)
	}

	return out
}

// SharesRole reports whether the entries have at least one role in common.
func (e *Entry) SharesRole(o *Entry) bool {
	if e.IsEmpty() || o.IsEmpty() {
		return false
	}
	for role := range e.roles {
		if _, ok := o.roles[role]; ok {
			return true
		}
	}

	return false
}

// ToMap renders the entry as a plain role → sorted members map.
func (e *Entry) ToMap() map[string][]string {
	out := make(map[string][]string)
	if e == nil {
		return out
	}
	for role, set := range e.roles {
		members := toStrings(set.Values())
		if members == nil {
			members = []string{}
		}
		out[role] = members
	}

	return out
}

func toStrings(values []interface{}) []string {
	if len(values) == 0 {
		return nil
	}
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = v.(string)
	}

	return out
}
