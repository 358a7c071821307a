package category

import (
	"encoding/json"
	"sort"

	"gopkg.in/yaml.v3"
)

// Map associates atom names with their category entry.
type Map map[string]*Entry

// Get returns the entry for atom, or an empty entry when absent.
func (m Map) Get(atom string) *Entry {
	if e, ok := m[atom]; ok && e != nil {
		return e
	}

	return NewEntry()
}

// Has reports whether atom carries an entry.
func (m Map) Has(atom string) bool {
	_, ok := m[atom]

	return ok
}

// Set replaces the entry of atom with a copy of e.
func (m Map) Set(atom string, e *Entry) { m[atom] = e.Clone() }

// Merge unions e into the entry already stored for atom.
func (m Map) Merge(atom string, e *Entry) {
	if cur, ok := m[atom]; ok {
		m[atom] = cur.Union(e)
		return
	}
	m[atom] = e.Clone()
}

// Atoms returns the atom names, sorted.
func (m Map) Atoms() []string {
	out := make([]string, 0, len(m))
	for atom := range m {
		out = append(out, atom)
	}
	sort.Strings(out)

	return out
}

// Restrict returns a copy holding only the listed atoms.
func (m Map) Restrict(atoms []string) Map {
	out := make(Map, len(atoms))
	for _, atom := range atoms {
		if e, ok := m[atom]; ok {
			out[atom] = e.Clone()
		}
	}

	return out
}

// Clone returns a deep copy (never nil).
func (m Map) Clone() Map {
	out := make(Map, len(m))
	for atom, e := range m {
		out[atom] = e.Clone()
	}

	return out
}

// Equal reports whether both maps hold equal entries for the same atoms.
func (m Map) Equal(o Map) bool {
	if len(m) != len(o) {
		return false
	}
	for atom, e := range m {
		other, ok := o[atom]
		if !ok || !e.Equal(other) {
			return false
		}
	}

	return true
}

// FromPlain converts a nested plain map into a Map.
func FromPlain(p map[string]map[string][]string) Map {
	out := make(Map, len(p))
	for atom, roles := range p {
		out[atom] = EntryOf(roles)
	}

	return out
}

// ToPlain converts the map into nested plain maps.
func (m Map) ToPlain() map[string]map[string][]string {
	out := make(map[string]map[string][]string, len(m))
	for atom, e := range m {
		out[atom] = e.ToMap()
	}

	return out
}

// MarshalYAML implements yaml.Marshaler.
func (e *Entry) MarshalYAML() (interface{}, error) { return e.ToMap(), nil }

// UnmarshalYAML implements yaml.Unmarshaler.
func (e *Entry) UnmarshalYAML(value *yaml.Node) error {
	var plain map[string][]string
	if err := value.Decode(&plain); err != nil {
		return err
	}
	*e = *EntryOf(plain)

	return nil
}

// MarshalJSON implements json.Marshaler.
func (e *Entry) MarshalJSON() ([]byte, error) { return json.Marshal(e.ToMap()) }

// UnmarshalJSON implements json.Unmarshaler.
func (e *Entry) UnmarshalJSON(data []byte) error {
	var plain map[string][]string
	if err := json.Unmarshal(data, &plain); err != nil {
		return err
	}
	*e = *EntryOf(plain)

	return nil
}
