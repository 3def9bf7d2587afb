package renamer

import (
	"strconv"

	"github.com/samber/lo"
)

// GenericName returns the synthetic name of the i-th (1-based) object.
func GenericName(prefix string, i int) string {
	return prefix + strconv.Itoa(i)
}

// Entry is one original name, the generic name assigned to it, and what
// happened when the rename was attempted.
type Entry struct {
	Old     string
	New     string
	Applied bool  // the rename statement succeeded
	Err     error // *RenameError when the statement failed
}

// LiveName returns the name that identifies the object in the database
// right now: the new name once applied, the original otherwise.
func (e Entry) LiveName() string {
	if e.Applied {
		return e.New
	}
	return e.Old
}

// Mapping is an ordered association of original names to generic names.
// Order is discovery order. It always holds the intended assignment,
// whether or not each rename was applied.
type Mapping struct {
	entries []Entry
	index   map[string]int
}

// NewMapping returns an empty mapping.
func NewMapping() *Mapping {
	return &Mapping{index: make(map[string]int)}
}

// Add appends oldName → newName. It returns false, leaving the mapping
// unchanged, if oldName is already mapped.
func (m *Mapping) Add(oldName, newName string) bool {
	if _, exists := m.index[oldName]; exists {
		return false
	}
	m.index[oldName] = len(m.entries)
	m.entries = append(m.entries, Entry{Old: oldName, New: newName})
	return true
}

// Get returns the generic name assigned to oldName.
func (m *Mapping) Get(oldName string) (string, bool) {
	i, ok := m.index[oldName]
	if !ok {
		return "", false
	}
	return m.entries[i].New, true
}

// Len returns the number of entries.
func (m *Mapping) Len() int {
	return len(m.entries)
}

// Entries returns a copy of the entries in discovery order.
func (m *Mapping) Entries() []Entry {
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)
	return out
}

// Keys returns the original names in discovery order.
func (m *Mapping) Keys() []string {
	return lo.Map(m.entries, func(e Entry, _ int) string { return e.Old })
}

// Values returns the generic names in discovery order.
func (m *Mapping) Values() []string {
	return lo.Map(m.entries, func(e Entry, _ int) string { return e.New })
}

// Applied returns the number of entries whose rename succeeded.
func (m *Mapping) Applied() int {
	return lo.CountBy(m.entries, func(e Entry) bool { return e.Applied })
}

// Failures returns the rename errors recorded on the entries.
func (m *Mapping) Failures() []error {
	return lo.FilterMap(m.entries, func(e Entry, _ int) (error, bool) {
		return e.Err, e.Err != nil
	})
}

func (m *Mapping) markApplied(oldName string) {
	if i, ok := m.index[oldName]; ok {
		m.entries[i].Applied = true
	}
}

func (m *Mapping) markFailed(oldName string, err error) {
	if i, ok := m.index[oldName]; ok {
		m.entries[i].Err = err
	}
}
