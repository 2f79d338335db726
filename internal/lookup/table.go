// =============================================================================
// Label IDoc Converter - Characteristic Lookup
// =============================================================================
//
// The lookup table maps the symbolic value of a characteristic (as typed in
// the spreadsheet, e.g. "WECK_LOGO") to the base name of the graphic asset
// printed on the label (e.g. "Wecklogo").
//
// TABLE INVARIANTS:
//   - keys are sorted by case-insensitive comparison
//   - no two keys compare equal
//   Both are checked when the table is built. A broken table is a startup
//   failure, never a per-row error.
//
// A value missing from the table is not an error: callers fall back to the
// raw value as the asset name.
//
// =============================================================================

package lookup

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrUnsorted is returned when table keys are out of order.
	ErrUnsorted = errors.New("lookup table is not sorted")

	// ErrDuplicate is returned when two keys compare equal.
	ErrDuplicate = errors.New("lookup table has duplicate keys")
)

// AssetExt is appended to every asset base name.
const AssetExt = ".tif"

// Entry is one (symbolic value, asset base name) pair.
type Entry struct {
	Key   string
	Asset string
}

// Table is an immutable, sorted characteristic lookup table.
type Table struct {
	entries []Entry
}

// Compare orders keys case-insensitively. It is the order the table is
// sorted by and searched with.
func Compare(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

// New builds a Table, verifying order and uniqueness.
func New(entries []Entry) (*Table, error) {
	for i := 1; i < len(entries); i++ {
		switch c := Compare(entries[i-1].Key, entries[i].Key); {
		case c == 0:
			return nil, fmt.Errorf("%w: %q and %q", ErrDuplicate, entries[i-1].Key, entries[i].Key)
		case c > 0:
			return nil, fmt.Errorf("%w: %q sorts after %q", ErrUnsorted, entries[i-1].Key, entries[i].Key)
		}
	}

	t := &Table{entries: make([]Entry, len(entries))}
	copy(t.entries, entries)
	return t, nil
}

// Default builds the built-in table.
func Default() (*Table, error) {
	return New(defaultEntries)
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// Entries returns a copy of the entries in table order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Find returns the asset base name for a symbolic value using binary search.
func (t *Table) Find(key string) (string, bool) {
	i := sort.Search(len(t.entries), func(i int) bool {
		return Compare(t.entries[i].Key, key) >= 0
	})
	if i < len(t.entries) && Compare(t.entries[i].Key, key) == 0 {
		return t.entries[i].Asset, true
	}
	return "", false
}

// Asset returns the asset file name for a symbolic value: the table entry
// when present, otherwise the raw value, with AssetExt appended.
func (t *Table) Asset(value string) string {
	if asset, ok := t.Find(value); ok {
		return asset + AssetExt
	}
	return value + AssetExt
}
