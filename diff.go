package jv

import "sort"

// DiffKind tags one structural difference.
type DiffKind int

// Difference kinds.
const (
	DiffAdded DiffKind = iota
	DiffRemoved
	DiffChanged
)

func (k DiffKind) String() string {
	switch k {
	case DiffAdded:
		return "added"
	case DiffRemoved:
		return "removed"
	case DiffChanged:
		return "changed"
	}
	return "unknown"
}

// DiffEntry is one structural difference between two documents at a path.
// Added entries have a nil Before; Removed entries have a nil After; Changed
// entries carry both sides.
type DiffEntry struct {
	Path   Path
	Kind   DiffKind
	Before *Value
	After  *Value
}

// Diff recursively compares two values and returns an ordered list of typed
// differences. Object keys are visited in lexicographic order at every level
// so the output is deterministic regardless of source formatting; array
// indices are visited in order. Equal documents produce an empty result.
func Diff(before, after *Value) []DiffEntry {
	return diffValues(Path{}, before, after, nil)
}

func diffValues(path Path, before, after *Value, out []DiffEntry) []DiffEntry {
	if before.Kind() != after.Kind() {
		return append(out, DiffEntry{Path: path, Kind: DiffChanged, Before: before, After: after})
	}

	switch before.Kind() {
	case KindObject:
		keys := unionKeys(before, after)
		for _, key := range keys {
			keyPath := path.Child(key)
			bv, inBefore := before.Get(key)
			av, inAfter := after.Get(key)
			switch {
			case !inBefore:
				out = append(out, DiffEntry{Path: keyPath, Kind: DiffAdded, After: av})
			case !inAfter:
				out = append(out, DiffEntry{Path: keyPath, Kind: DiffRemoved, Before: bv})
			case !bv.Equal(av):
				if bv.IsContainer() && av.IsContainer() {
					out = diffValues(keyPath, bv, av, out)
				} else {
					out = append(out, DiffEntry{Path: keyPath, Kind: DiffChanged, Before: bv, After: av})
				}
			}
		}

	case KindArray:
		max := before.Len()
		if after.Len() > max {
			max = after.Len()
		}
		for i := 0; i < max; i++ {
			elemPath := path.Element(i)
			bv := before.Elem(i)
			av := after.Elem(i)
			switch {
			case bv == nil:
				out = append(out, DiffEntry{Path: elemPath, Kind: DiffAdded, After: av})
			case av == nil:
				out = append(out, DiffEntry{Path: elemPath, Kind: DiffRemoved, Before: bv})
			case !bv.Equal(av):
				if bv.IsContainer() && av.IsContainer() {
					out = diffValues(elemPath, bv, av, out)
				} else {
					out = append(out, DiffEntry{Path: elemPath, Kind: DiffChanged, Before: bv, After: av})
				}
			}
		}

	default:
		if !before.Equal(after) {
			out = append(out, DiffEntry{Path: path, Kind: DiffChanged, Before: before, After: after})
		}
	}

	return out
}

func unionKeys(a, b *Value) []string {
	seen := make(map[string]bool, a.Len()+b.Len())
	keys := make([]string, 0, a.Len()+b.Len())
	for _, m := range a.Members() {
		if !seen[m.Key] {
			seen[m.Key] = true
			keys = append(keys, m.Key)
		}
	}
	for _, m := range b.Members() {
		if !seen[m.Key] {
			seen[m.Key] = true
			keys = append(keys, m.Key)
		}
	}
	sort.Strings(keys)
	return keys
}
