package domain

// Keyed is implemented by every embedded-collection entry type. The key is
// the value removals and duplicate checks resolve against: the entry's own
// id for comments, experience, and education, and the liking user's id for
// likes (which carry no id of their own).
type Keyed interface {
	EntryID() string
}

// InsertFront places entry at the head of the sequence so the newest entry
// always occupies index 0. Display order depends on this.
func InsertFront[T Keyed](list []T, entry T) []T {
	out := make([]T, 0, len(list)+1)
	out = append(out, entry)
	return append(out, list...)
}

// FindByKey locates the entry whose key equals id. The boolean result is the
// only signal for absence; no sentinel index is ever produced.
func FindByKey[T Keyed](list []T, id string) (T, int, bool) {
	for i, e := range list {
		if e.EntryID() == id {
			return e, i, true
		}
	}
	var zero T
	return zero, -1, false
}

// ContainsKey reports whether an entry with the given key exists.
func ContainsKey[T Keyed](list []T, id string) bool {
	_, _, ok := FindByKey(list, id)
	return ok
}

// RemoveByKey removes the single entry whose key equals id. When the key is
// absent the list is returned unchanged and ok is false; callers must treat
// that as a failure, never as a silent no-op.
func RemoveByKey[T Keyed](list []T, id string) ([]T, bool) {
	_, idx, ok := FindByKey(list, id)
	if !ok {
		return list, false
	}
	out := make([]T, 0, len(list)-1)
	out = append(out, list[:idx]...)
	return append(out, list[idx+1:]...), true
}
