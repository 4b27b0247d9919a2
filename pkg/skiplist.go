package assethashmap

import (
	"strings"

	zcsl "github.com/mattkeenan/zerocopyskiplist"
)

// Skiplist contexts: each manifest entry records whether its digest is shared
const (
	UniqueContext    = "unique"
	DuplicateContext = "duplicate"
)

// manifestEntry is one key/digest pair held by the skiplist
type manifestEntry struct {
	Key  string
	Hash string
}

// skiplistWrapper keeps manifest entries sorted by key
type skiplistWrapper struct {
	skiplist *zcsl.ZeroCopySkiplist[manifestEntry, string, string]
}

// newSkiplistWrapper creates an empty skiplist keyed by manifestEntry.Key
func newSkiplistWrapper(maxLevels int) *skiplistWrapper {
	if maxLevels < 8 {
		maxLevels = 16
	}

	getKeyFromItem := func(entry *manifestEntry) string {
		return entry.Key
	}
	getItemSize := func(entry *manifestEntry) int {
		return len(entry.Key) + len(entry.Hash)
	}
	cmpKey := func(a, b string) int {
		return strings.Compare(a, b)
	}

	return &skiplistWrapper{
		skiplist: zcsl.MakeZeroCopySkiplist[manifestEntry, string, string](
			maxLevels,
			getKeyFromItem,
			getItemSize,
			cmpKey,
		),
	}
}

// Insert adds an entry with the given context
func (sw *skiplistWrapper) Insert(entry manifestEntry, context string) bool {
	return sw.skiplist.Insert(&entry, context)
}

// Find looks up an entry by key
func (sw *skiplistWrapper) Find(key string) (*manifestEntry, string) {
	node, context := sw.skiplist.Find(key)
	if node == nil {
		return nil, ""
	}
	return node.Item(), context
}

// ForEach iterates in key order until callback returns false
func (sw *skiplistWrapper) ForEach(callback func(*manifestEntry, string) bool) {
	for current := sw.skiplist.First(); current != nil; current = current.Next() {
		if !callback(current.Item(), current.Context()) {
			break
		}
	}
}

// Length returns the number of entries
func (sw *skiplistWrapper) Length() int {
	return sw.skiplist.Length()
}
