package assethashmap

import "sort"

// DuplicateGroup represents a group of files with the same hash
type DuplicateGroup struct {
	Hash  string   `json:"hash"`
	Files []string `json:"files"`
	Count int      `json:"count"`
}

// FindDuplicates returns groups of keys sharing a digest, ordered by digest
// with the keys of each group sorted
func FindDuplicates(m HashMap) []DuplicateGroup {
	byHash := make(map[string][]string)
	for _, key := range m.Keys() {
		hash := m[key]
		byHash[hash] = append(byHash[hash], key)
	}

	var result []DuplicateGroup
	for hash, files := range byHash {
		if len(files) > 1 {
			result = append(result, DuplicateGroup{
				Hash:  hash,
				Files: files,
				Count: len(files),
			})
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Hash < result[j].Hash
	})
	return result
}
