package soundboard

// MergeResult holds the reconciled listing and counts describing how it was built.
type MergeResult struct {
	// Sounds is the listing to persist: fresh sounds in fetch order,
	// followed by stale sounds in catalog order.
	Sounds []Sound

	// Kept counts sounds present in both the catalog and the fetch.
	Kept int

	// Added counts sounds present only in the fetch.
	Added int

	// Stale counts sounds present only in the catalog.
	Stale int
}

// Merge reconciles a previously saved listing with a freshly fetched one.
//
// Every sound in fresh appears first, in fetch order, with the fetched field
// values. Sounds missing from fresh are not deleted; they follow in their
// original catalog order. A fetch that stopped early therefore never loses
// catalog entries.
func Merge(old, fresh []Sound) *MergeResult {
	oldIndex := indexSounds(old)
	freshIndex := indexSounds(fresh)

	result := &MergeResult{
		Sounds: make([]Sound, 0, len(freshIndex.keys)+len(oldIndex.keys)),
	}

	var stale []Sound
	for _, key := range oldIndex.keys {
		if _, ok := freshIndex.sounds[key]; ok {
			result.Kept++
			continue
		}
		stale = append(stale, oldIndex.sounds[key])
	}

	for _, key := range freshIndex.keys {
		if _, ok := oldIndex.sounds[key]; !ok {
			result.Added++
		}
		result.Sounds = append(result.Sounds, freshIndex.sounds[key])
	}

	result.Stale = len(stale)
	result.Sounds = append(result.Sounds, stale...)
	return result
}

// soundIndex is an insertion-ordered map of sounds keyed by MP3.
// Keys keep their first position; values are last-write-wins.
type soundIndex struct {
	keys   []string
	sounds map[string]Sound
}

func indexSounds(sounds []Sound) soundIndex {
	idx := soundIndex{sounds: make(map[string]Sound, len(sounds))}
	for _, s := range sounds {
		if _, ok := idx.sounds[s.MP3]; !ok {
			idx.keys = append(idx.keys, s.MP3)
		}
		idx.sounds[s.MP3] = s
	}
	return idx
}
