package chapters

import (
	"strconv"
	"strings"
)

// Selection describes which chapters to download. Indices are 1-based
// positions in the oldest-first chapter list.
type Selection struct {
	Chapter      string
	Range        string
	List         string
	ExcludeRange string
	ExcludeList  string
}

func (s Selection) IsEmpty() bool {
	return s.Chapter == "" && s.Range == "" && s.List == ""
}

// Select applies the include filters first and then removes anything named
// by the exclude filters.
func Select(all []Chapter, sel Selection) []Chapter {
	picked := Filter(all, sel.Chapter, sel.Range, sel.List)
	if sel.ExcludeRange == "" && sel.ExcludeList == "" {
		return picked
	}

	drop := map[string]bool{}
	if sel.ExcludeRange != "" {
		for _, c := range FilterChapterRange(all, sel.ExcludeRange) {
			drop[c.URL] = true
		}
	}
	if sel.ExcludeList != "" {
		for _, c := range FilterChapterList(all, sel.ExcludeList) {
			drop[c.URL] = true
		}
	}

	out := make([]Chapter, 0, len(picked))
	for _, c := range picked {
		if !drop[c.URL] {
			out = append(out, c)
		}
	}

	return out
}

// Filter picks a single chapter (by label, falling back to index), a range
// of indices, or a comma separated list of indices. With no filter it
// returns all chapters.
func Filter(all []Chapter, chapter string, rng string, list string) []Chapter {
	if chapter != "" {
		if byLabel := FilterChaptersByLabel(all, chapter); len(byLabel) > 0 {
			return byLabel
		}
		if idx, err := atoi(chapter); err == nil && idx > 0 && idx <= len(all) {
			return []Chapter{all[idx-1]}
		}
		return []Chapter{}
	}
	if rng != "" {
		return FilterChapterRange(all, rng)
	}
	if list != "" {
		return FilterChapterList(all, list)
	}
	return all
}

func FilterChaptersByLabel(all []Chapter, label string) []Chapter {
	var out []Chapter
	for _, ch := range all {
		if ch.Label == label {
			out = append(out, ch)
		}
	}
	return out
}

// FilterChapterRange returns chapters start..end inclusive. An open end
// ("5-") runs to the last chapter.
func FilterChapterRange(all []Chapter, rng string) []Chapter {
	first, last, ok := strings.Cut(rng, "-")
	if !ok {
		return nil
	}

	start, err := atoi(first)
	if err != nil {
		return nil
	}

	end := len(all)
	if strings.TrimSpace(last) != "" {
		if end, err = atoi(last); err != nil {
			return nil
		}
	}

	if start <= 0 || end <= 0 || start > end || end > len(all) {
		return nil
	}
	return all[start-1 : end]
}

func FilterChapterList(all []Chapter, list string) []Chapter {
	out := []Chapter{}
	for n := range strings.SplitSeq(list, ",") {
		idx, err := atoi(n)
		if err != nil {
			continue
		}
		if idx > 0 && idx <= len(all) {
			out = append(out, all[idx-1])
		}
	}
	return out
}

func atoi(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}
