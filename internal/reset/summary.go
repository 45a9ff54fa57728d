package reset

// Summary counts the outcome of a selection.
type Summary struct {
	Items      int
	Processed  int // items with at least one host call
	Replaced   int
	Ineligible int
	Skipped    int // failed steps over all items
}

func Summarize(reports []Report) Summary {
	s := Summary{Items: len(reports)}
	for _, r := range reports {
		switch {
		case r.Ineligible:
			s.Ineligible++
		case r.Touched():
			s.Processed++
		}
		if r.Replaced {
			s.Replaced++
		}
		s.Skipped += len(r.Skipped)
	}
	return s
}
