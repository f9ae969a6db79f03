package strategy

// Progress is the scoring state of one questionnaire instance
type Progress string

const (
	ProgressUnscored        Progress = "unscored"
	ProgressPartiallyScored Progress = "partially_scored"
	ProgressComplete        Progress = "complete"
)

// ProgressOf derives the state from entry scores. An empty list has nothing
// left to score and counts as complete.
func ProgressOf(entries []Entry) Progress {
	scored := ScoredCount(entries)
	switch {
	case scored == len(entries):
		return ProgressComplete
	case scored == 0:
		return ProgressUnscored
	default:
		return ProgressPartiallyScored
	}
}

// Complete reports whether no entry is left unscored
func Complete(entries []Entry) bool {
	for _, e := range entries {
		if e.Score == 0 {
			return false
		}
	}
	return true
}

// ScoredCount counts entries with a non-zero score
func ScoredCount(entries []Entry) int {
	n := 0
	for _, e := range entries {
		if e.Score != 0 {
			n++
		}
	}
	return n
}

// NextUnscored returns the index of the first unscored entry, or -1
func NextUnscored(entries []Entry) int {
	for i, e := range entries {
		if e.Score == 0 {
			return i
		}
	}
	return -1
}

// IsLast reports whether i is the final entry of the list
func IsLast(entries []Entry, i int) bool {
	return len(entries) > 0 && i == len(entries)-1
}

// IndexOf returns the position of the entry with the given title, or -1
func IndexOf(entries []Entry, title string) int {
	for i, e := range entries {
		if e.Title == title {
			return i
		}
	}
	return -1
}
