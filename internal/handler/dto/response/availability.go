package response

type DateEntry struct {
	Date string `json:"date"`
}

func FromDates(dates []string) []DateEntry {
	out := make([]DateEntry, len(dates))
	for i, d := range dates {
		out[i] = DateEntry{Date: d}
	}
	return out
}
