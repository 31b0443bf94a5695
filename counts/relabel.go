package counts

// RelabelHeader returns a copy of header in which every column after the
// first is replaced by its entry in rename, if it has one. The first column
// holds the row identifier and is never renamed.
func RelabelHeader(header []string, rename map[string]string) []string {
	out := make([]string, len(header))
	copy(out, header)

	for i := 1; i < len(out); i++ {
		if name, exists := rename[out[i]]; exists {
			out[i] = name
		}
	}

	return out
}

// Stats summarizes a relabeling.
type Stats struct {
	Mapped   int
	Unmapped []string
}

// Relabel replaces the table's header using rename. Row data and column order
// are untouched.
func (t *Table) Relabel(rename map[string]string) Stats {
	var stats Stats
	for i, col := range t.Header {
		if i == 0 {
			// Identifier column
			continue
		}

		if _, exists := rename[col]; exists {
			stats.Mapped++
		} else {
			stats.Unmapped = append(stats.Unmapped, col)
		}
	}

	t.Header = RelabelHeader(t.Header, rename)

	return stats
}
