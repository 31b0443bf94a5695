package reference

import "fmt"

// DuplicatePolicy decides what happens when a barcode appears more than once
// in the reference table.
type DuplicatePolicy int

const (
	// LastWins keeps the sample name from the last row that mentions a
	// barcode.
	LastWins DuplicatePolicy = iota

	// RejectConflicts fails when a barcode is mapped to two different sample
	// names. Exact repeats are tolerated.
	RejectConflicts
)

func (p DuplicatePolicy) String() string {
	switch p {
	case LastWins:
		return "last-wins"
	case RejectConflicts:
		return "reject-conflicts"
	}

	return fmt.Sprintf("DuplicatePolicy(%d)", int(p))
}

type DuplicateBarcodeError struct {
	Barcode string
	First   string
	Second  string
}

func (e *DuplicateBarcodeError) Error() string {
	return fmt.Sprintf("barcode %q is mapped to both %q and %q", e.Barcode, e.First, e.Second)
}

// BuildRenameMap turns reference entries into a barcode => sample name lookup.
func BuildRenameMap(entries []Entry, policy DuplicatePolicy) (map[string]string, error) {
	out := make(map[string]string, len(entries))

	for _, entry := range entries {
		if prior, exists := out[entry.Barcode]; exists && prior != entry.SampleName && policy == RejectConflicts {
			return nil, &DuplicateBarcodeError{
				Barcode: entry.Barcode,
				First:   prior,
				Second:  entry.SampleName,
			}
		}

		out[entry.Barcode] = entry.SampleName
	}

	return out, nil
}
