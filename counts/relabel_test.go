package counts

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRelabelHeader(t *testing.T) {
	rename := map[string]string{"BC01": "Soil_A", "BC02": "Soil_B"}

	tests := []struct {
		name   string
		header []string
		want   []string
	}{
		{"mapped and unmapped", []string{"tax_id", "BC01", "BC02", "BC99"}, []string{"tax_id", "Soil_A", "Soil_B", "BC99"}},
		{"identifier never renamed", []string{"BC01", "BC02"}, []string{"BC01", "Soil_B"}},
		{"order preserved", []string{"tax_id", "BC02", "BC99", "BC01"}, []string{"tax_id", "Soil_B", "BC99", "Soil_A"}},
		{"identifier only", []string{"tax_id"}, []string{"tax_id"}},
		{"empty", []string{}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := make([]string, len(tt.header))
			copy(input, tt.header)
			got := RelabelHeader(input, rename)

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("RelabelHeader mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.header, input); diff != "" {
				t.Errorf("RelabelHeader modified its input (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTableRelabel(t *testing.T) {
	table, err := Read(strings.NewReader(emuTable))
	if err != nil {
		t.Fatal(err)
	}
	rows := table.Rows

	stats := table.Relabel(map[string]string{"BC01": "Soil_A", "BC02": "Soil_B", "BC50": "Unused"})

	if stats.Mapped != 2 {
		t.Errorf("Expected 2 mapped columns, got %d", stats.Mapped)
	}
	if diff := cmp.Diff([]string{"BC99"}, stats.Unmapped); diff != "" {
		t.Errorf("Unmapped mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"tax_id", "Soil_A", "Soil_B", "BC99"}, table.Header); diff != "" {
		t.Errorf("Header mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(rows, table.Rows); diff != "" {
		t.Errorf("Rows changed (-want +got):\n%s", diff)
	}
}
