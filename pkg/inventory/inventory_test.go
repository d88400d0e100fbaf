package inventory

import "testing"

func TestNormalizeSKU(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		present bool
	}{
		{"sku 005", "SKU-005", true},
		{"SKU_005", "SKU-005", true},
		{"SKU005", "SKU-005", true},
		{"sku-005", "SKU-005", true},
		{" sku-12 ", "SKU-12", true},
		{"abc", "ABC", true},
		{"ab c_1", "ABC1", true},
		{"", "", false},
		{"   ", "", false},
		{"none", "", false},
		{"None", "", false},
		{"NaN", "", false},
		{"null", "", false},
		{"NULL", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := NormalizeSKU(tt.raw)
			if ok != tt.present {
				t.Fatalf("NormalizeSKU(%q) present = %v, want %v", tt.raw, ok, tt.present)
			}
			if got != tt.want {
				t.Errorf("NormalizeSKU(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNormalizeSKUIdempotent(t *testing.T) {
	inputs := []string{"sku 005", "SKU_005", "SKU005", " sku-12 ", "abc", "WID-GET-9"}
	for _, in := range inputs {
		once, ok := NormalizeSKU(in)
		if !ok {
			t.Fatalf("NormalizeSKU(%q) unexpectedly missing", in)
		}
		twice, ok := NormalizeSKU(once)
		if !ok || once != twice {
			t.Errorf("NormalizeSKU not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestNormalizeSKUEquivalenceClass(t *testing.T) {
	want := "SKU-005"
	for _, in := range []string{"SKU 005", "SKU_005", "sku-005"} {
		got, ok := NormalizeSKU(in)
		if !ok || got != want {
			t.Errorf("NormalizeSKU(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMissingLocation(t *testing.T) {
	tests := []struct {
		loc  string
		want bool
	}{
		{"", true},
		{"   ", true},
		{"nan", true},
		{"NaN", true},
		{"A", false},
		{"warehouse 7", false},
		// unlike SKUs, "none"/"null" are legal location names
		{"none", false},
		{"null", false},
	}

	for _, tt := range tests {
		if got := MissingLocation(tt.loc); got != tt.want {
			t.Errorf("MissingLocation(%q) = %v, want %v", tt.loc, got, tt.want)
		}
	}
}

func TestSnapshotSKUs(t *testing.T) {
	s := &Snapshot{Records: []Record{
		{SKU: "SKU-2", Location: "A"},
		{SKU: "SKU-1", Location: "A"},
		{SKU: "SKU-2", Location: "B"},
	}}

	got := s.SKUs()
	want := []string{"SKU-2", "SKU-1"}
	if len(got) != len(want) {
		t.Fatalf("SKUs() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("SKUs()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
