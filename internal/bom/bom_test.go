package bom

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestRef(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{name: "model id", in: "google-bert/bert-base-uncased"},
		{name: "dataset id", in: "org/dataset-a"},
		{name: "single segment", in: "squad"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Ref(tt.in)
			if !strings.HasPrefix(got, tt.in+"-") {
				t.Fatalf("Ref(%q) = %q, want prefix %q", tt.in, got, tt.in+"-")
			}
			u, err := uuid.Parse(strings.TrimPrefix(got, tt.in+"-"))
			if err != nil {
				t.Fatalf("suffix is not a uuid: %v", err)
			}
			if u.Version() != 5 {
				t.Fatalf("uuid version = %d, want 5", u.Version())
			}
			if again := Ref(tt.in); again != got {
				t.Fatalf("Ref not stable: %q vs %q", got, again)
			}
		})
	}
}

func TestRef_KnownValue(t *testing.T) {
	want := "bert-base-uncased-c2a5c589-7c3e-5a50-8352-fa9e5bb0523c"
	if got := Ref("bert-base-uncased"); got != want {
		t.Fatalf("Ref() = %q, want %q", got, want)
	}
}

func TestRef_DistinctNames(t *testing.T) {
	seen := map[string]string{}
	for _, n := range []string{"a", "b", "org/a", "org/b", "A"} {
		r := Ref(n)
		if prev, ok := seen[r]; ok {
			t.Fatalf("Ref collision between %q and %q", prev, n)
		}
		seen[r] = n
	}
}

func TestRef_EmptyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for empty name")
		}
	}()
	Ref("  ")
}

func TestSerialNumber(t *testing.T) {
	a, b := SerialNumber(), SerialNumber()
	if !strings.HasPrefix(a, "urn:uuid:") {
		t.Fatalf("serial = %q", a)
	}
	if a == b {
		t.Fatalf("expected distinct serial numbers")
	}
}
