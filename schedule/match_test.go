package schedule

import (
	"reflect"
	"testing"
)

func recs(freqs ...float64) []Record {
	out := make([]Record, len(freqs))
	for i, f := range freqs {
		out[i] = Record{Frequency: f, fields: map[string]string{"kHz": FormatFrequency(f)}}
	}
	return out
}

func TestMatch(t *testing.T) {
	tests := []struct {
		name    string
		freqs   []float64
		target  float64
		exact   []int
		primary int
		nearest int
		insert  int
	}{
		{"between", []float64{9400, 9650, 12000}, 10000, nil, -1, 1, 2},
		{"past the end", []float64{9400, 9650, 12000}, 13000, nil, -1, 2, 3},
		{"before the start", []float64{9400, 9650, 12000}, 100, nil, -1, 0, 0},
		{"exact", []float64{9400, 9650, 12000}, 9650.005, []int{1}, 1, 1, -1},
		{"all duplicates match", []float64{6005, 6005, 7000}, 6005, []int{0, 1}, 0, 0, -1},
		{"tie keeps the first", []float64{100, 200}, 150, nil, -1, 0, 1},
		{"unsorted input", []float64{12000, 9400}, 10000, nil, -1, 1, 0},
		{"empty", nil, 10000, nil, -1, -1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Match(recs(tt.freqs...), tt.target, true)
			if !m.HasTarget || m.TargetKHz != tt.target {
				t.Fatalf("target not recorded: %+v", m)
			}
			if !reflect.DeepEqual(m.Exact, tt.exact) {
				t.Errorf("exact = %v, want %v", m.Exact, tt.exact)
			}
			if m.Primary != tt.primary || m.Nearest != tt.nearest || m.Insert != tt.insert {
				t.Errorf("primary/nearest/insert = %d/%d/%d, want %d/%d/%d",
					m.Primary, m.Nearest, m.Insert, tt.primary, tt.nearest, tt.insert)
			}
		})
	}
}

func TestMatchToleranceBoundary(t *testing.T) {
	r := recs(15000)
	if m := Match(r, 15000.009, true); !m.Matched() {
		t.Error("9 Hz away should match")
	}
	if m := Match(r, 15000.011, true); m.Matched() {
		t.Error("11 Hz away should not match")
	}
	if m := Match(r, 14999.991, true); !m.Matched() {
		t.Error("9 Hz below should match")
	}
}

func TestMatchWithoutTarget(t *testing.T) {
	m := Match(recs(9400, 9650), 9400, false)
	if m.HasTarget || m.Matched() || m.Primary != -1 || m.Nearest != -1 || m.Insert != -1 {
		t.Fatalf("expected an empty result, got %+v", m)
	}
}

func TestMatchLeavesInputAlone(t *testing.T) {
	in := recs(12000, 9400, 9650)
	before := make([]float64, len(in))
	for i, r := range in {
		before[i] = r.Frequency
	}
	Match(in, 9500, true)
	for i, r := range in {
		if r.Frequency != before[i] {
			t.Fatalf("record %d changed: %v -> %v", i, before[i], r.Frequency)
		}
	}
}
