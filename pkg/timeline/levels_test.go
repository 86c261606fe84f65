package timeline

import (
	"reflect"
	"testing"

	"github.com/ainkit/ainviz/pkg/ain"
)

// overlapCmp gives positive directional degrees exactly for interior
// overlap, matching how the packer is used with real preference data.
type overlapCmp struct{}

func (overlapCmp) Degree(a, b ain.AIN) float64 {
	if a.Upper <= b.Lower {
		return 0
	}
	if a.Lower >= b.Upper {
		return 1
	}
	return 0.5
}

func mk(t *testing.T, bounds ...[2]float64) []ain.AIN {
	t.Helper()
	ains := make([]ain.AIN, len(bounds))
	for i, b := range bounds {
		a, err := ain.New(b[0], b[1])
		if err != nil {
			t.Fatalf("New(%v, %v): %v", b[0], b[1], err)
		}
		ains[i] = a
	}
	return ains
}

func TestPack(t *testing.T) {
	tests := []struct {
		name   string
		bounds [][2]float64
		want   [][]int
	}{
		{
			name:   "Empty",
			bounds: nil,
			want:   nil,
		},
		{
			name:   "Singleton",
			bounds: [][2]float64{{0, 1}},
			want:   [][]int{{0}},
		},
		{
			// Seed-only worked example: index 2 overlaps index 1 but is
			// compared only against level 0's seed (index 0), which it
			// clears, so it joins level 0.
			name:   "SeedOnlyExample",
			bounds: [][2]float64{{0, 2}, {1, 5}, {3, 4}},
			want:   [][]int{{0, 2}, {1}},
		},
		{
			name:   "AllDisjoint",
			bounds: [][2]float64{{0, 1}, {2, 3}, {4, 5}},
			want:   [][]int{{0, 1, 2}},
		},
		{
			name:   "AllOverlapping",
			bounds: [][2]float64{{0, 10}, {1, 9}, {2, 8}},
			want:   [][]int{{0}, {1}, {2}},
		},
		{
			// Touching bounds must not share a level even though the
			// degree product is zero.
			name:   "TouchingExcluded",
			bounds: [][2]float64{{0, 2}, {2, 4}},
			want:   [][]int{{0}, {1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Pack(mk(t, tt.bounds...), overlapCmp{})
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Pack = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPackPartition(t *testing.T) {
	bounds := [][2]float64{{0, 2}, {1, 5}, {3, 4}, {6, 7}, {0.5, 6.5}, {8, 9}}
	ains := mk(t, bounds...)

	for name, fn := range map[string]func([]ain.AIN, ain.Comparator) [][]int{
		"Pack":       Pack,
		"PackStrict": PackStrict,
	} {
		t.Run(name, func(t *testing.T) {
			levels := fn(ains, overlapCmp{})

			seen := make(map[int]bool)
			for _, level := range levels {
				for _, idx := range level {
					if seen[idx] {
						t.Errorf("index %d placed twice", idx)
					}
					seen[idx] = true
				}
			}
			if len(seen) != len(ains) {
				t.Errorf("placed %d indices, want %d", len(seen), len(ains))
			}
		})
	}
}

func TestPackStrictNoOverlapWithinLevel(t *testing.T) {
	// Index 1 and index 2 both clear index 0 (the seed) but overlap each
	// other. Seed-only packing puts them on one level; strict packing must
	// not.
	bounds := [][2]float64{{0, 1}, {2, 5}, {3, 6}}
	ains := mk(t, bounds...)

	loose := Pack(ains, overlapCmp{})
	if want := [][]int{{0, 1, 2}}; !reflect.DeepEqual(loose, want) {
		t.Errorf("Pack = %v, want %v", loose, want)
	}

	strict := PackStrict(ains, overlapCmp{})
	if want := [][]int{{0, 1}, {2}}; !reflect.DeepEqual(strict, want) {
		t.Errorf("PackStrict = %v, want %v", strict, want)
	}

	// Every level must be pairwise compatible.
	for _, level := range strict {
		for x := 0; x < len(level); x++ {
			for y := x + 1; y < len(level); y++ {
				a, b := ains[level[x]], ains[level[y]]
				if !compatible(a, b, overlapCmp{}) {
					t.Errorf("level contains overlapping pair %v, %v", a, b)
				}
			}
		}
	}
}

func TestPackDeterministic(t *testing.T) {
	ains := mk(t, [2]float64{0, 2}, [2]float64{1, 5}, [2]float64{3, 4}, [2]float64{6, 7})

	first := Pack(ains, overlapCmp{})
	for i := 0; i < 10; i++ {
		if got := Pack(ains, overlapCmp{}); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d differs: %v vs %v", i, got, first)
		}
	}
}
