// Package timeline packs interval indices into display levels for a stacked
// timeline rendering.
//
// Packing is a first-fit greedy heuristic over the input order: each
// not-yet-placed index opens a new level, then the remaining indices are
// scanned in order and added when compatible. Two intervals are compatible
// when their mutual preference-degree product is zero (no comparison
// ambiguity) and their bounds do not touch. The heuristic minimizes vertical
// space but does not guarantee the minimum number of levels; determinism for
// a fixed input is guaranteed.
package timeline

import "github.com/ainkit/ainviz/pkg/ain"

// Pack partitions the indices 0..len(ains)-1 into levels, checking each
// candidate against the level's seed element only. This reproduces the
// historical packing behavior and the documented worked examples, but relies
// on compatibility being transitive in practice: when the degree data is not
// transitive, two non-seed members of a level may overlap each other. Use
// [PackStrict] when genuine overlap-freedom is required.
//
// Pack is total: the empty collection yields zero levels and a singleton
// yields one level with one member.
func Pack(ains []ain.AIN, cmp ain.Comparator) [][]int {
	return pack(ains, cmp, false)
}

// PackStrict is like [Pack] but checks each candidate against every member
// already placed in the level, guaranteeing that no two members of a level
// overlap or touch even for non-transitive degree data. It may produce more
// levels than Pack for the same input.
func PackStrict(ains []ain.AIN, cmp ain.Comparator) [][]int {
	return pack(ains, cmp, true)
}

func pack(ains []ain.AIN, cmp ain.Comparator, strict bool) [][]int {
	var levels [][]int
	placed := make([]bool, len(ains))

	for i := range ains {
		if placed[i] {
			continue
		}

		level := []int{i}
		placed[i] = true

		for j := i + 1; j < len(ains); j++ {
			if placed[j] {
				continue
			}
			if strict {
				if !compatibleWithAll(ains, cmp, level, j) {
					continue
				}
			} else if !compatible(ains[i], ains[j], cmp) {
				continue
			}
			level = append(level, j)
			placed[j] = true
		}

		levels = append(levels, level)
	}
	return levels
}

// compatible reports whether two intervals can share a timeline row:
// their degree product is zero and their bounds do not touch.
func compatible(a, b ain.AIN, cmp ain.Comparator) bool {
	if cmp.Degree(a, b)*cmp.Degree(b, a) != 0 {
		return false
	}
	return !a.Touches(b)
}

func compatibleWithAll(ains []ain.AIN, cmp ain.Comparator, level []int, j int) bool {
	for _, i := range level {
		if !compatible(ains[i], ains[j], cmp) {
			return false
		}
	}
	return true
}
