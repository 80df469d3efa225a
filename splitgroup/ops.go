package splitgroup

// Merge walks two split-group lists (each sorted ascending by Split) in
// lockstep and produces a new sorted list. groupOp controls what happens
// when a split appears on only one side: Union keeps it, Intersect drops
// it. branchOp controls what happens to the branch sets where a split is
// present on both sides: Union/Intersect/Difference apply set-wise to the
// two branch slices. groupOp must be Union or Intersect; branchOp must be
// one of Union, Intersect, Difference.
//
// This is the per-set aggregation of spec.md §4.4 ("aggregate each set's
// element-wise splits by (group op, branch op)"). The analyzer's
// propagation step of §4.3 uses MergeInplace instead.
func Merge(groupOp, branchOp Op, g0, g1 []SplitGroup) []SplitGroup {
	var result []SplitGroup
	i, j := 0, 0
	for i < len(g0) || j < len(g1) {
		switch {
		case i < len(g0) && j < len(g1) && g0[i].Split == g1[j].Split:
			merged := SplitGroup{Split: g0[i].Split, Count: g0[i].Count}
			k, l := 0, 0
			b0, b1 := g0[i].Branches, g1[j].Branches
			for k < len(b0) || l < len(b1) {
				switch {
				case k < len(b0) && l < len(b1) && b0[k] == b1[l]:
					if branchOp != Difference {
						merged.Branches = append(merged.Branches, b0[k])
					}
					k++
					l++
				case k < len(b0) && (l >= len(b1) || b0[k] < b1[l]):
					if branchOp != Intersect {
						merged.Branches = append(merged.Branches, b0[k])
					}
					k++
				case l < len(b1):
					if branchOp == Union {
						merged.Branches = append(merged.Branches, b1[l])
					}
					l++
				}
			}
			result = append(result, merged)
			i++
			j++
		case i < len(g0) && (j >= len(g1) || g0[i].Split < g1[j].Split):
			if groupOp != Intersect {
				result = append(result, g0[i])
			}
			i++
		case j < len(g1):
			if groupOp == Union {
				result = append(result, g1[j])
			}
			j++
		}
	}
	return result
}

// MergeInplace is Merge's destructive sibling used by the analyzer's
// fixed-point loop: it folds g1 into g0 in place, skipping any split in
// exclude (used to stop a split's own branch from propagating back
// through itself, per spec.md §4.3's "excluding any group whose split =
// t.index unless c = choice"). groupOp/branchOp have the same domain as
// Merge.
func MergeInplace(groupOp, branchOp Op, g0 *[]SplitGroup, g1 []SplitGroup, exclude map[int]bool) {
	i, j := 0, 0
	base := *g0
	for i < len(base) || j < len(g1) {
		for j < len(g1) && exclude[g1[j].Split] {
			j++
		}
		switch {
		case i < len(base) && j < len(g1) && base[i].Split == g1[j].Split:
			k, l := 0, 0
			for k < len(base[i].Branches) || l < len(g1[j].Branches) {
				switch {
				case k < len(base[i].Branches) && l < len(g1[j].Branches) && base[i].Branches[k] == g1[j].Branches[l]:
					k++
					l++
				case k < len(base[i].Branches) && (l >= len(g1[j].Branches) || base[i].Branches[k] < g1[j].Branches[l]):
					if branchOp == Intersect {
						base[i].Branches = removeBranch(base[i].Branches, k)
					} else {
						k++
					}
				case l < len(g1[j].Branches):
					if branchOp == Union {
						base[i].Branches = insertBranch(base[i].Branches, g1[j].Branches[l], k)
						k++
					}
					l++
				}
			}
			i++
			j++
		case i < len(base) && (j >= len(g1) || base[i].Split < g1[j].Split):
			if groupOp == Intersect {
				base = append(base[:i], base[i+1:]...)
			} else {
				i++
			}
		case j < len(g1):
			if groupOp == Union {
				tail := append([]SplitGroup{g1[j]}, base[i:]...)
				base = append(base[:i], tail...)
				i++
			}
			j++
		}
	}
	*g0 = base
}

// Compare walks two split-group lists in lockstep and reports a boolean
// verdict. groupOp selects how splits present on only one side affect the
// verdict (Difference/NegativeDifference/SymmetricDifference treat an
// incomplete lone-sided group as a witness; Subset/SubsetEqual track which
// side that lone split belonged to); branchOp does the analogous thing for
// the branch sets where a split is shared. This implements
// original_source/petri/node.cpp's compare() with one deliberate
// normalization: the upstream C++ has `group_operation == A or B or C`,
// which due to operator precedence is always true regardless of
// group_operation; every call site in the upstream and in spec.md always
// passes Intersect for groupOp anyway, so this port instead checks
// groupOp explicitly against {Intersect, Difference, NegativeDifference}
// to express the evidently-intended condition without changing behavior
// for any groupOp value the engine actually exercises.
func Compare(groupOp, branchOp Op, g0, g1 []SplitGroup) bool {
	branchCmp := -1
	groupCmp := -1

	i, j := 0, 0
	for i < len(g0) || j < len(g1) {
		switch {
		case i < len(g0) && j < len(g1) && g0[i].Split == g1[j].Split:
			if groupOp == Intersect || groupOp == Difference || groupOp == NegativeDifference {
				found0, found1, found2 := false, false, false
				k, l := 0, 0
				b0, b1 := g0[i].Branches, g1[j].Branches
				for k < len(b0) && l < len(b1) {
					if b0[k] == b1[l] {
						found2 = true
						k++
						l++
					} else if b0[k] < b1[l] {
						found0 = true
						k++
					} else {
						found1 = true
						l++
					}
				}
				found0 = found0 || k < len(b0)
				found1 = found1 || l < len(b1)

				if (branchOp == SymmetricDifference && found0 && found1) || (branchOp == Intersect && found2) {
					return true
				}
				if branchOp == Difference && found0 {
					return true
				}
				if branchOp == NegativeDifference && found1 {
					return true
				}
				if branchOp == NotEqual && (found0 || found1) {
					return true
				}
				if (branchOp == Subset || branchOp == SubsetEqual) && found0 {
					if branchCmp == 1 {
						return false
					}
					branchCmp = 0
				}
				if (branchOp == Subset || branchOp == SubsetEqual) && found1 {
					if branchCmp == 0 {
						return false
					}
					branchCmp = 1
				}
			}
			i++
			j++
		case i < len(g0) && (j >= len(g1) || g0[i].Split < g1[j].Split):
			if len(g0[i].Branches) < g0[i].Count && (groupOp == Difference || groupOp == SymmetricDifference) {
				return true
			} else if groupOp == Subset || groupOp == SubsetEqual {
				if groupCmp == 1 {
					return false
				}
				groupCmp = 0
			}
			i++
		case j < len(g1):
			if len(g1[j].Branches) < g1[j].Count && (groupOp == NegativeDifference || groupOp == SymmetricDifference) {
				return true
			} else if groupOp == Subset || groupOp == SubsetEqual {
				if groupCmp == 0 {
					return false
				}
				groupCmp = 1
			}
			j++
		}
	}

	return (groupOp == SubsetEqual || (groupOp == Subset && groupCmp != -1) || groupOp == Intersect) &&
		(branchOp == SubsetEqual || (branchOp == Subset && branchCmp != -1))
}
