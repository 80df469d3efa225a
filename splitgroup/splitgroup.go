package splitgroup

// Op is the set-operator vocabulary shared by both the "group operator"
// (what to do when a split appears on only one side of a merge/compare)
// and the "branch operator" (what to do with the branch sets when a split
// appears on both sides). Not every Op is valid in every position; see
// Merge and Compare's doc comments for which subset each accepts.
type Op int

const (
	Intersect Op = iota
	Union
	Difference
	NegativeDifference
	SymmetricDifference
	Subset
	SubsetEqual
	NotEqual
)

// SplitGroup records that a node's tokens originate on a subset of
// branches out of one split point. Split is the index of the place or
// transition that is the split point (kind is implied by the composition
// this group belongs to); Branches is the sorted, deduplicated subset of
// that split's out-neighbor indices the tokens arrived from; Count is the
// split's total out-degree. Split == -1 is the sentinel for "originates
// from the initial marking" (parallel composition only).
type SplitGroup struct {
	Split    int
	Branches []int
	Count    int
}

// Complete reports whether every branch of the split has been accounted
// for at this node — the split has been fully merged back together, so
// this group carries no more discriminating information and should be
// dropped.
func (g SplitGroup) Complete() bool {
	return len(g.Branches) == g.Count
}

// Equal reports structural equality: same split, same branch set in the
// same order (Branches is always kept sorted, so this is true set
// equality), same count.
func (g SplitGroup) Equal(other SplitGroup) bool {
	if g.Split != other.Split || g.Count != other.Count {
		return false
	}
	if len(g.Branches) != len(other.Branches) {
		return false
	}
	for i := range g.Branches {
		if g.Branches[i] != other.Branches[i] {
			return false
		}
	}
	return true
}

// ListsEqual reports whether two split-group lists are structurally equal,
// element by element. Used by the analyzer's fixed-point loop to detect
// when a node's recomputed group list stopped changing.
func ListsEqual(a, b []SplitGroup) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// Seed constructs a fresh single-branch SplitGroup for node branchIndex
// coming out of a split with the given total branch count.
func Seed(split, branchIndex, count int) SplitGroup {
	return SplitGroup{Split: split, Branches: []int{branchIndex}, Count: count}
}

func insertBranch(branches []int, v int, at int) []int {
	branches = append(branches, 0)
	copy(branches[at+1:], branches[at:])
	branches[at] = v
	return branches
}

func removeBranch(branches []int, at int) []int {
	return append(branches[:at], branches[at+1:]...)
}
