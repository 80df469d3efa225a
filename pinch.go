package graph

import "github.com/nbingham/cgraph/node"

// Pinch splits id into the cross product of its predecessors x successors,
// sequence-merges each resulting pair, and erases the original node.
// Composition for the duplication step is node.Relation(id.Kind) — a
// place pinch composes its sides under choice, a transition pinch under
// parallel, matching the original's reuse of the node-kind code as the
// composition code. Returns a map from each removed duplicate to the
// single surviving NodeId it was merged into (spec.md §4.1).
func (g *Graph[P, Tr]) Pinch(id node.NodeId) map[node.NodeId][]node.NodeId {
	preds, succs := g.Erase(id)
	result := make(map[node.NodeId][]node.NodeId)
	if len(preds) == 0 || len(succs) == 0 {
		return result
	}
	composition := node.Relation(id.Kind)
	sideKind := preds[0].Kind

	leftDups := make([][]node.NodeId, len(preds))
	for i, p := range preds {
		leftDups[i] = g.DuplicateN(composition, p, len(succs), false)
	}
	rightDups := make([][]node.NodeId, len(succs))
	for j, s := range succs {
		rightDups[j] = g.DuplicateN(composition, s, len(preds), true)
	}
	// rightKeys keeps each right-side duplicate's id as it was created, so
	// the result map has one key per removed duplicate even though later
	// erasures shift the live indices in rightDups.
	rightKeys := make([][]node.NodeId, len(succs))
	for j := range rightDups {
		rightKeys[j] = append([]node.NodeId(nil), rightDups[j]...)
	}

	adjust := func(erased int) {
		shift := func(ids []node.NodeId) {
			for k := range ids {
				if ids[k].Kind == sideKind && ids[k].Index > erased {
					ids[k].Index--
				}
			}
		}
		for i := range leftDups {
			shift(leftDups[i])
		}
		for j := range rightDups {
			shift(rightDups[j])
		}
		for key := range result {
			shift(result[key])
		}
	}

	for i := range preds {
		for j := range succs {
			left := leftDups[i][j]
			right := rightDups[j][i]
			erasedIndex := right.Index

			survivor := g.combine(node.Sequence, left, right)
			key := rightKeys[j][i]
			result[key] = append(result[key], survivor)
			adjust(erasedIndex)
		}
	}
	return result
}
