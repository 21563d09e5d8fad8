package game

// Sequence folds a move list over an initial position, producing the
// board after every ply alongside the resolved move details.
//
// A token that fails to resolve does not stop the fold: its ply repeats
// the prior position, keeping positions index-aligned with moves, and
// the ply's index is appended to failed. The active color flips every
// ply whether or not the move resolved. details holds one entry per
// resolved ply, in order, so len(details) equals len(moves) minus
// len(failed). Sequence is pure; identical inputs yield identical
// outputs.
func Sequence(initial Position, moves []string, startColor Color) (positions []Position, details []MoveDetail, failed []int) {
	positions = make([]Position, 0, len(moves))
	details = make([]MoveDetail, 0, len(moves))

	current := initial
	turn := startColor
	for i, token := range moves {
		d, err := Resolve(current, token, turn)
		if err == nil {
			current = current.Apply(d)
			details = append(details, d)
		} else {
			failed = append(failed, i)
		}
		positions = append(positions, current)
		turn = turn.Other()
	}

	return positions, details, failed
}
