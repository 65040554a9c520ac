package janggi

// IsAttacked 判断 sq 是否被 bySide 攻击：对方任何一个子的落点集合里有 sq 即为被攻击。
func (b *Board) IsAttacked(sq Square, bySide Player) bool {
	for _, pc := range b.Pieces(bySide) {
		from := b.Locate(pc)
		if from == sq {
			continue
		}
		var dests SquareSet
		genDestinations(b, from, pc, &dests)
		if dests.Has(sq) {
			return true
		}
	}
	return false
}

// IsInCheck 判断 side 的将是否被将军。将不在盘上属于不变量被破坏，这里返回 false。
func (b *Board) IsInCheck(side Player) bool {
	gen := b.General(side)
	if gen == NoSquare {
		return false
	}
	return b.IsAttacked(gen, side.Opponent())
}

// IsCheckmate 被将军，且 side 任何一子的任何一步试走之后仍被将军。
// 每一步都是试走后立刻撤回，返回时棋盘与调用前完全一致。
func (b *Board) IsCheckmate(side Player) bool {
	if !b.IsInCheck(side) {
		return false
	}
	for _, pc := range b.Pieces(side) {
		from := b.Locate(pc)
		for _, to := range LegalDestinations(b, from).Squares() {
			if b.escapes(side, from, to) {
				return false
			}
		}
	}
	return true
}

func (b *Board) escapes(side Player, from, to Square) bool {
	tx := b.apply(from, to)
	defer tx.rollback()
	return !b.IsInCheck(side)
}
