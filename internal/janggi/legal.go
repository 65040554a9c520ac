package janggi

// LegalDestinations 返回 from 上棋子能走到的所有格子（不考虑自己被将）。
// 结果总是包含 from 本身，代表原地不动（停着）。from 为空格时返回空集合。
func LegalDestinations(b *Board, from Square) SquareSet {
	var out SquareSet
	pc := b.At(from)
	if pc.IsZero() {
		return out
	}
	out.Add(from)
	genDestinations(b, from, pc, &out)
	return out
}

func genDestinations(b *Board, from Square, pc Piece, out *SquareSet) {
	switch pc.Kind {
	case General, Guard:
		genPalaceMoves(b, from, pc.Player, out)
	case Horse:
		genHorseMoves(b, from, pc.Player, out)
	case Elephant:
		genElephantMoves(b, from, pc.Player, out)
	case Chariot:
		genChariotMoves(b, from, pc.Player, out)
	case Cannon:
		genCannonMoves(b, from, pc.Player, out)
	case Soldier:
		genSoldierMoves(b, from, pc.Player, out)
	}
}
