package janggi

// canLand 目标格在盘内，且为空或敌子。
func canLand(b *Board, row, col int, side Player) bool {
	if !onBoard(row, col) {
		return false
	}
	dst := b.squares[indexOf(row, col)]
	return dst.IsZero() || dst.Player != side
}

// 将、士：九宫内上下左右一格，外加沿九宫斜线走一格
func genPalaceMoves(b *Board, from Square, side Player, out *SquareSet) {
	row, col := from.Row(), from.Col()
	for _, d := range orthoDirs {
		r, c := row+d[0], col+d[1]
		if !inFortress(side, r, c) {
			continue
		}
		if canLand(b, r, c, side) {
			out.Add(indexOf(r, c))
		}
	}
	for _, to := range PalaceDiagonals(from).Squares() {
		r, c := to.Row(), to.Col()
		if !inFortress(side, r, c) {
			continue
		}
		if canLand(b, r, c, side) {
			out.Add(to)
		}
	}
}
