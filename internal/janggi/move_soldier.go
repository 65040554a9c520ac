package janggi

// 兵的前进方向：红方往行号大的方向走，蓝方相反
func soldierDir(side Player) int {
	if side == Blue {
		return -1
	}
	return +1
}

// 兵：前一格、左右一格；进入对方九宫且站在斜线点上时，还可沿斜线向前一格。永远不能后退。
func genSoldierMoves(b *Board, from Square, side Player, out *SquareSet) {
	row, col := from.Row(), from.Col()
	dir := soldierDir(side)

	if canLand(b, row+dir, col, side) {
		out.Add(indexOf(row+dir, col))
	}
	for _, dc := range []int{-1, +1} {
		if canLand(b, row, col+dc, side) {
			out.Add(indexOf(row, col+dc))
		}
	}

	enemy := side.Opponent()
	if !inFortress(enemy, row, col) {
		return
	}
	for _, to := range PalaceDiagonals(from).Squares() {
		if to.Row() != row+dir {
			continue
		}
		if canLand(b, to.Row(), to.Col(), side) {
			out.Add(to)
		}
	}
}
