package janggi

// perpendicular 与正交方向 d 垂直的两个方向
func perpendicular(d [2]int) [2][2]int {
	return [2][2]int{{d[1], d[0]}, {-d[1], -d[0]}}
}

// 马：先直走一格，再向外斜走一格；直走那一格有子就整个方向作废（蹩马腿）
func genHorseMoves(b *Board, from Square, side Player, out *SquareSet) {
	row, col := from.Row(), from.Col()
	for _, d := range orthoDirs {
		lr, lc := row+d[0], col+d[1]
		if !onBoard(lr, lc) || !b.isEmpty(indexOf(lr, lc)) {
			continue
		}
		for _, p := range perpendicular(d) {
			r, c := lr+d[0]+p[0], lc+d[1]+p[1]
			if canLand(b, r, c, side) {
				out.Add(indexOf(r, c))
			}
		}
	}
}

// 象：直走一格，再同向斜走两格；途经的三格任何一格有子都走不了
func genElephantMoves(b *Board, from Square, side Player, out *SquareSet) {
	row, col := from.Row(), from.Col()
	for _, d := range orthoDirs {
		r1, c1 := row+d[0], col+d[1]
		if !onBoard(r1, c1) || !b.isEmpty(indexOf(r1, c1)) {
			continue
		}
		for _, p := range perpendicular(d) {
			r2, c2 := r1+d[0]+p[0], c1+d[1]+p[1]
			if !onBoard(r2, c2) || !b.isEmpty(indexOf(r2, c2)) {
				continue
			}
			r, c := r2+d[0]+p[0], c2+d[1]+p[1]
			if canLand(b, r, c, side) {
				out.Add(indexOf(r, c))
			}
		}
	}
}
