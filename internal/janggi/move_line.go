package janggi

// lineRays 从 from 出发的所有直线：四条横竖线，若站在九宫斜线点上再加斜线。
// 斜线只沿九宫的“角-中心-角”走，离开斜线点即止。
func lineRays(from Square) [][]Square {
	row, col := from.Row(), from.Col()
	rays := make([][]Square, 0, 8)
	for _, d := range orthoDirs {
		var ray []Square
		for r, c := row+d[0], col+d[1]; onBoard(r, c); r, c = r+d[0], c+d[1] {
			ray = append(ray, indexOf(r, c))
		}
		if len(ray) > 0 {
			rays = append(rays, ray)
		}
	}
	if !isPalaceNode(row, col) {
		return rays
	}
	for _, d := range diagDirs {
		var ray []Square
		for r, c := row+d[0], col+d[1]; isPalaceNode(r, c); r, c = r+d[0], c+d[1] {
			ray = append(ray, indexOf(r, c))
		}
		if len(ray) > 0 {
			rays = append(rays, ray)
		}
	}
	return rays
}

// 车：沿线走到第一个子为止，敌子可吃
func genChariotMoves(b *Board, from Square, side Player, out *SquareSet) {
	for _, ray := range lineRays(from) {
		for _, to := range ray {
			pc := b.squares[to]
			if pc.IsZero() {
				out.Add(to)
				continue
			}
			if pc.Player != side {
				out.Add(to)
			}
			break
		}
	}
}

// 包：必须隔一个炮架（不能是包）才能走；越过炮架后可走到下一个子之前的空格，
// 下一个子若是敌方且不是包则可吃。包既不能翻包，也不能吃包。
func genCannonMoves(b *Board, from Square, side Player, out *SquareSet) {
	for _, ray := range lineRays(from) {
		i := 0
		// 找炮架
		for i < len(ray) && b.isEmpty(ray[i]) {
			i++
		}
		if i == len(ray) || b.squares[ray[i]].Kind == Cannon {
			continue
		}
		// 越过炮架
		for i++; i < len(ray); i++ {
			pc := b.squares[ray[i]]
			if pc.IsZero() {
				out.Add(ray[i])
				continue
			}
			if pc.Player != side && pc.Kind != Cannon {
				out.Add(ray[i])
			}
			break
		}
	}
}
