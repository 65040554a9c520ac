package janggi

var (
	orthoDirs = [4][2]int{{-1, 0}, {+1, 0}, {0, -1}, {0, +1}}
	diagDirs  = [4][2]int{{-1, -1}, {-1, +1}, {+1, -1}, {+1, +1}}
)

const palaceMidCol = Cols / 2 // 4

// 九宫行范围：红方 0..2，蓝方 7..9
func palaceRows(p Player) (lo, hi int) {
	if p == Blue {
		return Rows - 3, Rows - 1
	}
	return 0, 2
}

// inFortress 判断 (row, col) 是否在 p 方九宫内。
func inFortress(p Player, row, col int) bool {
	if p != Red && p != Blue {
		return false
	}
	if col < palaceMidCol-1 || col > palaceMidCol+1 {
		return false
	}
	lo, hi := palaceRows(p)
	return row >= lo && row <= hi
}

// Fortress 返回 p 方九宫的 9 个格子。
func Fortress(p Player) SquareSet {
	var ss SquareSet
	lo, hi := palaceRows(p)
	for r := lo; r <= hi; r++ {
		for c := palaceMidCol - 1; c <= palaceMidCol+1; c++ {
			ss.Add(indexOf(r, c))
		}
	}
	return ss
}

// fortressOwner 返回 (row, col) 所在九宫属于哪一方。
func fortressOwner(row, col int) Player {
	switch {
	case inFortress(Red, row, col):
		return Red
	case inFortress(Blue, row, col):
		return Blue
	}
	return NoPlayer
}

// isPalaceNode 九宫斜线上的点：中心 + 四角。
func isPalaceNode(row, col int) bool {
	owner := fortressOwner(row, col)
	if owner == NoPlayer {
		return false
	}
	lo, _ := palaceRows(owner)
	dr, dc := row-(lo+1), col-palaceMidCol
	return dr*dr == dc*dc
}

// PalaceDiagonals 九宫斜线连接：中心连四角，角只连中心，角与角不相连。
func PalaceDiagonals(sq Square) SquareSet {
	var ss SquareSet
	if !sq.Valid() {
		return ss
	}
	row, col := sq.Row(), sq.Col()
	if !isPalaceNode(row, col) {
		return ss
	}
	for _, d := range diagDirs {
		r, c := row+d[0], col+d[1]
		if isPalaceNode(r, c) {
			ss.Add(indexOf(r, c))
		}
	}
	return ss
}
