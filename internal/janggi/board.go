package janggi

// Board 是一张“笨”棋盘：格子 -> 棋子，外加棋子 -> 格子的反向索引。
// 这一层不做任何规则判断；写操作只给 Game 和走子事务使用。
type Board struct {
	squares [NumSquares]Piece
	locs    [NumPieces]Square
	hash    uint64
}

func newEmptyBoard() Board {
	var b Board
	for i := range b.locs {
		b.locs[i] = NoSquare
	}
	return b
}

// newInitialBoard 按开局布阵摆好 32 子。
func newInitialBoard() Board {
	b := newEmptyBoard()
	for _, p := range []Player{Red, Blue} {
		for _, pc := range inventoryOf(p) {
			b.place(pc.StartSquare(), pc)
		}
	}
	return b
}

// At 返回格子上的棋子，空格或越界返回零值。
func (b *Board) At(sq Square) Piece {
	if !sq.Valid() {
		return Piece{}
	}
	return b.squares[sq]
}

// Locate 返回棋子所在格子；已被吃或不存在时返回 NoSquare。
func (b *Board) Locate(pc Piece) Square {
	if !pc.valid() {
		return NoSquare
	}
	return b.locs[pc.Index()]
}

func (b *Board) Hash() uint64 { return b.hash }

// Pieces 按库存顺序列出某方仍在盘上的棋子。
func (b *Board) Pieces(p Player) []Piece {
	if p != Red && p != Blue {
		return nil
	}
	out := make([]Piece, 0, InventorySize)
	for i := int(p) * InventorySize; i < int(p+1)*InventorySize; i++ {
		sq := b.locs[i]
		if sq == NoSquare {
			continue
		}
		out = append(out, b.squares[sq])
	}
	return out
}

// General 返回某方将的位置。
func (b *Board) General(p Player) Square {
	return b.Locate(Piece{Player: p, Kind: General})
}

func (b *Board) isEmpty(sq Square) bool { return b.squares[sq].IsZero() }

// place 把 pc 放到空格 sq 上。调用方保证 sq 为空且 pc 不在盘上。
func (b *Board) place(sq Square, pc Piece) {
	if pc.IsZero() {
		return
	}
	b.squares[sq] = pc
	b.locs[pc.Index()] = sq
	b.hash ^= pieceHashKey(pc, sq)
}

// remove 清空 sq 并返回原来的棋子。
func (b *Board) remove(sq Square) Piece {
	pc := b.squares[sq]
	if pc.IsZero() {
		return pc
	}
	b.squares[sq] = Piece{}
	b.locs[pc.Index()] = NoSquare
	b.hash ^= pieceHashKey(pc, sq)
	return pc
}
