package janggi

// moveTx 是一次试走：apply 时立即落子，只记最小差异（起点、终点、被吃的子）。
// commit 不做任何事；rollback 在未 commit 时把差异原样退回，可放心 defer。
type moveTx struct {
	b        *Board
	from, to Square
	mover    Piece
	captured Piece
	closed   bool
}

// apply 调用方保证 from 上有子、两个格子都在盘内。from == to 表示停着。
func (b *Board) apply(from, to Square) *moveTx {
	tx := &moveTx{b: b, from: from, to: to}
	if from == to {
		tx.mover = b.squares[from]
		return tx
	}
	tx.captured = b.remove(to)
	tx.mover = b.remove(from)
	b.place(to, tx.mover)
	return tx
}

func (tx *moveTx) commit() { tx.closed = true }

func (tx *moveTx) rollback() {
	if tx.closed {
		return
	}
	tx.closed = true
	if tx.from == tx.to {
		return
	}
	tx.b.remove(tx.to)
	tx.b.place(tx.from, tx.mover)
	tx.b.place(tx.to, tx.captured)
}
