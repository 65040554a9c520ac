package janggi

import "sync"

var (
	zobristOnce sync.Once

	zobristPieces [2][numKinds][NumSquares]uint64
	zobristSide   uint64
)

func initZobrist() {
	zobristOnce.Do(func() {
		seed := uint64(0x9E3779B97F4A7C15)
		next := func() uint64 {
			seed += 0x9E3779B97F4A7C15
			z := seed
			z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
			z = (z ^ (z >> 27)) * 0x94D049BB133111EB
			return z ^ (z >> 31)
		}

		for side := 0; side < 2; side++ {
			for k := General; k < numKinds; k++ {
				for sq := 0; sq < NumSquares; sq++ {
					zobristPieces[side][k][sq] = next()
				}
			}
		}
		zobristSide = next()
	})
}

// pieceHashKey 只看 (方, 兵种, 格子)，同种棋子互换不改变哈希。
func pieceHashKey(pc Piece, sq Square) uint64 {
	if pc.IsZero() || !sq.Valid() {
		return 0
	}
	if pc.Player != Red && pc.Player != Blue {
		return 0
	}
	initZobrist()
	return zobristPieces[pc.Player][pc.Kind][sq]
}

// CalculateHash 全量重算棋盘哈希，用来校验增量维护的结果。
func (b *Board) CalculateHash() uint64 {
	var h uint64
	for sq := Square(0); sq < NumSquares; sq++ {
		h ^= pieceHashKey(b.squares[sq], sq)
	}
	return h
}

func sideHash(turn Player) uint64 {
	if turn != Blue {
		return 0
	}
	initZobrist()
	return zobristSide
}
