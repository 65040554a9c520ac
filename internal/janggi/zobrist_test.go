package janggi

import "testing"

func TestHashInitialMatchesFullRecompute(t *testing.T) {
	g := quietGame()
	if g.board.Hash() != g.board.CalculateHash() {
		t.Fatalf("initial hash mismatch: got=%d want=%d", g.board.Hash(), g.board.CalculateHash())
	}
	if g.board.Hash() == 0 {
		t.Fatalf("initial hash is zero")
	}
}

func TestMoveHashIncrementalMatchesFullRecompute(t *testing.T) {
	g := quietGame()
	for ply := 0; ply < 24 && g.State() == Unfinished; ply++ {
		type move struct{ from, to Square }
		var moves []move
		for _, pc := range g.board.Pieces(g.Turn()) {
			from := g.Locate(pc)
			for _, to := range g.LegalDestinations(from).Squares() {
				if to != from {
					moves = append(moves, move{from, to})
				}
			}
		}
		if len(moves) == 0 {
			return
		}
		mv := moves[len(moves)/2]
		if err := g.Move(mv.from, mv.to); err != nil {
			// 试走被拒绝时棋盘不变，哈希也必须不变
			if g.board.Hash() != g.board.CalculateHash() {
				t.Fatalf("hash drifted after rejected move at ply %d", ply)
			}
			continue
		}
		if got, want := g.board.Hash(), g.board.CalculateHash(); got != want {
			t.Fatalf("hash mismatch at ply %d: got=%d want=%d move=%s-%s", ply, got, want, mv.from, mv.to)
		}
	}
}

func TestHashIncludesSideToMove(t *testing.T) {
	red := quietGame()
	blue := quietGame(WithFirstPlayer(Blue))
	if red.Hash() == blue.Hash() {
		t.Fatalf("same position with different side to move hashed equal: %d", red.Hash())
	}
	if red.Snapshot().Hash() != red.Hash() {
		t.Fatalf("snapshot hash %d != game hash %d", red.Snapshot().Hash(), red.Hash())
	}
}
