package janggi

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestInitialLayout(t *testing.T) {
	g := quietGame()
	want := [Rows]string{
		"REHA.AEHR",
		"....K....",
		".C.....C.",
		"P.P.P.P.P",
		".........",
		".........",
		"p.p.p.p.p",
		".c.....c.",
		"....k....",
		"reha.aehr",
	}
	for r := 0; r < Rows; r++ {
		var got []rune
		for c := 0; c < Cols; c++ {
			got = append(got, pieceToChar(g.PieceAt(rc(r, c))))
		}
		if string(got) != want[r] {
			t.Errorf("row %d = %q, want %q", r, string(got), want[r])
		}
	}
	if g.Turn() != Red {
		t.Errorf("first turn = %s, want RED", g.Turn())
	}
	if g.State() != Unfinished {
		t.Errorf("status = %s, want UNFINISHED", g.State())
	}
}

func TestInventory(t *testing.T) {
	g := quietGame()
	wantKinds := []Kind{General, Guard, Guard, Horse, Horse, Elephant, Elephant,
		Chariot, Chariot, Cannon, Cannon, Soldier, Soldier, Soldier, Soldier, Soldier}
	seen := make(map[Piece]bool)
	for _, p := range []Player{Red, Blue} {
		inv := g.Inventory(p)
		var kinds []Kind
		for _, pc := range inv {
			kinds = append(kinds, pc.Kind)
			if pc.Player != p {
				t.Errorf("%s inventory holds %s", p, pc)
			}
			if seen[pc] {
				t.Errorf("duplicate piece identity %s", pc)
			}
			seen[pc] = true
			if loc := g.Locate(pc); loc != pc.StartSquare() || g.PieceAt(loc) != pc {
				t.Errorf("%s at %s, start square %s", pc, loc, pc.StartSquare())
			}
		}
		if diff := cmp.Diff(wantKinds, kinds); diff != "" {
			t.Errorf("%s inventory kinds (-want +got):\n%s", p, diff)
		}
	}
	if len(seen) != NumPieces {
		t.Errorf("got %d distinct pieces, want %d", len(seen), NumPieces)
	}
}

func TestStartSquares(t *testing.T) {
	tests := []struct {
		pc   Piece
		want Square
	}{
		{Piece{Red, General, 0}, rc(1, 4)},
		{Piece{Blue, General, 0}, rc(8, 4)},
		{Piece{Red, Guard, 0}, rc(0, 3)},
		{Piece{Red, Guard, 1}, rc(0, 5)},
		{Piece{Blue, Guard, 0}, rc(9, 3)},
		{Piece{Blue, Guard, 1}, rc(9, 5)},
		{Piece{Red, Horse, 0}, rc(0, 2)},
		{Piece{Red, Horse, 1}, rc(0, 7)},
		{Piece{Blue, Horse, 1}, rc(9, 7)},
		{Piece{Red, Elephant, 0}, rc(0, 1)},
		{Piece{Red, Elephant, 1}, rc(0, 6)},
		{Piece{Blue, Elephant, 0}, rc(9, 1)},
		{Piece{Red, Chariot, 0}, rc(0, 0)},
		{Piece{Blue, Chariot, 1}, rc(9, 8)},
		{Piece{Red, Cannon, 0}, rc(2, 1)},
		{Piece{Blue, Cannon, 1}, rc(7, 7)},
		{Piece{Red, Soldier, 0}, rc(3, 0)},
		{Piece{Red, Soldier, 4}, rc(3, 8)},
		{Piece{Blue, Soldier, 2}, rc(6, 4)},
		{Piece{Blue, Soldier, 5}, NoSquare},
		{Piece{}, NoSquare},
	}
	for _, tt := range tests {
		if got := tt.pc.StartSquare(); got != tt.want {
			t.Errorf("%s.StartSquare() = %s, want %s", tt.pc, got, tt.want)
		}
	}
}

func TestFortressAndDiagonals(t *testing.T) {
	red := set(rc(0, 3), rc(0, 4), rc(0, 5), rc(1, 3), rc(1, 4), rc(1, 5), rc(2, 3), rc(2, 4), rc(2, 5))
	blue := set(rc(7, 3), rc(7, 4), rc(7, 5), rc(8, 3), rc(8, 4), rc(8, 5), rc(9, 3), rc(9, 4), rc(9, 5))
	if got := Fortress(Red); got != red {
		t.Errorf("Fortress(Red) = %s", got)
	}
	if got := Fortress(Blue); got != blue {
		t.Errorf("Fortress(Blue) = %s", got)
	}

	tests := []struct {
		from Square
		want SquareSet
	}{
		{rc(1, 4), set(rc(0, 3), rc(0, 5), rc(2, 3), rc(2, 5))},
		{rc(7, 5), set(rc(8, 4))},
		{rc(0, 3), set(rc(1, 4))},
		{rc(8, 5), set()},
		{rc(4, 4), set()},
	}
	for _, tt := range tests {
		if got := PalaceDiagonals(tt.from); got != tt.want {
			t.Errorf("PalaceDiagonals(%s) = %s, want %s", tt.from, got, tt.want)
		}
	}
}

func TestBoardReverseIndexAndHash(t *testing.T) {
	b := newInitialBoard()
	if b.Hash() != b.CalculateHash() {
		t.Fatalf("initial hash mismatch: got=%d want=%d", b.Hash(), b.CalculateHash())
	}
	horse := Piece{Red, Horse, 0}
	captured := b.remove(rc(6, 4))
	b.remove(horse.StartSquare())
	b.place(rc(6, 4), horse)

	if b.Locate(horse) != rc(6, 4) || b.At(rc(6, 4)) != horse {
		t.Errorf("horse not indexed at %s", rc(6, 4))
	}
	if b.Locate(captured) != NoSquare {
		t.Errorf("captured %s still located at %s", captured, b.Locate(captured))
	}
	if b.Hash() != b.CalculateHash() {
		t.Errorf("incremental hash drifted")
	}
	if n := len(b.Pieces(Blue)); n != InventorySize-1 {
		t.Errorf("blue pieces on board = %d, want %d", n, InventorySize-1)
	}
}
