package janggi

import (
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"
)

func sq(s string) Square { return MustParseSquare(s) }

// rc 用 (行, 列) 构造格子，和规则说明里的写法一致。
func rc(row, col int) Square { return indexOf(row, col) }

func set(squares ...Square) SquareSet { return setOf(squares...) }

func quietGame(opts ...Option) *Game {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return NewGame(append([]Option{WithLogger(l)}, opts...)...)
}

// relocate 不经规则直接挪子（目标格原有的子被拿掉），用来搭测试局面。
func relocate(t *testing.T, g *Game, from, to Square) {
	t.Helper()
	pc := g.board.remove(from)
	if pc.IsZero() {
		t.Fatalf("relocate: no piece on %s", from)
	}
	g.board.remove(to)
	g.board.place(to, pc)
}

func assertDests(t *testing.T, g *Game, from Square, want SquareSet) {
	t.Helper()
	got := g.LegalDestinations(from)
	if got != want {
		t.Errorf("LegalDestinations(%s) mismatch:\n got  %s\n want %s", from, got, want)
	}
}

var boardCmp = cmp.AllowUnexported(Board{})

func assertBoardEqual(t *testing.T, want, got Board) {
	t.Helper()
	if diff := cmp.Diff(want, got, boardCmp); diff != "" {
		t.Fatalf("board mismatch (-want +got):\n%s", diff)
	}
}
