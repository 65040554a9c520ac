package janggi

import (
	"fmt"
	"strings"
)

// Snapshot 是某一时刻的只读副本，给渲染/日志用；之后的走子不会影响它。
type Snapshot struct {
	board  Board
	turn   Player
	status Status
}

func newSnapshot(g *Game) Snapshot {
	return Snapshot{board: g.board, turn: g.turn, status: g.status}
}

func (s Snapshot) At(sq Square) Piece      { return s.board.At(sq) }
func (s Snapshot) Locate(pc Piece) Square  { return s.board.Locate(pc) }
func (s Snapshot) Pieces(p Player) []Piece { return s.board.Pieces(p) }
func (s Snapshot) Turn() Player            { return s.turn }
func (s Snapshot) Status() Status          { return s.status }
func (s Snapshot) Hash() uint64            { return s.board.Hash() ^ sideHash(s.turn) }

// Encode 类 FEN：10 行用 "/" 隔开（第 1 行在前），空位用数字压缩；空格后 r/b 表示走子方。
// 只用于日志和调试，不提供反向解析。
func (s Snapshot) Encode() string {
	var sb strings.Builder
	for r := 0; r < Rows; r++ {
		if r > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for c := 0; c < Cols; c++ {
			pc := s.board.squares[indexOf(r, c)]
			if pc.IsZero() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteRune(pieceToChar(pc))
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}
	sb.WriteByte(' ')
	if s.turn == Blue {
		sb.WriteByte('b')
	} else {
		sb.WriteByte('r')
	}
	return sb.String()
}

// String 画出棋盘，行号 10 在上、1 在下，列字母在底部。
func (s Snapshot) String() string {
	var sb strings.Builder
	for r := Rows - 1; r >= 0; r-- {
		fmt.Fprintf(&sb, "%2d ", r+1)
		for c := 0; c < Cols; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteRune(pieceToChar(s.board.squares[indexOf(r, c)]))
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("   A B C D E F G H I\n")
	return sb.String()
}
