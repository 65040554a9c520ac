package janggi

import (
	"fmt"
	"math/bits"
	"strings"

	"golang.org/x/text/width"
)

const (
	Rows       = 10
	Cols       = 9
	NumSquares = Rows * Cols

	NoSquare Square = -1
)

// Square 是 row*Cols+col 形式的格子下标。
type Square int

func indexOf(row, col int) Square { return Square(row*Cols + col) }

func onBoard(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Cols
}

// SquareAt 越界时返回 NoSquare。
func SquareAt(row, col int) Square {
	if !onBoard(row, col) {
		return NoSquare
	}
	return indexOf(row, col)
}

func (s Square) Row() int    { return int(s) / Cols }
func (s Square) Col() int    { return int(s) % Cols }
func (s Square) Valid() bool { return s >= 0 && s < NumSquares }

// String 与 ParseSquare 互逆：列字母 + 从 1 开始的行号，如 E2。
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return fmt.Sprintf("%c%d", 'A'+s.Col(), s.Row()+1)
}

// ParseSquare 解析 "A1".."I10"（字母不区分大小写）。
// 全角输入（如 "Ｅ２"）先折成半角再解析。
func ParseSquare(s string) (Square, error) {
	str := width.Narrow.String(s)
	if len(str) < 2 || len(str) > 3 {
		return NoSquare, fmt.Errorf("%w: %q", ErrInvalidPosition, s)
	}
	letter := str[0] | 0x20 // 转小写
	if letter < 'a' || letter > 'a'+Cols-1 {
		return NoSquare, fmt.Errorf("%w: column %q", ErrInvalidPosition, s)
	}
	digits := str[1:]
	if digits[0] == '0' {
		return NoSquare, fmt.Errorf("%w: row %q", ErrInvalidPosition, s)
	}
	n := 0
	for i := 0; i < len(digits); i++ {
		ch := digits[i]
		if ch < '0' || ch > '9' {
			return NoSquare, fmt.Errorf("%w: row %q", ErrInvalidPosition, s)
		}
		n = n*10 + int(ch-'0')
	}
	if n < 1 || n > Rows {
		return NoSquare, fmt.Errorf("%w: row %q", ErrInvalidPosition, s)
	}
	return indexOf(n-1, int(letter-'a')), nil
}

// MustParseSquare 用于常量坐标；解析失败直接 panic。
func MustParseSquare(s string) Square {
	sq, err := ParseSquare(s)
	if err != nil {
		panic(err)
	}
	return sq
}

// SquareSet 是 90 个格子的位集合。
type SquareSet [2]uint64

func (ss *SquareSet) Add(s Square) {
	if !s.Valid() {
		return
	}
	ss[s>>6] |= 1 << (uint(s) & 63)
}

func (ss SquareSet) Has(s Square) bool {
	if !s.Valid() {
		return false
	}
	return ss[s>>6]&(1<<(uint(s)&63)) != 0
}

func (ss SquareSet) Len() int {
	return bits.OnesCount64(ss[0]) + bits.OnesCount64(ss[1])
}

// Squares 按下标升序返回。
func (ss SquareSet) Squares() []Square {
	out := make([]Square, 0, ss.Len())
	for w := 0; w < len(ss); w++ {
		word := ss[w]
		for word != 0 {
			b := bits.TrailingZeros64(word)
			out = append(out, Square(w*64+b))
			word &= word - 1
		}
	}
	return out
}

func (ss SquareSet) String() string {
	parts := make([]string, 0, ss.Len())
	for _, s := range ss.Squares() {
		parts = append(parts, s.String())
	}
	return "{" + strings.Join(parts, " ") + "}"
}

func setOf(squares ...Square) SquareSet {
	var ss SquareSet
	for _, s := range squares {
		ss.Add(s)
	}
	return ss
}
