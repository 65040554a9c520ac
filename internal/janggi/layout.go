package janggi

import (
	"fmt"
	"strings"
	"unicode"
)

// 棋子字母：大写红方，小写蓝方
var letterToKind = map[rune]Kind{
	'k': General,
	'a': Guard,
	'h': Horse,
	'e': Elephant,
	'r': Chariot,
	'c': Cannon,
	'p': Soldier,
}

var kindToLetter = [numKinds]rune{'.', 'k', 'a', 'h', 'e', 'r', 'c', 'p'}

func pieceToChar(p Piece) rune {
	if p.IsZero() {
		return '.'
	}
	ch := kindToLetter[p.Kind]
	if p.Player == Red {
		return unicode.ToUpper(ch)
	}
	return ch
}

// 红方半盘（0..3 行）。蓝方是它沿楚河汉界的镜像：row -> 9-row，列不变。
const redHalfString = `REHA.AEHR
....K....
.C.....C.
P.P.P.P.P`

var startSquares [NumPieces]Square

func init() {
	parseStartSquares()
}

// 同一兵种按从左到右的顺序编号，例如左车为 0 号、右车为 1 号。
func parseStartSquares() {
	for i := range startSquares {
		startSquares[i] = NoSquare
	}
	lines := strings.Split(redHalfString, "\n")
	if len(lines) != 4 {
		panic("redHalfString 行数不为 4")
	}
	var next [numKinds]int8
	for r, line := range lines {
		line = strings.TrimSpace(line)
		if len(line) != Cols {
			panic("redHalfString 列数不为 9")
		}
		for c, ch := range line {
			if ch == '.' {
				continue
			}
			kind, ok := letterToKind[unicode.ToLower(ch)]
			if !ok {
				panic("unknown piece letter: " + string(ch))
			}
			id := next[kind]
			next[kind]++
			red := Piece{Player: Red, Kind: kind, ID: id}
			blue := Piece{Player: Blue, Kind: kind, ID: id}
			if !red.valid() {
				panic("too many pieces of kind " + kind.String())
			}
			startSquares[red.Index()] = indexOf(r, c)
			startSquares[blue.Index()] = indexOf(Rows-1-r, c)
		}
	}
	for i, sq := range startSquares {
		if sq == NoSquare {
			panic(fmt.Sprintf("piece slot %d has no start square", i))
		}
	}
}

// inventoryOf 按固定顺序列出一方的 16 子。
func inventoryOf(p Player) [InventorySize]Piece {
	var inv [InventorySize]Piece
	for k := General; k < numKinds; k++ {
		for id := 0; id < kindCount[k]; id++ {
			pc := Piece{Player: p, Kind: k, ID: int8(id)}
			inv[pc.Index()-int(p)*InventorySize] = pc
		}
	}
	return inv
}
