package janggi

type Player int8

const (
	NoPlayer Player = -1
	Red      Player = 0 // 汉，下方为 0 行
	Blue     Player = 1 // 楚，上方为 9 行
)

func (p Player) Opponent() Player {
	switch p {
	case Red:
		return Blue
	case Blue:
		return Red
	}
	return NoPlayer
}

func (p Player) String() string {
	switch p {
	case Red:
		return "RED"
	case Blue:
		return "BLUE"
	}
	return "NONE"
}

type Kind int8

const (
	NoKind   Kind = iota
	General       // 将
	Guard         // 士
	Horse         // 马
	Elephant      // 象
	Chariot       // 车
	Cannon        // 包
	Soldier       // 兵 / 卒
	numKinds
)

var kindNames = [numKinds]string{"None", "General", "Guard", "Horse", "Elephant", "Chariot", "Cannon", "Soldier"}

func (k Kind) String() string {
	if k < 0 || k >= numKinds {
		return "Kind(?)"
	}
	return kindNames[k]
}

// 每方 16 子在库存中的顺序：将1 士2 马2 象2 车2 包2 兵5
var (
	kindOffset = [numKinds]int{0, 0, 1, 3, 5, 7, 9, 11}
	kindCount  = [numKinds]int{0, 1, 2, 2, 2, 2, 2, 5}
)

const (
	InventorySize = 16
	NumPieces     = 2 * InventorySize
)

// Piece 是不可变的棋子身份：哪一方、什么兵种、同类中的第几个。
// 零值表示空格。棋子不记录自己的位置，位置永远以 Board 为准。
type Piece struct {
	Player Player
	Kind   Kind
	ID     int8
}

func (p Piece) IsZero() bool { return p.Kind == NoKind }

// Index 返回棋子在 32 格总表里的槽位（player*16 + 库存偏移）。
func (p Piece) Index() int {
	return int(p.Player)*InventorySize + kindOffset[p.Kind] + int(p.ID)
}

func (p Piece) valid() bool {
	if p.Player != Red && p.Player != Blue {
		return false
	}
	if p.Kind <= NoKind || p.Kind >= numKinds {
		return false
	}
	return p.ID >= 0 && int(p.ID) < kindCount[p.Kind]
}

// StartSquare 开局时的格子，由 (方, 兵种, 序号) 决定。
func (p Piece) StartSquare() Square {
	if !p.valid() {
		return NoSquare
	}
	return startSquares[p.Index()]
}

func (p Piece) String() string {
	if p.IsZero() {
		return "-"
	}
	return p.Player.String() + " " + p.Kind.String() + " " + string(rune('0'+p.ID))
}

type Status int8

const (
	Unfinished Status = iota
	RedWon
	BlueWon
)

func (s Status) String() string {
	switch s {
	case Unfinished:
		return "UNFINISHED"
	case RedWon:
		return "RED_WON"
	case BlueWon:
		return "BLUE_WON"
	}
	return "Status(?)"
}

func winFor(p Player) Status {
	if p == Red {
		return RedWon
	}
	return BlueWon
}
