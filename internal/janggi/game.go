package janggi

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Game 是裁判：持有棋盘、双方库存、轮次和胜负状态。
// 棋盘只在 Move 的提交流程里被修改。Game 本身不是并发安全的，见 Locked。
type Game struct {
	id        string
	board     Board
	inventory [2][InventorySize]Piece
	turn      Player
	status    Status
	moves     int
	log       logrus.FieldLogger
}

// NewGame 按标准开局摆子，默认红方先走，状态为 UNFINISHED。
func NewGame(opts ...Option) *Game {
	g := &Game{
		id:     uuid.NewString(),
		board:  newInitialBoard(),
		turn:   Red,
		status: Unfinished,
		log:    logrus.StandardLogger(),
	}
	g.inventory[Red] = inventoryOf(Red)
	g.inventory[Blue] = inventoryOf(Blue)
	for _, opt := range opts {
		opt(g)
	}
	g.log = g.log.WithField("game", g.id)
	return g
}

func (g *Game) ID() string     { return g.id }
func (g *Game) Turn() Player   { return g.turn }
func (g *Game) State() Status  { return g.status }
func (g *Game) MoveCount() int { return g.moves }

// Hash 棋盘哈希再叠加走子方。
func (g *Game) Hash() uint64 { return g.board.Hash() ^ sideHash(g.turn) }

// Inventory 按固定顺序返回一方开局时的 16 子，被吃的子也在其中。
func (g *Game) Inventory(p Player) []Piece {
	if p != Red && p != Blue {
		return nil
	}
	inv := g.inventory[p]
	return inv[:]
}

// Locate 返回棋子当前位置，被吃掉的子返回 NoSquare。
func (g *Game) Locate(pc Piece) Square { return g.board.Locate(pc) }

func (g *Game) PieceAt(sq Square) Piece { return g.board.At(sq) }

func (g *Game) LegalDestinations(from Square) SquareSet {
	return LegalDestinations(&g.board, from)
}

func (g *Game) IsInCheck(p Player) bool          { return g.board.IsInCheck(p) }
func (g *Game) IsCheckmate(p Player) bool        { return g.board.IsCheckmate(p) }
func (g *Game) Snapshot() Snapshot               { return newSnapshot(g) }
func (g *Game) AttemptMove(from, to Square) bool { return g.Move(from, to) == nil }

// MakeMove 字符串坐标入口：任何坐标错误或违规走法都只返回 false。
func (g *Game) MakeMove(from, to string) bool {
	err := g.MoveString(from, to)
	return err == nil
}

// MoveString 与 MakeMove 相同，但返回具体原因。
func (g *Game) MoveString(from, to string) error {
	f, err := ParseSquare(from)
	if err != nil {
		g.log.WithFields(logrus.Fields{"from": from, "to": to}).WithError(err).Debug("move rejected")
		return err
	}
	t, err := ParseSquare(to)
	if err != nil {
		g.log.WithFields(logrus.Fields{"from": from, "to": to}).WithError(err).Debug("move rejected")
		return err
	}
	return g.Move(f, t)
}

// Move 走子提交流程：
//  1. 检查状态、坐标、棋子归属以及落点是否在该子的落点集合中；
//  2. 试走（from == to 即停着）；
//  3. 试走后自己被将军则撤回并拒绝；
//  4. 否则提交、换边，并判断对方是否被将死。
//
// 所有失败都包裹 ErrIllegalMove，且棋盘不变。
func (g *Game) Move(from, to Square) (err error) {
	mover := g.turn
	entry := g.log.WithFields(logrus.Fields{"player": mover, "from": from, "to": to})
	defer func() {
		if err != nil {
			entry.WithError(err).Debug("move rejected")
		}
	}()

	if g.status != Unfinished {
		return ErrGameOver
	}
	if !from.Valid() || !to.Valid() {
		return ErrOffBoard
	}
	pc := g.board.At(from)
	if pc.IsZero() {
		return ErrNoPiece
	}
	if pc.Player != mover {
		return ErrNotYourTurn
	}
	if !LegalDestinations(&g.board, from).Has(to) {
		return fmt.Errorf("%w: %s cannot reach %s", ErrUnreachable, pc.Kind, to)
	}

	tx := g.board.apply(from, to)
	defer tx.rollback()
	if g.board.IsInCheck(mover) {
		return ErrSelfCheck
	}
	tx.commit()

	g.moves++
	g.turn = mover.Opponent()
	entry = entry.WithField("piece", pc.Kind)
	if !tx.captured.IsZero() {
		entry = entry.WithField("captured", tx.captured.Kind)
	}
	entry.Debug("move accepted")

	opp := g.turn
	switch {
	case g.board.General(opp) == NoSquare:
		// 正常对局不会出现：对方的将已被吃掉
		g.status = winFor(mover)
	case g.board.IsCheckmate(opp):
		g.status = winFor(mover)
	}
	if g.status != Unfinished {
		g.log.WithFields(logrus.Fields{"status": g.status, "moves": g.moves}).Info("game over")
	}
	return nil
}

// IsIllegalMove 便于调用方区分“走法违规”和“坐标写错”。
func IsIllegalMove(err error) bool { return errors.Is(err, ErrIllegalMove) }
