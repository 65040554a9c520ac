package janggi

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPosition 坐标字符串格式错误（调用方错误，可恢复）。
	ErrInvalidPosition = errors.New("invalid position")

	// ErrIllegalMove 坐标合法但走法违规；下面的具体原因都包裹它。
	ErrIllegalMove = errors.New("illegal move")

	ErrGameOver    = fmt.Errorf("%w: game is over", ErrIllegalMove)
	ErrOffBoard    = fmt.Errorf("%w: square off board", ErrIllegalMove)
	ErrNoPiece     = fmt.Errorf("%w: no piece on square", ErrIllegalMove)
	ErrNotYourTurn = fmt.Errorf("%w: piece belongs to the other player", ErrIllegalMove)
	ErrUnreachable = fmt.Errorf("%w: destination not reachable", ErrIllegalMove)
	ErrSelfCheck   = fmt.Errorf("%w: own general left in check", ErrIllegalMove)
)
