package janggi

import "sync"

// Locked 给单个 Game 加一把互斥锁，整个走子提交流程（包括试走和撤回）都在锁内，
// 外部读者不可能看到试走中途的棋盘。不同对局之间没有共享状态。
type Locked struct {
	mu sync.Mutex
	g  *Game
}

func NewLocked(g *Game) *Locked {
	return &Locked{g: g}
}

func (l *Locked) MakeMove(from, to string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.g.MakeMove(from, to)
}

func (l *Locked) Move(from, to Square) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.g.Move(from, to)
}

func (l *Locked) State() Status {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.g.State()
}

func (l *Locked) Turn() Player {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.g.Turn()
}

func (l *Locked) Snapshot() Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.g.Snapshot()
}

func (l *Locked) IsInCheck(p Player) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.g.IsInCheck(p)
}
