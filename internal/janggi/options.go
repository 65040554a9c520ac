package janggi

import "github.com/sirupsen/logrus"

type Option func(*Game)

// WithFirstPlayer 指定先手，默认红方先走。
func WithFirstPlayer(p Player) Option {
	return func(g *Game) {
		if p == Red || p == Blue {
			g.turn = p
		}
	}
}

// WithLogger 替换默认的 logrus.StandardLogger()。
func WithLogger(l logrus.FieldLogger) Option {
	return func(g *Game) {
		if l != nil {
			g.log = l
		}
	}
}
