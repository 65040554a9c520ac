package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"janggi/internal/janggi"
)

type config struct {
	First      string
	PrintBoard bool
	Strict     bool
}

type result struct {
	Accepted int
	Rejected int
	Status   janggi.Status
	Turn     janggi.Player
}

func parsePlayer(s string) (janggi.Player, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "red", "r", "han":
		return janggi.Red, nil
	case "blue", "b", "cho":
		return janggi.Blue, nil
	}
	return janggi.NoPlayer, fmt.Errorf("unknown player %q", s)
}

// run 逐行读走法脚本交给裁判。空行和 # 开头的行跳过；每行两个坐标，如 "E7 E6"。
func run(cfg config, in io.Reader, out io.Writer, log logrus.FieldLogger) (result, error) {
	var res result
	first, err := parsePlayer(cfg.First)
	if err != nil {
		return res, err
	}
	g := janggi.NewGame(janggi.WithFirstPlayer(first), janggi.WithLogger(log))
	log = log.WithField("game", g.ID())

	sc := bufio.NewScanner(in)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			err := fmt.Errorf("line %d: want \"FROM TO\", got %q", lineNo, line)
			if cfg.Strict {
				return res, err
			}
			log.Warn(err)
			res.Rejected++
			continue
		}
		player := g.Turn()
		if err := g.MoveString(fields[0], fields[1]); err != nil {
			res.Rejected++
			log.WithFields(logrus.Fields{"line": lineNo, "player": player}).WithError(err).Warn("rejected")
			fmt.Fprintf(out, "%d: %s %s %s rejected (%v)\n", lineNo, player, fields[0], fields[1], err)
			if cfg.Strict {
				return res, err
			}
			continue
		}
		res.Accepted++
		fmt.Fprintf(out, "%d: %s %s %s ok\n", lineNo, player, fields[0], fields[1])
		if opp := g.Turn(); g.IsInCheck(opp) {
			fmt.Fprintf(out, "%d: %s is in check\n", lineNo, opp)
		}
	}
	if err := sc.Err(); err != nil {
		return res, fmt.Errorf("read move script: %w", err)
	}

	snap := g.Snapshot()
	res.Status = snap.Status()
	res.Turn = snap.Turn()
	if cfg.PrintBoard {
		fmt.Fprint(out, snap.String())
	}
	fmt.Fprintf(out, "status: %s, to move: %s\n", res.Status, res.Turn)
	log.WithField("position", snap.Encode()).Debug("final position")
	return res, nil
}
