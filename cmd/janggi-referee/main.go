package main

import (
	"flag"
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	movesPath := flag.String("moves", "-", "move script, one \"FROM TO\" pair per line (\"-\" = stdin)")
	first := flag.String("first", "red", "player to move first: red / blue")
	level := flag.String("log-level", "info", "log level: debug / info / warn / error")
	jsonLog := flag.Bool("log-json", false, "log as JSON")
	board := flag.Bool("board", true, "print the final board")
	strict := flag.Bool("strict", false, "stop at the first rejected move")
	flag.Parse()

	log := logrus.New()
	log.SetOutput(os.Stderr)
	if *jsonLog {
		log.SetFormatter(&logrus.JSONFormatter{})
	}
	lvl, err := logrus.ParseLevel(*level)
	if err != nil {
		log.Fatalf("bad -log-level: %v", err)
	}
	log.SetLevel(lvl)

	cfg := config{
		First:      *first,
		PrintBoard: *board,
		Strict:     *strict,
	}

	in := os.Stdin
	if *movesPath != "-" {
		f, err := os.Open(*movesPath)
		if err != nil {
			log.Fatalf("open move script: %v", err)
		}
		defer f.Close()
		in = f
	}

	res, err := run(cfg, in, os.Stdout, log)
	if err != nil {
		log.WithError(err).Error("referee stopped")
		os.Exit(1)
	}
	log.WithFields(logrus.Fields{
		"accepted": res.Accepted,
		"rejected": res.Rejected,
		"status":   res.Status,
	}).Info("done")
}
