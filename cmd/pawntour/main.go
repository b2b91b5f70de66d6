package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"pawntour/internal/tour"
)

var log = logrus.New()

var (
	dimension = flag.Int("d", 10, "board dimension")
	attempts  = flag.Int("n", 100, "maximum number of attempts")
	seed      = flag.Uint64("seed", 0, "seed for the random start generator (0 draws one)")
	verbose   = flag.Bool("v", false, "replay the final tour step by step")
	logFile   = flag.String("log", "", "also write JSON logs to this rotating file")
)

func setupLogging() {
	log.SetFormatter(&logrus.TextFormatter{ForceColors: true})

	if *logFile == "" {
		return
	}
	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   *logFile,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
		Level:      logrus.DebugLevel,
		Formatter:  &logrus.JSONFormatter{},
	})
	if err != nil {
		log.Fatal("unable to set up file logging: ", err)
	}
	log.AddHook(hook)
}

func newRand() *rand.Rand {
	if *seed != 0 {
		return rand.New(rand.NewPCG(*seed, *seed))
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// replay prints the board once per step, markers accumulating as the pawn
// moves.
func replay(t *tour.Tour) {
	board := tour.NewBoard(t.Board.Dim)
	for i, p := range t.Path {
		board.Cells[p.X*board.Dim+p.Y] = i + 1
		fmt.Printf("Step %d:\n\n%s\n", i+1, board)
	}
}

func main() {
	flag.Parse()
	setupLogging()

	state, err := tour.NewSearch(tour.SearchParams{
		Dimension:   *dimension,
		MaxAttempts: *attempts,
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Searching for a pawn tour of a %d x %d board\n\n", *dimension, *dimension)

	cells := *dimension * *dimension
	rnd := newRand()
	startTime := time.Now()

	for !state.Done() {
		start := tour.RandomStart(*dimension, rnd)
		log.WithFields(logrus.Fields{
			"attempt": state.AttemptsUsed + 1,
			"x":       start.X,
			"y":       start.Y,
		}).Info("starting attempt")

		t, err := state.Attempt(start)
		if err != nil {
			log.Fatal(err)
		}
		if t.Complete {
			fmt.Printf("Found a full tour from %d:%d on attempt %d\n\n",
				start.X, start.Y, state.AttemptsUsed)
		} else {
			log.Infof("attempt %d covered %d of %d cells, retrying",
				state.AttemptsUsed, len(t.Path), cells)
		}
	}
	elapsed := time.Since(startTime)

	if *verbose {
		replay(state.Last)
	} else {
		fmt.Println(state.Last.Board)
	}
	fmt.Printf("Finished after %dms\n", elapsed.Milliseconds())

	if !state.Solved {
		fmt.Printf("No full tour found in %d attempts\n", state.AttemptsUsed)
		os.Exit(1)
	}
}
