package handlers

import (
	"errors"
	"math/rand/v2"
	"slices"
	"strconv"
	"strings"

	"pawntour/internal/tour"
)

// Maps known commands to allowed argument counts:
//
//	g       fetch the session as it stands
//	a       run one attempt from a random start
//	a x y   run one attempt from x:y
//	s       run attempts until solved or out of budget
//	f       forfeit the session
var commandNargs = map[string][]int{
	"g": {0},
	"a": {0, 2},
	"s": {0},
	"f": {0},
}

func parseXY(twoStrings []string) (x int, y int, err error) {
	if x, err = strconv.Atoi(twoStrings[0]); err != nil {
		err = errors.New("first argument must be an int")
		return
	}
	if y, err = strconv.Atoi(twoStrings[1]); err != nil {
		err = errors.New("second argument must be an int")
		return
	}
	return
}

// executeCommand applies one text command to the search state. It reports
// whether the session should be closed out (forfeit or a finished search).
func executeCommand(s *tour.SearchState, rnd *rand.Rand, c string) (stop bool, err error) {
	parts := strings.Split(c, " ")
	nargs, ok := commandNargs[parts[0]]
	if !ok {
		return false, errors.New("unknown command")
	}
	if !slices.Contains(nargs, len(parts)-1) {
		return false, errors.New("invalid number of arguments")
	}
	switch parts[0] {
	case "g":
		return false, nil
	case "a":
		start := tour.RandomStart(s.Dimension, rnd)
		if len(parts) == 3 {
			x, y, err := parseXY(parts[1:])
			if err != nil {
				return false, err
			}
			start = tour.Point{X: x, Y: y}
		}
		if _, err := s.Attempt(start); err != nil {
			if errors.Is(err, tour.ErrSearchOver) {
				return true, nil
			}
			return false, err
		}
		return s.Done(), nil
	case "s":
		if _, err := s.Run(rnd); err != nil {
			return false, err
		}
		return true, nil
	case "f":
		return true, nil
	}
	return false, errors.New("invalid command")
}
