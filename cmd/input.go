package main

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/luca-patrignani/powchain/ledger"
)

var errEmptyInput = errors.New("empty input")

func parseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errEmptyInput
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q is not a finite number", s)
	}
	return v, nil
}

func parseDifficulty(s string) (uint32, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errEmptyInput
	}
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%q is not a non-negative integer", s)
	}
	if v > ledger.MaxDifficulty {
		return 0, ledger.ErrDifficultyRange
	}
	return uint32(v), nil
}

func parseAddress(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", errEmptyInput
	}
	return s, nil
}
