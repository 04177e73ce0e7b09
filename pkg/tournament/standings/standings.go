// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package standings ranks the players of a tournament from its played
// rounds. Every figure is recomputed from the round history on each call,
// so editing an old result is always reflected consistently.
package standings

import (
	"errors"
	"sort"

	"laptudirm.com/x/swiss/pkg/tournament/pair"
	"laptudirm.com/x/swiss/pkg/tournament/player"
)

var ErrUnknownRound = errors.New("unknown round")

// Standing is a player's line in the standings table.
type Standing struct {
	Player player.Player
	Rank   int

	// Number of pairs won.
	Wins int
	// Sum of the wins of every opponent faced (strength of schedule).
	OpponentWins int
	// Sum of the wins of every opponent beaten (strength of victory).
	DefeatedOpponentWins int
}

// WinCount returns the number of pairs won by ref over the given rounds.
// The bye never wins.
func WinCount(ref player.Ref, played []pair.Round) int {
	if ref.Bye {
		return 0
	}

	wins := 0
	for _, round := range played {
		for _, p := range round.Pairs {
			if p.Won(ref) {
				wins++
			}
		}
	}

	return wins
}

// OpponentWinCount sums the wins of every opponent ref has been paired
// against, whatever the result. A bye opponent counts as zero.
func OpponentWinCount(ref player.Ref, played []pair.Round) int {
	return opponentWins(ref, played, func(pair.Pair) bool { return true })
}

// DefeatedOpponentWinCount sums the wins of every opponent ref has beaten.
func DefeatedOpponentWinCount(ref player.Ref, played []pair.Round) int {
	return opponentWins(ref, played, func(p pair.Pair) bool { return p.Won(ref) })
}

func opponentWins(ref player.Ref, played []pair.Round, include func(pair.Pair) bool) int {
	sum := 0
	for _, round := range played {
		for _, p := range round.Pairs {
			if !p.Has(ref) || !include(p) {
				continue
			}

			opponent, _ := p.Opponent(ref)
			sum += WinCount(opponent, played)
		}
	}

	return sum
}

// WinCountBefore returns the wins of ref in the rounds played before the
// round with the given id.
func WinCountBefore(ref player.Ref, played []pair.Round, id pair.ID) (int, error) {
	index := pair.IndexOf(played, id)
	if index < 0 {
		return 0, ErrUnknownRound
	}

	return WinCount(ref, played[:index]), nil
}

// Compute returns the standings of the given players, best first. Players
// are ordered by wins, then opponent wins, then defeated opponent wins.
// Players tied on all three share a rank and keep their roster order.
func Compute(players []player.Player, played []pair.Round) []Standing {
	table := make([]Standing, len(players))
	for i, p := range players {
		ref := p.Ref()
		table[i] = Standing{
			Player:               p,
			Wins:                 WinCount(ref, played),
			OpponentWins:         OpponentWinCount(ref, played),
			DefeatedOpponentWins: DefeatedOpponentWinCount(ref, played),
		}
	}

	sort.SliceStable(table, func(i, j int) bool {
		return table[i].ranksAbove(table[j])
	})

	for i := range table {
		if i > 0 && !table[i-1].ranksAbove(table[i]) {
			table[i].Rank = table[i-1].Rank
			continue
		}

		table[i].Rank = i + 1
	}

	return table
}

func (a Standing) ranksAbove(b Standing) bool {
	switch {
	case a.Wins != b.Wins:
		return a.Wins > b.Wins
	case a.OpponentWins != b.OpponentWins:
		return a.OpponentWins > b.OpponentWins
	default:
		return a.DefeatedOpponentWins > b.DefeatedOpponentWins
	}
}
