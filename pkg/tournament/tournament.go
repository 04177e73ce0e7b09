// Copyright © 2023 Rak Laptudirm <rak@laptudirm.com>
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

// Package tournament runs a round robin tournament whose rounds are
// released one at a time in Swiss order.
//
// The whole schedule is generated when the first round is requested. Every
// later request picks, out of the rounds not played yet, the one whose
// pairs are closest in wins. Results may be changed at any time; standings
// are always computed from the full history.
package tournament

import (
	"errors"
	"fmt"
	"math/rand"
	"slices"
	"time"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/swiss/pkg/tournament/pair"
	"laptudirm.com/x/swiss/pkg/tournament/player"
	"laptudirm.com/x/swiss/pkg/tournament/schedule"
	"laptudirm.com/x/swiss/pkg/tournament/standings"
	"laptudirm.com/x/swiss/pkg/tournament/swiss"
)

var (
	ErrNotEnoughPlayers = errors.New("at least two players are needed")
	ErrDuplicatePlayer  = errors.New("duplicate player id")
	ErrUnknownPlayer    = errors.New("unknown player")
	ErrUnknownRound     = standings.ErrUnknownRound
	ErrUnknownPair      = errors.New("unknown pair")
	ErrByePair          = errors.New("result of a bye cannot be changed")
	ErrInvalidState     = errors.New("saved state does not match the roster")
)

// Outcome is the result of an attempt to advance the tournament.
type Outcome int

const (
	// Advanced means a new round has been released.
	Advanced Outcome = iota

	// Exhausted means every round of the schedule has been released.
	Exhausted

	// PreviousIncomplete means a released round still has unresolved pairs.
	PreviousIncomplete
)

func (outcome Outcome) String() string {
	switch outcome {
	case Advanced:
		return "advanced"
	case Exhausted:
		return "schedule exhausted"
	case PreviousIncomplete:
		return "previous round incomplete"
	default:
		return "unknown outcome"
	}
}

// NewTournament creates a tournament from the given configuration. A
// configuration saved with Wrap resumes where it left off.
func NewTournament(config Config) (*Tournament, error) {
	var tour Tournament

	var err error
	tour.scheduler, err = schedule.New(config.Scheduler)
	if err != nil {
		return nil, err
	}

	if err := checkRoster(config.Players); err != nil {
		return nil, err
	}

	if err := checkState(config.Players, config.State); err != nil {
		return nil, err
	}

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	tour.rng = rand.New(rand.NewSource(seed))

	tour.config = config.clone()
	return &tour, nil
}

// Tournament holds the roster, the released rounds and the rounds still
// waiting to be played. It is not safe for concurrent use.
type Tournament struct {
	config Config

	scheduler schedule.Scheduler
	rng       *rand.Rand
}

// Name returns the name of the tournament.
func (tour *Tournament) Name() string {
	return tour.config.Name
}

// Advance releases the next round. The schedule is generated on the first
// call. The returned round is a copy; results are recorded with
// RecordResult.
func (tour *Tournament) Advance() (Outcome, pair.Round, error) {
	state := &tour.config.State

	if !tour.Started() {
		if len(tour.config.Players) < 2 {
			return Exhausted, pair.Round{}, ErrNotEnoughPlayers
		}

		state.Pending = tour.generate()
	}

	if len(state.Pending) == 0 {
		return Exhausted, pair.Round{}, nil
	}

	for _, round := range state.Played {
		if !round.Complete() {
			return PreviousIncomplete, pair.Round{}, nil
		}
	}

	index := swiss.Next(state.Pending, state.Played)
	round := state.Pending[index]
	resolveByes(&round)

	state.Pending = slices.Delete(state.Pending, index, index+1)
	state.Played = append(state.Played, round)

	logrus.Debugf(
		"%s: released round %d (%d pending)",
		tour.config.Name, len(state.Played), len(state.Pending),
	)

	return Advanced, round.Clone(), nil
}

// generate builds the full schedule for the current roster.
func (tour *Tournament) generate() []pair.Round {
	seats := seating(tour.config.Players, tour.rng)
	tour.scheduler.Initialize(len(seats))

	rounds := make([]pair.Round, tour.scheduler.TotalRounds())
	for i := range rounds {
		encounters := tour.scheduler.NextRound()

		pairs := make([]pair.Pair, len(encounters))
		for j, encounter := range encounters {
			pairs[j] = pair.New(seats[encounter.Left], seats[encounter.Right])
		}

		rounds[i] = pair.NewRound(pairs...)
	}

	logrus.Debugf(
		"%s: generated %d rounds for %d seats",
		tour.config.Name, len(rounds), len(seats),
	)

	return rounds
}

// RecordResult votes for the given side of a pair in a released round.
// Voting for the current winner again clears the result. The tournament is
// left untouched if an error is returned.
func (tour *Tournament) RecordResult(roundID, pairID pair.ID, side pair.Side) error {
	if !side.Valid() {
		return pair.ErrInvalidSide
	}

	played := tour.config.State.Played

	index := pair.IndexOf(played, roundID)
	if index < 0 {
		return fmt.Errorf("record result: round %s: %w", roundID, ErrUnknownRound)
	}

	p, found := played[index].Find(pairID)
	if !found {
		return fmt.Errorf("record result: pair %s: %w", pairID, ErrUnknownPair)
	}

	if p.IsBye() {
		return fmt.Errorf("record result: pair %s: %w", pairID, ErrByePair)
	}

	logrus.Tracef("%s: pair %s: %s selected, was %s", tour.config.Name, pairID, side, p.Winner)
	return p.Select(side)
}

// Reset drops the schedule, both released and pending rounds.
func (tour *Tournament) Reset() {
	tour.config.State = State{}
	logrus.Debugf("%s: schedule reset", tour.config.Name)
}

// SetPlayers replaces the roster. Since the schedule depends on the
// roster, the tournament is reset.
func (tour *Tournament) SetPlayers(players []player.Player) error {
	if err := checkRoster(players); err != nil {
		return err
	}

	tour.config.Players = slices.Clone(players)
	tour.Reset()
	return nil
}

// Rename changes the display name of a player. The schedule is kept.
func (tour *Tournament) Rename(id player.ID, name string) error {
	for i := range tour.config.Players {
		if tour.config.Players[i].ID == id {
			tour.config.Players[i].Name = name
			return nil
		}
	}

	return fmt.Errorf("rename %s: %w", id, ErrUnknownPlayer)
}

// Players returns the roster.
func (tour *Tournament) Players() []player.Player {
	return slices.Clone(tour.config.Players)
}

// Played returns a copy of the released rounds in release order.
func (tour *Tournament) Played() []pair.Round {
	return pair.CloneRounds(tour.config.State.Played)
}

// Pending returns a copy of the rounds which have not been released yet.
func (tour *Tournament) Pending() []pair.Round {
	return pair.CloneRounds(tour.config.State.Pending)
}

// Started reports whether a schedule has been generated.
func (tour *Tournament) Started() bool {
	state := tour.config.State
	return len(state.Played) > 0 || len(state.Pending) > 0
}

// Complete reports whether every round has been released and resolved.
func (tour *Tournament) Complete() bool {
	if !tour.Started() || len(tour.config.State.Pending) > 0 {
		return false
	}

	for _, round := range tour.config.State.Played {
		if !round.Complete() {
			return false
		}
	}

	return true
}

// Standings returns the current standings, best first.
func (tour *Tournament) Standings() []standings.Standing {
	return standings.Compute(tour.config.Players, tour.config.State.Played)
}

// WinCountBefore returns the wins of a player over the rounds released
// before the given round.
func (tour *Tournament) WinCountBefore(id player.ID, roundID pair.ID) (int, error) {
	if !slices.ContainsFunc(tour.config.Players, func(p player.Player) bool { return p.ID == id }) {
		return 0, fmt.Errorf("win count: %s: %w", id, ErrUnknownPlayer)
	}

	wins, err := standings.WinCountBefore(player.Real(id), tour.config.State.Played, roundID)
	if err != nil {
		return 0, fmt.Errorf("win count: round %s: %w", roundID, err)
	}

	return wins, nil
}

// Wrap returns a snapshot of the tournament which can be saved and passed
// to NewTournament later.
func (tour *Tournament) Wrap() Config {
	return tour.config.clone()
}

func checkRoster(players []player.Player) error {
	seen := make(map[player.ID]bool, len(players))
	for _, p := range players {
		if seen[p.ID] {
			return fmt.Errorf("player %s: %w", p.ID, ErrDuplicatePlayer)
		}

		seen[p.ID] = true
	}

	return nil
}

// checkState makes sure a saved schedule only refers to rostered players
// and to the bye if the roster is odd.
func checkState(players []player.Player, state State) error {
	known := make(map[player.Ref]bool, len(players)+1)
	for _, p := range players {
		known[p.Ref()] = true
	}

	if len(players)%2 != 0 {
		known[player.Bye] = true
	}

	for _, rounds := range [][]pair.Round{state.Played, state.Pending} {
		for _, round := range rounds {
			for _, p := range round.Pairs {
				if !known[p.Left] || !known[p.Right] {
					return fmt.Errorf("round %s: %w", round.ID, ErrInvalidState)
				}
			}
		}
	}

	return nil
}
