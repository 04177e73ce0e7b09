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

// Package pair contains the contest types of a tournament: a Pair is a
// single game between two players and a Round is a set of pairs in which
// every player takes part exactly once.
package pair

import (
	"errors"

	"github.com/google/uuid"

	"laptudirm.com/x/swiss/pkg/tournament/player"
)

var ErrInvalidSide = errors.New("invalid side")

// ID identifies a Pair or a Round.
type ID string

// NewID returns a fresh random ID.
func NewID() ID {
	return ID(uuid.NewString())
}

// Pair is a single contest between two players.
type Pair struct {
	ID    ID         `yaml:"id"`
	Left  player.Ref `yaml:"left"`
	Right player.Ref `yaml:"right"`

	Winner Side `yaml:"winner"`
}

// New creates an unresolved Pair between left and right.
func New(left, right player.Ref) Pair {
	return Pair{
		ID:    NewID(),
		Left:  left,
		Right: right,
	}
}

// Select records a vote for the given side. Voting for the side that has
// already won clears the result, voting for the other side switches it
// directly, and voting for None always clears.
func (pair *Pair) Select(side Side) error {
	if !side.Valid() {
		return ErrInvalidSide
	}

	if side == pair.Winner {
		pair.Winner = None
		return nil
	}

	pair.Winner = side
	return nil
}

// Set overwrites the result of the pair.
func (pair *Pair) Set(side Side) error {
	if !side.Valid() {
		return ErrInvalidSide
	}

	pair.Winner = side
	return nil
}

// Resolved reports whether the pair has a winner.
func (pair Pair) Resolved() bool {
	return pair.Winner != None
}

// Player returns the player sitting on the given side.
func (pair Pair) Player(side Side) (player.Ref, bool) {
	switch side {
	case Left:
		return pair.Left, true
	case Right:
		return pair.Right, true
	default:
		return player.Ref{}, false
	}
}

// WinnerRef returns the player who won the pair, if it is resolved.
func (pair Pair) WinnerRef() (player.Ref, bool) {
	return pair.Player(pair.Winner)
}

// SideOf returns the side the given player sits on, or None.
func (pair Pair) SideOf(ref player.Ref) Side {
	switch ref {
	case pair.Left:
		return Left
	case pair.Right:
		return Right
	default:
		return None
	}
}

// Has reports whether the given player takes part in the pair.
func (pair Pair) Has(ref player.Ref) bool {
	return pair.SideOf(ref) != None
}

// Won reports whether the given player is the recorded winner.
func (pair Pair) Won(ref player.Ref) bool {
	side := pair.SideOf(ref)
	return side != None && side == pair.Winner
}

// Opponent returns the player facing ref in this pair.
func (pair Pair) Opponent(ref player.Ref) (player.Ref, bool) {
	return pair.Player(pair.SideOf(ref).Other())
}

// IsBye reports whether one of the two players is the bye.
func (pair Pair) IsBye() bool {
	return pair.Left.Bye || pair.Right.Bye
}
