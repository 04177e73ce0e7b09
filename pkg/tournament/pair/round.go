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

package pair

import (
	"slices"

	"laptudirm.com/x/swiss/pkg/tournament/player"
)

// Round is a set of pairs played together. Every player of the tournament,
// the bye included, appears in exactly one of its pairs.
type Round struct {
	ID    ID     `yaml:"id"`
	Pairs []Pair `yaml:"pairs"`
}

// NewRound creates a Round out of the given pairs.
func NewRound(pairs ...Pair) Round {
	return Round{
		ID:    NewID(),
		Pairs: pairs,
	}
}

// Complete reports whether every pair of the round has a winner.
func (round Round) Complete() bool {
	for _, pair := range round.Pairs {
		if !pair.Resolved() {
			return false
		}
	}

	return true
}

// Find returns a pointer to the pair with the given id, so that its result
// can be changed in place.
func (round *Round) Find(id ID) (*Pair, bool) {
	for i := range round.Pairs {
		if round.Pairs[i].ID == id {
			return &round.Pairs[i], true
		}
	}

	return nil, false
}

// PairOf returns the pair the given player takes part in.
func (round Round) PairOf(ref player.Ref) (Pair, bool) {
	for _, pair := range round.Pairs {
		if pair.Has(ref) {
			return pair, true
		}
	}

	return Pair{}, false
}

// Clone returns a deep copy of the round.
func (round Round) Clone() Round {
	round.Pairs = slices.Clone(round.Pairs)
	return round
}

// CloneRounds deep copies a list of rounds.
func CloneRounds(rounds []Round) []Round {
	if rounds == nil {
		return nil
	}

	clone := make([]Round, len(rounds))
	for i, round := range rounds {
		clone[i] = round.Clone()
	}

	return clone
}

// IndexOf returns the position of the round with the given id, or -1.
func IndexOf(rounds []Round, id ID) int {
	return slices.IndexFunc(rounds, func(round Round) bool {
		return round.ID == id
	})
}
