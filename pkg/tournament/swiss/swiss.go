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

// Package swiss implements a Swiss draw over a fixed round robin schedule.
// Pairings are never recomputed; instead the whole pending round whose
// pairs are closest in current wins is chosen to be played next.
package swiss

import (
	"laptudirm.com/x/swiss/pkg/tournament/pair"
	"laptudirm.com/x/swiss/pkg/tournament/player"
	"laptudirm.com/x/swiss/pkg/tournament/standings"
)

// WinCounter returns the current number of wins of a player.
type WinCounter func(player.Ref) int

// Score returns the sum of the win differences of every pair in the round.
// The bye always counts as zero wins. Lower is a better Swiss fit.
func Score(round pair.Round, wins WinCounter) int {
	count := func(ref player.Ref) int {
		if ref.Bye {
			return 0
		}

		return wins(ref)
	}

	score := 0
	for _, p := range round.Pairs {
		diff := count(p.Left) - count(p.Right)
		if diff < 0 {
			diff = -diff
		}

		score += diff
	}

	return score
}

// Select returns the index of the pending round with the lowest Score.
// Ties go to the round that comes first in pending. pending must not be
// empty.
func Select(pending []pair.Round, wins WinCounter) int {
	if len(pending) == 0 {
		panic("swiss: select from empty pending list")
	}

	best, bestScore := 0, Score(pending[0], wins)
	for i := 1; i < len(pending); i++ {
		if score := Score(pending[i], wins); score < bestScore {
			best, bestScore = i, score
		}
	}

	return best
}

// Next chooses the round to be played after the given played rounds. The
// first round is always the first pending one.
func Next(pending, played []pair.Round) int {
	if len(pending) == 0 {
		panic("swiss: select from empty pending list")
	}

	if len(played) == 0 {
		return 0
	}

	return Select(pending, func(ref player.Ref) int {
		return standings.WinCount(ref, played)
	})
}
