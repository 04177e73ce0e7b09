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

package tournament

import (
	"math/rand"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/swiss/pkg/tournament/pair"
	"laptudirm.com/x/swiss/pkg/tournament/player"
)

// seating returns the shuffled seats of a schedule for the given roster.
// An odd roster gets the bye prepended so that the seat count is even.
func seating(players []player.Player, rng *rand.Rand) []player.Ref {
	seats := player.Refs(players)
	if len(seats)%2 != 0 {
		seats = append([]player.Ref{player.Bye}, seats...)
	}

	rng.Shuffle(len(seats), func(i, j int) {
		seats[i], seats[j] = seats[j], seats[i]
	})

	return seats
}

// resolveByes awards every pair against the bye to the real player.
func resolveByes(round *pair.Round) {
	for i := range round.Pairs {
		p := &round.Pairs[i]

		switch {
		case p.Left.Bye:
			_ = p.Set(pair.Right)
		case p.Right.Bye:
			_ = p.Set(pair.Left)
		default:
			continue
		}

		winner, _ := p.WinnerRef()
		logrus.Tracef("bye awarded to %s in round %s", winner, round.ID)
	}
}
