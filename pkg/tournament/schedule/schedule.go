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

// Package schedule generates round based tournament schedules over seat
// indices. Mapping seats to players is left to the caller.
package schedule

import (
	"fmt"
)

// New returns the scheduler with the given name.
func New(name string) (Scheduler, error) {
	switch name {
	case "round-robin", "":
		return &RoundRobin{}, nil
	default:
		return nil, fmt.Errorf("new scheduler: invalid scheduler %s", name)
	}
}

// Encounter is a pair of seat indices which play each other.
type Encounter struct {
	Left, Right int
}

type Scheduler interface {
	// Initialize prepares a schedule for n seats.
	Initialize(n int)

	// NextRound returns the encounters of the next round.
	NextRound() []Encounter

	// TotalRounds is the number of rounds in the schedule.
	TotalRounds() int
}

// Generate returns every round of a round robin over n seats.
func Generate(n int) [][]Encounter {
	var rr RoundRobin
	rr.Initialize(n)

	rounds := make([][]Encounter, rr.TotalRounds())
	for i := range rounds {
		rounds[i] = rr.NextRound()
	}

	return rounds
}
