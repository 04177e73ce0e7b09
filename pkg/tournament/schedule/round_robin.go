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

package schedule

import (
	"fmt"
	"slices"
)

// RoundRobin schedules rounds with the circle method. Seat 0 stays fixed
// while every other seat moves one step around the circle each round:
//
//	0 1 2      0 5 1      0 4 5
//	5 4 3  ->  4 3 2  ->  3 2 1  -> ...
//
// Over n-1 rounds every seat meets every other seat exactly once.
type RoundRobin struct {
	seating []int
}

// Initialize prepares a schedule for n seats. n must be even and greater
// than one; odd rosters have to be padded with a bye by the caller.
func (rr *RoundRobin) Initialize(n int) {
	if n <= 1 || n%2 != 0 {
		panic(fmt.Sprintf("round robin: invalid seat count %d", n))
	}

	rr.seating = make([]int, n)
	for i := range rr.seating {
		rr.seating[i] = i
	}
}

// NextRound returns the encounters of the next round and rotates the
// seating. The top half of the circle faces the bottom half:
// (seat[i], seat[n-1-i]) for i < n/2.
func (rr *RoundRobin) NextRound() []Encounter {
	n := len(rr.seating)

	encounters := make([]Encounter, n/2)
	for i := range encounters {
		encounters[i] = Encounter{
			Left:  rr.seating[i],
			Right: rr.seating[n-1-i],
		}
	}

	rr.seating = NextSeating(rr.seating)
	return encounters
}

// TotalRounds returns n-1, the number of rounds of a single round robin.
func (rr *RoundRobin) TotalRounds() int {
	return len(rr.seating) - 1
}

// NextSeating rotates the circle by one step: the last seat moves to index
// 1 and index 0 stays fixed. Seatings of three or fewer seats are returned
// unchanged. The input is never modified.
func NextSeating(seating []int) []int {
	next := slices.Clone(seating)
	if len(next) <= 3 {
		return next
	}

	last := next[len(next)-1]
	copy(next[2:], next[1:len(next)-1])
	next[1] = last

	return next
}
