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
	"slices"

	"laptudirm.com/x/swiss/pkg/tournament/pair"
	"laptudirm.com/x/swiss/pkg/tournament/player"
)

type Config struct {
	Name string `yaml:"name"`

	// Seed of the random source used to shuffle the seating. Zero seeds
	// from the clock.
	Seed int64 `yaml:"seed,omitempty"`

	// Scheduler used to generate the rounds; only round-robin for now.
	Scheduler string `yaml:"scheduler,omitempty"`

	// The players participating in the tournament.
	Players []player.Player `yaml:"players"`

	// Progress of a running tournament.
	State State `yaml:"state,omitempty"`
}

// State is the schedule of a tournament. Played and Pending together always
// make up one generated schedule.
type State struct {
	Played  []pair.Round `yaml:"played,omitempty"`
	Pending []pair.Round `yaml:"pending,omitempty"`
}

func (config Config) clone() Config {
	config.Players = slices.Clone(config.Players)
	config.State = State{
		Played:  pair.CloneRounds(config.State.Played),
		Pending: pair.CloneRounds(config.State.Pending),
	}

	return config
}
