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

package player

import "github.com/google/uuid"

// ID uniquely identifies a Player for the lifetime of a tournament.
type ID string

// NewID returns a fresh random ID.
func NewID() ID {
	return ID(uuid.NewString())
}

// Player is a single entrant of a tournament.
type Player struct {
	ID   ID     `yaml:"id"`
	Name string `yaml:"name"`
}

// New creates a Player with a fresh ID.
func New(name string) Player {
	return Player{ID: NewID(), Name: name}
}

// Ref refers to one side of a pair: either a real Player or the bye.
type Ref struct {
	ID  ID   `yaml:"id,omitempty"`
	Bye bool `yaml:"bye,omitempty"`
}

// Bye is the stand-in opponent used to even out an odd roster. It never
// wins a pair and never shows up in standings.
var Bye = Ref{Bye: true}

// Real returns a Ref to the Player with the given ID.
func Real(id ID) Ref {
	return Ref{ID: id}
}

// Ref returns a Ref to the player.
func (player Player) Ref() Ref {
	return Real(player.ID)
}

func (ref Ref) String() string {
	if ref.Bye {
		return "bye"
	}

	return string(ref.ID)
}

// Refs converts a roster into its Refs, preserving order.
func Refs(players []Player) []Ref {
	refs := make([]Ref, len(players))
	for i, player := range players {
		refs[i] = player.Ref()
	}

	return refs
}
