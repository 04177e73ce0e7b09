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

// Package roster edits and validates lists of players before they are
// handed to a tournament.
package roster

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"laptudirm.com/x/swiss/pkg/tournament/player"
)

var (
	ErrEmptyName     = errors.New("player name is empty")
	ErrDuplicateName = errors.New("player name is already in use")
	ErrNotFound      = errors.New("player not found")
)

// ValidateName checks that name is not blank and not used by any of the
// given players.
func ValidateName(name string, players []player.Player) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}

	if _, found := FindByName(players, name); found {
		return fmt.Errorf("%q: %w", name, ErrDuplicateName)
	}

	return nil
}

// New builds a roster out of the given names.
func New(names ...string) ([]player.Player, error) {
	var players []player.Player
	for _, name := range names {
		var err error
		players, _, err = Add(players, name)
		if err != nil {
			return nil, err
		}
	}

	return players, nil
}

// Add appends a new player with the given name. The input slice is not
// modified.
func Add(players []player.Player, name string) ([]player.Player, player.Player, error) {
	name = strings.TrimSpace(name)
	if err := ValidateName(name, players); err != nil {
		return nil, player.Player{}, err
	}

	added := player.New(name)
	return append(slices.Clip(players), added), added, nil
}

// Remove returns the roster without the player with the given id.
func Remove(players []player.Player, id player.ID) ([]player.Player, error) {
	index := slices.IndexFunc(players, func(p player.Player) bool { return p.ID == id })
	if index < 0 {
		return nil, fmt.Errorf("remove %s: %w", id, ErrNotFound)
	}

	return slices.Delete(slices.Clone(players), index, index+1), nil
}

// Find returns the player with the given id.
func Find(players []player.Player, id player.ID) (player.Player, bool) {
	index := slices.IndexFunc(players, func(p player.Player) bool { return p.ID == id })
	if index < 0 {
		return player.Player{}, false
	}

	return players[index], true
}

// FindByName returns the player with the given name.
func FindByName(players []player.Player, name string) (player.Player, bool) {
	index := slices.IndexFunc(players, func(p player.Player) bool { return p.Name == name })
	if index < 0 {
		return player.Player{}, false
	}

	return players[index], true
}

// Resolve looks a player up by its 1-based position in the roster, its id
// or its name, in that order.
func Resolve(players []player.Player, key string) (player.Player, error) {
	if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(players) {
		return players[n-1], nil
	}

	if p, found := Find(players, player.ID(key)); found {
		return p, nil
	}

	if p, found := FindByName(players, key); found {
		return p, nil
	}

	return player.Player{}, fmt.Errorf("%q: %w", key, ErrNotFound)
}

// Name returns the display name of a ref: the player's name, or "bye".
func Name(players []player.Player, ref player.Ref) string {
	if ref.Bye {
		return "bye"
	}

	if p, found := Find(players, ref.ID); found {
		return p.Name
	}

	return ""
}
