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

// Package store keeps tournaments on disk between invocations, one yaml
// file per tournament.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"laptudirm.com/x/swiss/pkg/common"
	"laptudirm.com/x/swiss/pkg/internal/util"
	"laptudirm.com/x/swiss/pkg/tournament"
)

var (
	ErrNotFound    = errors.New("tournament not found")
	ErrInvalidName = errors.New("invalid tournament name")
)

const extension = ".yaml"

// Store saves tournaments as <Dir>/<name>.yaml.
type Store struct {
	Dir string
}

// Default returns the store in the user's data directory.
func Default() *Store {
	return &Store{Dir: common.TournamentDirectory}
}

func (store *Store) path(name string) (string, error) {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return "", fmt.Errorf("%q: %w", name, ErrInvalidName)
	}

	return filepath.Join(store.Dir, name+extension), nil
}

// Save writes the tournament to disk, replacing any earlier save.
func (store *Store) Save(tour *tournament.Tournament) error {
	file, err := store.path(tour.Name())
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(tour.Wrap())
	if err != nil {
		return fmt.Errorf("save %s: %w", tour.Name(), err)
	}

	if err := common.TryMkdir(store.Dir); err != nil {
		return err
	}

	logrus.Debugf("saving tournament %s to %s", tour.Name(), file)
	return os.WriteFile(file, data, common.FilePermissions)
}

// Load reads the tournament with the given name.
func (store *Store) Load(name string) (*tournament.Tournament, error) {
	file, err := store.path(name)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(file)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", name, ErrNotFound)
	} else if err != nil {
		return nil, err
	}

	var config tournament.Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("load %s: %w", name, err)
	}

	// the file name wins over a stale name field
	config.Name = name

	logrus.Debugf("loaded tournament %s from %s", name, file)
	return tournament.NewTournament(config)
}

// Exists reports whether a tournament with the given name has been saved.
func (store *Store) Exists(name string) bool {
	file, err := store.path(name)
	if err != nil {
		return false
	}

	_, err = os.Stat(file)
	return err == nil
}

// Delete removes a saved tournament.
func (store *Store) Delete(name string) error {
	file, err := store.path(name)
	if err != nil {
		return err
	}

	err = os.Remove(file)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("delete %s: %w", name, ErrNotFound)
	}

	return err
}

// List returns the names of all saved tournaments in natural order.
func (store *Store) List() ([]string, error) {
	entries, err := os.ReadDir(store.Dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), extension) {
			continue
		}

		names = append(names, strings.TrimSuffix(entry.Name(), extension))
	}

	slices.SortFunc(names, util.NaturalCompare)
	return names, nil
}

// ReadConfig reads a tournament configuration from an arbitrary yaml file.
func ReadConfig(file string) (tournament.Config, error) {
	var config tournament.Config

	data, err := os.ReadFile(file)
	if err != nil {
		return config, err
	}

	err = yaml.Unmarshal(data, &config)
	return config, err
}
