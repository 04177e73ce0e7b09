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

package cmd

import (
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/swiss/pkg/roster"
	"laptudirm.com/x/swiss/pkg/store"
	"laptudirm.com/x/swiss/pkg/tournament"
	"laptudirm.com/x/swiss/pkg/tournament/player"
)

func Player() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "player",
		Short: "Manage the players of a tournament",
	}

	cmd.AddCommand(playerAdd())
	cmd.AddCommand(playerRename())
	cmd.AddCommand(playerRemove())
	cmd.AddCommand(playerList())
	return cmd
}

// setPlayers changes the roster and warns about the lost schedule.
func setPlayers(s *store.Store, tour *tournament.Tournament, players []player.Player) error {
	started := tour.Started()
	if err := tour.SetPlayers(players); err != nil {
		return err
	}

	if started {
		logrus.Warn("the roster changed, all rounds have been cleared")
	}

	return s.Save(tour)
}

func playerAdd() *cobra.Command {
	return &cobra.Command{
		Use:   "add name...",
		Short: "Add players to the tournament",
		Args:  cobra.MinimumNArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			s, tour, err := load(cmd)
			if err != nil {
				return err
			}

			players := tour.Players()
			for _, name := range args {
				players, _, err = roster.Add(players, name)
				if err != nil {
					return err
				}
			}

			if err := setPlayers(s, tour, players); err != nil {
				return err
			}

			printPlayers(cmd.OutOrStdout(), tour.Players())
			return nil
		},
	}
}

func playerRename() *cobra.Command {
	return &cobra.Command{
		Use:   "rename player name",
		Short: "Change the name of a player, keeping the rounds",
		Args:  cobra.ExactArgs(2),

		RunE: func(cmd *cobra.Command, args []string) error {
			s, tour, err := load(cmd)
			if err != nil {
				return err
			}

			target, err := roster.Resolve(tour.Players(), args[0])
			if err != nil {
				return err
			}

			name := strings.TrimSpace(args[1])
			if err := roster.ValidateName(name, tour.Players()); err != nil {
				return err
			}

			if err := tour.Rename(target.ID, name); err != nil {
				return err
			}

			return s.Save(tour)
		},
	}
}

func playerRemove() *cobra.Command {
	return &cobra.Command{
		Use:   "remove player",
		Short: "Remove a player from the tournament",
		Args:  cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			s, tour, err := load(cmd)
			if err != nil {
				return err
			}

			target, err := roster.Resolve(tour.Players(), args[0])
			if err != nil {
				return err
			}

			players, err := roster.Remove(tour.Players(), target.ID)
			if err != nil {
				return err
			}

			if err := setPlayers(s, tour, players); err != nil {
				return err
			}

			printPlayers(cmd.OutOrStdout(), tour.Players())
			return nil
		},
	}
}

func playerList() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the players of the tournament",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			_, tour, err := load(cmd)
			if err != nil {
				return err
			}

			printPlayers(cmd.OutOrStdout(), tour.Players())
			return nil
		},
	}
}
