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
	"fmt"
	"strconv"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"laptudirm.com/x/swiss/pkg/roster"
	"laptudirm.com/x/swiss/pkg/tournament"
	"laptudirm.com/x/swiss/pkg/tournament/pair"
)

func Next() *cobra.Command {
	return &cobra.Command{
		Use:   "next",
		Short: "Release the next round",
		Long: heredoc.Doc(`next releases the next round of the tournament. The first
			call generates the whole schedule. Every round before it has to
			have a winner for each pair.`),
		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			s, tour, err := load(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			outcome, round, err := tour.Advance()
			if err != nil {
				return err
			}

			switch outcome {
			case tournament.Exhausted:
				fmt.Fprintln(out, color.GreenString("All rounds have been played."))
				return nil

			case tournament.PreviousIncomplete:
				fmt.Fprintln(out, color.RedString("Finish the released rounds first:"))
				for i, round := range tour.Played() {
					if !round.Complete() {
						printRound(out, tour, i+1, round)
					}
				}
				return nil
			}

			if err := s.Save(tour); err != nil {
				return err
			}

			printRound(out, tour, len(tour.Played()), round)
			return nil
		},
	}
}

func Result() *cobra.Command {
	return &cobra.Command{
		Use:   "result round pair winner",
		Short: "Record the winner of a pair",
		Long: heredoc.Doc(`result records the winner of a pair. round and pair are
			the numbers shown by "swiss rounds". winner is left, right,
			none, or the name or number of one of the two players.

			Choosing the current winner again clears the result.`),
		Args: cobra.ExactArgs(3),

		RunE: func(cmd *cobra.Command, args []string) error {
			s, tour, err := load(cmd)
			if err != nil {
				return err
			}

			played := tour.Played()

			r, err := index(args[0], len(played))
			if err != nil {
				return fmt.Errorf("round %s: %w", args[0], err)
			}
			round := played[r]

			p, err := index(args[1], len(round.Pairs))
			if err != nil {
				return fmt.Errorf("pair %s: %w", args[1], err)
			}
			target := round.Pairs[p]

			side, err := pair.ParseSide(args[2])
			if err != nil {
				who, rerr := roster.Resolve(tour.Players(), args[2])
				if rerr != nil {
					return err
				}

				side = target.SideOf(who.Ref())
				if side == pair.None {
					return fmt.Errorf("%s is not playing in this pair", who.Name)
				}
			}

			if err := tour.RecordResult(round.ID, target.ID, side); err != nil {
				return err
			}

			if err := s.Save(tour); err != nil {
				return err
			}

			printRound(cmd.OutOrStdout(), tour, r+1, tour.Played()[r])
			return nil
		},
	}
}

// index parses a 1-based position out of n.
func index(arg string, n int) (int, error) {
	i, err := strconv.Atoi(arg)
	if err != nil {
		return 0, err
	}

	if i < 1 || i > n {
		return 0, fmt.Errorf("out of range [1, %d]", n)
	}

	return i - 1, nil
}

func Rounds() *cobra.Command {
	return &cobra.Command{
		Use:   "rounds",
		Short: "Show the released rounds",
		Long: heredoc.Doc(`rounds shows every released round. The number next to a
			player is the number of wins they had before that round.`),
		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			_, tour, err := load(cmd)
			if err != nil {
				return err
			}

			played := tour.Played()
			if len(played) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No rounds have been released yet.")
				return nil
			}

			for i, round := range played {
				printRound(cmd.OutOrStdout(), tour, i+1, round)
			}

			return nil
		},
	}
}

func Standings() *cobra.Command {
	return &cobra.Command{
		Use:   "standings",
		Short: "Show the current standings",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			_, tour, err := load(cmd)
			if err != nil {
				return err
			}

			printStandings(cmd.OutOrStdout(), tour.Standings())
			return nil
		},
	}
}

func Reset() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Clear all rounds, keeping the players",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			s, tour, err := load(cmd)
			if err != nil {
				return err
			}

			tour.Reset()
			return s.Save(tour)
		},
	}
}
