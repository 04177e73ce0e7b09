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
	"io"

	"github.com/fatih/color"

	"laptudirm.com/x/swiss/pkg/roster"
	"laptudirm.com/x/swiss/pkg/tournament"
	"laptudirm.com/x/swiss/pkg/tournament/pair"
	"laptudirm.com/x/swiss/pkg/tournament/player"
	"laptudirm.com/x/swiss/pkg/tournament/standings"
)

func printPlayers(w io.Writer, players []player.Player) {
	if len(players) == 0 {
		fmt.Fprintln(w, color.RedString("No Players."))
		return
	}

	fmt.Fprintf(w, "%s:\n\n", color.GreenString("Players"))
	for i, p := range players {
		fmt.Fprintf(w, "%2d. %s\n", i+1, p.Name)
	}
}

// printRound prints a round with each player's wins before it, e.g.
//
//	Round #2
//	 1. Alice (1)            vs  Bob (0)              -> Alice
func printRound(w io.Writer, tour *tournament.Tournament, number int, round pair.Round) {
	players := tour.Players()

	label := func(ref player.Ref) string {
		if ref.Bye {
			return "bye"
		}

		wins, _ := tour.WinCountBefore(ref.ID, round.ID)
		return fmt.Sprintf("%s (%d)", roster.Name(players, ref), wins)
	}

	fmt.Fprintf(w, "\n%s\n", color.YellowString("Round #%d", number))
	for i, p := range round.Pairs {
		result := color.RedString("pending")
		if winner, ok := p.WinnerRef(); ok {
			result = color.GreenString(roster.Name(players, winner))
			if p.IsBye() {
				result += " (bye)"
			}
		}

		fmt.Fprintf(w, "%2d. %-20s vs  %-20s -> %s\n", i+1, label(p.Left), label(p.Right), result)
	}
}

func printStandings(w io.Writer, table []standings.Standing) {
	fmt.Fprintln(w, "╔═════════════════════════════════════════════════╗")
	fmt.Fprintln(w, "║  #  Name                  Wins  Opp W  Def W    ║")
	fmt.Fprintln(w, "╠═════════════════════════════════════════════════╣")
	for _, s := range table {
		line := fmt.Sprintf(
			"%3d  %-20s  %4d  %5d  %5d",
			s.Rank, s.Player.Name,
			s.Wins, s.OpponentWins, s.DefeatedOpponentWins,
		)

		if s.Rank == 1 && s.Wins > 0 {
			line = color.GreenString(line)
		}

		fmt.Fprintf(w, "║%s    ║\n", line)
	}
	fmt.Fprintln(w, "╚═════════════════════════════════════════════════╝")
}
