package tournament

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laptudirm.com/x/swiss/pkg/tournament/pair"
	"laptudirm.com/x/swiss/pkg/tournament/player"
	"laptudirm.com/x/swiss/pkg/tournament/standings"
)

func roster(names ...string) []player.Player {
	players := make([]player.Player, len(names))
	for i, name := range names {
		players[i] = player.Player{ID: player.ID(name), Name: name}
	}
	return players
}

func newTournament(t *testing.T, seed int64, names ...string) *Tournament {
	t.Helper()

	tour, err := NewTournament(Config{
		Name:    "test",
		Seed:    seed,
		Players: roster(names...),
	})
	require.NoError(t, err)
	return tour
}

func advance(t *testing.T, tour *Tournament) pair.Round {
	t.Helper()

	outcome, round, err := tour.Advance()
	require.NoError(t, err)
	require.Equal(t, Advanced, outcome)
	return round
}

// resolveLeft makes the left player win every open pair of the round.
func resolveLeft(t *testing.T, tour *Tournament, round pair.Round) {
	t.Helper()

	for _, p := range round.Pairs {
		if p.IsBye() {
			continue
		}
		require.NoError(t, tour.RecordResult(round.ID, p.ID, pair.Left))
	}
}

func TestOddRosterGetsBye(t *testing.T) {
	tour := newTournament(t, 1, "A", "B", "C")

	round := advance(t, tour)
	require.Len(t, round.Pairs, 2)
	assert.Len(t, tour.Pending(), 2, "three rounds over four seats")

	var byes int
	var recipient player.Ref
	for _, p := range round.Pairs {
		if !p.IsBye() {
			assert.Equal(t, pair.None, p.Winner)
			continue
		}

		byes++
		winner, ok := p.WinnerRef()
		require.True(t, ok, "bye pair is resolved on release")
		assert.False(t, winner.Bye)
		recipient = winner
	}
	require.Equal(t, 1, byes)

	table := tour.Standings()
	require.Len(t, table, 3)
	for _, s := range table {
		if s.Player.Ref() == recipient {
			assert.Equal(t, 1, s.Wins)
			assert.Equal(t, 1, s.Rank)
		} else {
			assert.Equal(t, 0, s.Wins)
		}
	}
}

func TestEveryReleasedByeIsResolved(t *testing.T) {
	tour := newTournament(t, 7, "A", "B", "C", "D", "E")

	byeWins := make(map[player.Ref]int)
	for {
		outcome, round, err := tour.Advance()
		require.NoError(t, err)
		if outcome == Exhausted {
			break
		}
		require.Equal(t, Advanced, outcome)

		for _, p := range round.Pairs {
			if p.IsBye() {
				winner, ok := p.WinnerRef()
				require.True(t, ok)
				byeWins[winner]++
			}
		}
		resolveLeft(t, tour, round)
	}

	assert.Len(t, tour.Played(), 5)
	assert.Len(t, byeWins, 5, "each player gets exactly one bye")
	for ref, count := range byeWins {
		assert.Equal(t, 1, count, "%s", ref)
	}
	assert.True(t, tour.Complete())
}

func TestScheduleIsRoundRobin(t *testing.T) {
	for _, n := range []int{2, 3, 4, 5, 8, 11} {
		t.Run(fmt.Sprintf("%d players", n), func(t *testing.T) {
			names := make([]string, n)
			for i := range names {
				names[i] = fmt.Sprintf("P%d", i)
			}
			tour := newTournament(t, int64(n), names...)
			advance(t, tour)

			rounds := append(tour.Played(), tour.Pending()...)
			seats := n + n%2
			require.Len(t, rounds, seats-1)

			met := make(map[[2]player.Ref]int)
			for _, round := range rounds {
				require.Len(t, round.Pairs, seats/2)

				seen := make(map[player.Ref]bool)
				for _, p := range round.Pairs {
					require.False(t, seen[p.Left])
					require.False(t, seen[p.Right])
					seen[p.Left], seen[p.Right] = true, true

					key := [2]player.Ref{p.Left, p.Right}
					if p.Right.String() < p.Left.String() {
						key = [2]player.Ref{p.Right, p.Left}
					}
					met[key]++
				}
				require.Len(t, seen, seats)
			}

			assert.Len(t, met, seats*(seats-1)/2)
			for key, count := range met {
				assert.Equal(t, 1, count, "%v", key)
			}
		})
	}
}

func TestSwissSelection(t *testing.T) {
	for _, names := range [][]string{
		{"A", "B", "C", "D"},
		{"A", "B", "C", "D", "E", "F"},
		{"A", "B", "C", "D", "E", "F", "G"},
	} {
		t.Run(fmt.Sprint(len(names)), func(t *testing.T) {
			tour := newTournament(t, 42, names...)

			first := advance(t, tour)
			resolveLeft(t, tour, first)

			wins := make(map[player.Ref]int)
			for _, p := range first.Pairs {
				if !p.IsBye() {
					wins[p.Left]++
				} else if winner, ok := p.WinnerRef(); ok {
					wins[winner]++
				}
			}

			pending := tour.Pending()
			best, bestScore := -1, 0
			for i, round := range pending {
				score := 0
				for _, p := range round.Pairs {
					l, r := wins[p.Left], wins[p.Right]
					if p.Left.Bye {
						l = 0
					}
					if p.Right.Bye {
						r = 0
					}
					if l > r {
						score += l - r
					} else {
						score += r - l
					}
				}
				if best < 0 || score < bestScore {
					best, bestScore = i, score
				}
			}

			second := advance(t, tour)
			assert.Equal(t, pending[best].ID, second.ID)
		})
	}
}

func TestSameSeedSameSchedule(t *testing.T) {
	refs := func(tour *Tournament) [][]player.Ref {
		advance(t, tour)

		var out [][]player.Ref
		for _, round := range append(tour.Played(), tour.Pending()...) {
			var line []player.Ref
			for _, p := range round.Pairs {
				line = append(line, p.Left, p.Right)
			}
			out = append(out, line)
		}
		return out
	}

	a := refs(newTournament(t, 99, "A", "B", "C", "D", "E", "F"))
	b := refs(newTournament(t, 99, "A", "B", "C", "D", "E", "F"))
	assert.Equal(t, a, b)
}

func TestPreviousIncomplete(t *testing.T) {
	tour := newTournament(t, 3, "A", "B", "C", "D")
	round := advance(t, tour)

	outcome, _, err := tour.Advance()
	require.NoError(t, err)
	assert.Equal(t, PreviousIncomplete, outcome)
	assert.Len(t, tour.Played(), 1)
	assert.Len(t, tour.Pending(), 2)

	require.NoError(t, tour.RecordResult(round.ID, round.Pairs[0].ID, pair.Right))
	outcome, _, err = tour.Advance()
	require.NoError(t, err)
	assert.Equal(t, PreviousIncomplete, outcome)

	require.NoError(t, tour.RecordResult(round.ID, round.Pairs[1].ID, pair.Left))
	advance(t, tour)
}

func TestExhausted(t *testing.T) {
	tour := newTournament(t, 5, "A", "B")

	round := advance(t, tour)
	assert.False(t, tour.Complete())
	resolveLeft(t, tour, round)
	assert.True(t, tour.Complete())

	for i := 0; i < 2; i++ {
		outcome, _, err := tour.Advance()
		require.NoError(t, err)
		assert.Equal(t, Exhausted, outcome)
	}
	assert.Len(t, tour.Played(), 1)
}

func TestNotEnoughPlayers(t *testing.T) {
	for _, names := range [][]string{nil, {"A"}} {
		tour := newTournament(t, 1, names...)

		_, _, err := tour.Advance()
		assert.ErrorIs(t, err, ErrNotEnoughPlayers)
		assert.False(t, tour.Started())
	}
}

func TestRecordResult(t *testing.T) {
	tour := newTournament(t, 11, "A", "B", "C")
	round := advance(t, tour)

	var open, bye pair.Pair
	for _, p := range round.Pairs {
		if p.IsBye() {
			bye = p
		} else {
			open = p
		}
	}

	winner := func() pair.Side {
		p, ok := tour.Played()[0].Find(open.ID)
		require.True(t, ok)
		return p.Winner
	}

	require.NoError(t, tour.RecordResult(round.ID, open.ID, pair.Left))
	assert.Equal(t, pair.Left, winner())

	require.NoError(t, tour.RecordResult(round.ID, open.ID, pair.Right))
	assert.Equal(t, pair.Right, winner())

	require.NoError(t, tour.RecordResult(round.ID, open.ID, pair.Right))
	assert.Equal(t, pair.None, winner(), "same side twice clears the result")

	assert.ErrorIs(t, tour.RecordResult("missing", open.ID, pair.Left), ErrUnknownRound)
	assert.ErrorIs(t, tour.RecordResult(round.ID, "missing", pair.Left), ErrUnknownPair)
	assert.ErrorIs(t, tour.RecordResult(round.ID, bye.ID, pair.Left), ErrByePair)
	assert.ErrorIs(t, tour.RecordResult(round.ID, open.ID, pair.Side(9)), pair.ErrInvalidSide)

	pending := tour.Pending()[0]
	assert.ErrorIs(t, tour.RecordResult(pending.ID, pending.Pairs[0].ID, pair.Left), ErrUnknownRound,
		"rounds are only playable once released")

	assert.Equal(t, pair.None, winner(), "failed calls leave the result alone")
}

func TestReturnedRoundsAreCopies(t *testing.T) {
	tour := newTournament(t, 2, "A", "B", "C", "D")
	round := advance(t, tour)

	round.Pairs[0].Winner = pair.Left
	played := tour.Played()
	assert.Equal(t, pair.None, played[0].Pairs[0].Winner)

	played[0].Pairs[1].Winner = pair.Right
	assert.Equal(t, pair.None, tour.Played()[0].Pairs[1].Winner)
}

func TestWinCountBefore(t *testing.T) {
	tour := newTournament(t, 13, "A", "B", "C", "D")

	var rounds []pair.Round
	for i := 0; i < 3; i++ {
		round := advance(t, tour)
		resolveLeft(t, tour, round)
		rounds = append(rounds, round)
	}

	played := tour.Played()
	for _, p := range tour.Players() {
		expected := standings.WinCount(p.Ref(), played[:2])

		wins, err := tour.WinCountBefore(p.ID, rounds[2].ID)
		require.NoError(t, err)
		assert.Equal(t, expected, wins, p.Name)

		wins, err = tour.WinCountBefore(p.ID, rounds[0].ID)
		require.NoError(t, err)
		assert.Zero(t, wins)
	}

	_, err := tour.WinCountBefore("Z", rounds[0].ID)
	assert.ErrorIs(t, err, ErrUnknownPlayer)

	_, err = tour.WinCountBefore("A", "missing")
	assert.ErrorIs(t, err, ErrUnknownRound)
}

func TestEditingHistoryKeepsStandingsConsistent(t *testing.T) {
	tour := newTournament(t, 17, "A", "B", "C", "D")

	first := advance(t, tour)
	resolveLeft(t, tour, first)
	second := advance(t, tour)
	resolveLeft(t, tour, second)

	edited := first.Pairs[0]
	require.NoError(t, tour.RecordResult(first.ID, edited.ID, pair.Right))

	table := tour.Standings()
	played := tour.Played()
	for _, s := range table {
		assert.Equal(t, standings.WinCount(s.Player.Ref(), played), s.Wins)
	}
	assert.Equal(t, table, tour.Standings())
}

func TestRosterChanges(t *testing.T) {
	tour := newTournament(t, 19, "A", "B", "C", "D")
	advance(t, tour)

	require.NoError(t, tour.Rename("A", "Alice"))
	assert.True(t, tour.Started(), "renaming keeps the schedule")
	assert.Equal(t, "Alice", tour.Players()[0].Name)
	assert.ErrorIs(t, tour.Rename("Z", "Zed"), ErrUnknownPlayer)

	require.NoError(t, tour.SetPlayers(roster("A", "B", "C")))
	assert.False(t, tour.Started(), "changing the roster resets the schedule")
	assert.Empty(t, tour.Played())

	assert.ErrorIs(t, tour.SetPlayers(roster("A", "A")), ErrDuplicatePlayer)
	assert.Len(t, tour.Players(), 3)

	advance(t, tour)
	tour.Reset()
	assert.False(t, tour.Started())
}

func TestWrapResumes(t *testing.T) {
	tour := newTournament(t, 23, "A", "B", "C", "D", "E")
	round := advance(t, tour)
	resolveLeft(t, tour, round)

	saved := tour.Wrap()
	resumed, err := NewTournament(saved)
	require.NoError(t, err)

	assert.Equal(t, tour.Played(), resumed.Played())
	assert.Equal(t, tour.Pending(), resumed.Pending())
	assert.Equal(t, tour.Standings(), resumed.Standings())

	next := advance(t, tour)
	assert.Equal(t, next.ID, advance(t, resumed).ID, "selection is deterministic")

	assert.Len(t, saved.State.Played, 1, "the snapshot does not alias the tournament")
}

func TestInvalidConfig(t *testing.T) {
	_, err := NewTournament(Config{Players: roster("A", "A")})
	assert.ErrorIs(t, err, ErrDuplicatePlayer)

	_, err = NewTournament(Config{Scheduler: "gauntlet"})
	assert.Error(t, err)

	tour := newTournament(t, 29, "A", "B", "C")
	advance(t, tour)
	saved := tour.Wrap()
	saved.Players = roster("A", "B", "D")

	_, err = NewTournament(saved)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "schedule exhausted", Exhausted.String())
	assert.Equal(t, "previous round incomplete", PreviousIncomplete.String())
}
