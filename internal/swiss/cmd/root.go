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
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/swiss/pkg/store"
	"laptudirm.com/x/swiss/pkg/tournament"
)

// openStore returns the store selected with --data.
func openStore(cmd *cobra.Command) *store.Store {
	if dir, _ := cmd.Flags().GetString("data"); dir != "" {
		return &store.Store{Dir: dir}
	}

	return store.Default()
}

func Root() *cobra.Command {
	root := &cobra.Command{
		Use:   "swiss",
		Short: "Run a round robin tournament in Swiss order",
		Long: heredoc.Doc(`swiss runs a round robin tournament where every player
			meets every other player exactly once. Rounds are released one
			at a time: after the first one, the round whose pairings are
			closest in wins is played next.

			Odd rosters get a bye, which is awarded automatically. Players
			are ranked by wins, then by the wins of their opponents, then
			by the wins of the opponents they defeated.`),
		Args: cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// If --trace flag is provided, set logging level to Trace.
			if cmd.Flag("trace").Changed {
				logrus.SetLevel(logrus.TraceLevel)
			}
		},
	}

	// global flags
	root.PersistentFlags().BoolP("help", "h", false, "Show Help Information")
	root.PersistentFlags().BoolP("version", "v", false, "Show Swiss's Version")
	root.PersistentFlags().BoolP("trace", "t", false, "Show Trace Information")
	root.PersistentFlags().StringP("tournament", "T", "default", "Name of the tournament to work on")
	root.PersistentFlags().String("data", "", "Directory to save tournaments in")

	versionStr := "v0.1.0\n"
	root.SetVersionTemplate(versionStr)
	root.Version = versionStr

	// Register the various commands.
	root.AddCommand(New())
	root.AddCommand(Player())
	root.AddCommand(Next())
	root.AddCommand(Result())
	root.AddCommand(Rounds())
	root.AddCommand(Standings())
	root.AddCommand(Reset())
	root.AddCommand(List())
	root.AddCommand(Delete())

	return root
}

// load opens the tournament selected with --tournament.
func load(cmd *cobra.Command) (*store.Store, *tournament.Tournament, error) {
	name, _ := cmd.Flags().GetString("tournament")

	s := openStore(cmd)
	tour, err := s.Load(name)
	if err != nil {
		return nil, nil, err
	}

	return s, tour, nil
}
