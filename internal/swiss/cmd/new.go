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

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/swiss/pkg/roster"
	"laptudirm.com/x/swiss/pkg/store"
	"laptudirm.com/x/swiss/pkg/tournament"
)

// swiss new
func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new [player...]",
		Short: "Create a new tournament",
		Long: heredoc.Doc(`new creates a tournament with the given players. Players
			can also be added later with "swiss player add".

			With --config the tournament is read from a yaml file with the
			fields name, seed and players (a list of id and name). A config
			written by swiss itself, including its state, resumes where it
			was left.`),

		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("tournament")
			file, _ := cmd.Flags().GetString("config")
			force, _ := cmd.Flags().GetBool("force")

			var config tournament.Config
			if file != "" {
				var err error
				config, err = store.ReadConfig(file)
				if err != nil {
					return err
				}

				if config.Name != "" && !cmd.Flags().Changed("tournament") {
					name = config.Name
				}
			}

			for _, player := range args {
				var err error
				config.Players, _, err = roster.Add(config.Players, player)
				if err != nil {
					return err
				}
			}

			config.Name = name
			if cmd.Flags().Changed("seed") {
				config.Seed, _ = cmd.Flags().GetInt64("seed")
			}

			s := openStore(cmd)
			if s.Exists(name) && !force {
				return fmt.Errorf("tournament %s already exists (use --force to replace it)", name)
			}

			tour, err := tournament.NewTournament(config)
			if err != nil {
				return err
			}

			if err := s.Save(tour); err != nil {
				return err
			}

			logrus.Infof("created tournament %s with %d players", name, len(tour.Players()))
			printPlayers(cmd.OutOrStdout(), tour.Players())
			return nil
		},
	}

	cmd.Flags().StringP("config", "c", "", "Read the tournament from a yaml file")
	cmd.Flags().Int64P("seed", "s", 0, "Seed for the seating shuffle (0 is random)")
	cmd.Flags().BoolP("force", "f", false, "Replace an existing tournament")

	return cmd
}
