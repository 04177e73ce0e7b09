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

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func List() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Lists the saved tournaments",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			current, _ := cmd.Flags().GetString("tournament")

			names, err := openStore(cmd).List()
			if err != nil {
				return err
			}

			if len(names) == 0 {
				fmt.Fprintln(out, color.RedString("No Tournaments Saved."))
				return nil
			}

			fmt.Fprintf(out, "%s:\n\n", color.GreenString("Saved Tournaments"))
			for _, name := range names {
				if name == current {
					name = color.YellowString(name) + " (selected)"
				}

				fmt.Fprintf(out, "- %s\n", name)
			}

			return nil
		},
	}
}

func Delete() *cobra.Command {
	return &cobra.Command{
		Use:   "delete name",
		Short: "Delete a saved tournament",
		Args:  cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			if err := openStore(cmd).Delete(args[0]); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", color.GreenString("Deleted Tournament:"), args[0])
			return nil
		},
	}
}
