/*
Copyright (C) GRyCAP - I3M - UPV

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package cmd

import (
	"github.com/spf13/cobra"
)

func makeProfileCmd() *cobra.Command {
	profileCmd := &cobra.Command{
		Use:     "profile",
		Short:   "Manages the profiles stored in the configuration file",
		Args:    cobra.NoArgs,
		Aliases: []string{"p"},
		Run:     runFunc,
	}

	profileCmd.AddCommand(makeProfileAddCmd())
	profileCmd.AddCommand(makeProfileDefaultCmd())
	profileCmd.AddCommand(makeProfileListCmd())
	profileCmd.AddCommand(makeProfileRemoveCmd())

	return profileCmd
}
