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
	"fmt"

	"github.com/grycap/awsome-cli/pkg/config"
	"github.com/spf13/cobra"
)

func profileRemoveFunc(cmd *cobra.Command, args []string) error {
	identifier := args[0]

	conf, err := config.ReadConfig(configPath)
	if err != nil {
		return err
	}

	if err := conf.RemoveProfile(configPath, identifier); err != nil {
		return err
	}

	fmt.Printf("%sProfile \"%s\" successfully removed from the configuration file\n", successString, identifier)

	return nil
}

func makeProfileRemoveCmd() *cobra.Command {
	profileRemoveCmd := &cobra.Command{
		Use:     "remove IDENTIFIER",
		Short:   "Remove a profile from the configuration file",
		Args:    cobra.ExactArgs(1),
		Aliases: []string{"rm"},
		RunE:    profileRemoveFunc,
	}

	return profileRemoveCmd
}
