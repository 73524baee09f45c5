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

func profileDefaultFunc(cmd *cobra.Command, args []string) error {
	conf, err := config.ReadConfig(configPath)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		if conf.Default == "" {
			fmt.Println("There is no default profile")
		} else {
			fmt.Println(conf.Default)
		}
		return nil
	}

	if err := conf.SetDefault(configPath, args[0]); err != nil {
		return err
	}

	fmt.Printf("%sProfile \"%s\" is now the default\n", successString, args[0])

	return nil
}

func makeProfileDefaultCmd() *cobra.Command {
	profileDefaultCmd := &cobra.Command{
		Use:     "default [IDENTIFIER]",
		Short:   "Show or set the default profile",
		Args:    cobra.MaximumNArgs(1),
		Aliases: []string{"d"},
		RunE:    profileDefaultFunc,
	}

	return profileDefaultCmd
}
