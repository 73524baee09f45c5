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

	"github.com/fatih/color"
	"github.com/grycap/awsome-cli/pkg/config"
	"github.com/grycap/awsome-cli/pkg/profile"
	"github.com/spf13/cobra"
)

func profileListFunc(cmd *cobra.Command, args []string) error {
	conf, err := config.ReadConfig(configPath)
	if err != nil {
		return err
	}

	bold := color.New(color.Bold)

	for identifier, prof := range conf.Profiles {
		if identifier == conf.Default {
			bold.Printf("%s (%s) (Default)\n", identifier, profileSummary(prof))
		} else {
			fmt.Printf("%s (%s)\n", identifier, profileSummary(prof))
		}
	}

	return nil
}

func profileSummary(p *profile.Profile) string {
	switch {
	case p.Endpoint != "":
		return p.Endpoint
	case p.Region != "":
		return p.Region
	case p.AWSProfile != "":
		return "aws profile " + p.AWSProfile
	default:
		return "default credential chain"
	}
}

func makeProfileListCmd() *cobra.Command {
	profileListCmd := &cobra.Command{
		Use:     "list",
		Short:   "List the configured profiles",
		Args:    cobra.NoArgs,
		Aliases: []string{"ls"},
		RunE:    profileListFunc,
	}

	return profileListCmd
}
