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
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/grycap/awsome-cli/pkg/config"
	"github.com/grycap/awsome-cli/pkg/profile"
	"github.com/spf13/cobra"
)

const requestTimeout = 30 * time.Second

var (
	configPath        string
	defaultConfigPath string
	rootCmd           *cobra.Command

	failureString = color.New(color.FgRed).Sprint("✗ ")
	successString = color.New(color.FgGreen).Sprint("✓ ")
)

func newRootCommand() *cobra.Command {
	resetPersistentState()

	cmd := &cobra.Command{
		Use:     "awsome-cli",
		Short:   "An interactive terminal browser for AWS resources",
		Args:    cobra.NoArgs,
		Aliases: []string{"awsome"},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Only display usage with args related errors
			cmd.SilenceUsage = true
		},
		Run: runFunc,
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", defaultConfigPath, "set the location of the config file (YAML or JSON)")

	cmd.AddCommand(makeVersionCmd())
	cmd.AddCommand(makeInteractiveCmd())
	cmd.AddCommand(makeProfileCmd())
	cmd.AddCommand(makeListCmd())
	cmd.AddCommand(makeDescribeCmd())
	cmd.AddCommand(makeGetCmd())

	return cmd
}

func runFunc(cmd *cobra.Command, args []string) {
	cmd.Help()
}

// resolveProfile picks the AWS profile for a command: the --profile flag
// first, then the configured default, falling back to the plain AWS
// credential chain when no config file or default exists
func resolveProfile(cmd *cobra.Command) (*profile.Profile, error) {
	profileID, _ := cmd.Flags().GetString("profile")

	conf, err := config.ReadConfig(configPath)
	if err != nil {
		if profileID != "" {
			return nil, err
		}
		return profile.Default(), nil
	}
	if profileID == "" && conf.Default == "" {
		return profile.Default(), nil
	}

	_, prof, err := conf.GetProfile(profileID)
	return prof, err
}

// Execute function to launch the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Set default config path
	var err error
	defaultConfigPath, err = config.GetDefaultConfigPath()
	if err != nil {
		os.Exit(1)
	}

	rootCmd = newRootCommand()
}

// NewRootCommand construct a fresh root command instance.
func NewRootCommand() *cobra.Command {
	return newRootCommand()
}

func resetPersistentState() {
	configPath = defaultConfigPath
}
