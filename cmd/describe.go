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
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/grycap/awsome-cli/pkg/browse"
	"github.com/grycap/awsome-cli/pkg/cloud"
	"github.com/spf13/cobra"
)

func describeFunc(cmd *cobra.Command, args []string) error {
	kind := browse.Kind(strings.ToLower(args[0]))
	identifier := args[1]

	prof, err := resolveProfile(cmd)
	if err != nil {
		return err
	}

	client, err := cloud.NewClient(prof)
	if err != nil {
		return err
	}

	catalog, err := client.Catalog(kind)
	if err != nil {
		return err
	}

	pathFlag, _ := cmd.Flags().GetString("path")
	p := parsePath(pathFlag)
	if !p.IsRoot() && !catalog.Hierarchical() {
		return fmt.Errorf("service \"%s\" has no nested paths", kind)
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
	defer cancel()

	fields, err := catalog.Describe(ctx, p, identifier)
	if err != nil {
		return err
	}

	bold := color.New(color.Bold)
	for _, field := range fields {
		bold.Printf("%s: ", field.Key)
		fmt.Println(field.Value)
	}

	return nil
}

func makeDescribeCmd() *cobra.Command {
	describeCmd := &cobra.Command{
		Use:     "describe SERVICE IDENTIFIER",
		Short:   "Show the details of a single resource",
		Args:    cobra.ExactArgs(2),
		Aliases: []string{"d"},
		RunE:    describeFunc,
	}

	describeCmd.Flags().StringP("profile", "p", "", "set the profile")
	describeCmd.Flags().String("path", "", "nested path inside a hierarchical service (e.g. \"my-bucket/photos/\")")

	return describeCmd
}
