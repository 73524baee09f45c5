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
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/briandowns/spinner"
	"github.com/grycap/awsome-cli/pkg/browse"
	"github.com/grycap/awsome-cli/pkg/cloud"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/spf13/cobra"
)

func listFunc(cmd *cobra.Command, args []string) error {
	kind := browse.Kind(strings.ToLower(args[0]))

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

	outputFormat, _ := cmd.Flags().GetString("output")

	var spin *spinner.Spinner
	if outputFormat != "json" {
		spin = spinner.New(spinner.CharSets[78], 100*time.Millisecond)
		spin.Suffix = fmt.Sprintf(" Listing %s", catalog.Title())
		spin.Start()
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
	defer cancel()

	records, err := catalog.List(ctx, p)
	if spin != nil {
		spin.Stop()
	}
	if err != nil {
		return err
	}

	if pattern, _ := cmd.Flags().GetString("filter"); pattern != "" {
		records = filterRecords(records, pattern)
	}

	if outputFormat == "json" {
		content, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(content))
		return nil
	}

	if len(records) == 0 {
		fmt.Printf("No resources found for %s\n", catalog.Title())
		return nil
	}

	w := new(tabwriter.Writer)
	w.Init(os.Stdout, 0, 8, 2, '\t', 0)
	fmt.Fprintln(w, strings.ToUpper(strings.Join(catalog.Headers(p), "\t")))
	for _, record := range records {
		fmt.Fprintln(w, strings.Join(record.Cols, "\t"))
	}
	w.Flush()

	return nil
}

func filterRecords(records []browse.Record, pattern string) []browse.Record {
	var filtered []browse.Record
	for _, record := range records {
		if fuzzy.MatchFold(pattern, record.ID) {
			filtered = append(filtered, record)
		}
	}
	return filtered
}

// parsePath converts a slash separated path flag into navigation segments.
// The first segment names the container and nested segments keep their
// trailing separator, matching how hierarchical listings compose prefixes.
func parsePath(raw string) browse.Path {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	parts := strings.SplitAfter(raw, "/")
	p := browse.Path{strings.TrimSuffix(parts[0], "/")}
	for _, part := range parts[1:] {
		if part != "" {
			p = p.Descend(part)
		}
	}
	return p
}

func makeListCmd() *cobra.Command {
	listCmd := &cobra.Command{
		Use:     "list SERVICE",
		Short:   "List the resources of an AWS service",
		Args:    cobra.ExactArgs(1),
		Aliases: []string{"ls"},
		RunE:    listFunc,
	}

	listCmd.Flags().StringP("profile", "p", "", "set the profile")
	listCmd.Flags().String("path", "", "nested path inside a hierarchical service (e.g. \"my-bucket/photos/\")")
	listCmd.Flags().StringP("filter", "f", "", "fuzzy filter on resource identifiers")
	listCmd.Flags().StringP("output", "o", "table", "output format (table or json)")

	return listCmd
}
