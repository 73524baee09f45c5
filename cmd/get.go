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

	"github.com/grycap/awsome-cli/pkg/cloud"
	"github.com/spf13/cobra"
)

func getFunc(cmd *cobra.Command, args []string) error {
	remotePath := args[0]

	var localPath string
	if len(args) == 2 {
		localPath = args[1]
	}

	prof, err := resolveProfile(cmd)
	if err != nil {
		return err
	}

	client, err := cloud.NewClient(prof)
	if err != nil {
		return err
	}

	noProgress, _ := cmd.Flags().GetBool("no-progress")
	opt := &cloud.TransferOption{ShowProgress: !noProgress}

	if err := client.DownloadObject(remotePath, localPath, opt); err != nil {
		fmt.Printf("%sThe file could not be downloaded\n", failureString)
		return err
	}

	fmt.Printf("%sFile \"%s\" successfully downloaded\n", successString, remotePath)

	return nil
}

func makeGetCmd() *cobra.Command {
	getCmd := &cobra.Command{
		Use:     "get BUCKET/KEY [LOCAL_PATH]",
		Short:   "Download an object from S3",
		Args:    cobra.RangeArgs(1, 2),
		Aliases: []string{"g"},
		RunE:    getFunc,
	}

	getCmd.Flags().StringP("profile", "p", "", "set the profile")
	getCmd.Flags().Bool("no-progress", false, "hide the download progress bar")

	return getCmd
}
