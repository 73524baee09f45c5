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
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/grycap/awsome-cli/pkg/config"
	"github.com/grycap/awsome-cli/pkg/profile"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func profileAddFunc(cmd *cobra.Command, args []string) error {
	identifier := args[0]

	region, _ := cmd.Flags().GetString("region")
	awsProfile, _ := cmd.Flags().GetString("aws-profile")
	accessKey, _ := cmd.Flags().GetString("access-key")
	secretKey, _ := cmd.Flags().GetString("secret-key")
	endpoint, _ := cmd.Flags().GetString("endpoint")
	disableSSL, _ := cmd.Flags().GetBool("disable-ssl")
	favorites, _ := cmd.Flags().GetStringSlice("favorite")

	// Prompt for the secret when only the access key was given
	if accessKey != "" && secretKey == "" {
		secretStdin, _ := cmd.Flags().GetBool("secret-key-stdin")
		var err error
		if secretStdin {
			secretKey, err = readSecretStdin()
		} else {
			secretKey, err = promptSecretKey()
		}
		if err != nil {
			return err
		}
	}

	conf, err := config.ReadConfig(configPath)
	if err != nil {
		conf = &config.Config{Profiles: map[string]*profile.Profile{}}
	}

	err = conf.AddProfile(configPath, identifier, &profile.Profile{
		Region:     region,
		AWSProfile: awsProfile,
		AccessKey:  accessKey,
		SecretKey:  secretKey,
		Endpoint:   endpoint,
		SSLVerify:  !disableSSL,
		Favorites:  favorites,
	})
	if err != nil {
		return err
	}

	fmt.Printf("%sProfile \"%s\" successfully stored. To modify the values, please edit the file \"%s\"\n", successString, identifier, configPath)

	return nil
}

func promptSecretKey() (string, error) {
	fmt.Print("Secret access key: ")
	secret, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("unable to read the secret access key")
	}
	return strings.TrimSpace(string(secret)), nil
}

func readSecretStdin() (string, error) {
	// Read the secret access key from stdin
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Scan()
	secret := scanner.Text()

	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("unable to read the secret access key from stdin")
	}

	return strings.TrimSpace(secret), nil
}

func makeProfileAddCmd() *cobra.Command {
	profileAddCmd := &cobra.Command{
		Use:     "add IDENTIFIER",
		Short:   "Add a new profile to the configuration file",
		Args:    cobra.ExactArgs(1),
		Aliases: []string{"a"},
		RunE:    profileAddFunc,
	}

	profileAddCmd.Flags().StringP("region", "r", "", "AWS region")
	profileAddCmd.Flags().String("aws-profile", "", "named profile from the shared AWS credentials file")
	profileAddCmd.Flags().String("access-key", "", "AWS access key ID")
	profileAddCmd.Flags().String("secret-key", "", "AWS secret access key")
	profileAddCmd.Flags().Bool("secret-key-stdin", false, "take the secret access key from stdin")
	profileAddCmd.Flags().String("endpoint", "", "custom endpoint for S3-compatible services (MinIO)")
	profileAddCmd.Flags().Bool("disable-ssl", false, "disable verification of TLS certificates (insecure)")
	profileAddCmd.Flags().StringSliceP("favorite", "f", nil, "mark a service as favorite in the interactive browser (can be repeated)")

	return profileAddCmd
}
