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

package cloud

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/iam"
	"github.com/aws/aws-sdk-go/service/iam/iamiface"
	"github.com/grycap/awsome-cli/pkg/browse"
)

type iamCatalog struct {
	api iamiface.IAMAPI
}

func (c *iamCatalog) Kind() browse.Kind  { return KindIAM }
func (c *iamCatalog) Title() string      { return "IAM Users" }
func (c *iamCatalog) Short() string      { return "IAM" }
func (c *iamCatalog) Hierarchical() bool { return false }

func (c *iamCatalog) Headers(browse.Path) []string {
	return []string{"User Name", "User ID", "Created"}
}

func (c *iamCatalog) List(ctx context.Context, _ browse.Path) ([]browse.Record, error) {
	out, err := c.api.ListUsersWithContext(ctx, &iam.ListUsersInput{})
	if err != nil {
		return nil, fmt.Errorf("listing IAM users: %w", err)
	}

	var recs []browse.Record
	for _, u := range out.Users {
		name := aws.StringValue(u.UserName)
		created := ""
		if u.CreateDate != nil {
			created = u.CreateDate.Format("2006-01-02")
		}
		recs = append(recs, browse.Record{
			ID:   name,
			Cols: []string{name, aws.StringValue(u.UserId), created},
		})
	}
	return recs, nil
}

func (c *iamCatalog) Describe(ctx context.Context, _ browse.Path, id string) ([]browse.Field, error) {
	out, err := c.api.GetUserWithContext(ctx, &iam.GetUserInput{UserName: aws.String(id)})
	if err != nil {
		return nil, fmt.Errorf("describing IAM user \"%s\": %w", id, err)
	}

	u := out.User
	fields := []browse.Field{
		{Key: "User Name", Value: aws.StringValue(u.UserName)},
		{Key: "User ID", Value: aws.StringValue(u.UserId)},
		{Key: "ARN", Value: aws.StringValue(u.Arn)},
		{Key: "Path", Value: aws.StringValue(u.Path)},
	}
	if u.CreateDate != nil {
		fields = append(fields, browse.Field{Key: "Created", Value: u.CreateDate.Format("2006-01-02 15:04:05")})
	}
	if u.PasswordLastUsed != nil {
		fields = append(fields, browse.Field{Key: "Password Last Used", Value: u.PasswordLastUsed.Format("2006-01-02 15:04:05")})
	}
	return fields, nil
}
