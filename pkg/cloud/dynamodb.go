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
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
	"github.com/dustin/go-humanize"
	"github.com/grycap/awsome-cli/pkg/browse"
)

type dynamodbCatalog struct {
	api dynamodbiface.DynamoDBAPI
}

func (c *dynamodbCatalog) Kind() browse.Kind  { return KindDynamoDB }
func (c *dynamodbCatalog) Title() string      { return "DynamoDB Tables" }
func (c *dynamodbCatalog) Short() string      { return "DynamoDB" }
func (c *dynamodbCatalog) Hierarchical() bool { return false }

func (c *dynamodbCatalog) Headers(browse.Path) []string {
	return []string{"Table Name", "Status", "Items", "Size"}
}

func (c *dynamodbCatalog) List(ctx context.Context, _ browse.Path) ([]browse.Record, error) {
	out, err := c.api.ListTablesWithContext(ctx, &dynamodb.ListTablesInput{})
	if err != nil {
		return nil, fmt.Errorf("listing DynamoDB tables: %w", err)
	}

	var recs []browse.Record
	for _, name := range out.TableNames {
		n := aws.StringValue(name)
		cols := []string{n, "", "", ""}
		// fill status/items/size when the table can be described
		if desc, err := c.api.DescribeTableWithContext(ctx, &dynamodb.DescribeTableInput{TableName: name}); err == nil && desc.Table != nil {
			t := desc.Table
			cols[1] = aws.StringValue(t.TableStatus)
			cols[2] = fmt.Sprintf("%d", aws.Int64Value(t.ItemCount))
			cols[3] = humanize.IBytes(uint64(aws.Int64Value(t.TableSizeBytes)))
		}
		recs = append(recs, browse.Record{ID: n, Cols: cols})
	}
	return recs, nil
}

func (c *dynamodbCatalog) Describe(ctx context.Context, _ browse.Path, id string) ([]browse.Field, error) {
	out, err := c.api.DescribeTableWithContext(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(id)})
	if err != nil {
		return nil, fmt.Errorf("describing DynamoDB table \"%s\": %w", id, err)
	}

	t := out.Table
	fields := []browse.Field{
		{Key: "Table Name", Value: aws.StringValue(t.TableName)},
		{Key: "Status", Value: aws.StringValue(t.TableStatus)},
		{Key: "Items", Value: fmt.Sprintf("%d", aws.Int64Value(t.ItemCount))},
		{Key: "Size", Value: humanize.IBytes(uint64(aws.Int64Value(t.TableSizeBytes)))},
		{Key: "Key Schema", Value: keySchema(t.KeySchema)},
	}
	if t.BillingModeSummary != nil {
		fields = append(fields, browse.Field{Key: "Billing Mode", Value: aws.StringValue(t.BillingModeSummary.BillingMode)})
	}
	if n := len(t.GlobalSecondaryIndexes); n > 0 {
		fields = append(fields, browse.Field{Key: "Global Indexes", Value: fmt.Sprintf("%d", n)})
	}
	if n := len(t.LocalSecondaryIndexes); n > 0 {
		fields = append(fields, browse.Field{Key: "Local Indexes", Value: fmt.Sprintf("%d", n)})
	}
	if t.CreationDateTime != nil {
		fields = append(fields, browse.Field{Key: "Created", Value: t.CreationDateTime.Format("2006-01-02 15:04:05")})
	}
	return fields, nil
}

func keySchema(elems []*dynamodb.KeySchemaElement) string {
	parts := make([]string, 0, len(elems))
	for _, e := range elems {
		parts = append(parts, fmt.Sprintf("%s (%s)", aws.StringValue(e.AttributeName), aws.StringValue(e.KeyType)))
	}
	return strings.Join(parts, ", ")
}
