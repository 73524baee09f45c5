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
	"github.com/aws/aws-sdk-go/service/lambda"
	"github.com/aws/aws-sdk-go/service/lambda/lambdaiface"
	"github.com/dustin/go-humanize"
	"github.com/grycap/awsome-cli/pkg/browse"
)

type lambdaCatalog struct {
	api lambdaiface.LambdaAPI
}

func (c *lambdaCatalog) Kind() browse.Kind  { return KindLambda }
func (c *lambdaCatalog) Title() string      { return "Lambda Functions" }
func (c *lambdaCatalog) Short() string      { return "Lambda" }
func (c *lambdaCatalog) Hierarchical() bool { return false }

func (c *lambdaCatalog) Headers(browse.Path) []string {
	return []string{"Function Name", "Runtime", "Last Modified"}
}

func (c *lambdaCatalog) List(ctx context.Context, _ browse.Path) ([]browse.Record, error) {
	out, err := c.api.ListFunctionsWithContext(ctx, &lambda.ListFunctionsInput{})
	if err != nil {
		return nil, fmt.Errorf("listing Lambda functions: %w", err)
	}

	var recs []browse.Record
	for _, f := range out.Functions {
		name := aws.StringValue(f.FunctionName)
		recs = append(recs, browse.Record{
			ID:   name,
			Cols: []string{name, aws.StringValue(f.Runtime), aws.StringValue(f.LastModified)},
		})
	}
	return recs, nil
}

func (c *lambdaCatalog) Describe(ctx context.Context, _ browse.Path, id string) ([]browse.Field, error) {
	out, err := c.api.GetFunctionWithContext(ctx, &lambda.GetFunctionInput{FunctionName: aws.String(id)})
	if err != nil {
		return nil, fmt.Errorf("describing Lambda function \"%s\": %w", id, err)
	}

	cfg := out.Configuration
	if cfg == nil {
		return nil, fmt.Errorf("Lambda function \"%s\" not found", id)
	}
	fields := []browse.Field{
		{Key: "Function Name", Value: aws.StringValue(cfg.FunctionName)},
		{Key: "Runtime", Value: aws.StringValue(cfg.Runtime)},
		{Key: "Handler", Value: aws.StringValue(cfg.Handler)},
		{Key: "Memory", Value: fmt.Sprintf("%d MB", aws.Int64Value(cfg.MemorySize))},
		{Key: "Timeout", Value: fmt.Sprintf("%d s", aws.Int64Value(cfg.Timeout))},
		{Key: "Code Size", Value: humanize.IBytes(uint64(aws.Int64Value(cfg.CodeSize)))},
		{Key: "Last Modified", Value: aws.StringValue(cfg.LastModified)},
		{Key: "ARN", Value: aws.StringValue(cfg.FunctionArn)},
	}
	if desc := aws.StringValue(cfg.Description); desc != "" {
		fields = append(fields, browse.Field{Key: "Description", Value: desc})
	}
	return fields, nil
}
