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
	"github.com/aws/aws-sdk-go/service/cloudwatch"
	"github.com/aws/aws-sdk-go/service/cloudwatch/cloudwatchiface"
	"github.com/grycap/awsome-cli/pkg/browse"
)

type cloudwatchCatalog struct {
	api cloudwatchiface.CloudWatchAPI
}

func (c *cloudwatchCatalog) Kind() browse.Kind  { return KindCloudWatch }
func (c *cloudwatchCatalog) Title() string      { return "CloudWatch Alarms" }
func (c *cloudwatchCatalog) Short() string      { return "CloudWatch" }
func (c *cloudwatchCatalog) Hierarchical() bool { return false }

func (c *cloudwatchCatalog) Headers(browse.Path) []string {
	return []string{"Alarm Name", "State", "Metric"}
}

func (c *cloudwatchCatalog) List(ctx context.Context, _ browse.Path) ([]browse.Record, error) {
	out, err := c.api.DescribeAlarmsWithContext(ctx, &cloudwatch.DescribeAlarmsInput{})
	if err != nil {
		return nil, fmt.Errorf("listing CloudWatch alarms: %w", err)
	}

	var recs []browse.Record
	for _, a := range out.MetricAlarms {
		name := aws.StringValue(a.AlarmName)
		recs = append(recs, browse.Record{
			ID:   name,
			Cols: []string{name, aws.StringValue(a.StateValue), aws.StringValue(a.MetricName)},
		})
	}
	return recs, nil
}

func (c *cloudwatchCatalog) Describe(ctx context.Context, _ browse.Path, id string) ([]browse.Field, error) {
	out, err := c.api.DescribeAlarmsWithContext(ctx, &cloudwatch.DescribeAlarmsInput{
		AlarmNames: aws.StringSlice([]string{id}),
	})
	if err != nil {
		return nil, fmt.Errorf("describing CloudWatch alarm \"%s\": %w", id, err)
	}
	if len(out.MetricAlarms) == 0 {
		return nil, fmt.Errorf("CloudWatch alarm \"%s\" not found", id)
	}

	a := out.MetricAlarms[0]
	fields := []browse.Field{
		{Key: "Alarm Name", Value: aws.StringValue(a.AlarmName)},
		{Key: "State", Value: aws.StringValue(a.StateValue)},
		{Key: "State Reason", Value: aws.StringValue(a.StateReason)},
		{Key: "Metric", Value: aws.StringValue(a.MetricName)},
		{Key: "Namespace", Value: aws.StringValue(a.Namespace)},
		{Key: "Statistic", Value: aws.StringValue(a.Statistic)},
		{Key: "Comparison", Value: aws.StringValue(a.ComparisonOperator)},
	}
	if a.Threshold != nil {
		fields = append(fields, browse.Field{Key: "Threshold", Value: fmt.Sprintf("%g", *a.Threshold)})
	}
	if a.EvaluationPeriods != nil {
		fields = append(fields, browse.Field{Key: "Evaluation Periods", Value: fmt.Sprintf("%d", *a.EvaluationPeriods)})
	}
	if a.ActionsEnabled != nil {
		fields = append(fields, browse.Field{Key: "Actions Enabled", Value: fmt.Sprintf("%t", *a.ActionsEnabled)})
	}
	return fields, nil
}
