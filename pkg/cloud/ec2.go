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
	"github.com/aws/aws-sdk-go/service/ec2"
	"github.com/aws/aws-sdk-go/service/ec2/ec2iface"
	"github.com/grycap/awsome-cli/pkg/browse"
)

type ec2Catalog struct {
	api ec2iface.EC2API
}

func (c *ec2Catalog) Kind() browse.Kind  { return KindEC2 }
func (c *ec2Catalog) Title() string      { return "EC2 Instances" }
func (c *ec2Catalog) Short() string      { return "EC2" }
func (c *ec2Catalog) Hierarchical() bool { return false }

func (c *ec2Catalog) Headers(browse.Path) []string {
	return []string{"Instance ID", "Name", "State", "Type", "Public IP"}
}

func (c *ec2Catalog) List(ctx context.Context, _ browse.Path) ([]browse.Record, error) {
	out, err := c.api.DescribeInstancesWithContext(ctx, &ec2.DescribeInstancesInput{})
	if err != nil {
		return nil, fmt.Errorf("listing EC2 instances: %w", err)
	}

	var recs []browse.Record
	for _, res := range out.Reservations {
		for _, inst := range res.Instances {
			id := aws.StringValue(inst.InstanceId)
			recs = append(recs, browse.Record{
				ID: id,
				Cols: []string{
					id,
					instanceName(inst),
					instanceState(inst),
					aws.StringValue(inst.InstanceType),
					aws.StringValue(inst.PublicIpAddress),
				},
			})
		}
	}
	return recs, nil
}

func (c *ec2Catalog) Describe(ctx context.Context, _ browse.Path, id string) ([]browse.Field, error) {
	out, err := c.api.DescribeInstancesWithContext(ctx, &ec2.DescribeInstancesInput{
		InstanceIds: aws.StringSlice([]string{id}),
	})
	if err != nil {
		return nil, fmt.Errorf("describing EC2 instance \"%s\": %w", id, err)
	}

	for _, res := range out.Reservations {
		for _, inst := range res.Instances {
			fields := []browse.Field{
				{Key: "Instance ID", Value: aws.StringValue(inst.InstanceId)},
				{Key: "Name", Value: instanceName(inst)},
				{Key: "State", Value: instanceState(inst)},
				{Key: "Type", Value: aws.StringValue(inst.InstanceType)},
				{Key: "AMI", Value: aws.StringValue(inst.ImageId)},
				{Key: "Public IP", Value: aws.StringValue(inst.PublicIpAddress)},
				{Key: "Private IP", Value: aws.StringValue(inst.PrivateIpAddress)},
				{Key: "VPC", Value: aws.StringValue(inst.VpcId)},
				{Key: "Subnet", Value: aws.StringValue(inst.SubnetId)},
				{Key: "Key Pair", Value: aws.StringValue(inst.KeyName)},
			}
			if inst.Placement != nil {
				fields = append(fields, browse.Field{Key: "Availability Zone", Value: aws.StringValue(inst.Placement.AvailabilityZone)})
			}
			if inst.LaunchTime != nil {
				fields = append(fields, browse.Field{Key: "Launch Time", Value: inst.LaunchTime.Format("2006-01-02 15:04:05")})
			}
			return fields, nil
		}
	}
	return nil, fmt.Errorf("EC2 instance \"%s\" not found", id)
}

func instanceName(inst *ec2.Instance) string {
	for _, tag := range inst.Tags {
		if aws.StringValue(tag.Key) == "Name" {
			return aws.StringValue(tag.Value)
		}
	}
	return ""
}

func instanceState(inst *ec2.Instance) string {
	if inst.State == nil {
		return ""
	}
	return aws.StringValue(inst.State.Name)
}
