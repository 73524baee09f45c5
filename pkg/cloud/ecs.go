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
	"github.com/aws/aws-sdk-go/service/ecs"
	"github.com/aws/aws-sdk-go/service/ecs/ecsiface"
	"github.com/grycap/awsome-cli/pkg/browse"
)

// ecsCatalog exposes a two-level hierarchy: clusters at the root, services
// inside a cluster, tasks inside a service. Service path segments carry a
// trailing "/" like S3 prefixes so full identifiers concatenate cleanly.
type ecsCatalog struct {
	api ecsiface.ECSAPI
}

func (c *ecsCatalog) Kind() browse.Kind  { return KindECS }
func (c *ecsCatalog) Title() string      { return "ECS Clusters" }
func (c *ecsCatalog) Short() string      { return "ECS" }
func (c *ecsCatalog) Hierarchical() bool { return true }

func (c *ecsCatalog) Headers(p browse.Path) []string {
	switch len(p) {
	case 0:
		return []string{"Cluster Name", "Status", "Services", "Running Tasks"}
	case 1:
		return []string{"Service Name", "Status", "Desired", "Running"}
	default:
		return []string{"Task ID", "Status", "Desired Status", "Launch Type"}
	}
}

func (c *ecsCatalog) List(ctx context.Context, p browse.Path) ([]browse.Record, error) {
	switch len(p) {
	case 0:
		return c.listClusters(ctx)
	case 1:
		return c.listServices(ctx, p.Container())
	default:
		return c.listTasks(ctx, p.Container(), strings.TrimSuffix(p[1], "/"))
	}
}

func (c *ecsCatalog) listClusters(ctx context.Context) ([]browse.Record, error) {
	list, err := c.api.ListClustersWithContext(ctx, &ecs.ListClustersInput{})
	if err != nil {
		return nil, fmt.Errorf("listing ECS clusters: %w", err)
	}
	if len(list.ClusterArns) == 0 {
		return nil, nil
	}

	out, err := c.api.DescribeClustersWithContext(ctx, &ecs.DescribeClustersInput{Clusters: list.ClusterArns})
	if err != nil {
		return nil, fmt.Errorf("describing ECS clusters: %w", err)
	}

	var recs []browse.Record
	for _, cl := range out.Clusters {
		name := aws.StringValue(cl.ClusterName)
		recs = append(recs, browse.Record{
			ID: name,
			Cols: []string{
				name,
				aws.StringValue(cl.Status),
				fmt.Sprintf("%d", aws.Int64Value(cl.ActiveServicesCount)),
				fmt.Sprintf("%d", aws.Int64Value(cl.RunningTasksCount)),
			},
			Container: true,
		})
	}
	return recs, nil
}

func (c *ecsCatalog) listServices(ctx context.Context, cluster string) ([]browse.Record, error) {
	list, err := c.api.ListServicesWithContext(ctx, &ecs.ListServicesInput{Cluster: aws.String(cluster)})
	if err != nil {
		return nil, fmt.Errorf("listing services in cluster \"%s\": %w", cluster, err)
	}
	if len(list.ServiceArns) == 0 {
		return nil, nil
	}

	out, err := c.api.DescribeServicesWithContext(ctx, &ecs.DescribeServicesInput{
		Cluster:  aws.String(cluster),
		Services: list.ServiceArns,
	})
	if err != nil {
		return nil, fmt.Errorf("describing services in cluster \"%s\": %w", cluster, err)
	}

	var recs []browse.Record
	for _, svc := range out.Services {
		name := aws.StringValue(svc.ServiceName)
		recs = append(recs, browse.Record{
			ID: name + "/",
			Cols: []string{
				name,
				aws.StringValue(svc.Status),
				fmt.Sprintf("%d", aws.Int64Value(svc.DesiredCount)),
				fmt.Sprintf("%d", aws.Int64Value(svc.RunningCount)),
			},
			Container: true,
		})
	}
	return recs, nil
}

func (c *ecsCatalog) listTasks(ctx context.Context, cluster, service string) ([]browse.Record, error) {
	list, err := c.api.ListTasksWithContext(ctx, &ecs.ListTasksInput{
		Cluster:     aws.String(cluster),
		ServiceName: aws.String(service),
	})
	if err != nil {
		return nil, fmt.Errorf("listing tasks of service \"%s\": %w", service, err)
	}
	if len(list.TaskArns) == 0 {
		return nil, nil
	}

	out, err := c.api.DescribeTasksWithContext(ctx, &ecs.DescribeTasksInput{
		Cluster: aws.String(cluster),
		Tasks:   list.TaskArns,
	})
	if err != nil {
		return nil, fmt.Errorf("describing tasks of service \"%s\": %w", service, err)
	}

	var recs []browse.Record
	for _, task := range out.Tasks {
		id := arnName(aws.StringValue(task.TaskArn))
		recs = append(recs, browse.Record{
			ID: id,
			Cols: []string{
				id,
				aws.StringValue(task.LastStatus),
				aws.StringValue(task.DesiredStatus),
				aws.StringValue(task.LaunchType),
			},
		})
	}
	return recs, nil
}

func (c *ecsCatalog) Describe(ctx context.Context, p browse.Path, id string) ([]browse.Field, error) {
	switch {
	case p.IsRoot():
		return c.describeCluster(ctx, id)
	case strings.HasSuffix(id, "/"):
		return c.describeService(ctx, p.Container(), strings.TrimSuffix(id, "/"))
	default:
		// id is "service/task-id"; only the task part matters here
		return c.describeTask(ctx, p.Container(), arnName(id))
	}
}

func (c *ecsCatalog) describeCluster(ctx context.Context, name string) ([]browse.Field, error) {
	out, err := c.api.DescribeClustersWithContext(ctx, &ecs.DescribeClustersInput{
		Clusters: aws.StringSlice([]string{name}),
	})
	if err != nil {
		return nil, fmt.Errorf("describing ECS cluster \"%s\": %w", name, err)
	}
	if len(out.Clusters) == 0 {
		return nil, fmt.Errorf("ECS cluster \"%s\" not found", name)
	}

	cl := out.Clusters[0]
	return []browse.Field{
		{Key: "Cluster Name", Value: aws.StringValue(cl.ClusterName)},
		{Key: "Status", Value: aws.StringValue(cl.Status)},
		{Key: "Active Services", Value: fmt.Sprintf("%d", aws.Int64Value(cl.ActiveServicesCount))},
		{Key: "Running Tasks", Value: fmt.Sprintf("%d", aws.Int64Value(cl.RunningTasksCount))},
		{Key: "Pending Tasks", Value: fmt.Sprintf("%d", aws.Int64Value(cl.PendingTasksCount))},
		{Key: "Container Instances", Value: fmt.Sprintf("%d", aws.Int64Value(cl.RegisteredContainerInstancesCount))},
		{Key: "ARN", Value: aws.StringValue(cl.ClusterArn)},
	}, nil
}

func (c *ecsCatalog) describeService(ctx context.Context, cluster, name string) ([]browse.Field, error) {
	out, err := c.api.DescribeServicesWithContext(ctx, &ecs.DescribeServicesInput{
		Cluster:  aws.String(cluster),
		Services: aws.StringSlice([]string{name}),
	})
	if err != nil {
		return nil, fmt.Errorf("describing ECS service \"%s\": %w", name, err)
	}
	if len(out.Services) == 0 {
		return nil, fmt.Errorf("ECS service \"%s\" not found", name)
	}

	svc := out.Services[0]
	return []browse.Field{
		{Key: "Service Name", Value: aws.StringValue(svc.ServiceName)},
		{Key: "Status", Value: aws.StringValue(svc.Status)},
		{Key: "Desired Count", Value: fmt.Sprintf("%d", aws.Int64Value(svc.DesiredCount))},
		{Key: "Running Count", Value: fmt.Sprintf("%d", aws.Int64Value(svc.RunningCount))},
		{Key: "Pending Count", Value: fmt.Sprintf("%d", aws.Int64Value(svc.PendingCount))},
		{Key: "Launch Type", Value: aws.StringValue(svc.LaunchType)},
		{Key: "Task Definition", Value: arnName(aws.StringValue(svc.TaskDefinition))},
	}, nil
}

func (c *ecsCatalog) describeTask(ctx context.Context, cluster, taskID string) ([]browse.Field, error) {
	out, err := c.api.DescribeTasksWithContext(ctx, &ecs.DescribeTasksInput{
		Cluster: aws.String(cluster),
		Tasks:   aws.StringSlice([]string{taskID}),
	})
	if err != nil {
		return nil, fmt.Errorf("describing ECS task \"%s\": %w", taskID, err)
	}
	if len(out.Tasks) == 0 {
		return nil, fmt.Errorf("ECS task \"%s\" not found", taskID)
	}

	task := out.Tasks[0]
	fields := []browse.Field{
		{Key: "Task ID", Value: arnName(aws.StringValue(task.TaskArn))},
		{Key: "Status", Value: aws.StringValue(task.LastStatus)},
		{Key: "Desired Status", Value: aws.StringValue(task.DesiredStatus)},
		{Key: "Launch Type", Value: aws.StringValue(task.LaunchType)},
		{Key: "Task Definition", Value: arnName(aws.StringValue(task.TaskDefinitionArn))},
		{Key: "Availability Zone", Value: aws.StringValue(task.AvailabilityZone)},
	}
	if task.StartedAt != nil {
		fields = append(fields, browse.Field{Key: "Started At", Value: task.StartedAt.Format("2006-01-02 15:04:05")})
	}
	return fields, nil
}

// arnName returns the final path component of an ARN or slash-separated id
func arnName(arn string) string {
	if i := strings.LastIndex(arn, "/"); i >= 0 {
		return arn[i+1:]
	}
	return arn
}
