package cloud

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/ec2"
	"github.com/aws/aws-sdk-go/service/ec2/ec2iface"
)

type fakeEC2 struct {
	ec2iface.EC2API
	out *ec2.DescribeInstancesOutput
	err error
}

func (f *fakeEC2) DescribeInstancesWithContext(_ aws.Context, _ *ec2.DescribeInstancesInput, _ ...request.Option) (*ec2.DescribeInstancesOutput, error) {
	return f.out, f.err
}

func testInstance(id, name, state string) *ec2.Instance {
	launch := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	return &ec2.Instance{
		InstanceId:      aws.String(id),
		InstanceType:    aws.String("t3.micro"),
		PublicIpAddress: aws.String("1.2.3.4"),
		State:           &ec2.InstanceState{Name: aws.String(state)},
		LaunchTime:      &launch,
		Tags: []*ec2.Tag{
			{Key: aws.String("env"), Value: aws.String("dev")},
			{Key: aws.String("Name"), Value: aws.String(name)},
		},
	}
}

func TestEC2List(t *testing.T) {
	cat := &ec2Catalog{api: &fakeEC2{out: &ec2.DescribeInstancesOutput{
		Reservations: []*ec2.Reservation{
			{Instances: []*ec2.Instance{testInstance("i-1", "web", "running")}},
			{Instances: []*ec2.Instance{testInstance("i-2", "db", "stopped")}},
		},
	}}}

	recs, err := cat.List(context.Background(), nil)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	if recs[0].ID != "i-1" || recs[0].Cols[1] != "web" || recs[0].Cols[2] != "running" {
		t.Errorf("unexpected record %+v", recs[0])
	}
	if recs[0].Container {
		t.Error("EC2 records must be leaves")
	}
}

func TestEC2ListError(t *testing.T) {
	cat := &ec2Catalog{api: &fakeEC2{err: errors.New("denied")}}
	if _, err := cat.List(context.Background(), nil); err == nil {
		t.Fatal("expected wrapped list error")
	}
}

func TestEC2Describe(t *testing.T) {
	cat := &ec2Catalog{api: &fakeEC2{out: &ec2.DescribeInstancesOutput{
		Reservations: []*ec2.Reservation{
			{Instances: []*ec2.Instance{testInstance("i-1", "web", "running")}},
		},
	}}}

	fields, err := cat.Describe(context.Background(), nil, "i-1")
	if err != nil {
		t.Fatalf("Describe returned error: %v", err)
	}
	got := map[string]string{}
	for _, f := range fields {
		got[f.Key] = f.Value
	}
	if got["Name"] != "web" || got["State"] != "running" || got["Type"] != "t3.micro" {
		t.Errorf("unexpected fields %v", got)
	}
}

func TestEC2DescribeNotFound(t *testing.T) {
	cat := &ec2Catalog{api: &fakeEC2{out: &ec2.DescribeInstancesOutput{}}}
	if _, err := cat.Describe(context.Background(), nil, "i-miss"); err == nil {
		t.Fatal("expected not-found error")
	}
}
