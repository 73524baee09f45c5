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
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/dustin/go-humanize"
	"github.com/grycap/awsome-cli/pkg/browse"
)

type s3Catalog struct {
	api s3iface.S3API
}

func (c *s3Catalog) Kind() browse.Kind  { return KindS3 }
func (c *s3Catalog) Title() string      { return "S3 Buckets" }
func (c *s3Catalog) Short() string      { return "S3" }
func (c *s3Catalog) Hierarchical() bool { return true }

func (c *s3Catalog) Headers(p browse.Path) []string {
	if p.IsRoot() {
		return []string{"Bucket Name", "Creation Date"}
	}
	return []string{"Name", "Size", "Last Modified"}
}

func (c *s3Catalog) List(ctx context.Context, p browse.Path) ([]browse.Record, error) {
	if p.IsRoot() {
		return c.listBuckets(ctx)
	}
	return c.listObjects(ctx, p)
}

func (c *s3Catalog) listBuckets(ctx context.Context) ([]browse.Record, error) {
	out, err := c.api.ListBucketsWithContext(ctx, &s3.ListBucketsInput{})
	if err != nil {
		return nil, fmt.Errorf("listing S3 buckets: %w", err)
	}

	var recs []browse.Record
	for _, b := range out.Buckets {
		name := aws.StringValue(b.Name)
		created := ""
		if b.CreationDate != nil {
			created = b.CreationDate.Format("2006-01-02 15:04:05")
		}
		recs = append(recs, browse.Record{
			ID:        name,
			Cols:      []string{name, created},
			Container: true,
		})
	}
	return recs, nil
}

func (c *s3Catalog) listObjects(ctx context.Context, p browse.Path) ([]browse.Record, error) {
	prefix := p.Prefix()
	out, err := c.api.ListObjectsV2WithContext(ctx, &s3.ListObjectsV2Input{
		Bucket:    aws.String(p.Container()),
		Prefix:    aws.String(prefix),
		Delimiter: aws.String("/"),
	})
	if err != nil {
		return nil, fmt.Errorf("listing objects in \"%s\": %w", p.String(), err)
	}

	var recs []browse.Record
	for _, cp := range out.CommonPrefixes {
		name := strings.TrimPrefix(aws.StringValue(cp.Prefix), prefix)
		if name == "" {
			continue
		}
		recs = append(recs, browse.Record{
			ID:        name,
			Cols:      []string{name, "DIR", ""},
			Container: true,
		})
	}
	for _, obj := range out.Contents {
		key := aws.StringValue(obj.Key)
		// skip the placeholder object some clients create for the prefix
		if key == prefix {
			continue
		}
		name := strings.TrimPrefix(key, prefix)
		modified := ""
		if obj.LastModified != nil {
			modified = obj.LastModified.Format("2006-01-02 15:04:05")
		}
		recs = append(recs, browse.Record{
			ID:   name,
			Cols: []string{name, humanize.IBytes(uint64(aws.Int64Value(obj.Size))), modified},
		})
	}
	return recs, nil
}

func (c *s3Catalog) Describe(ctx context.Context, p browse.Path, id string) ([]browse.Field, error) {
	if p.IsRoot() {
		return c.describeBucket(ctx, id)
	}
	if strings.HasSuffix(id, "/") {
		return []browse.Field{
			{Key: "Name", Value: id},
			{Key: "Type", Value: "Prefix"},
		}, nil
	}
	return c.describeObject(ctx, p.Container(), id)
}

func (c *s3Catalog) describeBucket(ctx context.Context, name string) ([]browse.Field, error) {
	fields := []browse.Field{{Key: "Bucket", Value: name}}

	// every sub-call is optional; permissions often allow only a subset
	region := "us-east-1"
	if loc, err := c.api.GetBucketLocationWithContext(ctx, &s3.GetBucketLocationInput{Bucket: aws.String(name)}); err == nil {
		if v := aws.StringValue(loc.LocationConstraint); v != "" {
			region = v
		}
	} else {
		region = "unknown"
	}
	fields = append(fields, browse.Field{Key: "Region", Value: region})

	versioning := "Disabled"
	if v, err := c.api.GetBucketVersioningWithContext(ctx, &s3.GetBucketVersioningInput{Bucket: aws.String(name)}); err == nil {
		if s := aws.StringValue(v.Status); s != "" {
			versioning = s
		}
	} else {
		versioning = "unknown"
	}
	fields = append(fields, browse.Field{Key: "Versioning", Value: versioning})

	encryption := "None"
	if e, err := c.api.GetBucketEncryptionWithContext(ctx, &s3.GetBucketEncryptionInput{Bucket: aws.String(name)}); err == nil {
		if e.ServerSideEncryptionConfiguration != nil {
			for _, rule := range e.ServerSideEncryptionConfiguration.Rules {
				if rule.ApplyServerSideEncryptionByDefault != nil {
					encryption = aws.StringValue(rule.ApplyServerSideEncryptionByDefault.SSEAlgorithm)
					break
				}
			}
		}
	}
	fields = append(fields, browse.Field{Key: "Encryption", Value: encryption})

	if acl, err := c.api.GetBucketAclWithContext(ctx, &s3.GetBucketAclInput{Bucket: aws.String(name)}); err == nil {
		fields = append(fields, browse.Field{Key: "ACL Grants", Value: fmt.Sprintf("%d", len(acl.Grants))})
	}

	if pab, err := c.api.GetPublicAccessBlockWithContext(ctx, &s3.GetPublicAccessBlockInput{Bucket: aws.String(name)}); err == nil {
		blocked := "No"
		if cfg := pab.PublicAccessBlockConfiguration; cfg != nil && aws.BoolValue(cfg.BlockPublicAcls) && aws.BoolValue(cfg.BlockPublicPolicy) {
			blocked = "Yes"
		}
		fields = append(fields, browse.Field{Key: "Public Access Blocked", Value: blocked})
	}

	if t, err := c.api.GetBucketTaggingWithContext(ctx, &s3.GetBucketTaggingInput{Bucket: aws.String(name)}); err == nil {
		for _, tag := range t.TagSet {
			fields = append(fields, browse.Field{
				Key:   fmt.Sprintf("Tag %s", aws.StringValue(tag.Key)),
				Value: aws.StringValue(tag.Value),
			})
		}
	}

	return fields, nil
}

func (c *s3Catalog) describeObject(ctx context.Context, bucket, key string) ([]browse.Field, error) {
	head, err := c.api.HeadObjectWithContext(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("describing object \"%s/%s\": %w", bucket, key, err)
	}

	storageClass := aws.StringValue(head.StorageClass)
	if storageClass == "" {
		storageClass = "STANDARD"
	}
	fields := []browse.Field{
		{Key: "Key", Value: key},
		{Key: "Bucket", Value: bucket},
		{Key: "Size", Value: humanize.IBytes(uint64(aws.Int64Value(head.ContentLength)))},
		{Key: "Storage Class", Value: storageClass},
		{Key: "ETag", Value: strings.Trim(aws.StringValue(head.ETag), "\"")},
		{Key: "Content Type", Value: aws.StringValue(head.ContentType)},
	}
	if head.LastModified != nil {
		fields = append(fields, browse.Field{Key: "Last Modified", Value: head.LastModified.Format("2006-01-02 15:04:05")})
	}
	return fields, nil
}
