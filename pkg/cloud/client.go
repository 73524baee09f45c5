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
	"fmt"

	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/cloudwatch"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/ec2"
	"github.com/aws/aws-sdk-go/service/ecs"
	"github.com/aws/aws-sdk-go/service/iam"
	"github.com/aws/aws-sdk-go/service/lambda"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/grycap/awsome-cli/pkg/browse"
	"github.com/grycap/awsome-cli/pkg/profile"
)

// Service kind identifiers, as used on the command line and in the
// favorites list of a profile
const (
	KindEC2        browse.Kind = "ec2"
	KindS3         browse.Kind = "s3"
	KindIAM        browse.Kind = "iam"
	KindCloudWatch browse.Kind = "cloudwatch"
	KindDynamoDB   browse.Kind = "dynamodb"
	KindLambda     browse.Kind = "lambda"
	KindECS        browse.Kind = "ecs"
)

// Client aggregates one resource catalog per supported service kind over a
// shared AWS session
type Client struct {
	sess     *session.Session
	s3api    s3iface.S3API
	catalogs []browse.Catalog
}

// NewClient builds the session described by the profile and one catalog per
// service kind
func NewClient(p *profile.Profile) (*Client, error) {
	sess, err := p.NewSession()
	if err != nil {
		return nil, fmt.Errorf("initializing AWS session: %w", err)
	}
	s3api := s3.New(sess)
	return &Client{
		sess:  sess,
		s3api: s3api,
		catalogs: []browse.Catalog{
			&ec2Catalog{api: ec2.New(sess)},
			&s3Catalog{api: s3api},
			&iamCatalog{api: iam.New(sess)},
			&cloudwatchCatalog{api: cloudwatch.New(sess)},
			&dynamodbCatalog{api: dynamodb.New(sess)},
			&lambdaCatalog{api: lambda.New(sess)},
			&ecsCatalog{api: ecs.New(sess)},
		},
	}, nil
}

// Catalogs returns all catalogs in display order
func (c *Client) Catalogs() []browse.Catalog {
	return c.catalogs
}

// Catalog returns the catalog for the given kind
func (c *Client) Catalog(kind browse.Kind) (browse.Catalog, error) {
	for _, cat := range c.catalogs {
		if cat.Kind() == kind {
			return cat, nil
		}
	}
	return nil, fmt.Errorf("unknown service \"%s\"", kind)
}

// Services pairs every catalog with its favorite flag, seeded from the
// profile's favorites list and defaulting to EC2 and S3
func (c *Client) Services(favorites []string) []*browse.ServiceInfo {
	if len(favorites) == 0 {
		favorites = []string{string(KindEC2), string(KindS3)}
	}
	fav := make(map[browse.Kind]bool, len(favorites))
	for _, f := range favorites {
		fav[browse.Kind(f)] = true
	}
	services := make([]*browse.ServiceInfo, len(c.catalogs))
	for i, cat := range c.catalogs {
		services[i] = &browse.ServiceInfo{Catalog: cat, Favorite: fav[cat.Kind()]}
	}
	return services
}
