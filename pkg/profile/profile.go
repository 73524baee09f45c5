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

package profile

import (
	"crypto/tls"
	"net/http"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
)

// Profile defines the connection settings of one AWS account entry
type Profile struct {
	Region     string   `json:"region,omitempty"`
	AWSProfile string   `json:"aws_profile,omitempty"`
	AccessKey  string   `json:"access_key,omitempty"`
	SecretKey  string   `json:"secret_key,omitempty"`
	Endpoint   string   `json:"endpoint,omitempty"`
	SSLVerify  bool     `json:"ssl_verify"`
	Favorites  []string `json:"favorites,omitempty"`
}

// Default returns a profile that resolves credentials through the standard
// AWS chain (environment, shared credentials file, instance role)
func Default() *Profile {
	return &Profile{SSLVerify: true}
}

// NewSession builds the shared AWS session for the profile. Static keys
// take precedence over the shared credentials profile; a custom endpoint
// switches S3 to path-style addressing so S3-compatible stores (MinIO,
// LocalStack) work, and ssl_verify only applies to custom endpoints.
func (p *Profile) NewSession() (*session.Session, error) {
	cfg := aws.NewConfig()
	if p.Region != "" {
		cfg = cfg.WithRegion(p.Region)
	}
	if p.AccessKey != "" {
		cfg = cfg.WithCredentials(credentials.NewStaticCredentials(p.AccessKey, p.SecretKey, ""))
	}
	if p.Endpoint != "" {
		cfg = cfg.WithEndpoint(p.Endpoint).WithS3ForcePathStyle(true)
		if !p.SSLVerify {
			cfg = cfg.WithHTTPClient(&http.Client{
				Transport: &http.Transport{
					// #nosec
					TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
				},
			})
		}
	}
	return session.NewSessionWithOptions(session.Options{
		Config:            *cfg,
		Profile:           p.AWSProfile,
		SharedConfigState: session.SharedConfigEnable,
	})
}
