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

package browse

import "context"

// Kind identifies a resource catalog ("ec2", "s3", ...)
type Kind string

// Field is one key/value line of a resource description
type Field struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Record is one raw backend record: an opaque identifier, its display
// columns, and whether it can be descended into. For nested levels the
// identifier keeps its separator suffix (e.g. "sub/") so that full keys can
// be rebuilt by concatenating path segments.
type Record struct {
	ID        string   `json:"id"`
	Cols      []string `json:"columns"`
	Container bool     `json:"container"`
}

// Catalog is the capability interface implemented once per resource kind.
// The navigation core only calls through it and never branches on the
// concrete kind beyond routing.
type Catalog interface {
	// Kind returns the identifier used on the command line
	Kind() Kind
	// Title returns the long display name, e.g. "EC2 Instances"
	Title() string
	// Short returns the name shown in the favorites bar, e.g. "EC2"
	Short() string
	// Headers returns the column headers for listings at the given path
	Headers(p Path) []string
	// Hierarchical reports whether entries can be descended into
	Hierarchical() bool
	// List returns the ordered records of the collection at the given path
	List(ctx context.Context, p Path) ([]Record, error)
	// Describe returns the key/value description of one entry
	Describe(ctx context.Context, p Path, id string) ([]Field, error)
}

// ServiceInfo pairs a catalog with its user-toggled favorite flag. The
// catalog set is fixed at session start; favorite is the only mutable field.
type ServiceInfo struct {
	Catalog  Catalog
	Favorite bool
}
