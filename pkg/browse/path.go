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

import "strings"

// Path is the position inside a hierarchical catalog: the container name
// first (bucket, cluster), then any nested segments, each kept with the
// trailing separator the backend reported. A nil Path is the root
// collection.
type Path []string

// IsRoot reports whether the path is the root collection
func (p Path) IsRoot() bool { return len(p) == 0 }

// Descend returns a new path extended by one segment
func (p Path) Descend(segment string) Path {
	next := make(Path, len(p), len(p)+1)
	copy(next, p)
	return append(next, segment)
}

// Ascend strips the trailing segment. A single-segment path goes straight
// back to the root collection rather than to an empty container.
func (p Path) Ascend() Path {
	if len(p) <= 1 {
		return nil
	}
	next := make(Path, len(p)-1)
	copy(next, p[:len(p)-1])
	return next
}

// Container returns the first segment (the bucket or cluster name)
func (p Path) Container() string {
	if len(p) == 0 {
		return ""
	}
	return p[0]
}

// Prefix joins the nested segments below the container, e.g. "folder/sub/".
// Segments keep their own separators, so plain concatenation rebuilds the
// backend key prefix.
func (p Path) Prefix() string {
	if len(p) <= 1 {
		return ""
	}
	return strings.Join(p[1:], "")
}

// String renders the path for display, e.g. "alpha/" or "alpha/folder/sub/"
func (p Path) String() string {
	if len(p) == 0 {
		return ""
	}
	return p[0] + "/" + p.Prefix()
}
