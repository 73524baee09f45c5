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

import (
	"fmt"
	"strings"
)

// Role tags the function of a rendered row. Roles are assigned when the row
// set is built and never change afterwards; refreshes replace the whole set.
type Role int

const (
	// RoleHeader is a decorative line (column titles, messages, diagnostics)
	RoleHeader Role = iota
	// RoleSeparator is the rule between headers and entries
	RoleSeparator
	// RoleParentLink is the ".." row that ascends one level
	RoleParentLink
	// RoleEntry is a real resource row carrying an identifier
	RoleEntry
)

// Row is one display line plus its navigation role. ID is only meaningful
// for RoleEntry rows and is opaque to everything but the owning catalog.
type Row struct {
	Role      Role
	ID        string
	Text      string
	Container bool
}

// Selectable reports whether the cursor may land on the row
func (r Row) Selectable() bool {
	return r.Role == RoleEntry || r.Role == RoleParentLink
}

// BuildRows renders backend records into role-tagged display rows: column
// headers and a separator first, then an optional ".." parent link, then one
// entry per record in backend order. Column widths are computed from the
// widest value in this record set, so they vary from call to call. Records
// with missing columns degrade to empty cells; BuildRows never fails.
func BuildRows(headers []string, recs []Record, parentLink bool) []Row {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, rec := range recs {
		for i := range widths {
			if i < len(rec.Cols) && len(rec.Cols[i]) > widths[i] {
				widths[i] = len(rec.Cols[i])
			}
		}
	}

	total := 0
	for _, w := range widths {
		total += w
	}
	if n := len(widths); n > 1 {
		total += 2 * (n - 1)
	}

	rows := make([]Row, 0, len(recs)+3)
	rows = append(rows,
		Row{Role: RoleHeader, Text: padColumns(headers, widths)},
		Row{Role: RoleSeparator, Text: strings.Repeat("-", total)})
	if parentLink {
		rows = append(rows, Row{Role: RoleParentLink, Text: "..", Container: true})
	}
	for _, rec := range recs {
		rows = append(rows, Row{
			Role:      RoleEntry,
			ID:        rec.ID,
			Text:      padColumns(rec.Cols, widths),
			Container: rec.Container,
		})
	}
	return rows
}

func padColumns(cols []string, widths []int) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		val := ""
		if i < len(cols) {
			val = cols[i]
		}
		if i == len(widths)-1 {
			parts[i] = val
		} else {
			parts[i] = fmt.Sprintf("%-*s", w, val)
		}
	}
	return strings.TrimRight(strings.Join(parts, "  "), " ")
}

// DiagnosticRows is the fixed set of rows shown after a failed list call.
// The wording is part of the UI contract and stays stable.
func DiagnosticRows(title string, err error) []Row {
	return []Row{
		{Role: RoleHeader, Text: fmt.Sprintf("Error loading %s", title)},
		{Role: RoleHeader, Text: fmt.Sprintf("Details: %v", err)},
		{Role: RoleSeparator, Text: ""},
		{Role: RoleHeader, Text: "Possible causes:"},
		{Role: RoleHeader, Text: "- Invalid AWS credentials"},
		{Role: RoleHeader, Text: "- Insufficient IAM permissions"},
		{Role: RoleHeader, Text: "- Network connectivity issues"},
	}
}

func messageRows(lines ...string) []Row {
	rows := make([]Row, len(lines))
	for i, l := range lines {
		rows[i] = Row{Role: RoleHeader, Text: l}
	}
	return rows
}
