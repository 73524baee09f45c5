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

// Direction of a cursor move
type Direction int

const (
	// Next moves the cursor down, wrapping to the top
	Next Direction = iota
	// Previous moves the cursor up, wrapping to the bottom
	Previous
)

// MoveSelection steps the cursor in the requested direction, wrapping at the
// ends and skipping rows the cursor may not land on. If a full wrap comes
// back to the start without finding a selectable row the index is returned
// unchanged, which also covers row sets made only of decorative lines.
func MoveSelection(rows []Row, index int, dir Direction) int {
	n := len(rows)
	if n == 0 {
		return index
	}
	if index < 0 || index >= n {
		index = 0
	}
	step := 1
	if dir == Previous {
		step = n - 1
	}
	i := index
	for moved := 0; moved < n; moved++ {
		i = (i + step) % n
		if i == index {
			break
		}
		if rows[i].Selectable() {
			return i
		}
	}
	return index
}

// FirstSelectable returns the index of the first selectable row, or 0 when
// none exists
func FirstSelectable(rows []Row) int {
	for i, r := range rows {
		if r.Selectable() {
			return i
		}
	}
	return 0
}
