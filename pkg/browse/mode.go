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

// Mode is the active modal layer. Exactly one mode is active at a time and
// key input is routed only to it. The quit confirmation may open on top of
// any other mode and restores it when denied; the picker and detail pane are
// mutually exclusive.
type Mode int

const (
	// ModeNormal is the plain list view
	ModeNormal Mode = iota
	// ModePicker is the service selection popup
	ModePicker
	// ModeDetail is the resource detail popup
	ModeDetail
	// ModeQuit is the quit confirmation prompt
	ModeQuit
)

func (m Mode) String() string {
	switch m {
	case ModePicker:
		return "picker"
	case ModeDetail:
		return "detail"
	case ModeQuit:
		return "quit"
	default:
		return "normal"
	}
}
