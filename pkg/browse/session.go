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

import "fmt"

// Phase is the coarse status of the active list fetch cycle. Only the
// refresh transitions move it; input handlers never set it directly.
type Phase int

const (
	// PhaseIdle means no fetch has run for the active service yet
	PhaseIdle Phase = iota
	// PhaseLoading means a fetch is in flight
	PhaseLoading
	// PhaseLoaded means the last fetch succeeded
	PhaseLoaded
	// PhaseError means the last fetch failed
	PhaseError
)

// DetailPane is the describe popup state. Closing the pane clears it
// entirely; nothing is kept across openings.
type DetailPane struct {
	Visible bool
	Loading bool
	Title   string
	Offset  int
	Fields  []Field
}

// ActionType classifies what activating the current row should do
type ActionType int

const (
	// ActionNone means activation has no navigation effect
	ActionNone ActionType = iota
	// ActionDescend enters the selected container
	ActionDescend
	// ActionAscend leaves the current container
	ActionAscend
	// ActionDetail opens the detail popup for the selected leaf
	ActionDetail
)

// Action is the navigation intent derived from activating a row
type Action struct {
	Type ActionType
	// Path is the target path for ActionDescend/ActionAscend
	Path Path
	// ID is the full entry identifier for ActionDetail
	ID string
}

// Session is the aggregate state of one interactive browsing session. It is
// owned by a single interaction loop; every method is a plain state
// transition that never blocks and never calls a backend. The UI layer runs
// fetches itself, bracketed by the Begin*/Finish* pairs.
type Session struct {
	// Services is the fixed catalog set; Active indexes into it
	Services []*ServiceInfo
	Active   int

	// Rows is the current display set, replaced wholesale on refresh
	Rows      []Row
	Selection int
	Path      Path

	Phase  Phase
	ErrMsg string
	Status string
	Detail DetailPane
	// Frame counts loading animation ticks
	Frame int

	Mode      Mode
	PickerIdx int
	prevMode  Mode

	// Connected is set once the cloud client is usable; until then every
	// fetch request short-circuits to a status message
	Connected bool
}

// NewSession returns a session showing the startup placeholder for the
// first service in the list
func NewSession(services []*ServiceInfo) *Session {
	return &Session{
		Services:  services,
		Rows:      messageRows("Initializing AWS client..."),
		Status:    "Press Space for services, r to refresh, q to quit",
		Phase:     PhaseIdle,
		Connected: false,
	}
}

// ActiveService returns the currently selected service, or nil when the
// catalog set is empty
func (s *Session) ActiveService() *ServiceInfo {
	if s.Active < 0 || s.Active >= len(s.Services) {
		return nil
	}
	return s.Services[s.Active]
}

// FavoriteIndexes returns the indexes of favorite services in catalog order
func (s *Session) FavoriteIndexes() []int {
	var favs []int
	for i, svc := range s.Services {
		if svc.Favorite {
			favs = append(favs, i)
		}
	}
	return favs
}

// Loading reports whether any fetch (list or describe) is pending
func (s *Session) Loading() bool {
	return s.Phase == PhaseLoading || s.Detail.Loading
}

// Tick advances the loading animation counter
func (s *Session) Tick() {
	s.Frame++
}

// SetConnected records the outcome of the startup client initialization
func (s *Session) SetConnected(err error) {
	if err != nil {
		s.Connected = false
		s.Phase = PhaseError
		s.ErrMsg = err.Error()
		s.Rows = messageRows(
			"Failed to initialize AWS client",
			"Please check your AWS credentials and configuration",
			fmt.Sprintf("Error: %v", err))
		s.Selection = 0
		s.Status = "Error: failed to connect to AWS. Check credentials."
		return
	}
	s.Connected = true
	s.Phase = PhaseLoaded
	s.ErrMsg = ""
	s.Rows = messageRows("Press 'r' to refresh and load resources")
	s.Selection = 0
	s.Status = "AWS client initialized. Press r to load resources."
}

// Move steps the list cursor one selectable row in the given direction
func (s *Session) Move(dir Direction) {
	s.Selection = MoveSelection(s.Rows, s.Selection, dir)
}

// Activate classifies the selected row into a navigation intent. It never
// mutates the path itself; pass the returned action to Navigate.
func (s *Session) Activate() Action {
	if s.Selection < 0 || s.Selection >= len(s.Rows) {
		s.Status = "Select a valid row"
		return Action{Type: ActionNone}
	}
	row := s.Rows[s.Selection]
	if row.Role == RoleParentLink {
		return Action{Type: ActionAscend, Path: s.Path.Ascend()}
	}
	if row.Role != RoleEntry {
		s.Status = "Select a valid row"
		return Action{Type: ActionNone}
	}
	svc := s.ActiveService()
	if svc == nil || !svc.Catalog.Hierarchical() {
		s.Status = fmt.Sprintf("Selected: %s", row.ID)
		return Action{Type: ActionNone}
	}
	if row.Container {
		return Action{Type: ActionDescend, Path: s.Path.Descend(row.ID)}
	}
	if s.Path.IsRoot() {
		s.Status = fmt.Sprintf("Selected: %s", row.ID)
		return Action{Type: ActionNone}
	}
	return Action{Type: ActionDetail, ID: s.Path.Prefix() + row.ID}
}

// Navigate applies a descend/ascend intent to the path and reports whether
// the caller must refresh the listing at the new position
func (s *Session) Navigate(a Action) bool {
	switch a.Type {
	case ActionDescend, ActionAscend:
		s.Path = a.Path
		return true
	}
	return false
}

// BeginRefresh starts a list fetch cycle. It returns false, with the reason
// in the status line, when the client is not connected, when a fetch is
// already in flight, or when there is no active service. On success the
// caller must run the fetch and apply its outcome with FinishRefresh.
func (s *Session) BeginRefresh() bool {
	if !s.Connected {
		s.Status = "AWS client not initialized"
		return false
	}
	if s.Phase == PhaseLoading {
		s.Status = "Still loading, please wait"
		return false
	}
	svc := s.ActiveService()
	if svc == nil {
		s.Status = "No service selected"
		return false
	}
	s.Phase = PhaseLoading
	s.Rows = messageRows("Loading...")
	s.Selection = 0
	s.Status = fmt.Sprintf("Loading %s resources...", svc.Catalog.Title())
	return true
}

// FinishRefresh reconciles the outcome of a list fetch: entries on success,
// a one-line placeholder when the collection is empty, the diagnostic rows
// on failure. The path is left untouched on failure so a retry lists the
// same position.
func (s *Session) FinishRefresh(recs []Record, err error) {
	svc := s.ActiveService()
	title := "resources"
	if svc != nil {
		title = svc.Catalog.Title()
	}
	if err != nil {
		s.Phase = PhaseError
		s.ErrMsg = err.Error()
		s.Rows = DiagnosticRows(title, err)
		s.Selection = 0
		s.Status = fmt.Sprintf("Error: failed to load %s", title)
		return
	}
	s.Phase = PhaseLoaded
	s.ErrMsg = ""
	if len(recs) == 0 {
		s.Rows = messageRows(fmt.Sprintf("No resources found for %s", title))
		s.Selection = 0
		s.Status = fmt.Sprintf("No resources found for %s", title)
		return
	}
	parentLink := svc != nil && svc.Catalog.Hierarchical() && !s.Path.IsRoot()
	var headers []string
	if svc != nil {
		headers = svc.Catalog.Headers(s.Path)
	}
	s.Rows = BuildRows(headers, recs, parentLink)
	s.Selection = FirstSelectable(s.Rows)
	s.Status = fmt.Sprintf("Loaded %d %s", len(recs), title)
}

// BeginDescribe opens the detail popup for the selected entry and returns
// the full identifier the caller must describe. For nested positions the
// identifier is the path prefix plus the row's local name. Returns false
// when nothing describable is selected or a describe is already pending.
func (s *Session) BeginDescribe() (string, bool) {
	if !s.Connected {
		s.Status = "AWS client not initialized"
		return "", false
	}
	if s.Detail.Loading {
		return "", false
	}
	if s.Selection < 0 || s.Selection >= len(s.Rows) {
		s.Status = "Select a valid row"
		return "", false
	}
	row := s.Rows[s.Selection]
	if row.Role != RoleEntry {
		s.Status = "Select a valid row"
		return "", false
	}
	id := row.ID
	if !s.Path.IsRoot() {
		id = s.Path.Prefix() + row.ID
	}
	s.Mode = ModeDetail
	s.Detail = DetailPane{Visible: true, Loading: true, Title: id}
	s.Status = fmt.Sprintf("Loading details for %s...", id)
	return id, true
}

// FinishDescribe applies the outcome of a describe fetch to the detail
// pane. The result is applied even if the pane was closed meanwhile; the
// cleared pane simply ignores it on the next open.
func (s *Session) FinishDescribe(fields []Field, err error) {
	s.Detail.Loading = false
	if err != nil {
		s.Detail.Fields = []Field{{Key: "Error", Value: err.Error()}}
		s.Status = "Error: failed to load details"
		return
	}
	s.Detail.Fields = fields
	s.Detail.Offset = 0
	if s.Detail.Visible {
		s.Status = fmt.Sprintf("Showing details for %s", s.Detail.Title)
	}
}

// CloseDetail dismisses the detail popup and drops its content
func (s *Session) CloseDetail() {
	s.Detail = DetailPane{}
	s.Mode = ModeNormal
}

// ScrollDetail moves the detail pane viewport one line
func (s *Session) ScrollDetail(dir Direction) {
	switch dir {
	case Next:
		if s.Detail.Offset < len(s.Detail.Fields)-1 {
			s.Detail.Offset++
		}
	case Previous:
		if s.Detail.Offset > 0 {
			s.Detail.Offset--
		}
	}
}

// TogglePicker opens the service picker from the normal view, or closes it
// without committing
func (s *Session) TogglePicker() {
	switch s.Mode {
	case ModeNormal:
		s.Mode = ModePicker
		s.PickerIdx = s.Active
	case ModePicker:
		s.Mode = ModeNormal
	}
}

// MovePicker steps the picker highlight with wrap-around
func (s *Session) MovePicker(dir Direction) {
	n := len(s.Services)
	if n == 0 {
		return
	}
	switch dir {
	case Next:
		s.PickerIdx = (s.PickerIdx + 1) % n
	case Previous:
		s.PickerIdx = (s.PickerIdx + n - 1) % n
	}
}

// CommitPicker switches the session to the highlighted service: the path
// and selection reset, the row set becomes the idle placeholder, and no
// fetch starts until the user asks for one
func (s *Session) CommitPicker() {
	if s.Mode != ModePicker {
		return
	}
	s.Active = s.PickerIdx
	s.Mode = ModeNormal
	s.Path = nil
	s.Selection = 0
	s.Phase = PhaseIdle
	s.ErrMsg = ""
	svc := s.ActiveService()
	if svc != nil {
		s.Rows = messageRows(fmt.Sprintf("Press 'r' to load %s resources", svc.Catalog.Title()))
		s.Status = fmt.Sprintf("Switched to %s. Press r to load.", svc.Catalog.Title())
	}
}

// ToggleFavorite flips the favorite flag of the highlighted picker entry
func (s *Session) ToggleFavorite() {
	if s.Mode != ModePicker || s.PickerIdx < 0 || s.PickerIdx >= len(s.Services) {
		return
	}
	svc := s.Services[s.PickerIdx]
	svc.Favorite = !svc.Favorite
	if svc.Favorite {
		s.Status = fmt.Sprintf("Added %s to favorites", svc.Catalog.Short())
	} else {
		s.Status = fmt.Sprintf("Removed %s from favorites", svc.Catalog.Short())
	}
}

// RequestQuit opens the quit confirmation on top of whatever is active
func (s *Session) RequestQuit() {
	if s.Mode == ModeQuit {
		return
	}
	s.prevMode = s.Mode
	s.Mode = ModeQuit
}

// DenyQuit dismisses the confirmation and restores the mode that was
// active underneath it, state intact
func (s *Session) DenyQuit() {
	if s.Mode != ModeQuit {
		return
	}
	s.Mode = s.prevMode
}
