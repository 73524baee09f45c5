package browse

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type fakeCatalog struct {
	kind         Kind
	title        string
	short        string
	hierarchical bool
	headers      []string
	records      map[string][]Record
	err          error
}

func (c *fakeCatalog) Kind() Kind            { return c.kind }
func (c *fakeCatalog) Title() string         { return c.title }
func (c *fakeCatalog) Short() string         { return c.short }
func (c *fakeCatalog) Headers(Path) []string { return c.headers }
func (c *fakeCatalog) Hierarchical() bool    { return c.hierarchical }

func (c *fakeCatalog) List(_ context.Context, p Path) ([]Record, error) {
	if c.err != nil {
		return nil, c.err
	}
	return c.records[p.String()], nil
}

func (c *fakeCatalog) Describe(_ context.Context, _ Path, id string) ([]Field, error) {
	if c.err != nil {
		return nil, c.err
	}
	return []Field{{Key: "Name", Value: id}}, nil
}

func newTestSession() *Session {
	instances := &fakeCatalog{
		kind:    "ec2",
		title:   "EC2 Instances",
		short:   "EC2",
		headers: []string{"Instance ID", "State"},
		records: map[string][]Record{
			"": {
				{ID: "i-1", Cols: []string{"i-1", "running"}},
				{ID: "i-2", Cols: []string{"i-2", "stopped"}},
			},
		},
	}
	buckets := &fakeCatalog{
		kind:         "s3",
		title:        "S3 Buckets",
		short:        "S3",
		hierarchical: true,
		headers:      []string{"Name"},
		records: map[string][]Record{
			"": {
				{ID: "alpha", Cols: []string{"alpha"}, Container: true},
			},
			"alpha/": {
				{ID: "sub/", Cols: []string{"sub/"}, Container: true},
				{ID: "file.txt", Cols: []string{"file.txt"}},
			},
			"alpha/sub/": {
				{ID: "deep.txt", Cols: []string{"deep.txt"}},
			},
		},
	}
	s := NewSession([]*ServiceInfo{
		{Catalog: instances, Favorite: true},
		{Catalog: buckets, Favorite: true},
	})
	s.SetConnected(nil)
	return s
}

// runRefresh drives a full synchronous fetch cycle the way the UI does
func runRefresh(t *testing.T, s *Session) {
	t.Helper()
	if !s.BeginRefresh() {
		t.Fatalf("refresh rejected: %s", s.Status)
	}
	recs, err := s.ActiveService().Catalog.List(context.Background(), s.Path)
	s.FinishRefresh(recs, err)
}

func TestRefreshNotConnected(t *testing.T) {
	s := newTestSession()
	s.Connected = false
	if s.BeginRefresh() {
		t.Fatal("refresh must be rejected while disconnected")
	}
	if s.Status != "AWS client not initialized" {
		t.Errorf("unexpected status %q", s.Status)
	}
	if s.Phase == PhaseLoading {
		t.Error("phase must not move to loading")
	}
}

func TestRefreshSingleFlight(t *testing.T) {
	s := newTestSession()
	if !s.BeginRefresh() {
		t.Fatal("first refresh rejected")
	}
	if s.BeginRefresh() {
		t.Fatal("second refresh must be rejected while one is in flight")
	}
	if s.Status != "Still loading, please wait" {
		t.Errorf("unexpected status %q", s.Status)
	}
	s.FinishRefresh(nil, nil)
	if !s.BeginRefresh() {
		t.Error("refresh must be accepted again after the fetch resolves")
	}
}

func TestRefreshSuccessSelectsFirstEntry(t *testing.T) {
	s := newTestSession()
	runRefresh(t, s)
	if s.Phase != PhaseLoaded {
		t.Fatalf("expected loaded phase, got %v", s.Phase)
	}
	if len(s.Rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(s.Rows))
	}
	if s.Selection != 2 || s.Rows[s.Selection].ID != "i-1" {
		t.Errorf("expected first entry selected, got index %d", s.Selection)
	}
}

func TestRefreshEmptyCollection(t *testing.T) {
	s := newTestSession()
	s.ActiveService().Catalog.(*fakeCatalog).records[""] = nil
	runRefresh(t, s)
	if s.Phase != PhaseLoaded {
		t.Fatalf("expected loaded phase, got %v", s.Phase)
	}
	if len(s.Rows) != 1 || s.Rows[0].Text != "No resources found for EC2 Instances" {
		t.Errorf("unexpected rows %+v", s.Rows)
	}
}

func TestRefreshErrorKeepsPath(t *testing.T) {
	s := newTestSession()
	s.TogglePicker()
	s.MovePicker(Next)
	s.CommitPicker()
	s.Path = Path{"alpha"}

	cat := s.ActiveService().Catalog.(*fakeCatalog)
	cat.err = errors.New("access denied")
	runRefreshErr := func() {
		if !s.BeginRefresh() {
			t.Fatalf("refresh rejected: %s", s.Status)
		}
		recs, err := cat.List(context.Background(), s.Path)
		s.FinishRefresh(recs, err)
	}
	runRefreshErr()

	if s.Phase != PhaseError {
		t.Fatalf("expected error phase, got %v", s.Phase)
	}
	if s.Rows[0].Text != "Error loading S3 Buckets" {
		t.Errorf("unexpected diagnostic header %q", s.Rows[0].Text)
	}
	if s.Path.String() != "alpha/" {
		t.Errorf("path must survive a failed fetch, got %q", s.Path.String())
	}

	// retry in place succeeds once the backend recovers
	cat.err = nil
	runRefresh(t, s)
	if s.Phase != PhaseLoaded {
		t.Errorf("expected loaded phase after retry, got %v", s.Phase)
	}
}

func TestActivateDescendAndAscend(t *testing.T) {
	s := newTestSession()
	s.TogglePicker()
	s.MovePicker(Next)
	s.CommitPicker()
	runRefresh(t, s)

	// descend into the bucket
	act := s.Activate()
	if act.Type != ActionDescend || act.Path.String() != "alpha/" {
		t.Fatalf("expected descend into alpha/, got %+v", act)
	}
	if !s.Navigate(act) {
		t.Fatal("descend must require a refresh")
	}
	runRefresh(t, s)
	if s.Rows[2].Role != RoleParentLink {
		t.Fatalf("expected parent link inside the bucket, got %v", s.Rows[2].Role)
	}

	// descend into the folder, then ascend twice back to the root
	s.Move(Next)
	act = s.Activate()
	if act.Type != ActionDescend || act.Path.String() != "alpha/sub/" {
		t.Fatalf("expected descend into alpha/sub/, got %+v", act)
	}
	s.Navigate(act)
	runRefresh(t, s)

	s.Selection = 2 // parent link
	act = s.Activate()
	if act.Type != ActionAscend || act.Path.String() != "alpha/" {
		t.Fatalf("expected ascend to alpha/, got %+v", act)
	}
	s.Navigate(act)
	runRefresh(t, s)

	s.Selection = 2
	act = s.Activate()
	if act.Type != ActionAscend || !act.Path.IsRoot() {
		t.Fatalf("expected ascend to root, got %+v", act)
	}
}

func TestActivateLeafYieldsDetail(t *testing.T) {
	s := newTestSession()
	s.TogglePicker()
	s.MovePicker(Next)
	s.CommitPicker()
	s.Path = Path{"alpha", "sub/"}
	runRefresh(t, s)

	s.Selection = 3 // deep.txt
	act := s.Activate()
	if act.Type != ActionDetail || act.ID != "sub/deep.txt" {
		t.Fatalf("expected detail for sub/deep.txt, got %+v", act)
	}
}

func TestActivateFlatCatalogIsNoop(t *testing.T) {
	s := newTestSession()
	runRefresh(t, s)
	act := s.Activate()
	if act.Type != ActionNone {
		t.Fatalf("flat catalogs must not navigate, got %+v", act)
	}
	if !strings.Contains(s.Status, "i-1") {
		t.Errorf("expected selection status, got %q", s.Status)
	}
}

func TestDescribeFullIdentifier(t *testing.T) {
	s := newTestSession()
	s.TogglePicker()
	s.MovePicker(Next)
	s.CommitPicker()
	s.Path = Path{"alpha"}
	runRefresh(t, s)

	s.Selection = 4 // file.txt
	id, ok := s.BeginDescribe()
	if !ok || id != "file.txt" {
		t.Fatalf("expected describe of file.txt, got %q ok=%v", id, ok)
	}
	if s.Mode != ModeDetail || !s.Detail.Loading {
		t.Fatalf("expected loading detail pane, mode %v", s.Mode)
	}
	if _, ok := s.BeginDescribe(); ok {
		t.Error("second describe must be rejected while one is pending")
	}
	s.FinishDescribe([]Field{{Key: "Size", Value: "1 KiB"}}, nil)
	if s.Detail.Loading || len(s.Detail.Fields) != 1 {
		t.Errorf("unexpected pane state %+v", s.Detail)
	}
	s.CloseDetail()
	if s.Mode != ModeNormal || s.Detail.Visible {
		t.Errorf("close must clear the pane, mode %v", s.Mode)
	}
}

func TestPickerCommitResetsContext(t *testing.T) {
	s := newTestSession()
	s.TogglePicker()
	s.MovePicker(Next)
	s.CommitPicker()
	s.Path = Path{"alpha", "sub/"}
	runRefresh(t, s)
	s.Move(Next)

	s.TogglePicker()
	s.MovePicker(Previous)
	s.CommitPicker()

	if s.Active != 0 {
		t.Fatalf("expected first service active, got %d", s.Active)
	}
	if !s.Path.IsRoot() || s.Selection != 0 || s.Phase != PhaseIdle {
		t.Errorf("commit must reset path/selection/phase, got %q %d %v", s.Path, s.Selection, s.Phase)
	}
	if len(s.Rows) != 1 || s.Rows[0].Text != "Press 'r' to load EC2 Instances resources" {
		t.Errorf("unexpected placeholder rows %+v", s.Rows)
	}
}

func TestQuitConfirmRestoresUnderlyingMode(t *testing.T) {
	s := newTestSession()
	s.TogglePicker()
	s.MovePicker(Next)

	s.RequestQuit()
	if s.Mode != ModeQuit {
		t.Fatalf("expected quit mode, got %v", s.Mode)
	}
	s.DenyQuit()
	if s.Mode != ModePicker {
		t.Fatalf("expected picker restored, got %v", s.Mode)
	}
	if s.PickerIdx != 1 {
		t.Errorf("picker highlight must survive the confirmation, got %d", s.PickerIdx)
	}
}

func TestQuitDeniedFromDetailKeepsContent(t *testing.T) {
	s := newTestSession()
	s.TogglePicker()
	s.MovePicker(Next)
	s.CommitPicker()
	s.Path = Path{"alpha"}
	runRefresh(t, s)

	s.Selection = 4 // file.txt
	if _, ok := s.BeginDescribe(); !ok {
		t.Fatalf("describe rejected: %s", s.Status)
	}
	s.FinishDescribe([]Field{{Key: "Size", Value: "1 KiB"}}, nil)

	s.RequestQuit()
	if s.Mode != ModeQuit {
		t.Fatalf("expected quit mode, got %v", s.Mode)
	}
	s.DenyQuit()
	if s.Mode != ModeDetail {
		t.Fatalf("expected detail restored, got %v", s.Mode)
	}
	if !s.Detail.Visible || len(s.Detail.Fields) != 1 || s.Detail.Fields[0].Key != "Size" {
		t.Errorf("detail content must survive the confirmation, got %+v", s.Detail)
	}
}

func TestActivatePlaceholderRowSetsHint(t *testing.T) {
	s := newTestSession()
	// before any refresh the cursor sits on the placeholder message row
	act := s.Activate()
	if act.Type != ActionNone {
		t.Fatalf("placeholder rows must not navigate, got %+v", act)
	}
	if s.Status != "Select a valid row" {
		t.Errorf("expected selection hint, got %q", s.Status)
	}
}

func TestToggleFavorite(t *testing.T) {
	s := newTestSession()
	s.TogglePicker()
	s.ToggleFavorite()
	if s.Services[0].Favorite {
		t.Error("expected favorite cleared")
	}
	s.ToggleFavorite()
	if !s.Services[0].Favorite {
		t.Error("expected favorite set again")
	}
	if got := s.FavoriteIndexes(); len(got) != 2 {
		t.Errorf("expected both favorites, got %v", got)
	}
}

// A fetch started before a service switch still lands: the session applies
// whatever FinishRefresh delivers, labeled with the now-active service.
func TestRefreshResultAppliedAfterServiceSwitch(t *testing.T) {
	s := newTestSession()
	if !s.BeginRefresh() {
		t.Fatal("refresh rejected")
	}
	recs, err := s.Services[0].Catalog.List(context.Background(), nil)

	s.TogglePicker()
	s.MovePicker(Next)
	s.CommitPicker()

	s.FinishRefresh(recs, err)
	if s.Phase != PhaseLoaded {
		t.Fatalf("expected loaded phase, got %v", s.Phase)
	}
	found := false
	for _, r := range s.Rows {
		if r.ID == "i-1" {
			found = true
		}
	}
	if !found {
		t.Error("late fetch result must still be applied to the row set")
	}
}

func TestSetConnectedFailure(t *testing.T) {
	s := NewSession(nil)
	s.SetConnected(errors.New("no credentials"))
	if s.Connected || s.Phase != PhaseError {
		t.Fatalf("expected disconnected error state, got %v", s.Phase)
	}
	if len(s.Rows) != 3 || !strings.Contains(s.Rows[2].Text, "no credentials") {
		t.Errorf("unexpected rows %+v", s.Rows)
	}
}
