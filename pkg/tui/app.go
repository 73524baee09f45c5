package tui

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/grycap/awsome-cli/pkg/browse"
	"github.com/grycap/awsome-cli/pkg/cloud"
	"github.com/grycap/awsome-cli/pkg/profile"
)

const (
	fetchTimeout = 15 * time.Second
	tickInterval = 120 * time.Millisecond
)

type uiState struct {
	app     *tview.Application
	session *browse.Session
	client  *cloud.Client
	rootCtx context.Context

	headerView *tview.TextView
	listTable  *tview.Table
	statusView *tview.TextView
	pickerView *tview.TextView
	detailView *tview.TextView
	quitView   *tview.TextView
	pages      *tview.Pages

	mutex   *sync.Mutex
	started bool
}

// Run launches the interactive terminal user interface for the profile.
// The cloud client is initialized in the background; until it is ready the
// session rejects fetch requests with a status message.
func Run(ctx context.Context, prof *profile.Profile) error {
	if prof == nil {
		prof = profile.Default()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	app := tview.NewApplication()
	state := &uiState{
		app:        app,
		session:    browse.NewSession(nil),
		rootCtx:    ctx,
		headerView: tview.NewTextView().SetDynamicColors(true),
		statusView: tview.NewTextView().SetDynamicColors(true),
		pickerView: tview.NewTextView().SetDynamicColors(true),
		detailView: tview.NewTextView().SetDynamicColors(true),
		quitView:   tview.NewTextView().SetDynamicColors(true).SetTextAlign(tview.AlignCenter),
		listTable:  tview.NewTable(),
		mutex:      &sync.Mutex{},
	}

	state.headerView.SetBorder(false)
	state.listTable.SetBorder(true)
	state.listTable.SetTitle("Resources")
	state.statusView.SetBorder(true)
	state.statusView.SetTitle("Status")
	state.pickerView.SetBorder(true)
	state.pickerView.SetTitle("Services")
	state.detailView.SetBorder(true)
	state.quitView.SetBorder(true)
	state.quitView.SetText(quitPromptText)

	root := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(state.headerView, 1, 0, false).
		AddItem(state.listTable, 0, 1, true).
		AddItem(state.statusView, 3, 0, false)

	pages := tview.NewPages()
	pages.AddPage("main", root, true, true)
	pages.AddPage("picker", centered(state.pickerView, 44, 14), true, false)
	pages.AddPage("detail", centered(state.detailView, 64, 18), true, false)
	pages.AddPage("quit", centered(state.quitView, 34, 5), true, false)
	state.pages = pages

	app.SetRoot(pages, true)
	app.SetInputCapture(state.handleKey)

	state.render()

	state.mutex.Lock()
	state.started = true
	state.mutex.Unlock()

	go state.connect(prof)
	go state.animate(ctx)

	return app.Run()
}

// connect builds the cloud client off the UI goroutine and reports the
// outcome to the session
func (u *uiState) connect(prof *profile.Profile) {
	defer func() {
		if r := recover(); r != nil {
			u.mutex.Lock()
			u.session.SetConnected(fmt.Errorf("unexpected error: %v", r))
			u.mutex.Unlock()
			u.redraw()
		}
	}()

	client, err := cloud.NewClient(prof)
	u.mutex.Lock()
	if err == nil {
		u.client = client
		u.session.Services = client.Services(prof.Favorites)
	}
	u.session.SetConnected(err)
	u.mutex.Unlock()
	u.redraw()
}

// animate advances the loading spinner while a fetch is pending
func (u *uiState) animate(ctx context.Context) {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			u.mutex.Lock()
			loading := u.session.Loading()
			if loading {
				u.session.Tick()
			}
			u.mutex.Unlock()
			if loading {
				u.redraw()
			}
		}
	}
}

// handleKey routes every key press to the active modal layer
func (u *uiState) handleKey(event *tcell.EventKey) *tcell.EventKey {
	u.mutex.Lock()
	mode := u.session.Mode
	u.mutex.Unlock()

	switch mode {
	case browse.ModeQuit:
		u.handleQuitKey(event)
	case browse.ModeDetail:
		u.handleDetailKey(event)
	case browse.ModePicker:
		u.handlePickerKey(event)
	default:
		u.handleNormalKey(event)
	}
	return nil
}

func (u *uiState) handleQuitKey(event *tcell.EventKey) {
	switch event.Rune() {
	case 'y', 'Y':
		u.app.Stop()
		return
	case 'n', 'N':
		u.withSession(func(s *browse.Session) { s.DenyQuit() })
		return
	}
	if event.Key() == tcell.KeyEsc {
		u.withSession(func(s *browse.Session) { s.DenyQuit() })
	}
}

func (u *uiState) handleDetailKey(event *tcell.EventKey) {
	switch event.Key() {
	case tcell.KeyEsc:
		u.withSession(func(s *browse.Session) { s.CloseDetail() })
		return
	case tcell.KeyDown:
		u.withSession(func(s *browse.Session) { s.ScrollDetail(browse.Next) })
		return
	case tcell.KeyUp:
		u.withSession(func(s *browse.Session) { s.ScrollDetail(browse.Previous) })
		return
	}
	switch event.Rune() {
	case 'i', 'I':
		u.withSession(func(s *browse.Session) { s.CloseDetail() })
	case 'j', 'J':
		u.withSession(func(s *browse.Session) { s.ScrollDetail(browse.Next) })
	case 'k', 'K':
		u.withSession(func(s *browse.Session) { s.ScrollDetail(browse.Previous) })
	case 'q', 'Q':
		u.withSession(func(s *browse.Session) { s.RequestQuit() })
	}
}

func (u *uiState) handlePickerKey(event *tcell.EventKey) {
	switch event.Key() {
	case tcell.KeyEsc:
		u.withSession(func(s *browse.Session) { s.TogglePicker() })
		return
	case tcell.KeyDown:
		u.withSession(func(s *browse.Session) { s.MovePicker(browse.Next) })
		return
	case tcell.KeyUp:
		u.withSession(func(s *browse.Session) { s.MovePicker(browse.Previous) })
		return
	case tcell.KeyEnter:
		u.withSession(func(s *browse.Session) { s.CommitPicker() })
		return
	}
	switch event.Rune() {
	case ' ':
		u.withSession(func(s *browse.Session) { s.TogglePicker() })
	case 'j', 'J':
		u.withSession(func(s *browse.Session) { s.MovePicker(browse.Next) })
	case 'k', 'K':
		u.withSession(func(s *browse.Session) { s.MovePicker(browse.Previous) })
	case 'f', 'F':
		u.withSession(func(s *browse.Session) { s.ToggleFavorite() })
	case 'q', 'Q':
		u.withSession(func(s *browse.Session) { s.RequestQuit() })
	}
}

func (u *uiState) handleNormalKey(event *tcell.EventKey) {
	switch event.Key() {
	case tcell.KeyDown:
		u.withSession(func(s *browse.Session) { s.Move(browse.Next) })
		return
	case tcell.KeyUp:
		u.withSession(func(s *browse.Session) { s.Move(browse.Previous) })
		return
	case tcell.KeyEnter:
		u.activate()
		return
	}
	switch event.Rune() {
	case 'q', 'Q':
		u.withSession(func(s *browse.Session) { s.RequestQuit() })
	case ' ':
		u.withSession(func(s *browse.Session) { s.TogglePicker() })
	case 'r', 'R':
		u.refresh()
	case 'i', 'I':
		u.describeSelection()
	case 'j', 'J':
		u.withSession(func(s *browse.Session) { s.Move(browse.Next) })
	case 'k', 'K':
		u.withSession(func(s *browse.Session) { s.Move(browse.Previous) })
	}
}

// withSession runs a state transition under the lock and repaints
func (u *uiState) withSession(fn func(s *browse.Session)) {
	u.mutex.Lock()
	fn(u.session)
	u.mutex.Unlock()
	u.redraw()
}

// activate turns the selected row into navigation: descend/ascend trigger a
// fresh listing, leaves open the detail popup
func (u *uiState) activate() {
	u.mutex.Lock()
	act := u.session.Activate()
	needRefresh := u.session.Navigate(act)
	u.mutex.Unlock()

	if needRefresh {
		u.refresh()
		return
	}
	if act.Type == browse.ActionDetail {
		u.describeSelection()
		return
	}
	u.redraw()
}

// refresh starts a list fetch for the active service in a goroutine
func (u *uiState) refresh() {
	u.mutex.Lock()
	ok := u.session.BeginRefresh()
	svc := u.session.ActiveService()
	path := u.session.Path
	u.mutex.Unlock()
	u.redraw()
	if !ok || svc == nil {
		return
	}

	go func() {
		defer func() {
			if r := recover(); r != nil {
				u.mutex.Lock()
				u.session.FinishRefresh(nil, fmt.Errorf("unexpected error: %v", r))
				u.mutex.Unlock()
				u.redraw()
			}
		}()

		ctx, cancel := context.WithTimeout(u.rootCtx, fetchTimeout)
		defer cancel()
		recs, err := svc.Catalog.List(ctx, path)

		u.mutex.Lock()
		u.session.FinishRefresh(recs, err)
		u.mutex.Unlock()
		u.redraw()
	}()
}

// describeSelection opens the detail popup and fetches the entry fields
func (u *uiState) describeSelection() {
	u.mutex.Lock()
	id, ok := u.session.BeginDescribe()
	svc := u.session.ActiveService()
	path := u.session.Path
	u.mutex.Unlock()
	u.redraw()
	if !ok || svc == nil {
		return
	}

	go func() {
		defer func() {
			if r := recover(); r != nil {
				u.mutex.Lock()
				u.session.FinishDescribe(nil, fmt.Errorf("unexpected error: %v", r))
				u.mutex.Unlock()
				u.redraw()
			}
		}()

		ctx, cancel := context.WithTimeout(u.rootCtx, fetchTimeout)
		defer cancel()
		fields, err := svc.Catalog.Describe(ctx, path, id)

		u.mutex.Lock()
		u.session.FinishDescribe(fields, err)
		u.mutex.Unlock()
		u.redraw()
	}()
}

// redraw schedules a repaint on the UI goroutine
func (u *uiState) redraw() {
	u.mutex.Lock()
	started := u.started
	u.mutex.Unlock()
	if !started {
		u.render()
		return
	}
	go func() {
		defer func() {
			if r := recover(); r != nil {
				// queueing can fail if the application has already stopped; ignore.
			}
		}()
		u.app.QueueUpdateDraw(u.render)
	}()
}

// render repaints every view from the session state. It must run on the UI
// goroutine (or before the application starts).
func (u *uiState) render() {
	u.mutex.Lock()
	header := formatHeader(u.session)
	rows := u.session.Rows
	selection := u.session.Selection
	phase := u.session.Phase
	mode := u.session.Mode
	status := formatStatus(u.session)
	pickerText := formatPicker(u.session)
	detailText, detailTitle := formatDetail(u.session)
	u.mutex.Unlock()

	u.headerView.SetText(header)
	u.statusView.SetText(status)
	u.pickerView.SetText(pickerText)
	u.detailView.SetText(detailText)
	u.detailView.SetTitle(detailTitle)

	u.listTable.Clear()
	for i, row := range rows {
		cell := tview.NewTableCell(tview.Escape(row.Text)).
			SetExpansion(1).
			SetTextColor(rowColor(row, phase))
		if i == selection && row.Selectable() {
			cell.SetBackgroundColor(tcell.ColorDarkSlateGray)
			cell.SetAttributes(tcell.AttrBold)
		}
		u.listTable.SetCell(i, 0, cell)
	}

	u.syncPages(mode)
}

// syncPages shows exactly the popup matching the active mode
func (u *uiState) syncPages(mode browse.Mode) {
	popups := map[string]browse.Mode{
		"picker": browse.ModePicker,
		"detail": browse.ModeDetail,
		"quit":   browse.ModeQuit,
	}
	for name, m := range popups {
		if mode == m {
			u.pages.ShowPage(name)
		} else {
			u.pages.HidePage(name)
		}
	}
}

func rowColor(row browse.Row, phase browse.Phase) tcell.Color {
	if phase == browse.PhaseError {
		return tcell.ColorRed
	}
	switch row.Role {
	case browse.RoleHeader:
		return tcell.ColorYellow
	case browse.RoleSeparator:
		return tcell.ColorGray
	case browse.RoleParentLink:
		return tcell.ColorAqua
	default:
		return tcell.ColorWhite
	}
}

// centered wraps a primitive in a fixed-size box floating over the main page
func centered(p tview.Primitive, width, height int) tview.Primitive {
	return tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().
			SetDirection(tview.FlexRow).
			AddItem(nil, 0, 1, false).
			AddItem(p, height, 0, true).
			AddItem(nil, 0, 1, false), width, 0, true).
		AddItem(nil, 0, 1, false)
}
