package tui

import (
	"github.com/MKhiriev/go-portal-client/models"
	tea "github.com/charmbracelet/bubbletea"
)

// RootModel is a TUI router:
// 1) keeps active page
// 2) handles global Ctrl+C quit
// 3) forwards focus changes and key presses to the session lock
// 4) sends the operator to the lock screen whenever the session is not unlocked
// 5) handles NavigateTo messages
// 6) delegates all other messages to the active page
type RootModel struct {
	pages       map[string]tea.Model
	current     tea.Model
	currentName string

	lock      sessionLock
	settings  serverSettings
	overview  overviewSource
	buildInfo models.AppBuildInfo

	showBuildInfo bool
	overlay       *errorOverlayModel
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(pages map[string]tea.Model, startPage string, lock sessionLock, settings serverSettings,
	overview overviewSource, buildInfo models.AppBuildInfo,
) RootModel {
	return RootModel{
		pages:       pages,
		current:     pages[startPage],
		currentName: startPage,
		lock:        lock,
		settings:    settings,
		overview:    overview,
		buildInfo:   buildInfo,
		overlay:     newWarningOverlay(settings.TakeWarnings()),
	}
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.BlurMsg:
		r.lock.Background()
		return r.guard()

	case tea.FocusMsg:
		r.lock.Foreground()
		return r.guard()

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return r, tea.Quit
		}

		if r.overlay != nil {
			switch msg.String() {
			case "enter", "esc":
				r.overlay = nil
			}
			return r, nil
		}

		switch msg.String() {
		case "v":
			if r.currentName == pageOverview {
				r.showBuildInfo = !r.showBuildInfo
				return r, nil
			}
		case "esc":
			if r.showBuildInfo {
				r.showBuildInfo = false
				return r, nil
			}
		}
		if r.showBuildInfo {
			return r, nil
		}

		r.lock.Touch()
		if next, cmd, redirected := r.redirectIfLocked(); redirected {
			return next, cmd
		}

	case NavigateTo:
		if msg.Page != pageLock && r.lock.Phase() != models.LockPhaseUnlocked {
			msg = NavigateTo{Page: pageLock}
		}
		return r.navigate(msg)
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	r.collectWarnings()
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		endpoint, configured := r.settings.Endpoint()
		return appStyle.Render(renderBuildInfoWindow(r.buildInfo, endpoint, configured))
	}
	if r.overlay != nil {
		return appStyle.Render(r.overlay.View())
	}
	if r.current == nil {
		return renderPage("PortalClient", "", "")
	}
	return appStyle.Render(r.current.View())
}

func (r RootModel) guard() (tea.Model, tea.Cmd) {
	next, cmd, _ := r.redirectIfLocked()
	return next, cmd
}

// redirectIfLocked drops the cached overview and opens the lock screen when
// the session is no longer unlocked.
func (r RootModel) redirectIfLocked() (RootModel, tea.Cmd, bool) {
	if r.lock.Phase() == models.LockPhaseUnlocked || r.currentName == pageLock {
		return r, nil, false
	}
	r.overview.Clear()
	next, cmd := r.navigate(NavigateTo{Page: pageLock})
	return next.(RootModel), cmd, true
}

func (r RootModel) navigate(nav NavigateTo) (tea.Model, tea.Cmd) {
	next, exists := r.pages[nav.Page]
	if !exists {
		return r, nil
	}

	r.showBuildInfo = false
	r.current = next
	r.currentName = nav.Page

	if nav.Payload != nil {
		return r, func() tea.Msg { return nav.Payload }
	}
	return r, r.current.Init()
}

// collectWarnings surfaces persistence problems the configuration queued
// while a page was handling a message.
func (r *RootModel) collectWarnings() {
	if r.overlay != nil {
		return
	}
	r.overlay = newWarningOverlay(r.settings.TakeWarnings())
}
