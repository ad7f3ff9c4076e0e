package tui

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-portal-client/internal/store"
	"github.com/MKhiriev/go-portal-client/models"
	tea "github.com/charmbracelet/bubbletea"
)

type rootFixture struct {
	lock     *fakeLock
	settings *fakeSettings
	source   *fakeSource
	pages    map[string]*stubPage
}

func newRootFixture(phase models.LockPhase) *rootFixture {
	return &rootFixture{
		lock:     newFakeLock(phase),
		settings: &fakeSettings{configured: true},
		source:   &fakeSource{ok: true},
		pages: map[string]*stubPage{
			pageLock:     {name: pageLock},
			pageSettings: {name: pageSettings},
			pageOverview: {name: pageOverview},
		},
	}
}

func (f *rootFixture) root(start string) RootModel {
	pages := make(map[string]tea.Model, len(f.pages))
	for name, p := range f.pages {
		pages[name] = p
	}
	return NewRootModel(pages, start, f.lock, f.settings, f.source, models.NewAppBuildInfo("1.0.0", "2026-01-01", "abc"))
}

func update(t *testing.T, m tea.Model, msg tea.Msg) (RootModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	root, ok := next.(RootModel)
	require.True(t, ok)
	return root, cmd
}

// ── Lifecycle ───────────────────────────────────────────────────────────────

func TestRootModel_BlurForwardsBackground(t *testing.T) {
	f := newRootFixture(models.LockPhaseUnlocked)
	r, _ := update(t, f.root(pageOverview), tea.BlurMsg{})

	assert.Equal(t, []string{"Background"}, f.lock.Calls())
	assert.Equal(t, pageOverview, r.currentName)
	assert.Zero(t, f.source.cleared)
}

func TestRootModel_FocusAfterLockOpensLockScreen(t *testing.T) {
	f := newRootFixture(models.LockPhaseUnlocked)
	r := f.root(pageOverview)

	r, _ = update(t, r, tea.BlurMsg{})
	// порог бездействия истёк
	f.lock.setPhase(models.LockPhaseLocked)
	r, _ = update(t, r, tea.FocusMsg{})

	assert.Equal(t, []string{"Background", "Foreground"}, f.lock.Calls())
	assert.Equal(t, pageLock, r.currentName)
	assert.Equal(t, 1, f.pages[pageLock].inits)
	assert.Equal(t, 1, f.source.cleared)
}

func TestRootModel_FocusWhileUnlockedStays(t *testing.T) {
	f := newRootFixture(models.LockPhaseUnlocked)
	r, _ := update(t, f.root(pageOverview), tea.FocusMsg{})

	assert.Equal(t, pageOverview, r.currentName)
	assert.Zero(t, f.pages[pageLock].inits)
}

func TestRootModel_KeyTouchesAndDelegates(t *testing.T) {
	f := newRootFixture(models.LockPhaseUnlocked)
	_, _ = update(t, f.root(pageOverview), keyPress("r"))

	assert.Equal(t, []string{"Touch"}, f.lock.Calls())
	require.Len(t, f.pages[pageOverview].msgs, 1)
	assert.Equal(t, keyPress("r"), f.pages[pageOverview].msgs[0])
}

func TestRootModel_KeyOnLockedSessionRedirects(t *testing.T) {
	f := newRootFixture(models.LockPhaseLocked)
	r, _ := update(t, f.root(pageOverview), keyPress("r"))

	assert.Equal(t, pageLock, r.currentName)
	assert.Empty(t, f.pages[pageOverview].msgs)
}

func TestRootModel_LockScreenKeepsKeysWhileLocked(t *testing.T) {
	f := newRootFixture(models.LockPhaseLocked)
	r, _ := update(t, f.root(pageLock), keyPress("p"))

	assert.Equal(t, pageLock, r.currentName)
	assert.Len(t, f.pages[pageLock].msgs, 1)
}

// ── Navigation ──────────────────────────────────────────────────────────────

func TestRootModel_Navigate(t *testing.T) {
	tests := []struct {
		name  string
		phase models.LockPhase
		to    string
		want  string
	}{
		{name: "unlocked goes anywhere", phase: models.LockPhaseUnlocked, to: pageSettings, want: pageSettings},
		{name: "locked is redirected", phase: models.LockPhaseLocked, to: pageOverview, want: pageLock},
		{name: "authenticating is redirected", phase: models.LockPhaseAuthenticating, to: pageSettings, want: pageLock},
		{name: "unknown page is ignored", phase: models.LockPhaseUnlocked, to: "nope", want: pageLock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newRootFixture(tt.phase)
			r, _ := update(t, f.root(pageLock), NavigateTo{Page: tt.to})
			assert.Equal(t, tt.want, r.currentName)
		})
	}
}

func TestRootModel_NavigatePayloadSkipsInit(t *testing.T) {
	f := newRootFixture(models.LockPhaseUnlocked)
	_, cmd := update(t, f.root(pageLock), NavigateTo{Page: pageOverview, Payload: overviewTickMsg{gen: 7}})

	require.NotNil(t, cmd)
	assert.Equal(t, overviewTickMsg{gen: 7}, cmd())
	assert.Zero(t, f.pages[pageOverview].inits)
}

func TestStartPage(t *testing.T) {
	tests := []struct {
		name       string
		phase      models.LockPhase
		configured bool
		want       string
	}{
		{"locked", models.LockPhaseLocked, true, pageLock},
		{"unlocked without address", models.LockPhaseUnlocked, false, pageSettings},
		{"unlocked and configured", models.LockPhaseUnlocked, true, pageOverview},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := startPage(newFakeLock(tt.phase), &fakeSettings{configured: tt.configured})
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── Overlays ────────────────────────────────────────────────────────────────

func TestRootModel_StartupWarningsOverlay(t *testing.T) {
	f := newRootFixture(models.LockPhaseUnlocked)
	f.settings.warnings = []error{fmt.Errorf("%w: disk full", store.ErrStoreWriteFailed)}

	r := f.root(pageOverview)
	assert.Contains(t, r.View(), "Не удалось сохранить настройки")

	r, _ = update(t, r, keyPress("r"))
	assert.Empty(t, f.pages[pageOverview].msgs, "keys are swallowed while the overlay is open")

	r, _ = update(t, r, keyPress("esc"))
	assert.Nil(t, r.overlay)
	assert.Contains(t, r.View(), pageOverview)
}

func TestRootModel_WarningsQueuedByPageAreShown(t *testing.T) {
	f := newRootFixture(models.LockPhaseUnlocked)
	r := f.root(pageSettings)

	f.settings.warnings = []error{errors.New("boom")}
	r, _ = update(t, r, settingsSavedMsg{})

	require.NotNil(t, r.overlay)
	assert.Contains(t, r.View(), "boom")
}

func TestRootModel_BuildInfoOnlyOnOverview(t *testing.T) {
	f := newRootFixture(models.LockPhaseUnlocked)

	r, _ := update(t, f.root(pageOverview), keyPress("v"))
	assert.True(t, r.showBuildInfo)
	assert.Contains(t, r.View(), "1.0.0")

	r, _ = update(t, r, keyPress("esc"))
	assert.False(t, r.showBuildInfo)

	r, _ = update(t, f.root(pageSettings), keyPress("v"))
	assert.False(t, r.showBuildInfo)
	assert.Len(t, f.pages[pageSettings].msgs, 1)
}

func TestRootModel_CtrlCQuits(t *testing.T) {
	f := newRootFixture(models.LockPhaseLocked)
	_, cmd := update(t, f.root(pageLock), keyPress("ctrl+c"))

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestRenderBuildInfoWindow(t *testing.T) {
	info := models.NewAppBuildInfo("1.2.3", "", "abc")

	tests := []struct {
		name       string
		endpoint   models.Endpoint
		configured bool
		want       string
	}{
		{"not configured", models.Endpoint{}, false, "Сервер: не задан"},
		{"https", models.Endpoint{Scheme: models.SchemeHTTPS, Host: "portal.example.com"}, true, "Сервер: https://portal.example.com"},
		{"local http", models.Endpoint{Scheme: models.SchemeHTTP, Host: "localhost", Port: "5000"}, true, "http://localhost:5000 (HTTP)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := renderBuildInfoWindow(info, tt.endpoint, tt.configured)
			assert.Contains(t, out, tt.want)
			assert.Contains(t, out, "Версия: 1.2.3")
			assert.Contains(t, out, "Дата: N/A")
		})
	}
}
