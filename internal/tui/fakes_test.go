package tui

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-portal-client/internal/service"
	"github.com/MKhiriev/go-portal-client/models"
	tea "github.com/charmbracelet/bubbletea"
)

type fakeLock struct {
	mu    sync.Mutex
	state models.LockState
	calls []string

	unlockOutcome models.ChallengeOutcome
	unlockErr     error
	password      string
	setEnabledErr error
}

func newFakeLock(phase models.LockPhase) *fakeLock {
	return &fakeLock{state: models.LockState{Enabled: true, Phase: phase}}
}

func (f *fakeLock) record(call string) {
	f.mu.Lock()
	f.calls = append(f.calls, call)
	f.mu.Unlock()
}

func (f *fakeLock) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeLock) RequestUnlock(context.Context) (models.ChallengeOutcome, error) {
	f.record("RequestUnlock")
	if f.unlockErr == nil {
		f.setPhase(models.LockPhaseUnlocked)
	}
	return f.unlockOutcome, f.unlockErr
}

func (f *fakeLock) UnlockWithPassword(password string) error {
	f.record("UnlockWithPassword")
	if password != f.password {
		return service.ErrWrongPassword
	}
	f.setPhase(models.LockPhaseUnlocked)
	return nil
}

func (f *fakeLock) SetEnabled(_ context.Context, enabled bool) error {
	f.record("SetEnabled")
	if f.setEnabledErr != nil {
		return f.setEnabledErr
	}
	f.mu.Lock()
	f.state.Enabled = enabled
	f.mu.Unlock()
	return nil
}

func (f *fakeLock) Background() { f.record("Background") }
func (f *fakeLock) Foreground() { f.record("Foreground") }
func (f *fakeLock) Touch()      { f.record("Touch") }

func (f *fakeLock) State() models.LockState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *fakeLock) Phase() models.LockPhase { return f.State().Phase }

func (f *fakeLock) setPhase(p models.LockPhase) {
	f.mu.Lock()
	f.state.Phase = p
	f.mu.Unlock()
}

type fakeSettings struct {
	address    string
	credential models.Credential
	endpoint   models.Endpoint
	configured bool
	addressErr error
	warnings   []error

	setAddressErr    error
	setCredentialErr error
}

func (f *fakeSettings) Address() string                   { return f.address }
func (f *fakeSettings) Credential() models.Credential     { return f.credential }
func (f *fakeSettings) Endpoint() (models.Endpoint, bool) { return f.endpoint, f.configured }
func (f *fakeSettings) AddressError() error               { return f.addressErr }
func (f *fakeSettings) IsConfigured() bool                { return f.configured }

func (f *fakeSettings) SetAddress(_ context.Context, raw string) error {
	f.address = raw
	return f.setAddressErr
}

func (f *fakeSettings) SetCredential(_ context.Context, username, password string) error {
	f.credential = models.Credential{Username: username, Password: password}
	return f.setCredentialErr
}

func (f *fakeSettings) TakeWarnings() []error {
	w := f.warnings
	f.warnings = nil
	return w
}

type fakeSource struct {
	snapshot models.OverviewSnapshot
	ok       bool
	cleared  int
	err      error
}

func (f *fakeSource) Refresh(context.Context) error            { return f.err }
func (f *fakeSource) Latest() (models.OverviewSnapshot, bool) { return f.snapshot, f.ok }

func (f *fakeSource) Clear() {
	f.cleared++
	f.snapshot = models.OverviewSnapshot{}
	f.ok = false
}

// stubPage records what it receives.
type stubPage struct {
	name  string
	inits int
	msgs  []tea.Msg
}

func (p *stubPage) Init() tea.Cmd {
	p.inits++
	return nil
}

func (p *stubPage) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	p.msgs = append(p.msgs, msg)
	return p, nil
}

func (p *stubPage) View() string { return p.name }

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+l":
		return tea.KeyMsg{Type: tea.KeyCtrlL}
	case "ctrl+t":
		return tea.KeyMsg{Type: tea.KeyCtrlT}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}
