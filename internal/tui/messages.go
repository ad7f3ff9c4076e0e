package tui

import (
	"github.com/MKhiriev/go-portal-client/models"
)

// NavigateTo switches the root model to another page. A non-nil Payload is
// delivered to the new page instead of calling its Init.
type NavigateTo struct {
	Page    string
	Payload any
}

const (
	pageLock     = "lock"
	pageSettings = "settings"
	pageOverview = "overview"
)

type unlockDoneMsg struct {
	outcome models.ChallengeOutcome
	err     error
}

type settingsSavedMsg struct {
	err error
}

type pingDoneMsg struct {
	err error
}

type lockToggledMsg struct {
	enabled bool
	err     error
}

type overviewLoadedMsg struct {
	snapshot models.OverviewSnapshot
	ok       bool
	err      error
}

type dashboardURLMsg struct {
	url string
	err error
}

type overviewTickMsg struct {
	gen int
}
