package tui

import "strings"

type errorOverlayModel struct {
	title    string
	messages []string
}

func newWarningOverlay(warnings []error) *errorOverlayModel {
	if len(warnings) == 0 {
		return nil
	}
	msgs := make([]string, 0, len(warnings))
	for _, w := range warnings {
		msgs = append(msgs, humanizeError(w))
	}
	return &errorOverlayModel{title: "Предупреждение", messages: msgs}
}

func (m errorOverlayModel) View() string {
	content := m.title + "\n\n" + strings.Join(m.messages, "\n") + "\n\nenter / esc закрыть"
	return overlayBoxStyle.Render(content)
}
