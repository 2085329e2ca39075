package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/secure-vault/models"
)

const (
	legacyMarker = "[legacy]"
	maskedValue  = "••••••••"
)

func (m vaultModel) View() string {
	var page string

	switch {
	case m.showInfo:
		page = renderBuildInfoWindow(m.buildInfo)
	case m.mode == modeForm:
		page = m.form.View()
	case m.mode == modeDetail:
		page = m.detailView()
	case m.mode == modeConfirmDelete:
		entry, _ := m.current()
		page = lipgloss.JoinVertical(lipgloss.Left, m.listView(), "", confirmModel{message: entry.Title}.View())
	default:
		page = m.listView()
	}

	if m.status != "" {
		page += "\n\n  " + statusStyle.Render(m.status)
	}
	if m.errMsg != "" && m.mode != modeForm {
		page += "\n\n" + errorOverlayModel{message: m.errMsg}.View()
	}

	return appStyle.Render(page)
}

func (m vaultModel) listView() string {
	title := titleStyle.Render("SECURE VAULT")
	if m.loading {
		title += "  " + m.spinner.View()
	}

	var b strings.Builder
	if m.mode == modeSearch || m.search.Value() != "" {
		b.WriteString(m.search.View())
		b.WriteString("\n\n")
	}

	switch {
	case m.loading && len(m.entries) == 0:
		b.WriteString("Loading...")
	case len(m.visible) == 0 && m.search.Value() != "":
		b.WriteString("No matches")
	case len(m.visible) == 0:
		b.WriteString("No entries yet, press n to add one")
	default:
		for i, entry := range m.visible {
			b.WriteString(listLine(entry, i == m.idx))
			b.WriteString("\n")
		}
	}

	if n := legacyCount(m.entries); n > 0 {
		b.WriteString("\n")
		b.WriteString(legacyStyle.Render(fmt.Sprintf("%d legacy entries: edit & save to encrypt them with your account key", n)))
	}

	return renderPage(title, b.String(),
		"enter: open  /: search  n: new  e: edit  d: delete  c: copy password  u: copy username  v: about  q: quit")
}

func listLine(entry models.VaultEntry, selected bool) string {
	cursor := "  "
	if selected {
		cursor = "> "
	}

	line := fmt.Sprintf("%s%-30s %s", cursor, fitText(entry.Title, 30), fitText(entry.Username, 30))
	if entry.IsLegacy {
		line += " " + legacyStyle.Render(legacyMarker)
	}
	return line
}

func (m vaultModel) detailView() string {
	entry, ok := m.current()
	if !ok {
		return m.listView()
	}

	password := maskedValue
	if m.reveal {
		password = entry.Password
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Username: %s\n", valueOrDash(entry.Username))
	fmt.Fprintf(&b, "Password: %s\n", password)
	fmt.Fprintf(&b, "URL:      %s\n", valueOrDash(entry.URL))
	fmt.Fprintf(&b, "Notes:    %s", valueOrDash(entry.Notes))
	if entry.IsLegacy {
		b.WriteString("\n\n")
		b.WriteString(legacyStyle.Render("Legacy entry: edit & save to encrypt it with your account key."))
	}

	return renderPage(titleStyle.Render(entry.Title), b.String(),
		"r: show/hide  c: copy password  u: copy username  e: edit  d: delete  esc: back")
}

func legacyCount(entries []models.VaultEntry) int {
	n := 0
	for _, e := range entries {
		if e.IsLegacy {
			n++
		}
	}
	return n
}
