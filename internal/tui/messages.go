package tui

import "github.com/MKhiriev/secure-vault/models"

type entriesLoadedMsg struct {
	entries []models.VaultEntry
	err     error
}

type entrySavedMsg struct {
	entry models.VaultEntry
	err   error
}

type entryDeletedMsg struct {
	id  string
	err error
}

type passwordGeneratedMsg struct {
	password string
	err      error
}

// clearStatusMsg drops the status line if no newer status replaced it.
type clearStatusMsg struct {
	seq int
}
