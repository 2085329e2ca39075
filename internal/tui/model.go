package tui

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/secure-vault/internal/app"
	"github.com/MKhiriev/secure-vault/internal/service"
	"github.com/MKhiriev/secure-vault/models"
)

type mode int

const (
	modeList mode = iota
	modeSearch
	modeDetail
	modeForm
	modeConfirmDelete
)

const statusTTL = 3 * time.Second

type vaultModel struct {
	ctx       context.Context
	vault     service.VaultService
	fields    service.FieldService
	board     Copier
	userID    string
	buildInfo models.AppBuildInfo

	mode     mode
	back     mode
	entries  []models.VaultEntry
	visible  []models.VaultEntry
	idx      int
	search   textinput.Model
	spinner  spinner.Model
	loading  bool
	reveal   bool
	form     formModel
	showInfo bool

	status    string
	statusSeq int
	errMsg    string
}

func newVaultModel(ctx context.Context, vault service.VaultService, fields service.FieldService,
	board Copier, userID string, buildInfo models.AppBuildInfo) vaultModel {
	search := textinput.New()
	search.Placeholder = "search title or username"
	search.Prompt = "/ "
	search.Width = 40

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return vaultModel{
		ctx:       ctx,
		vault:     vault,
		fields:    fields,
		board:     board,
		userID:    userID,
		buildInfo: buildInfo,
		search:    search,
		spinner:   s,
		loading:   true,
	}
}

func (m vaultModel) Init() tea.Cmd {
	return tea.Batch(m.cmdLoad(), m.spinner.Tick)
}

func (m vaultModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case entriesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.entries = msg.entries
		m.applyFilter()
		return m, nil

	case entrySavedMsg:
		m.form.submitting = false
		if msg.err != nil {
			m.form.err = humanizeError(msg.err)
			return m, nil
		}
		m.mode = modeList
		m.loading = true
		cmd := m.setStatus(app.MsgSaved)
		return m, tea.Batch(cmd, m.cmdLoad(), m.spinner.Tick)

	case entryDeletedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.loading = true
		cmd := m.setStatus(app.MsgDeleted)
		return m, tea.Batch(cmd, m.cmdLoad(), m.spinner.Tick)

	case passwordGeneratedMsg:
		if msg.err != nil {
			m.form.err = humanizeError(msg.err)
			return m, nil
		}
		m.form.err = ""
		m.form.setPassword(msg.password)
		return m, nil

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil

	case spinner.TickMsg:
		if !m.loading && !m.form.submitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.forwardInput(msg)
	}
	if key.Matches(keyMsg, keys.forceQ) {
		return m, tea.Quit
	}

	if m.showInfo {
		if key.Matches(keyMsg, keys.esc, keys.info) {
			m.showInfo = false
		}
		return m, nil
	}

	switch m.mode {
	case modeSearch:
		return m.updateSearch(keyMsg)
	case modeDetail:
		return m.updateDetail(keyMsg)
	case modeForm:
		return m.updateForm(keyMsg)
	case modeConfirmDelete:
		return m.updateConfirm(keyMsg)
	default:
		return m.updateList(keyMsg)
	}
}

// forwardInput passes non-key messages such as cursor blinks to the focused
// text input.
func (m vaultModel) forwardInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.mode {
	case modeSearch:
		m.search, cmd = m.search.Update(msg)
	case modeForm:
		m.form, cmd = m.form.updateInput(msg)
	}
	return m, cmd
}

func (m vaultModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.visible)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.search):
		m.mode = modeSearch
		return m, m.search.Focus()
	case key.Matches(msg, keys.esc):
		if m.search.Value() != "" {
			m.search.SetValue("")
			m.applyFilter()
		}
	case key.Matches(msg, keys.enter):
		if _, ok := m.current(); ok {
			m.reveal = false
			m.mode = modeDetail
		}
	case key.Matches(msg, keys.newItem):
		m.openForm(models.VaultForm{}, false)
		return m, textinput.Blink
	case key.Matches(msg, keys.info):
		m.showInfo = true
	case key.Matches(msg, keys.refresh):
		if m.loading {
			return m, nil
		}
		m.loading = true
		return m, tea.Batch(m.cmdLoad(), m.spinner.Tick)
	default:
		return m.updateEntryAction(msg)
	}

	return m, nil
}

func (m vaultModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.search.SetValue("")
		m.search.Blur()
		m.mode = modeList
		m.applyFilter()
		return m, nil
	case key.Matches(msg, keys.enter):
		m.search.Blur()
		m.mode = modeList
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.applyFilter()
	return m, cmd
}

func (m vaultModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc), key.Matches(msg, keys.quit):
		m.reveal = false
		m.mode = modeList
		return m, nil
	case key.Matches(msg, keys.reveal):
		m.reveal = !m.reveal
		return m, nil
	}
	return m.updateEntryAction(msg)
}

// updateEntryAction handles the keys shared by the list and detail views.
func (m vaultModel) updateEntryAction(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	entry, ok := m.current()
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.edit):
		form, legacy := m.vault.EditForm(entry)
		m.openForm(form, legacy)
		if legacy {
			return m, tea.Batch(m.setStatus(app.MsgLegacyLoaded), textinput.Blink)
		}
		return m, textinput.Blink
	case key.Matches(msg, keys.delete):
		m.back = m.mode
		m.mode = modeConfirmDelete
	case key.Matches(msg, keys.copy):
		return m, m.copyValue("Password", entry.Password)
	case key.Matches(msg, keys.copyUser):
		return m, m.copyValue("Username", entry.Username)
	}

	return m, nil
}

func (m vaultModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.form.submitting {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.esc):
		m.mode = modeList
		return m, nil
	case key.Matches(msg, keys.tab):
		m.form.move(1)
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.form.move(-1)
		return m, nil
	case key.Matches(msg, keys.generate):
		return m, m.cmdGenerate(m.form.gen)
	case key.Matches(msg, keys.longer):
		m.form.adjustLength(1)
		return m, nil
	case key.Matches(msg, keys.shorter):
		m.form.adjustLength(-1)
		return m, nil
	case key.Matches(msg, keys.similar):
		m.form.toggleLookAlike()
		return m, nil
	case key.Matches(msg, keys.showPass):
		m.form.toggleReveal()
		return m, nil
	case key.Matches(msg, keys.enter):
		m.form.submitting = true
		m.form.err = ""
		return m, tea.Batch(m.cmdSave(m.form.toForm()), m.spinner.Tick)
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.updateInput(msg)
	return m, cmd
}

func (m vaultModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		entry, ok := m.current()
		m.mode = modeList
		if !ok {
			return m, nil
		}
		return m, m.cmdDelete(entry.ID)
	case key.Matches(msg, keys.no):
		m.mode = m.back
	}
	return m, nil
}

func (m *vaultModel) openForm(form models.VaultForm, legacy bool) {
	m.form = newFormModel(form, legacy)
	m.reveal = false
	m.mode = modeForm
}

// copyValue copies a revealed value. Placeholders are never copied.
func (m *vaultModel) copyValue(name, value string) tea.Cmd {
	if value == "" || slices.Contains(app.Placeholders(), value) {
		return m.setStatus("Nothing to copy")
	}
	if m.board == nil {
		m.errMsg = "clipboard is not available"
		return nil
	}
	if err := m.board.Copy(value); err != nil {
		m.errMsg = err.Error()
		return nil
	}

	m.errMsg = ""
	return m.setStatus(fmt.Sprintf(app.MsgCopied, name, m.board.Delay()))
}

// setStatus shows msg and schedules its removal.
func (m *vaultModel) setStatus(msg string) tea.Cmd {
	m.statusSeq++
	m.status = msg
	seq := m.statusSeq
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

func (m *vaultModel) applyFilter() {
	m.visible = m.vault.Search(m.entries, m.search.Value())
	if m.idx >= len(m.visible) {
		m.idx = len(m.visible) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m vaultModel) current() (models.VaultEntry, bool) {
	if len(m.visible) == 0 || m.idx < 0 || m.idx >= len(m.visible) {
		return models.VaultEntry{}, false
	}
	return m.visible[m.idx], true
}

func (m vaultModel) cmdLoad() tea.Cmd {
	return func() tea.Msg {
		entries, err := m.vault.List(m.ctx, m.userID)
		return entriesLoadedMsg{entries: entries, err: err}
	}
}

func (m vaultModel) cmdSave(form models.VaultForm) tea.Cmd {
	return func() tea.Msg {
		entry, err := m.vault.Save(m.ctx, m.userID, form)
		return entrySavedMsg{entry: entry, err: err}
	}
}

func (m vaultModel) cmdDelete(id string) tea.Cmd {
	return func() tea.Msg {
		return entryDeletedMsg{id: id, err: m.vault.Delete(m.ctx, m.userID, id)}
	}
}

func (m vaultModel) cmdGenerate(opts models.GeneratorOptions) tea.Cmd {
	return func() tea.Msg {
		password, err := m.fields.GeneratePassword(m.ctx, opts)
		return passwordGeneratedMsg{password: password, err: err}
	}
}
