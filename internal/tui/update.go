package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mobil-koeln/trainfinder/internal/api"
)

// Update handles all messages and key events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case trainResultMsg:
		return m.handleTrainResult(msg)

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleTrainResult(msg trainResultMsg) (tea.Model, tea.Cmd) {
	// Ignore responses to superseded requests
	if msg.seq != m.fetchSeq {
		m.logger.Debugw("dropping stale response", "train_no", msg.query, "seq", msg.seq, "current", m.fetchSeq)
		return m, nil
	}

	m.loading = false
	if msg.err != nil {
		m.logger.Warnw("fetch failed", "train_no", msg.query, "error", msg.err)
		m.errMsg = api.UserMessage(msg.err)
		m.train = nil
		m.refreshResult()
		return m, nil
	}

	m.logger.Infow("fetched train", "train_no", msg.query, "raw", msg.result != nil && msg.result.IsRaw)
	m.errMsg = ""
	m.train = msg.result
	m.refreshResult()
	m.result.GotoTop()
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "enter":
		return m.submit()

	case "esc":
		m.input.SetValue("")
		return m, nil

	case "tab":
		if m.mode == viewTimeline {
			m.mode = viewJSON
		} else {
			m.mode = viewTimeline
		}
		m.refreshResult()
		m.result.GotoTop()
		return m, nil

	case "up", "down", "pgup", "pgdown", "ctrl+u", "ctrl+d":
		var cmd tea.Cmd
		m.result, cmd = m.result.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit is the "Get Data" action. Empty input sets the validation
// error and issues no command; anything else is sent as typed.
func (m Model) submit() (tea.Model, tea.Cmd) {
	query := m.input.Value()

	// any in-flight response is now stale
	m.fetchSeq++
	m.train = nil

	if query == "" {
		m.loading = false
		m.errMsg = api.MsgMissingTrainNumber
		m.refreshResult()
		return m, nil
	}

	m.loading = true
	m.errMsg = ""
	m.refreshResult()
	m.logger.Debugw("fetching train", "train_no", query, "seq", m.fetchSeq)
	return m, tea.Batch(fetchTrain(m.fetcher, query, m.fetchSeq), m.spinner.Tick)
}
