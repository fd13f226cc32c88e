package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// lines used by everything except the result viewport: title, input box,
// status line, result border, status bar
const chromeHeight = 1 + 3 + 1 + 2 + 1

// View renders the entire form.
func (m Model) View() string {
	header := renderHeader()
	inputBar := m.renderInputBar()
	status := m.renderStatusLine()
	pane := stylePanel.Width(m.paneWidth()).Render(m.result.View())
	statusBar := m.renderStatusBar()

	return lipgloss.JoinVertical(lipgloss.Left, header, inputBar, status, pane, statusBar)
}

// layout resizes the viewport to the window and re-renders its content
func (m *Model) layout() {
	w := m.paneWidth()
	h := m.height - chromeHeight
	if h < 3 {
		h = 3
	}
	m.result.Width = w
	m.result.Height = h
	m.refreshResult()
}

func (m Model) paneWidth() int {
	w := m.width - 2
	if w < 20 {
		w = 20
	}
	return w
}

// refreshResult puts the current result, in the current mode, into the viewport
func (m *Model) refreshResult() {
	m.result.SetContent(m.renderResult(m.result.Width))
}

// renderHeader renders the title line.
func renderHeader() string {
	return styleLogo.Render("🚆 Train Info Finder")
}

// renderInputBar renders the train-number input and the "Get Data" button.
func (m Model) renderInputBar() string {
	content := m.input.View() + "  " + styleButton.Render("Get Data")
	return styleInputPanel.Width(m.paneWidth()).Render(content)
}

// renderStatusLine shows the loading indicator or the error, never both.
func (m Model) renderStatusLine() string {
	switch {
	case m.loading:
		return " " + m.spinner.View() + styleLoading.Render(" Loading...")
	case m.errMsg != "":
		return " " + styleError.Render(m.errMsg)
	}
	return ""
}

// renderResult renders the result pane content for the given width.
func (m Model) renderResult(width int) string {
	if m.loading || m.errMsg != "" {
		return ""
	}
	if m.train == nil {
		return styleMuted.Render(" Type a train number and press Enter")
	}
	if m.mode == viewJSON {
		return renderJSON(m.train)
	}
	return renderTimeline(m.train, width)
}

// renderStatusBar renders keyboard hints at the bottom.
func (m Model) renderStatusBar() string {
	toggle := "Tab:JSON"
	if m.mode == viewJSON {
		toggle = "Tab:timeline"
	}
	hints := strings.Join([]string{"Enter:get data", toggle, "↑/↓ PgUp/PgDn:scroll", "Esc:clear", "Ctrl+C:quit"}, "  ")
	return styleStatusBar.Width(m.width).Render(" " + hints)
}
