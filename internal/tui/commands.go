package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// fetchTrain returns a tea.Cmd that fetches one train.
// The request carries no deadline of its own; the client's timeout applies.
func fetchTrain(fetcher TrainFetcher, query string, seq int) tea.Cmd {
	return func() tea.Msg {
		result, err := fetcher.FetchTrain(context.Background(), query)
		return trainResultMsg{
			seq:    seq,
			query:  query,
			result: result,
			err:    err,
		}
	}
}
