package tui

import "github.com/mobil-koeln/trainfinder/internal/models"

// trainResultMsg carries a fetch outcome back to the model.
// seq is used for stale-result detection.
type trainResultMsg struct {
	seq    int
	query  string
	result *models.Result
	err    error
}
