package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mobil-koeln/trainfinder/internal/models"
	"go.uber.org/zap"
)

// TrainFetcher is the part of api.Client the form needs
type TrainFetcher interface {
	FetchTrain(ctx context.Context, trainNumber string) (*models.Result, error)
}

type viewMode int

const (
	viewTimeline viewMode = iota
	viewJSON
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// Model is the root Bubble Tea model for the form.
type Model struct {
	fetcher TrainFetcher
	logger  *zap.SugaredLogger
	width   int
	height  int

	input   textinput.Model
	spinner spinner.Model
	result  viewport.Model
	mode    viewMode

	// form state
	train    *models.Result
	loading  bool
	errMsg   string
	fetchSeq int
}

// Option configures the Model
type Option func(*Model)

// WithLogger sets the logger; the default discards everything
func WithLogger(l *zap.SugaredLogger) Option {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithJSONView starts the result pane in JSON mode
func WithJSONView() Option {
	return func(m *Model) {
		m.mode = viewJSON
	}
}

// WithTrainNumber pre-fills the input
func WithTrainNumber(n string) Option {
	return func(m *Model) {
		m.input.SetValue(n)
	}
}

// New creates a new form model.
func New(fetcher TrainFetcher, opts ...Option) Model {
	ti := textinput.New()
	ti.Placeholder = "Enter train number"
	ti.Prompt = "> "
	ti.Focus()
	ti.Width = 30

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styleLoading

	m := Model{
		fetcher: fetcher,
		logger:  zap.NewNop().Sugar(),
		width:   defaultWidth,
		height:  defaultHeight,
		input:   ti,
		spinner: sp,
		result:  viewport.New(defaultWidth, defaultHeight),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.layout()
	return m
}

// Init returns the initial command (textinput blink).
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}
