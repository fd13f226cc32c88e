package tui

import (
	"strings"
	"testing"

	"github.com/mobil-koeln/trainfinder/internal/api"
	"github.com/mobil-koeln/trainfinder/internal/models"
	"github.com/mobil-koeln/trainfinder/internal/testutil"
)

func TestModel_View(t *testing.T) {
	m := New(&fakeFetcher{})

	output := m.View()
	testutil.AssertContains(t, output, "Train Info Finder")
	testutil.AssertContains(t, output, "Get Data")
	testutil.AssertContains(t, output, "Type a train number and press Enter")
	testutil.AssertContains(t, output, "Tab:JSON")
	testutil.AssertNotContains(t, output, "Loading...")
}

func TestModel_View_Loading(t *testing.T) {
	m := New(&fakeFetcher{})
	m.loading = true
	m.refreshResult()

	output := m.View()
	testutil.AssertContains(t, output, "Loading...")
	testutil.AssertNotContains(t, output, api.MsgFetchFailed)
	testutil.AssertNotContains(t, output, "Type a train number")
}

func TestModel_View_Error(t *testing.T) {
	m := New(&fakeFetcher{})
	m.errMsg = api.MsgFetchFailed
	m.refreshResult()

	output := m.View()
	testutil.AssertContains(t, output, "Failed to fetch data")
	testutil.AssertNotContains(t, output, "Loading...")
	testutil.AssertNotContains(t, output, "Route Schedule")
}

func TestModel_View_ExactlyOneState(t *testing.T) {
	tests := []struct {
		name    string
		loading bool
		errMsg  string
		result  *models.Result
		want    string
	}{
		{"loading", true, "", nil, "Loading..."},
		{"error", false, api.MsgMissingTrainNumber, nil, api.MsgMissingTrainNumber},
		{"result", false, "", sampleResult(), "Route Schedule"},
	}

	markers := []string{"Loading...", api.MsgMissingTrainNumber, "Route Schedule"}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(&fakeFetcher{})
			m.loading = tt.loading
			m.errMsg = tt.errMsg
			m.train = tt.result
			m.refreshResult()

			output := m.View()
			for _, marker := range markers {
				if marker == tt.want {
					testutil.AssertContains(t, output, marker)
				} else {
					testutil.AssertNotContains(t, output, marker)
				}
			}
		})
	}
}

func TestModel_View_Timeline(t *testing.T) {
	m := New(&fakeFetcher{})
	m.train = sampleResult()
	m.refreshResult()

	output := m.View()
	testutil.AssertContains(t, output, "Rajdhani Express (12951)")
	testutil.AssertContains(t, output, "Route Schedule")
	testutil.AssertContains(t, output, "Mumbai Central")
	testutil.AssertContains(t, output, "Arrival: N/A | Departure: 17:00")
	testutil.AssertContains(t, output, "Arrival: 20:45 | Departure: 20:55")
	testutil.AssertContains(t, output, "Platform: 3")
	testutil.AssertContains(t, output, "New Delhi")
}

func TestModel_View_JSON(t *testing.T) {
	m := New(&fakeFetcher{}, WithJSONView())
	m.train = sampleResult()
	m.refreshResult()

	output := m.View()
	testutil.AssertContains(t, output, `"trainName": "Rajdhani Express"`)
	testutil.AssertContains(t, output, "Tab:timeline")
	testutil.AssertNotContains(t, output, "Route Schedule")
}

func TestRenderTimeline_Message(t *testing.T) {
	r := models.ParseResult([]byte(testutil.SamplePlainTextResponse))

	output := renderTimeline(r, 80)
	testutil.AssertContains(t, output, "Invalid train number <b>999</b>")
	testutil.AssertNotContains(t, output, "Route Schedule")
}

func TestRenderTimeline_NoSchedule(t *testing.T) {
	r := models.ParseResult([]byte(testutil.SampleNoScheduleResponse))

	output := renderTimeline(r, 80)
	testutil.AssertContains(t, output, "Ghost Train (00000)")
	testutil.AssertNotContains(t, output, "Route Schedule")
}

func TestRenderTimeline_NothingToShow(t *testing.T) {
	r := models.ParseResult([]byte(testutil.SampleArrayResponse))

	output := renderTimeline(r, 80)
	testutil.AssertContains(t, output, "No schedule data in response")
}

func TestRenderTimeline_StopCount(t *testing.T) {
	output := renderTimeline(sampleResult(), 80)
	testutil.AssertEqual(t, strings.Count(output, "┌"), 1)
	testutil.AssertEqual(t, strings.Count(output, "├"), 1)
	testutil.AssertEqual(t, strings.Count(output, "└"), 1)
	testutil.AssertEqual(t, strings.Count(output, "●"), 0)
	testutil.AssertEqual(t, strings.Count(output, "Platform:"), 3)
}

func TestRenderTimeline_SingleStop(t *testing.T) {
	r := models.ParseResult([]byte(testutil.SampleNumericTrainResponse))

	output := renderTimeline(r, 80)
	testutil.AssertEqual(t, strings.Count(output, "●"), 1)
	testutil.AssertNotContains(t, output, "┌")
}

func TestRenderJSON_Wrapper(t *testing.T) {
	r := models.ParseResult([]byte("oops"))

	output := renderJSON(r)
	testutil.AssertContains(t, output, `"message": "oops"`)
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"Mumbai Central", 20, "Mumbai Central"},
		{"Mumbai Central", 6, "Mumba~"},
		{"Mumbai", 3, "Mum"},
		{"Mumbai", 0, ""},
		{"Köln Hbf", 5, "Köln~"},
	}

	for _, tt := range tests {
		testutil.AssertEqual(t, truncate(tt.in, tt.width), tt.want)
	}
}
