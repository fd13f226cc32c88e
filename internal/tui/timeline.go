package tui

import (
	"fmt"
	"strings"

	"github.com/mobil-koeln/trainfinder/internal/models"
	"github.com/mobil-koeln/trainfinder/internal/output"
)

// renderTimeline renders the result as a header plus the route.
func renderTimeline(r *models.Result, width int) string {
	t := r.Train

	var b strings.Builder
	if h := output.Header(t); h != "" {
		b.WriteString(styleTitle.Render(truncate(h, width)))
		b.WriteString("\n")
	}

	if t.Message != "" && !t.HasRoute() {
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(styleMessage.Width(width).Render(t.Message))
		return b.String()
	}

	if !t.HasRoute() {
		if b.Len() == 0 {
			return styleMuted.Render(" " + output.NoScheduleHint + " (Tab for JSON)")
		}
		return strings.TrimRight(b.String(), "\n")
	}

	if b.Len() > 0 {
		b.WriteString("\n")
	}
	b.WriteString(styleSection.Render(output.SectionRoute))
	b.WriteString("\n\n")

	n := len(t.Schedule)
	for i, stop := range t.Schedule {
		rail := output.RouteRail(i, n)

		b.WriteString(fmt.Sprintf(" %s  %s\n",
			styleDot.Render(output.RouteSymbol(i, n)),
			styleStation.Render(truncate(output.OrNA(stop.StationName), width-5)),
		))
		b.WriteString(fmt.Sprintf(" %s  Arrival: %s | Departure: %s\n",
			styleRail.Render(rail),
			styleTime.Render(output.OrNA(stop.ArrivalTime)),
			styleTime.Render(output.OrNA(stop.DepartureTime)),
		))
		b.WriteString(fmt.Sprintf(" %s  %s",
			styleRail.Render(rail),
			styleMuted.Render("Platform: ")+stylePlatform.Render(output.OrNA(stop.Platform)),
		))
		if i < n-1 {
			b.WriteString("\n " + styleRail.Render(rail) + "\n")
		}
	}

	return b.String()
}

// renderJSON renders the pretty-printed response value.
func renderJSON(r *models.Result) string {
	out, err := r.PrettyJSON()
	if err != nil {
		return styleError.Render(" " + err.Error())
	}
	return styleJSON.Render(string(out))
}

// truncate truncates a string to the given width in runes.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 3 {
		return string(runes[:width])
	}
	return string(runes[:width-1]) + "~"
}
