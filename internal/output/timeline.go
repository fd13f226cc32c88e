package output

import (
	"fmt"
	"io"

	"github.com/mobil-koeln/trainfinder/internal/models"
)

// NotAvailable stands in for any missing stop field
const NotAvailable = "N/A"

// SectionRoute is the heading above the stop list
const SectionRoute = "Route Schedule"

// NoScheduleHint is printed when a response has nothing to draw
const NoScheduleHint = "No schedule data in response"

// TableOptions configures the text output
type TableOptions struct {
	Colors *Colors
}

// Header formats the "<name> (<number>)" title line. Missing parts are
// dropped; an empty string means there is nothing to title.
func Header(t models.Train) string {
	switch {
	case t.Name != "" && t.Number != "":
		return fmt.Sprintf("%s (%s)", t.Name, t.Number)
	case t.Name != "":
		return t.Name
	case t.Number != "":
		return "Train " + t.Number
	}
	return ""
}

// OrNA returns s, or NotAvailable when s is empty
func OrNA(s string) string {
	if s == "" {
		return NotAvailable
	}
	return s
}

// RouteSymbol returns the marker drawn before stop i of n
func RouteSymbol(i, n int) string {
	switch {
	case n == 1:
		return "●"
	case i == 0:
		return "┌"
	case i == n-1:
		return "└"
	}
	return "├"
}

// RouteRail returns the connector drawn under stop i's marker
func RouteRail(i, n int) string {
	if i < n-1 {
		return "│"
	}
	return " "
}

// RenderTrain renders a result as a route timeline
func RenderTrain(w io.Writer, r *models.Result, opts TableOptions) {
	if r == nil {
		_, _ = fmt.Fprintln(w, "No train data found.")
		return
	}

	c := opts.Colors
	if c == nil {
		c = NewColors(ColorNever)
	}

	t := r.Train
	wrote := false
	if h := Header(t); h != "" {
		_, _ = fmt.Fprintln(w, c.Title("%s", h))
		wrote = true
	}

	if t.Message != "" && !t.HasRoute() {
		if wrote {
			_, _ = fmt.Fprintln(w)
		}
		_, _ = fmt.Fprintln(w, c.Message("%s", t.Message))
		return
	}

	if !t.HasRoute() {
		if !wrote {
			_, _ = fmt.Fprintln(w, c.Muted(NoScheduleHint))
		}
		return
	}

	if wrote {
		_, _ = fmt.Fprintln(w)
	}
	_, _ = fmt.Fprintln(w, c.Section(SectionRoute))
	_, _ = fmt.Fprintln(w)

	n := len(t.Schedule)
	for i, stop := range t.Schedule {
		rail := c.Symbol(RouteRail(i, n))

		_, _ = fmt.Fprintf(w, "%s %s\n",
			c.Symbol(RouteSymbol(i, n)),
			c.Value(stop.StationName, c.Station),
		)
		_, _ = fmt.Fprintf(w, "%s   Arrival: %s | Departure: %s\n",
			rail,
			c.Value(stop.ArrivalTime, c.Time),
			c.Value(stop.DepartureTime, c.Time),
		)
		_, _ = fmt.Fprintf(w, "%s   Platform: %s\n",
			rail,
			c.Value(stop.Platform, c.Platform),
		)
	}
}

// RenderJSON writes the result's value indented by two spaces
func RenderJSON(w io.Writer, r *models.Result) error {
	if r == nil {
		_, err := fmt.Fprintln(w, "null")
		return err
	}
	out, err := r.PrettyJSON()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

// RenderError writes the inline error text
func RenderError(w io.Writer, msg string, opts TableOptions) {
	c := opts.Colors
	if c == nil {
		c = NewColors(ColorNever)
	}
	_, _ = fmt.Fprintln(w, c.Error("%s", msg))
}
