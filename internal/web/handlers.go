package web

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mobil-koeln/trainfinder/internal/api"
	"github.com/mobil-koeln/trainfinder/internal/models"
	"github.com/mobil-koeln/trainfinder/internal/output"
)

const viewJSON = "json"

// page is the data behind templates/index.html
type page struct {
	Query    string
	JSONView bool
	Error    string
	Result   *resultView
}

type resultView struct {
	Header  string
	Message string
	Stops   []stopView
	JSON    string
	Empty   bool
}

type stopView struct {
	Symbol    string
	Station   string
	Arrival   string
	Departure string
	Platform  string
}

// handleIndex renders the form, plus the outcome when train_no is present
func (s *Server) handleIndex(c *gin.Context) {
	p := page{JSONView: c.Query("view") == viewJSON}

	query, submitted := c.GetQuery(api.ParamTrainNumber)
	if !submitted {
		c.HTML(http.StatusOK, "index.html", p)
		return
	}
	p.Query = query

	r, err := s.fetcher.FetchTrain(c.Request.Context(), p.Query)
	if err != nil {
		s.logFetchError(p.Query, err)
		p.Error = api.UserMessage(err)
		c.HTML(http.StatusOK, "index.html", p)
		return
	}

	p.Result = newResultView(r, p.JSONView)
	c.HTML(http.StatusOK, "index.html", p)
}

// handleTrain returns the decoded response value as JSON
func (s *Server) handleTrain(c *gin.Context) {
	query := c.Query(api.ParamTrainNumber)

	r, err := s.fetcher.FetchTrain(c.Request.Context(), query)
	if err != nil {
		s.logFetchError(query, err)
		status := http.StatusBadGateway
		if api.IsValidation(err) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": api.UserMessage(err)})
		return
	}

	body, err := r.MarshalJSON()
	if err != nil {
		s.logger.Errorw("encoding result failed", "train_no", query, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to encode response"})
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"time":   s.now().Format(time.RFC3339),
	})
}

func (s *Server) logFetchError(query string, err error) {
	if api.IsValidation(err) {
		s.logger.Debugw("rejected empty train number")
		return
	}
	s.logger.Warnw("fetch failed", "train_no", query, "error", err)
}

func newResultView(r *models.Result, jsonView bool) *resultView {
	v := &resultView{}
	if jsonView {
		out, err := r.PrettyJSON()
		if err != nil {
			out = r.Body
		}
		v.JSON = string(out)
		return v
	}

	t := r.Train
	v.Header = output.Header(t)
	if !t.HasRoute() {
		v.Message = t.Message
		v.Empty = v.Header == "" && v.Message == ""
		return v
	}

	n := len(t.Schedule)
	v.Stops = make([]stopView, 0, n)
	for i, stop := range t.Schedule {
		v.Stops = append(v.Stops, stopView{
			Symbol:    output.RouteSymbol(i, n),
			Station:   output.OrNA(stop.StationName),
			Arrival:   output.OrNA(stop.ArrivalTime),
			Departure: output.OrNA(stop.DepartureTime),
			Platform:  output.OrNA(stop.Platform),
		})
	}
	return v
}
