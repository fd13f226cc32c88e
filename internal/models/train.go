package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strconv"
	"time"
)

// Train is the projection of a train-info response onto the fields the
// timeline knows how to draw. Every field is optional.
type Train struct {
	Name     string `json:"trainName,omitempty"`
	Number   string `json:"trainNumber,omitempty"`
	Schedule []Stop `json:"schedule,omitempty"`
	Message  string `json:"message,omitempty"`
}

// Stop is a single station along a train's route
type Stop struct {
	StationName   string `json:"stationName"`
	ArrivalTime   string `json:"arrivalTime,omitempty"`
	DepartureTime string `json:"departureTime,omitempty"`
	Platform      string `json:"platform,omitempty"`
}

// HasRoute reports whether there is at least one stop to draw
func (t Train) HasRoute() bool {
	return len(t.Schedule) > 0
}

// Result is a fetched response body together with its decoded form.
//
// When the body is not valid JSON, Value is the wrapper
// {"message": <body>} and IsRaw is set.
type Result struct {
	Query     string    `json:"-"`
	Body      []byte    `json:"-"`
	Value     any       `json:"-"`
	IsRaw     bool      `json:"-"`
	Train     Train     `json:"-"`
	FetchedAt time.Time `json:"-"`

	// payload is Body without a leading byte order mark
	payload []byte
}

var utf8BOM = []byte("\xef\xbb\xbf")

// ParseResult decodes a response body. It never fails: anything that is
// not a single JSON value is wrapped verbatim as a message. A leading
// UTF-8 byte order mark is ignored when decoding.
func ParseResult(body []byte) *Result {
	r := &Result{
		Body:      body,
		FetchedAt: time.Now(),
		payload:   bytes.TrimPrefix(body, utf8BOM),
	}

	v, err := decodeJSON(r.payload)
	if err != nil {
		text := string(body)
		r.IsRaw = true
		r.Value = map[string]any{"message": text}
		r.Train = Train{Message: text}
		return r
	}

	r.Value = v
	r.Train = projectTrain(v)
	return r
}

// decodeJSON parses exactly one JSON value, rejecting trailing data.
func decodeJSON(body []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after JSON value")
	}
	return v, nil
}

func projectTrain(v any) Train {
	obj, ok := v.(map[string]any)
	if !ok {
		return Train{}
	}

	t := Train{
		Name:    scalarText(obj["trainName"]),
		Number:  scalarText(obj["trainNumber"]),
		Message: scalarText(obj["message"]),
	}

	entries, ok := obj["schedule"].([]any)
	if !ok {
		return t
	}
	t.Schedule = make([]Stop, 0, len(entries))
	for _, e := range entries {
		st, ok := e.(map[string]any)
		if !ok {
			continue
		}
		t.Schedule = append(t.Schedule, Stop{
			StationName:   scalarText(st["stationName"]),
			ArrivalTime:   scalarText(st["arrivalTime"]),
			DepartureTime: scalarText(st["departureTime"]),
			Platform:      scalarText(st["platform"]),
		})
	}
	return t
}

// scalarText renders a JSON scalar as display text. Objects, arrays and
// null yield "".
func scalarText(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case json.Number:
		return x.String()
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	default:
		return ""
	}
}

// MarshalJSON emits the decoded value: the upstream JSON as received, or
// the message wrapper for non-JSON bodies.
func (r *Result) MarshalJSON() ([]byte, error) {
	if !r.IsRaw {
		var buf bytes.Buffer
		if err := json.Compact(&buf, r.payload); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
	return marshalNoEscape(r.Value)
}

// PrettyJSON returns the value indented by two spaces. Key order of the
// upstream body is preserved.
func (r *Result) PrettyJSON() ([]byte, error) {
	var buf bytes.Buffer
	if !r.IsRaw {
		if err := json.Indent(&buf, bytes.TrimSpace(r.payload), "", "  "); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r.Value); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func marshalNoEscape(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
