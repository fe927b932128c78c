package server

import (
	"encoding/json"
	"html/template"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/katalvlaran/sinspline/config"
	"github.com/katalvlaran/sinspline/plot"
	"github.com/katalvlaran/sinspline/sinspline"
	"github.com/sgostarter/i/l"
)

// SplineResponse is the /api/spline payload.
type SplineResponse struct {
	Params             config.Params        `json:"params"`
	Target             string               `json:"target"`
	EvalMode           string               `json:"evalMode"`
	Base               sinspline.Series     `json:"base"`
	Native             sinspline.Series     `json:"native"`
	Library            sinspline.Series     `json:"library"`
	Control            sinspline.Series     `json:"control"`
	KnotPoints         sinspline.Series     `json:"knotPoints"`
	Knots              []float64            `json:"knots"`
	Coefficients       []float64            `json:"coefficients"`
	Comparison         sinspline.Comparison `json:"comparison"`
	ApproximationError float64              `json:"approximationError"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type indexPage struct {
	Title   string
	Ticks   string
	Control string
	Degree  int
	Degrees []int
	Error   string
	Figure  template.HTML
}

// model parses the request parameters, checks them against the limits and
// returns the (possibly cached) model.
func (s *Server) model(r *http.Request) (config.Params, *sinspline.Model, error) {
	p, err := parseParams(r.URL.Query(), s.cfg.Defaults)
	if err != nil {
		return p, nil, err
	}
	if err = s.cfg.Limits.Check(p); err != nil {
		return p, nil, err
	}
	m, err := s.models.Get(p)

	return p, m, err
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	page := indexPage{
		Title:   plot.Title,
		Ticks:   strconv.Itoa(s.cfg.Defaults.Ticks),
		Control: strconv.Itoa(s.cfg.Defaults.Control),
		Degree:  s.cfg.Defaults.Degree,
	}
	for d := 1; d <= s.cfg.Limits.MaxDegree; d++ {
		page.Degrees = append(page.Degrees, d)
	}
	q := r.URL.Query()
	if v := q.Get("ticks"); v != "" {
		page.Ticks = v
	}
	if v := q.Get("control"); v != "" {
		page.Control = v
	}

	status := http.StatusOK
	p, m, err := s.model(r)
	page.Degree = p.Degree
	if err == nil {
		var svg []byte
		if svg, err = plot.SVG(m, s.figureOptions(r)); err == nil {
			page.Figure = template.HTML(svg) // produced by plot.SVG, no user text
		}
	}
	if err != nil {
		status = statusFor(err)
		page.Error = err.Error()
		s.logFailure(r, err, status)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err = indexTemplate.Execute(w, page); err != nil {
		s.logger.WithFields(l.ErrorField(err)).Error("render index")
	}
}

func (s *Server) handleSpline(w http.ResponseWriter, r *http.Request) {
	p, m, err := s.model(r)
	if err != nil {
		status := statusFor(err)
		s.logFailure(r, err, status)
		s.writeJSON(w, r, status, errorResponse{Error: err.Error()})

		return
	}

	s.writeJSON(w, r, http.StatusOK, SplineResponse{
		Params:             p,
		Target:             m.Target().Name,
		EvalMode:           m.EvalMode().String(),
		Base:               m.BaseCurve(),
		Native:             m.NativeCurve(),
		Library:            m.LibraryCurve(),
		Control:            m.ControlPoints(),
		KnotPoints:         m.KnotPoints(),
		Knots:              m.Knots(),
		Coefficients:       m.Coefficients(),
		Comparison:         m.Compare(sinspline.DefaultTolerance),
		ApproximationError: m.ApproximationError(),
	})
}

func (s *Server) handleFigure(w http.ResponseWriter, r *http.Request) {
	_, m, err := s.model(r)
	if err != nil {
		status := statusFor(err)
		s.logFailure(r, err, status)
		http.Error(w, err.Error(), status)

		return
	}

	svg, err := plot.SVG(m, s.figureOptions(r))
	if err != nil {
		s.logFailure(r, err, http.StatusInternalServerError)
		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = w.Write(svg)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().Unix(),
	})
}

func (s *Server) figureOptions(r *http.Request) plot.Options {
	opts := plot.DefaultOptions()
	q := r.URL.Query()
	opts.ShowKnots = parseFlag(q, "knots", opts.ShowKnots)
	opts.ShowLibrary = parseFlag(q, "library", opts.ShowLibrary)

	return opts
}

// writeJSON marshals v, tags it with a weak xxhash ETag and answers 304 when
// the client already holds that body. The tag is weak because gzhttp serves
// the same representation with and without content encoding.
func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, status int, v interface{}) {
	body, err := json.Marshal(v)
	if err != nil {
		s.logger.WithFields(l.ErrorField(err)).Error("marshal response")
		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	if status == http.StatusOK {
		etag := `W/"` + strconv.FormatUint(xxhash.Sum64(body), 16) + `"`
		w.Header().Set("ETag", etag)
		if etagMatch(r.Header.Get("If-None-Match"), etag) {
			w.WriteHeader(http.StatusNotModified)

			return
		}
	}

	w.WriteHeader(status)
	_, _ = w.Write(body)
}

// etagMatch applies the weak comparison of If-None-Match: "*" matches
// anything, otherwise any listed tag equal to etag once W/ is ignored.
func etagMatch(header, etag string) bool {
	header = strings.TrimSpace(header)
	if header == "" {
		return false
	}
	if header == "*" {
		return true
	}
	want := strings.TrimPrefix(etag, "W/")
	for _, tag := range strings.Split(header, ",") {
		if strings.TrimPrefix(strings.TrimSpace(tag), "W/") == want {
			return true
		}
	}

	return false
}

func (s *Server) logFailure(r *http.Request, err error, status int) {
	s.logger.WithFields(
		l.StringField("uri", r.URL.RequestURI()),
		l.IntField("status", status),
		l.ErrorField(err),
	).Error("request failed")
}
