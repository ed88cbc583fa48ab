// SPDX-License-Identifier: MIT

package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/hashicorp/go-multierror"

	"github.com/katalvlaran/onepass/builder"
	"github.com/katalvlaran/onepass/core"
	"github.com/katalvlaran/onepass/relax"
	"github.com/katalvlaran/onepass/table"
)

const maxBodyBytes = 1 << 20

// PathsRequest is the body of POST /v1/paths.
type PathsRequest struct {
	Edges []core.Edge `json:"edges"`
}

// RowView is one table row as returned over the wire. Distance is null
// while unknown.
type RowView struct {
	Key      string         `json:"key"`
	Previous string         `json:"previous,omitempty"`
	Distance table.Distance `json:"distance"`
}

// PathsResponse is the result of a pass.
type PathsResponse struct {
	Source string    `json:"source"`
	Rows   []RowView `json:"rows"`
}

// SampleView describes a canned graph.
type SampleView struct {
	ID    builder.SampleID `json:"id"`
	Edges []core.Edge      `json:"edges"`
}

// ErrorResponse lists every reason a request was rejected.
type ErrorResponse struct {
	Errors []string `json:"errors"`
}

func (s *Server) computePaths(w http.ResponseWriter, r *http.Request) {
	var req PathsRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		s.writeError(w, r, http.StatusBadRequest, fmt.Errorf("decode request: %w", err))
		return
	}
	if len(req.Edges) == 0 {
		s.writeError(w, r, http.StatusBadRequest, core.ErrEmptyGraph)
		return
	}

	g := core.NewGraph(core.WithExpectedVertices(len(req.Edges) + 1))
	if err := g.AddEdges(req.Edges...); err != nil {
		s.writeError(w, r, http.StatusBadRequest, err)
		return
	}

	s.respondWithPaths(w, r, g)
}

func (s *Server) listSamples(w http.ResponseWriter, _ *http.Request) {
	ids := builder.Samples()
	out := make([]SampleView, 0, len(ids))
	for _, id := range ids {
		out = append(out, SampleView{ID: id, Edges: builder.SampleEdges(id)})
	}

	writeJSON(w, http.StatusOK, out)
}

func (s *Server) sample(w http.ResponseWriter, r *http.Request) {
	n, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, fmt.Errorf("%w: %v", builder.ErrUnknownSample, err))
		return
	}

	g, err := builder.Sample(builder.SampleID(n))
	if err != nil {
		s.writeError(w, r, http.StatusInternalServerError, err)
		return
	}

	s.respondWithPaths(w, r, g)
}

func (s *Server) respondWithPaths(w http.ResponseWriter, r *http.Request, g *core.Graph) {
	log := s.log.With("request_id", RequestID(r.Context()))

	res, err := relax.ShortestPaths(g, relax.WithLogger(log.Named("relax")))
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, core.ErrEmptyGraph) {
			status = http.StatusBadRequest
		}
		s.writeError(w, r, status, err)
		return
	}

	rows := res.Table.Rows()
	resp := PathsResponse{Source: res.Source, Rows: make([]RowView, 0, len(rows))}
	for _, row := range rows {
		resp.Rows = append(resp.Rows, RowView{Key: row.Key, Previous: row.Previous, Distance: row.FromStart})
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	s.log.Warn("request rejected", "status", status, "error", err, "request_id", RequestID(r.Context()))

	var msgs []string
	var merr *multierror.Error
	if errors.As(err, &merr) {
		for _, e := range merr.Errors {
			msgs = append(msgs, e.Error())
		}
	} else {
		msgs = []string{err.Error()}
	}

	writeJSON(w, status, ErrorResponse{Errors: msgs})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
