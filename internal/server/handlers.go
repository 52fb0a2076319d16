package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/disk-sim/disk-sim/sim"
	"github.com/disk-sim/disk-sim/sim/report"
	"github.com/disk-sim/disk-sim/sim/workload"
)

type healthResponse struct {
	Status    string `json:"status"`
	GoVersion string `json:"go_version"`
	Uptime    string `json:"uptime"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondOK(w, RequestIDFromContext(r.Context()), healthResponse{
		Status:    "healthy",
		GoVersion: runtime.Version(),
		Uptime:    time.Since(s.startTime).Round(time.Second).String(),
	})
}

type policiesResponse struct {
	Policies []string `json:"policies"`
}

func (s *Server) handleListPolicies(w http.ResponseWriter, r *http.Request) {
	respondOK(w, RequestIDFromContext(r.Context()), policiesResponse{Policies: sim.AllPolicyNames()})
}

// SimulateRequest is the body of POST /api/v1/simulate.
// At most one of Requests and RequestsText may be set. When both are omitted the
// default queue is used; send "requests": [] for an empty queue.
// Policies defaults to all six.
type SimulateRequest struct {
	Requests             []int    `json:"requests,omitempty"`
	RequestsText         *string  `json:"requests_text,omitempty"`
	Head                 *int     `json:"head"`
	DiskSize             *int     `json:"disk_size"`
	Policies             []string `json:"policies,omitempty"`
	IncludeBoundaryStops *bool    `json:"include_boundary_stops,omitempty"`
}

// toInput converts the body into an engine input, applying the CLI defaults
// for the queue, head and disk size.
func (req SimulateRequest) toInput() (sim.DiskInput, error) {
	if req.Requests != nil && req.RequestsText != nil {
		return sim.DiskInput{}, errors.New("requests and requests_text are mutually exclusive")
	}
	text := workload.DefaultRequestQueue
	if req.RequestsText != nil {
		text = *req.RequestsText
	}
	reqs := req.Requests
	if reqs == nil {
		parsed, err := workload.ParseRequests(text)
		if err != nil {
			return sim.DiskInput{}, fmt.Errorf("requests_text: %w", err)
		}
		reqs = parsed
	}
	head, diskSize := workload.DefaultHead, workload.DefaultDiskSize
	if req.Head != nil {
		head = *req.Head
	}
	if req.DiskSize != nil {
		diskSize = *req.DiskSize
	}
	return sim.NewDiskInput(reqs, head, diskSize), nil
}

func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())

	var body SimulateRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, s.maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&body); err != nil {
		respondError(w, reqID, http.StatusBadRequest, &APIError{
			Code:    CodeBadRequest,
			Message: "invalid JSON body: " + err.Error(),
		})
		return
	}

	in, err := body.toInput()
	if err != nil {
		respondError(w, reqID, http.StatusBadRequest, &APIError{Code: CodeBadRequest, Message: err.Error()})
		return
	}
	opts := s.defaults
	if body.IncludeBoundaryStops != nil {
		opts.IncludeBoundaryStops = *body.IncludeBoundaryStops
	}
	policies := body.Policies
	if len(policies) == 0 {
		policies = sim.AllPolicyNames()
	}

	c, err := sim.Compare(policies, in, opts)
	if err != nil {
		s.respondSimError(w, reqID, err)
		return
	}
	respondOK(w, reqID, report.New(c, report.WithRunID(reqID)))
}

// respondSimError maps engine errors to HTTP statuses.
func (s *Server) respondSimError(w http.ResponseWriter, reqID string, err error) {
	var inv *sim.InvalidInputError
	if errors.As(err, &inv) {
		respondError(w, reqID, http.StatusBadRequest, &APIError{
			Code:    CodeInvalidInput,
			Message: inv.Error(),
			Field:   inv.Field,
			Value:   inv.Value,
		})
		return
	}
	s.logger.WithField("request_id", reqID).Errorf("simulate failed: %v", err)
	respondError(w, reqID, http.StatusInternalServerError, &APIError{Code: CodeInternal, Message: err.Error()})
}
