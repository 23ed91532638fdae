// SPDX-License-Identifier: MIT
package requests

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"
	pkgerrors "github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"

	"github.com/katalvlaran/transitcat/config"
	"github.com/katalvlaran/transitcat/geo"
	"github.com/katalvlaran/transitcat/transit"
)

// Request type names used in "type" fields.
const (
	TypeStop  = "Stop"
	TypeBus   = "Bus"
	TypeRoute = "Route"
	TypeMap   = "Map"
)

// ErrInvalidDocument is returned (wrapped) when a decoded document fails validation.
var ErrInvalidDocument = errors.New("requests: invalid document")

var validate = validator.New()

// Document is one input document: catalogue records, optional routing
// settings and the queries to answer.
type Document struct {
	BaseRequests    []BaseRequest             `json:"base_requests" validate:"dive"`
	RoutingSettings *config.RoutingParameters `json:"routing_settings,omitempty"`
	StatRequests    []StatRequest             `json:"stat_requests" validate:"dive"`
}

// BaseRequest is a Stop or Bus record.
type BaseRequest struct {
	Type string `json:"type" validate:"oneof=Stop Bus"`
	Name string `json:"name" validate:"required"`

	// Stop fields
	Latitude      float64        `json:"latitude,omitempty"`
	Longitude     float64        `json:"longitude,omitempty"`
	RoadDistances map[string]int `json:"road_distances,omitempty"`

	// Bus fields
	Stops       []string `json:"stops,omitempty"`
	IsRoundtrip bool     `json:"is_roundtrip,omitempty"`
}

// StatRequest is one query. Name is used by Bus and Stop; From and To by Route.
type StatRequest struct {
	ID   int    `json:"id"`
	Type string `json:"type" validate:"oneof=Bus Stop Route Map"`
	Name string `json:"name,omitempty"`
	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`
}

// Decode reads and validates one JSON document from r.
func Decode(r io.Reader) (*Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, pkgerrors.Wrap(err, "decode document")
	}
	if err := validate.Struct(doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if doc.RoutingSettings != nil {
		if err := doc.RoutingSettings.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
		}
	}

	return &doc, nil
}

// Populate loads the base requests into s: every stop first, then every
// road distance, then every bus, so records may reference each other in
// any order within the document.
func (d *Document) Populate(s *transit.Session) error {
	for _, req := range d.BaseRequests {
		if req.Type != TypeStop {
			continue
		}
		coords := geo.Coordinates{Lat: req.Latitude, Lng: req.Longitude}
		if err := s.AddStop(req.Name, coords); err != nil {
			return fmt.Errorf("requests: stop %q: %w", req.Name, err)
		}
	}

	for _, req := range d.BaseRequests {
		if req.Type != TypeStop {
			continue
		}
		to := make([]string, 0, len(req.RoadDistances))
		for name := range req.RoadDistances {
			to = append(to, name)
		}
		slices.Sort(to)
		for _, name := range to {
			if err := s.AddDistance(req.Name, name, req.RoadDistances[name]); err != nil {
				return fmt.Errorf("requests: distance %q→%q: %w", req.Name, name, err)
			}
		}
	}

	for _, req := range d.BaseRequests {
		if req.Type != TypeBus {
			continue
		}
		if err := s.AddBus(req.Name, req.Stops, req.IsRoundtrip); err != nil {
			return fmt.Errorf("requests: bus %q: %w", req.Name, err)
		}
	}

	return nil
}

// Params returns the document's routing settings, or fallback when absent.
func (d *Document) Params(fallback config.RoutingParameters) config.RoutingParameters {
	if d.RoutingSettings != nil {
		return *d.RoutingSettings
	}

	return fallback
}

// Process populates s, builds it and answers every stat request in order.
// fallback is used when the document carries no routing settings.
func (d *Document) Process(s *transit.Session, fallback config.RoutingParameters) ([]Response, error) {
	if err := d.Populate(s); err != nil {
		return nil, err
	}
	if err := s.Build(d.Params(fallback)); err != nil {
		return nil, fmt.Errorf("requests: build: %w", err)
	}

	responses := make([]Response, 0, len(d.StatRequests))
	for _, req := range d.StatRequests {
		responses = append(responses, Answer(s, req))
	}
	log.Debug().
		Int("base_requests", len(d.BaseRequests)).
		Int("stat_requests", len(d.StatRequests)).
		Msg("document processed")

	return responses, nil
}
