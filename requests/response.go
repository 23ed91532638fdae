// SPDX-License-Identifier: MIT
package requests

import (
	"encoding/json"
	"io"

	pkgerrors "github.com/pkg/errors"

	"github.com/katalvlaran/transitcat/router"
	"github.com/katalvlaran/transitcat/transit"
)

// Error messages carried by ErrorResponse.
const (
	MessageNotFound    = "not found"
	MessageUnsupported = "unsupported"
)

// Response is one answer; RequestID links it to its StatRequest.
type Response interface {
	ID() int
}

// BusResponse answers a Bus request.
type BusResponse struct {
	Curvature       float64 `json:"curvature"`
	RequestID       int     `json:"request_id"`
	RouteLength     int     `json:"route_length"`
	StopCount       int     `json:"stop_count"`
	UniqueStopCount int     `json:"unique_stop_count"`
}

// StopResponse answers a Stop request.
type StopResponse struct {
	Buses     []string `json:"buses"`
	RequestID int      `json:"request_id"`
}

// RouteItem is one leg of a RouteResponse.
type RouteItem struct {
	Type      string  `json:"type"`
	StopName  string  `json:"stop_name,omitempty"`
	Bus       string  `json:"bus,omitempty"`
	SpanCount int     `json:"span_count,omitempty"`
	Time      float64 `json:"time"`
}

// RouteResponse answers a Route request.
type RouteResponse struct {
	Items     []RouteItem `json:"items"`
	RequestID int         `json:"request_id"`
	TotalTime float64     `json:"total_time"`
}

// ErrorResponse answers a request that could not be satisfied.
type ErrorResponse struct {
	ErrorMessage string `json:"error_message"`
	RequestID    int    `json:"request_id"`
}

func (r BusResponse) ID() int   { return r.RequestID }
func (r StopResponse) ID() int  { return r.RequestID }
func (r RouteResponse) ID() int { return r.RequestID }
func (r ErrorResponse) ID() int { return r.RequestID }

// Answer resolves one stat request against a built session.
func Answer(s *transit.Session, req StatRequest) Response {
	switch req.Type {
	case TypeBus:
		info, ok := s.GetBusInfo(req.Name)
		if !ok {
			break
		}
		return BusResponse{
			Curvature:       info.Curvature,
			RequestID:       req.ID,
			RouteLength:     info.RouteLength,
			StopCount:       info.StopCount,
			UniqueStopCount: info.UniqueStopCount,
		}

	case TypeStop:
		info, ok := s.GetStopInfo(req.Name)
		if !ok {
			break
		}
		return StopResponse{Buses: info.Buses, RequestID: req.ID}

	case TypeRoute:
		route, ok := s.FindRoute(req.From, req.To)
		if !ok {
			break
		}
		return newRouteResponse(req.ID, route)

	default:
		return ErrorResponse{ErrorMessage: MessageUnsupported, RequestID: req.ID}
	}

	return ErrorResponse{ErrorMessage: MessageNotFound, RequestID: req.ID}
}

func newRouteResponse(id int, route router.Route) RouteResponse {
	out := RouteResponse{
		Items:     make([]RouteItem, 0, len(route.Items)),
		RequestID: id,
		TotalTime: route.TotalTime,
	}
	for _, it := range route.Items {
		item := RouteItem{Type: it.Kind.String(), Time: it.Time}
		if it.Kind == router.KindWait {
			item.StopName = it.StopName
		} else {
			item.Bus = it.BusName
			item.SpanCount = it.SpanCount
		}
		out.Items = append(out.Items, item)
	}

	return out
}

// Encode writes responses to w as an indented JSON array.
func Encode(w io.Writer, responses []Response) error {
	if responses == nil {
		responses = []Response{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	if err := enc.Encode(responses); err != nil {
		return pkgerrors.Wrap(err, "encode responses")
	}

	return nil
}
