package main

import (
	"errors"
	"net/http"
	"time"

	kitlog "github.com/go-kit/kit/log"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robert-jeffrey/orbits"
	"golang.org/x/time/rate"
)

const maxLocusPoints = 20000

// request is sent by the controls on every change. Speeds are in units of the circular speed at the position
// radius, angles in degrees.
type request struct {
	Speed        float64 `json:"speed"`
	Angle        float64 `json:"angle"`
	Impulse      float64 `json:"impulse"`
	ImpulseAngle float64 `json:"impulseAngle"`
	Points       int     `json:"points,omitempty"`
	Polar        bool    `json:"polar,omitempty"`
}

type response struct {
	Result *orbits.ResultDocument `json:"result,omitempty"`
	Error  string                 `json:"error,omitempty"`
}

type server struct {
	body     orbits.CelestialObject
	radius   float64
	points   int
	limit    rate.Limit
	burst    int
	upgrader websocket.Upgrader
	metrics  *recomputeCollector
	logger   kitlog.Logger
}

func (s *server) routes(gatherer prometheus.Gatherer) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWS)
	mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	return mux
}

// handleWS answers every request with both recomputed orbits, throttled per connection.
func (s *server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Log("level", "warning", "subsys", "ws", "remote", r.RemoteAddr, "err", err)
		return
	}
	defer conn.Close()
	s.logger.Log("level", "info", "subsys", "ws", "remote", r.RemoteAddr, "status", "connected")

	limiter := rate.NewLimiter(s.limit, s.burst)
	for {
		var req request
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Log("level", "warning", "subsys", "ws", "remote", r.RemoteAddr, "err", err)
			}
			return
		}
		if err := limiter.Wait(r.Context()); err != nil {
			return
		}
		if err := conn.WriteJSON(s.recompute(req)); err != nil {
			s.logger.Log("level", "warning", "subsys", "ws", "remote", r.RemoteAddr, "err", err)
			return
		}
	}
}

func (s *server) recompute(req request) response {
	start := time.Now()
	vcirc := s.body.CircularSpeed(s.radius)
	mnv := orbits.NewManeuver(req.Impulse*vcirc, orbits.Deg2rad(req.ImpulseAngle))
	// No logger: the recompute loop reports through its metrics.
	sc := &orbits.Scenario{
		Body:        s.body,
		Radius:      s.radius,
		Speed:       req.Speed * vcirc,
		FlightAngle: orbits.Deg2rad(req.Angle),
		Maneuver:    mnv,
		LocusPoints: s.points,
		Polar:       req.Polar,
	}
	if req.Points > 0 {
		sc.LocusPoints = min(req.Points, maxLocusPoints)
	}

	res, err := sc.Run()
	if err != nil {
		outcome := "error"
		if errors.Is(err, orbits.ErrInvalidParameter) {
			outcome = "invalid"
		}
		s.metrics.observe(outcome, time.Since(start))
		return response{Error: err.Error()}
	}
	doc := orbits.NewResultDocument(res, start)
	s.metrics.observe("ok", time.Since(start))
	return response{Result: &doc}
}
