package main

import (
	"flag"
	"log"
	"net/http"
	"os"
	"time"

	kitlog "github.com/go-kit/kit/log"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/robert-jeffrey/orbits"
	"golang.org/x/time/rate"
)

// Serves the interactive controls: each message carries the slider values and gets both orbits back.

var (
	addr     string
	bodyName string
	radius   float64
	points   int
	perSec   float64
	burst    int
)

func init() {
	flag.StringVar(&addr, "addr", ":8080", "listen address")
	flag.StringVar(&bodyName, "body", "unit", "central body")
	flag.Float64Var(&radius, "radius", 0, "position radius (defaults to the body radius)")
	flag.IntVar(&points, "points", orbits.DefaultLocusPoints, "default number of locus segments")
	flag.Float64Var(&perSec, "rate", 30, "maximum recomputations per second and per connection")
	flag.IntVar(&burst, "burst", 5, "recomputation burst per connection")
}

func main() {
	flag.Parse()
	body, err := orbits.CelestialObjectFromString(bodyName)
	if err != nil {
		log.Fatal(err)
	}
	if radius <= 0 {
		radius = body.Radius
	}
	metrics, err := newRecomputeCollector(prometheus.DefaultRegisterer)
	if err != nil {
		log.Fatalf("could not register metrics: %s", err)
	}
	klog := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout))
	klog = kitlog.With(klog, "ts", kitlog.DefaultTimestampUTC, "body", body.Name)

	s := &server{
		body:   body,
		radius: radius,
		points: points,
		limit:  rate.Limit(perSec),
		burst:  burst,
		upgrader: websocket.Upgrader{
			// The controls may be served from anywhere.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		metrics: metrics,
		logger:  klog,
	}
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.routes(prometheus.DefaultGatherer),
		ReadHeaderTimeout: 10 * time.Second,
	}
	klog.Log("level", "notice", "subsys", "http", "addr", addr, "status", "listening")
	if err := srv.ListenAndServe(); err != nil {
		log.Fatal(err)
	}
}
