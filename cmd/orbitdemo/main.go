package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	kitlog "github.com/go-kit/kit/log"
	"github.com/robert-jeffrey/orbits"
)

// This code effectively only reads the scenario file, computes both orbits and exports them.

const defaultScenario = "~~unset~~"

var (
	scenario string
	verbose  bool
)

func init() {
	flag.StringVar(&scenario, "scenario", defaultScenario, "scenario TOML file")
	flag.BoolVar(&verbose, "verbose", false, "log the inputs and every computed quantity")
}

func main() {
	flag.Parse()
	if scenario == defaultScenario {
		log.Fatal("no scenario provided")
	}
	sc, exp, err := orbits.LoadScenario(scenario)
	if err != nil {
		log.Fatalf("%s: %s", scenario, err)
	}
	klog := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout))
	klog = kitlog.With(klog, "scenario", scenario, "body", sc.Body.Name)
	sc.SetLogger(klog)
	if verbose {
		klog.Log("level", "debug", "subsys", "conf", "radius", sc.Radius, "speed", sc.Speed, "γ(deg)", orbits.Rad2deg180(sc.FlightAngle), "maneuver", sc.Maneuver)
	}

	res, err := sc.Run()
	if err != nil {
		log.Fatalf("could not compute scenario: %s", err)
	}
	fmt.Printf("before: %s\n\t%s\n", res.Initial, res.InitialElements)
	fmt.Printf("after:  %s\n\t%s\n", res.Final, res.FinalElements)
	if verbose {
		if T, ok := res.FinalElements.Period(sc.Body.GM()); ok {
			klog.Log("level", "debug", "subsys", "astro", "period", T, "energy", res.FinalElements.Energy(sc.Body.GM()))
		}
	}

	paths, err := orbits.Export(res, exp, time.Now())
	if err != nil {
		log.Fatalf("export failed: %s", err)
	}
	for _, path := range paths {
		klog.Log("level", "info", "subsys", "export", "file", path)
	}
}
