package main

import (
	"flag"
	"time"

	"github.com/golang/glog"

	"liftsim/building"
	"liftsim/config"
	"liftsim/lift"
)

func main() {
	configPtr := flag.String("config", "", "Path to YAML configuration")
	envPtr := flag.String("env", ".env", "Path to optional .env override file")
	flag.Parse()
	defer glog.Flush()

	cfg, err := config.Load(*configPtr, *envPtr)
	if err != nil {
		glog.Exitf("loading configuration: %v", err)
	}

	b, err := building.New(cfg.BottomFloor, cfg.TopFloor, cfg.Lifts, lift.Timing{
		FloorTravel:  time.Duration(cfg.FloorTravel),
		DoorHold:     time.Duration(cfg.DoorHold),
		PollInterval: time.Duration(cfg.PollInterval),
	})
	if err != nil {
		glog.Exitf("constructing building: %v", err)
	}

	runTraffic(b, time.Duration(cfg.TrafficInterval))
}

// runTraffic submits a random passenger each tick, every fourth one a
// fully random trip and the rest ground-floor traffic, and logs a
// fleet snapshot after each submission.
func runTraffic(b *building.Building, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for trip := 0; ; trip++ {
		<-ticker.C

		var err error
		if trip%4 == 0 {
			_, err = b.Random()
		} else {
			_, err = b.RealisticRandom()
		}
		if err != nil {
			glog.Warningf("dispatch failed: %v", err)
		}

		b.LogState()
	}
}
