package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/subtlepseudonym/sundial"
	"github.com/subtlepseudonym/sundial/config"
	"github.com/subtlepseudonym/sundial/solar"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
)

const (
	defaultConfigFile = "sundial.cfg"
	defaultListenAddr = ":9000"

	sunrisePrefix = "@sunrise"
	sunsetPrefix  = "@sunset"
)

type Job struct {
	Name     string
	Location sundial.Location
	Clock    sundial.Clock
}

func (j Job) Run() {
	report, err := observe(j.Clock, j.Location)
	if err != nil {
		log.Printf("ERR: %s: %s", j.Name, err)
		return
	}

	log.Printf("%s: declination %.4f, right ascension %.4f, equation of time %.4fm",
		j.Name, report.Declination, report.RightAscension, report.EquationOfTime)
}

// observe builds a position report for the current instant at the
// given location.
func observe(clock sundial.Clock, location sundial.Location) (sundial.PositionReport, error) {
	now, err := clock.Now()
	if err != nil {
		return sundial.PositionReport{}, fmt.Errorf("read clock: %w", err)
	}

	offset, err := sundial.LocalOffset(clock, now)
	if err != nil {
		return sundial.PositionReport{}, fmt.Errorf("derive offset: %w", err)
	}

	utc, err := clock.Breakdown(now, false)
	if err != nil {
		return sundial.PositionReport{}, fmt.Errorf("utc breakdown: %w", err)
	}

	obs := sundial.Observation{
		Location:  location,
		Instant:   solar.NewInstant(now, offset),
		Threshold: solar.Official,
	}
	return obs.ReportAt(utc), nil
}

// parseSchedule recognizes the "@sunrise"/"@sunset" prefixes with
// an optional offset duration, falling back to a standard cron spec.
func parseSchedule(spec string, location sundial.Location) (cron.Schedule, error) {
	var event sundial.Event
	switch {
	case strings.HasPrefix(spec, sunrisePrefix):
		event = sundial.EventSunrise
	case strings.HasPrefix(spec, sunsetPrefix):
		event = sundial.EventSunset
	default:
		return cron.ParseStandard(spec)
	}

	var offset time.Duration
	s := strings.Split(spec, " ")
	if len(s) > 1 {
		var err error
		offset, err = time.ParseDuration(s[1])
		if err != nil {
			return nil, fmt.Errorf("parse %s offset: %w", event, err)
		}
	}

	return sundial.SunSchedule{
		Location: location,
		Event:    event,
		Offset:   offset,
	}, nil
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}

	// manually set local timezone for docker container
	if tz := os.Getenv("TZ"); tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			log.Fatalf("ERR: load tz location: %s", err)
		}
		time.Local = loc
	}

	configFile := os.Getenv("SUNDIAL_CONFIG")
	if configFile == "" {
		configFile = defaultConfigFile
	}

	config, err := config.Open(configFile)
	if err != nil {
		log.Fatalf("ERR: read config file failed: %s", err)
	}
	if err := config.Validate(); err != nil {
		log.Fatalf("ERR: validate config: %s", err)
	}

	clock := sundial.SystemClock{}

	now := time.Now() // used for logging cron entries
	reportCron := cron.New()
	for _, job := range config.Jobs {
		schedule, err := parseSchedule(job.Schedule, config.Location)
		if err != nil {
			log.Printf("ERR: parse schedule: %s", err)
			continue
		}

		job := Job{
			Name:     job.Name,
			Location: config.Location,
			Clock:    clock,
		}
		reportCron.Schedule(schedule, job)

		log.Printf("job: %s: %s", schedule.Next(now).Local().Format(time.RFC3339), job.Name)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/position", func(w http.ResponseWriter, r *http.Request) {
		report, err := observe(clock, config.Location)
		if err != nil {
			log.Printf("ERR: observe: %s", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(report)
		if err != nil {
			log.Printf("ERR: encode report: %s", err)
		}
	})
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	listenAddr := config.Listen
	if listenAddr == "" {
		listenAddr = defaultListenAddr
	}

	srv := http.Server{
		Addr:    listenAddr,
		Handler: mux,
	}
	log.Printf("listening on %s", srv.Addr)

	reportCron.Start()
	log.Fatal(srv.ListenAndServe())
}
