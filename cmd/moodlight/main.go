package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/host/v3"

	"github.com/coreman2200/moodlight"
	"github.com/coreman2200/moodlight/internal/config"
	"github.com/coreman2200/moodlight/internal/cycle"
	"github.com/coreman2200/moodlight/internal/led"
	"github.com/coreman2200/moodlight/internal/ws"
	"github.com/coreman2200/moodlight/model"
)

// opener picks the transmitter for a driver name.
type opener func(driver string, freqKHz int) moodlight.Transmitter

func main() {
	// ---- Logging ----
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})

	if err := run(os.Args[1:], openTransmitter); err != nil {
		log.Fatal().Err(err).Msg("stopped")
	}
}

// run owns the transmitter for its whole lifetime, so every return path
// halts the strip and releases the port.
func run(args []string, open opener) error {
	// ---- Flags (config.yaml overrides them) ----
	def := config.Default()
	fs := flag.NewFlagSet("moodlight", flag.ContinueOnError)
	var (
		driver     = fs.String("driver", def.Driver, "driver: gpio | spi | sim")
		pin        = fs.String("pin", def.Pin, "pin identifier (gpio name, or spi port for -driver=spi)")
		brightness = fs.Int("brightness", *def.Brightness, "brightness 0..255 (masked to 8 bits)")
		freqKHz    = fs.Int("freq-khz", def.FreqKHz, "NRZ bit rate in kHz")
		colorArg   = fs.String("color", "", "color to show: name, #rrggbb, rgb(r,g,b) or hsl(h,s,l)")
		clearStrip = fs.Bool("clear", false, "turn the strip off")
		runCycle   = fs.Bool("cycle", false, "sweep the hue wheel until interrupted")
		addr       = fs.String("addr", "", "control surface listen address, e.g. :8080")
		configPath = fs.String("config", "config.yaml", "path to config.yaml")
		simOnly    = fs.Bool("sim-only", false, "force simulation (no hardware output)")
		debug      = fs.Bool("debug", false, "log every frame")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	// ---- Load config.yaml (optional) ----
	var file *config.Config
	if c, err := config.Load(*configPath); err != nil {
		log.Warn().Err(err).Str("path", *configPath).Msg("config load failed; proceeding with flags")
	} else {
		file = c
	}

	flags := *def
	flags.Driver, flags.Pin, flags.FreqKHz = *driver, *pin, *freqKHz
	flags.Brightness = brightness
	flags.Color, flags.Addr = *colorArg, *addr
	eff := config.Effective(flags, file, *simOnly)

	tx := open(eff.Driver, eff.FreqKHz)
	defer func() {
		if err := tx.Close(); err != nil {
			log.Warn().Err(err).Msg("transmitter close")
		}
	}()

	ctrl := moodlight.New(tx, eff.Pin)
	ctrl.SetLogger(log.Logger)
	ctrl.SetBrightness(*eff.Brightness)
	log.Info().
		Str("driver", eff.Driver).
		Str("pin", eff.Pin).
		Uint8("brightness", ctrl.Brightness()).
		Msg("strip ready")

	// ---- One-shot operations ----
	if *clearStrip {
		if err := ctrl.Clear(); err != nil {
			return fmt.Errorf("clear: %w", err)
		}
	}
	if eff.Color != "" {
		c, err := model.ParseColor(eff.Color)
		if err != nil {
			return fmt.Errorf("-color: %w", err)
		}
		if err := ctrl.ShowColor(c); err != nil {
			return fmt.Errorf("show %s: %w", c, err)
		}
		log.Info().Stringer("color", c).Msg("color shown")
	}
	if !*runCycle && eff.Addr == "" {
		return nil
	}

	// ---- Long running: control surface and/or hue cycle ----
	strip := moodlight.Synchronized(ctrl)
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	g, ctx := errgroup.WithContext(ctx)

	if eff.Addr != "" {
		srv := ws.NewServer(strip, moodlight.PixelCount)
		srv.Log = log.Logger
		srv.ConfigPath = *configPath
		srv.Config = persisted(flags, file)
		hs := &http.Server{
			Addr:         eff.Addr,
			Handler:      withCORS(srv.Handler()),
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		}
		g.Go(func() error {
			log.Info().Str("addr", eff.Addr).Msg("HTTP server starting")
			if err := hs.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
		g.Go(func() error {
			<-ctx.Done()
			return hs.Close()
		})
	}
	if *runCycle {
		l := cycle.New(strip)
		l.Period = time.Duration(eff.Cycle.PeriodMs) * time.Millisecond
		l.Step = eff.Cycle.StepDeg
		if eff.Cycle.Saturation != nil {
			l.Saturation = *eff.Cycle.Saturation
		}
		if eff.Cycle.Luminosity != nil {
			l.Luminosity = *eff.Cycle.Luminosity
		}
		l.Log = log.Logger
		g.Go(func() error { return l.Run(ctx) })
	}

	err := g.Wait()
	log.Info().Msg("shutting down")
	if cerr := strip.Clear(); cerr != nil {
		log.Warn().Err(cerr).Msg("clear on shutdown")
	}
	return err
}

// persisted is what the control surface writes back on a brightness change:
// the running hardware and cycle settings, without -sim-only and without
// one-shot flags that were never in the file.
func persisted(flags config.Config, file *config.Config) *config.Config {
	c := config.Effective(flags, file, false)
	c.Color, c.Addr = "", ""
	if file != nil {
		c.Color, c.Addr = file.Color, file.Addr
	}
	return c
}

// openTransmitter falls back to the console simulator whenever hardware
// cannot be initialized.
func openTransmitter(driver string, freqKHz int) moodlight.Transmitter {
	opts := led.Opts(moodlight.PixelCount, physic.Frequency(freqKHz)*physic.KiloHertz)
	switch driver {
	case "sim":
		return led.NewSim(moodlight.PixelCount)
	case "gpio", "spi":
		if _, err := host.Init(); err != nil {
			log.Warn().Err(err).Str("driver", driver).Msg("host init failed; falling back to SIM")
			return led.NewSim(moodlight.PixelCount)
		}
		if driver == "spi" {
			return led.NewSPI(opts)
		}
		return led.NewGPIO(opts)
	default:
		log.Warn().Str("driver", driver).Msg("unknown driver; using SIM")
		return led.NewSim(moodlight.PixelCount)
	}
}

func withCORS(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(200)
			return
		}
		h.ServeHTTP(w, r)
	})
}
