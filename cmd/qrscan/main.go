// qrscan shows a live webcam feed and overlays decoded QR payloads,
// rolling latency/fps averages and a detection count on every frame.
//
// Usage: qrscan [--list] [0|1]
package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/k399z/qr-detection/capture"
	"github.com/k399z/qr-detection/config"
	"github.com/k399z/qr-detection/debug"
	"github.com/k399z/qr-detection/detect"
	"github.com/k399z/qr-detection/domain/scan"
	"github.com/k399z/qr-detection/term"
	"github.com/k399z/qr-detection/ui"
)

// Exit codes per the CLI contract.
const (
	exitOK          = 0
	exitNoCamera    = 1
	exitBadArgument = 2
	exitOpenFailed  = 3
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run keeps all resource acquisition behind defers so the terminal and
// the camera are released on every exit path before the process exits.
func run(args []string) int {
	logger := NewLogger(slog.LevelInfo)
	cfg := config.DefaultConfig()
	cfg.Debug = os.Getenv("QR_DEBUG") != ""
	_ = cfg.Validate()

	if len(args) >= 1 && args[0] == "--list" {
		listCameras(cfg.ProbeLimit)
		return exitOK
	}

	requested := -1
	if len(args) >= 1 {
		idx, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, "only camera index 0 or 1 is supported (file/image/URL inputs are not).")
			return exitBadArgument
		}
		if idx < 0 || idx > 1 {
			fmt.Fprintf(os.Stderr, "invalid camera index %d: only 0 or 1 is supported.\n", idx)
			return exitBadArgument
		}
		requested = idx
	}

	var (
		cam *capture.Camera
		err error
	)
	if requested >= 0 {
		cam, err = capture.OpenCamera(requested, cfg.FrameWidth, cfg.FrameHeight, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "unable to open camera index %d (only 0 or 1 is supported).\n", requested)
			return exitOpenFailed
		}
	} else {
		cam, err = capture.OpenFirst([]int{0, 1}, cfg.FrameWidth, cfg.FrameHeight, logger)
		if err != nil {
			fmt.Fprintln(os.Stderr, "unable to open a camera (tried /dev/video0 and /dev/video1).")
			fmt.Fprintln(os.Stderr, "hints:")
			fmt.Fprintln(os.Stderr, "  1) run: qrscan --list to see available devices (indices 0 and 1 only)")
			fmt.Fprintln(os.Stderr, "  2) pick one: qrscan 0  or  qrscan 1")
			fmt.Fprintln(os.Stderr, "  3) file/image/URL inputs are not supported")
			return exitNoCamera
		}
	}
	defer cam.Close()

	if cfg.Debug {
		debug.StartMemLogger(2*time.Second, logger)
	}

	detector := detect.NewQRCode()
	defer detector.Close()

	window := ui.NewWindow(cfg.WindowTitle)
	defer window.Close()

	var pollers []scan.ExitPoller

	session, err := term.Open(int(os.Stdin.Fd()))
	if err != nil {
		logger.Warn("raw terminal unavailable; terminal keys disabled", slog.String("error", err.Error()))
	} else {
		defer session.Restore()
		pollers = append(pollers, scan.KeyPoller(session.PollKey))
	}

	flag := &scan.SignalFlag{}
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	go func() {
		<-sigCh
		flag.Set()
	}()
	pollers = append(pollers, flag)

	loop := scan.NewLoop(
		cam,
		detector,
		window,
		scan.NewMonitor(pollers...),
		scan.NewFrameStats(
			scan.Weights{History: cfg.LatencySmoothing, Sample: cfg.LatencySampleGain},
			scan.Weights{History: cfg.FpsSmoothing, Sample: cfg.FpsSampleGain},
		),
		logger,
	)

	logger.Info("scanning", slog.Int("camera", cam.Index()))
	frames := loop.Run()
	logger.Info("scan finished", slog.Int("frames", frames))
	return exitOK
}

func listCameras(limit int) {
	fmt.Println("Probing V4L2 cameras...")
	for _, r := range capture.Probe(limit) {
		if !r.Available {
			continue
		}
		fmt.Printf(" - /dev/video%d (opened)", r.Index)
		if r.Width > 0 && r.Height > 0 {
			fmt.Printf(" default %dx%d", r.Width, r.Height)
		}
		fmt.Println()
	}
}
