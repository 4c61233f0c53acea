// qrgen renders a QR code for a payload in an interactive window; every
// encoding parameter is adjusted with keyboard shortcuts and the current
// render can be saved as a PNG.
//
// Usage: qrgen [-t|--text <payload>] [-o|--output <path>]
package main

import (
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/k399z/qr-detection/domain/generate"
	"github.com/k399z/qr-detection/domain/scan"
	"github.com/k399z/qr-detection/encode"
	"github.com/k399z/qr-detection/ui"
)

const windowTitle = "QR Code Generator"

func main() {
	os.Exit(run())
}

func run() int {
	logger := NewLogger(slog.LevelInfo)

	var text, output string
	flag.StringVar(&text, "t", "", "initial payload text")
	flag.StringVar(&text, "text", "", "initial payload text")
	flag.StringVar(&output, "o", "", "save path (defaults to an auto-generated name)")
	flag.StringVar(&output, "output", "", "save path (defaults to an auto-generated name)")
	flag.Parse()

	state := generate.NewState()
	if text != "" {
		state.Text = text
	}
	state.OutputPath = output

	window := ui.NewGeneratorWindow(windowTitle)
	defer window.Close()

	sigFlag := &scan.SignalFlag{}
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	go func() {
		<-sigCh
		sigFlag.Set()
	}()

	app := generate.NewApp(state, encode.NewZXing(), window, logger)
	app.Interrupt = sigFlag.PollExitIntent
	app.Verify = encode.DecodePayloads

	if err := app.Run(); err != nil {
		logger.Error("generator failed", slog.String("error", err.Error()))
		return 1
	}
	return 0
}
