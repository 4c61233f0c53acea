package generate

import (
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
)

// Surface is the generator's display: it shows the current render (with a
// save banner when savedPath is non-empty) and hands back key events.
// NextKey may poll; it returns a negative value when no key is pending.
type Surface interface {
	Show(img *image.Gray, st State, savedPath string)
	NextKey() int
}

// App runs the interactive generator session: redraw on parameter change,
// save on demand, quit on q/ESC or an external interrupt.
type App struct {
	// Interrupt, when set, is polled between keys so process signals can
	// stop the session (the window itself only reports key presses).
	Interrupt func() bool

	// Verify, when set, decodes a freshly saved render to confirm it is
	// scannable; the result is only logged.
	Verify func(img image.Image) ([]string, error)

	state   State
	encoder Encoder
	surface Surface
	logger  *slog.Logger
}

// NewApp wires a generator session.
func NewApp(st State, enc Encoder, surface Surface, logger *slog.Logger) *App {
	return &App{state: st, encoder: enc, surface: surface, logger: logger}
}

// Run drives the session until quit. The returned error covers only
// display-independent failures; a failed save is logged and the session
// continues.
func (a *App) Run() error {
	redraw := true
	for {
		if redraw {
			a.surface.Show(Render(a.state, a.encoder), a.state, "")
			redraw = false
		}

		key := a.surface.NextKey()
		if a.Interrupt != nil && a.Interrupt() {
			return nil
		}
		if key < 0 {
			continue
		}

		switch a.state.HandleKey(key) {
		case ActionQuit:
			return nil
		case ActionRedraw:
			redraw = true
		case ActionSave:
			img := Render(a.state, a.encoder)
			path := a.state.FileName()
			if err := writePNG(path, img); err != nil {
				if a.logger != nil {
					a.logger.Error("save failed", slog.String("path", path), slog.String("error", err.Error()))
				}
				continue
			}
			if a.logger != nil {
				a.logger.Info("saved", slog.String("path", path))
			}
			a.verify(img, path)
			a.surface.Show(img, a.state, path)
		}
	}
}

func (a *App) verify(img *image.Gray, path string) {
	if a.Verify == nil || a.logger == nil {
		return
	}
	payloads, err := a.Verify(img)
	if err != nil {
		a.logger.Warn("saved image did not decode", slog.String("path", path), slog.String("error", err.Error()))
		return
	}
	a.logger.Info("saved image verified", slog.String("path", path), slog.Any("payloads", payloads))
}

func writePNG(path string, img *image.Gray) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
