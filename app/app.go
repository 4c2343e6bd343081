package app

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"os"
	"strings"
	"time"

	"galaxyplot/catalog"
	"galaxyplot/figure"
	"galaxyplot/hal"
	"galaxyplot/internal/logging"
)

// User-visible text.
const (
	PromptTitle        = "Galaxy Selection"
	PromptText         = "Enter galaxy (M31 or Milky Way):"
	NoticeUnrecognized = "Galaxy not recognized."
)

// Options controls one run.
type Options struct {
	// Galaxy, when set, is used instead of asking.
	Galaxy string
	// Headless reads the prompt from the console instead of the window.
	Headless bool
	// Out, when set, receives the rendered figure as PNG.
	Out string

	Log *slog.Logger
}

// Plotter looks galaxies up and lays out their figure.
type Plotter struct {
	cat  *catalog.Catalog
	comp catalog.Composition
	out  hal.Logger
	log  *slog.Logger
}

func NewPlotter(cat *catalog.Catalog, comp catalog.Composition, out hal.Logger, log *slog.Logger) *Plotter {
	if log == nil {
		log = logging.Discard()
	}
	return &Plotter{cat: cat, comp: comp, out: out, log: log}
}

// Plot builds the three-panel figure for name. Unknown names print the
// notice on the console and return ok == false; that is not an error.
func (p *Plotter) Plot(name string) (fig figure.Figure, ok bool) {
	g, err := p.cat.Lookup(name)
	if errors.Is(err, catalog.ErrUnrecognizedGalaxy) {
		if p.out != nil {
			p.out.WriteLineString(NoticeUnrecognized)
		}
		logging.LogOperation(p.log, "galaxy not recognized", slog.String("input", name))
		return figure.Figure{}, false
	}
	if err != nil {
		logging.LogError(p.log, "lookup failed", err, slog.String("input", name))
		return figure.Figure{}, false
	}
	return figure.Build(g, p.comp), true
}

type state uint8

const (
	statePrompt state = iota
	stateShow
	stateDone
)

type system struct {
	h       hal.HAL
	opts    Options
	log     *slog.Logger
	plotter *Plotter

	fb      hal.Framebuffer
	d       *fbDisplay
	events  <-chan hal.KeyEvent
	console hal.Console

	state  state
	prompt *prompt
}

// New wires the plotter to h and returns the per-tick step function the hal
// runners drive. The step returns hal.ErrQuit when the run is over.
func New(h hal.HAL, cat *catalog.Catalog, comp catalog.Composition, opts Options) func() error {
	s := newSystem(h, cat, comp, opts)
	return recoverStep(h, s.step)
}

func newSystem(h hal.HAL, cat *catalog.Catalog, comp catalog.Composition, opts Options) *system {
	log := opts.Log
	if log == nil {
		log = logging.Discard()
	}
	s := &system{
		h:       h,
		opts:    opts,
		log:     log,
		plotter: NewPlotter(cat, comp, h.Logger(), log),
		prompt:  newPrompt(PromptTitle, PromptText),
	}
	if disp := h.Display(); disp != nil {
		s.fb = disp.Framebuffer()
		if s.fb != nil {
			s.d = newFBDisplay(s.fb)
		}
	}
	if in := h.Input(); in != nil {
		if kbd := in.Keyboard(); kbd != nil {
			s.events = kbd.Events()
		}
		s.console = in.Console()
	}
	return s
}

func (s *system) step() error {
	switch s.state {
	case statePrompt:
		return s.stepPrompt()
	case stateShow:
		return s.stepShow()
	default:
		return hal.ErrQuit
	}
}

func (s *system) stepPrompt() error {
	if s.opts.Galaxy != "" {
		return s.submit(s.opts.Galaxy)
	}
	if s.opts.Headless {
		return s.stepConsolePrompt()
	}

	if s.d == nil || s.events == nil {
		return errors.New("app: window prompt needs a framebuffer and keyboard")
	}
	s.drainEvents(s.prompt.handle)
	switch {
	case s.prompt.dismissed:
		logging.LogOperation(s.log, "prompt dismissed")
		return s.finish()
	case s.prompt.submitted:
		return s.submit(s.prompt.value())
	}
	if s.prompt.dirty {
		drawPrompt(s.d, s.prompt)
		s.prompt.dirty = false
		return s.fb.Present()
	}
	return nil
}

func (s *system) stepConsolePrompt() error {
	if s.console == nil {
		return errors.New("app: headless prompt needs a console")
	}
	s.h.Logger().WriteLineString(PromptText)
	line, ok, err := s.console.ReadLine()
	if err != nil {
		return fmt.Errorf("read prompt: %w", err)
	}
	if !ok {
		logging.LogOperation(s.log, "prompt dismissed")
		return s.finish()
	}
	return s.submit(line)
}

// submit runs plot_galaxy for raw input.
func (s *system) submit(raw string) error {
	name := strings.TrimSpace(raw)
	if name == "" {
		logging.LogOperation(s.log, "empty input")
		return s.finish()
	}

	start := time.Now()
	fig, ok := s.plotter.Plot(name)
	if !ok {
		return s.finish()
	}

	width, height := hal.DefaultWidth, hal.DefaultHeight
	if s.fb != nil {
		width, height = s.fb.Width(), s.fb.Height()
	}
	img, err := figure.Render(fig, width, height)
	if err != nil {
		logging.LogError(s.log, "render failed", err, slog.String("galaxy", name))
		return fmt.Errorf("render %s: %w", name, err)
	}
	logging.LogOperation(s.log, "figure rendered",
		slog.String("galaxy", name),
		slog.Int("panels", len(fig.Panels)),
		slog.Duration("duration", time.Since(start)))

	if s.opts.Out != "" {
		if err := writePNG(s.opts.Out, img); err != nil {
			logging.LogError(s.log, "write figure failed", err, slog.String("path", s.opts.Out))
			return err
		}
		logging.LogOperation(s.log, "figure written", slog.String("path", s.opts.Out))
	}

	if s.fb != nil {
		hal.BlitImage(s.fb, img, 0, 0)
		if err := s.fb.Present(); err != nil {
			return err
		}
	}
	if s.opts.Headless {
		return s.finish()
	}
	s.state = stateShow
	return nil
}

// stepShow keeps the figure up until the window closes or Escape is pressed.
func (s *system) stepShow() error {
	quit := false
	s.drainEvents(func(ev hal.KeyEvent) {
		if ev.Press && ev.Code == hal.KeyEscape {
			quit = true
		}
	})
	if quit {
		return s.finish()
	}
	return nil
}

func (s *system) finish() error {
	s.state = stateDone
	return hal.ErrQuit
}

func (s *system) drainEvents(fn func(hal.KeyEvent)) {
	if s.events == nil {
		return
	}
	for {
		select {
		case ev := <-s.events:
			fn(ev)
		default:
			return
		}
	}
}

func writePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	return figure.EncodePNG(f, img)
}
