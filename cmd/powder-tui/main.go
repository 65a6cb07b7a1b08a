package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"powder/internal/app"
	"powder/internal/core"
	"powder/internal/input"
	"powder/internal/sims/powder"
)

type config struct {
	tps       int
	brush     int
	seed      int64
	scene     string
	sound     bool
	overrides app.KVList
}

// host runs the simulation full screen in the terminal. Each terminal cell
// shows two grid rows through the upper-half-block glyph; the last row is
// the status line.
type host struct {
	screen tcell.Screen
	world  *powder.World
	simCfg powder.Config
	clock  *core.StepClock
	colors []tcell.Color

	stroke   input.Stroke
	brush    input.Brush
	painting bool

	selected int
	paused   bool
	seed     int64
	tick     uint64

	sound   bool
	audioOK bool
}

func newHost(cfg config) (*host, error) {
	m := map[string]string{
		"seed":  strconv.FormatInt(cfg.seed, 10),
		"scene": cfg.scene,
	}
	for k, v := range cfg.overrides.Map() {
		m[k] = v
	}
	simCfg := powder.FromMap(m)
	if !powder.KnownScene(simCfg.Scene) {
		return nil, fmt.Errorf("unknown scene %q (scenes: %s)", simCfg.Scene, strings.Join(powder.SceneNames(), ", "))
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()
	screen.HideCursor()

	h := &host{
		screen: screen,
		simCfg: simCfg,
		seed:   simCfg.Seed,
		clock:  core.NewStepClock(cfg.tps),
		brush:  input.Brush{Radius: cfg.brush},
		sound:  cfg.sound,
	}
	h.resize()

	for _, c := range powder.Colors() {
		h.colors = append(h.colors, tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
	}

	if cfg.sound {
		if err := h.initAudio(); err != nil {
			// Non-fatal, painting just stays silent.
			log.Printf("audio initialization failed: %v", err)
		}
	}
	return h, nil
}

func (h *host) initAudio() error {
	sr := beep.SampleRate(44100)
	if err := speaker.Init(sr, sr.N(time.Second/10)); err != nil {
		return err
	}
	h.audioOK = true
	return nil
}

func (h *host) blip() {
	if !h.audioOK {
		return
	}
	sr := beep.SampleRate(44100)
	tone, _ := generators.SineTone(sr, 660)
	speaker.Play(beep.Take(sr.N(40*time.Millisecond), tone))
}

// resize fits the grid to the terminal and restarts the current seed.
func (h *host) resize() {
	cols, rows := h.screen.Size()
	gw := cols
	gh := (rows - 1) * 2
	if gw < 1 {
		gw = 1
	}
	if gh < 1 {
		gh = 2
	}
	h.simCfg.Width = gw
	h.simCfg.Height = gh
	h.world = powder.NewWithConfig(h.simCfg)
	h.world.Reset(h.seed)
	h.tick = 0
	h.stroke.End()
	h.painting = false
}

func (h *host) run() {
	events := make(chan tcell.Event, 100)
	go func() {
		for {
			events <- h.screen.PollEvent()
		}
	}()

	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			if !h.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			if !h.paused {
				for h.clock.ShouldStep() {
					h.world.Step()
					h.tick++
				}
			}
			h.draw()
		}
	}
}

func (h *host) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() != tcell.KeyRune {
			return true
		}
		switch r := ev.Rune(); {
		case r == 'q':
			return false
		case r == ' ':
			if h.paused {
				h.clock.Settle()
			}
			h.paused = !h.paused
		case r == 'n':
			if h.paused {
				h.world.Step()
				h.tick++
			}
		case r == 'r':
			h.world.Reset(h.seed)
			h.tick = 0
		case r == 's':
			h.seed = time.Now().UnixNano()
			h.world.Reset(h.seed)
			h.tick = 0
		case r >= '1' && r <= '9':
			if idx := int(r - '1'); idx < len(powder.Paintable()) {
				h.selected = idx
			}
		}
	case *tcell.EventMouse:
		btns := ev.Buttons()
		left := btns&tcell.ButtonPrimary != 0
		right := btns&tcell.ButtonSecondary != 0
		if !left && !right {
			h.stroke.End()
			h.painting = false
			return true
		}
		if h.sound && !h.painting {
			h.blip()
		}
		h.painting = true
		tx, ty := ev.Position()
		h.paintAt(tx, ty, right && !left)
	case *tcell.EventResize:
		h.resize()
		h.screen.Sync()
	}
	return true
}

// paintAt maps a terminal cell onto the two grid rows it covers and runs the
// brush over the interpolated stroke.
func (h *host) paintAt(tx, ty int, erase bool) {
	kind := powder.Empty
	if !erase {
		kind = powder.Paintable()[h.selected]
	}
	for _, p := range h.stroke.Move(input.Point{X: tx, Y: ty * 2}) {
		h.brush.Each(p, func(x, y int) {
			h.world.Paint(x, y, kind)
		})
		h.brush.Each(input.Point{X: p.X, Y: p.Y + 1}, func(x, y int) {
			h.world.Paint(x, y, kind)
		})
	}
}

func (h *host) draw() {
	cells := h.world.Cells()
	size := h.world.Size()
	for ty := 0; ty < size.H/2; ty++ {
		top := ty * 2
		bot := top + 1
		for x := 0; x < size.W; x++ {
			fg := h.colors[cells[top*size.W+x]]
			bg := h.colors[cells[bot*size.W+x]]
			h.screen.SetContent(x, ty, '▀', nil, tcell.StyleDefault.Foreground(fg).Background(bg))
		}
	}
	h.drawStatus(size.H / 2)
	h.screen.Show()
}

func (h *host) drawStatus(row int) {
	kind := powder.Paintable()[h.selected]
	state := "running"
	if h.paused {
		state = "paused"
	}
	line := fmt.Sprintf(" %s  seed=%d  tick=%d  tps=%.0f  paint=%s  %s  [1-4] material [space] pause [n] step [r] replay [s] reseed [q] quit",
		h.simCfg.Scene, h.seed, h.tick, h.clock.MeasuredTPS(), kind, state)
	cols, _ := h.screen.Size()
	style := tcell.StyleDefault.Reverse(true)
	for x := 0; x < cols; x++ {
		r := ' '
		if x < len(line) {
			r = rune(line[x])
		}
		h.screen.SetContent(x, row, r, nil, style)
	}
}

func (h *host) cleanup() {
	if h.audioOK {
		speaker.Close()
	}
	h.screen.Fini()
}

func main() {
	var cfg config
	flag.IntVar(&cfg.tps, "tps", 60, "ticks per second")
	flag.IntVar(&cfg.brush, "brush", 1, "brush radius in cells")
	flag.Int64Var(&cfg.seed, "seed", 1337, "seed for simulation reset")
	flag.StringVar(&cfg.scene, "scene", "sandbox", "starting field ("+strings.Join(powder.SceneNames(), ", ")+")")
	flag.BoolVar(&cfg.sound, "sound", false, "audible blip when a stroke starts")
	flag.Var(&cfg.overrides, "set", "rule override in key=value form (repeatable)")
	flag.Parse()

	h, err := newHost(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "powder-tui: %v\n", err)
		os.Exit(1)
	}
	defer h.cleanup()

	h.run()
}
