// Command blockd renders the Blockd landing page in the terminal.
// Scrolling through the sections drives a color gradient that retints
// the background, the pointer glow, the scrollbar, and the status bar
// in sync.
package main

import (
	"fmt"
	"time"

	"github.com/alecthomas/kong"
	"github.com/gdamore/tcell/v2"

	"github.com/WillieTheWhale/blockd-landing/audio"
	"github.com/WillieTheWhale/blockd-landing/constants"
	"github.com/WillieTheWhale/blockd-landing/content"
	"github.com/WillieTheWhale/blockd-landing/engine"
	"github.com/WillieTheWhale/blockd-landing/events"
	"github.com/WillieTheWhale/blockd-landing/gradient"
	"github.com/WillieTheWhale/blockd-landing/logging"
	"github.com/WillieTheWhale/blockd-landing/render"
	"github.com/WillieTheWhale/blockd-landing/scroll"
)

var cli struct {
	FPS     int    `default:"30" help:"Frame rate cap."`
	Easing  string `default:"cubic" enum:"linear,quad-in,quad-out,cubic" help:"Blend factor easing."`
	Blend   string `default:"rgb" enum:"rgb,hcl" help:"Color mixing space."`
	Sound   bool   `default:"true" negatable:"" help:"Cue on section change."`
	Debug   bool   `help:"Enable debug logging."`
	LogFile string `help:"Log file path." type:"path"`
}

func main() {
	kctx := kong.Parse(&cli,
		kong.Name("blockd"),
		kong.Description("The Blockd landing page, in your terminal."),
	)
	kctx.FatalIfErrorf(run())
}

func run() error {
	if err := logging.Initialize(cli.Debug, cli.LogFile); err != nil {
		return err
	}

	specs := content.Sections()
	sections := make([]scroll.Section, len(specs))
	for i, s := range specs {
		sections[i] = scroll.Section{ID: s.ID, OrderIndex: i, Color: s.Color}
	}

	// Heights are provisional until the first resize event arrives
	tracker, err := scroll.NewTracker(scroll.Config{
		Sections: sections,
		Heights:  content.Layout(specs, 24),
	})
	if err != nil {
		return fmt.Errorf("failed to build tracker: %w", err)
	}

	stops := gradient.GenerateStops(content.OrderedIDs(specs), content.Palette(specs))

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init terminal: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.SetStyle(tcell.StyleDefault.Background(render.ToTcell(render.RgbBackground)))

	fps := cli.FPS
	if fps < 1 {
		fps = 1
	}
	if fps > constants.MaxFPS {
		fps = constants.MaxFPS
	}

	space := gradient.SpaceRGB
	if cli.Blend == "hcl" {
		space = gradient.SpaceHCL
	}

	clock := engine.NewSystemTime()
	queue := events.NewQueue()
	eng := engine.New(engine.Config{
		Tracker:      tracker,
		Stops:        stops,
		Easing:       gradient.ByName(cli.Easing),
		Space:        space,
		Queue:        queue,
		Clock:        clock,
		TickInterval: time.Second / time.Duration(fps),
		ReservedRows: 1, // status bar
		Layout: func(viewport int) []int {
			return content.Layout(specs, viewport)
		},
	})

	// Independent frame consumers; each projects one effect
	renderers := []render.Renderer{
		render.NewBackground(),
		render.NewSections(specs),
		render.NewGlow(),
		render.NewScrollbar(),
		render.NewStatusBar(specs),
	}
	cancelRender := eng.Subscribe(func(f engine.Frame) {
		for _, r := range renderers {
			r.Render(screen, f)
		}
		screen.Show()
	})
	defer cancelRender()

	if cli.Sound {
		player := audio.NewPlayer(clock)
		cancelCue := tracker.Subscribe(player.OnScroll)
		defer cancelCue()
	}

	// Seed the real terminal size before the first frame
	w, h := screen.Size()
	queue.Push(events.InputEvent{Type: events.EventResize, Width: w, Height: h})

	go pollInput(screen, queue)

	logging.Logger.Info("page up", "sections", len(specs), "fps", fps,
		"easing", cli.Easing, "blend", cli.Blend)
	eng.Run()
	return nil
}

// pollInput translates terminal events into input intents. Runs on its
// own goroutine; the queue is the only thing it shares with the loop.
func pollInput(screen tcell.Screen, queue *events.Queue) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return // screen finalized
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			handleKey(screen, queue, ev)
		case *tcell.EventMouse:
			x, y := ev.Position()
			queue.Push(events.InputEvent{Type: events.EventPointerMove, X: x, Y: y})
			switch {
			case ev.Buttons()&tcell.WheelUp != 0:
				queue.Push(events.InputEvent{Type: events.EventScrollBy, Delta: -3})
			case ev.Buttons()&tcell.WheelDown != 0:
				queue.Push(events.InputEvent{Type: events.EventScrollBy, Delta: 3})
			}
		case *tcell.EventResize:
			w, h := ev.Size()
			queue.Push(events.InputEvent{Type: events.EventResize, Width: w, Height: h})
		}
	}
}

func handleKey(screen tcell.Screen, queue *events.Queue, ev *tcell.EventKey) {
	_, h := screen.Size()
	page := scroll.PageDelta(h - 1)

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		queue.Push(events.InputEvent{Type: events.EventQuit})
	case tcell.KeyDown:
		queue.Push(events.InputEvent{Type: events.EventScrollBy, Delta: 1})
	case tcell.KeyUp:
		queue.Push(events.InputEvent{Type: events.EventScrollBy, Delta: -1})
	case tcell.KeyPgDn:
		queue.Push(events.InputEvent{Type: events.EventScrollBy, Delta: page})
	case tcell.KeyPgUp:
		queue.Push(events.InputEvent{Type: events.EventScrollBy, Delta: -page})
	case tcell.KeyHome:
		queue.Push(events.InputEvent{Type: events.EventScrollTo, Offset: 0})
	case tcell.KeyEnd:
		queue.Push(events.InputEvent{Type: events.EventScrollTo, Offset: 1 << 30})
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			queue.Push(events.InputEvent{Type: events.EventQuit})
		case 'j':
			queue.Push(events.InputEvent{Type: events.EventScrollBy, Delta: 1})
		case 'k':
			queue.Push(events.InputEvent{Type: events.EventScrollBy, Delta: -1})
		case ' ', 'f':
			queue.Push(events.InputEvent{Type: events.EventScrollBy, Delta: page})
		case 'b':
			queue.Push(events.InputEvent{Type: events.EventScrollBy, Delta: -page})
		case 'g':
			queue.Push(events.InputEvent{Type: events.EventScrollTo, Offset: 0})
		case 'G':
			queue.Push(events.InputEvent{Type: events.EventScrollTo, Offset: 1 << 30})
		}
	}
}
