// Package audio plays a short cue when the active section changes.
// It is one more independent consumer of the published scroll state;
// the engine does not know it exists.
package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/WillieTheWhale/blockd-landing/constants"
	"github.com/WillieTheWhale/blockd-landing/engine"
	"github.com/WillieTheWhale/blockd-landing/logging"
	"github.com/WillieTheWhale/blockd-landing/scroll"
)

// Player tracks section changes and plays a debounced cue for each one
type Player struct {
	clock   engine.TimeSource
	enabled bool
	rate    beep.SampleRate

	lastSection string
	lastCue     time.Time
}

// NewPlayer initializes the speaker. Failure is non-fatal: the page runs
// silent and the player keeps tracking state.
func NewPlayer(clock engine.TimeSource) *Player {
	p := &Player{
		clock: clock,
		rate:  beep.SampleRate(constants.AudioSampleRate),
	}
	if err := speaker.Init(p.rate, p.rate.N(time.Second/10)); err != nil {
		logging.Logger.Warn("speaker init failed, running silent", "error", err)
		return p
	}
	p.enabled = true
	return p
}

// OnScroll is the scroll state subscriber
func (p *Player) OnScroll(st scroll.State) {
	p.SectionChanged(st.ActiveSectionID)
}

// SectionChanged cues when the active section actually changed. The first
// observation seeds the baseline without a cue, and cues inside the
// debounce window are dropped so flinging through sections stays quiet.
func (p *Player) SectionChanged(id string) {
	if id == p.lastSection {
		return
	}
	if p.lastSection == "" {
		p.lastSection = id
		return
	}
	p.lastSection = id

	now := p.clock.Now()
	if now.Sub(p.lastCue) < constants.MinCueGap {
		return
	}
	p.lastCue = now
	p.play()
}

func (p *Player) play() {
	if !p.enabled {
		return
	}
	sine, err := generators.SineTone(p.rate, constants.CueToneHz)
	if err != nil {
		logging.Logger.Warn("cue generation failed", "error", err)
		return
	}
	cue := beep.Take(p.rate.N(constants.CueDuration), sine)
	speaker.Play(&effects.Volume{
		Streamer: cue,
		Base:     2,
		Volume:   constants.CueVolume,
	})
}
