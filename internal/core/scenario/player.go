package scenario

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/hay-kot/banners/internal/core/banner"
	"github.com/hay-kot/banners/internal/core/config"
	"github.com/hay-kot/banners/internal/core/logging"
)

// Player runs a scenario against an engine. Every step runs as a scheduler
// callback, so the player shares the engine's event loop.
type Player struct {
	sched    banner.Scheduler
	engine   *banner.Engine
	cfg      *config.Config
	onAction func(label string)
	log      zerolog.Logger

	remaining int
	done      chan struct{}
	closeOnce sync.Once
}

// NewPlayer returns a player driving engine. onAction receives the label of
// every action that fires.
func NewPlayer(sched banner.Scheduler, engine *banner.Engine, cfg *config.Config, onAction func(label string)) *Player {
	return &Player{
		sched:    sched,
		engine:   engine,
		cfg:      cfg,
		onAction: onAction,
		log:      logging.Component("scenario"),
		done:     make(chan struct{}),
	}
}

// Schedule queues every step of sc relative to now. Call it on the event
// loop. The returned timers cancel the steps that have not run yet.
func (p *Player) Schedule(ctx context.Context, sc Scenario) []banner.Timer {
	ctx = logging.WithScenario(ctx, sc.Name)

	steps := sc.sortedSteps()
	p.remaining = len(steps)
	if p.remaining == 0 {
		p.finish()
		return nil
	}

	// Steps sharing an offset run in one callback, in file order.
	var timers []banner.Timer
	for i := 0; i < len(steps); {
		j := i
		for j < len(steps) && steps[j].At == steps[i].At {
			j++
		}

		first := i
		group := steps[i:j]
		timers = append(timers, p.sched.After(steps[i].At, func() {
			for k, step := range group {
				p.run(logging.WithStep(ctx, first+k), step)
			}
		}))
		i = j
	}
	return timers
}

// Observe is the engine observer hook. It lets the player notice when the
// engine settles after the last step.
func (p *Player) Observe(ev banner.Event) {
	if ev.Kind == banner.EventDetached || ev.Kind == banner.EventDropped {
		p.sched.After(0, p.check)
	}
}

// Done is closed once every step has run and the engine is idle with no
// request waiting.
func (p *Player) Done() <-chan struct{} {
	return p.done
}

func (p *Player) run(ctx context.Context, step Step) {
	p.log.Debug().Ctx(ctx).Str("kind", step.Kind()).Dur("at", step.At).Msg("run step")

	switch {
	case step.Show != nil:
		p.engine.Show(step.Show.Request(p.cfg, p.onAction))
	case step.Tap:
		p.engine.Tap()
	case step.Dismiss:
		p.engine.Dismiss()
	}

	p.remaining--
	p.check()
}

func (p *Player) check() {
	if p.remaining > 0 || p.engine.State() != banner.StateIdle {
		return
	}
	if _, ok := p.engine.Pending(); ok {
		return
	}
	p.finish()
}

func (p *Player) finish() {
	p.closeOnce.Do(func() { close(p.done) })
}
