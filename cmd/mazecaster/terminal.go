package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"os/signal"
	"syscall"
	"time"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/taigrr/mazecaster/pkg/audio"
	"github.com/taigrr/mazecaster/pkg/player"
	"github.com/taigrr/mazecaster/pkg/render"
)

// action is one input command produced by the event goroutine and applied by
// the frame loop before rendering.
type action int

const (
	actionNone action = iota // unbound key; still ends the intro
	actionForward
	actionBackward
	actionTurnLeft
	actionTurnRight
	actionStrafeLeft
	actionStrafeRight
	actionToggleMinimap
	actionToggleHUD
	actionToggleMusic
	actionReset
	actionVolumeUp
	actionVolumeDown
)

// volumeSteps is the number of volume key presses from silent to full.
const volumeSteps = 10

// resize carries a new terminal size to the frame loop.
type resize struct {
	width, height int
}

// keyActions maps key names to actions.
var keyActions = []struct {
	keys   []string
	action action
}{
	{[]string{"w", "up"}, actionForward},
	{[]string{"s", "down"}, actionBackward},
	{[]string{"a", "left"}, actionTurnLeft},
	{[]string{"d", "right"}, actionTurnRight},
	{[]string{"q"}, actionStrafeLeft},
	{[]string{"e"}, actionStrafeRight},
	{[]string{"m"}, actionToggleMinimap},
	{[]string{"?", "shift+/"}, actionToggleHUD},
	{[]string{"p"}, actionToggleMusic},
	{[]string{"r"}, actionReset},
	{[]string{"+", "=", "shift+="}, actionVolumeUp},
	{[]string{"-"}, actionVolumeDown},
}

// keyAction returns the action bound to the pressed key, or actionNone.
func keyAction(ev uv.KeyPressEvent) action {
	for _, ka := range keyActions {
		if ev.MatchString(ka.keys...) {
			return ka.action
		}
	}
	return actionNone
}

// offerResize queues r, replacing the oldest pending size when the queue is
// full so the newest size always reaches the frame loop.
func offerResize(ch chan resize, r resize) {
	for {
		select {
		case ch <- r:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}

// viewState holds UI toggles.
type viewState struct {
	showMinimap bool
	showHUD     bool
	volume      float64
}

func runTerminal(s *scene) error {
	var music *audio.Music
	if *musicPath != "" {
		m, err := audio.Open(*musicPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not load music: %v\n", err)
		} else if err := m.Play(*volume); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not play music: %v\n", err)
			m.Close()
		} else {
			music = m
			defer music.Close()
		}
	}

	// Create terminal
	term := uv.DefaultTerminal()

	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}

	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)

	fb := render.NewFramebuffer(render.FramebufferSize(width, height))
	rc := render.NewRaycaster(s.grid, fb)
	rc.Step = *stepSize

	p := newPlayer(s)
	ctrl := player.NewController(*targetFPS)
	view := &viewState{showMinimap: *minimap, volume: *volume}
	hud := NewHUD()

	// Context for clean shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// The event goroutine never touches the player; it only queues input.
	actions := make(chan action, 64)
	resizes := make(chan resize, 4)
	go func() {
		for ev := range term.Events() {
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				offerResize(resizes, resize{ev.Width, ev.Height})

			case uv.KeyPressEvent:
				if ev.MatchString("escape", "ctrl+c") {
					cancel()
					return
				}
				select {
				case actions <- keyAction(ev):
				default: // drop input rather than stall the terminal
				}
			}
		}
	}()

	cleanup := func() {
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}

	if *intro {
		if err := playIntro(ctx, term, fb, width, height, actions); err != nil {
			cleanup()
			return fmt.Errorf("display: %w", err)
		}
	}

	targetDuration := time.Second / time.Duration(max(*targetFPS, 1))

	for {
		select {
		case <-ctx.Done():
			cleanup()
			return nil
		default:
		}

		now := time.Now()

		// Apply pending input before the frame so the renderer sees one
		// consistent pose.
	drain:
		for {
			select {
			case sz := <-resizes:
				width, height = sz.width, sz.height
				term.Erase()
				term.Resize(width, height)
				rc.SetFramebuffer(render.NewFramebuffer(render.FramebufferSize(width, height)))
			case a := <-actions:
				applyAction(a, p, ctrl, view, music, s)
			default:
				break drain
			}
		}
		ctrl.Update(p, s.grid)

		drawFrame(rc, s, p.Pose(), view.showMinimap)

		// Display
		rc.Framebuffer().Draw(term, uv.Rect(0, 0, width, height))
		if err := term.Display(); err != nil {
			cleanup()
			return fmt.Errorf("display: %w", err)
		}

		// HUD overlay (always update FPS, render clears lines when HUD off)
		hud.UpdateFPS()
		hud.Render(width, height, view.showHUD, p, rc.Stats)

		// Frame timing
		elapsed := time.Since(now)
		if elapsed < targetDuration {
			time.Sleep(targetDuration - elapsed)
		}
	}
}

func applyAction(a action, p *player.Player, ctrl *player.Controller, view *viewState, music *audio.Music, s *scene) {
	switch a {
	case actionForward:
		ctrl.Forward(p)
	case actionBackward:
		ctrl.Backward(p)
	case actionTurnLeft:
		ctrl.Left(p)
	case actionTurnRight:
		ctrl.Right(p)
	case actionStrafeLeft:
		ctrl.StrafeLeft(p)
	case actionStrafeRight:
		ctrl.StrafeRight(p)
	case actionToggleMinimap:
		view.showMinimap = !view.showMinimap
	case actionToggleHUD:
		view.showHUD = !view.showHUD
	case actionToggleMusic:
		if music != nil {
			music.TogglePause()
		}
	case actionReset:
		ctrl.Reset()
		*p = *newPlayer(s)
	case actionVolumeUp, actionVolumeDown:
		delta := 1.0 / volumeSteps
		if a == actionVolumeDown {
			delta = -delta
		}
		// round to whole steps so repeated presses land on 0 and 1 exactly
		view.volume = math.Round(min(max(view.volume+delta, 0), 1)*volumeSteps) / volumeSteps
		if music != nil {
			music.SetVolume(view.volume)
		}
	}
}
