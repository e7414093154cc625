package main

import (
	"context"
	"time"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/taigrr/mazecaster/pkg/render"
)

const (
	introMessage = "Welcome to mazecaster"
	introFPS     = 30
	introSpeed   = 2 // pixels per frame
	introHold    = time.Second
)

// introScale picks a text scale so the banner fills about a fifth of the
// frame height.
func introScale(fb *render.Framebuffer) int {
	return max(fb.Height/(render.GlyphSize*5), 1)
}

// drawIntroFrame draws the banner with its left edge at x, vertically
// centered on a black frame.
func drawIntroFrame(fb *render.Framebuffer, msg string, x, scale int) {
	fb.Clear(render.ColorBlack)
	y := fb.Height/2 - render.GlyphSize*scale/2
	fb.DrawText(msg, x, y, scale, render.ColorWhite)
}

// introOffsets returns the banner positions for a scroll from the right edge
// of a frame width pixels wide until the text has left on the left.
func introOffsets(width, textWidth int) []int {
	var xs []int
	for x := width; x > -textWidth; x -= introSpeed {
		xs = append(xs, x)
	}
	return xs
}

// playIntro scrolls the welcome banner across the terminal, then holds a
// blank frame briefly. Any queued input or a cancelled context ends it early;
// the input that skipped the intro is consumed.
func playIntro(ctx context.Context, term *uv.Terminal, fb *render.Framebuffer, width, height int, actions <-chan action) error {
	scale := introScale(fb)
	frame := time.Second / introFPS

	for _, x := range introOffsets(fb.Width, render.TextWidth(introMessage, scale)) {
		select {
		case <-ctx.Done():
			return nil
		case <-actions:
			return nil
		default:
		}

		drawIntroFrame(fb, introMessage, x, scale)
		fb.Draw(term, uv.Rect(0, 0, width, height))
		if err := term.Display(); err != nil {
			return err
		}
		time.Sleep(frame)
	}

	select {
	case <-ctx.Done():
	case <-actions:
	case <-time.After(introHold):
	}
	return nil
}
