// Package ledring animates a small RGB pixel ring used as a status display.
// Frame generation is pure; pushing frames to hardware goes through the
// Strip interface (ws2812 on MCU targets).
package ledring

import (
	"image/color"
	"sync/atomic"

	"growkit-go/x/mathx"
)

// Strip is the output surface. ws2812.Device satisfies it.
type Strip interface {
	WriteColors(buf []color.RGBA) error
}

// Status colors.
var (
	ColorOK    = color.RGBA{G: 0x40, A: 0xFF}
	ColorError = color.RGBA{R: 0x40, A: 0xFF}
	ColorIdle  = color.RGBA{B: 0x20, A: 0xFF}
)

const tailLen = 4

// Animator produces a rotating comet in the current status color. One frame
// per Next call; the caller owns the frame rate. The color is held as a
// packed word so SetColor may be called from a goroutine other than the one
// driving Next.
type Animator struct {
	frame []color.RGBA
	base  atomic.Uint32
	step  int
}

func New(pixels int) *Animator {
	if pixels <= 0 {
		pixels = 12
	}
	a := &Animator{frame: make([]color.RGBA, pixels)}
	a.base.Store(packColor(ColorIdle))
	return a
}

// SetColor changes the comet's color from the next frame on.
func (a *Animator) SetColor(c color.RGBA) { a.base.Store(packColor(c)) }

// Pixels returns the ring size.
func (a *Animator) Pixels() int { return len(a.frame) }

// Next advances the animation one step and returns the frame. The returned
// slice is reused across calls; write it out before calling Next again.
func (a *Animator) Next() []color.RGBA {
	n := len(a.frame)
	base := unpackColor(a.base.Load())
	for i := range a.frame {
		a.frame[i] = color.RGBA{A: 0xFF}
	}
	for t := 0; t < mathx.Min(tailLen, n); t++ {
		i := ((a.step-t)%n + n) % n
		a.frame[i] = fade(base, t)
	}
	a.step = (a.step + 1) % n
	return a.frame
}

func packColor(c color.RGBA) uint32 {
	return uint32(c.R)<<24 | uint32(c.G)<<16 | uint32(c.B)<<8 | uint32(c.A)
}

func unpackColor(v uint32) color.RGBA {
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}
}

// fade halves each channel per tail pixel.
func fade(c color.RGBA, t int) color.RGBA {
	return color.RGBA{
		R: c.R >> uint(t),
		G: c.G >> uint(t),
		B: c.B >> uint(t),
		A: 0xFF,
	}
}

// Run pushes frames to the strip until stop is closed, calling wait between
// frames. Errors from the strip stop the loop; the ring is decorative and a
// broken strip must not take the node down.
func Run(a *Animator, s Strip, wait func(), stop <-chan struct{}) {
	for {
		select {
		case <-stop:
			return
		default:
		}
		if err := s.WriteColors(a.Next()); err != nil {
			return
		}
		wait()
	}
}
