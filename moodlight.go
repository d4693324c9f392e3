// Package moodlight drives a four pixel ambient light strip: one uniform
// color across every pixel, dimmed by a single brightness register.
package moodlight

import "github.com/coreman2200/moodlight/model"

const (
	PixelCount        int   = 4
	DefaultBrightness uint8 = 128
	DefaultPin              = "P15"
)

// Transmitter performs the physical signaling for a strip. Send blocks until
// the frame has been shifted out on pin.
type Transmitter interface {
	Send(frame model.Frame, pin string) error
	Close() error
}
