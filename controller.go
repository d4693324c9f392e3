package moodlight

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/coreman2200/moodlight/model"
)

// Controller owns the brightness register and hands frames to a Transmitter.
// It does no locking; wrap it with Synchronized when several goroutines
// share one strip.
type Controller struct {
	tx         Transmitter
	pin        string
	brightness uint8
	log        zerolog.Logger
}

func New(tx Transmitter, pin string) *Controller {
	return &Controller{
		tx:         tx,
		pin:        pin,
		brightness: DefaultBrightness,
		log:        zerolog.Nop(),
	}
}

func (c *Controller) SetLogger(l zerolog.Logger) {
	c.log = l
}

func (c *Controller) Pin() string {
	return c.pin
}

// SetBrightness keeps only the low 8 bits of value.
func (c *Controller) SetBrightness(value int) {
	c.brightness = uint8(value & 0xFF)
}

func (c *Controller) Brightness() uint8 {
	return c.brightness
}

// ShowColor sets every pixel to col, dimmed by the current brightness.
func (c *Controller) ShowColor(col model.Color) error {
	br := c.brightness
	if br < model.MAX_BRIGHTNESS {
		col = model.Scale(col, br)
	}
	c.log.Debug().
		Str("pin", c.pin).
		Stringer("color", col).
		Uint8("brightness", br).
		Msg("show")
	return c.send(model.BuildUniformFrame(col, PixelCount))
}

// Clear turns every pixel off. Brightness is left alone.
func (c *Controller) Clear() error {
	c.log.Debug().Str("pin", c.pin).Msg("clear")
	return c.send(model.BuildClearFrame(PixelCount))
}

func (c *Controller) send(f model.Frame) error {
	if err := c.tx.Send(f, c.pin); err != nil {
		return fmt.Errorf("strip %s: %w", c.pin, err)
	}
	return nil
}
