// Package led holds the strip transmitters. Every hardware output is a
// periph display.Drawer: a frame is decoded into a one row image and drawn.
package led

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"sync"

	"periph.io/x/conn/v3/display"

	"github.com/coreman2200/moodlight/model"
)

var ErrClosed = errors.New("led: transmitter closed")

// OpenFunc opens the output device behind a pin identifier.
type OpenFunc func(pin string) (display.Drawer, error)

// Drawer sends frames to display.Drawer devices, opening one per pin on
// first use.
type Drawer struct {
	mu     sync.Mutex
	open   OpenFunc
	devs   map[string]display.Drawer
	closed bool
}

func NewDrawer(open OpenFunc) *Drawer {
	return &Drawer{
		open: open,
		devs: map[string]display.Drawer{},
	}
}

func (d *Drawer) Send(frame model.Frame, pin string) error {
	if len(frame)%model.BytesPerPixel != 0 {
		return fmt.Errorf("frame length %d is not a multiple of %d", len(frame), model.BytesPerPixel)
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return ErrClosed
	}
	dev, err := d.device(pin)
	if err != nil {
		return err
	}
	if n := dev.Bounds().Dx(); frame.Pixels() != n {
		return fmt.Errorf("frame has %d pixels, %s has %d", frame.Pixels(), dev, n)
	}
	if err := dev.Draw(dev.Bounds(), frameImage(frame), image.Point{}); err != nil {
		return fmt.Errorf("draw %s: %w", dev, err)
	}
	return nil
}

func (d *Drawer) device(pin string) (display.Drawer, error) {
	if dev, ok := d.devs[pin]; ok {
		return dev, nil
	}
	dev, err := d.open(pin)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", pin, err)
	}
	d.devs[pin] = dev
	return dev, nil
}

// Close halts every opened device and releases any port behind it.
func (d *Drawer) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return nil
	}
	d.closed = true
	var errs []error
	for pin, dev := range d.devs {
		if err := dev.Halt(); err != nil {
			errs = append(errs, fmt.Errorf("halt %q: %w", pin, err))
		}
		if c, ok := dev.(io.Closer); ok {
			if err := c.Close(); err != nil {
				errs = append(errs, fmt.Errorf("close %q: %w", pin, err))
			}
		}
	}
	d.devs = nil
	return errors.Join(errs...)
}

// frameImage undoes the green, red, blue slot order. Drawers re-encode
// pixels in whatever order their wire needs.
func frameImage(f model.Frame) *image.NRGBA {
	n := f.Pixels()
	img := image.NewNRGBA(image.Rect(0, 0, n, 1))
	for i := 0; i < n; i++ {
		r, g, b := f.Pixel(i).RGB()
		img.SetNRGBA(i, 0, color.NRGBA{R: r, G: g, B: b, A: 255})
	}
	return img
}
