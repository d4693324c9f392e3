package led

import (
	"errors"

	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/gpio/gpiostream"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/devices/v3/nrzled"
	"periph.io/x/extra/devices/screen"
)

const DefaultFreq = 800 * physic.KiloHertz

var (
	errNoPin      = errors.New("no such gpio pin")
	errNoStreamer = errors.New("gpio pin cannot stream")
)

// streamPin is an output pin that can shift out a bit stream.
type streamPin interface {
	gpio.PinOut
	gpiostream.PinOut
}

// Opts builds nrzled options for an RGB strip of n pixels.
func Opts(n int, freq physic.Frequency) *nrzled.Opts {
	if freq <= 0 {
		freq = DefaultFreq
	}
	return &nrzled.Opts{
		NumPixels: n,
		Channels:  3,
		Freq:      freq,
	}
}

// NewGPIO bit-bangs the NRZ stream on the GPIO pin named by the pin
// identifier, e.g. "GPIO18".
func NewGPIO(o *nrzled.Opts) *Drawer {
	return NewDrawer(func(pin string) (display.Drawer, error) {
		p := gpioreg.ByName(pin)
		if p == nil {
			return nil, errNoPin
		}
		sp, ok := p.(streamPin)
		if !ok {
			return nil, errNoStreamer
		}
		return nrzled.NewStream(sp, o)
	})
}

// NewSPI drives the strip from the MOSI line of an SPI port. The pin
// identifier is the port name; "" picks the first port.
func NewSPI(o *nrzled.Opts) *Drawer {
	return NewDrawer(func(pin string) (display.Drawer, error) {
		port, err := spireg.Open(pin)
		if err != nil {
			return nil, err
		}
		return OpenSPIPort(port, o)
	})
}

// OpenSPIPort wraps an already open port; closing the transmitter closes it.
func OpenSPIPort(port spi.PortCloser, o *nrzled.Opts) (display.Drawer, error) {
	d, err := nrzled.NewSPI(port, o)
	if err != nil {
		_ = port.Close()
		return nil, err
	}
	return &spiDrawer{Dev: d, port: port}, nil
}

type spiDrawer struct {
	*nrzled.Dev
	port spi.PortCloser
}

func (s *spiDrawer) Close() error {
	return s.port.Close()
}

// NewSim prints frames to the console. The pin identifier is ignored.
func NewSim(n int) *Drawer {
	return NewDrawer(func(string) (display.Drawer, error) {
		return screen.New(n), nil
	})
}
