package moodlight_test

import (
	"bytes"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coreman2200/moodlight"
	"github.com/coreman2200/moodlight/internal/led"
	"github.com/coreman2200/moodlight/model"
)

func TestDefaultBrightness(t *testing.T) {
	c := moodlight.New(&led.Recorder{}, moodlight.DefaultPin)
	assert.Equal(t, uint8(128), c.Brightness())
	assert.Equal(t, "P15", c.Pin())
}

func TestSetBrightnessTruncates(t *testing.T) {
	c := moodlight.New(&led.Recorder{}, moodlight.DefaultPin)
	for in, want := range map[int]uint8{300: 44, 255: 255, 0: 0, -1: 255, 256: 0} {
		c.SetBrightness(in)
		assert.Equal(t, want, c.Brightness(), "SetBrightness(%d)", in)
	}
}

func TestShowColorScalesByBrightness(t *testing.T) {
	rec := &led.Recorder{}
	c := moodlight.New(rec, moodlight.DefaultPin)

	require.NoError(t, c.ShowColor(model.Pack(200, 100, 50)))
	sent := rec.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, "P15", sent[0].Pin)
	assert.Equal(t, model.Frame(bytes.Repeat([]byte{50, 100, 25}, 4)), sent[0].Frame)
}

func TestShowColorFullBrightness(t *testing.T) {
	rec := &led.Recorder{}
	c := moodlight.New(rec, "GPIO18")
	c.SetBrightness(255)

	require.NoError(t, c.ShowColor(model.Pack(10, 20, 30)))
	assert.Equal(t, model.Frame(bytes.Repeat([]byte{20, 10, 30}, 4)), rec.Last())
	assert.Equal(t, "GPIO18", rec.Sent()[0].Pin)
}

func TestShowColorZeroBrightness(t *testing.T) {
	rec := &led.Recorder{}
	c := moodlight.New(rec, moodlight.DefaultPin)
	c.SetBrightness(0)

	require.NoError(t, c.ShowColor(model.White))
	assert.Equal(t, model.BuildClearFrame(moodlight.PixelCount), rec.Last())
}

func TestClearIgnoresBrightness(t *testing.T) {
	rec := &led.Recorder{}
	c := moodlight.New(rec, moodlight.DefaultPin)
	c.SetBrightness(255)

	require.NoError(t, c.Clear())
	assert.Equal(t, model.Frame(make([]byte, 12)), rec.Last())
	assert.Equal(t, uint8(255), c.Brightness())
}

func TestTransmitFailurePropagates(t *testing.T) {
	boom := errors.New("line stuck low")
	rec := &led.Recorder{Err: boom}
	c := moodlight.New(rec, moodlight.DefaultPin)
	c.SetBrightness(77)

	assert.ErrorIs(t, c.ShowColor(model.Red), boom)
	assert.ErrorIs(t, c.Clear(), boom)
	assert.Equal(t, uint8(77), c.Brightness())

	rec.SetErr(nil)
	require.NoError(t, c.ShowColor(model.Red))
	assert.Len(t, rec.Sent(), 1)
}

func TestSynchronized(t *testing.T) {
	rec := &led.Recorder{}
	s := moodlight.Synchronized(moodlight.New(rec, moodlight.DefaultPin))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.SetBrightness(i)
			_ = s.ShowColor(model.FromHSL(float64(i*45), 99, 50))
			_ = s.Brightness()
		}(i)
	}
	wg.Wait()
	require.NoError(t, s.Clear())
	assert.Len(t, rec.Sent(), 9)
	assert.Equal(t, model.BuildClearFrame(4), rec.Last())
}
