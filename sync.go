package moodlight

import (
	"sync"

	"github.com/coreman2200/moodlight/model"
)

// SyncController serializes access to a Controller.
type SyncController struct {
	mu sync.Mutex
	c  *Controller
}

func Synchronized(c *Controller) *SyncController {
	return &SyncController{c: c}
}

func (s *SyncController) Pin() string {
	return s.c.Pin()
}

func (s *SyncController) SetBrightness(value int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.c.SetBrightness(value)
}

func (s *SyncController) Brightness() uint8 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c.Brightness()
}

func (s *SyncController) ShowColor(col model.Color) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c.ShowColor(col)
}

func (s *SyncController) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c.Clear()
}
