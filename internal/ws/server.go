package ws

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/coreman2200/moodlight/internal/config"
	diag "github.com/coreman2200/moodlight/internal/diagnostics"
	"github.com/coreman2200/moodlight/model"
)

// Strip is the controller surface the server drives. Implementations must
// be safe for concurrent use.
type Strip interface {
	ShowColor(model.Color) error
	Clear() error
	SetBrightness(int)
	Brightness() uint8
	Pin() string
}

type Control struct {
	Op    string `json:"op"` // "show" | "clear" | "brightness"
	Color string `json:"color,omitempty"`
	Value *int   `json:"value,omitempty"`
}

type Server struct {
	Strip  Strip
	Pixels int
	Log    zerolog.Logger

	// ConfigPath, when set, receives brightness changes. Config holds the
	// running settings written alongside; without it the file is seeded
	// from Driver and the strip's pin.
	ConfigPath string
	Config     *config.Config
	Driver     string

	mu        sync.Mutex
	frames    uint64
	startTime time.Time
}

func NewServer(s Strip, pixels int) *Server {
	return &Server{
		Strip:     s,
		Pixels:    pixels,
		Log:       zerolog.Nop(),
		startTime: time.Now(),
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/control", s.HandleControlWS)
	mux.HandleFunc("/health", s.HandleHealth)
	return mux
}

func (s *Server) HandleControlWS(w http.ResponseWriter, r *http.Request) {
	up := websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}
	conn, err := up.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		var msg Control
		var d diag.Diagnostic
		if err := json.Unmarshal(data, &msg); err != nil {
			d = diag.BadControl(err.Error())
		} else {
			d = s.Apply(msg)
		}
		b, _ := json.Marshal(d)
		conn.SetWriteDeadline(time.Now().Add(200 * time.Millisecond))
		if err := conn.WriteMessage(websocket.TextMessage, b); err != nil {
			s.Log.Debug().Err(err).Msg("write reply")
			return
		}
	}
}

// Apply runs one control message against the strip.
func (s *Server) Apply(msg Control) diag.Diagnostic {
	switch msg.Op {
	case "show":
		c, err := model.ParseColor(msg.Color)
		if err != nil {
			return diag.BadControl(err.Error())
		}
		if err := s.Strip.ShowColor(c); err != nil {
			s.Log.Error().Err(err).Stringer("color", c).Msg("show failed")
			return diag.SendFailed(s.Strip.Pin(), err)
		}
		s.countFrame()
		return diag.OK("Color shown", map[string]any{"color": c.String(), "brightness": s.Strip.Brightness()})

	case "clear":
		if err := s.Strip.Clear(); err != nil {
			s.Log.Error().Err(err).Msg("clear failed")
			return diag.SendFailed(s.Strip.Pin(), err)
		}
		s.countFrame()
		return diag.OK("Strip cleared", nil)

	case "brightness":
		if msg.Value == nil {
			return diag.BadControl("brightness needs a value")
		}
		s.Strip.SetBrightness(*msg.Value)
		br := s.Strip.Brightness()
		s.Log.Info().Uint8("brightness", br).Msg("brightness set")
		if err := s.saveConfig(int(br)); err != nil {
			return diag.Diagnostic{Severity: diag.Warn, Code: diag.CodeConfig, Summary: "Brightness set but not saved", Detail: err.Error()}
		}
		return diag.OK("Brightness set", map[string]any{"brightness": br})
	}
	return diag.BadControl(fmt.Sprintf("unknown op %q", msg.Op))
}

func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	frames := s.frames
	s.mu.Unlock()
	resp := map[string]any{
		"frames":     frames,
		"uptime_s":   time.Since(s.startTime).Seconds(),
		"pixels":     s.Pixels,
		"pin":        s.Strip.Pin(),
		"brightness": s.Strip.Brightness(),
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

func (s *Server) countFrame() {
	s.mu.Lock()
	s.frames++
	s.mu.Unlock()
}

func (s *Server) saveConfig(brightness int) error {
	if s.ConfigPath == "" {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Config == nil {
		s.Config = config.Default()
		if s.Driver != "" {
			s.Config.Driver = s.Driver
		}
	}
	s.Config.Pin = s.Strip.Pin()
	s.Config.Brightness = &brightness
	return config.Save(s.ConfigPath, s.Config)
}
