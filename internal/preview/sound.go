package preview

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	clickFreq  = 660
	clickLen   = 50 * time.Millisecond
)

// Sound plays the click tone. Without a speaker every call is a no-op.
type Sound struct {
	mu          sync.Mutex
	initialized bool
}

func NewSound() *Sound { return &Sound{} }

// Init opens the speaker.
func (s *Sound) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	s.initialized = true
	return nil
}

// Click plays a short sine tone.
func (s *Sound) Click() {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return
	}
	sine, err := generators.SineTone(sampleRate, clickFreq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(clickLen), sine))
}

func (s *Sound) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.initialized {
		speaker.Close()
		s.initialized = false
	}
}
