package game

import (
	"errors"

	"go.uber.org/zap"

	"github.com/Faultbox/vanguard/internal/engine/anim"
	"github.com/Faultbox/vanguard/internal/engine/audio"
	"github.com/Faultbox/vanguard/internal/engine/signal"
)

// cueFor maps animator triggers to sounds.
var cueFor = map[string]audio.Cue{
	anim.ClipAttack:  audio.CueSwing,
	anim.ClipJump:    audio.CueJump,
	anim.ClipTakeHit: audio.CueHurt,
}

// bindCues plays a sound for each gameplay event in s.
func bindCues(s *Session, play func(audio.Cue)) signal.Group {
	var g signal.Group
	g.Add(s.Anim.Triggered.Connect(func(name string) {
		if c, ok := cueFor[name]; ok {
			play(c)
		}
	}))
	g.Add(s.Health.Died().Connect(func(struct{}) { play(audio.CueDeath) }))
	g.Add(s.Arena.Tent.OpenUI.Connect(func(struct{}) { play(audio.CueOpenUI) }))
	for _, e := range s.Arena.Enemies {
		g.Add(e.Health.Damaged().Connect(func(int) { play(audio.CueHit) }))
	}
	return g
}

// cuePlayer returns a play func for m that logs failures once.
func cuePlayer(m *audio.Manager, log *zap.Logger) func(audio.Cue) {
	warned := false
	return func(c audio.Cue) {
		err := m.Play(c)
		if err == nil || warned {
			return
		}
		warned = true
		if errors.Is(err, audio.ErrNotInitialized) {
			log.Debug("sound cues disabled")
			return
		}
		log.Warn("play cue", zap.Stringer("cue", c), zap.Error(err))
	}
}
