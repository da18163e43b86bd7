package uitree

// TransitionClip is a playable effect with a known end.
type TransitionClip interface {
	// Play rewinds the clip and starts it.
	Play()
	// IsPlaying reports whether the clip is still running.
	IsPlaying() bool
	// SetNormalizedTime jumps to t in [0, 1] and stops playback there.
	SetNormalizedTime(t float64)
}

// EffectPlayer plays clips by id. Unknown ids must be ignored: Play does
// nothing and IsPlaying reports false.
type EffectPlayer interface {
	Play(clip string)
	IsPlaying(clip string) bool
	SetNormalizedTime(clip string, t float64)
}

// Ticker is advanced once per frame by Tree.Update before the scheduler steps.
type Ticker interface {
	Update(dt float32)
}

// ClipSet is an EffectPlayer over a fixed map of clips. It does not advance
// the clips; whatever owns them must do that.
type ClipSet map[string]TransitionClip

// Play starts the named clip.
func (s ClipSet) Play(clip string) {
	if c := s[clip]; c != nil {
		c.Play()
	}
}

// IsPlaying reports whether the named clip is running.
func (s ClipSet) IsPlaying(clip string) bool {
	if c := s[clip]; c != nil {
		return c.IsPlaying()
	}
	return false
}

// SetNormalizedTime jumps the named clip to t.
func (s ClipSet) SetNormalizedTime(clip string, t float64) {
	if c := s[clip]; c != nil {
		c.SetNormalizedTime(t)
	}
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
