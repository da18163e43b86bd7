package uitree

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const maxClipChannels = 4

// TweenClip animates up to 4 float64 fields simultaneously with gween tweens.
// Create one via the convenience constructors (FadeClip, ScaleClip,
// SlideClip) or NewTweenClip plus Channel. A clip only moves while something
// calls Update; register it with a TweenPlayer and add the player to a Tree
// to have it advanced every frame.
type TweenClip struct {
	tweens   [maxClipChannels]*gween.Tween
	fields   [maxClipChannels]*float64
	ends     [maxClipChannels][2]float64
	count    int
	duration float32
	easing   ease.TweenFunc
	playing  bool
}

// NewTweenClip creates an empty clip of the given duration in seconds.
// A nil easing function means linear.
func NewTweenClip(duration float32, fn ease.TweenFunc) *TweenClip {
	if fn == nil {
		fn = ease.Linear
	}
	if duration < 0 {
		duration = 0
	}
	return &TweenClip{duration: duration, easing: fn}
}

// Channel adds a field animated from "from" to "to". Panics if the clip
// already has four channels.
func (c *TweenClip) Channel(field *float64, from, to float64) *TweenClip {
	if c.count == maxClipChannels {
		panic("uitree: tween clip supports at most 4 channels")
	}
	c.tweens[c.count] = gween.New(float32(from), float32(to), c.duration, c.easing)
	c.fields[c.count] = field
	c.ends[c.count] = [2]float64{from, to}
	c.count++
	return c
}

// Duration returns the clip length in seconds.
func (c *TweenClip) Duration() float32 {
	return c.duration
}

// Play rewinds the clip to its first frame and starts it.
func (c *TweenClip) Play() {
	if c.duration == 0 {
		c.seek(1)
		c.playing = false
		return
	}
	c.seek(0)
	c.playing = true
}

// IsPlaying reports whether the clip is running.
func (c *TweenClip) IsPlaying() bool {
	return c.playing
}

// SetNormalizedTime jumps to t in [0, 1], writes the fields and stops.
func (c *TweenClip) SetNormalizedTime(t float64) {
	c.seek(clamp01(t))
	c.playing = false
}

// Update advances the clip by dt seconds and writes the fields.
func (c *TweenClip) Update(dt float32) {
	if !c.playing {
		return
	}
	allDone := true
	for i := 0; i < c.count; i++ {
		val, finished := c.tweens[i].Update(dt)
		*c.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	c.playing = !allDone
}

// seek writes the fields for normalized time t.
func (c *TweenClip) seek(t float64) {
	for i := 0; i < c.count; i++ {
		switch {
		case t <= 0:
			c.tweens[i].Set(0)
			*c.fields[i] = c.ends[i][0]
		case t >= 1:
			c.tweens[i].Set(c.duration)
			*c.fields[i] = c.ends[i][1]
		default:
			val, _ := c.tweens[i].Set(float32(t) * c.duration)
			*c.fields[i] = float64(val)
		}
	}
}

// FadeClip creates a clip that animates node.Alpha.
func FadeClip(node *Node, from, to float64, duration float32, fn ease.TweenFunc) *TweenClip {
	return NewTweenClip(duration, fn).Channel(&node.Alpha, from, to)
}

// ScaleClip creates a clip that animates node.Scale.
func ScaleClip(node *Node, from, to float64, duration float32, fn ease.TweenFunc) *TweenClip {
	return NewTweenClip(duration, fn).Channel(&node.Scale, from, to)
}

// SlideClip creates a clip that animates node.OffsetX and node.OffsetY.
func SlideClip(node *Node, fromX, fromY, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenClip {
	return NewTweenClip(duration, fn).
		Channel(&node.OffsetX, fromX, toX).
		Channel(&node.OffsetY, fromY, toY)
}

// TweenPlayer is an EffectPlayer and Ticker over named TweenClips.
// Clips are advanced in registration order.
type TweenPlayer struct {
	clips map[string]*TweenClip
	order []*TweenClip
}

// NewTweenPlayer creates an empty player.
func NewTweenPlayer() *TweenPlayer {
	return &TweenPlayer{clips: make(map[string]*TweenClip)}
}

// Add registers clip under id, replacing any clip with the same id.
func (p *TweenPlayer) Add(id string, clip *TweenClip) {
	if old, ok := p.clips[id]; ok {
		for i, c := range p.order {
			if c == old {
				p.order[i] = clip
				break
			}
		}
	} else {
		p.order = append(p.order, clip)
	}
	p.clips[id] = clip
}

// Clip returns the clip registered under id, or nil.
func (p *TweenPlayer) Clip(id string) *TweenClip {
	return p.clips[id]
}

// Len returns the number of registered clips.
func (p *TweenPlayer) Len() int {
	return len(p.order)
}

// Play starts the clip registered under id.
func (p *TweenPlayer) Play(id string) {
	if c := p.clips[id]; c != nil {
		c.Play()
	}
}

// IsPlaying reports whether the clip registered under id is running.
func (p *TweenPlayer) IsPlaying(id string) bool {
	if c := p.clips[id]; c != nil {
		return c.IsPlaying()
	}
	return false
}

// SetNormalizedTime jumps the clip registered under id to t.
func (p *TweenPlayer) SetNormalizedTime(id string, t float64) {
	if c := p.clips[id]; c != nil {
		c.SetNormalizedTime(t)
	}
}

// Update advances every playing clip by dt seconds.
func (p *TweenPlayer) Update(dt float32) {
	for _, c := range p.order {
		c.Update(dt)
	}
}
