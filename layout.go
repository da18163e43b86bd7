package uitree

import (
	"fmt"
	"os"
	"strings"

	"github.com/tanema/gween/ease"
	"gopkg.in/yaml.v3"
)

// Layout is the static composition of a tree as written in a YAML file.
//
//	name: root
//	children:
//	  - name: menu
//	    show: { property: alpha, from: 0, to: 1, duration: 0.25, ease: outQuad }
//	    hide: { property: alpha, from: 1, to: 0, duration: 0.2 }
//	    children:
//	      - name: settings
type Layout struct {
	Name     string    `yaml:"name"`
	Show     *ClipSpec `yaml:"show,omitempty"`
	Hide     *ClipSpec `yaml:"hide,omitempty"`
	Children []*Layout `yaml:"children,omitempty"`
}

// ClipSpec describes a single-property tween clip.
type ClipSpec struct {
	// Property is one of alpha, scale, offsetX, offsetY.
	Property string  `yaml:"property"`
	From     float64 `yaml:"from"`
	To       float64 `yaml:"to"`
	Duration float32 `yaml:"duration"`
	// Ease names a gween easing function, e.g. linear, outQuad, inOutCubic.
	// Empty means linear.
	Ease string `yaml:"ease,omitempty"`
}

// Clip id suffixes used when a layout registers clips with a TweenPlayer.
const (
	ShowClipSuffix = "#show"
	HideClipSuffix = "#hide"
)

var easings = map[string]ease.TweenFunc{
	"linear":     ease.Linear,
	"inQuad":     ease.InQuad,
	"outQuad":    ease.OutQuad,
	"inOutQuad":  ease.InOutQuad,
	"inCubic":    ease.InCubic,
	"outCubic":   ease.OutCubic,
	"inOutCubic": ease.InOutCubic,
	"inQuart":    ease.InQuart,
	"outQuart":   ease.OutQuart,
	"inOutQuart": ease.InOutQuart,
	"inSine":     ease.InSine,
	"outSine":    ease.OutSine,
	"inOutSine":  ease.InOutSine,
	"inExpo":     ease.InExpo,
	"outExpo":    ease.OutExpo,
	"inBack":     ease.InBack,
	"outBack":    ease.OutBack,
	"outBounce":  ease.OutBounce,
}

// LoadLayout reads a YAML layout file and instantiates it.
func LoadLayout(path string, player *TweenPlayer) (*Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout: %w", err)
	}
	l, err := ParseLayout(data)
	if err != nil {
		return nil, err
	}
	return l.Instantiate(player)
}

// ParseLayout parses and validates a YAML layout.
func ParseLayout(data []byte) (*Layout, error) {
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("failed to parse layout: %w", err)
	}
	if err := l.validate(""); err != nil {
		return nil, err
	}
	return &l, nil
}

func (l *Layout) validate(parent string) error {
	path := l.Name
	if parent != "" {
		path = parent + "/" + l.Name
	}
	if strings.TrimSpace(l.Name) == "" {
		if parent == "" {
			parent = "<root>"
		}
		return fmt.Errorf("layout %s: node without a name", parent)
	}
	if strings.Contains(l.Name, "/") {
		return fmt.Errorf("layout %s: node name must not contain '/'", path)
	}
	if l.Show != nil {
		if err := l.Show.validate(); err != nil {
			return fmt.Errorf("layout %s: show clip: %w", path, err)
		}
	}
	if l.Hide != nil {
		if err := l.Hide.validate(); err != nil {
			return fmt.Errorf("layout %s: hide clip: %w", path, err)
		}
	}
	seen := make(map[string]bool, len(l.Children))
	for _, c := range l.Children {
		if c == nil {
			return fmt.Errorf("layout %s: empty child entry", path)
		}
		if strings.TrimSpace(c.Name) == "" {
			return fmt.Errorf("layout %s: child without a name", path)
		}
		if seen[c.Name] {
			return fmt.Errorf("layout %s: duplicate child %q", path, c.Name)
		}
		seen[c.Name] = true
		if err := c.validate(path); err != nil {
			return err
		}
	}
	return nil
}

func (c *ClipSpec) validate() error {
	if _, err := channelField(&Node{}, c.Property); err != nil {
		return err
	}
	if c.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %v", c.Duration)
	}
	if _, ok := easingByName(c.Ease); !ok {
		return fmt.Errorf("unknown ease %q", c.Ease)
	}
	return nil
}

// Instantiate builds the node hierarchy. Nodes with a show or hide clip get
// an AnimatedBehavior whose clips are registered with player under
// "<path>#show" and "<path>#hide". A nil player is only allowed when the
// layout declares no clips.
func (l *Layout) Instantiate(player *TweenPlayer) (*Node, error) {
	return l.instantiate("", player)
}

func (l *Layout) instantiate(parent string, player *TweenPlayer) (*Node, error) {
	path := l.Name
	if parent != "" {
		path = parent + "/" + l.Name
	}
	n := NewNode(l.Name)

	if l.Show != nil || l.Hide != nil {
		if player == nil {
			return nil, fmt.Errorf("layout %s: clips declared but no player given", path)
		}
		a := &AnimatedBehavior{Player: player}
		if l.Show != nil {
			clip, err := l.Show.build(n)
			if err != nil {
				return nil, fmt.Errorf("layout %s: show clip: %w", path, err)
			}
			a.ShowClip = path + ShowClipSuffix
			player.Add(a.ShowClip, clip)
		}
		if l.Hide != nil {
			clip, err := l.Hide.build(n)
			if err != nil {
				return nil, fmt.Errorf("layout %s: hide clip: %w", path, err)
			}
			a.HideClip = path + HideClipSuffix
			player.Add(a.HideClip, clip)
		}
		n.behavior = a
	}

	for _, c := range l.Children {
		child, err := c.instantiate(path, player)
		if err != nil {
			return nil, err
		}
		n.AddChild(child)
	}
	return n, nil
}

func (c *ClipSpec) build(n *Node) (*TweenClip, error) {
	field, err := channelField(n, c.Property)
	if err != nil {
		return nil, err
	}
	fn, ok := easingByName(c.Ease)
	if !ok {
		return nil, fmt.Errorf("unknown ease %q", c.Ease)
	}
	return NewTweenClip(c.Duration, fn).Channel(field, c.From, c.To), nil
}

func channelField(n *Node, property string) (*float64, error) {
	switch property {
	case "alpha":
		return &n.Alpha, nil
	case "scale":
		return &n.Scale, nil
	case "offsetX":
		return &n.OffsetX, nil
	case "offsetY":
		return &n.OffsetY, nil
	default:
		return nil, fmt.Errorf("unknown property %q", property)
	}
}

func easingByName(name string) (ease.TweenFunc, bool) {
	if name == "" {
		return ease.Linear, true
	}
	fn, ok := easings[name]
	return fn, ok
}
