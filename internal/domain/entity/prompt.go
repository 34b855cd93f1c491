package entity

import "math"

// PromptPhase represents the indicator animation phase
type PromptPhase int

const (
	PromptHidden PromptPhase = iota
	PromptFadingIn
	PromptIdle
	PromptFadingOut
)

// String returns the phase name
func (p PromptPhase) String() string {
	switch p {
	case PromptHidden:
		return "Hidden"
	case PromptFadingIn:
		return "FadingIn"
	case PromptIdle:
		return "Idle"
	case PromptFadingOut:
		return "FadingOut"
	default:
		return "Unknown"
	}
}

// PromptConfig holds configuration for the prompt indicator
type PromptConfig struct {
	AnimFrames   int     // Length of a fade-in or fade-out transition (frames)
	FadeFrames   int     // Opacity ramp length within a transition (frames)
	BounceHeight float64 // Peak lift of the bounce (pixels)
	OffsetY      int     // Offset from the sprite's top edge (pixels, negative = above)
}

// DefaultPromptConfig returns the default configuration
func DefaultPromptConfig() PromptConfig {
	return PromptConfig{
		AnimFrames:   20,
		FadeFrames:   10,
		BounceHeight: 8,
		OffsetY:      -12,
	}
}

// PromptVisual is the presentation instruction for one frame
type PromptVisual struct {
	Visible bool
	Opacity uint8
	YOffset float64 // lift above the base position (pixels)
}

// Anchor returns where the indicator is drawn this frame. The base position
// tracks the actor sprite's top edge, so the icon follows movement while idle.
func (c PromptConfig) Anchor(spriteCenterX, spriteTop float64, v PromptVisual) (x, y float64) {
	return spriteCenterX, spriteTop + float64(c.OffsetY) - v.YOffset
}

// Prompt is the single shared "interaction available" indicator of an actor.
// Any edge of the hasPrompt signal restarts the opposing transition from
// frame 0; interrupted transitions are never resumed.
type Prompt struct {
	Config     PromptConfig
	Phase      PromptPhase
	Frame      int
	WasVisible bool
}

// NewPrompt creates a prompt indicator with default config
func NewPrompt() *Prompt {
	return NewPromptWithConfig(DefaultPromptConfig())
}

// NewPromptWithConfig creates a prompt indicator with custom config
func NewPromptWithConfig(cfg PromptConfig) *Prompt {
	// Apply defaults for zero values
	if cfg.AnimFrames == 0 {
		cfg.AnimFrames = 20
	}
	if cfg.FadeFrames == 0 {
		cfg.FadeFrames = 10
	}
	if cfg.FadeFrames > cfg.AnimFrames {
		cfg.FadeFrames = cfg.AnimFrames
	}
	if cfg.BounceHeight == 0 {
		cfg.BounceHeight = 8
	}

	return &Prompt{
		Config: cfg,
		Phase:  PromptHidden,
	}
}

// IsActive returns true if the indicator is drawn at all
func (p *Prompt) IsActive() bool {
	return p.Phase != PromptHidden
}

// Reset returns the indicator to Hidden at frame 0 (map change)
func (p *Prompt) Reset() {
	p.Phase = PromptHidden
	p.Frame = 0
	p.WasVisible = false
}

// Update feeds this tick's hasPrompt signal and returns the visual to draw.
func (p *Prompt) Update(hasPrompt bool) PromptVisual {
	if hasPrompt != p.WasVisible {
		p.WasVisible = hasPrompt
		p.Frame = 0
		if hasPrompt {
			p.Phase = PromptFadingIn
		} else {
			p.Phase = PromptFadingOut
		}
	}

	v := p.Visual()

	switch p.Phase {
	case PromptFadingIn:
		p.Frame++
		if p.Frame >= p.Config.AnimFrames {
			p.Phase = PromptIdle
			p.Frame = 0
		}
	case PromptFadingOut:
		p.Frame++
		if p.Frame >= p.Config.AnimFrames {
			p.Phase = PromptHidden
			p.Frame = 0
		}
	}

	return v
}

// Visual returns the presentation for the current phase and frame
func (p *Prompt) Visual() PromptVisual {
	switch p.Phase {
	case PromptFadingIn:
		return PromptVisual{
			Visible: true,
			Opacity: p.rampOpacity(),
			YOffset: p.bounce(),
		}
	case PromptIdle:
		return PromptVisual{Visible: true, Opacity: 255}
	case PromptFadingOut:
		return PromptVisual{
			Visible: true,
			Opacity: 255 - p.rampOpacity(),
			YOffset: p.bounce(),
		}
	default:
		return PromptVisual{}
	}
}

// rampOpacity is the fade-in opacity at the current frame: linear over
// FadeFrames, then held at 255.
func (p *Prompt) rampOpacity() uint8 {
	if p.Frame >= p.Config.FadeFrames {
		return 255
	}
	return uint8(255 * p.Frame / p.Config.FadeFrames)
}

// bounce is a single up-then-settle arc over the whole transition
func (p *Prompt) bounce() float64 {
	return p.Config.BounceHeight * math.Sin(math.Pi*float64(p.Frame)/float64(p.Config.AnimFrames))
}
