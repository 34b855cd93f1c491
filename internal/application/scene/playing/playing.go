// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/younwookim/rangeprompt/internal/application/replay"
	"github.com/younwookim/rangeprompt/internal/application/scene"
	"github.com/younwookim/rangeprompt/internal/application/session"
	"github.com/younwookim/rangeprompt/internal/application/state"
	"github.com/younwookim/rangeprompt/internal/application/system"
	"github.com/younwookim/rangeprompt/internal/domain/entity"
	"github.com/younwookim/rangeprompt/internal/infrastructure/config"
)

// Colors for rendering
var (
	colorWall     = color.RGBA{80, 80, 100, 255}
	colorCounter  = color.RGBA{140, 100, 60, 255}
	colorBG       = color.RGBA{26, 26, 46, 255}
	colorWindow   = color.RGBA{10, 10, 30, 220}
	colorBorder   = color.RGBA{200, 200, 220, 255}
	colorFallback = color.RGBA{180, 180, 180, 255}
)

// Playing is the main gameplay scene
type Playing struct {
	config      *config.GameConfig
	session     *session.Session
	inputSystem *system.InputSystem
	log         *zap.Logger
	screenW     int
	screenH     int
	last        session.Frame

	// Input recording
	recorder       *replay.Recorder
	recordFilename string
}

// New creates a new Playing scene around a session.
// If recordPath is not empty, gameplay will be recorded.
func New(cfg *config.GameConfig, sess *session.Session, startMap, recordPath string, log *zap.Logger) *Playing {
	if log == nil {
		log = zap.NewNop()
	}

	p := &Playing{
		config:         cfg,
		session:        sess,
		inputSystem:    system.NewInputSystem(),
		log:            log,
		screenW:        cfg.Tunables.Display.ScreenWidth,
		screenH:        cfg.Tunables.Display.ScreenHeight,
		recordFilename: recordPath,
	}

	if recordPath != "" {
		p.recorder = replay.NewRecorder(startMap)
		log.Info("recording enabled", zap.String("file", recordPath))
	}

	return p
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(_ float64) (scene.Scene, error) {
	// F5: Save recording manually
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) && p.recorder != nil {
		p.saveRecording()
	}

	return nil, p.step(p.inputSystem.GetInput())
}

// step feeds one frame of input to the session
func (p *Playing) step(input system.InputState) error {
	if p.recorder != nil {
		p.recorder.RecordFrame(input)
	}

	frame, err := p.session.Step(input)
	if err != nil {
		return fmt.Errorf("frame %d: %w", p.session.FrameCount(), err)
	}
	p.last = frame
	return nil
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = replay.GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		p.log.Warn("failed to save recording", zap.Error(err))
	} else {
		p.log.Info("recording saved",
			zap.String("file", filename),
			zap.Int("frames", p.recorder.FrameCount()))
	}
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	stage := p.session.Stage()
	actor := p.session.Actor()
	if stage == nil || actor == nil {
		return
	}

	camX, camY := p.camera(stage, actor)

	p.drawTiles(screen, stage, camX, camY)
	p.drawEvents(screen, stage, camX, camY)
	p.drawActor(screen, stage, actor, camX, camY)
	p.drawPrompt(screen, stage, actor, camX, camY)
	p.drawMessage(screen)
	p.drawUI(screen, stage)

	switch p.session.State() {
	case state.StatePaused:
		p.drawPauseOverlay(screen)
	case state.StateTransferring:
		ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), color.RGBA{0, 0, 0, 255})
	}
}

// camera centers on the actor, clamped to stage bounds
func (p *Playing) camera(stage *entity.Stage, actor *entity.Actor) (int, int) {
	ts := float64(stage.TileSize)
	camX := int(actor.X*ts+ts/2) - p.screenW/2
	camY := int(actor.Y*ts+ts/2) - p.screenH/2

	maxCamX := stage.Width*stage.TileSize - p.screenW
	maxCamY := stage.Height*stage.TileSize - p.screenH
	if camX > maxCamX {
		camX = maxCamX
	}
	if camY > maxCamY {
		camY = maxCamY
	}
	if camX < 0 {
		camX = 0
	}
	if camY < 0 {
		camY = 0
	}
	return camX, camY
}

func (p *Playing) drawTiles(screen *ebiten.Image, stage *entity.Stage, camX, camY int) {
	ts := stage.TileSize
	startTileX := camX / ts
	startTileY := camY / ts
	endTileX := (camX+p.screenW)/ts + 1
	endTileY := (camY+p.screenH)/ts + 1

	for ty := startTileY; ty <= endTileY && ty < stage.Height; ty++ {
		for tx := startTileX; tx <= endTileX && tx < stage.Width; tx++ {
			tile := stage.GetTile(tx, ty)
			if tile.Type == entity.TileEmpty {
				continue
			}

			var c color.Color
			switch tile.Type {
			case entity.TileWall:
				c = colorWall
			case entity.TileCounter:
				c = colorCounter
			}

			x := float64(tx*ts - camX)
			y := float64(ty*ts - camY)
			ebitenutil.DrawRect(screen, x, y, float64(ts), float64(ts), c)
		}
	}
}

func (p *Playing) drawEvents(screen *ebiten.Image, stage *entity.Stage, camX, camY int) {
	ts := float64(stage.TileSize)
	inset := ts / 8

	for _, ev := range stage.Events {
		page := ev.ActivePage()
		if page == nil {
			continue
		}

		c := colorFallback
		if style, ok := p.config.Entities.Events[page.Trigger.String()]; ok {
			c = rgb(style.Color, 255)
		}

		x := float64(ev.X)*ts - float64(camX)
		y := float64(ev.Y)*ts - float64(camY)
		ebitenutil.DrawRect(screen, x+inset, y+inset, ts-2*inset, ts-2*inset, c)
	}
}

func (p *Playing) drawActor(screen *ebiten.Image, stage *entity.Stage, actor *entity.Actor, camX, camY int) {
	ac := p.config.Entities.Actor
	ts := float64(stage.TileSize)

	x := actor.X*ts + (ts-float64(ac.Width))/2 - float64(camX)
	y := actor.SpriteTop(stage.TileSize, ac.Height) - float64(camY)
	ebitenutil.DrawRect(screen, x, y, float64(ac.Width), float64(ac.Height), rgb(ac.Color, 255))

	// facing marker
	cx := x + float64(ac.Width)/2
	cy := y + float64(ac.Height)/2
	dx, dy := 0.0, 0.0
	switch actor.Facing {
	case entity.DirUp:
		dy = -float64(ac.Height) / 2
	case entity.DirDown:
		dy = float64(ac.Height) / 2
	case entity.DirLeft:
		dx = -float64(ac.Width) / 2
	case entity.DirRight:
		dx = float64(ac.Width) / 2
	}
	ebitenutil.DrawLine(screen, cx, cy, cx+dx, cy+dy, color.White)
}

func (p *Playing) drawPrompt(screen *ebiten.Image, stage *entity.Stage, actor *entity.Actor, camX, camY int) {
	v := p.last.Prompt
	if !v.Visible || v.Opacity == 0 {
		return
	}

	ps := p.config.Entities.Prompt
	ts := float64(stage.TileSize)
	centerX := actor.X*ts + ts/2
	top := actor.SpriteTop(stage.TileSize, p.config.Tunables.Movement.SpriteHeight)

	x, y := p.session.Prompt().Config.Anchor(centerX, top, v)
	x -= float64(ps.Width)/2 + float64(camX)
	y -= float64(ps.Height) + float64(camY)

	ebitenutil.DrawRect(screen, x, y, float64(ps.Width), float64(ps.Height), rgb(ps.Color, v.Opacity))
}

func (p *Playing) drawMessage(screen *ebiten.Image) {
	if p.last.Message == "" {
		return
	}

	h := 48.0
	x, y := 8.0, float64(p.screenH)-h-8
	w := float64(p.screenW) - 16

	ebitenutil.DrawRect(screen, x-1, y-1, w+2, h+2, colorBorder)
	ebitenutil.DrawRect(screen, x, y, w, h, colorWindow)
	ebitenutil.DebugPrintAt(screen, p.last.Message, int(x)+6, int(y)+6)
}

func (p *Playing) drawUI(screen *ebiten.Image, stage *entity.Stage) {
	name := stage.Name
	if name == "" {
		name = stage.ID
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s | Arrows/WASD: Move | Z/Space: Talk | ESC: Pause", name))
}

func (p *Playing) drawPauseOverlay(screen *ebiten.Image) {
	overlay := color.RGBA{0, 0, 0, 128}
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), overlay)

	text := "PAUSED\n\nPress ESC to resume"
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-50, p.screenH/2-20)
}

// rgb converts a config color to premultiplied RGBA
func rgb(c config.ColorRGB, alpha uint8) color.RGBA {
	a := float64(alpha) / 255
	return color.RGBA{
		uint8(float64(c.R) * a),
		uint8(float64(c.G) * a),
		uint8(float64(c.B) * a),
		alpha,
	}
}

// LastFrame returns what the most recent update produced
func (p *Playing) LastFrame() session.Frame {
	return p.last
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	// Scene is already initialized in New
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.saveRecording()
}

// Layout returns the game's screen dimensions (used by game.Game)
func (p *Playing) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.screenW, p.screenH
}
