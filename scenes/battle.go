package scenes

import (
	"fmt"

	"github.com/automoto/airfighter/components"
	cfg "github.com/automoto/airfighter/config"
	"github.com/automoto/airfighter/events"
	"github.com/automoto/airfighter/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// BattleScene runs one Sim and draws it.
type BattleScene struct {
	session      *Session
	sceneChanger SceneChanger
	sim          *sim.Sim
	err          error
	toasts       toasts
	recorded     bool
}

func NewBattleScene(sc SceneChanger, s *Session) *BattleScene {
	bs := &BattleScene{session: s, sceneChanger: sc}
	bs.sim, bs.err = sim.New(sim.Options{
		Difficulty: s.Difficulty(),
		Seed:       s.Seed,
		Logger:     &s.Logger,
	})
	return bs
}

func (bs *BattleScene) Update() error {
	if bs.err != nil {
		return fmt.Errorf("error starting run: %w", bs.err)
	}
	bs.session.Input.Update()
	bs.tick(1 / float64(ebiten.TPS()))
	return nil
}

// tick handles one frame of already polled input.
func (bs *BattleScene) tick(dt float64) {
	in := bs.session.Input
	bs.toasts.update(dt)

	if in.JustPressed(cfg.ActionToggleSFX) {
		bs.toasts.push(bs.session.ToggleSFX())
	}
	if in.JustPressed(cfg.ActionToggleLang) {
		bs.session.ToggleLang()
	}

	if bs.sim.State() != components.RunPlaying {
		switch {
		case in.JustPressed(cfg.ActionMenuSelect), in.JustPressed(cfg.ActionRestart):
			bs.restart()
		case in.JustPressed(cfg.ActionMenuBack):
			bs.session.Sound.PlayMusic(cfg.MusicNone)
			bs.sceneChanger.ChangeScene(NewMenuScene(bs.sceneChanger, bs.session))
		}
		return
	}

	if in.JustPressed(cfg.ActionPause) {
		bs.togglePause()
	}
	if bs.sim.Paused() {
		if in.JustPressed(cfg.ActionRestart) {
			bs.restart()
		}
		return
	}

	frame := bs.sim.Step(dt, in.Intents())
	bs.handle(frame.Events)
}

func (bs *BattleScene) togglePause() {
	snd := bs.session.Sound
	if bs.sim.Paused() {
		bs.sim.Resume()
		snd.SetMusicPaused(false)
		snd.Play(cfg.SoundResume, 0)
		return
	}
	bs.sim.Pause()
	snd.SetMusicPaused(true)
	snd.Play(cfg.SoundPause, 0)
}

func (bs *BattleScene) restart() {
	bs.sim.Restart()
	bs.session.Sound.SetMusicPaused(false)
	bs.toasts.clear()
	bs.recorded = false
}

// handle plays sounds, switches music, queues toasts and records finished
// runs.
func (bs *BattleScene) handle(evs []events.Event) {
	t := bs.session.Text()
	snd := bs.session.Sound
	hud := bs.sim.HUD()
	for _, e := range evs {
		switch e.Kind {
		case events.Sound:
			snd.Play(e.Sound, e.Pan)
			continue
		case events.SceneEntered:
			snd.PlayMusic(cfg.MusicStage)
		case events.BossIncoming:
			snd.PlayMusic(cfg.MusicBoss)
		case events.BossDefeated:
			snd.PlayMusic(cfg.MusicNone)
		case events.GameOver:
			snd.PlayMusic(cfg.MusicNone)
			bs.record(hud.Scene, false)
		case events.Victory:
			snd.PlayMusic(cfg.MusicNone)
			bs.record(cfg.StageCount, true)
		}
		if msg, ok := t.Toast(e, hud.Luck); ok {
			bs.toasts.push(msg)
		}
	}
}

func (bs *BattleScene) record(scene int, won bool) {
	if bs.recorded {
		return
	}
	bs.recorded = true
	best, err := bs.session.Saves.RecordRun(bs.sim.Difficulty(), scene, won)
	if err != nil {
		bs.session.Logger.Warn().Err(err).Msg("Could not save run record")
		return
	}
	if best {
		bs.session.Logger.Info().Int("scene", scene).Str("difficulty", bs.sim.Difficulty().String()).Msg("New best scene")
	}
}

func (bs *BattleScene) Draw(screen *ebiten.Image) {
	if bs.sim == nil {
		return
	}
	snap := bs.sim.Snapshot()
	hud := bs.sim.HUD()

	drawSky(screen, snap.Scene)
	dx, dy := shakeOffset(&snap)
	for _, e := range snap.Entities {
		e.X, e.Y = e.X+dx, e.Y+dy
		e.AimX, e.AimY = e.AimX+dx, e.AimY+dy
		drawEntity(screen, e, &snap)
	}
	if snap.Phase == components.PhaseWarning && int(snap.Time*4)%2 == 0 {
		w := float32(screen.Bounds().Dx())
		vector.FillRect(screen, 0, 300, w, 50, cfg.Palette.AimLine, false)
		drawCentered(screen, "WARNING", titleFont(), 338, cfg.White)
	}

	bs.drawHUD(screen, hud)
	if msg, ok := bs.toasts.current(); ok {
		drawToast(screen, msg)
	}

	switch {
	case hud.State != components.RunPlaying:
		bs.drawEnd(screen, hud)
	case hud.Paused:
		bs.drawPause(screen)
	}
}

func (bs *BattleScene) drawHUD(screen *ebiten.Image, h sim.HUD) {
	t := bs.session.Text()
	l := &cfg.HUD
	width := float64(screen.Bounds().Dx())

	vector.FillRect(screen, 0, 0, float32(width), float32(l.Height), l.PanelColor, false)

	face := smallFont()
	row1 := int(l.Padding) + face.Metrics().Ascent.Ceil()
	row2 := row1 + int(l.LineHeight)

	sfx := t.Off
	if bs.session.Sound.Enabled() {
		sfx = t.On
	}
	left := fmt.Sprintf("%s %d %s   %s %d/%d   %s %s Lv%d",
		t.HUD.Scene, h.Scene, t.SceneName(h.Scene),
		t.HUD.Lives, h.Lives, h.MaxLives,
		t.HUD.Weapon, t.WeaponName(h.Weapon), h.WeaponLevel)
	right := fmt.Sprintf("%s %s   %s x%.2f   %s %s",
		t.HUD.Fire, h.FireRateLabel, t.HUD.Luck, h.Luck, t.HUD.SFX, sfx)
	text.Draw(screen, left, face, int(l.Padding), row1, l.TextColor)
	text.Draw(screen, right, face, int(l.Padding), row2, l.TextColor)

	// HP and focus bars on the right edge
	x := width - l.Padding - l.BarWidth
	hpLabel := fmt.Sprintf("%s %.0f/%.0f", t.HUD.HP, h.HP, h.HPMax)
	text.Draw(screen, hpLabel, face, int(x)-textWidth(face, hpLabel)-6, row1, l.TextColor)
	drawBar(screen, x, float64(row1)-l.BarHeight, l.BarWidth, l.BarHeight, h.HP/max(h.HPMax, 1), cfg.Green)

	focusShare := 1.0
	focusColor := l.FocusColor
	if h.FocusLimited {
		focusShare = h.FocusEnergy / max(h.FocusMax, 1e-9)
		if h.FocusCooldown > 0 || focusShare < l.FocusLowShare {
			focusColor = l.FocusLow
		}
	}
	text.Draw(screen, t.HUD.Focus, face, int(x)-textWidth(face, t.HUD.Focus)-6, row2, l.DimColor)
	drawBar(screen, x, float64(row2)-l.BarHeight, l.BarWidth, l.BarHeight, focusShare, focusColor)

	switch h.BossPhase {
	case components.PhaseEntering, components.PhaseActive:
		y := l.Height + 6
		text.Draw(screen, t.HUD.Boss, face, int(l.Padding), int(y+l.BarHeight), l.TextColor)
		bx := l.Padding + float64(textWidth(face, t.HUD.Boss)) + 6
		drawBar(screen, bx, y, width-bx-l.Padding, l.BarHeight, h.BossHP/max(h.BossHPMax, 1), l.BossBarColor)
	}
}

func (bs *BattleScene) drawPause(screen *ebiten.Image) {
	t := bs.session.Text()
	width := float32(screen.Bounds().Dx())
	height := float32(screen.Bounds().Dy())

	vector.FillRect(screen, 0, 0, width, height, cfg.Pause.OverlayColor, false)

	startY := float64(height)/2 - cfg.Pause.MenuItemHeight
	drawCentered(screen, t.PausedTitle, titleFont(), int(startY), cfg.Pause.TextColorSelected)
	drawCentered(screen, t.PausedText, bodyFont(), int(startY+cfg.Pause.MenuItemHeight+cfg.Pause.MenuItemGap), cfg.Pause.TextColorNormal)
	drawCentered(screen, t.Tip, smallFont(), int(height)-24, cfg.Pause.TextColorNormal)
}

func (bs *BattleScene) drawEnd(screen *ebiten.Image, h sim.HUD) {
	t := bs.session.Text()
	width := float32(screen.Bounds().Dx())
	height := float32(screen.Bounds().Dy())

	vector.FillRect(screen, 0, 0, width, height, cfg.GameOver.OverlayColor, false)

	title, clr := t.GameOver, cfg.GameOver.LostColor
	if h.State == components.RunWon {
		title, clr = t.Victory, cfg.GameOver.WonColor
	}
	drawCentered(screen, title, titleFont(), int(cfg.GameOver.TitleY), clr)

	msg := fmt.Sprintf("%s %d - %s   (%s)", t.HUD.Scene, h.Scene, t.SceneName(h.Scene), t.TierName(h.Difficulty))
	drawCentered(screen, msg, bodyFont(), int(cfg.GameOver.MessageY), cfg.GameOver.TextColor)
	drawCentered(screen, t.PressRetry, smallFont(), int(cfg.GameOver.HintY), cfg.GameOver.TextColor)
}
