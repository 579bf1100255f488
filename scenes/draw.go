package scenes

import (
	"image/color"
	"math"

	cfg "github.com/automoto/airfighter/config"
	"github.com/automoto/airfighter/fonts"
	"github.com/automoto/airfighter/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

func textWidth(face font.Face, s string) int {
	return font.MeasureString(face, s).Ceil()
}

func drawCentered(screen *ebiten.Image, s string, face font.Face, y int, clr color.Color) {
	x := (screen.Bounds().Dx() - textWidth(face, s)) / 2
	text.Draw(screen, s, face, x, y, clr)
}

// drawBar fills share of a w by h bar on top of its background.
func drawBar(screen *ebiten.Image, x, y, w, h, share float64, fill color.Color) {
	share = math.Max(0, math.Min(1, share))
	vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), cfg.HUD.BarBack, false)
	vector.FillRect(screen, float32(x), float32(y), float32(w*share), float32(h), fill, false)
}

func drawSky(screen *ebiten.Image, scene int) {
	screen.Fill(cfg.Palette.Sky)
	band := cfg.Palette.SkyBands[min(max(scene, 1), cfg.StageCount)-1]
	h := float32(screen.Bounds().Dy())
	w := float32(screen.Bounds().Dx())
	for i := float32(0); i < 4; i++ {
		vector.FillRect(screen, 0, h*(0.2+i*0.2), w, h*0.06, band, false)
	}
}

// drawEntity renders one snapshot entry with plain vector shapes.
func drawEntity(screen *ebiten.Image, e sim.Entity, snap *sim.Snapshot) {
	x, y, r := float32(e.X), float32(e.Y), float32(e.Radius)
	p := &cfg.Palette

	switch e.Kind {
	case sim.KindPlayer:
		clr := p.Player
		if snap.Invulnerable && int(snap.Time*12)%2 == 0 {
			clr = p.PlayerInvuln
		}
		drawShip(screen, x, y, r, clr)
		if snap.FocusActive {
			vector.StrokeCircle(screen, x, y, r+6, 1.5, p.FocusRing, true)
			vector.DrawFilledCircle(screen, x, y, 3, p.FocusRing, true)
		}

	case sim.KindEnemy:
		kind := cfg.EnemyKind(e.Sub)
		vector.DrawFilledCircle(screen, x, y, r, p.Enemies[kind], true)
		vector.StrokeCircle(screen, x, y, r, 1, p.Outline, true)
		if e.Aiming {
			vector.StrokeLine(screen, x, y, float32(e.AimX), float32(e.AimY), 1, p.AimLine, true)
		}

	case sim.KindBoss:
		clr := p.Bosses[cfg.BossType(e.Sub)]
		vector.DrawFilledCircle(screen, x, y, r, clr, true)
		vector.StrokeCircle(screen, x, y, r*0.65, 3, cfg.White, true)
		vector.StrokeCircle(screen, x, y, r, 2, p.Outline, true)

	case sim.KindShot:
		clr, ok := p.Shots[cfg.ShotKind(e.Sub)]
		if !ok {
			clr = p.Player
		}
		if cfg.ShotKind(e.Sub) == cfg.ShotLaser {
			vector.FillRect(screen, x-r/2, y-r*2, r, r*4, clr, false)
			return
		}
		vector.DrawFilledCircle(screen, x, y, r, clr, true)

	case sim.KindEnemyShot:
		if cfg.EnemyShotKind(e.Sub) == cfg.EnemyShotBomb {
			vector.DrawFilledCircle(screen, x, y, r, p.Bomb, true)
			vector.StrokeCircle(screen, x, y, r+2, 1, p.Outline, true)
			return
		}
		vector.DrawFilledCircle(screen, x, y, r, p.EnemyShot, true)

	case sim.KindDrop:
		clr := p.Drops[cfg.DropKind(e.Sub)]
		vector.FillRect(screen, x-r, y-r, 2*r, 2*r, cfg.White, false)
		vector.StrokeRect(screen, x-r, y-r, 2*r, 2*r, 2, clr, false)
		vector.DrawFilledCircle(screen, x, y, r*0.45, clr, true)
	}
}

// shakeOffset jitters the field while the run is shaking.
func shakeOffset(snap *sim.Snapshot) (float64, float64) {
	if snap.Shake <= 0 {
		return 0, 0
	}
	amp := snap.Shake * cfg.Shake.Amplitude
	return math.Sin(snap.Time*61) * amp, math.Cos(snap.Time*47) * amp
}

// drawShip draws an arrowhead pointing up, centered on x, y.
func drawShip(screen *ebiten.Image, x, y, r float32, clr color.Color) {
	vector.DrawFilledCircle(screen, x, y+r*0.2, r*0.55, clr, true)
	vector.StrokeLine(screen, x, y-r, x+r, y+r, 3, clr, true)
	vector.StrokeLine(screen, x, y-r, x-r, y+r, 3, clr, true)
	vector.StrokeLine(screen, x-r, y+r, x, y+r*0.5, 3, clr, true)
	vector.StrokeLine(screen, x+r, y+r, x, y+r*0.5, 3, clr, true)
}

func smallFont() font.Face { return fonts.Small.Get() }
func bodyFont() font.Face  { return fonts.Body.Get() }
func boldFont() font.Face  { return fonts.Bold.Get() }
func titleFont() font.Face { return fonts.Title.Get() }
