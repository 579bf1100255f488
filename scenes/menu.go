package scenes

import (
	"fmt"
	"os"

	cfg "github.com/automoto/airfighter/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type menuOption int

const (
	optionStart menuOption = iota
	optionDifficulty
	optionLanguage
	optionSFX
	optionCount
)

// MenuScene picks difficulty, language and sound before a run.
type MenuScene struct {
	session      *Session
	sceneChanger SceneChanger
	selected     menuOption
	toasts       toasts
}

func NewMenuScene(sc SceneChanger, s *Session) *MenuScene {
	return &MenuScene{session: s, sceneChanger: sc}
}

func (ms *MenuScene) Update() error {
	in := ms.session.Input
	in.Update()
	ms.toasts.update(1 / float64(ebiten.TPS()))

	switch {
	case in.JustPressed(cfg.ActionMenuBack):
		os.Exit(0)
	case in.JustPressed(cfg.ActionMenuUp):
		ms.move(-1)
	case in.JustPressed(cfg.ActionMenuDown):
		ms.move(1)
	case in.JustPressed(cfg.ActionMenuLeft):
		ms.change(-1)
	case in.JustPressed(cfg.ActionMenuRight):
		ms.change(1)
	case in.JustPressed(cfg.ActionMenuSelect):
		if ms.selected == optionStart {
			ms.sceneChanger.ChangeScene(NewBattleScene(ms.sceneChanger, ms.session))
			return nil
		}
		ms.change(1)
	case in.JustPressed(cfg.ActionToggleLang):
		ms.session.ToggleLang()
	case in.JustPressed(cfg.ActionToggleSFX):
		ms.toasts.push(ms.session.ToggleSFX())
	}
	return nil
}

// move navigates with wrap-around
func (ms *MenuScene) move(step int) {
	n := int(optionCount)
	ms.selected = menuOption((int(ms.selected) + step + n) % n)
}

// change steps the value of the selected row.
func (ms *MenuScene) change(step int) {
	s := ms.session
	switch ms.selected {
	case optionDifficulty:
		n := int(cfg.DifficultyCount)
		s.SetDifficulty(cfg.DifficultyID((int(s.Difficulty()) + step + n) % n))
	case optionLanguage:
		s.ToggleLang()
	case optionSFX:
		ms.toasts.push(s.ToggleSFX())
	}
}

func (ms *MenuScene) label(o menuOption) string {
	t := ms.session.Text()
	switch o {
	case optionStart:
		return t.Start
	case optionDifficulty:
		return fmt.Sprintf("%s: < %s >", t.Difficulty, t.TierName(ms.session.Difficulty()))
	case optionLanguage:
		return fmt.Sprintf("%s: < %s >", t.Language, ms.session.Lang())
	case optionSFX:
		if ms.session.Sound.Enabled() {
			return t.SFXOn
		}
		return t.SFXOff
	}
	return ""
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	t := ms.session.Text()
	width := float32(screen.Bounds().Dx())
	height := float32(screen.Bounds().Dy())

	vector.FillRect(screen, 0, 0, width, height, cfg.Menu.BackgroundColor, false)

	drawCentered(screen, t.Title, titleFont(), int(cfg.Menu.TitleY), cfg.Menu.TitleColor)
	drawCentered(screen, t.Subtitle, smallFont(), int(cfg.Menu.TitleY)+28, cfg.HUD.DimColor)

	for i := menuOption(0); i < optionCount; i++ {
		y := cfg.Menu.MenuStartY + float64(i)*(cfg.Menu.MenuItemHeight+cfg.Menu.MenuItemGap)
		textColor := cfg.Menu.TextColorNormal
		if i == ms.selected {
			textColor = cfg.Menu.TextColorSelected
		}
		drawCentered(screen, ms.label(i), boldFont(), int(y+cfg.Menu.MenuItemHeight), textColor)
	}

	y := int(cfg.Menu.MenuStartY + float64(optionCount)*(cfg.Menu.MenuItemHeight+cfg.Menu.MenuItemGap) + 40)
	for _, line := range t.Controls {
		drawCentered(screen, line, smallFont(), y, cfg.Menu.TextColorNormal)
		y += 18
	}
	drawCentered(screen, t.Tip, smallFont(), y+12, cfg.HUD.DimColor)

	records := ms.session.Saves.LoadRecords()
	d := ms.session.Difficulty()
	if best := records.BestScene[d.String()]; best > 0 {
		line := fmt.Sprintf("%s %d / %d   x%d", t.HUD.Scene, best, cfg.StageCount, records.Wins[d.String()])
		drawCentered(screen, line, smallFont(), int(height)-36, cfg.HUD.DimColor)
	}

	if msg, ok := ms.toasts.current(); ok {
		drawToast(screen, msg)
	}
	text.Draw(screen, "L: EN/TC   M: SFX", smallFont(), 8, int(height)-10, cfg.HUD.DimColor)
}

func drawToast(screen *ebiten.Image, msg string) {
	face := bodyFont()
	w := float32(textWidth(face, msg)) + 2*float32(cfg.Toast.Padding)
	h := float32(face.Metrics().Height.Ceil()) + 2*float32(cfg.Toast.Padding)
	x := (float32(screen.Bounds().Dx()) - w) / 2
	y := float32(cfg.Toast.Y)
	vector.FillRect(screen, x, y, w, h, cfg.Toast.BoxColor, false)
	text.Draw(screen, msg, face, int(x)+int(cfg.Toast.Padding), int(y)+int(cfg.Toast.Padding)+face.Metrics().Ascent.Ceil(), cfg.Toast.TextColor)
}
