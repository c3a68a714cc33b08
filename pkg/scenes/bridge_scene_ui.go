package scenes

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"github.com/gonewx/zheying/pkg/game"
	"github.com/gonewx/zheying/pkg/utils"
)

// 按钮标识，五个命令面一一对应控制器方法
const (
	btnMotherView    = "switch-to-mother-view"
	btnChildView     = "switch-to-child-view"
	btnEmotionalView = "switch-to-emotional-view"
	btnTrigger       = "trigger-mechanism"
	btnSaveMemory    = "save-memory"
)

// uiButton 单个界面按钮
type uiButton struct {
	id       string
	label    string // 中文标签（需要字体）
	fallback string // 字体缺失时的 ASCII 降级标签
	x, y     int
	w, h     int
	action   func()
}

// bridgeUI 断桥场景的界面层：底部按钮行 + 叙事文案
type bridgeUI struct {
	face    font.Face
	buttons []*uiButton
}

// newBridgeUI 构建五个按钮并绑定控制器方法
func newBridgeUI(face font.Face, scene *BridgeScene) *bridgeUI {
	ui := &bridgeUI{face: face}
	ui.buttons = []*uiButton{
		{id: btnMotherView, label: "母亲视角", fallback: "Mother [1]",
			action: func() { scene.presets.SetPresetView(game.PresetMother) }},
		{id: btnChildView, label: "孩子视角", fallback: "Child [2]",
			action: func() { scene.presets.SetPresetView(game.PresetChild) }},
		{id: btnEmotionalView, label: "情感视角", fallback: "Emotion [3]",
			action: func() { scene.presets.SetPresetView(game.PresetEmotional) }},
		{id: btnTrigger, label: "触发机关", fallback: "Trigger [Space]",
			action: func() { scene.bridge.TriggerMechanism() }},
		{id: btnSaveMemory, label: "留存记忆", fallback: "Save [S]",
			action: func() { scene.saveMemory() }},
	}
	return ui
}

// layout 按输出表面尺寸重排按钮：底部居中一行
func (ui *bridgeUI) layout(width, height int) {
	const (
		btnW    = 150
		btnH    = 40
		spacing = 12
	)
	total := len(ui.buttons)*btnW + (len(ui.buttons)-1)*spacing
	startX := (width - total) / 2
	y := height - btnH - 16

	for i, b := range ui.buttons {
		b.x = startX + i*(btnW+spacing)
		b.y = y
		b.w = btnW
		b.h = btnH
	}
}

// handleInput 处理按钮点击，返回指针是否被界面消费
func (ui *bridgeUI) handleInput() bool {
	clicked, x, y := utils.IsJustTouchedOrClicked()
	if !clicked {
		return false
	}
	for _, b := range ui.buttons {
		if utils.PointInRect(x, y, b.x, b.y, b.w, b.h) {
			b.action()
			return true
		}
	}
	return false
}

var (
	colBtnFill  = color.RGBA{R: 54, G: 46, B: 66, A: 200}
	colBtnText  = color.RGBA{R: 244, G: 234, B: 214, A: 255}
	colPanel    = color.RGBA{R: 54, G: 46, B: 66, A: 160}
	colTitleTxt = color.RGBA{R: 66, G: 50, B: 48, A: 255}
)

// draw 绘制按钮行、叙事标题与提示、当前视角名
// stateName 是叙事状态的英文标识，作为字体缺失时的降级文案
func (ui *bridgeUI) draw(screen *ebiten.Image, title, hint, stateName, presetLabel string, showHints bool) {
	for _, b := range ui.buttons {
		vector.DrawFilledRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h), colBtnFill, true)
		ui.drawLabel(screen, b.label, b.fallback, b.x+12, b.y+b.h/2+6, colBtnText)
	}

	// 叙事状态：左上角标题 + 提示行
	vector.DrawFilledRect(screen, 12, 12, 280, 64, colPanel, true)
	ui.drawLabel(screen, title, stateName, 24, 40, colBtnText)
	if showHints {
		ui.drawLabel(screen, hint, stateName, 24, 64, colBtnText)
	}

	// 当前视角名（完成过切换后才有）
	if presetLabel != "" {
		ui.drawLabel(screen, presetLabel, "", 24, 96, colTitleTxt)
	}
}

// drawFlash 留影白闪
func (ui *bridgeUI) drawFlash(screen *ebiten.Image, remaining float64) {
	if remaining <= 0 {
		return
	}
	alpha := uint8(remaining / 0.25 * 180)
	w := screen.Bounds().Dx()
	h := screen.Bounds().Dy()
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), color.RGBA{R: 255, G: 255, B: 255, A: alpha}, false)
}

// drawLabel 优先用加载的字体绘制中文；字体缺失时退回调试字体
// fallback 为空时直接用原文（调试字体只覆盖 ASCII）
func (ui *bridgeUI) drawLabel(screen *ebiten.Image, label, fallback string, x, y int, col color.Color) {
	if ui.face != nil {
		text.Draw(screen, label, ui.face, x, y, col)
		return
	}
	if fallback == "" {
		fallback = label
	}
	ebitenutil.DebugPrintAt(screen, fallback, x, y-12)
}
