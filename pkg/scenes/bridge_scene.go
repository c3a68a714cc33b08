package scenes

import (
	"log"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gonewx/zheying/pkg/config"
	"github.com/gonewx/zheying/pkg/game"
	"github.com/gonewx/zheying/pkg/scene3d"
	"github.com/gonewx/zheying/pkg/tween"
	"github.com/gonewx/zheying/pkg/utils"
)

// BridgeScene 断桥主场景
//
// 组合场景图、相机预设、轨道控制、桥体机关、叙事文案与界面按钮。
// 所有动画经由同一个补间调度器在 Update 里以固定步长推进。
type BridgeScene struct {
	ctx *game.Context

	graph    *SceneGraph
	cam      *scene3d.Camera
	renderer *scene3d.Renderer
	sched    *tween.Scheduler

	presets *game.PresetController
	orbit   *game.OrbitController
	bridge  *game.BridgeMechanism

	mother *game.CharacterPlacement
	child  *game.CharacterPlacement

	narrative game.NarrativeState
	ui        *bridgeUI

	offscreen     *ebiten.Image
	width, height int

	// wasTransitioning 跟踪预设过渡的结束沿，结束后轨道控制器
	// 需要从相机姿态重新同步球坐标
	wasTransitioning bool

	// flashTimer 留影时的白闪剩余时间（秒）
	flashTimer float64
}

// NewBridgeScene 组装断桥场景
//
// motherMesh/childMesh 由加载场景传入（外部模型或占位体）。
func NewBridgeScene(ctx *game.Context, motherMesh, childMesh *scene3d.Mesh) *BridgeScene {
	cfg := ctx.Cfg

	graph := BuildSceneGraph(cfg)
	cam := scene3d.NewCamera(config.GameWindowWidth, config.GameWindowHeight)

	// 初始机位：情感视角外侧的远景，等待玩家寻找对齐角度
	emotional := cfg.EmotionalView
	cam.Position = scene3d.Vec3{X: emotional.Position.X + 14, Y: emotional.Position.Y + 6, Z: emotional.Position.Z + 6}
	cam.Target = scene3d.Vec3{X: emotional.LookAt.X, Y: emotional.LookAt.Y, Z: emotional.LookAt.Z}

	sched := tween.NewScheduler()
	presets := game.NewPresetController(cam, cfg, sched)

	mother := game.NewCharacterPlacement("mother", motherMesh,
		scene3d.Vec3{X: cfg.MotherStart.X, Y: cfg.MotherStart.Y, Z: cfg.MotherStart.Z}, colMother)
	child := game.NewCharacterPlacement("child", childMesh,
		scene3d.Vec3{X: cfg.ChildStart.X, Y: cfg.ChildStart.Y, Z: cfg.ChildStart.Z}, colChild)
	graph.World.Add(mother.Node)
	graph.World.Add(child.Node)

	bridge := game.NewBridgeMechanism(cfg, presets, sched, graph.LeftBridge, graph.RightBridge, mother, child)

	s := &BridgeScene{
		ctx:      ctx,
		graph:    graph,
		cam:      cam,
		renderer: scene3d.NewRenderer(),
		sched:    sched,
		presets:  presets,
		orbit:    game.NewOrbitController(cam),
		bridge:   bridge,
		mother:   mother,
		child:    child,
		width:    config.GameWindowWidth,
		height:   config.GameWindowHeight,
	}
	s.offscreen = ebiten.NewImage(s.width, s.height)

	// 字体缺失时界面文案降级为 ASCII（调试字体）
	fontPath := filepath.Join(ctx.AssetDir, "fonts", "zheying.otf")
	face, err := utils.LoadFontFace(fontPath, 18)
	if err != nil {
		log.Printf("[BridgeScene] Font unavailable: %v (falling back to debug text)", err)
		face = nil
	}
	s.ui = newBridgeUI(face, s)
	s.ui.layout(s.width, s.height)

	log.Printf("[BridgeScene] Scene ready (%d nodes)", len(graph.World.Nodes))
	return s
}

// Update 每帧推进场景
func (s *BridgeScene) Update(deltaTime float64) {
	// 界面优先消费指针，避免按钮点击同时触发轨道拖拽
	pointerConsumed := s.ui.handleInput()
	s.handleKeyboard()

	s.orbit.Update(!pointerConsumed, !s.presets.IsTransitioning())

	// 预设过渡结束沿：轨道球坐标重新对齐相机
	if s.wasTransitioning && !s.presets.IsTransitioning() {
		s.orbit.SyncFromCamera()
	}
	s.wasTransitioning = s.presets.IsTransitioning()

	s.sched.Update(deltaTime)
	s.bridge.UpdateAlignment()

	// 叙事状态：每帧从桥状态与角色距离纯函数推导
	// bridgeTriggered 没有置位路径，恒为 false
	s.narrative = game.DeriveNarrativeState(
		s.mother.DistanceTo(s.child),
		s.ctx.Cfg.ReunionDistance,
		false,
		s.bridge.State().IsAligned,
	)

	if s.flashTimer > 0 {
		s.flashTimer -= deltaTime
	}
}

// handleKeyboard 键盘快捷键，与五个按钮一一对应
func (s *BridgeScene) handleKeyboard() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.Key1):
		s.presets.SetPresetView(game.PresetMother)
	case inpututil.IsKeyJustPressed(ebiten.Key2):
		s.presets.SetPresetView(game.PresetChild)
	case inpututil.IsKeyJustPressed(ebiten.Key3):
		s.presets.SetPresetView(game.PresetEmotional)
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		s.bridge.TriggerMechanism()
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		s.saveMemory()
	}
}

// saveMemory 留影：把当前离屏画面（不含界面）编码落盘
func (s *BridgeScene) saveMemory() {
	s.renderFrame()
	if _, err := s.ctx.Snapshots.Capture(s.offscreen, s.presets.CurrentLabel(), s.narrative.String()); err != nil {
		// 非致命：记日志，界面不出现错误态
		log.Printf("[BridgeScene] Snapshot failed: %v", err)
		return
	}
	s.flashTimer = 0.25
}

// renderFrame 将三维场景渲染进离屏图像
func (s *BridgeScene) renderFrame() {
	s.offscreen.Fill(colSky)
	s.renderer.Draw(s.offscreen, s.graph.World, s.cam)
}

// Draw 渲染场景与界面
func (s *BridgeScene) Draw(screen *ebiten.Image) {
	s.renderFrame()
	screen.DrawImage(s.offscreen, nil)

	title, hint := game.NarrativeText(s.narrative)
	s.ui.draw(screen, title, hint, s.narrative.String(), s.presets.CurrentLabel(), s.ctx.Settings.GetSettings().ShowHints)
	s.ui.drawFlash(screen, s.flashTimer)
}

// OnResize 输出表面尺寸变化：重算相机宽高比并重建离屏图像
func (s *BridgeScene) OnResize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	if width == s.width && height == s.height {
		return
	}
	s.width, s.height = width, height
	s.cam.SetAspect(width, height)
	s.offscreen = ebiten.NewImage(width, height)
	s.ui.layout(width, height)
	log.Printf("[BridgeScene] Resized to %dx%d (aspect=%.3f)", width, height, s.cam.Aspect)
}
