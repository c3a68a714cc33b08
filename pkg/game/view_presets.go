package game

import (
	"log"

	"github.com/gonewx/zheying/pkg/config"
	"github.com/gonewx/zheying/pkg/scene3d"
	"github.com/gonewx/zheying/pkg/tween"
)

// 预设视角名称
const (
	PresetMother    = "mother"    // 母亲所在平台的视角
	PresetChild     = "child"     // 孩子所在平台的视角
	PresetEmotional = "emotional" // 让断桥在画面上接续的"情感视角"
)

// ViewPreset 视角预设：固定的相机位置与注视点
// 构造后不可变
type ViewPreset struct {
	Position scene3d.Vec3
	LookAt   scene3d.Vec3
	Label    string
}

// PresetController 相机预设控制器
//
// 持有三个固定预设，负责带缓动的视角切换。
// 不变式：同一时刻只有一个视角是"当前视角"；切换过渡进行中
// 再次请求切换会被忽略（单飞行中相机补间）。
type PresetController struct {
	cam     *scene3d.Camera
	presets map[string]ViewPreset
	sched   *tween.Scheduler

	current       string
	transitioning bool
	duration      float64
}

// NewPresetController 从场景配置构建预设控制器
// 初始视角为情感视角之外的远景，current 为空直到第一次切换完成
func NewPresetController(cam *scene3d.Camera, cfg *config.SceneConfig, sched *tween.Scheduler) *PresetController {
	toVec := func(v config.Vec3Config) scene3d.Vec3 {
		return scene3d.Vec3{X: v.X, Y: v.Y, Z: v.Z}
	}
	return &PresetController{
		cam:   cam,
		sched: sched,
		presets: map[string]ViewPreset{
			PresetMother: {
				Position: toVec(cfg.MotherView.Position),
				LookAt:   toVec(cfg.MotherView.LookAt),
				Label:    cfg.MotherView.Label,
			},
			PresetChild: {
				Position: toVec(cfg.ChildView.Position),
				LookAt:   toVec(cfg.ChildView.LookAt),
				Label:    cfg.ChildView.Label,
			},
			PresetEmotional: {
				Position: toVec(cfg.EmotionalView.Position),
				LookAt:   toVec(cfg.EmotionalView.LookAt),
				Label:    cfg.EmotionalView.Label,
			},
		},
		duration: cfg.CameraTransitionSec,
	}
}

// SetPresetView 开始向指定预设的缓动过渡
//
// 过渡进行中再次调用是无操作（仅记日志）；未知名称同样忽略。
// 相机位置与注视点同时插值，固定时长，结束时精确落在预设值上。
func (pc *PresetController) SetPresetView(name string) {
	if pc.transitioning {
		log.Printf("[Presets] Transition in progress, ignoring switch to %q", name)
		return
	}
	preset, ok := pc.presets[name]
	if !ok {
		log.Printf("[Presets] Unknown preset %q, ignoring", name)
		return
	}

	startPos := pc.cam.Position
	startTarget := pc.cam.Target
	pc.transitioning = true
	log.Printf("[Presets] Switching view to %q (%s)", name, preset.Label)

	pc.sched.Start(&tween.Tween{
		Duration: pc.duration,
		Ease:     tween.EaseInOutSine,
		OnUpdate: func(eased float64) {
			t := float32(eased)
			pc.cam.Position = startPos.Lerp(preset.Position, t)
			pc.cam.Target = startTarget.Lerp(preset.LookAt, t)
		},
		OnDone: func() {
			// 终点必须严格等于预设值，消除插值的浮点残差
			pc.cam.Position = preset.Position
			pc.cam.Target = preset.LookAt
			pc.current = name
			pc.transitioning = false
		},
	})
}

// CurrentPreset 返回最近一次完成切换的预设名称，未完成过切换时为空
func (pc *PresetController) CurrentPreset() string {
	return pc.current
}

// CurrentLabel 返回当前预设的显示名，未切换过时返回空串
func (pc *PresetController) CurrentLabel() string {
	if p, ok := pc.presets[pc.current]; ok {
		return p.Label
	}
	return ""
}

// IsTransitioning 返回是否有切换过渡在进行中
func (pc *PresetController) IsTransitioning() bool {
	return pc.transitioning
}

// Preset 按名称返回预设副本
func (pc *PresetController) Preset(name string) (ViewPreset, bool) {
	p, ok := pc.presets[name]
	return p, ok
}

// IsNearEmotionalView 判断相机是否处于情感视角附近
//
// 当相机位置与情感预设位置的欧氏距离小于 threshold 时返回 true，
// 作为"幻象此刻读作相连"的代理判定。threshold 对该判定单调：
// 阈值增大不会让原本为 true 的结果变为 false。
func (pc *PresetController) IsNearEmotionalView(threshold float32) bool {
	emotional := pc.presets[PresetEmotional]
	return pc.cam.Position.Distance(emotional.Position) < threshold
}
