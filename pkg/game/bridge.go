package game

import (
	"log"

	"github.com/gonewx/zheying/pkg/config"
	"github.com/gonewx/zheying/pkg/scene3d"
	"github.com/gonewx/zheying/pkg/tween"
)

// reunionGap 团聚补间终点处每个角色与中点的间距
// 角色停在中点两侧而不是完全重合，最终距离 2*reunionGap
const reunionGap = 0.8

// BridgeState 断桥状态
//
// LeftSegmentOffset/RightSegmentOffset 是两段桥体相对初始位置
// 沿 x 轴的累计偏移。IsAligned 只由每帧的对齐检查（闩锁置位）
// 和机关触发路径改写。
type BridgeState struct {
	LeftSegmentOffset  float32
	RightSegmentOffset float32
	IsAligned          bool
}

// BridgeMechanism 幻象对齐与机关触发
//
// 将相机预设控制器、桥段节点和两个角色串起来：
// 视角对齐 → 允许触发机关 → 桥段合拢 → 角色走向中点。
type BridgeMechanism struct {
	state   BridgeState
	cfg     *config.SceneConfig
	presets *PresetController
	sched   *tween.Scheduler

	leftNode  *scene3d.Node
	rightNode *scene3d.Node
	mother    *CharacterPlacement
	child     *CharacterPlacement
}

// NewBridgeMechanism 组装机关
// leftNode/rightNode 是场景图暴露的两个桥段变异点
func NewBridgeMechanism(cfg *config.SceneConfig, presets *PresetController, sched *tween.Scheduler,
	leftNode, rightNode *scene3d.Node, mother, child *CharacterPlacement) *BridgeMechanism {
	return &BridgeMechanism{
		cfg:       cfg,
		presets:   presets,
		sched:     sched,
		leftNode:  leftNode,
		rightNode: rightNode,
		mother:    mother,
		child:     child,
	}
}

// State 返回当前桥状态副本
func (bm *BridgeMechanism) State() BridgeState {
	return bm.state
}

// UpdateAlignment 每帧调用的对齐检查
//
// 相机进入情感视角阈值范围时闩锁置位 IsAligned；
// 一旦对齐过，即使视角再移开也保持（幻象已被"看见"）。
func (bm *BridgeMechanism) UpdateAlignment() {
	if bm.state.IsAligned {
		return
	}
	if bm.presets.IsNearEmotionalView(bm.cfg.AlignThreshold) {
		bm.state.IsAligned = true
		log.Printf("[Bridge] View aligned, bridge reads as connected")
	}
}

// TriggerMechanism 触发桥体机关
//
// 仅当相机处于对齐阈值内、或 IsAligned 已置位时生效；
// 否则静默忽略（只记日志，不报错，无用户可见错误态）。
// 生效时两段桥体各沿 x 轴相向移动固定增量（1 秒缓动），
// 完成后无条件接续角色团聚补间（2 秒）。
// 快速重复触发不做保护：同一属性上的补间同帧后写者生效。
func (bm *BridgeMechanism) TriggerMechanism() {
	if !bm.state.IsAligned && !bm.presets.IsNearEmotionalView(bm.cfg.AlignThreshold) {
		log.Printf("[Bridge] Trigger ignored: view not aligned")
		return
	}

	log.Printf("[Bridge] Mechanism triggered, shifting segments")
	startLeft := bm.state.LeftSegmentOffset
	startRight := bm.state.RightSegmentOffset
	endLeft := startLeft + bm.cfg.Bridge.TriggerOffset
	endRight := startRight - bm.cfg.Bridge.TriggerOffset
	baseLeftX := bm.cfg.Bridge.LeftSegmentPos.X
	baseRightX := bm.cfg.Bridge.RightSegmentPos.X

	bm.sched.Start(&tween.Tween{
		Duration: bm.cfg.BridgeShiftSec,
		Ease:     tween.EaseInOutSine,
		OnUpdate: func(eased float64) {
			t := float32(eased)
			bm.state.LeftSegmentOffset = startLeft + (endLeft-startLeft)*t
			bm.state.RightSegmentOffset = startRight + (endRight-startRight)*t
			if bm.leftNode != nil {
				bm.leftNode.Position.X = baseLeftX + bm.state.LeftSegmentOffset
			}
			if bm.rightNode != nil {
				bm.rightNode.Position.X = baseRightX + bm.state.RightSegmentOffset
			}
		},
		OnDone: bm.startReunion,
	})
}

// startReunion 桥段合拢完成后的角色团聚动画
// 中点在链式启动时采样一次，两个角色各自走向中点两侧
func (bm *BridgeMechanism) startReunion() {
	if bm.mother == nil || bm.child == nil {
		return
	}
	log.Printf("[Bridge] Segments joined, starting reunion")

	midpoint := bm.mother.Position.Midpoint(bm.child.Position)
	motherStart := bm.mother.Position
	childStart := bm.child.Position
	motherEnd := midpoint.Add(scene3d.Vec3{X: -reunionGap})
	childEnd := midpoint.Add(scene3d.Vec3{X: reunionGap})

	bm.sched.Start(&tween.Tween{
		Duration: bm.cfg.ReunionSec,
		Ease:     tween.EaseInOutSine,
		OnUpdate: func(eased float64) {
			t := float32(eased)
			bm.mother.SetPosition(motherStart.Lerp(motherEnd, t))
			bm.child.SetPosition(childStart.Lerp(childEnd, t))
		},
		OnDone: func() {
			log.Printf("[Bridge] Reunion complete, distance=%.2f", bm.mother.DistanceTo(bm.child))
		},
	})
}
