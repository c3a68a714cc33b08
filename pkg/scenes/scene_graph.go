// Package scenes 实现游戏的各个场景（加载场景、断桥场景）
package scenes

import (
	"image/color"

	"github.com/gonewx/zheying/pkg/config"
	"github.com/gonewx/zheying/pkg/scene3d"
)

// Monument Valley 式低饱和配色
var (
	colPlatform = color.RGBA{R: 208, G: 132, B: 100, A: 255} // 砂岩平台
	colBridge   = color.RGBA{R: 236, G: 214, B: 176, A: 255} // 米色桥体
	colPillar   = color.RGBA{R: 156, G: 116, B: 160, A: 255} // 紫灰立柱
	colLintel   = color.RGBA{R: 222, G: 168, B: 120, A: 255} // 柱顶横梁
	colMother   = color.RGBA{R: 198, G: 84, B: 88, A: 255}   // 母亲：赭红
	colChild    = color.RGBA{R: 88, G: 124, B: 198, A: 255}  // 孩子：群青
	colSky      = color.RGBA{R: 244, G: 228, B: 205, A: 255} // 暖色天空
)

// SceneGraph 静态场景图与它暴露的变异点
//
// 两段桥体节点交给机关做位移；角色节点由断桥场景在
// 模型加载完成后挂入。其余几何构造后不再修改。
type SceneGraph struct {
	World *scene3d.Scene

	// LeftBridge / RightBridge 两段断桥，机关触发时沿 x 轴合拢
	LeftBridge  *scene3d.Node
	RightBridge *scene3d.Node
}

// BuildSceneGraph 按配置构建静态几何
//
// 布局：两座平台隔裂谷相对，各悬一段桥体；平台上立装饰柱与横梁。
// 桥面与平台顶面齐平，从情感视角看两段桥恰好在画面上接续。
func BuildSceneGraph(cfg *config.SceneConfig) *SceneGraph {
	world := scene3d.NewScene()

	bridgeTop := cfg.Bridge.LeftSegmentPos.Y + cfg.Bridge.SegmentThickness/2

	// 平台：顶面与桥面齐平
	platformMesh := scene3d.NewBoxMesh(8, 6, 8)
	platformCenterY := bridgeTop - 3
	world.Add(scene3d.NewNode(platformMesh, scene3d.Vec3{X: -12, Y: platformCenterY, Z: 0}, colPlatform))
	world.Add(scene3d.NewNode(platformMesh, scene3d.Vec3{X: 12, Y: platformCenterY, Z: 0}, colPlatform))

	// 两段断桥
	segMesh := scene3d.NewBoxMesh(cfg.Bridge.SegmentLength, cfg.Bridge.SegmentThickness, cfg.Bridge.SegmentWidth)
	left := world.Add(scene3d.NewNode(segMesh, scene3d.Vec3{
		X: cfg.Bridge.LeftSegmentPos.X,
		Y: cfg.Bridge.LeftSegmentPos.Y,
		Z: cfg.Bridge.LeftSegmentPos.Z,
	}, colBridge))
	right := world.Add(scene3d.NewNode(segMesh, scene3d.Vec3{
		X: cfg.Bridge.RightSegmentPos.X,
		Y: cfg.Bridge.RightSegmentPos.Y,
		Z: cfg.Bridge.RightSegmentPos.Z,
	}, colBridge))

	// 装饰柱：每座平台后沿两根
	pillarMesh := scene3d.NewBoxMesh(0.8, 3.5, 0.8)
	pillarY := bridgeTop + 1.75
	for _, px := range []float32{-14.5, -9.5, 9.5, 14.5} {
		world.Add(scene3d.NewNode(pillarMesh, scene3d.Vec3{X: px, Y: pillarY, Z: -3}, colPillar))
	}

	// 柱顶横梁
	lintelMesh := scene3d.NewBoxMesh(6.2, 0.6, 1)
	lintelY := bridgeTop + 3.8
	world.Add(scene3d.NewNode(lintelMesh, scene3d.Vec3{X: -12, Y: lintelY, Z: -3}, colLintel))
	world.Add(scene3d.NewNode(lintelMesh, scene3d.Vec3{X: 12, Y: lintelY, Z: -3}, colLintel))

	return &SceneGraph{
		World:       world,
		LeftBridge:  left,
		RightBridge: right,
	}
}
