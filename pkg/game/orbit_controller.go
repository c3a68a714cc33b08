package game

import (
	"github.com/chewxy/math32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gonewx/zheying/pkg/scene3d"
)

// OrbitController 指针拖拽轨道相机控制器
//
// 围绕注视点维护球坐标（半径/方位角/仰角），拖拽改角度、
// 滚轮改半径，再反算相机位置。没有外部交互库可依赖，
// 这是降级路径本身的直接实现。
type OrbitController struct {
	cam *scene3d.Camera

	radius    float32
	azimuth   float32 // 绕 y 轴的水平角
	elevation float32 // 相对水平面的仰角

	minRadius    float32
	maxRadius    float32
	minElevation float32
	maxElevation float32

	dragSensitivity float32 // 每像素弧度
	zoomStep        float32 // 每格滚轮的半径增量

	dragging     bool
	lastX, lastY int
}

// NewOrbitController 创建轨道控制器并从相机当前姿态同步球坐标
func NewOrbitController(cam *scene3d.Camera) *OrbitController {
	oc := &OrbitController{
		cam:             cam,
		minRadius:       6,
		maxRadius:       80,
		minElevation:    -0.2,
		maxElevation:    1.35,
		dragSensitivity: 0.008,
		zoomStep:        1.5,
	}
	oc.SyncFromCamera()
	return oc
}

// SyncFromCamera 从相机位置/注视点反推球坐标
// 预设切换补间直接改写相机，过渡结束后需要调用一次
func (oc *OrbitController) SyncFromCamera() {
	rel := oc.cam.Position.Sub(oc.cam.Target)
	oc.radius = rel.Length()
	if oc.radius == 0 {
		oc.radius = oc.minRadius
		return
	}
	oc.elevation = math32.Asin(clamp32(rel.Y/oc.radius, -1, 1))
	oc.azimuth = math32.Atan2(rel.X, rel.Z)
}

// Update 读取指针输入并推进拖拽状态
//
// pointerFree 为 false 时（指针被界面按钮占用）不开始新的拖拽；
// allowOrbit 为 false 时（预设过渡进行中）忽略一切轨道输入，
// 避免拖拽与相机补间争抢同一属性。
func (oc *OrbitController) Update(pointerFree, allowOrbit bool) {
	if !allowOrbit {
		oc.dragging = false
		return
	}

	x, y := ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && pointerFree {
		oc.dragging = true
		oc.lastX, oc.lastY = x, y
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		oc.dragging = false
	}
	if oc.dragging {
		dx := float32(x - oc.lastX)
		dy := float32(y - oc.lastY)
		oc.ApplyDrag(dx, dy)
		oc.lastX, oc.lastY = x, y
	}

	if _, wheelY := ebiten.Wheel(); wheelY != 0 {
		oc.ApplyZoom(float32(-wheelY))
	}
}

// ApplyDrag 按像素增量旋转轨道并回写相机位置
func (oc *OrbitController) ApplyDrag(dx, dy float32) {
	oc.azimuth -= dx * oc.dragSensitivity
	oc.elevation = clamp32(oc.elevation+dy*oc.dragSensitivity, oc.minElevation, oc.maxElevation)
	oc.applyToCamera()
}

// ApplyZoom 按滚轮增量缩放轨道半径并回写相机位置
func (oc *OrbitController) ApplyZoom(steps float32) {
	oc.radius = clamp32(oc.radius+steps*oc.zoomStep, oc.minRadius, oc.maxRadius)
	oc.applyToCamera()
}

// Radius 当前轨道半径（测试用）
func (oc *OrbitController) Radius() float32 {
	return oc.radius
}

// Elevation 当前仰角（测试用）
func (oc *OrbitController) Elevation() float32 {
	return oc.elevation
}

// applyToCamera 由球坐标反算相机位置，注视点不变
func (oc *OrbitController) applyToCamera() {
	cosE := math32.Cos(oc.elevation)
	oc.cam.Position = oc.cam.Target.Add(scene3d.Vec3{
		X: oc.radius * cosE * math32.Sin(oc.azimuth),
		Y: oc.radius * math32.Sin(oc.elevation),
		Z: oc.radius * cosE * math32.Cos(oc.azimuth),
	})
}

func clamp32(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
