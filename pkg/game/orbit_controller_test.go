package game

import (
	"testing"

	"github.com/gonewx/zheying/pkg/scene3d"
)

func newTestOrbit() (*OrbitController, *scene3d.Camera) {
	cam := scene3d.NewCamera(960, 600)
	cam.Position = scene3d.Vec3{X: 0, Y: 7, Z: 26}
	cam.Target = scene3d.Vec3{Y: 2}
	return NewOrbitController(cam), cam
}

// TestOrbitSyncRoundTrip 球坐标反推后回写应还原相机位置
func TestOrbitSyncRoundTrip(t *testing.T) {
	oc, cam := newTestOrbit()
	before := cam.Position

	// 不改任何角度，直接回写
	oc.ApplyDrag(0, 0)

	if !almostEqual32(cam.Position.X, before.X) ||
		!almostEqual32(cam.Position.Y, before.Y) ||
		!almostEqual32(cam.Position.Z, before.Z) {
		t.Errorf("回写后位置 = %v, 期望还原 %v", cam.Position, before)
	}
}

// TestOrbitDragKeepsRadius 拖拽只旋转，不改变与注视点的距离
func TestOrbitDragKeepsRadius(t *testing.T) {
	oc, cam := newTestOrbit()
	before := cam.Position.Distance(cam.Target)

	oc.ApplyDrag(120, -45)

	after := cam.Position.Distance(cam.Target)
	if !almostEqual32(before, after) {
		t.Errorf("拖拽改变了轨道半径: %v → %v", before, after)
	}
}

// TestOrbitElevationClamped 仰角被钳制在上下限之间
func TestOrbitElevationClamped(t *testing.T) {
	oc, _ := newTestOrbit()

	// 大幅向上拖拽（dy 为正增大仰角）
	for i := 0; i < 50; i++ {
		oc.ApplyDrag(0, 200)
	}
	if oc.Elevation() > 1.35 {
		t.Errorf("仰角 = %v, 超出上限 1.35", oc.Elevation())
	}

	// 大幅反向拖拽
	for i := 0; i < 50; i++ {
		oc.ApplyDrag(0, -200)
	}
	if oc.Elevation() < -0.2 {
		t.Errorf("仰角 = %v, 超出下限 -0.2", oc.Elevation())
	}
}

// TestOrbitZoomClamped 滚轮缩放被钳制在半径上下限之间
func TestOrbitZoomClamped(t *testing.T) {
	oc, cam := newTestOrbit()

	for i := 0; i < 200; i++ {
		oc.ApplyZoom(1)
	}
	if oc.Radius() > 80 {
		t.Errorf("半径 = %v, 超出上限 80", oc.Radius())
	}
	if d := cam.Position.Distance(cam.Target); !almostEqual32(d, oc.Radius()) {
		t.Errorf("相机距离 %v 与半径 %v 不一致", d, oc.Radius())
	}

	for i := 0; i < 200; i++ {
		oc.ApplyZoom(-1)
	}
	if oc.Radius() < 6 {
		t.Errorf("半径 = %v, 低于下限 6", oc.Radius())
	}
}

// TestOrbitTargetUnchanged 轨道操作不改动注视点
func TestOrbitTargetUnchanged(t *testing.T) {
	oc, cam := newTestOrbit()
	target := cam.Target

	oc.ApplyDrag(300, 80)
	oc.ApplyZoom(5)

	if cam.Target != target {
		t.Errorf("注视点被改动: %v → %v", cam.Target, target)
	}
}

func almostEqual32(a, b float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 1e-3
}
