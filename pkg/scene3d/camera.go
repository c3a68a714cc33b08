package scene3d

import (
	"github.com/chewxy/math32"
)

// Camera 透视相机
//
// Position/Target 由预设控制器和轨道控制器直接改写；
// 视图基底在每帧投影前由 LookAt 推导，不单独缓存。
type Camera struct {
	Position Vec3    // 相机位置（世界坐标）
	Target   Vec3    // 注视点（世界坐标）
	Up       Vec3    // 上方向，通常 (0,1,0)
	FovY     float32 // 垂直视场角（弧度）
	Aspect   float32 // 宽高比 width/height
	Near     float32 // 近裁剪面，相机空间 z 小于该值的三角形被丢弃
}

// NewCamera 创建默认参数的透视相机
func NewCamera(width, height int) *Camera {
	c := &Camera{
		Position: Vec3{0, 10, 20},
		Target:   Vec3{0, 0, 0},
		Up:       Vec3{0, 1, 0},
		FovY:     math32.Pi / 4,
		Near:     0.1,
	}
	c.SetAspect(width, height)
	return c
}

// SetAspect 根据输出表面尺寸更新宽高比
// 窗口缩放后必须调用，保证 Aspect 精确等于 width/height
func (c *Camera) SetAspect(width, height int) {
	if height <= 0 {
		return
	}
	c.Aspect = float32(width) / float32(height)
}

// basis 由 LookAt 推导相机空间的右/上/前三个基向量
// 满足 right×up = forward，屏幕 x 向右、y 向上、z 沿视线
func (c *Camera) basis() (right, up, forward Vec3) {
	forward = c.Target.Sub(c.Position).Normalize()
	right = c.Up.Cross(forward).Normalize()
	up = forward.Cross(right)
	return right, up, forward
}

// ToCameraSpace 将世界坐标点变换到相机空间
// 相机空间：x 向右，y 向上，z 沿视线方向为正
func (c *Camera) ToCameraSpace(p Vec3) Vec3 {
	right, up, forward := c.basis()
	rel := p.Sub(c.Position)
	return Vec3{
		X: rel.Dot(right),
		Y: rel.Dot(up),
		Z: rel.Dot(forward),
	}
}

// Project 将相机空间点投影到屏幕坐标
//
// 返回屏幕坐标与是否可见（z >= Near）。
// 投影采用标准针孔模型：focal = (height/2) / tan(FovY/2)
func (c *Camera) Project(p Vec3, width, height int) (sx, sy float32, ok bool) {
	if p.Z < c.Near {
		return 0, 0, false
	}
	focal := float32(height) / 2 / math32.Tan(c.FovY/2)
	sx = p.X*focal/p.Z + float32(width)/2
	sy = -p.Y*focal/p.Z + float32(height)/2
	return sx, sy, true
}
