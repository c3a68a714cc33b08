// Package scene3d 提供场景所需的最小软件 3D 层
//
// 该包承担"宿主 3D 库"的角色：向量运算、透视相机、网格与节点、
// 画家算法渲染器。所有三角形最终通过 Ebitengine 的 DrawTriangles
// 栅格化，不依赖自定义 GPU 渲染管线。
package scene3d

import (
	"github.com/chewxy/math32"
)

// Vec3 三维向量（float32）
type Vec3 struct {
	X, Y, Z float32
}

// Add 向量加法
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub 向量减法
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale 标量缩放
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Dot 点积
func (v Vec3) Dot(o Vec3) float32 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross 叉积
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Length 向量长度
func (v Vec3) Length() float32 {
	return math32.Sqrt(v.Dot(v))
}

// Normalize 归一化
// 零向量返回零向量，避免除零
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// Distance 两点间欧氏距离
func (v Vec3) Distance(o Vec3) float32 {
	return v.Sub(o).Length()
}

// Lerp 线性插值
// t=0 返回 v，t=1 返回 o
func (v Vec3) Lerp(o Vec3, t float32) Vec3 {
	return Vec3{
		X: v.X + (o.X-v.X)*t,
		Y: v.Y + (o.Y-v.Y)*t,
		Z: v.Z + (o.Z-v.Z)*t,
	}
}

// Midpoint 两点中点
func (v Vec3) Midpoint(o Vec3) Vec3 {
	return v.Lerp(o, 0.5)
}
