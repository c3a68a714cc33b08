package scene3d

import (
	"image"
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
)

// whiteImage 用作 DrawTriangles 的纹理源，颜色完全由顶点颜色决定
var whiteImage = ebiten.NewImage(3, 3)

func init() {
	whiteImage.Fill(color.White)
}

// Scene 渲染场景：节点列表 + 方向光
type Scene struct {
	Nodes []*Node

	// LightDir 方向光方向（指向光源），渲染前归一化
	LightDir Vec3
	// Ambient 环境光强度 [0,1]，避免背光面全黑
	Ambient float32
}

// NewScene 创建带默认光照的空场景
func NewScene() *Scene {
	return &Scene{
		LightDir: Vec3{0.4, 1, 0.6},
		Ambient:  0.45,
	}
}

// Add 将节点加入场景并返回该节点，便于链式保存引用
func (s *Scene) Add(n *Node) *Node {
	s.Nodes = append(s.Nodes, n)
	return s.Nodes[len(s.Nodes)-1]
}

// drawTri 渲染队列中的一个已投影三角形
type drawTri struct {
	sx, sy [3]float32
	depth  float32
	col    color.RGBA
}

// Renderer 画家算法软件渲染器
//
// 每帧流程：节点三角形 → 相机空间 → 背面剔除 → Lambert 着色 →
// 按深度从远到近排序 → DrawTriangles 栅格化。
// 场景三角形规模在几百量级，排序开销可以忽略。
type Renderer struct {
	queue []drawTri
}

// NewRenderer 创建渲染器
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Draw 将场景通过相机渲染到目标图像
func (r *Renderer) Draw(dst *ebiten.Image, scene *Scene, cam *Camera) {
	w := dst.Bounds().Dx()
	h := dst.Bounds().Dy()
	light := scene.LightDir.Normalize()

	r.queue = r.queue[:0]
	for _, node := range scene.Nodes {
		if !node.Visible || node.Mesh == nil {
			continue
		}
		for _, tri := range node.WorldTriangles() {
			// 光照在世界空间计算，与相机无关
			normal := tri.Normal()
			intensity := scene.Ambient + (1-scene.Ambient)*max32(0, normal.Dot(light))

			ca := cam.ToCameraSpace(tri.A)
			cb := cam.ToCameraSpace(tri.B)
			cc := cam.ToCameraSpace(tri.C)

			// 背面剔除：相机空间法线背向视点的面不绘制
			if cb.Sub(ca).Cross(cc.Sub(ca)).Dot(ca) >= 0 {
				continue
			}

			ax, ay, ok1 := cam.Project(ca, w, h)
			bx, by, ok2 := cam.Project(cb, w, h)
			cx, cy, ok3 := cam.Project(cc, w, h)
			if !ok1 || !ok2 || !ok3 {
				continue
			}

			r.queue = append(r.queue, drawTri{
				sx:    [3]float32{ax, bx, cx},
				sy:    [3]float32{ay, by, cy},
				depth: (ca.Z + cb.Z + cc.Z) / 3,
				col:   shade(node.Color, intensity),
			})
		}
	}

	// 画家算法：远的先画
	sort.Slice(r.queue, func(i, j int) bool {
		return r.queue[i].depth > r.queue[j].depth
	})

	src := whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	for i := range r.queue {
		t := &r.queue[i]
		cr := float32(t.col.R) / 255
		cg := float32(t.col.G) / 255
		cb := float32(t.col.B) / 255

		vertices := []ebiten.Vertex{
			{DstX: t.sx[0], DstY: t.sy[0], SrcX: 1, SrcY: 1, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: 1},
			{DstX: t.sx[1], DstY: t.sy[1], SrcX: 1, SrcY: 1, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: 1},
			{DstX: t.sx[2], DstY: t.sy[2], SrcX: 1, SrcY: 1, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: 1},
		}
		indices := []uint16{0, 1, 2}

		op := &ebiten.DrawTrianglesOptions{}
		op.FillRule = ebiten.FillAll
		dst.DrawTriangles(vertices, indices, src, op)
	}
}

// shade 按光照强度缩放基础色
func shade(c color.RGBA, intensity float32) color.RGBA {
	if intensity > 1 {
		intensity = 1
	}
	return color.RGBA{
		R: uint8(float32(c.R) * intensity),
		G: uint8(float32(c.G) * intensity),
		B: uint8(float32(c.B) * intensity),
		A: c.A,
	}
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
