package scene3d

import (
	"image/color"
)

// Triangle 单个三角面
// 顶点按逆时针绕序定义正面；法线由绕序推导，不单独存储
type Triangle struct {
	A, B, C Vec3
}

// Normal 面法线（单位向量）
func (t Triangle) Normal() Vec3 {
	return t.B.Sub(t.A).Cross(t.C.Sub(t.A)).Normalize()
}

// Center 面中心（用于深度排序）
func (t Triangle) Center() Vec3 {
	return Vec3{
		X: (t.A.X + t.B.X + t.C.X) / 3,
		Y: (t.A.Y + t.B.Y + t.C.Y) / 3,
		Z: (t.A.Z + t.B.Z + t.C.Z) / 3,
	}
}

// Mesh 三角网格
// 网格本身不带变换，位置与缩放由挂载它的 Node 决定
type Mesh struct {
	Triangles []Triangle
}

// NewBoxMesh 构建以原点为中心的长方体网格
// sx/sy/sz 为三个方向的全长
func NewBoxMesh(sx, sy, sz float32) *Mesh {
	hx, hy, hz := sx/2, sy/2, sz/2

	// 8 个角点
	p := [8]Vec3{
		{-hx, -hy, -hz}, {hx, -hy, -hz}, {hx, hy, -hz}, {-hx, hy, -hz},
		{-hx, -hy, hz}, {hx, -hy, hz}, {hx, hy, hz}, {-hx, hy, hz},
	}

	// 每面两个三角形，逆时针绕序朝外
	quads := [6][4]int{
		{1, 0, 3, 2}, // 前 (-z)
		{4, 5, 6, 7}, // 后 (+z)
		{0, 4, 7, 3}, // 左 (-x)
		{5, 1, 2, 6}, // 右 (+x)
		{3, 7, 6, 2}, // 上 (+y)
		{0, 1, 5, 4}, // 下 (-y)
	}

	m := &Mesh{Triangles: make([]Triangle, 0, 12)}
	for _, q := range quads {
		m.Triangles = append(m.Triangles,
			Triangle{p[q[0]], p[q[1]], p[q[2]]},
			Triangle{p[q[0]], p[q[2]], p[q[3]]},
		)
	}
	return m
}

// Node 场景节点：网格 + 平移/缩放 + 颜色
// 旋转对本场景的静态几何没有需求，故不提供
type Node struct {
	Mesh     *Mesh
	Position Vec3
	ScaleXYZ Vec3
	Color    color.RGBA
	Visible  bool
}

// NewNode 创建默认缩放为 1 的可见节点
func NewNode(mesh *Mesh, pos Vec3, col color.RGBA) *Node {
	return &Node{
		Mesh:     mesh,
		Position: pos,
		ScaleXYZ: Vec3{1, 1, 1},
		Color:    col,
		Visible:  true,
	}
}

// WorldTriangles 返回应用节点变换后的世界空间三角形
func (n *Node) WorldTriangles() []Triangle {
	out := make([]Triangle, 0, len(n.Mesh.Triangles))
	for _, t := range n.Mesh.Triangles {
		out = append(out, Triangle{
			A: n.transform(t.A),
			B: n.transform(t.B),
			C: n.transform(t.C),
		})
	}
	return out
}

func (n *Node) transform(p Vec3) Vec3 {
	return Vec3{
		X: p.X*n.ScaleXYZ.X + n.Position.X,
		Y: p.Y*n.ScaleXYZ.Y + n.Position.Y,
		Z: p.Z*n.ScaleXYZ.Z + n.Position.Z,
	}
}
