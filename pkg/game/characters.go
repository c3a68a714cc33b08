package game

import (
	"image/color"
	"log"

	"github.com/gonewx/zheying/internal/objfile"
	"github.com/gonewx/zheying/pkg/scene3d"
)

// CharacterPlacement 角色放置：位置 + 场景节点
//
// 启动时创建（外部模型或占位体素人），团聚补间改写位置，
// 会话期间不会销毁。
type CharacterPlacement struct {
	Name     string
	Position scene3d.Vec3
	Node     *scene3d.Node
}

// NewCharacterPlacement 创建角色并同步节点位置
func NewCharacterPlacement(name string, mesh *scene3d.Mesh, pos scene3d.Vec3, col color.RGBA) *CharacterPlacement {
	node := scene3d.NewNode(mesh, pos, col)
	return &CharacterPlacement{
		Name:     name,
		Position: pos,
		Node:     node,
	}
}

// SetPosition 移动角色，保持节点与逻辑位置一致
func (cp *CharacterPlacement) SetPosition(pos scene3d.Vec3) {
	cp.Position = pos
	cp.Node.Position = pos
}

// DistanceTo 与另一角色的欧氏距离
func (cp *CharacterPlacement) DistanceTo(other *CharacterPlacement) float32 {
	return cp.Position.Distance(other.Position)
}

// LoadResult 模型加载的结果：成功网格或错误，二者取一
type LoadResult struct {
	Path string
	Mesh *scene3d.Mesh
	Err  error
}

// LoadModelAsync 异步加载 OBJ 模型，返回承载结果的通道
//
// 每个加载请求对应一个单次结果；失败在此记录并由调用方
// 以占位体替代（对本次会话视为永久失败，无重试）。
func LoadModelAsync(path string) <-chan LoadResult {
	ch := make(chan LoadResult, 1)
	go func() {
		model, err := objfile.ParseFile(path)
		if err != nil {
			ch <- LoadResult{Path: path, Err: err}
			return
		}
		ch <- LoadResult{Path: path, Mesh: MeshFromModel(model)}
	}()
	return ch
}

// MeshFromModel 将解析出的 OBJ 模型转换为渲染网格
func MeshFromModel(model *objfile.Model) *scene3d.Mesh {
	mesh := &scene3d.Mesh{Triangles: make([]scene3d.Triangle, 0, len(model.Faces))}
	vec := func(v objfile.Vertex) scene3d.Vec3 {
		return scene3d.Vec3{X: v.X, Y: v.Y, Z: v.Z}
	}
	for _, f := range model.Faces {
		mesh.Triangles = append(mesh.Triangles, scene3d.Triangle{
			A: vec(model.Vertices[f.A]),
			B: vec(model.Vertices[f.B]),
			C: vec(model.Vertices[f.C]),
		})
	}
	return mesh
}

// ResolveCharacterMesh 消费加载结果：成功用模型网格，失败记日志并退回占位体
func ResolveCharacterMesh(result LoadResult) *scene3d.Mesh {
	if result.Err != nil {
		log.Printf("[Characters] Failed to load model %s: %v (using placeholder)", result.Path, result.Err)
		return NewPlaceholderFigure()
	}
	log.Printf("[Characters] Model loaded: %s (%d triangles)", result.Path, len(result.Mesh.Triangles))
	return result.Mesh
}

// NewPlaceholderFigure 构建占位角色：头 + 躯干两个方块叠成的小人
// 外部模型缺失时的视觉降级
func NewPlaceholderFigure() *scene3d.Mesh {
	body := scene3d.NewBoxMesh(0.9, 1.6, 0.6)
	head := scene3d.NewBoxMesh(0.7, 0.7, 0.7)

	mesh := &scene3d.Mesh{}
	mesh.Triangles = append(mesh.Triangles, body.Triangles...)
	for _, t := range head.Triangles {
		lift := scene3d.Vec3{Y: 1.25}
		mesh.Triangles = append(mesh.Triangles, scene3d.Triangle{
			A: t.A.Add(lift),
			B: t.B.Add(lift),
			C: t.C.Add(lift),
		})
	}
	return mesh
}
