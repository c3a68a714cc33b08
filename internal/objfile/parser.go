// Package objfile 提供 Wavefront OBJ 模型文件的最小解析器
//
// 只支持场景所需的子集：顶点行（v）与面行（f），面按扇形展开成
// 三角形。法线、纹理坐标、材质库等指令一律跳过。
package objfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Vertex OBJ 顶点坐标
type Vertex struct {
	X, Y, Z float32
}

// Face 三角化后的面，存放三个顶点索引（0 基）
type Face struct {
	A, B, C int
}

// Model 解析结果：顶点与三角面
type Model struct {
	Vertices []Vertex
	Faces    []Face
}

// ParseFile 解析 OBJ 模型文件
//
// Parameters:
//   - path: 模型文件路径，例如 "assets/models/mother.obj"
//
// Returns:
//   - *Model: 解析出的模型数据
//   - error: 读取或解析错误，成功时为 nil
func ParseFile(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open obj file '%s': %w", path, err)
	}
	defer f.Close()

	model, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse obj file '%s': %w", path, err)
	}
	return model, nil
}

// Parse 从流中解析 OBJ 数据
//
// 支持的行：
//   - "v x y z"            顶点
//   - "f a b c [d ...]"    面，索引为 1 基，可带 "a/vt/vn" 形式，负索引相对末尾
//   - "#" 开头的注释与其他指令（vn/vt/o/g/s/usemtl/mtllib）跳过
func Parse(r io.Reader) (*Model, error) {
	model := &Model{}
	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: vertex needs 3 coordinates, got %d", lineNo, len(fields)-1)
			}
			var coords [3]float32
			for i := 0; i < 3; i++ {
				val, err := strconv.ParseFloat(fields[i+1], 32)
				if err != nil {
					return nil, fmt.Errorf("line %d: invalid vertex coordinate '%s': %w", lineNo, fields[i+1], err)
				}
				coords[i] = float32(val)
			}
			model.Vertices = append(model.Vertices, Vertex{coords[0], coords[1], coords[2]})

		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: face needs at least 3 vertices, got %d", lineNo, len(fields)-1)
			}
			indices := make([]int, 0, len(fields)-1)
			for _, ref := range fields[1:] {
				idx, err := parseFaceIndex(ref, len(model.Vertices))
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNo, err)
				}
				indices = append(indices, idx)
			}
			// 多边形按扇形三角化
			for i := 2; i < len(indices); i++ {
				model.Faces = append(model.Faces, Face{indices[0], indices[i-1], indices[i]})
			}

		default:
			// 其他指令跳过
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read error: %w", err)
	}

	if len(model.Vertices) == 0 || len(model.Faces) == 0 {
		return nil, fmt.Errorf("model has no geometry (vertices=%d, faces=%d)", len(model.Vertices), len(model.Faces))
	}
	return model, nil
}

// parseFaceIndex 解析面行中的单个顶点引用
// 形如 "7"、"7/2"、"7/2/3"、"7//3"；负数相对顶点表末尾
func parseFaceIndex(ref string, vertexCount int) (int, error) {
	head := ref
	if slash := strings.IndexByte(ref, '/'); slash >= 0 {
		head = ref[:slash]
	}
	idx, err := strconv.Atoi(head)
	if err != nil {
		return 0, fmt.Errorf("invalid face index '%s': %w", ref, err)
	}
	if idx < 0 {
		idx = vertexCount + idx
	} else {
		idx--
	}
	if idx < 0 || idx >= vertexCount {
		return 0, fmt.Errorf("face index '%s' out of range (vertices=%d)", ref, vertexCount)
	}
	return idx, nil
}
