package objfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestParseTriangles 基础顶点与三角面
func TestParseTriangles(t *testing.T) {
	obj := `# comment
v 0 0 0
v 1 0 0
v 0 1 0
f 1 2 3
`
	model, err := Parse(strings.NewReader(obj))
	if err != nil {
		t.Fatalf("解析失败: %v", err)
	}
	if len(model.Vertices) != 3 {
		t.Errorf("顶点数 = %d, 期望 3", len(model.Vertices))
	}
	if len(model.Faces) != 1 {
		t.Fatalf("面数 = %d, 期望 1", len(model.Faces))
	}
	if model.Faces[0] != (Face{0, 1, 2}) {
		t.Errorf("面索引 = %+v, 期望 {0 1 2}", model.Faces[0])
	}
	if model.Vertices[1].X != 1 {
		t.Errorf("顶点坐标 = %+v", model.Vertices[1])
	}
}

// TestParseQuadFan 四边形按扇形三角化为两个三角形
func TestParseQuadFan(t *testing.T) {
	obj := `
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
f 1 2 3 4
`
	model, err := Parse(strings.NewReader(obj))
	if err != nil {
		t.Fatalf("解析失败: %v", err)
	}
	if len(model.Faces) != 2 {
		t.Fatalf("面数 = %d, 期望 2", len(model.Faces))
	}
	if model.Faces[0] != (Face{0, 1, 2}) || model.Faces[1] != (Face{0, 2, 3}) {
		t.Errorf("扇形三角化结果 = %+v", model.Faces)
	}
}

// TestParseFaceRefForms 面引用的各种写法
func TestParseFaceRefForms(t *testing.T) {
	tests := []struct {
		name string
		face string
	}{
		{"纯索引", "f 1 2 3"},
		{"带纹理", "f 1/1 2/2 3/3"},
		{"带法线", "f 1//1 2//1 3//1"},
		{"全引用", "f 1/1/1 2/2/1 3/3/1"},
		{"负索引", "f -3 -2 -1"},
	}
	header := "v 0 0 0\nv 1 0 0\nv 0 1 0\n"
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model, err := Parse(strings.NewReader(header + tt.face + "\n"))
			if err != nil {
				t.Fatalf("解析失败: %v", err)
			}
			if model.Faces[0] != (Face{0, 1, 2}) {
				t.Errorf("面索引 = %+v, 期望 {0 1 2}", model.Faces[0])
			}
		})
	}
}

// TestParseSkipsOtherDirectives 法线、纹理坐标等指令被跳过
func TestParseSkipsOtherDirectives(t *testing.T) {
	obj := `
mtllib scene.mtl
o figure
v 0 0 0
v 1 0 0
v 0 1 0
vn 0 0 1
vt 0.5 0.5
s off
usemtl body
f 1 2 3
`
	model, err := Parse(strings.NewReader(obj))
	if err != nil {
		t.Fatalf("解析失败: %v", err)
	}
	if len(model.Vertices) != 3 || len(model.Faces) != 1 {
		t.Errorf("顶点/面 = %d/%d, 期望 3/1", len(model.Vertices), len(model.Faces))
	}
}

// TestParseErrors 各类格式错误都带行号返回
func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		obj  string
	}{
		{"顶点坐标不足", "v 1 2\n"},
		{"顶点坐标非数字", "v a b c\n"},
		{"面顶点不足", "v 0 0 0\nv 1 0 0\nf 1 2\n"},
		{"面索引越界", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 9\n"},
		{"面索引非数字", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 x\n"},
		{"空模型", "# nothing here\n"},
		{"只有顶点没有面", "v 0 0 0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(strings.NewReader(tt.obj)); err == nil {
				t.Error("期望解析错误, 得到 nil")
			}
		})
	}
}

// TestParseFile 文件入口：成功路径与缺失文件
func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tri.obj")
	if err := os.WriteFile(path, []byte("v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"), 0644); err != nil {
		t.Fatal(err)
	}

	model, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile 失败: %v", err)
	}
	if len(model.Faces) != 1 {
		t.Errorf("面数 = %d", len(model.Faces))
	}

	if _, err := ParseFile(filepath.Join(t.TempDir(), "missing.obj")); err == nil {
		t.Error("缺失文件应返回错误")
	}
}
