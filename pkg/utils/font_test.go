package utils

import (
	"os"
	"path/filepath"
	"testing"
)

// TestLoadFontFaceMissingFile 字体缺失返回错误而不是崩溃
func TestLoadFontFaceMissingFile(t *testing.T) {
	_, err := LoadFontFace(filepath.Join(t.TempDir(), "no-such.otf"), 16)
	if err == nil {
		t.Error("缺失字体文件应返回错误")
	}
}

// TestLoadFontFaceInvalidData 非字体数据返回解析错误
func TestLoadFontFaceInvalidData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bogus.otf")
	if err := os.WriteFile(path, []byte("not a font"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFontFace(path, 16); err == nil {
		t.Error("非法字体数据应返回错误")
	}
}
