package utils

import (
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
)

// LoadFontFace 从 OTF/TTF 文件加载指定字号的字体
//
// 字体缺失是非致命错误：调用方收到错误后应回退到调试字体，
// 界面文案降级为 ASCII。
//
// 参数：
//   - path: 字体文件路径，例如 "assets/fonts/zheying.otf"
//   - size: 字号（磅）
//
// 返回：
//   - font.Face: 可用于 text.Draw 的字体
//   - error: 读取或解析失败
func LoadFontFace(path string, size float64) (font.Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font '%s': %w", path, err)
	}

	tt, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font '%s': %w", path, err)
	}

	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create face for '%s': %w", path, err)
	}
	return face, nil
}
