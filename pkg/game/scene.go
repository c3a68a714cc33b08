package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a game scene (e.g., loading, bridge stage).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	// screen is the target image where the scene should be drawn.
	Draw(screen *ebiten.Image)
}

// Resizable 是一个可选接口，输出表面尺寸变化时通知场景
//
// 实现此接口的场景会在窗口尺寸变化后收到 OnResize 调用，
// 用于重算相机投影参数（宽高比）。
type Resizable interface {
	// OnResize 通知场景新的输出表面尺寸（像素）
	OnResize(width, height int)
}
