package scenes

import (
	"fmt"
	"image/color"
	"log"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/gonewx/zheying/pkg/game"
	"github.com/gonewx/zheying/pkg/scene3d"
)

// LoadingScene 加载场景
//
// 启动时为两个角色模型各发起一次异步加载，逐帧非阻塞地
// 消费结果；加载失败以占位体替代（仅记日志）。两个结果
// 都就绪后切换到断桥场景。
type LoadingScene struct {
	ctx          *game.Context
	sceneManager *game.SceneManager

	motherCh <-chan game.LoadResult
	childCh  <-chan game.LoadResult

	motherMesh *scene3d.Mesh
	childMesh  *scene3d.Mesh

	elapsed float64
}

// NewLoadingScene 创建加载场景并发起模型加载
func NewLoadingScene(ctx *game.Context, sceneManager *game.SceneManager) *LoadingScene {
	motherPath := filepath.Join(ctx.AssetDir, "models", "mother.obj")
	childPath := filepath.Join(ctx.AssetDir, "models", "child.obj")

	log.Printf("[Loading] Loading models: %s, %s", motherPath, childPath)
	return &LoadingScene{
		ctx:          ctx,
		sceneManager: sceneManager,
		motherCh:     game.LoadModelAsync(motherPath),
		childCh:      game.LoadModelAsync(childPath),
	}
}

// Update 轮询加载结果，全部就绪后切换场景
func (s *LoadingScene) Update(deltaTime float64) {
	s.elapsed += deltaTime

	if s.motherMesh == nil {
		select {
		case result := <-s.motherCh:
			s.motherMesh = game.ResolveCharacterMesh(result)
		default:
		}
	}
	if s.childMesh == nil {
		select {
		case result := <-s.childCh:
			s.childMesh = game.ResolveCharacterMesh(result)
		default:
		}
	}

	if s.motherMesh != nil && s.childMesh != nil {
		log.Printf("[Loading] Assets resolved in %.2fs, entering bridge scene", s.elapsed)
		s.sceneManager.SwitchTo(NewBridgeScene(s.ctx, s.motherMesh, s.childMesh))
	}
}

// Draw 简单的加载画面
func (s *LoadingScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 40, G: 34, B: 50, A: 255})

	w := screen.Bounds().Dx()
	h := screen.Bounds().Dy()
	dots := int(s.elapsed*2) % 4
	msg := "Loading"
	for i := 0; i < dots; i++ {
		msg += "."
	}
	ebitenutil.DebugPrintAt(screen, "qing jing zhe ying", w/2-60, h/2-20)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%-10s", msg), w/2-30, h/2)
}
