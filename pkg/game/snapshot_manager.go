package game

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/HugoSmits86/nativewebp"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// SnapshotFormat 截图编码格式
type SnapshotFormat string

const (
	FormatPNG  SnapshotFormat = "png"
	FormatJPEG SnapshotFormat = "jpeg"
	FormatWebP SnapshotFormat = "webp"
)

// ParseSnapshotFormat 解析格式名，未知值回退 PNG
func ParseSnapshotFormat(name string) SnapshotFormat {
	switch SnapshotFormat(name) {
	case FormatPNG, FormatJPEG, FormatWebP:
		return SnapshotFormat(name)
	default:
		return FormatPNG
	}
}

// ext 返回格式对应的文件扩展名
func (f SnapshotFormat) ext() string {
	switch f {
	case FormatJPEG:
		return "jpg"
	case FormatWebP:
		return "webp"
	default:
		return "png"
	}
}

// MemoryRecord 一次留影的记录
type MemoryRecord struct {
	File    string    `yaml:"file"`    // 输出文件名
	Preset  string    `yaml:"preset"`  // 留影时的视角显示名
	State   string    `yaml:"state"`   // 留影时的叙事状态
	SavedAt time.Time `yaml:"savedAt"` // 保存时间
}

// GalleryData 留影索引，经 gdata 持久化
type GalleryData struct {
	Memories []MemoryRecord `yaml:"memories"`
}

// gdata 存储路径常量
const (
	galleryObject   = "gallery"
	galleryProperty = "index"
)

// SnapshotManager 留影管理器
//
// 把当前帧编码为图片文件写入留影目录（浏览器下载的本地对应物），
// 文件名带时间戳；同时维护一份经 gdata 持久化的留影索引。
// 索引持久化失败只记日志，不影响图片落盘。
type SnapshotManager struct {
	dir     string
	format  SnapshotFormat
	quality int // JPEG 质量 1~100

	gdataManager *gdata.Manager // 可为 nil（降级模式，索引仅内存）
	gallery      *GalleryData

	// now 可注入的时钟，测试用；nil 时取 time.Now
	now func() time.Time
}

// NewSnapshotManager 创建留影管理器并加载已有索引
func NewSnapshotManager(dir string, format SnapshotFormat, quality int, gdataManager *gdata.Manager) *SnapshotManager {
	sm := &SnapshotManager{
		dir:          dir,
		format:       format,
		quality:      quality,
		gdataManager: gdataManager,
		gallery:      &GalleryData{},
	}
	if err := sm.loadGallery(); err != nil {
		log.Printf("[Snapshot] Warning: failed to load gallery index: %v", err)
	}
	return sm
}

// SetFormat 切换编码格式
func (sm *SnapshotManager) SetFormat(format SnapshotFormat) {
	sm.format = format
}

// Gallery 返回当前留影索引
func (sm *SnapshotManager) Gallery() *GalleryData {
	return sm.gallery
}

// Capture 将一帧画面编码落盘并记录索引
//
// 参数：
//   - frame: 当前帧的离屏图像
//   - presetLabel: 留影时的视角显示名
//   - stateName: 留影时的叙事状态名
//
// 返回：
//   - string: 写出的文件路径
//   - error: 读取像素、编码或写文件失败
func (sm *SnapshotManager) Capture(frame *ebiten.Image, presetLabel, stateName string) (string, error) {
	bounds := frame.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	pix := make([]byte, 4*w*h)
	frame.ReadPixels(pix)
	img := &image.RGBA{
		Pix:    pix,
		Stride: 4 * w,
		Rect:   image.Rect(0, 0, w, h),
	}

	if err := os.MkdirAll(sm.dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create snapshot dir '%s': %w", sm.dir, err)
	}

	stamp := sm.clock().Format("20060102_150405")
	name := fmt.Sprintf("memory_%s.%s", stamp, sm.format.ext())
	path := filepath.Join(sm.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create snapshot file '%s': %w", path, err)
	}
	defer f.Close()

	switch sm.format {
	case FormatJPEG:
		err = jpeg.Encode(f, img, &jpeg.Options{Quality: sm.quality})
	case FormatWebP:
		err = nativewebp.Encode(f, img, nil)
	default:
		err = png.Encode(f, img)
	}
	if err != nil {
		return "", fmt.Errorf("failed to encode snapshot '%s': %w", path, err)
	}

	sm.gallery.Memories = append(sm.gallery.Memories, MemoryRecord{
		File:    name,
		Preset:  presetLabel,
		State:   stateName,
		SavedAt: sm.clock(),
	})
	if err := sm.saveGallery(); err != nil {
		// 索引保存失败不影响已写出的图片
		log.Printf("[Snapshot] Warning: failed to save gallery index: %v", err)
	}

	log.Printf("[Snapshot] Memory saved: %s", path)
	return path, nil
}

func (sm *SnapshotManager) clock() time.Time {
	if sm.now != nil {
		return sm.now()
	}
	return time.Now()
}

// loadGallery 从 gdata 加载留影索引
func (sm *SnapshotManager) loadGallery() error {
	if sm.gdataManager == nil {
		return nil
	}
	if !sm.gdataManager.ObjectPropExists(galleryObject, galleryProperty) {
		return nil
	}
	data, err := sm.gdataManager.LoadObjectProp(galleryObject, galleryProperty)
	if err != nil {
		return fmt.Errorf("failed to load gallery: %w", err)
	}
	var gallery GalleryData
	if err := yaml.Unmarshal(data, &gallery); err != nil {
		return fmt.Errorf("failed to unmarshal gallery: %w", err)
	}
	sm.gallery = &gallery
	return nil
}

// saveGallery 将留影索引写回 gdata
func (sm *SnapshotManager) saveGallery() error {
	if sm.gdataManager == nil {
		return nil
	}
	data, err := yaml.Marshal(sm.gallery)
	if err != nil {
		return fmt.Errorf("failed to marshal gallery: %w", err)
	}
	if err := sm.gdataManager.SaveObjectProp(galleryObject, galleryProperty, data); err != nil {
		return fmt.Errorf("failed to save gallery: %w", err)
	}
	return nil
}
