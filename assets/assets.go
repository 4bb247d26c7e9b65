package assets

import (
	"bytes"
	"embed"
	"fmt"
	"log"
	"path"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/lafriks/go-tiled"
	"github.com/lafriks/go-tiled/render"
	"github.com/lcs-rgordon/ics3u-2019-culminating-task/assets/levels"
	"github.com/lcs-rgordon/ics3u-2019-culminating-task/core"
	"github.com/lcs-rgordon/ics3u-2019-culminating-task/shared/leveldata"
)

var (
	//go:embed all:images
	imageFS embed.FS
)

// MustLoadStages parses every embedded stage.
func MustLoadStages(dir string) (map[string]*leveldata.Stage, []string) {
	stages, names, err := leveldata.LoadAllStages(levels.FS, dir)
	if err != nil {
		panic(fmt.Sprintf("Failed to load stages: %v", err))
	}
	return stages, names
}

// RenderBackground draws the tile layers flagged with the "render" property
// into a single image. It returns nil when the stage has nothing to draw.
func RenderBackground(stage *leveldata.Stage) *ebiten.Image {
	tmxPath := path.Join(".", stage.Name+".tmx")
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(levels.FS))
	if err != nil {
		log.Printf("Warning: Failed to load %s for rendering: %v", tmxPath, err)
		return nil
	}

	renderer, err := render.NewRendererWithFileSystem(levelMap, levels.FS)
	if err != nil {
		log.Printf("Warning: Failed to create renderer for %s: %v", tmxPath, err)
		return nil
	}

	rendered := 0
	for i, layer := range levelMap.Layers {
		if !layer.Properties.GetBool("render") {
			continue
		}
		if err := renderer.RenderLayer(i); err != nil {
			log.Printf("Warning: Failed to render layer %d of %s: %v", i, tmxPath, err)
			continue
		}
		rendered++
	}
	if rendered == 0 {
		return nil
	}

	return ebiten.NewImageFromImage(renderer.Result)
}

type ImageLoader struct {
	cache map[string]*ebiten.Image
}

func NewImageLoader() *ImageLoader {
	return &ImageLoader{
		cache: make(map[string]*ebiten.Image),
	}
}

func (l *ImageLoader) MustLoadImage(path string) *ebiten.Image {
	if img, ok := l.cache[path]; ok {
		return img
	}

	img, err := l.loadImage(path)
	if err != nil {
		panic(err)
	}

	return img
}

func (l *ImageLoader) loadImage(path string) (*ebiten.Image, error) {
	if img, ok := l.cache[path]; ok {
		return img, nil
	}

	imgBytes, err := imageFS.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read image file %s: %w", path, err)
	}

	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(imgBytes))
	if err != nil {
		return nil, fmt.Errorf("create image from bytes for %s: %w", path, err)
	}

	l.cache[path] = img

	return img, nil
}

// mirrored returns a horizontally flipped copy of img, cached under key.
func (l *ImageLoader) mirrored(key string, img *ebiten.Image) *ebiten.Image {
	if m, ok := l.cache[key]; ok {
		return m
	}

	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	m := ebiten.NewImage(w, h)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(-1, 1)
	op.GeoM.Translate(float64(w), 0)
	m.DrawImage(img, op)

	l.cache[key] = m
	return m
}

// CharacterSprite returns the image for a logical sprite key. Left walking
// frames are not stored on disk; they are the right frames mirrored.
func (l *ImageLoader) CharacterSprite(key core.SpriteKey) *ebiten.Image {
	p := fmt.Sprintf("images/characters/%s.png", key)
	if img, err := l.loadImage(p); err == nil {
		return img
	}

	if key.Pose == core.PoseWalk && key.Facing == core.FacingLeft {
		right := key
		right.Facing = core.FacingRight
		return l.mirrored(p, l.MustLoadImage(fmt.Sprintf("images/characters/%s.png", right)))
	}

	panic(fmt.Sprintf("No image for sprite %s", key))
}

var (
	imageLoader = NewImageLoader()
)

func CharacterSprite(key core.SpriteKey) *ebiten.Image {
	return imageLoader.CharacterSprite(key)
}

// PreloadCharacter loads every image a character can show to avoid lag on
// first use.
func PreloadCharacter(name string, walkFrames int) {
	for _, facing := range []core.Facing{core.FacingRight, core.FacingLeft} {
		for _, pose := range []core.Pose{core.PoseStand, core.PoseJumpUp, core.PoseJumpDown} {
			_ = CharacterSprite(core.SpriteKey{Prefix: name, Pose: pose, Facing: facing})
		}
		for i := 0; i < walkFrames; i++ {
			_ = CharacterSprite(core.SpriteKey{Prefix: name, Pose: core.PoseWalk, Facing: facing, Frame: i})
		}
	}
}
