package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// DefaultTravel is the amplitude of a floating platform without a "travel"
// property.
const DefaultTravel = 64

// LoadStage parses a TMX file and returns its platforms, spawn points and
// bounds. It takes an fs.FS so callers can pass embed.FS or os.DirFS.
func LoadStage(fsys fs.FS, tmxPath string) (*Stage, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	stage := &Stage{
		Name:       strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:      levelMap.Width * levelMap.TileWidth,
		Height:     levelMap.Height * levelMap.TileHeight,
		TileWidth:  levelMap.TileWidth,
		TileHeight: levelMap.TileHeight,
	}

	stage.VisibleWidth = stage.Width
	if levelMap.Properties != nil {
		if vw := levelMap.Properties.GetInt("visibleWidth"); vw > 0 {
			stage.VisibleWidth = vw
		}
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Platforms":
			for _, o := range og.Objects {
				if o.Width <= 0 || o.Height <= 0 {
					return nil, fmt.Errorf("platform %d in %s has no area", o.ID, tmxPath)
				}

				class := o.Class
				if class == "" {
					class = o.Type //nolint:staticcheck // older TMX files use type=
				}
				p := Platform{
					X:        o.X,
					Y:        o.Y,
					W:        o.Width,
					H:        o.Height,
					Floating: class == "floating",
				}
				if p.Floating {
					p.Travel = o.Properties.GetFloat("travel")
					if p.Travel <= 0 {
						p.Travel = DefaultTravel
					}
				}
				stage.Platforms = append(stage.Platforms, p)
			}
		case "PlayerSpawn":
			for _, o := range og.Objects {
				stage.Spawns = append(stage.Spawns, Spawn{
					X:         o.X,
					Y:         o.Y,
					Character: o.Properties.GetString("character"),
				})
			}
		}
	}

	if len(stage.Platforms) == 0 {
		return nil, fmt.Errorf("stage %s has no platforms", tmxPath)
	}

	// Sort spawns left-to-right for consistent assignment
	sort.SliceStable(stage.Spawns, func(i, j int) bool {
		return stage.Spawns[i].X < stage.Spawns[j].X
	})

	return stage, nil
}

// LoadAllStages discovers all .tmx files in dir within fsys, loads each one,
// and returns a map keyed by stem name plus a sorted list of names.
func LoadAllStages(fsys fs.FS, dir string) (map[string]*Stage, []string, error) {
	pattern := dir + "/*.tmx"
	if dir == "" || dir == "." {
		pattern = "*.tmx"
	}
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	stages := make(map[string]*Stage, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		stage, err := LoadStage(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		stages[stage.Name] = stage
		names = append(names, stage.Name)
	}

	sort.Strings(names)
	return stages, names, nil
}
