package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Object group names read from stage files
const (
	groupEnemies     = "Enemies"
	groupPlayerSpawn = "PlayerSpawn"
)

// LoadStage parses a TMX file into a Stage. It takes an fs.FS so callers
// can pass embed.FS or os.DirFS.
func LoadStage(fsys fs.FS, tmxPath string) (*Stage, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	stage := &Stage{
		Name:      strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		MapWidth:  levelMap.Width * levelMap.TileWidth,
		MapHeight: levelMap.Height * levelMap.TileHeight,
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case groupPlayerSpawn:
			if len(og.Objects) > 0 {
				o := og.Objects[0]
				stage.PlayerSpawn = &SpawnPoint{X: o.X, Y: o.Y}
			}
		case groupEnemies:
			for _, o := range og.Objects {
				spawn := EnemySpawn{
					Name:         o.Name,
					X:            o.X,
					Y:            o.Y,
					Time:         o.Properties.GetFloat("time"),
					Health:       o.Properties.GetInt("health"),
					Pattern:      o.Properties.GetString("pattern"),
					Path:         o.Properties.GetString("path"),
					Score:        o.Properties.GetInt("score"),
					Boss:         o.Properties.GetBool("boss"),
					Drops:        o.Properties.GetInt("drops"),
					DeathPattern: o.Properties.GetString("deathPattern"),
					DeathSound:   o.Properties.GetString("deathSound"),
					DeathEffect:  o.Properties.GetString("deathEffect"),
				}
				if spawn.Time < 0 {
					return nil, fmt.Errorf("%s: enemy %q has negative time %g", tmxPath, o.Name, spawn.Time)
				}
				stage.Enemies = append(stage.Enemies, spawn)
			}
		}
	}

	sort.SliceStable(stage.Enemies, func(i, j int) bool {
		return stage.Enemies[i].Time < stage.Enemies[j].Time
	})

	return stage, nil
}

// LoadAllStages discovers all .tmx files in dir within fsys and returns
// them keyed by stem name plus a sorted list of names.
func LoadAllStages(fsys fs.FS, dir string) (map[string]*Stage, []string, error) {
	pattern := dir + "/*.tmx"
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
