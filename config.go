package tilepaste

import (
	"encoding/json"
	"errors"
	"fmt"
)

// TileRoles names the atlas entries that carry game meaning.
type TileRoles struct {
	// Collectible tiles turn into Collected when the player stands on them.
	Collectible int `json:"collectible"`
	Collected   int `json:"collected"`
	// Player is the sprite drawn over the player's cell.
	Player int `json:"player"`
}

// Config holds the startup parameters of a Game. It is read once; there is
// no runtime reconfiguration.
type Config struct {
	MapWidth   int `json:"map_width"`
	MapHeight  int `json:"map_height"`
	ViewWidth  int `json:"view_width"`
	ViewHeight int `json:"view_height"`
	AtlasCols  int `json:"atlas_cols"`
	AtlasRows  int `json:"atlas_rows"`

	// TileScale is the clip-space tile size (see Projector). Zero fits the
	// viewport to the window.
	TileScale float32 `json:"tile_scale"`

	// FillEntry is the atlas entry every cell starts with.
	FillEntry int       `json:"fill_entry"`
	Roles     TileRoles `json:"roles"`

	PlayerStart Point `json:"player_start"`
	// Collectibles are cells seeded with the collectible entry, in addition
	// to ScatterCount cells picked by a generator seeded with Seed.
	Collectibles []Point `json:"collectibles"`
	ScatterCount int     `json:"scatter_count"`
	Seed         uint64  `json:"seed"`
}

// DefaultConfig returns the configuration of the demo: a 100×100 map seen
// through a 10×10 viewport, textured from a 4×4 atlas.
func DefaultConfig() Config {
	return Config{
		MapWidth:   100,
		MapHeight:  100,
		ViewWidth:  10,
		ViewHeight: 10,
		AtlasCols:  4,
		AtlasRows:  4,
		FillEntry:  0,
		Roles: TileRoles{
			Collectible: 14,
			Collected:   12,
			Player:      15,
		},
		PlayerStart:  Point{1, 1},
		Collectibles: []Point{{1, 1}},
		ScatterCount: 200,
		Seed:         1,
	}
}

// LoadConfig parses JSON over DefaultConfig, so absent fields keep their
// defaults, then validates the result.
func LoadConfig(jsonData []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := json.Unmarshal(jsonData, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: parse config: %v", ErrAssetLoad, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks sizes, atlas entries and positions. All problems are
// reported together.
func (c Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}

	if c.MapWidth <= 0 || c.MapHeight <= 0 || c.MapWidth > MaxMapCells/c.MapHeight {
		bad("map size %dx%d", c.MapWidth, c.MapHeight)
	}
	if c.ViewWidth <= 0 || c.ViewHeight <= 0 {
		bad("view size %dx%d", c.ViewWidth, c.ViewHeight)
	}
	if c.ViewWidth > c.MapWidth || c.ViewHeight > c.MapHeight {
		bad("view %dx%d larger than map %dx%d", c.ViewWidth, c.ViewHeight, c.MapWidth, c.MapHeight)
	}
	if c.AtlasCols <= 0 || c.AtlasRows <= 0 {
		bad("atlas grid %dx%d", c.AtlasCols, c.AtlasRows)
	}
	if c.TileScale < 0 {
		bad("tile scale %v", c.TileScale)
	}
	if c.ScatterCount < 0 {
		bad("scatter count %d", c.ScatterCount)
	}

	entries := c.AtlasCols * c.AtlasRows
	for _, e := range []struct {
		name  string
		entry int
	}{
		{"fill", c.FillEntry},
		{"collectible", c.Roles.Collectible},
		{"collected", c.Roles.Collected},
		{"player", c.Roles.Player},
	} {
		if e.entry < 0 || e.entry >= entries {
			errs = append(errs, fmt.Errorf("%w: %s entry %d (atlas has %d entries)",
				ErrInvalidAtlasEntry, e.name, e.entry, entries))
		}
	}
	if c.Roles.Collectible == c.Roles.Collected {
		bad("collectible and collected share entry %d", c.Roles.Collectible)
	}

	inMap := func(p Point) bool {
		return p.X >= 0 && p.X < c.MapWidth && p.Y >= 0 && p.Y < c.MapHeight
	}
	if !inMap(c.PlayerStart) {
		errs = append(errs, fmt.Errorf("%w: player start (%d, %d)", ErrOutOfBounds, c.PlayerStart.X, c.PlayerStart.Y))
	}
	for _, p := range c.Collectibles {
		if !inMap(p) {
			errs = append(errs, fmt.Errorf("%w: collectible (%d, %d)", ErrOutOfBounds, p.X, p.Y))
		}
	}
	return errors.Join(errs...)
}
