package cornhole

import "testing"

func TestGameplayConfigReadouts(t *testing.T) {
	cfg := DefaultGameplayConfig()
	cfg.TileScale = 7
	cfg.TimeScale = 25

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"tile size shows the scale itself", cfg.TileSizeReadout(), "Tile size: 7"},
		{"gravity", cfg.GravityReadout(), "Gravity: 5"},
		{"speed in tenths", cfg.SpeedReadout(), "Speed: 2.50x"},
		{"world size", cfg.WorldSizeReadout(), "World size: 250"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("readout = %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestGameplayConfigClamped(t *testing.T) {
	c := GameplayConfig{TileScale: 0, Gravity: 99, WorldRadius: 10, TimeScale: -3}.Clamped()
	want := GameplayConfig{TileScale: MinTileScale, Gravity: MaxGravity, WorldRadius: MinWorldRadius, TimeScale: MinTimeScale}
	if c != want {
		t.Fatalf("clamped = %+v, want %+v", c, want)
	}
}
