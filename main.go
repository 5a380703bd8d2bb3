package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"spacecornhole/audio"
	"spacecornhole/config"
	"spacecornhole/game"
)

func main() {
	configPath := flag.String("config", "cornhole.yaml", "YAML config file; a missing file uses defaults")
	seed := flag.Uint64("seed", 0, "seed for target placement (0 = random)")
	debug := flag.Bool("debug", false, "show the debug overlay and log target moves")
	profile := flag.Bool("profile", false, "capture a CPU profile when the frame rate drops")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Seed = *seed
		case "debug":
			cfg.Debug = *debug
		case "profile":
			cfg.ProfileFrameDrops = *profile
		}
	})

	log.Printf("starting: %dx%d window, %dx%d grid, seed %d", cfg.ScreenWidth, cfg.ScreenHeight, cfg.GridCols, cfg.GridRows, cfg.Seed)

	base := audio.DefaultAudioConfig()
	base.Enabled = cfg.Audio.Enabled
	base.MasterVolume = cfg.Audio.MasterVolume
	sound := audio.NewSoundManager(audio.LoadAudioConfig(base))
	if err := sound.Initialize(); err != nil {
		if errors.Is(err, audio.ErrDisabled) {
			log.Printf("audio off")
		} else {
			log.Printf("audio unavailable, continuing silently: %v", err)
		}
	}

	if err := run(cfg, sound); err != nil {
		sound.Cleanup()
		log.Fatal(err)
	}
	sound.Cleanup()
}

func run(cfg config.Config, sound game.SoundPlayer) error {
	g, err := game.NewGame(cfg, sound)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
	ebiten.SetWindowTitle("Space Cornhole")
	ebiten.SetWindowResizable(true)

	return ebiten.RunGame(g)
}
