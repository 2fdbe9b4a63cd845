package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/jetsquare/common"
)

func main() {
	debug := flag.Bool("debug", false, "show the state HUD")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	profile := flag.String("profile", "", "physics profile from prefabs/profiles.yaml (default from the file)")
	watch := flag.Bool("watch", false, "reload prefabs/*.yaml from disk when they change")
	mute := flag.Bool("mute", false, "disable sound cues")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowSize(common.ScreenWidth, common.ScreenHeight)
	ebiten.SetWindowTitle("jetsquare")

	game, err := NewGame(GameOptions{
		Profile: *profile,
		Debug:   *debug,
		Watch:   *watch,
		Mute:    *mute,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
