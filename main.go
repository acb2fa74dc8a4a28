package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/leonelquinteros/gotext"

	"cavearena/pkg/engine/input"
	"cavearena/pkg/game/devtools"
	"cavearena/pkg/game/gameplay"
	"cavearena/pkg/game/generator"
	"cavearena/pkg/game/menu"
	"cavearena/pkg/game/renderer"
	ebitenrenderer "cavearena/pkg/game/renderer/ebiten"
	"cavearena/pkg/game/renderer/tui"
	"cavearena/pkg/game/state"
)

// logMessage adds a formatted message to the game's message log
func logMessage(g *state.Game, msg string, a ...any) {
	g.AddMessage(renderer.FormatText(msg, a...))
}

func main() {
	seed := flag.Int64("seed", 0, "arena seed (0 picks one from the clock)")
	dim := flag.Int("dim", 31, "arena grid dimension")
	coverage := flag.Float64("coverage", 0.45, "fraction of cells carved empty")
	scale := flag.Int("scale", 1, "tile projection scale factor")
	enemies := flag.Int("enemies", 4, "enemies on the first cavern")
	minEnemyDistance := flag.Int("min-enemy-distance", 6, "minimum walk distance from player to a spawn")
	rendererName := flag.String("renderer", "tui", "rendering backend: tui or ebiten")
	dumpMap := flag.Bool("dumpmap", false, "generate the arena, write map.txt and exit")
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	g := state.NewGame(*seed)
	opts := gameplay.GenerateOptions{
		Dimension:        *dim,
		Coverage:         *coverage,
		Scale:            *scale,
		Enemies:          *enemies,
		MinEnemyDistance: *minEnemyDistance,
	}

	if err := gameplay.Regenerate(g, opts, generator.DefaultGenerator, nil); err != nil {
		log.Fatalf("Cannot generate arena: %v", err)
	}
	logMessage(g, "%s", gotext.Get("you enter the caves"))

	if *dumpMap {
		path, err := devtools.DumpMapToFile(g)
		if err != nil {
			log.Fatalf("Cannot dump map: %v", err)
		}
		fmt.Println(path)
		return
	}

	tc := gameplay.NewTurnCoordinator(g)

	switch *rendererName {
	case "ebiten":
		r := ebitenrenderer.New()
		renderer.SetRenderer(r)
		renderer.Init()
		go gameLoop(g, tc, opts)
		if err := r.Run(); err != nil {
			log.Fatalf("Renderer failed: %v", err)
		}
	case "tui":
		renderer.SetRenderer(tui.New())
		renderer.Init()
		for {
			switch menu.ShowMainMenu() {
			case menu.MainMenuActionDescend:
				gameLoop(g, tc, opts)
			case menu.MainMenuActionHelp:
				logMessage(g, "move with ACTION{arrows} or hjkl, walk into an enemy to attack")
				logMessage(g, "reach the ACTION{exit} to descend, avoid the spores")
			case menu.MainMenuActionQuit:
				return
			}
		}
	default:
		log.Fatalf("Unknown renderer: %v", *rendererName)
	}
}

// gameLoop runs the turn loop until the player dies or quits.
func gameLoop(g *state.Game, tc *gameplay.TurnCoordinator, opts gameplay.GenerateOptions) {
	for {
		renderer.Clear()
		renderer.RenderFrame(g)

		if g.Over {
			if g.Won {
				renderer.ShowMessage(gotext.Get("you escaped the caves. press q to quit."))
			} else {
				renderer.ShowMessage(gotext.Get("you have fallen. press q to quit."))
			}
			if renderer.GetInput().Action == input.ActionQuit {
				os.Exit(0)
			}
			continue
		}

		intent := renderer.GetInput()
		opts = processIntent(g, tc, opts, intent)
	}
}

// processIntent applies one player intent and advances the turn when the
// intent consumed it.
func processIntent(g *state.Game, tc *gameplay.TurnCoordinator, opts gameplay.GenerateOptions, intent input.Intent) gameplay.GenerateOptions {
	switch intent.Action {
	case input.ActionQuit:
		renderer.Clear()
		fmt.Println(gotext.Get("you flee the caves."))
		os.Exit(0)

	case input.ActionNewArena:
		if err := gameplay.Regenerate(g, opts, generator.DefaultGenerator, nil); err != nil {
			log.Fatalf("Cannot regenerate arena: %v", err)
		}
		logMessage(g, "%s", gotext.Get("the ground shifts beneath you"))
		return opts

	case input.ActionDumpMap:
		if path, err := devtools.DumpMapToFile(g); err == nil {
			logMessage(g, "map dumped to %s", path)
		}
		if path := devtools.SaveScreenshotHTML(g); path != "" {
			logMessage(g, "screenshot saved to %s", path)
		}
		return opts

	case input.ActionHelp:
		logMessage(g, "move with ACTION{arrows} or hjkl, walk into an enemy to attack")
		return opts
	}

	dir, ok := input.MoveDirection(intent.Action)
	if !ok {
		return opts
	}

	outcome, err := gameplay.ResolveAction(g, g.Player, dir)
	if err != nil {
		return opts
	}

	switch outcome.Kind {
	case gameplay.OutcomeBump:
		// A bump costs nothing; the player keeps the turn.
		logMessage(g, "%s", gotext.Get("something blocks the way"))
		return opts
	case gameplay.OutcomeAttack:
		gameplay.Attack(g, g.Player, outcome.Target)
	case gameplay.OutcomeExit:
		next, err := gameplay.AdvanceLevel(g, opts, generator.DefaultGenerator, nil)
		if err != nil {
			log.Fatalf("Cannot advance level: %v", err)
		}
		return next
	}

	tc.PlayerTurnEnded()
	return opts
}
