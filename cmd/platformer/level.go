package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
)

var levelCmd = &cobra.Command{
	Use:   "level [file]",
	Short: "Check a level file",
	Long: `Load a level file and print a summary: its width, the tiles it
holds and the pits the player can fall into. Without a file the
built-in level is checked.

Level format: one line per column, 14 characters each, bottom row
first. '.' or space is empty.

Tile codes:
  =  ground       b  breakable    ?  question     !  used block
  r  pipe top     -  pipe body    #  bedrock      f  flag (passable)
  h  hill (passable)              anything else is a plain solid block`,
	Args: cobra.MaximumNArgs(1),
	Run:  runLevel,
}

func runLevel(_ *cobra.Command, args []string) {
	name := "built-in"
	level := platformer.BuiltinLevel()
	if len(args) == 1 {
		name = args[0]
		var err error
		level, err = platformer.LoadLevelFile(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	fmt.Printf("Level %s: %d columns (%d px)\n", name, level.Length(), level.Length()*platformer.BlockSize)

	counts := level.Count()
	kinds := make([]platformer.TileKind, 0, len(counts))
	for k := range counts {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })

	fmt.Println()
	fmt.Printf("  %-4s  %-10s  %s\n", "Code", "Tile", "Count")
	for _, k := range kinds {
		fmt.Printf("  %-4c  %-10s  %d\n", k.Code(), k, counts[k])
	}

	pits := pitColumns(level)
	fmt.Println()
	if len(pits) == 0 {
		fmt.Println("No pits.")
		return
	}
	fmt.Printf("Pit columns: %v\n", pits)
}

// pitColumns lists columns with no solid tile in the bottom row.
func pitColumns(level *platformer.TileGrid) []int {
	var pits []int
	for col := 0; col < level.Length(); col++ {
		kind, ok := level.TileAt(col, platformer.VBlocks-1)
		if !ok || !kind.Solid() {
			pits = append(pits, col)
		}
	}
	return pits
}
