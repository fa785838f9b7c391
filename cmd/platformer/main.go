// platformer is a side-scrolling platformer for the terminal and the desktop.
//
// Usage:
//
//	platformer play            - Play in the terminal
//	platformer window          - Play in a desktop window
//	platformer serve           - Start SSH server for remote play
//	platformer list            - List registered games
//	platformer level <file>    - Check a level file
//	platformer config          - Print the default configuration
//
// Global flags:
//
//	--config <path>  - Custom config YAML
//	--level <path>   - Custom level file
//	--fps <rate>     - Render rate for terminal hosts (default: 60)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
)

var (
	// Global flags
	flagConfig string
	flagLevel  string
	flagFPS    int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "platformer",
	Short: "A side-scrolling platformer for your terminal",
	Long: `Run right, jump over pits and bump blocks with your head.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  list     - Show registered games
  level    - Check a level file
  config   - Print the default configuration

Examples:
  platformer play
  platformer play --level ./levels/custom.txt
  platformer window --config ./platformer.yaml
  platformer serve --ssh :2222`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		platformer.SetConfigPath(flagConfig)
		platformer.SetLevelPath(flagLevel)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLevel, "level", "", "Path to custom level file")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Render rate for terminal hosts")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(levelCmd)
	rootCmd.AddCommand(configCmd)
}

