// Package main is the entry point for the ripples CLI
package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/spf13/cobra"

	"github.com/james-see/ripples/pkg/api"
	"github.com/james-see/ripples/pkg/generator"
	"github.com/james-see/ripples/pkg/player"
	"github.com/james-see/ripples/pkg/render"
	"github.com/james-see/ripples/pkg/theory"
	"github.com/james-see/ripples/pkg/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	keyName    string
	beats      int
	onlyOne    bool
	outputFile string
	playAfter  bool
	serverPort int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ripples",
	Short: "Generate a complete song from a single seed",
	Long: `ripples procedurally generates a full musical piece - song form,
chord progressions, bass and melody - from one seed, and writes it as a
standard MIDI file. The same seed always reproduces the same song.

Examples:
  ripples generate
  ripples generate 42
  ripples generate "my song" -k F# -b 3
  ripples generate 42 --one --play
  ripples tui
  ripples serve --port 8080`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
}

var generateCmd = &cobra.Command{
	Use:   "generate [seed]",
	Short: "Generate a song and write it as a MIDI file",
	Long: `Generates a song from the given seed. Without a seed, a random one
is chosen and printed so the run can be reproduced later.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List the supported musical keys",
	Run: func(cmd *cobra.Command, args []string) {
		for _, k := range theory.KeyNames {
			fmt.Println(k)
		}
	},
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive terminal UI",
	RunE:  runTUI,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	RunE:  runServe,
}

func init() {
	generateCmd.Flags().StringVarP(&keyName, "key", "k", "", "Set the key (e.g. C, F#)")
	generateCmd.Flags().IntVarP(&beats, "beats", "b", 0, "Beats per measure (2-7, default random)")
	generateCmd.Flags().BoolVar(&onlyOne, "one", false, "Generate only one section")
	generateCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output .mid file path")
	generateCmd.Flags().BoolVar(&playAfter, "play", false, "Play the file after generating")

	serveCmd.Flags().IntVarP(&serverPort, "port", "p", 8080, "Server port")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(keysCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(serveCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	var seed string
	if len(args) > 0 {
		seed = args[0]
	} else {
		// Fresh seed, displayed so the user can reproduce the run
		seed = fmt.Sprint(rand.Intn(65536))
		fmt.Printf("Seed: %s\n", seed)
	}

	cfg := generator.DefaultConfig()
	cfg.Key = keyName
	cfg.BeatsPerMeasure = beats
	cfg.SingleSection = onlyOne

	gen, err := generator.New(cfg, seed)
	if err != nil {
		return err
	}
	song, err := gen.Generate()
	if err != nil {
		return err
	}

	fmt.Print(song.Summary())

	output := outputFile
	if output == "" {
		output = render.Filename(seed)
	}
	if err := render.New().WriteFile(song, output); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", output)

	if playAfter {
		fmt.Printf("Playing %s\n", output)
		return player.Play(output)
	}
	return nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	return tui.Run()
}

func runServe(cmd *cobra.Command, args []string) error {
	fmt.Printf("Starting API server on port %d...\n", serverPort)
	return api.StartServer(serverPort)
}
