package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/knowledge-island/internal/config"
	"github.com/vovakirdan/knowledge-island/internal/core"
	"github.com/vovakirdan/knowledge-island/internal/game"
)

var flagDecodeFormat string

var decodeCmd = &cobra.Command{
	Use:   "decode <path>...",
	Short: "Translate paths to board coordinates",
	Long: `Decode each path of L, R and B moves from the top campus of
university A and print the vertex and ARC it lands on, plus what stands
there at the start of a match on the configured board.

Examples:
  island decode RRLRL
  island decode "" R RRLRLB --format json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDecode,
}

func init() {
	decodeCmd.Flags().StringVar(&flagDecodeFormat, "format", "auto", "Output format: auto, text, json")
}

type decodeJSON struct {
	Path      string `json:"path"`
	VertexX   int    `json:"vertex_x"`
	VertexY   int    `json:"vertex_y"`
	EdgeX     int    `json:"edge_x"`
	EdgeY     int    `json:"edge_y"`
	Site      string `json:"site"`
	TooLong   bool   `json:"too_long,omitempty"`
	OffVertex bool   `json:"off_vertex,omitempty"`
	OffEdge   bool   `json:"off_edge,omitempty"`
}

func runDecode(cmd *cobra.Command, args []string) error {
	format, err := outputFormat(flagDecodeFormat)
	if err != nil {
		return err
	}

	g, err := newConfiguredGame()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if format == "json" {
		return writeDecodeJSON(out, g, args)
	}
	writeDecodeText(out, g, args)
	return nil
}

func newConfiguredGame() (*game.Game, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	disciplines, dice, err := cfg.Layout()
	if err != nil {
		return nil, err
	}
	return game.New(disciplines, dice)
}

func decodePath(g *game.Game, path string) decodeJSON {
	v := core.DecodeVertex(path)
	e := core.DecodeEdge(path)
	return decodeJSON{
		Path:      path,
		VertexX:   v.Raw().X,
		VertexY:   v.Raw().Y,
		EdgeX:     e.Raw().X,
		EdgeY:     e.Raw().Y,
		Site:      g.Campus(path).String(),
		TooLong:   len(path) > core.PathLimit,
		OffVertex: !v.IsValid(),
		OffEdge:   !e.IsValid(),
	}
}

func writeDecodeJSON(w io.Writer, g *game.Game, paths []string) error {
	enc := json.NewEncoder(w)
	for _, p := range paths {
		if err := enc.Encode(decodePath(g, p)); err != nil {
			return err
		}
	}
	return nil
}

func writeDecodeText(w io.Writer, g *game.Game, paths []string) {
	fmt.Fprintf(w, "  %-20s  %-12s  %-12s  %s\n", "Path", "Vertex", "ARC", "Site")
	fmt.Fprintf(w, "  %-20s  %-12s  %-12s  %s\n", "----", "------", "---", "----")
	for _, p := range paths {
		label := p
		if label == "" {
			label = `""`
		}
		fmt.Fprintf(w, "  %-20s  %-12s  %-12s  %s\n",
			label, core.DecodeVertex(p), core.DecodeEdge(p), g.Campus(p))
	}
}
