package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/subfx"
	"github.com/npillmayer/subfx/dom/domdbg"
	"github.com/npillmayer/subfx/presenter"
	"github.com/spf13/cobra"
)

var replayCmd = &cobra.Command{
	Use:   "replay FILE",
	Short: "Replay a sequence of moves and print the effects after each",
	Long: `Starts the presentation at a slide, as after loading the page, then performs
the given moves ("next", "prev" or "goto:N") one after the other. After every
step, the slides, their substeps and the inline styles of all targets are printed.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		start, _ := cmd.Flags().GetInt("start")
		moves, _ := cmd.Flags().GetStringSlice("moves")
		render, _ := cmd.Flags().GetBool("html")
		return runReplay(cmd, args[0], start, moves, render)
	},
}

func init() {
	replayCmd.Flags().Int("start", 0, "Index of the slide to start at")
	replayCmd.Flags().StringSlice("moves", nil, "Moves to perform: next, prev, goto:N")
	replayCmd.Flags().Bool("html", false, "Print the final document as HTML")
	rootCmd.AddCommand(replayCmd)
}

func runReplay(cmd *cobra.Command, path string, start int, moves []string, render bool) error {
	doc, conf, err := load(cmd, path)
	if err != nil {
		return err
	}
	p, err := presenter.New(doc, conf)
	if err != nil {
		return err
	}
	subfx.Install(doc, p, conf)
	out := cmd.OutOrStdout()
	if err := p.Start(start); err != nil {
		return err
	}
	if err := report(out, p, fmt.Sprintf("start %d", start)); err != nil {
		return err
	}
	for _, move := range moves {
		if err := perform(p, move); err != nil {
			return err
		}
		if err := report(out, p, move); err != nil {
			return err
		}
	}
	if render {
		return doc.Render(out)
	}
	return nil
}

func perform(p *presenter.Presentation, move string) error {
	move = strings.ToLower(strings.TrimSpace(move))
	switch {
	case move == "next":
		return p.Next()
	case move == "prev":
		return p.Prev()
	case strings.HasPrefix(move, "goto:"):
		i, err := strconv.Atoi(strings.TrimPrefix(move, "goto:"))
		if err != nil {
			return fmt.Errorf("invalid move %q: %w", move, err)
		}
		return p.GoTo(i)
	}
	return fmt.Errorf("unknown move %q", move)
}

func report(w io.Writer, p *presenter.Presentation, title string) error {
	if _, err := fmt.Fprintf(w, "== %s (slide %d, substep %d)\n", title, p.Current(), p.Cursor()); err != nil {
		return err
	}
	return domdbg.Dump(w, p.Document(), p.Config())
}
