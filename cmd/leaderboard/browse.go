// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/leaderboard/internal/leaderboard"
	"github.com/pdiddy/leaderboard/internal/source"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the leaderboard interactively",
	Long: `Browse loads the data once and reads commands from standard input, one
per line. Each filter change prints the updated board.

  source all|ai|human   filter by source
  track NAME|all        filter by track
  search TEXT           filter by title, method or venue (empty clears)
  top | stats | recent | tracks | show
  reload                load the data again, keeping the filters
  help | quit`,
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	src, closeFn, err := openSource()
	if err != nil {
		return err
	}
	defer closeFn()

	sess, err := leaderboard.Open(cmd.Context(), src, boardOptions(cfg))
	if err != nil {
		return err
	}
	return browse(cmd.Context(), sess, src, cmd.InOrStdin(), cmd.OutOrStdout())
}

// flusher is implemented by sources that cache fetched data.
type flusher interface {
	Flush()
}

const browseHelp = `commands: source all|ai|human, track NAME|all, search TEXT, top, stats, recent, tracks, show, reload, quit`

// browse runs the command loop until quit or end of input. Bad input is
// reported and the loop continues; only read errors end it early.
func browse(ctx context.Context, sess *leaderboard.Session, src source.Source, in io.Reader, out io.Writer) error {
	leaderboard.FormatTable(sess.View(), out)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		verb, arg, _ := strings.Cut(strings.TrimSpace(scanner.Text()), " ")
		arg = strings.TrimSpace(arg)
		board := sess.Board()

		switch strings.ToLower(verb) {
		case "":
		case "quit", "exit", "q":
			return nil
		case "help", "?":
			fmt.Fprintln(out, browseHelp)
		case "show":
			leaderboard.FormatTable(sess.View(), out)
		case "source":
			v, err := sess.SetSource(arg)
			if err != nil {
				fmt.Fprintf(out, "error: %v\n", err)
				continue
			}
			leaderboard.FormatTable(v, out)
		case "track":
			leaderboard.FormatTable(sess.SetTrack(arg), out)
		case "search":
			leaderboard.FormatTable(sess.SetSearch(arg), out)
		case "top":
			leaderboard.FormatTop(board.TopAI(), out)
		case "stats":
			leaderboard.FormatStats(board.Stats(), out)
		case "recent":
			leaderboard.FormatRecent(board.Recent(), out)
		case "tracks":
			leaderboard.FormatTracks(board.Tracks(), out)
		case "reload":
			if f, ok := src.(flusher); ok {
				f.Flush()
			}
			if err := sess.Reload(ctx, src); err != nil {
				fmt.Fprintln(out, loadFailureText)
				continue
			}
			leaderboard.FormatTable(sess.View(), out)
		default:
			fmt.Fprintf(out, "unknown command %q\n%s\n", verb, browseHelp)
		}
	}
}
