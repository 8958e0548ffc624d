package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/katalvlaran/wordgrid/board"
	"github.com/katalvlaran/wordgrid/search"
)

// Output modes.
const (
	modeTable = "table"
	modePlain = "plain"
	modeJSON  = "json"
)

type wordsResult struct {
	Words     []string `json:"words"`
	Count     int      `json:"count"`
	Score     int      `json:"score"`
	MinLength int      `json:"min_length"`
}

type pathResult struct {
	Word  string `json:"word"`
	Found bool   `json:"found"`
	Path  []int  `json:"path"`
}

type checkResult struct {
	Word        string `json:"word"`
	ValidWord   bool   `json:"valid_word"`
	ValidPrefix bool   `json:"valid_prefix"`
}

type boardResult struct {
	Size  int      `json:"size"`
	Tiles []string `json:"tiles"`
	Board string   `json:"board"`
}

func renderJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	return t
}

// points is the score of a single word.
func points(word string, minLength int) int {
	p, _ := search.Score([]string{word}, minLength)

	return p
}

func renderWords(w io.Writer, mode string, r wordsResult) error {
	switch mode {
	case modeJSON:
		return renderJSON(w, r)
	case modePlain:
		for _, word := range r.Words {
			_, _ = fmt.Fprintln(w, word)
		}
		_, _ = fmt.Fprintf(w, "score: %d\n", r.Score)

		return nil
	}

	if len(r.Words) == 0 {
		_, _ = fmt.Fprintln(w, "(0 words)")

		return nil
	}
	t := newTable(w)
	t.AppendHeader(table.Row{"#", "Word", "Len", "Points"})
	for i, word := range r.Words {
		t.AppendRow(table.Row{i + 1, word, len([]rune(word)), points(word, r.MinLength)})
	}
	t.AppendFooter(table.Row{"", fmt.Sprintf("%d words", r.Count), "", r.Score})
	t.Render()

	return nil
}

func renderPath(w io.Writer, mode string, b *board.Board, r pathResult) error {
	switch mode {
	case modeJSON:
		return renderJSON(w, r)
	case modePlain:
		if !r.Found {
			_, _ = fmt.Fprintln(w, "not found")

			return nil
		}
		idx := make([]string, len(r.Path))
		for i, p := range r.Path {
			idx[i] = strconv.Itoa(p)
		}
		_, _ = fmt.Fprintln(w, strings.Join(idx, " "))

		return nil
	}

	if !r.Found {
		_, _ = fmt.Fprintf(w, "%s is not on the board\n", strings.ToUpper(r.Word))

		return nil
	}
	step := make(map[int]int, len(r.Path))
	for i, p := range r.Path {
		step[p] = i + 1
	}
	t := newTable(w)
	for row := 0; row < b.Size(); row++ {
		cells := make(table.Row, b.Size())
		for col := range cells {
			idx := b.Index(row, col)
			tile, _ := b.Tile(idx)
			if n, ok := step[idx]; ok {
				cells[col] = fmt.Sprintf("%s %d", strings.ToUpper(tile), n)
			} else {
				cells[col] = tile
			}
		}
		t.AppendRow(cells)
	}
	t.SetTitle(strings.ToUpper(r.Word))
	t.Render()

	return nil
}

func renderScore(w io.Writer, mode string, words []string, minLength, total int) error {
	switch mode {
	case modeJSON:
		return renderJSON(w, struct {
			Words     []string `json:"words"`
			MinLength int      `json:"min_length"`
			Score     int      `json:"score"`
		}{words, minLength, total})
	case modePlain:
		_, _ = fmt.Fprintln(w, total)

		return nil
	}

	t := newTable(w)
	t.AppendHeader(table.Row{"Word", "Points"})
	for _, word := range words {
		t.AppendRow(table.Row{word, points(word, minLength)})
	}
	t.AppendFooter(table.Row{"Total", total})
	t.Render()

	return nil
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}

	return "no"
}

func renderCheck(w io.Writer, mode string, r checkResult) error {
	switch mode {
	case modeJSON:
		return renderJSON(w, r)
	case modePlain:
		_, _ = fmt.Fprintf(w, "word: %s\nprefix: %s\n", yesNo(r.ValidWord), yesNo(r.ValidPrefix))

		return nil
	}

	t := newTable(w)
	t.SetTitle(r.Word)
	t.AppendRow(table.Row{"valid word", yesNo(r.ValidWord)})
	t.AppendRow(table.Row{"valid prefix", yesNo(r.ValidPrefix)})
	t.Render()

	return nil
}

func renderBoard(w io.Writer, mode string, b *board.Board) error {
	switch mode {
	case modeJSON:
		return renderJSON(w, boardResult{Size: b.Size(), Tiles: b.Tiles(), Board: b.Render()})
	case modePlain:
		_, _ = fmt.Fprintln(w, b.String())

		return nil
	}

	t := newTable(w)
	tiles := b.Tiles()
	for row := 0; row < b.Size(); row++ {
		cells := make(table.Row, b.Size())
		for col := range cells {
			cells[col] = strings.ToUpper(tiles[b.Index(row, col)])
		}
		t.AppendRow(cells)
	}
	t.Render()

	return nil
}
