package console

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/benbeisheim/checkers-backend/internal/model"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"
)

const cellWidth = 5

var (
	darkSquare = lipgloss.Color("2")
	blackPiece = lipgloss.Color("0")
	whitePiece = lipgloss.Color("15")
)

type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

func ParseColorMode(s string) (ColorMode, error) {
	switch ColorMode(s) {
	case ColorAuto, ColorAlways, ColorNever:
		return ColorMode(s), nil
	}
	return "", fmt.Errorf("unknown color mode %q", s)
}

// NewOutput wraps f for board output and reports whether ANSI colors should
// be written to it. In auto mode colors are used only on a terminal.
func NewOutput(mode ColorMode, f *os.File) (io.Writer, bool) {
	colored := mode == ColorAlways
	if mode == ColorAuto {
		colored = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	if colored {
		return colorable.NewColorable(f), true
	}
	return colorable.NewNonColorable(f), false
}

type Renderer struct {
	colored bool
	light   lipgloss.Style
	dark    lipgloss.Style
	bold    lipgloss.Style
}

func NewRenderer(colored bool) *Renderer {
	// The color decision is made by NewOutput, so the profile is fixed here
	// instead of being detected from a writer.
	lr := lipgloss.NewRenderer(io.Discard)
	lr.SetColorProfile(termenv.Ascii)
	if colored {
		lr.SetColorProfile(termenv.ANSI256)
	}
	return &Renderer{
		colored: colored,
		light:   lr.NewStyle(),
		dark:    lr.NewStyle().Background(darkSquare),
		bold:    lr.NewStyle().Bold(true),
	}
}

// Symbol is the glyph drawn for a piece.
func Symbol(p model.Piece) string {
	if p.Color == model.White {
		if p.King {
			return "☺"
		}
		return "○"
	}
	if p.King {
		return "☻"
	}
	return "●"
}

// Render draws the board with column indexes across the top and row indexes
// down the left side.
func (r *Renderer) Render(pieces []model.Piece) string {
	var grid [model.BoardSize][model.BoardSize]*model.Piece
	for i := range pieces {
		pos := pieces[i].Position
		grid[pos.Row][pos.Col] = &pieces[i]
	}

	var sb strings.Builder
	sb.WriteString(strings.Repeat(" ", cellWidth))
	for col := 0; col < model.BoardSize; col++ {
		sb.WriteString(runewidth.FillRight("  "+strconv.Itoa(col), cellWidth))
	}
	sb.WriteString("\n")

	for row := 0; row < model.BoardSize; row++ {
		sb.WriteString(runewidth.FillLeft(strconv.Itoa(row)+" ", cellWidth))
		for col := 0; col < model.BoardSize; col++ {
			sb.WriteString(r.cell(grid[row][col], (row+col)%2 == 1))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func (r *Renderer) cell(piece *model.Piece, dark bool) string {
	symbol := ""
	if piece != nil {
		symbol = Symbol(*piece)
	}
	text := runewidth.FillRight("  "+symbol, cellWidth)
	if !r.colored {
		return text
	}

	style := r.light
	if dark {
		style = r.dark
	}
	if piece != nil {
		fg := blackPiece
		if piece.Color == model.White {
			fg = whitePiece
		}
		style = style.Foreground(fg)
	}
	return style.Render(text)
}

// Emphasize renders s in bold when colors are enabled.
func (r *Renderer) Emphasize(s string) string {
	if !r.colored {
		return s
	}
	return r.bold.Render(s)
}
