package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/lox/speedbingo/bingo"
	"github.com/lox/speedbingo/internal/boardcode"
	"github.com/lox/speedbingo/internal/boardfile"
	"github.com/lox/speedbingo/internal/config"
	"github.com/lox/speedbingo/internal/fileutil"
	"github.com/lox/speedbingo/internal/randutil"
	"github.com/lox/speedbingo/internal/render"
)

// Output formats for generate.
const (
	formatText     = "text"
	formatStyled   = "styled"
	formatMarkdown = "markdown"
	formatTSV      = "tsv"
	formatTOML     = "toml"
)

// GenerateCmd builds one board and prints or saves it.
type GenerateCmd struct {
	GeneratorFlags `embed:""`

	Seed      *uint32 `kong:"help='Board seed (random when omitted)'"`
	Code      string  `kong:"help='Board code to rebuild; sets seed and mode'"`
	Format    string  `kong:"enum='auto,text,styled,markdown,tsv,toml',default='auto',help='Output format (auto follows render.style in config)'"`
	Output    string  `kong:"short='o',help='Write to a file instead of stdout'"`
	CellWidth int     `kong:"name='cell-width',help='Cell width in characters (default from config)'"`
	Padding   *int    `kong:"help='Blank characters each side of cell text (default from config)'"`

	out io.Writer
}

// seedAndMode picks the board identity from --code, --seed or randomness.
func (c *GenerateCmd) seedAndMode(mode bingo.Mode) (uint32, bingo.Mode, error) {
	if c.Code != "" {
		if c.Seed != nil {
			return 0, mode, fmt.Errorf("--code and --seed are mutually exclusive")
		}
		return boardcode.Decode(c.Code)
	}
	if c.Seed != nil {
		return *c.Seed, mode, nil
	}
	return randutil.NewSeed(), mode, nil
}

func renderOptions(cfg *config.Config, cellWidth int, padding *int) render.Options {
	opts := render.Options{CellWidth: cfg.Render.CellWidth, Padding: cfg.Render.Padding}
	if cellWidth > 0 {
		opts.CellWidth = cellWidth
	}
	if padding != nil {
		opts.Padding = *padding
	}
	return opts
}

// resolveFormat maps "auto" onto the configured style.
func resolveFormat(format, style string, toTerminal bool) (string, bool) {
	if format != "auto" {
		return format, format == formatStyled && toTerminal
	}
	switch style {
	case config.StylePlain:
		return formatText, false
	case config.StyleColor:
		return formatStyled, true
	default:
		return formatStyled, toTerminal
	}
}

func (c *GenerateCmd) Run(g *Globals) error {
	logger := g.Logger()
	cfg, err := g.LoadConfig()
	if err != nil {
		return err
	}
	mode, cat, catalogName, err := c.resolve(cfg)
	if err != nil {
		return err
	}
	seed, mode, err := c.seedAndMode(mode)
	if err != nil {
		return err
	}
	if err := catalogCovers(cat, catalogName, mode); err != nil {
		return err
	}

	board, err := bingo.Generate(seed, mode, cat)
	if err != nil {
		return err
	}
	logger.Debug().
		Uint32("seed", seed).
		Str("mode", mode.String()).
		Str("catalog", catalogName).
		Msg("Generated board")

	out := stdout(c.out)
	toTerminal := c.Output == "" && c.out == nil && render.DetectColor(os.Stdout)
	format, color := resolveFormat(c.Format, cfg.Render.Style, toTerminal)
	opts := renderOptions(cfg, c.CellWidth, c.Padding)

	var buf bytes.Buffer
	switch format {
	case formatText:
		fmt.Fprintf(&buf, "seed %d  %s  code %s\n", seed, mode, boardcode.Format(boardcode.Encode(seed, mode)))
		buf.WriteString(render.Text(board, opts))
	case formatStyled:
		fmt.Fprintf(&buf, "seed %d  %s  code %s\n", seed, mode, boardcode.Format(boardcode.Encode(seed, mode)))
		buf.WriteString(render.Styled(render.NewRenderer(out, color), board, render.StyledOptions{Options: opts}))
		buf.WriteByte('\n')
	case formatMarkdown:
		buf.WriteString(render.Markdown(board))
	case formatTSV:
		buf.WriteString(board.String())
	case formatTOML:
		rec := boardfile.NewRecord(seed, mode, board, catalogName)
		if err := boardfile.Encode(&buf, &rec); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format %q", format)
	}

	if c.Output != "" {
		if err := fileutil.WriteFileAtomic(c.Output, buf.Bytes(), 0o644); err != nil {
			return err
		}
		logger.Info().Str("path", c.Output).Uint32("seed", seed).Msg("Wrote board")
		return nil
	}
	_, err = out.Write(buf.Bytes())
	return err
}

func stdout(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}
	return w
}
