package main

import (
	"fmt"
	"io"

	"github.com/lox/speedbingo/bingo"
	"github.com/lox/speedbingo/internal/boardcode"
)

// CodeCmd converts between seeds and shareable board codes.
type CodeCmd struct {
	Encode CodeEncodeCmd `cmd:"" help:"Print the board code for a seed and mode"`
	Decode CodeDecodeCmd `cmd:"" help:"Print the seed and mode behind a board code"`
}

// CodeEncodeCmd prints a board code.
type CodeEncodeCmd struct {
	Seed uint32 `kong:"required,help='Board seed'"`
	Mode string `kong:"default='normal',help='Board mode'"`

	out io.Writer
}

func (c *CodeEncodeCmd) Run() error {
	mode, err := bingo.ParseMode(c.Mode)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout(c.out), boardcode.Format(boardcode.Encode(c.Seed, mode)))
	return nil
}

// CodeDecodeCmd prints the seed and mode of a code.
type CodeDecodeCmd struct {
	Code string `kong:"arg,help='Board code, with or without the dash'"`

	out io.Writer
}

func (c *CodeDecodeCmd) Run() error {
	seed, mode, err := boardcode.Decode(c.Code)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout(c.out), "seed %d\nmode %s\n", seed, mode)
	return nil
}
