// Package export writes batch runs to spreadsheets and TOML record streams.
package export

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"

	"github.com/lox/speedbingo/bingo"
	"github.com/lox/speedbingo/internal/batch"
	"github.com/lox/speedbingo/internal/boardcode"
	"github.com/lox/speedbingo/internal/boardfile"
	"github.com/lox/speedbingo/internal/fileutil"
)

// Sheet names in exported workbooks.
const (
	BoardsSheet  = "boards"
	SummarySheet = "summary"
)

// BoardHeaders returns the header row of the boards sheet.
func BoardHeaders() []string {
	headers := []string{"seed", "mode", "code", "synergy"}
	for i := 1; i <= bingo.Cells; i++ {
		headers = append(headers, "cell"+strconv.Itoa(i))
	}
	return headers
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	for c, v := range values {
		cell, err := excelize.CoordinatesToCellName(c+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}

func buildWorkbook(report *batch.Report, summary batch.Summary) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", BoardsSheet); err != nil {
		return nil, err
	}

	headers := BoardHeaders()
	row := make([]any, len(headers))
	for i, h := range headers {
		row[i] = h
	}
	if err := setRow(f, BoardsSheet, 1, row); err != nil {
		return nil, err
	}

	for r, res := range report.Results {
		values := []any{
			int64(res.Seed),
			report.Mode.String(),
			boardcode.Encode(res.Seed, report.Mode),
			res.TotalSynergy(),
		}
		for _, name := range res.Board.Flat() {
			values = append(values, name)
		}
		if err := setRow(f, BoardsSheet, r+2, values); err != nil {
			return nil, err
		}
	}

	if _, err := f.NewSheet(SummarySheet); err != nil {
		return nil, err
	}
	metrics := [][]any{
		{"metric", "value"},
		{"run", report.ID},
		{"mode", report.Mode.String()},
		{"boards", summary.Boards},
		{"synergy_mean", summary.SynergyMean},
		{"synergy_median", summary.SynergyMedian},
		{"synergy_stddev", summary.SynergyStdDev},
		{"synergy_p95", summary.SynergyP95},
		{"synergy_min", summary.SynergyMin},
		{"synergy_max", summary.SynergyMax},
		{},
		{"tier", "cells"},
	}
	for _, t := range summary.Tiers() {
		metrics = append(metrics, []any{t, summary.TierUsage[t]})
	}
	for i, m := range metrics {
		if err := setRow(f, SummarySheet, i+1, m); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// WriteXLSX writes a workbook with one row per board and a summary sheet.
func WriteXLSX(logger zerolog.Logger, path string, report *batch.Report, summary batch.Summary) error {
	f, err := buildWorkbook(report, summary)
	if err != nil {
		return fmt.Errorf("building workbook: %w", err)
	}
	defer f.Close()

	err = fileutil.WriteAtomic(path, 0o644, func(w io.Writer) error {
		return f.Write(w)
	})
	if err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	logger.Info().Str("path", path).Int("boards", len(report.Results)).Msg("Wrote workbook")
	return nil
}

// Records converts a run into board records stamped with the given time.
func Records(report *batch.Report, catalogName string, at time.Time) []boardfile.Record {
	records := make([]boardfile.Record, len(report.Results))
	stamp := at.UTC().Format(time.RFC3339)
	for i, res := range report.Results {
		records[i] = boardfile.NewRecord(res.Seed, report.Mode, res.Board, catalogName)
		records[i].GeneratedAt = stamp
	}
	return records
}

// WriteTOML writes every board of a run as a TOML record stream.
func WriteTOML(logger zerolog.Logger, path string, report *batch.Report, catalogName string, at time.Time) error {
	records := Records(report, catalogName, at)
	err := fileutil.WriteAtomic(path, 0o644, func(w io.Writer) error {
		return boardfile.EncodeAll(w, records)
	})
	if err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	logger.Info().Str("path", path).Int("boards", len(records)).Msg("Wrote board records")
	return nil
}
