// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package ux styles the human-readable output of the lstsync CLI.
//
// Output written to a terminal is rendered with lipgloss. Anything else
// (pipes, files, test buffers) gets plain tab-aligned columns, so scripts
// see the same bytes whether or not colors are available.
package ux

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-isatty"
)

// Aleutian color palette.
var (
	ColorTealBright  = lipgloss.Color("#2CD7C7")
	ColorTealPrimary = lipgloss.Color("#20B9B4")
	ColorTealDeep    = lipgloss.Color("#16858E")
	ColorSlate       = lipgloss.Color("#2C4A54")

	ColorSuccess = lipgloss.Color("#2CD7C7")
	ColorWarning = lipgloss.Color("#F4D03F")
	ColorError   = lipgloss.Color("#E74C3C")
)

// Status marks the outcome shown in a row's last column.
type Status int

const (
	StatusNone Status = iota
	StatusOK
	StatusWarning
	StatusError
)

// Icon returns the status glyph, or "" for StatusNone.
func (s Status) Icon() string {
	switch s {
	case StatusOK:
		return "✓"
	case StatusWarning:
		return "⚠"
	case StatusError:
		return "✗"
	default:
		return ""
	}
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// styles holds the styles of one renderer. Styles are bound to a renderer
// so the color profile follows the writer, not os.Stdout.
type styles struct {
	title   lipgloss.Style
	header  lipgloss.Style
	cell    lipgloss.Style
	border  lipgloss.Style
	success lipgloss.Style
	warning lipgloss.Style
	failure lipgloss.Style
	muted   lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		title:   r.NewStyle().Bold(true).Foreground(ColorTealBright),
		header:  r.NewStyle().Bold(true).Foreground(ColorTealPrimary).Padding(0, 1),
		cell:    r.NewStyle().Padding(0, 1),
		border:  r.NewStyle().Foreground(ColorTealDeep),
		success: r.NewStyle().Foreground(ColorSuccess).Padding(0, 1),
		warning: r.NewStyle().Foreground(ColorWarning).Padding(0, 1),
		failure: r.NewStyle().Foreground(ColorError).Padding(0, 1),
		muted:   r.NewStyle().Foreground(ColorSlate),
	}
}

func (s styles) status(st Status) lipgloss.Style {
	switch st {
	case StatusOK:
		return s.success
	case StatusWarning:
		return s.warning
	case StatusError:
		return s.failure
	default:
		return s.cell
	}
}

// Printer writes titles, notes and tables to one writer.
//
// Thread Safety: Not safe for concurrent use.
type Printer struct {
	w      io.Writer
	styled bool
	styles styles
}

// NewPrinter returns a printer that styles its output when w is a
// terminal.
func NewPrinter(w io.Writer) *Printer {
	return NewPrinterStyled(w, IsTerminal(w))
}

// NewPrinterStyled returns a printer with styling forced on or off.
func NewPrinterStyled(w io.Writer, styled bool) *Printer {
	p := &Printer{w: w, styled: styled}
	if styled {
		p.styles = newStyles(w)
	}
	return p
}

// Styled reports whether the printer renders with lipgloss.
func (p *Printer) Styled() bool { return p.styled }

// Title writes a section title. Plain output separates sections with a
// blank line instead; first reports whether this is the first section.
func (p *Printer) Title(text string, first bool) {
	if p.styled {
		fmt.Fprintln(p.w, p.styles.title.Render(text))
		return
	}
	if !first {
		fmt.Fprintln(p.w)
	}
}

// Note writes a one-line message.
func (p *Printer) Note(text string) {
	if p.styled {
		fmt.Fprintln(p.w, p.styles.muted.Render(text))
		return
	}
	fmt.Fprintln(p.w, text)
}

// Table collects rows for rendering.
type Table struct {
	header   []string
	rows     [][]string
	statuses []Status
}

// NewTable creates a table with the given column headers.
func NewTable(header ...string) *Table {
	return &Table{header: header}
}

// Row appends a row. Cells are formatted with fmt.Sprint.
func (t *Table) Row(cells ...any) {
	t.RowWithStatus(StatusNone, cells...)
}

// RowWithStatus appends a row whose last cell is colored by status when
// styled.
func (t *Table) RowWithStatus(status Status, cells ...any) {
	row := make([]string, len(cells))
	for i, c := range cells {
		row[i] = fmt.Sprint(c)
	}
	t.rows = append(t.rows, row)
	t.statuses = append(t.statuses, status)
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.rows) }

// Table renders t.
func (p *Printer) Table(t *Table) error {
	if !p.styled {
		return t.renderPlain(p.w)
	}
	rows := make([][]string, len(t.rows))
	for i, row := range t.rows {
		rows[i] = row
		if icon := t.statuses[i].Icon(); icon != "" && len(row) > 0 {
			rows[i] = append(append([]string(nil), row[:len(row)-1]...), icon+" "+row[len(row)-1])
		}
	}
	last := len(t.header) - 1
	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(p.styles.border).
		Headers(t.header...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return p.styles.header
			case col == last && row >= 0 && row < len(t.statuses):
				return p.styles.status(t.statuses[row])
			default:
				return p.styles.cell
			}
		})
	_, err := fmt.Fprintln(p.w, tbl.Render())
	return err
}

func (t *Table) renderPlain(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(t.header, "\t"))
	for _, row := range t.rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}
