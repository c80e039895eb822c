package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/gridsheet-go/pkg/gridsheet"
	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/auth"
	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/codec"
	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/grid"
	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/output"
	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/parser"
)

func newShowCmd() *cobra.Command {
	var (
		asJSON  bool
		styled  bool
		filters []string
		sorts   []string
	)
	cmd := &cobra.Command{
		Use:   "show <collection>",
		Short: "Print a collection as a table",
		Args:  cobra.ExactArgs(1),
		RunE: withSession(func(ctx context.Context, s *session, args []string) error {
			p, err := s.open(ctx, args[0])
			if err != nil {
				return err
			}
			if err := project(p, filters, sorts); err != nil {
				return err
			}
			if asJSON {
				data, err := output.ToJSON(codec.Encode(p.Grid, p.IsAdmin), true)
				if err != nil {
					return fmt.Errorf("serialization failed: %w", err)
				}
				fmt.Println(string(data))
				return nil
			}
			fmt.Println(output.RenderTable(p.Grid, output.RenderOptions{Styled: styled, RowNumbers: true}))
			for _, sp := range p.Grid.Spans() {
				fmt.Printf("merged %s\n", parser.FormatRange(sp.Range()))
			}
			return nil
		}),
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the document instead of a table")
	cmd.Flags().BoolVar(&styled, "styled", false, "Paint colors, bold text and alignment")
	cmd.Flags().StringArrayVar(&filters, "filter", nil, "Keep rows whose column matches, e.g. B=apple,pear (repeatable)")
	cmd.Flags().StringArrayVar(&sorts, "sort", nil, "Sort by a column, e.g. C or C:desc (repeatable, applied in order)")
	return cmd
}

// project applies --filter and --sort flags to p.
func project(p *gridsheet.Page, filters, sorts []string) error {
	for _, f := range filters {
		colName, values, ok := strings.Cut(f, "=")
		if !ok {
			return fmt.Errorf("filter %q: expected COLUMN=VALUE[,VALUE...]", f)
		}
		col, err := parseColumn(colName)
		if err != nil {
			return err
		}
		if err := p.Filter(col, strings.Split(values, ",")); err != nil {
			return err
		}
	}
	for _, s := range sorts {
		col, ascending, err := parseSort(s)
		if err != nil {
			return err
		}
		if err := p.Sort(col, ascending); err != nil {
			return err
		}
	}
	return nil
}

// parseColumn converts a column letter ("B") or 1-based number ("2") to a
// 0-based index.
func parseColumn(name string) (int, error) {
	name = strings.TrimSpace(name)
	if n, err := strconv.Atoi(name); err == nil {
		if n < 1 {
			return 0, fmt.Errorf("column %q: %w", name, grid.ErrOutOfRange)
		}
		return n - 1, nil
	}
	n, err := excelize.ColumnNameToNumber(name)
	if err != nil {
		return 0, fmt.Errorf("column %q: %w", name, err)
	}
	return n - 1, nil
}

// columnByHeader resolves a header label, falling back to parseColumn.
func columnByHeader(headers []string, name string) (int, error) {
	for i, h := range headers {
		if h == name {
			return i, nil
		}
	}
	return parseColumn(name)
}

// parseSort reads COLUMN[:asc|:desc].
func parseSort(s string) (int, bool, error) {
	colName, dir, _ := strings.Cut(s, ":")
	col, err := parseColumn(colName)
	if err != nil {
		return 0, false, err
	}
	switch strings.ToLower(dir) {
	case "", "asc":
		return col, true, nil
	case "desc":
		return col, false, nil
	default:
		return 0, false, fmt.Errorf("sort %q: direction must be asc or desc", s)
	}
}

func newSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <collection> <cell> <text>",
		Short: "Set the text of one cell and save",
		Args:  cobra.ExactArgs(3),
		RunE: withSession(func(ctx context.Context, s *session, args []string) error {
			p, err := s.open(ctx, args[0])
			if err != nil {
				return err
			}
			r, err := parser.ParseRange(args[1])
			if err != nil {
				return err
			}
			if err := grid.EditCellText(p.Grid, r.Top, r.Left, args[2]); err != nil {
				return fmt.Errorf("set %s: %w", args[1], err)
			}
			return p.Save(ctx)
		}),
	}
}

func newApplyCmd() *cobra.Command {
	var (
		selection string
		params    grid.Params
	)
	names := make([]string, len(grid.Actions))
	for i, a := range grid.Actions {
		names[i] = string(a)
	}
	cmd := &cobra.Command{
		Use:       "apply <collection> <action>",
		Short:     "Run a context-menu action on a selection and save",
		Long:      "Actions: " + strings.Join(names, ", "),
		Args:      cobra.ExactArgs(2),
		ValidArgs: names,
		RunE: withSession(func(ctx context.Context, s *session, args []string) error {
			p, err := s.open(ctx, args[0])
			if err != nil {
				return err
			}
			if selection != "" {
				ranges, err := parser.ParseRanges(selection)
				if err != nil {
					return err
				}
				p.Grid.Select(ranges...)
			}
			action := grid.Action(args[1])
			for _, r := range p.Grid.SelectedRanges() {
				s.log.WithField("range", parser.FormatRange(r)).Debug(string(action))
			}
			if err := grid.Dispatch(p.Grid, action, clampParams(action, params)); err != nil {
				return err
			}
			return p.Save(ctx)
		}),
	}
	cmd.Flags().StringVarP(&selection, "select", "s", "", "Selected ranges, e.g. A1:B2,D4")
	cmd.Flags().StringVar(&params.Color, "color", "", "Background for set-color")
	cmd.Flags().IntVar(&params.Size, "size", 0, "Width, height or point size for the set-* actions")
	cmd.Flags().IntVar(&params.Count, "count", 1, "Rows or columns to add")
	return cmd
}

// clampParams limits sizes to the bounds of the editor's size dialogs.
func clampParams(action grid.Action, p grid.Params) grid.Params {
	if p.Size <= 0 {
		return p
	}
	switch action {
	case grid.ActionSetWidth:
		p.Size = min(max(p.Size, grid.MinColumnWidth), grid.MaxColumnWidth)
	case grid.ActionSetHeight:
		p.Size = min(max(p.Size, grid.MinRowHeight), grid.MaxRowHeight)
	case grid.ActionSetFontSize:
		p.Size = min(max(p.Size, grid.MinFontSize), grid.MaxFontSize)
	}
	return p
}

func newFilterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "filter <collection> <column|header>",
		Short: "List the values a filter on a column can choose from",
		Args:  cobra.ExactArgs(2),
		RunE: withSession(func(ctx context.Context, s *session, args []string) error {
			p, err := s.open(ctx, args[0])
			if err != nil {
				return err
			}
			col, err := columnByHeader(p.Grid.Headers(), args[1])
			if err != nil {
				return err
			}
			values, err := p.FilterValues(col)
			if err != nil {
				return err
			}
			for _, v := range values {
				fmt.Println(v)
			}
			return nil
		}),
	}
}

func newExportCmd() *cobra.Command {
	var (
		format string
		pretty bool
		sheet  string
	)
	cmd := &cobra.Command{
		Use:   "export <collection> <output>",
		Short: "Write a collection to a JSON document or an xlsx workbook",
		Args:  cobra.ExactArgs(2),
		RunE: withSession(func(ctx context.Context, s *session, args []string) error {
			p, err := s.open(ctx, args[0])
			if err != nil {
				return err
			}
			outputPath := args[1]
			f := format
			if f == "" {
				f = strings.TrimPrefix(strings.ToLower(filepath.Ext(outputPath)), ".")
			}
			switch f {
			case "json":
				data, err := output.ToJSON(codec.Encode(p.Grid, p.IsAdmin), pretty)
				if err != nil {
					return fmt.Errorf("serialization failed: %w", err)
				}
				if err := os.WriteFile(outputPath, data, 0644); err != nil {
					return fmt.Errorf("failed to write output: %w", err)
				}
			case "xlsx":
				if err := output.SaveXLSX(p.Grid, outputPath, sheet); err != nil {
					return fmt.Errorf("failed to write output: %w", err)
				}
			default:
				return fmt.Errorf("invalid format: %q (must be json or xlsx)", f)
			}
			s.log.WithField("collection", p.Collection).WithField("path", outputPath).Info("exported")
			return nil
		}),
	}
	cmd.Flags().StringVar(&format, "format", "", "json or xlsx (default from the output extension)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	cmd.Flags().StringVar(&sheet, "sheet", output.DefaultSheetName, "Sheet name for xlsx output")
	return cmd
}

func newImportCmd() *cobra.Command {
	var ropts parser.ReadOptions
	cmd := &cobra.Command{
		Use:   "import <collection> <input.xlsx>",
		Short: "Replace a collection with one sheet of a workbook",
		Args:  cobra.ExactArgs(2),
		RunE: withSession(func(ctx context.Context, s *session, args []string) error {
			if !s.isAdmin {
				return gridsheet.NewPageError(args[0], "import", gridsheet.ErrReadOnly)
			}
			return gridsheet.ImportXLSX(ctx, s.st, args[1], args[0], ropts, s.opts)
		}),
	}
	cmd.Flags().StringVar(&ropts.Sheet, "sheet", "", "Sheet to import (default: first sheet)")
	cmd.Flags().BoolVar(&ropts.UsePrintArea, "print-area", false, "Import only the sheet's first print area")
	return cmd
}

func newAppendRowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "append-row <collection> <target> <row>",
		Short: "Append a data row (1-based) of a collection to another collection",
		Args:  cobra.ExactArgs(3),
		RunE: withSession(func(ctx context.Context, s *session, args []string) error {
			p, err := s.open(ctx, args[0])
			if err != nil {
				return err
			}
			n, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("row %q: %w", args[2], err)
			}
			return p.AppendRowTo(ctx, args[1], n-1+p.HeaderRows())
		}),
	}
}

func newHashPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password <password>",
		Short: "Print the bcrypt hash to put in the users list of the config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := auth.HashPassword(args[0])
			if err != nil {
				return err
			}
			fmt.Println(hash)
			return nil
		},
	}
}
