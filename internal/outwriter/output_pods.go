package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/mhelling/podfit/core"
	"github.com/mhelling/podfit/internal/contract"
	"github.com/mhelling/podfit/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteAssignmentResult outputs a generation result, dispatching based on the
// output format configured.
func WriteAssignmentResult(res *schema.AssignmentResult, cfg *contract.Config, duration time.Duration) error {
	fmtFloat := createFloatFormatter(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, schema.EnrichResult(res, cfg.Leniency))
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeAssignmentCSV(w, res, fmtFloat)
		}, "Wrote CSV")
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeAssignmentTable(w, res, cfg, fmtFloat, duration)
		}, "Wrote table")
	}
}

// unitCell renders a unit's display name, listing group members.
func unitCell(u schema.Unit, maxLen int) string {
	switch v := u.(type) {
	case *schema.Participant:
		return contract.TruncateName(v.Name, maxLen)
	case *schema.Group:
		names := make([]string, len(v.Members))
		for i, m := range v.Members {
			names[i] = m.Name
		}
		return contract.TruncateName(fmt.Sprintf("%s (%s)", v.Name, strings.Join(names, ", ")), maxLen)
	default:
		return contract.TruncateName(u.UnitID(), maxLen)
	}
}

// unitKind labels a unit row for tables and CSV.
func unitKind(u schema.Unit) string {
	if _, ok := u.(*schema.Group); ok {
		return "group"
	}
	return "player"
}

// formatAnchorList renders a power list for the detail column.
func formatAnchorList(powers []schema.PowerValue) string {
	if len(powers) == 0 {
		return "-"
	}
	return contract.FormatPowers(powers)
}

// writeAssignmentTable generates and writes the human-readable table.
func writeAssignmentTable(w io.Writer, res *schema.AssignmentResult, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration) error {
	table := tablewriter.NewWriter(w)

	// 1. Define headers
	headers := []string{"Pod", "Anchor", "Fill", "Unit", "Kind", "Seats"}
	if cfg.Detail {
		headers = append(headers, "Powers", "Common")
	}
	table.Header(headers)

	// 2. Keep numeric columns right-aligned for a minimal look
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignLeft
	})

	nameWidth := getMaxTableNameWidth(cfg)
	tolerance := cfg.Leniency.Tolerance()

	// 3. Populate rows: one per unit, pods first, bench last
	var data [][]string
	for i := range res.Pods {
		pod := &res.Pods[i]
		common := formatAnchorList(core.CommonAnchors(pod.Members, tolerance))
		for j, u := range pod.Members {
			row := []string{
				strconv.Itoa(i + 1),
				fmtFloat(float64(pod.Anchor)),
				contract.GetColorFillLabel(pod.Seats(), cfg.UseColors),
				unitCell(u, nameWidth),
				unitKind(u),
				strconv.Itoa(u.Size()),
			}
			if cfg.Detail {
				commonCell := common
				if j > 0 {
					commonCell = ""
				}
				row = append(row, formatAnchorList(u.Anchors()), commonCell)
			}
			data = append(data, row)
		}
	}
	benchLabel := contract.BenchValue
	if cfg.UseColors {
		benchLabel = contract.BenchColor.Sprint(contract.BenchValue)
	}
	for _, u := range res.Unassigned {
		row := []string{"-", "-", benchLabel, unitCell(u, nameWidth), unitKind(u), strconv.Itoa(u.Size())}
		if cfg.Detail {
			row = append(row, formatAnchorList(u.Anchors()), "")
		}
		data = append(data, row)
	}

	// 4. Render the table
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	seated := res.SeatedCount()
	total := res.TotalCount()
	_, err := fmt.Fprintf(w, "\n🎲 %d pods | %d/%d players seated | leniency: %s | took %v\n",
		len(res.Pods), seated, total, cfg.Leniency, duration.Round(time.Millisecond))
	return err
}

// writeAssignmentCSV writes one row per unit with its pod placement.
func writeAssignmentCSV(w io.Writer, res *schema.AssignmentResult, fmtFloat func(float64) string) error {
	header := []string{"pod", "anchor", "fill", "unit", "kind", "seats", "powers"}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for i := range res.Pods {
			pod := &res.Pods[i]
			for _, u := range pod.Members {
				row := []string{
					strconv.Itoa(i + 1),
					fmtFloat(float64(pod.Anchor)),
					contract.GetPlainFillLabel(pod.Seats()),
					unitCell(u, 0),
					unitKind(u),
					strconv.Itoa(u.Size()),
					contract.FormatPowers(u.Anchors()),
				}
				if err := csvWriter.Write(row); err != nil {
					return fmt.Errorf("failed to write CSV row: %w", err)
				}
			}
		}
		for _, u := range res.Unassigned {
			row := []string{
				"", "", contract.BenchValue,
				unitCell(u, 0), unitKind(u), strconv.Itoa(u.Size()),
				contract.FormatPowers(u.Anchors()),
			}
			if err := csvWriter.Write(row); err != nil {
				return fmt.Errorf("failed to write CSV row: %w", err)
			}
		}
		return nil
	})
}
