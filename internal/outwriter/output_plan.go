package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/mhelling/podfit/internal/contract"
	"github.com/mhelling/podfit/schema"

	"github.com/olekukonko/tablewriter"
)

// planView is the JSON projection of a size plan.
type planView struct {
	Total int   `json:"total"`
	Pods  []int `json:"pods"`
}

// WritePlanResult outputs the target pod-size plan for a head count.
func WritePlanResult(total int, sizes []int, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, planView{Total: total, Pods: sizes})
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVWithHeader(w, []string{"pod", "seats"}, func(csvWriter *csv.Writer) error {
				for i, s := range sizes {
					if err := csvWriter.Write([]string{strconv.Itoa(i + 1), strconv.Itoa(s)}); err != nil {
						return fmt.Errorf("failed to write CSV row: %w", err)
					}
				}
				return nil
			})
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writePlanTable(w, total, sizes, cfg)
		}, "Wrote table")
	}
}

// writePlanTable renders the plan as a small table with a summary line.
func writePlanTable(w io.Writer, total int, sizes []int, cfg *contract.Config) error {
	if len(sizes) == 0 {
		_, err := fmt.Fprintf(w, "⚠️  %d players cannot form a pod (minimum is %d).\n", total, schema.MinPodSeats)
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Pod", "Seats", "Fill"})

	var data [][]string
	for i, s := range sizes {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			strconv.Itoa(s),
			contract.GetColorFillLabel(s, cfg.UseColors),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "\n🎲 %d players across %d pods\n", total, len(sizes))
	return err
}
