package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/donaldgifford/marketbridge/internal/bridge"
	domain "github.com/donaldgifford/marketbridge/pkg/types"
)

const timeLayout = "2006-01-02 15:04:05"

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printOrdersTable(w io.Writer, orders []domain.Order) error {
	tw := newTabWriter(w)
	tw.writef("ID\tSTATUS\tCREATED\n")
	for i := range orders {
		tw.writef("%s\t%s\t%s\n",
			orders[i].ID,
			orDash(orders[i].Status),
			formatCreated(&orders[i]),
		)
	}
	return tw.finish()
}

func printOrderDetail(w io.Writer, o *domain.Order) error {
	tw := newTabWriter(w)
	tw.writef("Marketplace:\t%s\n", o.Marketplace)
	tw.writef("ID:\t%s\n", o.ID)
	tw.writef("Status:\t%s\n", orDash(o.Status))
	tw.writef("Created:\t%s\n", formatCreated(o))
	return tw.finish()
}

func printReturnDetail(w io.Writer, r *domain.Return) error {
	tw := newTabWriter(w)
	tw.writef("Marketplace:\t%s\n", r.Marketplace)
	tw.writef("ID:\t%s\n", r.ID)
	tw.writef("Order:\t%s\n", orDash(r.OrderID))
	tw.writef("State:\t%s\n", orDash(r.State))
	return tw.finish()
}

func printStatusTable(w io.Writer, statuses []bridge.ProviderStatus) error {
	tw := newTabWriter(w)
	tw.writef("MARKETPLACE\tENVIRONMENT\tBASE URL\tTOKEN\tRETURNS\n")
	for i := range statuses {
		s := &statuses[i]
		baseURL := s.BaseURL
		if s.Error != "" {
			baseURL = "error: " + s.Error
		}
		tw.writef("%s\t%s\t%s\t%s\t%v\n",
			s.Marketplace,
			s.Environment,
			truncate(baseURL, 60),
			s.TokenState,
			s.Returns,
		)
	}
	return tw.finish()
}

func printAuthResults(w io.Writer, results []authResult) error {
	tw := newTabWriter(w)
	tw.writef("MARKETPLACE\tENVIRONMENT\tRESULT\n")
	for i := range results {
		result := "ok"
		if !results[i].OK {
			result = truncate(results[i].Error, 80)
		}
		tw.writef("%s\t%s\t%s\n", results[i].Marketplace, results[i].Environment, result)
	}
	return tw.finish()
}

func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func formatCreated(o *domain.Order) string {
	if o.CreatedAt == nil {
		return "-"
	}
	return o.CreatedAt.Format(timeLayout)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
