package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/examseat/internal/app"
	"github.com/alexanderramin/examseat/internal/domain"
)

// FormatRunList renders stored runs, newest first.
func FormatRunList(runs []*domain.Run, now time.Time) string {
	if len(runs) == 0 {
		return Dim("No runs yet. Use 'examseat allocate' to create one.") + "\n"
	}
	rows := make([][]string, 0, len(runs))
	for _, r := range runs {
		rows = append(rows, []string{
			TruncID(r.ID),
			HumanTimestamp(r.CreatedAt, now),
			r.InputDir,
			fmt.Sprintf("%s/%d", r.Mode, r.Buffer),
			fmt.Sprintf("%d", r.SeatedCount),
			Count(r.ClashCount),
			RunStatusPill(r.ShortfallCount),
		})
	}
	table := Table{
		Headers: []string{"ID", "CREATED", "INPUT", "MODE", "SEATED", "CLASHES", "STATUS"},
		Rows:    rows,
		Align:   []Align{AlignLeft, AlignLeft, AlignLeft, AlignLeft, AlignRight, AlignRight},
	}.Render()
	return RenderBox("Runs", table)
}

// FormatRunDetail renders one stored run with its allocations and diagnostics.
func FormatRunDetail(d *app.RunDetail, now time.Time) string {
	r := d.Run
	meta := []string{
		fmt.Sprintf("%s  %s", Bold("ID"), r.ID),
		fmt.Sprintf("%s  %s", Bold("Created"), HumanTimestamp(r.CreatedAt, now)),
		fmt.Sprintf("%s  %s", Bold("Input"), r.InputDir),
		fmt.Sprintf("%s  %s, buffer %d", Bold("Mode"), r.Mode, r.Buffer),
		fmt.Sprintf("%s  %s", Bold("Status"), RunStatusPill(r.ShortfallCount)),
	}
	if r.OutputDir != "" {
		meta = append(meta, fmt.Sprintf("%s  %s", Bold("Output"), r.OutputDir))
	}

	var b strings.Builder
	b.WriteString(RenderBox("Run "+r.DisplayID(), strings.Join(meta, "\n")))
	b.WriteString("\n\n")
	if len(d.Allocations) > 0 {
		b.WriteString(Header("Allocations"))
		b.WriteString("\n")
		b.WriteString(FormatAllocations(d.Allocations))
		b.WriteString("\n")
	}
	b.WriteString(FormatDiagnostics(d.Diagnostics))
	return b.String()
}
