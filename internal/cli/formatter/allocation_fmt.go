package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/examseat/internal/app"
	"github.com/alexanderramin/examseat/internal/domain"
	"github.com/alexanderramin/examseat/internal/report"
)

// FormatAllocateResult renders the outcome of an allocate command: a summary
// box, the per-slot room usage and every diagnostic.
func FormatAllocateResult(resp *app.AllocateResponse) string {
	var b strings.Builder
	run := resp.Run

	summary := []string{
		fmt.Sprintf("%s  %s", Bold("Run"), TruncID(run.ID)),
		fmt.Sprintf("%s  %s", Bold("Mode"), fmt.Sprintf("%s, buffer %d", run.Mode, run.Buffer)),
		fmt.Sprintf("%s  %s in %s", Bold("Seated"), Plural(run.SeatedCount, "student"), Plural(run.AllocationCount, "allocation")),
		fmt.Sprintf("%s  %s", Bold("Status"), RunStatusPill(run.ShortfallCount)),
	}
	if run.ClashCount > 0 {
		summary = append(summary, fmt.Sprintf("%s  %s", Bold("Clashes"), StyleYellow.Render(Plural(run.ClashCount, "course pair"))))
	}
	b.WriteString(RenderBox("Seating plan", strings.Join(summary, "\n")))
	b.WriteString("\n\n")

	if len(resp.Result.Allocations) > 0 {
		b.WriteString(Header("Allocations"))
		b.WriteString("\n")
		b.WriteString(FormatAllocations(resp.Result.Allocations))
		b.WriteString("\n")
	}

	if len(resp.Result.Diagnostics) > 0 {
		b.WriteString(FormatDiagnostics(resp.Result.Diagnostics))
		b.WriteString("\n")
	}

	if resp.Export != nil {
		b.WriteString(FormatExport(run.OutputDir, resp.Export))
	}
	if !resp.Saved {
		b.WriteString(Dim("Run not saved.") + "\n")
	}
	return b.String()
}

// FormatAllocations renders allocation records in run order.
func FormatAllocations(allocs []domain.Allocation) string {
	rows := make([][]string, 0, len(allocs))
	for _, a := range allocs {
		rows = append(rows, []string{
			a.Date.Format(domain.DateLayout),
			string(a.Session),
			Bold(a.Course),
			a.Room,
			fmt.Sprintf("%d", len(a.Students)),
		})
	}
	return Table{
		Headers: []string{"DATE", "SESSION", "COURSE", "ROOM", "STUDENTS"},
		Rows:    rows,
		Align:   []Align{AlignLeft, AlignLeft, AlignLeft, AlignLeft, AlignRight},
	}.Render()
}

// FormatDiagnostics lists clash warnings and shortfall errors.
func FormatDiagnostics(diags []domain.Diagnostic) string {
	if len(diags) == 0 {
		return StyleGreen.Render("No clashes or shortfalls.") + "\n"
	}
	var b strings.Builder
	b.WriteString(Header("Diagnostics"))
	b.WriteString("\n")
	for _, d := range diags {
		fmt.Fprintf(&b, "%s  %s\n", SeverityIndicator(d.Severity), d.Message)
	}
	return b.String()
}

// FormatExport reports the files written and any that failed.
func FormatExport(dir string, rep *report.ExportReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s to %s\n", StyleGreen.Render("✔"), Plural(len(rep.Files), "file"), dir)
	for _, f := range rep.Failures {
		fmt.Fprintf(&b, "%s %s\n", StyleRed.Render("✖"), f)
	}
	return b.String()
}

// FormatClashes renders the result of a clash check.
func FormatClashes(resp *app.ClashResponse) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Checked %s.\n", Plural(resp.Slots, "exam slot"))
	if len(resp.Diagnostics) == 0 {
		b.WriteString(StyleGreen.Render("No clashes found.") + "\n")
		return b.String()
	}

	rows := make([][]string, 0, len(resp.Diagnostics))
	for _, d := range resp.Diagnostics {
		rows = append(rows, []string{
			d.Date.Format(domain.DateLayout),
			string(d.Session),
			Bold(strings.Join(d.Courses, " × ")),
			fmt.Sprintf("%d", d.Count),
			strings.Join(d.Students, ", "),
		})
	}
	b.WriteString(Table{
		Headers: []string{"DATE", "SESSION", "COURSES", "SHARED", "ROLLS"},
		Rows:    rows,
		Align:   []Align{AlignLeft, AlignLeft, AlignLeft, AlignRight},
	}.Render())
	return b.String()
}
