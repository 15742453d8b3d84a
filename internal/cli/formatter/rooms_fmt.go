package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/examseat/internal/app"
)

// FormatRooms renders the room catalog with raw and effective capacity.
func FormatRooms(resp *app.RoomsResponse) string {
	rows := make([][]string, 0, len(resp.Rooms))
	for _, r := range resp.Rooms {
		eff := fmt.Sprintf("%d", r.EffectiveCapacity)
		if r.EffectiveCapacity == 0 {
			eff = StyleRed.Render(eff)
		}
		rows = append(rows, []string{
			Bold(r.ID),
			BlockBadge(r.Block),
			fmt.Sprintf("%d", r.Capacity),
			eff,
		})
	}

	var b strings.Builder
	b.WriteString(Table{
		Headers: []string{"ROOM", "BLOCK", "CAPACITY", "EFFECTIVE"},
		Rows:    rows,
		Align:   []Align{AlignLeft, AlignLeft, AlignRight, AlignRight},
	}.Render())
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s, %d seats (%d effective, %s mode, buffer %d)",
		Plural(len(resp.Rooms), "room"), resp.TotalCapacity, resp.TotalEffectiveCapacity, resp.Mode, resp.Buffer)
	return RenderBox("Rooms", b.String())
}
