package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/ryvens/repdash/internal/util"
)

// SummaryFormatter writes account-level reputation totals instead of
// per-faction rows.
type SummaryFormatter struct {
	out io.Writer
}

func NewSummaryFormatter(out io.Writer) *SummaryFormatter {
	return &SummaryFormatter{out: out}
}

func (f *SummaryFormatter) Format(rows []Row) error {
	fmt.Fprintln(f.out, strings.Repeat("=", 48))
	fmt.Fprintln(f.out, "Reputation Summary")
	fmt.Fprintln(f.out, strings.Repeat("=", 48))

	if len(rows) == 0 {
		fmt.Fprintln(f.out, "No factions to summarize")
		return nil
	}

	var accountWide, exalted, paragon, pending int
	byKind := make(map[string]int)
	for _, row := range rows {
		byKind[row.Kind]++
		if row.AccountWide {
			accountWide++
		}
		if row.Standing == "Exalted" {
			exalted++
		}
		if row.ParagonThreshold > 0 {
			paragon++
		}
		if row.RewardPending {
			pending++
		}
	}

	fmt.Fprintf(f.out, "Factions:        %s\n", util.FormatNumber(len(rows)))
	fmt.Fprintf(f.out, "  Standing:      %s\n", util.FormatNumber(byKind["standing"]))
	fmt.Fprintf(f.out, "  Renown:        %s\n", util.FormatNumber(byKind["renown"]))
	fmt.Fprintf(f.out, "  Friendship:    %s\n", util.FormatNumber(byKind["friendship"]))
	fmt.Fprintf(f.out, "Account-wide:    %s\n", util.FormatNumber(accountWide))
	fmt.Fprintf(f.out, "Exalted:         %s\n", util.FormatNumber(exalted))
	fmt.Fprintf(f.out, "Paragon tracks:  %s\n", util.FormatNumber(paragon))
	fmt.Fprintf(f.out, "Pending rewards: %s\n", util.FormatNumber(pending))
	fmt.Fprintln(f.out, strings.Repeat("=", 48))

	return nil
}
