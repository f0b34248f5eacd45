package formatter

import (
	"encoding/csv"
	"io"
	"strconv"
)

type CSVFormatter struct {
	out io.Writer
}

func NewCSVFormatter(out io.Writer) *CSVFormatter {
	return &CSVFormatter{out: out}
}

func (f *CSVFormatter) Format(rows []Row) error {
	w := csv.NewWriter(f.out)
	defer w.Flush()

	headers := []string{
		"Section", "Header", "Parent", "Faction ID", "Name", "Kind", "Rank",
		"Current", "Max", "Paragon", "Paragon Threshold", "Reward Pending",
		"Account-Wide", "Best Character", "Contributors",
	}
	if err := w.Write(headers); err != nil {
		return err
	}

	for _, row := range rows {
		record := []string{
			row.Section,
			row.Header,
			row.Parent,
			strconv.Itoa(row.FactionID),
			row.Name,
			row.Kind,
			rankLabel(row),
			strconv.Itoa(row.CurrentValue),
			strconv.Itoa(row.MaxValue),
			strconv.Itoa(row.ParagonValue),
			strconv.Itoa(row.ParagonThreshold),
			strconv.FormatBool(row.RewardPending),
			strconv.FormatBool(row.AccountWide),
			row.BestCharacter,
			strconv.Itoa(row.Contributors),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}

	return w.Error()
}

// rankLabel picks the kind-appropriate rank column value.
func rankLabel(row Row) string {
	switch row.Kind {
	case "renown":
		return "Renown " + strconv.Itoa(row.RenownLevel)
	case "friendship":
		return row.RankName
	default:
		return row.Standing
	}
}
