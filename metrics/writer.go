package metrics

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"
)

type Record struct {
	Agent  string
	Player string
	Step   int // 1-based call count of the agent
	Decision
}

var header = []string{"agent", "player", "step", "kind", "start_time", "duration", "slack", "candidates", "overrun", "error"}

// WriteRecords writes decision records as CSV, header first.
func WriteRecords(w io.Writer, records []Record) error {
	writer := csv.NewWriter(w)

	err := writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write decision records header: %w", err)
	}

	for _, record := range records {
		errText := ""
		if record.Err != nil {
			errText = record.Err.Error()
		}
		row := []string{
			record.Agent,
			record.Player,
			strconv.Itoa(record.Step),
			string(record.Kind),
			record.StartTime.UTC().Format(time.RFC3339Nano),
			record.Duration.String(),
			record.Slack.String(),
			strconv.Itoa(record.Candidates),
			strconv.FormatBool(record.Overrun),
			errText,
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write decision record row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush decision records: %w", err)
	}
	return nil
}
