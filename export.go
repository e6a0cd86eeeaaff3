package main

import (
	"encoding/csv"
	"fmt"
	"time"

	"github.com/spf13/afero"

	"github.com/andareed/siftly-tuner/schedule"
)

// exportRecords writes recs as CSV: the schedule's columns plus an "On air"
// column evaluated at at.
func exportRecords(fs afero.Fs, path string, sched *schedule.Schedule, recs []schedule.Record, at time.Time) error {
	if sched == nil {
		return schedule.ErrNotLoaded
	}
	f, err := fs.Create(path)
	if err != nil {
		return fmt.Errorf("open export file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)

	header := append(sched.ColumnNames(), "On air")
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, r := range recs {
		onAir := "no"
		if sched.ActiveAt(r, at) {
			onAir = "yes"
		}
		if err := w.Write(append(sched.Fields(r), onAir)); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
