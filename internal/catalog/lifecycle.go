package catalog

import (
	"time"

	"github.com/snnyvrz/locallibrary/internal/model"
)

// LoanPeriod is the default due date offset for any status other than
// Available.
const LoanPeriod = 14 * 24 * time.Hour

// Transition moves bi into status at now and records it in the history.
// Every status may follow every other one. Available clears the due date;
// any other status keeps the supplied due date or defaults to now plus
// LoanPeriod. The returned entry is the one appended to bi.History.
func Transition(bi *model.BookInstance, status model.Status, dueBack *time.Time, now time.Time) model.HistoryEntry {
	bi.Status = status

	switch {
	case status == model.StatusAvailable:
		bi.DueBack = nil
	case dueBack != nil:
		due := *dueBack
		bi.DueBack = &due
	default:
		due := now.Add(LoanPeriod)
		bi.DueBack = &due
	}

	entry := model.HistoryEntry{
		BookInstanceID: bi.ID,
		Action:         status,
		Time:           now,
	}
	bi.History = append(bi.History, entry)
	return entry
}
