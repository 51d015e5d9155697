package domain

// RowOutcome classifies what happened to one student's row in a bulk write.
type RowOutcome string

const (
	RowOK      RowOutcome = "ok"
	RowSkipped RowOutcome = "skipped"
	RowFailed  RowOutcome = "failed"
)

type RowResult struct {
	StudentID int        `json:"student_id"`
	Outcome   RowOutcome `json:"outcome"`
	Reason    string     `json:"reason,omitempty"`
}

// BatchReport accounts for every row of a bulk grade or attendance
// submission; a bad row never disappears silently.
type BatchReport struct {
	Saved   int         `json:"saved"`
	Skipped int         `json:"skipped"`
	Failed  int         `json:"failed"`
	Rows    []RowResult `json:"rows"`
}

func (b *BatchReport) Add(studentID int, outcome RowOutcome, reason string) {
	switch outcome {
	case RowOK:
		b.Saved++
	case RowSkipped:
		b.Skipped++
	case RowFailed:
		b.Failed++
	}
	b.Rows = append(b.Rows, RowResult{StudentID: studentID, Outcome: outcome, Reason: reason})
}
