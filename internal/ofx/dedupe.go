package ofx

import (
	"fmt"

	"github.com/Veraticus/pocket-ledger/internal/model"
)

// Fingerprint identifies an entry by day, time, type, name and amount in cents.
// Statements carry no ID that survives into an entry, so re-importing the
// same file is detected by content.
func Fingerprint(e model.Entry) string {
	return fmt.Sprintf("%s|%s|%s|%s|%d",
		e.Date.Format("2006-01-02"),
		e.Time.Format("15:04"),
		e.Type,
		e.Name,
		int64(e.Amount*100+0.5),
	)
}

// FilterNew returns the incoming entries not already present in existing,
// also dropping repeats within incoming. Order is preserved.
func FilterNew(existing, incoming []model.Entry) []model.Entry {
	seen := make(map[string]bool, len(existing))
	for _, e := range existing {
		seen[Fingerprint(e)] = true
	}

	var fresh []model.Entry
	for _, e := range incoming {
		key := Fingerprint(e)
		if seen[key] {
			continue
		}
		seen[key] = true
		fresh = append(fresh, e)
	}
	return fresh
}
