package plan

import (
	"time"

	"github.com/jeffoconnorau/gcbdr-retention-extension-tool/src/backupdr"
	"github.com/jeffoconnorau/gcbdr-retention-extension-tool/src/expiry"
)

// Action is one planned expiration change: the record, its current and
// proposed expirations, and an optional rendered command equivalent.
type Action struct {
	Backup    backupdr.Backup
	NewExpire time.Time
	// ShrinksRetention is set when the proposed expiration is earlier
	// than or equal to the current one. The change is still applied;
	// the emitter warns about it.
	ShrinksRetention bool
	// Command is the rendered equivalent command, empty when no
	// renderer is active.
	Command string
}

// Build computes an Action per backup that carries an expiration.
// Backups without an expireTime cannot be extended and are returned in
// skipped so the caller can account for them.
func Build(backups []backupdr.Backup, d expiry.Directive, r Renderer) (actions []Action, skipped []backupdr.Backup) {
	for _, b := range backups {
		if b.ExpireTime.IsZero() {
			skipped = append(skipped, b)
			continue
		}
		newExpire := d.Apply(b.ExpireTime)
		a := Action{
			Backup:           b,
			NewExpire:        newExpire,
			ShrinksRetention: !newExpire.After(b.ExpireTime),
		}
		if r != nil {
			a.Command = r.Render(b.Name, newExpire)
		}
		actions = append(actions, a)
	}
	return actions, skipped
}
