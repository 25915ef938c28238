package plan

import (
	"context"

	"go.uber.org/zap"

	"github.com/jeffoconnorau/gcbdr-retention-extension-tool/src/backupdr"
	"github.com/jeffoconnorau/gcbdr-retention-extension-tool/src/names"
)

// Result is the outcome of applying one Action.
type Result struct {
	Action Action
	Err    error
}

// Summary aggregates a run's per-record outcomes.
type Summary struct {
	Succeeded int
	Failed    int
}

// Execute applies each action through the client. A failed update is
// recorded and does not abort the remaining actions; each update is an
// independent, non-atomic API call.
func Execute(ctx context.Context, client backupdr.Client, actions []Action, log *zap.SugaredLogger) ([]Result, Summary) {
	results := make([]Result, 0, len(actions))
	var sum Summary
	for _, a := range actions {
		short := names.Short(a.Backup.Name)
		if a.ShrinksRetention {
			log.Warnw("new expiration does not extend retention", "backup", short,
				"current", a.Backup.ExpireTime, "new", a.NewExpire)
		}
		log.Infow("updating expiration", "backup", short, "new", a.NewExpire)
		err := client.UpdateExpiration(ctx, a.Backup.Name, a.NewExpire)
		if err != nil {
			log.Errorw("update failed", "backup", short, "error", err)
			sum.Failed++
		} else {
			log.Infow("updated", "backup", short)
			sum.Succeeded++
		}
		results = append(results, Result{Action: a, Err: err})
	}
	return results, sum
}
