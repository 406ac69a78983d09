package core

import (
	"github.com/smartystreets/logging"

	"github.com/smarty/s25update/contracts"
)

// LinkReconciler replays the link list. A link that cannot be created is
// reported and skipped; links never fail the run.
type LinkReconciler struct {
	logger  *logging.Logger
	creator contracts.LinkCreator
}

func NewLinkReconciler(creator contracts.LinkCreator) *LinkReconciler {
	return &LinkReconciler{creator: creator}
}

func (this *LinkReconciler) Reconcile(entries []contracts.LinkEntry) (created, failed int) {
	for _, entry := range entries {
		err := this.creator.CreateLink(entry.LinkPath, entry.TargetName)
		if err != nil {
			this.logger.Printf("[WARN] Failed to link '%s' to '%s': %s", entry.LinkPath, entry.TargetName, err)
			failed++
			continue
		}
		created++
	}
	return created, failed
}
