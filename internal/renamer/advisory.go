package renamer

import log "github.com/sirupsen/logrus"

// Advise warns that constraint text still refers to the original names.
// Foreign keys are never rewritten here; this only reports.
func Advise(logger log.FieldLogger, tables *Mapping, dryRun bool) {
	logger.Warnf("Foreign key constraint handling is not implemented. Constraints referencing the %d renamed table(s) and their columns were not updated. Manual review of constraints is recommended.", tables.Len())
	if dryRun {
		logger.Info("(Dry run) Foreign key constraints would need to be adjusted manually after renaming.")
		return
	}
	logger.Info("Foreign key constraints must be adjusted manually.")
}
