package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/photo-backup/models"
)

const (
	runsTable  = "sync_runs"
	unitsTable = "sync_units"
)

// psql is the statement builder for the SQLite journal.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildInsertRunQuery(run models.JournalRun) (string, []any, error) {
	return psql.Insert(runsTable).
		Columns("run_id", "scope", "status", "started_at").
		Values(run.ID, run.Scope, run.Status, run.StartedAt).
		ToSql()
}

func buildInsertUnitQuery(unit models.JournalUnit, writtenAt time.Time) (string, []any, error) {
	return psql.Insert(unitsTable).
		Columns("run_id", "path", "kind", "item_id", "hash", "status", "written_at").
		Values(unit.RunID, unit.Path, unit.Kind.String(), unit.ItemID, unit.Hash, unit.Status, writtenAt).
		ToSql()
}

// buildLastHashQuery selects the hash of the newest unit written at path.
// Skipped units carry no content and are ignored.
func buildLastHashQuery(path string) (string, []any, error) {
	return psql.Select("hash").
		From(unitsTable).
		Where(sq.Eq{"path": path}).
		Where(sq.NotEq{"status": models.UnitSkipped}).
		OrderBy("unit_id DESC").
		Limit(1).
		ToSql()
}

func buildFinishRunQuery(runID, status, errText string, finishedAt time.Time) (string, []any, error) {
	return psql.Update(runsTable).
		Set("status", status).
		Set("error", errText).
		Set("finished_at", finishedAt).
		Where(sq.Eq{"run_id": runID}).
		ToSql()
}

func buildListRunsQuery(limit int) (string, []any, error) {
	query := psql.Select(
		"r.run_id", "r.scope", "r.status", "r.error", "r.started_at", "r.finished_at",
		"COUNT(u.unit_id)",
	).
		From(runsTable + " r").
		LeftJoin(unitsTable + " u ON u.run_id = r.run_id").
		GroupBy("r.run_id").
		OrderBy("r.started_at DESC", "r.run_id DESC")

	if limit > 0 {
		query = query.Limit(uint64(limit))
	}

	return query.ToSql()
}
