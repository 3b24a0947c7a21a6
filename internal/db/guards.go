package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/balkashynov/healthclub/internal/config"
)

// ErrConstraintViolation is returned when the storage-level overlap guard
// rejects a PT session insert
var ErrConstraintViolation = errors.New("constraint violation")

const (
	// guardMessage is raised by both trigger flavours and matched on the way out
	guardMessage = "member already has a PT session during this time"

	// SQLSTATE exclusion_violation, raised by the postgres trigger
	pgExclusionViolation = "23P01"
	pgUniqueViolation    = "23505"
)

const indexSQL = `CREATE INDEX IF NOT EXISTS idx_ptsession_start ON pt_sessions(start_time)`

const postgresViewSQL = `CREATE OR REPLACE VIEW member_latest_metric AS
SELECT
    m.id AS member_id,
    m.full_name,
    hm.recorded_at,
    hm.weight,
    hm.heart_rate,
    hm.body_fat_percentage
FROM members m
LEFT JOIN LATERAL (
    SELECT *
    FROM health_metrics
    WHERE health_metrics.member_id = m.id
    ORDER BY recorded_at DESC, id DESC
    LIMIT 1
) hm ON true`

const postgresGuardFuncSQL = `CREATE OR REPLACE FUNCTION prevent_overlapping_pt()
RETURNS TRIGGER AS $$
BEGIN
    PERFORM pg_advisory_xact_lock(hashtext('pt_sessions.member_id'), NEW.member_id::integer);

    IF EXISTS (
        SELECT 1
        FROM pt_sessions
        WHERE member_id = NEW.member_id
          AND status <> 'cancelled'
          AND NEW.start_time < end_time
          AND NEW.end_time > start_time
    ) THEN
        RAISE EXCEPTION '` + guardMessage + `'
            USING ERRCODE = 'exclusion_violation';
    END IF;

    RETURN NEW;
END;
$$ LANGUAGE plpgsql`

const postgresDropTriggerSQL = `DROP TRIGGER IF EXISTS prevent_overlap_trigger ON pt_sessions`

const postgresTriggerSQL = `CREATE TRIGGER prevent_overlap_trigger
BEFORE INSERT ON pt_sessions
FOR EACH ROW
EXECUTE FUNCTION prevent_overlapping_pt()`

const sqliteViewSQL = `CREATE VIEW IF NOT EXISTS member_latest_metric AS
SELECT
    m.id AS member_id,
    m.full_name,
    hm.recorded_at,
    hm.weight,
    hm.heart_rate,
    hm.body_fat_percentage
FROM members m
LEFT JOIN health_metrics hm ON hm.id = (
    SELECT h.id
    FROM health_metrics h
    WHERE h.member_id = m.id
    ORDER BY h.recorded_at DESC, h.id DESC
    LIMIT 1
)`

const sqliteDropTriggerSQL = `DROP TRIGGER IF EXISTS prevent_overlap_trigger`

// julianday compares instants, so rows written with different UTC offsets
// still collide
const sqliteTriggerSQL = `CREATE TRIGGER prevent_overlap_trigger
BEFORE INSERT ON pt_sessions
FOR EACH ROW
WHEN EXISTS (
    SELECT 1
    FROM pt_sessions
    WHERE member_id = NEW.member_id
      AND status <> 'cancelled'
      AND julianday(NEW.start_time) < julianday(end_time)
      AND julianday(NEW.end_time) > julianday(start_time)
)
BEGIN
    SELECT RAISE(ABORT, '` + guardMessage + `');
END`

// guardStatements returns the DDL for the index, the view and the member
// overlap trigger, in execution order
func guardStatements(dialect string) ([]string, error) {
	switch dialect {
	case config.DriverPostgres:
		return []string{
			indexSQL,
			postgresViewSQL,
			postgresGuardFuncSQL,
			postgresDropTriggerSQL,
			postgresTriggerSQL,
		}, nil
	case config.DriverSQLite:
		return []string{
			indexSQL,
			sqliteViewSQL,
			sqliteDropTriggerSQL,
			sqliteTriggerSQL,
		}, nil
	}
	return nil, fmt.Errorf("no guard statements for dialect %q", dialect)
}

// installGuards is idempotent; it runs on every Open
func installGuards(ctx context.Context, sqlDB *sql.DB, dialect string) error {
	stmts, err := guardStatements(dialect)
	if err != nil {
		return err
	}
	for _, stmt := range stmts {
		if _, err := sqlDB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("installing guard %q: %w", firstLine(stmt), err)
		}
	}
	return nil
}

// isConstraintViolation reports whether err came from the overlap trigger
func isConstraintViolation(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgExclusionViolation
	}
	return strings.Contains(err.Error(), guardMessage)
}

// isUniqueViolation reports whether err is a unique constraint failure
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
