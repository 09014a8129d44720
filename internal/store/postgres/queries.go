package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/groblegark/waveplan/internal/model"
	"github.com/groblegark/waveplan/internal/store"
)

// scannable is the interface satisfied by both *sql.Row and *sql.Rows.
type scannable interface {
	Scan(dest ...any) error
}

func (s *PostgresStore) SaveSnapshot(ctx context.Context, rec *model.SnapshotRecord) error {
	payload, err := json.Marshal(rec.Snapshot)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO snapshots (id, created_at, payload)
		VALUES ($1, $2, $3)`,
		rec.ID, rec.CreatedAt, payload,
	)
	return err
}

func (s *PostgresStore) GetSnapshot(ctx context.Context, id string) (*model.SnapshotRecord, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, created_at, payload FROM snapshots WHERE id = $1`, id)
	rec, err := scanSnapshot(row)
	if err == sql.ErrNoRows {
		return nil, store.ErrNotFound
	}
	return rec, err
}

func (s *PostgresStore) LatestSnapshot(ctx context.Context) (*model.SnapshotRecord, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, created_at, payload FROM snapshots ORDER BY created_at DESC, id DESC LIMIT 1`)
	rec, err := scanSnapshot(row)
	if err == sql.ErrNoRows {
		return nil, store.ErrNotFound
	}
	return rec, err
}

func scanSnapshot(row scannable) (*model.SnapshotRecord, error) {
	var rec model.SnapshotRecord
	var payload []byte
	if err := row.Scan(&rec.ID, &rec.CreatedAt, &payload); err != nil {
		return nil, err
	}
	if len(payload) > 0 {
		rec.Snapshot = &model.Snapshot{}
		if err := json.Unmarshal(payload, rec.Snapshot); err != nil {
			return nil, fmt.Errorf("unmarshal snapshot payload: %w", err)
		}
	}
	return &rec, nil
}

func (s *PostgresStore) RecordBuild(ctx context.Context, build *model.Build) error {
	filter, err := json.Marshal(build.Filter)
	if err != nil {
		return fmt.Errorf("marshal filter: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO builds (id, snapshot_id, created_at, issue_count, edge_count, ready_count, phase_count, filter)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		build.ID, build.SnapshotID, build.CreatedAt,
		build.IssueCount, build.EdgeCount, build.ReadyCount, build.PhaseCount, filter,
	)
	return err
}

func (s *PostgresStore) ListBuilds(ctx context.Context, limit int) ([]*model.Build, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, snapshot_id, created_at, issue_count, edge_count, ready_count, phase_count, filter
		FROM builds ORDER BY created_at DESC, id DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var builds []*model.Build
	for rows.Next() {
		b, err := scanBuild(rows)
		if err != nil {
			return nil, err
		}
		builds = append(builds, b)
	}
	return builds, rows.Err()
}

func scanBuild(row scannable) (*model.Build, error) {
	var b model.Build
	var filter []byte
	err := row.Scan(&b.ID, &b.SnapshotID, &b.CreatedAt,
		&b.IssueCount, &b.EdgeCount, &b.ReadyCount, &b.PhaseCount, &filter)
	if err != nil {
		return nil, err
	}
	if len(filter) > 0 {
		if err := json.Unmarshal(filter, &b.Filter); err != nil {
			return nil, fmt.Errorf("unmarshal build filter: %w", err)
		}
	}
	return &b, nil
}

func (s *PostgresStore) SaveSchedule(ctx context.Context, rec *model.ScheduleRecord) error {
	payload, err := json.Marshal(rec.Schedule)
	if err != nil {
		return fmt.Errorf("marshal schedule: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO schedules (id, snapshot_id, created_at, capacity, payload)
		VALUES ($1, $2, $3, $4, $5)`,
		rec.ID, rec.SnapshotID, rec.CreatedAt, rec.Capacity, payload,
	)
	return err
}

func (s *PostgresStore) GetSchedule(ctx context.Context, id string) (*model.ScheduleRecord, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, snapshot_id, created_at, capacity, payload FROM schedules WHERE id = $1`, id)

	var rec model.ScheduleRecord
	var payload []byte
	err := row.Scan(&rec.ID, &rec.SnapshotID, &rec.CreatedAt, &rec.Capacity, &payload)
	if err == sql.ErrNoRows {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if len(payload) > 0 {
		rec.Schedule = &model.PlanSchedule{}
		if err := json.Unmarshal(payload, rec.Schedule); err != nil {
			return nil, fmt.Errorf("unmarshal schedule payload: %w", err)
		}
	}
	return &rec, nil
}
