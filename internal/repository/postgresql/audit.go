package postgresql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/meridianhr/payroll-backend-go/internal/domain/audit"
	"github.com/meridianhr/payroll-backend-go/internal/pkg/database"
)

type auditRepository struct {
	db *database.DB
}

func NewAuditRepository(db *database.DB) audit.AuditRepository {
	return &auditRepository{db: db}
}

func (r *auditRepository) Create(ctx context.Context, log audit.Log) error {
	q := GetQuerier(ctx, r.db)

	oldValues, err := marshalValues(log.OldValues)
	if err != nil {
		return fmt.Errorf("failed to encode old values: %w", err)
	}
	newValues, err := marshalValues(log.NewValues)
	if err != nil {
		return fmt.Errorf("failed to encode new values: %w", err)
	}

	if log.ID == "" {
		log.ID = uuid.New().String()
	}

	query := `
		INSERT INTO audit_logs (id, table_name, record_id, action, old_values, new_values, changed_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err = q.Exec(ctx, query, log.ID, log.TableName, log.RecordID, log.Action, oldValues, newValues, log.ChangedBy)
	if err != nil {
		return fmt.Errorf("failed to create audit log: %w", err)
	}

	return nil
}

func (r *auditRepository) ListByRecord(ctx context.Context, tableName, recordID string) ([]audit.Log, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, table_name, record_id, action, old_values, new_values, changed_by, changed_at
		FROM audit_logs
		WHERE table_name = $1 AND record_id = $2
		ORDER BY changed_at DESC
	`

	rows, err := q.Query(ctx, query, tableName, recordID)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit logs: %w", err)
	}
	defer rows.Close()

	return collectLogs(rows)
}

func (r *auditRepository) ListRecent(ctx context.Context, limit int) ([]audit.Log, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, table_name, record_id, action, old_values, new_values, changed_by, changed_at
		FROM audit_logs
		ORDER BY changed_at DESC
		LIMIT $1
	`

	rows, err := q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent audit logs: %w", err)
	}
	defer rows.Close()

	return collectLogs(rows)
}

func collectLogs(rows interface {
	Next() bool
	Scan(dest ...any) error
}) ([]audit.Log, error) {
	var logs []audit.Log
	for rows.Next() {
		var log audit.Log
		var oldValues, newValues []byte
		if err := rows.Scan(
			&log.ID, &log.TableName, &log.RecordID, &log.Action,
			&oldValues, &newValues, &log.ChangedBy, &log.ChangedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan audit log: %w", err)
		}
		if err := unmarshalValues(oldValues, &log.OldValues); err != nil {
			return nil, fmt.Errorf("failed to decode old values: %w", err)
		}
		if err := unmarshalValues(newValues, &log.NewValues); err != nil {
			return nil, fmt.Errorf("failed to decode new values: %w", err)
		}
		logs = append(logs, log)
	}

	return logs, nil
}

func marshalValues(values map[string]any) ([]byte, error) {
	if values == nil {
		return nil, nil
	}
	return json.Marshal(values)
}

func unmarshalValues(data []byte, target *map[string]any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, target)
}

type auditRecorder struct {
	repo audit.AuditRepository
}

// NewAuditRecorder adapts the audit repository to the write-only Recorder
// interface services depend on.
func NewAuditRecorder(repo audit.AuditRepository) audit.Recorder {
	return &auditRecorder{repo: repo}
}

func (r *auditRecorder) Record(ctx context.Context, log audit.Log) error {
	return r.repo.Create(ctx, log)
}
