package audit

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"restopos/internal/platform/db"
)

type Entry struct {
	ID        string    `json:"id"`
	BranchID  string    `json:"branchId"`
	UserID    string    `json:"userId,omitempty"`
	UserName  string    `json:"userName"`
	Action    string    `json:"action"`
	Module    string    `json:"module"`
	Details   string    `json:"details"`
	CreatedAt time.Time `json:"createdAt"`
}

type Filter struct {
	Module string
	Action string
	UserID string
}

type Service struct {
	DB db.Queryer
}

func New(q db.Queryer) *Service {
	return &Service{DB: q}
}

// Record appends one audit entry. Auditing is best-effort: failures
// are logged, never propagated to the caller's operation.
func (s *Service) Record(ctx context.Context, branchID, userID, userName, action, module, details string) {
	var uid any
	if userID != "" {
		uid = userID
	}
	_, err := s.DB.Exec(ctx, `
    INSERT INTO audit_logs (branch_id, user_id, user_name, action, module, details)
    VALUES ($1,$2,$3,$4,$5,$6)
  `, branchID, uid, userName, action, module, details)
	if err != nil {
		slog.Warn("audit record failed", "error", err, "action", action, "module", module)
	}
}

func (s *Service) List(ctx context.Context, branchID string, filter Filter, limit, offset int) ([]Entry, error) {
	query := `
    SELECT id, branch_id, COALESCE(user_id::text, ''), user_name, action, module, details, created_at
    FROM audit_logs
    WHERE branch_id = $1
  `
	args := []any{branchID}
	if filter.Module != "" {
		query += fmt.Sprintf(" AND module = $%d", len(args)+1)
		args = append(args, filter.Module)
	}
	if filter.Action != "" {
		query += fmt.Sprintf(" AND action = $%d", len(args)+1)
		args = append(args, filter.Action)
	}
	if filter.UserID != "" {
		query += fmt.Sprintf(" AND user_id::text = $%d", len(args)+1)
		args = append(args, filter.UserID)
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var entry Entry
		if err := rows.Scan(&entry.ID, &entry.BranchID, &entry.UserID, &entry.UserName,
			&entry.Action, &entry.Module, &entry.Details, &entry.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, entry)
	}
	return out, rows.Err()
}
