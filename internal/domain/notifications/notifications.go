package notifications

import (
	"context"
	"time"

	"restopos/internal/platform/db"
)

const (
	KindShiftDiscrepancy = "shift_discrepancy"
	KindLowStock         = "low_stock"
	KindPayroll          = "payroll"
)

type Notification struct {
	ID        string    `json:"id"`
	BranchID  string    `json:"branchId"`
	Kind      string    `json:"kind"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

type Service struct {
	DB db.Queryer
}

func New(q db.Queryer) *Service {
	return &Service{DB: q}
}

// Notify satisfies the Notifier interfaces the shift and inventory
// services consume.
func (s *Service) Notify(ctx context.Context, branchID, kind, message string) error {
	_, err := s.DB.Exec(ctx, `
    INSERT INTO notifications (branch_id, kind, message)
    VALUES ($1,$2,$3)
  `, branchID, kind, message)
	return err
}

func (s *Service) List(ctx context.Context, branchID string, unreadOnly bool, limit, offset int) ([]Notification, error) {
	query := `
    SELECT id, branch_id, kind, message, is_read, created_at
    FROM notifications
    WHERE branch_id = $1
  `
	if unreadOnly {
		query += " AND is_read = false"
	}
	query += " ORDER BY created_at DESC LIMIT $2 OFFSET $3"

	rows, err := s.DB.Query(ctx, query, branchID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Notification
	for rows.Next() {
		var n Notification
		if err := rows.Scan(&n.ID, &n.BranchID, &n.Kind, &n.Message, &n.IsRead, &n.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

func (s *Service) MarkRead(ctx context.Context, branchID, notificationID string) error {
	_, err := s.DB.Exec(ctx, `
    UPDATE notifications SET is_read = true
    WHERE id = $1 AND branch_id = $2
  `, notificationID, branchID)
	return err
}

func (s *Service) MarkAllRead(ctx context.Context, branchID string) error {
	_, err := s.DB.Exec(ctx, `
    UPDATE notifications SET is_read = true
    WHERE branch_id = $1 AND is_read = false
  `, branchID)
	return err
}
