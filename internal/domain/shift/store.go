package shift

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"restopos/internal/platform/db"
)

var ErrReportNotFound = errors.New("shift report not found")

type Store struct {
	DB db.Queryer
}

func NewStore(q db.Queryer) *Store {
	return &Store{DB: q}
}

func (s *Store) Create(ctx context.Context, report Report) (Report, error) {
	err := s.DB.QueryRow(ctx, `
    INSERT INTO shift_reports (
      branch_id, user_id, user_name, ended_at,
      system_cash, system_card, system_transfer,
      declared_cash, declared_card, declared_transfer,
      disc_cash, disc_card, disc_transfer
    ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
    RETURNING id
  `, report.BranchID, report.UserID, report.UserName, report.EndedAt,
		report.System.Cash, report.System.Card, report.System.Transfer,
		report.Declared.Cash, report.Declared.Card, report.Declared.Transfer,
		report.Discrepancies.Cash, report.Discrepancies.Card, report.Discrepancies.Transfer,
	).Scan(&report.ID)
	if err != nil {
		return Report{}, err
	}
	return report, nil
}

func (s *Store) ListByBranch(ctx context.Context, branchID string, limit, offset int) ([]Report, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, branch_id, user_id, user_name, ended_at,
           system_cash, system_card, system_transfer,
           declared_cash, declared_card, declared_transfer,
           disc_cash, disc_card, disc_transfer
    FROM shift_reports
    WHERE branch_id = $1
    ORDER BY ended_at DESC
    LIMIT $2 OFFSET $3
  `, branchID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Report
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, report)
	}
	return out, rows.Err()
}

func (s *Store) GetByID(ctx context.Context, branchID, reportID string) (Report, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT id, branch_id, user_id, user_name, ended_at,
           system_cash, system_card, system_transfer,
           declared_cash, declared_card, declared_transfer,
           disc_cash, disc_card, disc_transfer
    FROM shift_reports
    WHERE id = $1 AND branch_id = $2
  `, reportID, branchID)
	report, err := scanReport(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Report{}, ErrReportNotFound
	}
	return report, err
}

func scanReport(row pgx.Row) (Report, error) {
	var report Report
	err := row.Scan(
		&report.ID, &report.BranchID, &report.UserID, &report.UserName, &report.EndedAt,
		&report.System.Cash, &report.System.Card, &report.System.Transfer,
		&report.Declared.Cash, &report.Declared.Card, &report.Declared.Transfer,
		&report.Discrepancies.Cash, &report.Discrepancies.Card, &report.Discrepancies.Transfer,
	)
	if err != nil {
		return Report{}, err
	}
	return report, nil
}
