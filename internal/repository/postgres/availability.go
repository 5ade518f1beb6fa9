package postgres

import (
	"context"
	"database/sql"

	"sportshare-backend/internal/domain"
	"sportshare-backend/internal/repository"
)

type availabilityRepository struct {
	db *sql.DB
}

func NewAvailabilityRepository(db *sql.DB) repository.AvailabilityRepository {
	return &availabilityRepository{db: db}
}

func (r *availabilityRepository) Declare(ctx context.Context, iv *domain.AvailabilityInterval) error {
	if iv.Kind == "" {
		iv.Kind = domain.IntervalKindAvailable
	}
	query := `INSERT INTO equipment_availability (equipment_id, start_date, end_date, kind)
	          VALUES ($1, $2::date, $3::date, $4)
	          RETURNING id`
	return r.db.QueryRowContext(ctx, query, iv.EquipmentID, iv.StartDate, iv.EndDate, iv.Kind).Scan(&iv.ID)
}

// Covers is a containment check against one declared interval, not a
// union computation over all of them.
func (r *availabilityRepository) Covers(ctx context.Context, equipmentID int64, startDate, endDate string) (bool, error) {
	query := `SELECT EXISTS (
	            SELECT 1 FROM equipment_availability a
	            WHERE a.equipment_id = $1
	              AND COALESCE(a.kind, 'available') = 'available'
	              AND a.start_date <= $2::date
	              AND a.end_date >= $3::date
	          )`
	var covered bool
	err := r.db.QueryRowContext(ctx, query, equipmentID, startDate, endDate).Scan(&covered)
	return covered, err
}

func (r *availabilityRepository) ListForEquipment(ctx context.Context, equipmentID int64) ([]domain.AvailabilityInterval, error) {
	query := `SELECT id, equipment_id, start_date::text, end_date::text, COALESCE(kind, 'available')
	          FROM equipment_availability
	          WHERE equipment_id = $1
	          ORDER BY start_date ASC, id ASC`
	rows, err := r.db.QueryContext(ctx, query, equipmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var intervals []domain.AvailabilityInterval
	for rows.Next() {
		var iv domain.AvailabilityInterval
		if err := rows.Scan(&iv.ID, &iv.EquipmentID, &iv.StartDate, &iv.EndDate, &iv.Kind); err != nil {
			return nil, err
		}
		intervals = append(intervals, iv)
	}
	return intervals, rows.Err()
}

var _ repository.AvailabilityRepository = (*availabilityRepository)(nil)
