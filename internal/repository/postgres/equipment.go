package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"sportshare-backend/internal/domain"
	"sportshare-backend/internal/repository"
)

type equipmentRepository struct {
	db *sql.DB
}

func NewEquipmentRepository(db *sql.DB) repository.EquipmentRepository {
	return &equipmentRepository{db: db}
}

func (r *equipmentRepository) Create(ctx context.Context, eq *domain.Equipment, imageURLs []string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `INSERT INTO equipment (owner_id, sport_id, title, description, size, condition_id, latitude, longitude)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	          RETURNING id, created_at::text`
	err = tx.QueryRowContext(ctx, query,
		eq.OwnerID, eq.SportID, eq.Title, eq.Description, eq.Size, eq.ConditionID, eq.Latitude, eq.Longitude).
		Scan(&eq.ID, &eq.CreatedAt)
	if err != nil {
		return err
	}

	for _, url := range imageURLs {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO equipment_images (equipment_id, image_url) VALUES ($1, $2)`, eq.ID, url); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *equipmentRepository) GetByID(ctx context.Context, id int64) (*domain.Equipment, error) {
	eq := &domain.Equipment{}
	query := `SELECT id, owner_id, sport_id, title, COALESCE(description, ''), COALESCE(size, ''),
	                 condition_id, latitude, longitude, created_at::text
	          FROM equipment WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&eq.ID, &eq.OwnerID, &eq.SportID, &eq.Title, &eq.Description, &eq.Size,
		&eq.ConditionID, &eq.Latitude, &eq.Longitude, &eq.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrEquipmentNotFound
	}
	if err != nil {
		return nil, err
	}
	return eq, nil
}

func (r *equipmentRepository) GetDetail(ctx context.Context, id int64) (*domain.EquipmentDetail, error) {
	eq, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	detail := &domain.EquipmentDetail{
		Equipment:        eq,
		Images:           []domain.EquipmentImage{},
		Availability:     []domain.AvailabilityInterval{},
		ApprovedBookings: []domain.Booking{},
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, equipment_id, image_url FROM equipment_images WHERE equipment_id = $1 ORDER BY id ASC`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var img domain.EquipmentImage
		if err := rows.Scan(&img.ID, &img.EquipmentID, &img.ImageURL); err != nil {
			return nil, err
		}
		detail.Images = append(detail.Images, img)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	avRows, err := r.db.QueryContext(ctx,
		`SELECT id, equipment_id, start_date::text, end_date::text, COALESCE(kind, 'available')
		 FROM equipment_availability
		 WHERE equipment_id = $1 AND COALESCE(kind, 'available') = 'available'
		 ORDER BY start_date ASC`, id)
	if err != nil {
		return nil, err
	}
	defer avRows.Close()
	for avRows.Next() {
		var iv domain.AvailabilityInterval
		if err := avRows.Scan(&iv.ID, &iv.EquipmentID, &iv.StartDate, &iv.EndDate, &iv.Kind); err != nil {
			return nil, err
		}
		detail.Availability = append(detail.Availability, iv)
	}
	if err := avRows.Err(); err != nil {
		return nil, err
	}

	bkRows, err := r.db.QueryContext(ctx,
		`SELECT `+bookingColumns+`
		 FROM equipment_bookings
		 WHERE equipment_id = $1 AND status = $2
		 ORDER BY start_date ASC`, id, domain.BookingStatusApproved)
	if err != nil {
		return nil, err
	}
	defer bkRows.Close()
	for bkRows.Next() {
		b, err := scanBooking(bkRows)
		if err != nil {
			return nil, err
		}
		detail.ApprovedBookings = append(detail.ApprovedBookings, *b)
	}
	return detail, bkRows.Err()
}

const summaryColumns = `e.id, e.title, COALESCE(e.description, ''), COALESCE(e.size, ''), e.sport_id,
	e.latitude, e.longitude, e.created_at::text, img.image_url`

const firstImageJoin = `LEFT JOIN LATERAL (
	SELECT image_url FROM equipment_images
	WHERE equipment_id = e.id
	ORDER BY id ASC LIMIT 1
) img ON TRUE`

func (r *equipmentRepository) ListByOwner(ctx context.Context, ownerID int64) ([]domain.EquipmentSummary, error) {
	query := `SELECT ` + summaryColumns + `, NULL::float8 AS distance_km
	          FROM equipment e ` + firstImageJoin + `
	          WHERE e.owner_id = $1
	          ORDER BY e.created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSummaries(rows, false)
}

// Search builds the filter clauses positionally; the query shape is
// fixed, only the clause list varies with the provided filters.
func (r *equipmentRepository) Search(ctx context.Context, f domain.EquipmentFilter) ([]domain.EquipmentSummary, error) {
	conds := []string{}
	args := []any{}
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.Query != "" {
		p := arg("%" + f.Query + "%")
		conds = append(conds, fmt.Sprintf("(e.title ILIKE %s OR e.description ILIKE %s OR e.size ILIKE %s)", p, p, p))
	}
	if f.SportID != 0 {
		conds = append(conds, "e.sport_id = "+arg(f.SportID))
	}
	if f.StartDate != "" && f.EndDate != "" {
		s, en := arg(f.StartDate), arg(f.EndDate)
		conds = append(conds, fmt.Sprintf(`EXISTS (
			SELECT 1 FROM equipment_availability a
			WHERE a.equipment_id = e.id
			  AND COALESCE(a.kind, 'available') = 'available'
			  AND a.start_date <= %s::date
			  AND a.end_date >= %s::date
		)`, s, en))
		conds = append(conds, fmt.Sprintf(`NOT EXISTS (
			SELECT 1 FROM equipment_bookings b
			WHERE b.equipment_id = e.id
			  AND b.status = ANY(ARRAY['approved','handoff','in_use','returning'])
			  AND b.start_date < %s::date
			  AND b.end_date > %s::date
		)`, en, s))
	}

	distanceSelect := "NULL::float8 AS distance_km"
	orderSQL := "ORDER BY e.created_at DESC"
	withDistance := false
	if f.Latitude != nil && f.Longitude != nil && f.RadiusKm != nil {
		lat, lng := arg(*f.Latitude), arg(*f.Longitude)
		distanceExpr := fmt.Sprintf(`(6371 * acos(
			cos(radians(%s)) * cos(radians(e.latitude)) *
			cos(radians(e.longitude) - radians(%s)) +
			sin(radians(%s)) * sin(radians(e.latitude))
		))`, lat, lng, lat)
		conds = append(conds, "e.latitude IS NOT NULL AND e.longitude IS NOT NULL")
		conds = append(conds, distanceExpr+" <= "+arg(*f.RadiusKm))
		distanceSelect = distanceExpr + " AS distance_km"
		orderSQL = "ORDER BY distance_km ASC, e.created_at DESC"
		withDistance = true
	}

	whereSQL := ""
	if len(conds) > 0 {
		whereSQL = "WHERE " + conds[0]
		for _, c := range conds[1:] {
			whereSQL += " AND " + c
		}
	}

	page, pageSize := f.Page, f.PageSize
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 50 {
		pageSize = 20
	}
	limitSQL := fmt.Sprintf("LIMIT %s OFFSET %s", arg(pageSize), arg((page-1)*pageSize))

	query := fmt.Sprintf(`SELECT %s, %s
		FROM equipment e %s
		%s
		%s
		%s`, summaryColumns, distanceSelect, firstImageJoin, whereSQL, orderSQL, limitSQL)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSummaries(rows, withDistance)
}

func scanSummaries(rows *sql.Rows, withDistance bool) ([]domain.EquipmentSummary, error) {
	summaries := []domain.EquipmentSummary{}
	for rows.Next() {
		var s domain.EquipmentSummary
		var distance sql.NullFloat64
		dests := []any{&s.ID, &s.Title, &s.Description, &s.Size, &s.SportID,
			&s.Latitude, &s.Longitude, &s.CreatedAt, &s.ImageURL}
		dests = append(dests, &distance)
		if err := rows.Scan(dests...); err != nil {
			return nil, err
		}
		if withDistance && distance.Valid {
			s.DistanceKm = &distance.Float64
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

func (r *equipmentRepository) SportExists(ctx context.Context, sportID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM sports WHERE id = $1)`, sportID).Scan(&exists)
	return exists, err
}

var _ repository.EquipmentRepository = (*equipmentRepository)(nil)
