package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"decor-golang/internal/decoration"
	"decor-golang/internal/storage"
)

func (s *Storage) CreateDecorationTechnique(ctx context.Context, companyID string, t decoration.TechniqueCatalog) (string, error) {
	const op = "storage.mysql.CreateDecorationTechnique"

	id := uuid.NewString()
	stmt := `INSERT INTO decoration_techniques (id, company_id, name, description, is_active, setup_fee, minimum_order)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, stmt, id, companyID, t.Name, t.Description, t.IsActive, t.SetupFee, t.MinimumOrder)
	if err != nil {
		return "", fmt.Errorf("%s: technique %q: %w", op, t.Name, mapError(err))
	}

	return id, nil
}

func (s *Storage) GetDecorationTechniques(ctx context.Context, companyID string) ([]storage.DecorationTechnique, error) {
	const op = "storage.mysql.GetDecorationTechniques"

	query := `SELECT id, company_id, name, description, is_active, setup_fee, minimum_order, created_at
		FROM decoration_techniques WHERE company_id = ? ORDER BY name`

	rows, err := s.db.QueryContext(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	techniques := []storage.DecorationTechnique{}
	for rows.Next() {
		var (
			t           storage.DecorationTechnique
			description sql.NullString
		)
		err := rows.Scan(&t.ID, &t.CompanyID, &t.Name, &description, &t.IsActive, &t.SetupFee, &t.MinimumOrder, &t.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("%s: scan technique: %w", op, err)
		}
		t.Description = nullString(description)
		techniques = append(techniques, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: iterate techniques: %w", op, err)
	}

	return techniques, nil
}

func (s *Storage) CreateDecorationPlacement(ctx context.Context, companyID string, p decoration.Placement) (string, error) {
	const op = "storage.mysql.CreateDecorationPlacement"

	maxWidth, err := jsonColumn(p.MaxWidth)
	if err != nil {
		return "", fmt.Errorf("%s: max width: %w", op, err)
	}
	maxHeight, err := jsonColumn(p.MaxHeight)
	if err != nil {
		return "", fmt.Errorf("%s: max height: %w", op, err)
	}

	id := uuid.NewString()
	stmt := `INSERT INTO decoration_placements (id, company_id, name, description, max_width, max_height,
            position_x, position_y, reference_point, garment_type) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err = s.db.ExecContext(ctx, stmt, id, companyID, p.Name, p.Description, maxWidth, maxHeight,
		p.PositionX, p.PositionY, p.ReferencePoint, p.GarmentType)
	if err != nil {
		return "", fmt.Errorf("%s: placement %q: %w", op, p.Name, mapError(err))
	}

	return id, nil
}

func (s *Storage) GetDecorationPlacements(ctx context.Context, companyID string) ([]storage.DecorationPlacement, error) {
	const op = "storage.mysql.GetDecorationPlacements"

	query := `SELECT id, company_id, name, description, max_width, max_height, position_x, position_y,
		reference_point, garment_type, created_at
		FROM decoration_placements WHERE company_id = ? ORDER BY name`

	rows, err := s.db.QueryContext(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	placements := []storage.DecorationPlacement{}
	for rows.Next() {
		var (
			p                               storage.DecorationPlacement
			description, reference, garment sql.NullString
			maxWidth, maxHeight             sql.NullString
			posX, posY                      sql.NullFloat64
		)
		err := rows.Scan(&p.ID, &p.CompanyID, &p.Name, &description, &maxWidth, &maxHeight, &posX, &posY,
			&reference, &garment, &p.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("%s: scan placement: %w", op, err)
		}

		p.Description = nullString(description)
		p.ReferencePoint = nullString(reference)
		p.GarmentType = nullString(garment)
		p.PositionX = nullFloat(posX)
		p.PositionY = nullFloat(posY)
		if p.MaxWidth, err = measurementColumn(maxWidth); err != nil {
			return nil, fmt.Errorf("%s: placement %s max width: %w", op, p.ID, err)
		}
		if p.MaxHeight, err = measurementColumn(maxHeight); err != nil {
			return nil, fmt.Errorf("%s: placement %s max height: %w", op, p.ID, err)
		}

		placements = append(placements, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: iterate placements: %w", op, err)
	}

	return placements, nil
}

// CreateDecorationUpcharge attaches an upcharge to a technique of the company.
// A technique that does not belong to the company yields storage.ErrNotFound.
func (s *Storage) CreateDecorationUpcharge(ctx context.Context, companyID, techniqueID string, u decoration.Upcharge) (string, error) {
	const op = "storage.mysql.CreateDecorationUpcharge"

	id := uuid.NewString()
	stmt := `INSERT INTO decoration_upcharges (id, technique_id, name, description, upcharge_type, upcharge_amount, is_active)
		SELECT ?, t.id, ?, ?, ?, ?, ? FROM decoration_techniques t WHERE t.id = ? AND t.company_id = ?`

	res, err := s.db.ExecContext(ctx, stmt, id, u.Name, u.Description, u.UpchargeType, u.UpchargeAmount, u.IsActive,
		techniqueID, companyID)
	if err != nil {
		return "", fmt.Errorf("%s: upcharge %q: %w", op, u.Name, mapError(err))
	}

	n, err := res.RowsAffected()
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		return "", fmt.Errorf("%s: technique %s: %w", op, techniqueID, storage.ErrNotFound)
	}

	return id, nil
}

func (s *Storage) GetDecorationUpcharges(ctx context.Context, companyID, techniqueID string) ([]storage.DecorationUpcharge, error) {
	const op = "storage.mysql.GetDecorationUpcharges"

	query := `SELECT u.id, u.technique_id, u.name, u.description, u.upcharge_type, u.upcharge_amount, u.is_active, u.created_at
		FROM decoration_upcharges u
		JOIN decoration_techniques t ON t.id = u.technique_id
		WHERE u.technique_id = ? AND t.company_id = ?
		ORDER BY u.name`

	rows, err := s.db.QueryContext(ctx, query, techniqueID, companyID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	upcharges := []storage.DecorationUpcharge{}
	for rows.Next() {
		var (
			u           storage.DecorationUpcharge
			description sql.NullString
		)
		err := rows.Scan(&u.ID, &u.TechniqueID, &u.Name, &description, &u.UpchargeType, &u.UpchargeAmount, &u.IsActive, &u.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("%s: scan upcharge: %w", op, err)
		}
		u.Description = nullString(description)
		upcharges = append(upcharges, u)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: iterate upcharges: %w", op, err)
	}

	return upcharges, nil
}

func nullString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	return &v.String
}

func nullFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	return &v.Float64
}

func jsonColumn(m *decoration.Measurement) (sql.NullString, error) {
	if m == nil {
		return sql.NullString{}, nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return sql.NullString{}, err
	}
	return sql.NullString{String: string(b), Valid: true}, nil
}

func measurementColumn(v sql.NullString) (*decoration.Measurement, error) {
	if !v.Valid {
		return nil, nil
	}
	var m decoration.Measurement
	if err := json.Unmarshal([]byte(v.String), &m); err != nil {
		return nil, err
	}
	return &m, nil
}
