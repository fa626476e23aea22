package mysql

import (
	"context"
	"fmt"
)

// HasCompanyAccess reports whether the user belongs to the company or is a
// platform owner.
func (s *Storage) HasCompanyAccess(ctx context.Context, userID, companyID string) (bool, error) {
	const op = "storage.mysql.HasCompanyAccess"

	query := `
		SELECT EXISTS(
			SELECT 1 FROM company_users
			WHERE user_id = ? AND (company_id = ? OR role = 'owner')
		)
	`

	var ok bool
	if err := s.db.QueryRowContext(ctx, query, userID, companyID).Scan(&ok); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return ok, nil
}
