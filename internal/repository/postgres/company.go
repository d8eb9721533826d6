package postgres

import (
	"context"
	"database/sql"
	"time"

	"ptoshare-backend/internal/domain"
	"ptoshare-backend/internal/repository"
)

const companySelect = `SELECT c.id, c.name, c.allow_cross_company, c.created_on,
	       (SELECT count(*) FROM users u WHERE u.company_id = c.id) AS member_count
	FROM companies c`

type companyRepository struct {
	db *sql.DB
}

func NewCompanyRepository(db *sql.DB) repository.CompanyRepository {
	return &companyRepository{db: db}
}

func scanCompany(row rowScanner) (*domain.Company, error) {
	c := &domain.Company{}
	if err := row.Scan(&c.ID, &c.Name, &c.AllowCrossCompany, &c.CreatedOn, &c.MemberCount); err != nil {
		return nil, err
	}
	return c, nil
}

func (r *companyRepository) Create(ctx context.Context, c *domain.Company) error {
	query := `INSERT INTO companies (name, allow_cross_company, created_on) VALUES ($1, $2, $3) RETURNING id`
	c.CreatedOn = time.Now().UTC()
	return mapError(r.db.QueryRowContext(ctx, query, c.Name, c.AllowCrossCompany, c.CreatedOn).Scan(&c.ID))
}

func (r *companyRepository) GetByID(ctx context.Context, id int32) (*domain.Company, error) {
	c, err := scanCompany(r.db.QueryRowContext(ctx, companySelect+` WHERE c.id = $1`, id))
	if err != nil {
		return nil, mapError(err)
	}
	return c, nil
}

func (r *companyRepository) List(ctx context.Context) ([]domain.Company, error) {
	rows, err := r.db.QueryContext(ctx, companySelect+` ORDER BY c.name`)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var companies []domain.Company
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, err
		}
		companies = append(companies, *c)
	}
	return companies, rows.Err()
}

func (r *companyRepository) ApplyPatch(ctx context.Context, id int32, p domain.CompanyPatch) (*domain.Company, error) {
	query := `UPDATE companies SET
	              name = COALESCE($1, name),
	              allow_cross_company = COALESCE($2, allow_cross_company)
	          WHERE id = $3`
	res, err := r.db.ExecContext(ctx, query, p.Name, p.AllowCrossCompany, id)
	if err := requireOneRow(res, err); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}
