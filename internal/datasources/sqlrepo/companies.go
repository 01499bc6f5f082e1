package sqlrepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/huandu/go-sqlbuilder"
	"github.com/jbeshir/interview-insights/internal/domain"
)

var companyColumns = []string{"id", "company", "role", "level", "stage", "location", "created_at"}

func scanCompany(row rowScanner) (domain.Company, error) {
	var c domain.Company
	if err := row.Scan(&c.ID, &c.Company, &c.Role, &c.Level, &c.Stage, &c.Location, &c.CreatedAt); err != nil {
		return domain.Company{}, err
	}
	c.CreatedAt = c.CreatedAt.UTC()
	return c, nil
}

func (s *store) FetchCompany(ctx context.Context, companyID int64) (domain.Company, error) {
	sb := s.dialect.Flavor.NewSelectBuilder()
	sb.Select(companyColumns...)
	sb.From("companies")
	sb.Where(sb.Equal("id", companyID))

	query, args := sb.Build()
	c, err := scanCompany(s.q.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Company{}, domain.NotFoundError("company", companyID)
	}
	if err != nil {
		return domain.Company{}, fmt.Errorf("fetching company: %w", err)
	}
	return c, nil
}

func (s *store) CreateCompany(ctx context.Context, c domain.Company) (domain.Company, error) {
	ib := s.dialect.Flavor.NewInsertBuilder()
	ib.InsertInto("companies")
	ib.Cols("company", "role", "level", "stage", "location", "created_at")
	ib.Values(c.Company, c.Role, c.Level, c.Stage, c.Location, c.CreatedAt.UTC())

	query, args := ib.Build()
	res, err := s.q.ExecContext(ctx, query, args...)
	if err != nil {
		return domain.Company{}, fmt.Errorf("inserting company: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Company{}, fmt.Errorf("reading inserted company id: %w", err)
	}
	c.ID = id
	return c, nil
}

func (s *store) ListCompanies(
	ctx context.Context,
	filters domain.CompanyFilters,
	page, pageSize int,
) ([]domain.Company, error) {
	sb := s.dialect.Flavor.NewSelectBuilder()
	sb.Select(companyColumns...)
	sb.From("companies")

	conds := buildCompanyConditions(sb, filters)
	if len(conds) > 0 {
		sb.Where(conds...)
	}
	sb.OrderBy("company", "role", "id")
	if pageSize > 0 {
		sb.Limit(pageSize)
		sb.Offset((max(page, 1) - 1) * pageSize)
	}

	query, args := sb.Build()
	rows, err := s.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running companies query: %w", err)
	}
	defer closeRows(rows)

	companies := []domain.Company{}
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning company: %w", err)
		}
		companies = append(companies, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}
	return companies, nil
}

func buildCompanyConditions(sb *sqlbuilder.SelectBuilder, filters domain.CompanyFilters) []string {
	var conds []string

	if q := strings.ToLower(strings.TrimSpace(filters.Query)); q != "" {
		pattern := "%" + escapeLike(q) + "%"
		conds = append(conds, sb.Or(
			"LOWER(company) LIKE "+sb.Args.Add(pattern),
			"LOWER(role) LIKE "+sb.Args.Add(pattern),
		))
	}

	exact := []struct {
		col   string
		value string
	}{
		{"company", filters.Company},
		{"role", filters.Role},
		{"level", filters.Level},
		{"stage", filters.Stage},
		{"location", filters.Location},
	}
	for _, f := range exact {
		if v := strings.TrimSpace(f.value); v != "" {
			conds = append(conds, "LOWER("+f.col+") = "+sb.Args.Add(strings.ToLower(v)))
		}
	}

	return conds
}

// escapeLike drops LIKE wildcards from user input so it only matches literally.
func escapeLike(s string) string {
	return strings.NewReplacer("%", "", "_", "").Replace(s)
}
