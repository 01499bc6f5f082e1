package datasources

import (
	"context"

	"github.com/jbeshir/interview-insights/internal/domain"
)

type CompanyFetcher interface {
	FetchCompany(ctx context.Context, companyID int64) (domain.Company, error)
}

type CompanyCreator interface {
	CreateCompany(ctx context.Context, company domain.Company) (domain.Company, error)
}

type CompanyLister interface {
	ListCompanies(ctx context.Context, filters domain.CompanyFilters, page, pageSize int) ([]domain.Company, error)
}
