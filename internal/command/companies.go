package command

import (
	"context"
	"fmt"
	"time"

	"github.com/jbeshir/interview-insights/internal/datasources"
	"github.com/jbeshir/interview-insights/internal/domain"
)

// ListCompaniesRequest is the request for the ListCompanies command.
type ListCompaniesRequest struct {
	Filters  domain.CompanyFilters
	Page     int
	PageSize int
}

// ListCompanies searches company records.
type ListCompanies struct {
	Lister datasources.CompanyLister
}

func (c *ListCompanies) Execute(ctx context.Context, req ListCompaniesRequest) ([]domain.Company, error) {
	companies, err := c.Lister.ListCompanies(ctx, req.Filters, req.Page, req.PageSize)
	if err != nil {
		return nil, fmt.Errorf("listing companies: %w", err)
	}
	return companies, nil
}

// CreateCompanyRequest is the request for the CreateCompany command.
type CreateCompanyRequest struct {
	Caller  domain.Caller
	Company domain.Company
}

// CreateCompany adds a company/interview record. Only signed-in callers may add records.
type CreateCompany struct {
	Creator datasources.CompanyCreator
	Now     func() time.Time
}

func (c *CreateCompany) Execute(ctx context.Context, req CreateCompanyRequest) (domain.Company, error) {
	if !req.Caller.IsAuthenticated() {
		return domain.Company{}, domain.ErrUnauthenticated
	}

	company, err := req.Company.Normalize()
	if err != nil {
		return domain.Company{}, err
	}
	company.ID = 0
	company.CreatedAt = clockNow(c.Now)

	created, err := c.Creator.CreateCompany(ctx, company)
	if err != nil {
		return domain.Company{}, fmt.Errorf("creating company: %w", err)
	}

	domain.LoggerFromContext(ctx).InfoContext(ctx, "company created",
		"companyID", created.ID, "userID", req.Caller.UserID)
	return created, nil
}

// ListTags returns the tag catalog.
type ListTags struct {
	Lister datasources.TagLister
}

func (c *ListTags) Execute(ctx context.Context, _ Empty) ([]domain.Tag, error) {
	tags, err := c.Lister.ListTags(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing tags: %w", err)
	}
	return tags, nil
}
