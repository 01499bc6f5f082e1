package datasources

// Repository combines every storage operation the service uses.
type Repository interface {
	ReviewStore
	ReviewTransactor
	UnapprovedReviewDeleter
	ApprovedReviewLister
	CompanyReviewLister
	AuthorReviewLister
	PendingReviewLister
	ContributionChecker
	ContributionLister
	CompanyFetcher
	CompanyCreator
	CompanyLister
	TagLister
	TagResolver
	VoteToggler
	ModerationCountsGetter
}
