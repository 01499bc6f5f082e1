package domain

// TagCategory groups catalog tags for display.
type TagCategory string

const (
	TagCategoryProcess  TagCategory = "PROCESS"
	TagCategoryQuality  TagCategory = "QUALITY"
	TagCategoryBehavior TagCategory = "BEHAVIOR"
)

// Tag is an immutable catalog entry. ID follows catalog order and is used to break ties
// when ranking tags.
type Tag struct {
	ID       int64       `json:"-"`
	Key      string      `json:"key"`
	Label    string      `json:"label"`
	Category TagCategory `json:"category"`
}

// MaxTagsPerReview bounds the tag set attached to one review.
const MaxTagsPerReview = 5

// TagCatalog is the seeded catalog, in catalog order. Storage migrations insert exactly these rows.
var TagCatalog = []Tag{
	{ID: 1, Key: "GHOST_JOB", Label: "Ghost job", Category: TagCategoryProcess},
	{ID: 2, Key: "PROMPT_FEEDBACK", Label: "Prompt feedback", Category: TagCategoryProcess},
	{ID: 3, Key: "NO_FEEDBACK", Label: "No feedback", Category: TagCategoryProcess},
	{ID: 4, Key: "UNREASONABLE_DIFFICULTY", Label: "Unreasonable difficulty", Category: TagCategoryQuality},
	{ID: 5, Key: "DISRESPECTFUL", Label: "Disrespectful", Category: TagCategoryBehavior},
	{ID: 6, Key: "WELL_ORGANIZED", Label: "Well organized", Category: TagCategoryQuality},
	{ID: 7, Key: "MISALIGNED_ROLE", Label: "Misaligned role", Category: TagCategoryQuality},
	{ID: 8, Key: "LONG_PROCESS", Label: "Long process", Category: TagCategoryProcess},
}

// CatalogTag returns the catalog entry for key.
func CatalogTag(key string) (Tag, bool) {
	for _, t := range TagCatalog {
		if t.Key == key {
			return t, true
		}
	}
	return Tag{}, false
}
