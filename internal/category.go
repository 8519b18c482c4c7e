package internal

// Category classifies a holiday entry.
type Category string

const (
	// CategoryOfficial marks statutory public holidays.
	CategoryOfficial Category = "official"
	// CategoryObservance marks days that are observed but not days off.
	CategoryObservance Category = "observance"
	// CategorySeason marks seasonal markers such as daylight-saving switches.
	CategorySeason Category = "season"
	// CategoryBank marks bank-only holidays.
	CategoryBank Category = "bank"
	// CategoryOther marks everything else.
	CategoryOther Category = "other"
)

// String returns the category name.
func (c Category) String() string { return string(c) }

func (c Category) valid() bool {
	switch c {
	case CategoryOfficial, CategoryObservance, CategorySeason, CategoryBank, CategoryOther:
		return true
	}
	return false
}
