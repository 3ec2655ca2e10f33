package constant

const (
	DateLayout = "2006-01-02"

	// MaxQueryRangeDays caps the span of a record listing request.
	MaxQueryRangeDays = 366 * 5
)
