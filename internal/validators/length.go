package validators

import "unicode/utf8"

// Column sizes shared by the models and the input checks.
const (
	MaxNameLength     = 150
	MaxEmailLength    = 150
	MaxStylistLength  = 100
	MaxCategoryLength = 100
	MaxHairstyleName  = 200
	MaxURLLength      = 500
)

// FitsColumn reports whether s fits a varchar(n) column, counting runes.
func FitsColumn(s string, n int) bool {
	return utf8.RuneCountInString(s) <= n
}
