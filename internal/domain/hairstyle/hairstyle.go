package hairstyle

import (
	"strings"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/headz-api/internal/httperr"
)

type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
	GenderUnisex Gender = "U"
)

func ParseGender(s string) (Gender, error) {
	switch g := Gender(strings.ToUpper(strings.TrimSpace(s))); g {
	case GenderMale, GenderFemale, GenderUnisex:
		return g, nil
	}
	return "", httperr.ErrBusiness("invalid_gender")
}

type Length string

const (
	LengthShort  Length = "short"
	LengthMedium Length = "medium"
	LengthLong   Length = "long"
)

func ParseLength(s string) (Length, error) {
	switch l := Length(strings.ToLower(strings.TrimSpace(s))); l {
	case LengthShort, LengthMedium, LengthLong:
		return l, nil
	}
	return "", httperr.ErrBusiness("invalid_length")
}

// Filter narrows the gallery listing. Zero values mean "any".
type Filter struct {
	CategoryID   *uuid.UUID
	CategoryName string
	Gender       Gender
	Length       Length
	Search       string
	Ordering     Ordering
}

// CacheKey is stable for equal filters.
func (f Filter) CacheKey() string {
	cat := ""
	if f.CategoryID != nil {
		cat = f.CategoryID.String()
	}
	return strings.Join([]string{
		cat,
		strings.ToLower(f.CategoryName),
		string(f.Gender),
		string(f.Length),
		strings.ToLower(f.Search),
		f.Ordering.String(),
	}, "|")
}

type Ordering struct {
	Field string
	Desc  bool
}

var DefaultOrdering = Ordering{Field: "created_at", Desc: true}

var orderable = map[string]bool{
	"name":       true,
	"likes":      true,
	"created_at": true,
}

// ParseOrdering accepts "field" or "-field"; empty yields the default.
func ParseOrdering(s string) (Ordering, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultOrdering, nil
	}

	o := Ordering{Field: strings.TrimPrefix(s, "-"), Desc: strings.HasPrefix(s, "-")}
	if !orderable[o.Field] {
		return Ordering{}, httperr.ErrBusiness("invalid_ordering")
	}
	return o, nil
}

// String renders the ordering as an SQL ORDER BY fragment on the hairstyles table.
func (o Ordering) String() string {
	if o.Field == "" {
		o = DefaultOrdering
	}
	if o.Desc {
		return "hairstyles." + o.Field + " DESC"
	}
	return "hairstyles." + o.Field + " ASC"
}
