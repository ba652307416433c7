package pagination

import (
	"strings"

	"github.com/SeaCloudHub/enquiry/pkg/validation"
)

// Paging is keyset pagination over an ordered listing. A zero Limit means the
// whole listing.
type Paging struct {
	Limit      int64  `json:"limit" query:"limit" validate:"omitempty,min=1,max=100"`
	Cursor     string `json:"cursor" query:"cursor"`
	NextCursor string `json:"next_cursor" swaggerignore:"true"`
}

func (p *Paging) Validate() error {
	p.Cursor = strings.TrimSpace(p.Cursor)

	return validation.Validate().Struct(p)
}

func (p *Paging) IsPaged() bool {
	return p != nil && (p.Limit > 0 || p.Cursor != "")
}
