package rest

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-greeting-cards/internal/api/shared/constants"
	"github.com/feral-file/ff-greeting-cards/internal/domain"
)

// ListCardsQueryParams holds query parameters for GET /cards
type ListCardsQueryParams struct {
	// Search and filters
	Search        string `form:"search"`
	Festival      string `form:"festival"`
	DateRange     string `form:"date_range,default=all"`
	Owner         string `form:"owner"`
	HasImage      bool   `form:"has_image"`
	MessageLength string `form:"message_length,default=any"`

	// Sorting
	SortBy    string `form:"sort_by,default=newest"`
	SortOrder string `form:"sort_order,default=desc"`

	// Pagination
	Limit  int    `form:"limit,default=20"`
	Offset uint64 `form:"offset,default=0"`
}

// ParseListCardsQuery parses query parameters for GET /cards
func ParseListCardsQuery(c *gin.Context) (*ListCardsQueryParams, error) {
	var params ListCardsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	// Cap limit
	if params.Limit > constants.MAX_PAGE_SIZE {
		params.Limit = constants.MAX_PAGE_SIZE
	}

	return &params, nil
}

// Validate validates the query parameters
func (p *ListCardsQueryParams) Validate() error {
	if p.Limit < 1 {
		return errors.New("limit must be at least 1")
	}
	return nil
}

// Criteria converts the query to filter criteria.
// Unknown enum values fall back to their defaults; an unknown sort key leaves the order untouched.
func (p *ListCardsQueryParams) Criteria() domain.FilterCriteria {
	return domain.FilterCriteria{
		SearchTerm:    p.Search,
		Festival:      p.Festival,
		DateRange:     domain.DateRange(p.DateRange),
		Owner:         p.Owner,
		HasImage:      p.HasImage,
		MessageLength: domain.MessageLength(p.MessageLength),
		SortBy:        domain.SortKey(p.SortBy),
		SortOrder:     domain.SortOrder(p.SortOrder),
	}.Normalize()
}

// parseTokenID parses the :token_id path parameter
func parseTokenID(c *gin.Context) (uint64, error) {
	raw := c.Param("token_id")
	if raw == "" {
		return 0, errors.New("token_id is required")
	}

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.New("token_id must be a positive integer")
	}

	return id, nil
}
