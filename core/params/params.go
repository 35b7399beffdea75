package params

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
)

// QueryParams holds common list-query parameters parsed from the request.
type QueryParams struct {
	Page  int
	Limit int
}

func NewQueryParams(ctx echo.Context) *QueryParams {
	p := &QueryParams{Page: DefaultPage, Limit: DefaultLimit}

	if raw := ctx.QueryParam("page"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			p.Page = v
		}
	}
	if raw := ctx.QueryParam("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			p.Limit = v
		}
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}

func (p *QueryParams) Offset() int {
	return (p.Page - 1) * p.Limit
}
