package controllers

import (
	"net/http"

	"github.com/campuslabs/campus-events-backend/api/validators"
	"github.com/campuslabs/campus-events-backend/pkg/pagination"
)

func parsePagination(r *http.Request) (pagination.Params, error) {
	skip, err := validators.ParseQueryInt(r, "skip", 0, 0, 1<<30)
	if err != nil {
		return pagination.Params{}, err
	}
	limit, err := validators.ParseQueryInt(r, "limit", pagination.DefaultLimit, 1, pagination.MaxLimit)
	if err != nil {
		return pagination.Params{}, err
	}
	return pagination.Params{Skip: skip, Limit: limit}, nil
}
