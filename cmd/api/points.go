package main

import (
	"errors"
	"net/http"
	"strconv"

	"placepoints/internal/points"

	"github.com/go-chi/chi/v5"
)

// GetUserPoints godoc
//
//	@Summary		Read a user's point ledger
//	@Description	Returns ledger entries newest first with cursor pagination, plus an optional running total
//	@Tags			Points
//	@Produce		json
//	@Param			userID	path		string	true	"User ID"
//	@Param			limit	query		int		false	"Page size (default 30)"
//	@Param			cursor	query		int		false	"Entry id to continue after"
//	@Param			sum		query		string	false	"Include the total over all entries"
//	@Success		200		{object}	points.LedgerPage
//	@Failure		400		{object}	error	"Missing user ID"
//	@Failure		500		{object}	error	"Internal server error"
//	@Router			/users/{userID}/points [get]
func (app *application) getUserPointsHandler(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	if userID == "" {
		app.badRequestResponse(w, r, errors.New("missing user ID"))
		return
	}

	params := r.URL.Query()

	limit := points.DefaultPageSize
	if v := params.Get("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	// A cursor that does not parse as an id means "start from the newest".
	var cursor int64
	if v := params.Get("cursor"); v != "" {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			cursor = parsed
		}
	}

	page, err := app.points.LedgerPage(r.Context(), points.LedgerQuery{
		UserID:     userID,
		Limit:      limit,
		Cursor:     cursor,
		IncludeSum: params.Get("sum") != "",
	})
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, page); err != nil {
		app.internalServerError(w, r, err)
	}
}
