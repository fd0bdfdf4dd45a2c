package main

import (
	"errors"
	"net/http"

	"placepoints/internal/points"
	"placepoints/internal/store"
)

// EventPayload is the body of POST /events. Field names follow the event
// producer's contract, so they stay camelCased.
type EventPayload struct {
	Type             string   `json:"type" validate:"required"`
	Action           string   `json:"action" validate:"required"`
	ReviewID         string   `json:"reviewId" validate:"required,uuid"`
	Content          string   `json:"content" validate:"omitempty"`
	AttachedPhotoIDs []string `json:"attachedPhotoIds" validate:"omitempty,dive,uuid"`
	UserID           string   `json:"userId" validate:"required,uuid"`
	PlaceID          string   `json:"placeId" validate:"required,uuid"`
}

type submitEventResponse struct {
	Action points.Action `json:"action"`
}

// SubmitEvent godoc
//
//	@Summary		Ingest a review lifecycle event
//	@Description	Applies an ADD/MOD/DELETE review event and records the earned or lost points
//	@Tags			Events
//	@Accept			json
//	@Produce		json
//	@Param			event	body		EventPayload		true	"Review lifecycle event"
//	@Success		200		{object}	submitEventResponse	"Action performed"
//	@Failure		400		{object}	error				"Invalid payload or unknown action"
//	@Failure		404		{object}	error				"Review does not exist"
//	@Failure		409		{object}	error				"Review already exists"
//	@Failure		500		{object}	error				"Internal server error"
//	@Router			/events [post]
func (app *application) submitEventHandler(w http.ResponseWriter, r *http.Request) {
	var payload EventPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	event := &points.Event{
		Type:             payload.Type,
		Action:           points.Action(payload.Action),
		ReviewID:         payload.ReviewID,
		Content:          payload.Content,
		AttachedPhotoIDs: payload.AttachedPhotoIDs,
		UserID:           payload.UserID,
		PlaceID:          payload.PlaceID,
	}

	action, err := app.points.ProcessEvent(r.Context(), event)
	if err != nil {
		switch {
		case errors.Is(err, points.ErrUnknownAction):
			app.badRequestResponse(w, r, err)
		case errors.Is(err, store.ErrNotFound):
			app.notFoundResponse(w, r, err)
		case errors.Is(err, store.ErrConflict):
			app.conflictResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, submitEventResponse{Action: action}); err != nil {
		app.internalServerError(w, r, err)
	}
}
