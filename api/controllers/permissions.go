package controllers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/campuslabs/campus-events-backend/api/middleware"
	"github.com/campuslabs/campus-events-backend/api/responses"
	"github.com/campuslabs/campus-events-backend/api/validators"
	"github.com/campuslabs/campus-events-backend/internal/permissions"
	"github.com/campuslabs/campus-events-backend/pkg/logger"
)

// PermissionsCreate opens a pending permission for the authenticated user.
func PermissionsCreate(svc permissions.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body permissions.CreatePermissionRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		requestorID := middleware.UserIDFromContext(r.Context())
		result, err := svc.Create(r.Context(), requestorID, body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, result)
	}
}

// PermissionsList returns permissions with offset pagination.
func PermissionsList(svc permissions.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params, err := parsePagination(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.List(r.Context(), params)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

// PermissionsGet fetches a single permission by id.
func PermissionsGet(svc permissions.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseIDParam(chi.URLParam(r, "id"), "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

// PermissionsApprove lets the designated approver grant a permission.
func PermissionsApprove(svc permissions.Service, logg *logger.Logger) http.HandlerFunc {
	return permissionDecision(svc.Approve, logg)
}

// PermissionsReject lets the designated approver decline a permission.
func PermissionsReject(svc permissions.Service, logg *logger.Logger) http.HandlerFunc {
	return permissionDecision(svc.Reject, logg)
}

func permissionDecision(decide func(ctx context.Context, actorID, id uint) (*permissions.PermissionDTO, error), logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseIDParam(chi.URLParam(r, "id"), "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		actorID := middleware.UserIDFromContext(r.Context())
		result, err := decide(r.Context(), actorID, id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}
