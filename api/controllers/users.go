package controllers

import (
	"context"
	"errors"
	"net/http"

	"gorm.io/gorm"

	"github.com/campuslabs/campus-events-backend/api/middleware"
	"github.com/campuslabs/campus-events-backend/api/responses"
	"github.com/campuslabs/campus-events-backend/internal/users"
	"github.com/campuslabs/campus-events-backend/pkg/db/models"
	pkgerrors "github.com/campuslabs/campus-events-backend/pkg/errors"
	"github.com/campuslabs/campus-events-backend/pkg/logger"
)

type userGetter interface {
	FindByID(ctx context.Context, id uint) (*models.User, error)
}

// UsersMe returns the authenticated user's profile.
func UsersMe(repo userGetter, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middleware.UserIDFromContext(r.Context())
		if userID == 0 {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeUnauthorized, "authentication required"))
			return
		}

		user, err := repo.FindByID(r.Context(), userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.New(pkgerrors.CodeNotFound, "user not found"))
				return
			}
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup user"))
			return
		}

		responses.WriteSuccess(w, users.FromModel(user))
	}
}
