package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/tablehost/gin-booking-api/internal/models"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

// respondError maps service errors onto HTTP statuses. Every error body is
// a single human-readable message; persistence failures become an opaque 500.
func respondError(ctx *gin.Context, err error) {
	var validationErr *models.ValidationError
	var conflictErr *models.ConflictError
	var notFoundErr *models.NotFoundError
	var authErr *models.AuthError

	switch {
	case errors.As(err, &validationErr):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message})
	case errors.As(err, &conflictErr):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": conflictErr.Message})
	case errors.As(err, &notFoundErr):
		ctx.JSON(http.StatusNotFound, gin.H{"error": notFoundErr.Message})
	case errors.As(err, &authErr):
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": authErr.Message})
	default:
		log.WithError(err).Error("Unhandled service error")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
