package api

import (
	"net/http"

	"loca-api/internal/infra"
	"loca-api/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// respondError maps usecase and repository errors onto the HTTP contract:
// 400 for rejected state transitions and bad input, 403 for callers who are
// not the relevant party, 404 for missing rows, 409 for date conflicts.
// Matching goes through errs.Is so marked validation errors classify too.
func respondError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errs.ErrDatesUnavailable) || infra.IsKind(err, infra.KindConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "Requested dates are no longer available"})
	case errs.Is(err, errs.ErrDomainValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errs.Is(err, errs.ErrForbidden),
		errs.Is(err, errs.ErrReservationNotOwned),
		errs.Is(err, errs.ErrListingNotOwned),
		errs.Is(err, errs.ErrNotParticipant):
		c.JSON(http.StatusForbidden, gin.H{"error": "Not allowed"})
	case errs.Is(err, errs.ErrReservationNotFound),
		errs.Is(err, errs.ErrListingNotFound),
		errs.Is(err, errs.ErrTransactionNotFound),
		errs.Is(err, errs.ErrConversationNotFound),
		infra.IsKind(err, infra.KindNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
