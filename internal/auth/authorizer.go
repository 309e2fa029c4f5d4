package auth

import (
	"github.com/sbilibin2017/gw-bloglist/internal/apperr"
	"github.com/sbilibin2017/gw-bloglist/internal/models"
)

// Authorize allows identity to mutate blog only when blog has an owner and
// that owner is identity. Unowned blogs can not be mutated by anyone.
func Authorize(identity *models.Identity, blog *models.BlogDB) error {
	if identity == nil || blog == nil {
		return apperr.Forbidden("Access denied")
	}
	if !blog.UserID.Valid {
		return apperr.Forbidden("Access denied. This blog has no owner")
	}
	if blog.UserID.UUID != identity.UserID {
		return apperr.Forbidden("Access denied. You can only modify your own blogs")
	}
	return nil
}
