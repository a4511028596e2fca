package productcontroller

import (
	"github.com/gin-gonic/gin"
	"github.com/shopstack/ecommerce-api/middleware"
	"github.com/shopstack/ecommerce-api/models"
	"gorm.io/gorm"
)

// Policy decides whether an actor may perform a destructive catalog action.
// Routes inject the concrete check so alternate auth schemes can be swapped in.
type Policy func(user *models.User) bool

// RoleIsAdmin is the default policy wired up in routes.
func RoleIsAdmin(user *models.User) bool {
	return user.IsAdmin()
}

// currentUser loads the authenticated actor's user record.
func currentUser(c *gin.Context, db *gorm.DB) (*models.User, error) {
	userID, ok := middleware.UserID(c)
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	var user models.User
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
