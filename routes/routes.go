package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry point that wires up the auth, product, and
// order route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	SetupAuthRoutes(r, db)
	SetupProductRoutes(r, db)
	SetupOrderRoutes(r, db)
}
