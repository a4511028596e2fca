package routes

import (
	"github.com/gin-gonic/gin"
	authControllers "github.com/shopstack/ecommerce-api/controllers/auth"
	"github.com/shopstack/ecommerce-api/middleware"
	"gorm.io/gorm"
)

func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	r.POST("/register", authControllers.Register(db))
	r.POST("/login", authControllers.Login(db))
	r.POST("/logout", middleware.ValidateToken, authControllers.Logout())
}
