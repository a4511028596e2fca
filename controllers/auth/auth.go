package authControllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopstack/ecommerce-api/models"
	"github.com/shopstack/ecommerce-api/utils"
	"gorm.io/gorm"
)

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func validateRegister(db *gorm.DB, req *RegisterRequest) map[string][]string {
	fields := map[string][]string{}
	add := func(field, msg string) { fields[field] = append(fields[field], msg) }

	if strings.TrimSpace(req.Email) == "" {
		add("email", "The email field is required.")
	} else if !strings.Contains(req.Email, "@") {
		add("email", "The email must be a valid email address.")
	} else {
		var count int64
		if err := db.Model(&models.User{}).Where("email = ?", req.Email).Count(&count).Error; err == nil && count > 0 {
			add("email", "The email has already been taken.")
		}
	}
	if req.Password == "" {
		add("password", "The password field is required.")
	} else if len(req.Password) < 8 {
		add("password", "The password must be at least 8 characters.")
	}
	if strings.TrimSpace(req.Name) == "" {
		add("name", "The name field is required.")
	}

	if len(fields) > 0 {
		return fields
	}
	return nil
}

// Register creates an account and returns it with a fresh session token.
func Register(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"message": "Validation failed",
				"errors":  gin.H{"payload": []string{"The request body is malformed."}},
			})
			return
		}

		if fieldErrors := validateRegister(db, &req); fieldErrors != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"message": "Validation failed",
				"errors":  fieldErrors,
			})
			return
		}

		user := models.User{
			Email:    req.Email,
			Password: req.Password,
			Name:     req.Name,
			Role:     models.RoleUser,
		}
		if err := user.HashPassword(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}
		if err := db.Create(&user).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
			return
		}

		token, err := utils.GenerateToken(user.ID, user.Email)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"user": user, "token": token})
	}
}

// Login verifies credentials and returns the user with a session token.
func Login(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		var user models.User
		if err := db.Where("email = ?", req.Email).First(&user).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
			return
		}
		if !user.CheckPassword(req.Password) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
			return
		}

		token, err := utils.GenerateToken(user.ID, user.Email)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"user": user, "token": token})
	}
}

// Logout acknowledges the client discarding its token. Tokens are stateless,
// so there is no server-side session to tear down.
func Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
	}
}
