package controllers

import (
	"context"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"qr-dine/models"
	"qr-dine/utils"
)

type AuthController struct {
	db *pgxpool.Pool
}

func NewAuthController(db *pgxpool.Pool) *AuthController {
	return &AuthController{db: db}
}

// @Summary Register
// @Description Register a restaurant staff account
// @Tags Auth
// @Accept json
// @Produce json
// @Param user body models.RegisterRequest true "User data"
// @Success 201 {object} models.Response
// @Router /auth/register [post]
func (ctrl *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid registration data: " + err.Error()})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var exists int
	ctrl.db.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM users WHERE email=$1", email).Scan(&exists)
	if exists > 0 {
		c.JSON(400, gin.H{"success": false, "message": "Email already registered"})
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to process password"})
		return
	}

	var user models.User
	err = ctrl.db.QueryRow(context.Background(),
		`INSERT INTO users (email, password, name, restaurant_name, role, created_at)
		 VALUES ($1, $2, $3, $4, 'admin', $5)
		 RETURNING id, email, name, restaurant_name, role, created_at`,
		email, hashed, req.Name, req.RestaurantName, time.Now(),
	).Scan(&user.ID, &user.Email, &user.Name, &user.RestaurantName, &user.Role, &user.CreatedAt)

	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to register: " + err.Error()})
		return
	}

	c.JSON(201, gin.H{"success": true, "message": "Registered successfully", "data": user})
}

// @Summary Login
// @Description Sign in with email and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body models.LoginRequest true "Credentials"
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Email and password are required"})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	err := ctrl.db.QueryRow(context.Background(),
		`SELECT id, email, password, name, restaurant_name, role, created_at
		 FROM users WHERE email=$1`,
		email).Scan(&user.ID, &user.Email, &user.Password, &user.Name, &user.RestaurantName, &user.Role, &user.CreatedAt)

	if err != nil {
		c.JSON(401, gin.H{"success": false, "message": "Invalid email or password"})
		return
	}

	ok, err := utils.VerifyPassword(user.Password, req.Password)
	if err != nil || !ok {
		c.JSON(401, gin.H{"success": false, "message": "Invalid email or password"})
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to generate token"})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Login successful",
		"data":    models.LoginResponse{Token: token, User: user},
	})
}

// @Summary Get profile
// @Description Get the signed-in user's identity
// @Tags Auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /auth/profile [get]
func (ctrl *AuthController) GetProfile(c *gin.Context) {
	userID := c.GetInt("user_id")

	var user models.User
	err := ctrl.db.QueryRow(context.Background(),
		`SELECT id, email, name, restaurant_name, role, created_at FROM users WHERE id=$1`,
		userID).Scan(&user.ID, &user.Email, &user.Name, &user.RestaurantName, &user.Role, &user.CreatedAt)

	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "User not found"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Profile retrieved", "data": user})
}
