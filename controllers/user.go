package controllers

import (
	"net/http"
	"regexp"
	"strings"

	"Wurder/middleware"
	models "Wurder/models/postgres"
	"Wurder/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var wurderIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_]{3,20}$`)
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type signUpRequest struct {
	WurderID  string `json:"wurderId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// @Summary Creates a new Wurder account
// @Description Registers the user, reserves the Wurder ID case-insensitively and returns a token
// @Tags user
// @Accept json
// @Produce json
// @Param request body object{wurderId=string,firstName=string,lastName=string,email=string,password=string} true "Account details"
// @Success 201 {object} object{message=string,token=string,user=object{wurderId=string,email=string}}
// @Failure 400 {object} object{error=string}
// @Failure 409 {object} object{error=string}
// @Failure 500 {object} object{error=string}
// @Router /signup [post]
func SignUp(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req signUpRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload."})
			return
		}

		wurderID := strings.TrimSpace(req.WurderID)
		if !wurderIDPattern.MatchString(wurderID) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Wurder ID must be 3–20 characters (letters, numbers, underscores)."})
			return
		}

		email := strings.TrimSpace(req.Email)
		if !emailPattern.MatchString(email) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter a valid email address."})
			return
		}

		if len(req.Password) < 6 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Password must be at least 6 characters long."})
			return
		}

		wurderIDLower := strings.ToLower(wurderID)

		var existing models.User
		if err := db.Where("wurder_id_lower = ?", wurderIDLower).First(&existing).Error; err == nil {
			c.JSON(http.StatusConflict, gin.H{"error": "This Wurder ID is already taken."})
			return
		}
		if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
			c.JSON(http.StatusConflict, gin.H{"error": "An account with this email already exists."})
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong. Please try again."})
			return
		}

		user := models.User{
			UID:           uuid.New().String(),
			WurderID:      wurderID,
			WurderIDLower: wurderIDLower,
			Email:         email,
			PasswordHash:  string(hash),
			FirstName:     utils.FormatName(req.FirstName),
			LastName:      utils.FormatName(req.LastName),
			Stats:         models.NewStats(),
		}

		if err := db.Create(&user).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong. Please try again."})
			return
		}

		token, err := middleware.CreateToken(user.UID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong. Please try again."})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message": "Account created successfully",
			"token":   token,
			"user": gin.H{
				"wurderId": user.WurderID,
				"email":    user.Email,
			},
		})
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// @Summary Logs a user in
// @Description Checks the credentials and returns a token plus a cookie session
// @Tags user
// @Accept json
// @Produce json
// @Param request body object{email=string,password=string} true "Credentials"
// @Success 200 {object} object{token=string,user=object{wurderId=string,email=string}}
// @Failure 400 {object} object{error=string}
// @Failure 401 {object} object{error=string}
// @Router /login [post]
func Login(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload."})
			return
		}

		// Minimum input sanitizing
		if strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.Password) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Parameters can't be empty"})
			return
		}

		var user models.User
		if err := db.Where("email = ?", strings.TrimSpace(req.Email)).First(&user).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password!"})
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password!"})
			return
		}

		token, err := middleware.CreateToken(user.UID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong. Please try again."})
			return
		}

		session := sessions.Default(c)
		session.Set("UID", user.UID)
		if err := session.Save(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save session"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"token": token,
			"user": gin.H{
				"wurderId": user.WurderID,
				"email":    user.Email,
			},
		})
	}
}

// @Summary Logs the user out
// @Description Deletes the session associated with the UID key
// @Tags user
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Success 200 {object} object{message=string}
// @Failure 400 {object} object{error=string}
// @Router /auth/logout [delete]
// @Security ApiKeyAuth
func Logout(c *gin.Context) {
	session := sessions.Default(c)
	user := session.Get("UID")
	// There is no session for the user, won't delete nothing
	if user == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid session token"})
		return
	}

	session.Delete("UID")
	if err := session.Save(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Successfully logged out"})
}

// @Summary Gives the caller's own profile
// @Description Returns the private account info of the authenticated user
// @Tags user
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Success 200 {object} object{wurderId=string,email=string}
// @Failure 401 {object} object{error=string}
// @Router /auth/me [get]
// @Security ApiKeyAuth
func GetUserPrivateInfo(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, err := middleware.JWT_decoder(c)
		if err != nil {
			return
		}

		var user models.User
		if err := db.Where("uid = ?", uid).First(&user).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"wurderId":   user.WurderID,
			"firstName":  user.FirstName,
			"lastName":   user.LastName,
			"email":      user.Email,
			"avatar":     user.Avatar,
			"stats":      user.Stats,
			"activeGame": user.ActiveGame,
			"createdAt":  user.CreatedAt,
		})
	}
}

type updateUserRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Avatar    *string `json:"avatar"`
}

// @Summary Updates the caller's profile
// @Description Patches first name, last name and/or avatar of the authenticated user
// @Tags user
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param request body object{firstName=string,lastName=string,avatar=string} true "Fields to update"
// @Success 200 {object} object{message=string}
// @Failure 400 {object} object{error=string}
// @Failure 401 {object} object{error=string}
// @Router /auth/update [patch]
// @Security ApiKeyAuth
func UpdateUserInfo(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, err := middleware.JWT_decoder(c)
		if err != nil {
			return
		}

		var req updateUserRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload."})
			return
		}

		updates := map[string]interface{}{}
		if req.FirstName != nil {
			updates["first_name"] = utils.FormatName(*req.FirstName)
		}
		if req.LastName != nil {
			updates["last_name"] = utils.FormatName(*req.LastName)
		}
		if req.Avatar != nil {
			updates["avatar"] = *req.Avatar
		}
		if len(updates) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Nothing to update"})
			return
		}

		if err := db.Model(&models.User{}).Where("uid = ?", uid).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating user"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully"})
	}
}

// @Summary Gives public info of a user
// @Description Looks a user up by Wurder ID, case-insensitively
// @Tags user
// @Produce json
// @Param wurderid path string true "Wurder ID"
// @Success 200 {object} object{wurderId=string}
// @Failure 404 {object} object{error=string}
// @Router /users/{wurderid} [get]
func GetUserPublicInfo(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		wurderIDLower := strings.ToLower(strings.TrimSpace(c.Param("wurderid")))

		var user models.User
		if err := db.Where("wurder_id_lower = ?", wurderIDLower).First(&user).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"wurderId":    user.WurderID,
			"avatar":      user.Avatar,
			"stats":       user.Stats,
			"memberSince": user.CreatedAt,
		})
	}
}
