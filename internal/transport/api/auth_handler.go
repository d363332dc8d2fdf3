package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/fsdevblog/dues-desk/internal/domain"
	"github.com/fsdevblog/dues-desk/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type AuthHandler struct {
	userService UserServicer
}

func NewAuthHandler(userService UserServicer) *AuthHandler {
	return &AuthHandler{
		userService: userService,
	}
}

// bcrypt ignores everything past 72 bytes, hence max_bytes on the password.
type UserSignupParams struct {
	FirstName   string `binding:"required,max_bytes=100"       json:"first_name"`
	LastName    string `binding:"required,max_bytes=100"       json:"last_name"`
	Email       string `binding:"required,email,max_bytes=255" json:"email"`
	Password    string `binding:"required,max_bytes=72"        json:"password"`
	UserTypeID  int64  `binding:"required"                     json:"user_type_id"`
	MobilePhone string `binding:"required,mobile10"            json:"mobile_phone"`
}

type UserResponse struct {
	ID          int64     `json:"id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Email       string    `json:"email"`
	UserTypeID  int64     `json:"user_type_id"`
	MobilePhone string    `json:"mobile_phone"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func newUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:          user.ID,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		Email:       user.Email,
		UserTypeID:  user.UserTypeID,
		MobilePhone: user.MobilePhone,
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
	}
}

// Signup POST SignupRoute.
func (h *AuthHandler) Signup(c *gin.Context) {
	var params UserSignupParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortBadRequest(c, signupBindMessage(bindErr))
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	user, createErr := h.userService.Register(ctx, service.RegisterUserArgs{
		FirstName:   params.FirstName,
		LastName:    params.LastName,
		Email:       params.Email,
		Password:    params.Password,
		UserTypeID:  params.UserTypeID,
		MobilePhone: params.MobilePhone,
	})
	if createErr != nil {
		if errors.Is(createErr, domain.ErrDuplicateKey) {
			abortBadRequest(c, "Email already exists")
			return
		}
		abortWithServiceError(c, createErr, "user not found")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User created", "user": newUserResponse(user)})
}

// signupBindMessage any missing field is reported as a whole, the remaining checks one by one.
func signupBindMessage(err error) string {
	var valErrs validator.ValidationErrors
	if errors.As(err, &valErrs) {
		for _, fe := range valErrs {
			if fe.Tag() == "required" {
				return "All fields are required"
			}
		}
	}
	return bindErrorMessage(err)
}

type UserLoginParams struct {
	Email    string `binding:"required,max_bytes=255" json:"email"`
	Password string `binding:"required,max_bytes=72"  json:"password"`
}

// Login POST LoginRoute.
func (h *AuthHandler) Login(c *gin.Context) {
	var params UserLoginParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortBadRequest(c, bindErrorMessage(bindErr))
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	user, token, err := h.userService.Login(ctx, service.LoginUserArgs{
		Email:    params.Email,
		Password: params.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			abortWithError(c, http.StatusNotFound, errors.New("User not found"), gin.ErrorTypePublic)
		case errors.Is(err, domain.ErrPasswordMissMatch):
			abortBadRequest(c, "Invalid credentials")
		default:
			abortWithError(c, http.StatusInternalServerError, err, gin.ErrorTypePrivate)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"user":    newUserResponse(user),
	})
}

// Me GET MeRoute. Requires middlewares.AuthRequired.
func (h *AuthHandler) Me(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	user, err := h.userService.GetByID(ctx, currentUserID)
	if err != nil {
		abortWithServiceError(c, err, "User not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"first_name": user.FirstName,
		"last_name":  user.LastName,
	})
}
