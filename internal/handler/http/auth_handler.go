package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/natembeza/curalink/internal/domain/entity"
	"github.com/natembeza/curalink/internal/handler/http/dto"
	usecasecontract "github.com/natembeza/curalink/internal/usecase/contract"
)

// AuthHandlerInterface allows interface-based dependency injection for tests.
type AuthHandlerInterface interface {
	RegisterPatient(*gin.Context)
	RegisterResearcher(*gin.Context)
	Login(*gin.Context)
}

var _ AuthHandlerInterface = (*AuthHandler)(nil)

type AuthHandler struct {
	authUsecase usecasecontract.IAuthUseCase
}

func NewAuthHandler(authUsecase usecasecontract.IAuthUseCase) *AuthHandler {
	return &AuthHandler{authUsecase: authUsecase}
}

type registerFunc func(ctx context.Context, name, email, password string) (*entity.User, string, error)

// RegisterPatient handles POST /auth/register/patient.
func (h *AuthHandler) RegisterPatient(c *gin.Context) {
	h.register(c, h.authUsecase.RegisterPatient)
}

// RegisterResearcher handles POST /auth/register/researcher.
func (h *AuthHandler) RegisterResearcher(c *gin.Context) {
	h.register(c, h.authUsecase.RegisterResearcher)
}

// register is shared by both registration routes; the role is decided by
// which usecase entry point was bound.
func (h *AuthHandler) register(c *gin.Context, fn registerFunc) {
	var req dto.RegisterRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	user, token, err := fn(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}

	SuccessHandler(c, http.StatusCreated, dto.AuthResponse{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
		Role:  string(user.Role),
		Token: token,
	})
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	user, token, err := h.authUsecase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}

	SuccessHandler(c, http.StatusOK, dto.AuthResponse{
		ID:    user.ID,
		Email: user.Email,
		Role:  string(user.Role),
		Token: token,
	})
}
