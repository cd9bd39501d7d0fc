// Package gateway is the REST-facing adapter: it shapes HTTP requests
// into directory RPC calls and passes response payloads, including
// their error strings, through unmodified.
package gateway

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/avoronin/userdir/internal/logging"
	pb "github.com/avoronin/userdir/internal/proto"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	client  pb.UserServiceClient
	timeout time.Duration
	logger  logging.Logger
}

func NewHandler(client pb.UserServiceClient, timeout time.Duration, logger logging.Logger) *Handler {
	return &Handler{
		client:  client,
		timeout: timeout,
		logger:  logger.With("module", "gateway"),
	}
}

// Router builds the gin engine with all gateway routes.
func (h *Handler) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "gateway"})
	})

	api := router.Group("/api/users")
	api.POST("", h.createUser)
	api.POST("/login", h.loginUser)
	api.GET("", h.listUsers)
	api.GET("/:userId", h.getUser)

	return router
}

func (h *Handler) callCtx(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), h.timeout)
}

// request/response DTOs; error fields are omitted when empty so success
// payloads mirror the backend exactly.

type createUserBody struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Company   string `json:"company"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type createUserResponse struct {
	UserID string `json:"userId,omitempty"`
	Error  string `json:"error,omitempty"`
}

type getUserResponse struct {
	UserID    string `json:"userId,omitempty"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Company   string `json:"company,omitempty"`
	Email     string `json:"email,omitempty"`
	Error     string `json:"error,omitempty"`
}

type userSummary struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
}

type listUsersResponse struct {
	Users  []userSummary `json:"users"`
	Total  int32         `json:"total"`
	Offset int32         `json:"offset"`
	Limit  int32         `json:"limit"`
	Error  string        `json:"error,omitempty"`
}

type loginBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token,omitempty"`
	Error string `json:"error,omitempty"`
}

func (h *Handler) createUser(c *gin.Context) {
	var body createUserBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	ctx, cancel := h.callCtx(c)
	defer cancel()

	resp, err := h.client.CreateUser(ctx, &pb.CreateUserRequest{
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Company:   body.Company,
		Email:     body.Email,
		Password:  body.Password,
	})
	if err != nil {
		h.logger.Error(ctx, "CreateUser call failed", "error", err.Error())
		c.JSON(http.StatusBadGateway, gin.H{"error": "Directory service unavailable"})
		return
	}

	c.JSON(http.StatusOK, createUserResponse{UserID: resp.UserId, Error: resp.Error})
}

func (h *Handler) getUser(c *gin.Context) {
	ctx, cancel := h.callCtx(c)
	defer cancel()

	resp, err := h.client.GetUser(ctx, &pb.GetUserRequest{UserId: c.Param("userId")})
	if err != nil {
		h.logger.Error(ctx, "GetUser call failed", "error", err.Error())
		c.JSON(http.StatusBadGateway, gin.H{"error": "Directory service unavailable"})
		return
	}

	c.JSON(http.StatusOK, getUserResponse{
		UserID:    resp.UserId,
		FirstName: resp.FirstName,
		LastName:  resp.LastName,
		Company:   resp.Company,
		Email:     resp.Email,
		Error:     resp.Error,
	})
}

func (h *Handler) listUsers(c *gin.Context) {
	// Non-numeric values fall back to zero, which the backend rejects
	// through its limit allow-list.
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	ctx, cancel := h.callCtx(c)
	defer cancel()

	resp, err := h.client.GetUsersList(ctx, &pb.GetUsersListRequest{
		Offset: int32(offset),
		Limit:  int32(limit),
	})
	if err != nil {
		h.logger.Error(ctx, "GetUsersList call failed", "error", err.Error())
		c.JSON(http.StatusBadGateway, gin.H{"error": "Directory service unavailable"})
		return
	}

	out := listUsersResponse{
		Users:  []userSummary{},
		Total:  resp.Total,
		Offset: resp.Offset,
		Limit:  resp.Limit,
		Error:  resp.Error,
	}
	for _, u := range resp.Users {
		out.Users = append(out.Users, userSummary{UserID: u.UserId, Email: u.Email})
	}

	c.JSON(http.StatusOK, out)
}

func (h *Handler) loginUser(c *gin.Context) {
	var body loginBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	ctx, cancel := h.callCtx(c)
	defer cancel()

	resp, err := h.client.LoginUser(ctx, &pb.LoginUserRequest{Email: body.Email, Password: body.Password})
	if err != nil {
		h.logger.Error(ctx, "LoginUser call failed", "error", err.Error())
		c.JSON(http.StatusBadGateway, gin.H{"error": "Directory service unavailable"})
		return
	}

	c.JSON(http.StatusOK, loginResponse{Token: resp.Token, Error: resp.Error})
}
