package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// PutItemResponse is returned after an item has been stored
type PutItemResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
	Value   string `json:"value"`
}

// ItemResponse represents a stored item
type ItemResponse struct {
	ID    int64  `json:"id"`
	Value string `json:"value"`
}

// MessageResponse carries a plain status message
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DetailResponse reports a rejected request
type DetailResponse struct {
	Detail string `json:"detail"`
}

const (
	itemStoredMessage   = "Item stored"
	itemNotFoundMessage = "Item not found"
	dbErrorMessage      = "db error"
)

// handleHealth handles health check requests
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handleVersion reports the configured application version
func (s *Server) handleVersion(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"version": s.version})
}

// handlePutItem handles item upserts
func (s *Server) handlePutItem(c *gin.Context) {
	id, ok := parseItemID(c)
	if !ok {
		return
	}

	value, ok := c.GetQuery("value")
	if !ok {
		value, ok = c.GetPostForm("value")
	}
	if !ok {
		c.JSON(http.StatusUnprocessableEntity, DetailResponse{Detail: "value is required"})
		return
	}

	item, err := s.items.PutItem(c.Request.Context(), id, value)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: dbErrorMessage})
		return
	}

	c.JSON(http.StatusOK, PutItemResponse{
		Message: itemStoredMessage,
		ID:      item.ID,
		Value:   item.Value,
	})
}

// handleGetItem handles item lookups.
// A missing item is answered with 200 and a message body, not 404.
func (s *Server) handleGetItem(c *gin.Context) {
	id, ok := parseItemID(c)
	if !ok {
		return
	}

	item, found, err := s.items.GetItem(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: dbErrorMessage})
		return
	}

	if !found {
		c.JSON(http.StatusOK, MessageResponse{Message: itemNotFoundMessage})
		return
	}

	c.JSON(http.StatusOK, ItemResponse{
		ID:    item.ID,
		Value: item.Value,
	})
}

func (s *Server) handleNoRoute(c *gin.Context) {
	c.JSON(http.StatusNotFound, DetailResponse{Detail: "Not Found"})
}

func (s *Server) handleNoMethod(c *gin.Context) {
	c.JSON(http.StatusMethodNotAllowed, DetailResponse{Detail: "Method Not Allowed"})
}

// parseItemID reads the integer item_id path parameter, answering 422 when
// it is malformed.
func parseItemID(c *gin.Context) (int64, bool) {
	raw := c.Param("item_id")

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, DetailResponse{
			Detail: "item_id must be an integer",
		})
		return 0, false
	}

	return id, true
}
