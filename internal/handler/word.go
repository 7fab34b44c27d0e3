package handler

import (
	"errors"
	"net/http"
	"strconv"

	"wortschatz/internal/selection"
	"wortschatz/internal/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type addWordRequest struct {
	MotherLanguage string `json:"motherLanguage"`
	German         string `json:"german"`
	Category       string `json:"categoryAdd"`
}

type updateCategoryRequest struct {
	Category string `json:"categoryAdd"`
}

type setReviewRequest struct {
	Review *bool `json:"review"`
}

func (h *Handler) handleAddWord(c echo.Context) error {
	var req addWordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse("invalid request payload"))
	}

	word, err := h.wordService.AddWord(h.owner(c), req.MotherLanguage, req.German, req.Category)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingField),
			errors.Is(err, service.ErrInvalidCategory),
			errors.Is(err, service.ErrDuplicateWord):
			return c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		}
		h.logger.Error("Failed to add word", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, errorResponse("failed to add word"))
	}

	return c.JSON(http.StatusCreated, word)
}

func (h *Handler) handleListWords(c echo.Context) error {
	words, err := h.wordService.ListWords(h.owner(c))
	if err != nil {
		h.logger.Error("Failed to list words", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, errorResponse("failed to fetch words"))
	}
	return c.JSON(http.StatusOK, words)
}

func (h *Handler) handleSearchWords(c echo.Context) error {
	words, err := h.wordService.SearchWords(h.owner(c), c.QueryParam("query"))
	if err != nil {
		h.logger.Error("Failed to search words", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, errorResponse("failed to search words"))
	}
	return c.JSON(http.StatusOK, words)
}

func (h *Handler) handleRandomWords(c echo.Context) error {
	primary := c.QueryParam("primary")
	if primary == "" {
		primary = "all"
	}
	secondary := c.QueryParam("secondary")
	if secondary == "" {
		secondary = "all"
	}

	count, err := strconv.Atoi(c.QueryParam("count"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse("count must be an integer"))
	}

	words, err := h.wordService.RandomWords(h.owner(c), primary, secondary, count)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidFilter),
			errors.Is(err, selection.ErrInvalidQuantity):
			return c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		}
		h.logger.Error("Failed to pick random words", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, errorResponse("failed to fetch words"))
	}

	return c.JSON(http.StatusOK, words)
}

func (h *Handler) handleUpdateCategory(c echo.Context) error {
	id, err := wordID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, errorResponse("word not found"))
	}

	var req updateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse("invalid request payload"))
	}

	word, err := h.wordService.UpdateCategory(h.owner(c), id, req.Category)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCategory):
			return c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		case errors.Is(err, service.ErrWordNotFound):
			return c.JSON(http.StatusNotFound, errorResponse(err.Error()))
		}
		h.logger.Error("Failed to update word category", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, errorResponse("failed to update word"))
	}

	return c.JSON(http.StatusOK, word)
}

func (h *Handler) handleSetReview(c echo.Context) error {
	id, err := wordID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, errorResponse("word not found"))
	}

	var req setReviewRequest
	if err := c.Bind(&req); err != nil || req.Review == nil {
		return c.JSON(http.StatusBadRequest, errorResponse("invalid review value"))
	}

	word, err := h.wordService.SetReview(h.owner(c), id, *req.Review)
	if err != nil {
		if errors.Is(err, service.ErrWordNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse(err.Error()))
		}
		h.logger.Error("Failed to update review flag", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, errorResponse("failed to update word"))
	}

	return c.JSON(http.StatusOK, word)
}

func (h *Handler) handleDeleteWord(c echo.Context) error {
	id, err := wordID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, errorResponse("word not found"))
	}

	if err := h.wordService.DeleteWord(h.owner(c), id); err != nil {
		if errors.Is(err, service.ErrWordNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse(err.Error()))
		}
		h.logger.Error("Failed to delete word", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, errorResponse("failed to delete word"))
	}

	return c.NoContent(http.StatusNoContent)
}

func wordID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
