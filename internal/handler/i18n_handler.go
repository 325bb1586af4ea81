package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"investpro/internal/service"
)

// I18nHandler handles the translation key-value endpoints.
type I18nHandler struct {
	translations service.TranslationService
}

// NewI18nHandler creates a new i18n handler.
func NewI18nHandler(translations service.TranslationService) *I18nHandler {
	return &I18nHandler{translations: translations}
}

// AddLanguageRequest registers a new language with its document.
type AddLanguageRequest struct {
	Lang         string          `json:"lang" validate:"required"`
	Translations json.RawMessage `json:"translations" validate:"required"`
}

// MessageResponse acknowledges a translation mutation.
type MessageResponse struct {
	Message string `json:"message"`
}

// GetTranslations returns the translation document for a language.
func (h *I18nHandler) GetTranslations(c echo.Context) error {
	doc, err := h.translations.Translations(c.Request().Context(), c.Param("lang"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSONBlob(http.StatusOK, doc)
}

// UpdateTranslations replaces the document of an existing language.
func (h *I18nHandler) UpdateTranslations(c echo.Context) error {
	doc, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := h.translations.UpdateLanguage(c.Request().Context(), c.Param("lang"), doc); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "translations updated"})
}

// AddLanguage stores the document of a new language.
func (h *I18nHandler) AddLanguage(c echo.Context) error {
	var req AddLanguageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.translations.AddLanguage(c.Request().Context(), req.Lang, req.Translations); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, MessageResponse{Message: "language added"})
}

// DeleteLanguage removes a language and its document.
func (h *I18nHandler) DeleteLanguage(c echo.Context) error {
	if err := h.translations.DeleteLanguage(c.Request().Context(), c.Param("lang")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "language removed"})
}

// ListLanguages returns the language codes with stored documents.
func (h *I18nHandler) ListLanguages(c echo.Context) error {
	langs, err := h.translations.Languages(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	if langs == nil {
		langs = []string{}
	}
	return c.JSON(http.StatusOK, langs)
}
