package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/devsocial/social-api/internal/api/middleware"
	"github.com/devsocial/social-api/internal/core/domain"
	"github.com/devsocial/social-api/internal/core/ports"
)

// ProfileHandler handles HTTP requests for profiles, their embedded
// experience and education collections, and account deletion.
type ProfileHandler struct {
	service ports.ProfileService
}

func NewProfileHandler(service ports.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

type upsertProfileRequest struct {
	Company        string `json:"company"`
	Website        string `json:"website"`
	Location       string `json:"location"`
	Bio            string `json:"bio"`
	Status         string `json:"status" validate:"required"`
	GithubUsername string `json:"githubusername"`
	Skills         string `json:"skills" validate:"required"`
	Youtube        string `json:"youtube"`
	Twitter        string `json:"twitter"`
	Facebook       string `json:"facebook"`
	LinkedIn       string `json:"linkedin"`
	Instagram      string `json:"instagram"`
}

type experienceRequest struct {
	Title       string     `json:"title" validate:"required"`
	Company     string     `json:"company" validate:"required"`
	Location    string     `json:"location"`
	From        time.Time  `json:"from" validate:"required"`
	To          *time.Time `json:"to"`
	Current     bool       `json:"current"`
	Description string     `json:"description"`
}

type educationRequest struct {
	School       string     `json:"school" validate:"required"`
	Degree       string     `json:"degree" validate:"required"`
	FieldOfStudy string     `json:"fieldofstudy" validate:"required"`
	From         time.Time  `json:"from" validate:"required"`
	To           *time.Time `json:"to"`
	Current      bool       `json:"current"`
	Description  string     `json:"description"`
}

// Me handles GET /api/profile/me.
func (h *ProfileHandler) Me(c echo.Context) error {
	profile, err := h.service.Me(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return echo.NewHTTPError(http.StatusBadRequest, "There is no profile for this user")
		}
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// Upsert handles POST /api/profile: create on first post, update afterwards.
func (h *ProfileHandler) Upsert(c echo.Context) error {
	var req upsertProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	profile, err := h.service.Upsert(c.Request().Context(), middleware.UserID(c), ports.UpsertProfileInput{
		Company:    req.Company,
		Website:    req.Website,
		Location:   req.Location,
		Bio:        req.Bio,
		Status:     req.Status,
		GithubUser: req.GithubUsername,
		Skills:     req.Skills,
		Youtube:    req.Youtube,
		Twitter:    req.Twitter,
		Facebook:   req.Facebook,
		LinkedIn:   req.LinkedIn,
		Instagram:  req.Instagram,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// All handles GET /api/profile (public).
func (h *ProfileHandler) All(c echo.Context) error {
	profiles, err := h.service.All(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profiles)
}

// ByUserID handles GET /api/profile/user/:user_id (public).
func (h *ProfileHandler) ByUserID(c echo.Context) error {
	profile, err := h.service.ByUserID(c.Request().Context(), c.Param("user_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// DeleteAccount handles DELETE /api/profile: removes the caller's posts,
// profile, and user record.
func (h *ProfileHandler) DeleteAccount(c echo.Context) error {
	if err := h.service.DeleteAccount(c.Request().Context(), middleware.UserID(c)); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, deletedResponse{Msg: "User deleted"})
}

// AddExperience handles PUT /api/profile/experience.
func (h *ProfileHandler) AddExperience(c echo.Context) error {
	var req experienceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	profile, err := h.service.AddExperience(c.Request().Context(), middleware.UserID(c), ports.ExperienceInput{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		From:        req.From,
		To:          req.To,
		Current:     req.Current,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// RemoveExperience handles DELETE /api/profile/experience/:exp_id.
func (h *ProfileHandler) RemoveExperience(c echo.Context) error {
	profile, err := h.service.RemoveExperience(c.Request().Context(), middleware.UserID(c), c.Param("exp_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// AddEducation handles PUT /api/profile/education.
func (h *ProfileHandler) AddEducation(c echo.Context) error {
	var req educationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	profile, err := h.service.AddEducation(c.Request().Context(), middleware.UserID(c), ports.EducationInput{
		School:       req.School,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		From:         req.From,
		To:           req.To,
		Current:      req.Current,
		Description:  req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// RemoveEducation handles DELETE /api/profile/education/:edu_id.
func (h *ProfileHandler) RemoveEducation(c echo.Context) error {
	profile, err := h.service.RemoveEducation(c.Request().Context(), middleware.UserID(c), c.Param("edu_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// GithubRepos handles GET /api/profile/github/:username (public).
func (h *ProfileHandler) GithubRepos(c echo.Context) error {
	repos, err := h.service.GithubRepos(c.Request().Context(), c.Param("username"))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "No Github profile found")
		}
		return err
	}
	return c.JSON(http.StatusOK, repos)
}
