package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fixserve/account-service/internal/api/metrics"
	"github.com/fixserve/account-service/internal/core/domain"
	"github.com/fixserve/account-service/internal/core/ports"
)

type ProfileHandler struct {
	profileService ports.ProfileService
}

func NewProfileHandler(profileService ports.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// profileUpdateRequest carries the updatable profile fields. Absent fields
// (nil after binding) leave the stored value untouched; email and password
// are not updatable here at all.
type profileUpdateRequest struct {
	FullName        *string `json:"fullName" validate:"omitempty,min=1"`
	PhoneNumber     *string `json:"phoneNumber" validate:"omitempty,phone"`
	Address         *string `json:"address"`
	ProfilePhoto    *string `json:"profilePhoto"`
	ExperienceYears *int    `json:"experience" validate:"omitempty,gte=0"`
}

// GetProfile returns the caller's profile shaped by their role.
//
// @Summary      Get own profile
// @Tags         profile
// @Produce      json
// @Success      200  {object}  ports.ProfileView
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Security     BearerAuth
// @Router       /profile [get]
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	accountID, role, err := ctxClaims(c)
	if err != nil {
		return err
	}

	view, err := h.profileService.GetProfile(c.Request().Context(), accountID, role)
	metrics.ProfileRequestsTotal.WithLabelValues("get", metricRole(role)).Inc()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

// UpdateProfile applies a partial update to the caller's profile and returns
// the post-merge view. Admin profiles are readable but not updatable.
//
// @Summary      Update own profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        body  body      profileUpdateRequest  true  "Fields to update"
// @Success      200   {object}  ports.ProfileView
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Security     BearerAuth
// @Router       /profile [put]
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	accountID, role, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req profileUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	view, err := h.profileService.UpdateProfile(c.Request().Context(), accountID, role, ports.ProfileUpdate{
		FullName:        req.FullName,
		PhoneNumber:     req.PhoneNumber,
		Address:         req.Address,
		ProfilePhoto:    req.ProfilePhoto,
		ExperienceYears: req.ExperienceYears,
	})
	metrics.ProfileRequestsTotal.WithLabelValues("update", metricRole(role)).Inc()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

func metricRole(role string) string {
	if parsed, ok := domain.ParseRole(role); ok {
		return string(parsed)
	}
	return "unsupported"
}
