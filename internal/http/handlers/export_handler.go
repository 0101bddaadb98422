package handlers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"trekhub/internal/domain"
	"trekhub/internal/domain/models"
	"trekhub/internal/http/middleware"
	"trekhub/internal/repositories"
	"trekhub/internal/services"
	"trekhub/internal/utils"

	"github.com/gin-gonic/gin"
)

type bookingExporter interface {
	Export(ctx context.Context, req services.ExportRequest) (services.ExportFile, error)
}

// newExporter builds the export service over the shared connection.
var newExporter = func(requestID string) bookingExporter {
	return services.ExportService{
		Bookings:     repositories.BookingRepository{},
		Treks:        repositories.TrekRepository{},
		Slots:        repositories.SlotRepository{},
		Profiles:     repositories.ProfileRepository{},
		Participants: repositories.ParticipantRepository{},
		RequestID:    requestID,
	}
}

// exportQueryKeys are echoed back in the export metadata when set.
var exportQueryKeys = []string{"format", "status", "startDate", "endDate", "trekSlug", "userFilter", "specificUser"}

// ExportBookings handles GET /api/admin/bookings/export.
func ExportBookings(c *gin.Context) {
	reqID := middleware.GetRequestID(c)

	req, err := parseExportQuery(c)
	if err != nil {
		utils.LogEvent(reqID, "export", "validate", err.Error())
		RespondDomainError(c, err)
		return
	}

	user := middleware.CurrentUser(c)
	utils.LogEvent(reqID, "export", "request",
		fmt.Sprintf("user=%s role=%s format=%s cohort=%s", user.UserID, user.Role, req.Format, req.Cohort))

	file, err := newExporter(reqID).Export(c.Request.Context(), req)
	if err != nil {
		utils.LogEvent(reqID, "export", "failed", err.Error())
		RespondDomainError(c, err)
		return
	}

	sendAttachment(c, file.Filename, file.ContentType, file.Body)
}

// parseExportQuery validates every parameter before any data is read.
func parseExportQuery(c *gin.Context) (services.ExportRequest, error) {
	format, err := domain.ParseExportFormat(c.Query("format"))
	if err != nil {
		return services.ExportRequest{}, err
	}
	cohort, err := domain.ParseCohort(c.Query("userFilter"))
	if err != nil {
		return services.ExportRequest{}, err
	}

	filter := models.BookingFilter{
		Status:       strings.TrimSpace(c.Query("status")),
		TrekSlug:     strings.TrimSpace(c.Query("trekSlug")),
		SpecificUser: strings.TrimSpace(c.Query("specificUser")),
	}
	if raw := strings.TrimSpace(c.Query("startDate")); raw != "" {
		t, err := parseDay("startDate", raw)
		if err != nil {
			return services.ExportRequest{}, err
		}
		filter.From = &t
	}
	if raw := strings.TrimSpace(c.Query("endDate")); raw != "" {
		t, err := parseDay("endDate", raw)
		if err != nil {
			return services.ExportRequest{}, err
		}
		next := t.AddDate(0, 0, 1)
		filter.To = &next
	}
	if filter.From != nil && filter.To != nil && !filter.From.Before(*filter.To) {
		return services.ExportRequest{}, domain.ValidationError{Field: "startDate", Msg: "must not be after endDate"}
	}

	filters := map[string]string{}
	for _, key := range exportQueryKeys {
		if v := strings.TrimSpace(c.Query(key)); v != "" {
			filters[key] = v
		}
	}

	return services.ExportRequest{
		Format:  format,
		Cohort:  cohort,
		Filter:  filter,
		Filters: filters,
	}, nil
}

// parseDay accepts YYYY-MM-DD (UTC) or RFC3339 and returns the start of that
// calendar day in the offset the caller supplied.
func parseDay(field, raw string) (time.Time, error) {
	t, err := utils.ParseDate(raw)
	if err != nil {
		t, err = time.Parse(time.RFC3339, raw)
		if err != nil {
			return time.Time{}, domain.ValidationError{Field: field, Msg: "expected YYYY-MM-DD", Err: err}
		}
	}
	return utils.StartOfDay(t), nil
}
