package handlers

import (
	"context"
	"strings"

	"trekhub/internal/domain"
	"trekhub/internal/http/middleware"
	"trekhub/internal/repositories"
	"trekhub/internal/services"

	"github.com/gin-gonic/gin"
)

const contentTypePDF = "application/pdf"

type trekSheetGenerator interface {
	GenerateTrekSheet(ctx context.Context, bookingID string) ([]byte, string, error)
}

var newTrekSheets = func(requestID string) trekSheetGenerator {
	return services.TrekSheetService{
		Bookings:     repositories.BookingRepository{},
		Treks:        repositories.TrekRepository{},
		Slots:        repositories.SlotRepository{},
		Profiles:     repositories.ProfileRepository{},
		Participants: repositories.ParticipantRepository{},
		RequestID:    requestID,
	}
}

// GetTrekSheetPDF handles GET /api/admin/bookings/:id/trek-sheet.
func GetTrekSheetPDF(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		RespondDomainError(c, domain.ValidationError{Field: "id", Msg: "booking id is required"})
		return
	}

	pdfBytes, filename, err := newTrekSheets(middleware.GetRequestID(c)).GenerateTrekSheet(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	sendAttachment(c, filename, contentTypePDF, pdfBytes)
}
