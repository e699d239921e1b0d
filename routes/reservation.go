package routes

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/czdsgnr/roubenky/models"
	"github.com/czdsgnr/roubenky/services"
	"github.com/czdsgnr/roubenky/storage"
	"github.com/czdsgnr/roubenky/utils"

	"github.com/kataras/iris/v12"
)

var notifications = services.NewNotificationService()

type ReservationInput struct {
	FirstName      string `json:"firstName" validate:"required,max=256"`
	LastName       string `json:"lastName" validate:"required,max=256"`
	Email          string `json:"email" validate:"required,max=256"`
	Phone          string `json:"phone" validate:"required,max=32"`
	Company        string `json:"company" validate:"max=256"`
	CheckIn        string `json:"checkin" validate:"required"`
	CheckOut       string `json:"checkout" validate:"required"`
	Guests         int    `json:"guests" validate:"required,min=1,max=14"`
	Message        string `json:"message" validate:"max=4000"`
	AgreeTerms     bool   `json:"agreeTerms"`
	AgreeMarketing bool   `json:"agreeMarketing"`
}

// CreateReservation is the wizard's final submit. All three step gates run
// again server-side; nothing is persisted unless every gate passes and the
// insert succeeds, so a failed submit leaves no partial record behind.
func CreateReservation(ctx iris.Context) {
	var input ReservationInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	checkIn, checkInErr := time.Parse("2006-01-02", input.CheckIn)
	checkOut, checkOutErr := time.Parse("2006-01-02", input.CheckOut)
	if checkInErr != nil || checkOutErr != nil {
		fields := map[string]string{}
		if checkInErr != nil {
			fields["checkin"] = "Neplatný formát data"
		}
		if checkOutErr != nil {
			fields["checkout"] = "Neplatný formát data"
		}
		utils.FieldErrorsResponse(ctx, fields)
		return
	}

	form := services.BookingForm{
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		Email:          input.Email,
		Phone:          input.Phone,
		Company:        input.Company,
		CheckIn:        checkIn,
		CheckOut:       checkOut,
		Guests:         input.Guests,
		Message:        input.Message,
		AgreeTerms:     input.AgreeTerms,
		AgreeMarketing: input.AgreeMarketing,
		Step:           services.StepConfirmSubmit,
	}

	reservation, fieldErrs := form.Assemble(time.Now())
	if len(fieldErrs) > 0 {
		utils.FieldErrorsResponse(ctx, map[string]string(fieldErrs))
		return
	}

	reservation.Phone = utils.NormalizePhoneNumber(reservation.Phone)

	// Double booking is advisory only: the calendar discourages overlaps but
	// a concurrent submission still lands as a second pending record for the
	// admin to resolve by hand.
	logOverlap(reservation)

	if err := storage.DB.Create(&reservation).Error; err != nil {
		log.Println("❌ Failed to persist reservation:", err)
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error",
			"Rezervaci se nepodařilo uložit, zkuste to prosím znovu.")
		return
	}

	storage.PublishReservationChange(context.Background(), fmt.Sprintf("reservation:%d created", reservation.ID))
	go notifications.NotifyNewReservation(reservation)

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(iris.Map{
		"success": true,
		"data": iris.Map{
			"id":         reservation.ID,
			"nights":     reservation.Nights,
			"totalPrice": reservation.TotalPrice,
			"status":     reservation.Status,
		},
	})
}

func logOverlap(reservation models.Reservation) {
	existing := services.CurrentReservations()
	for day := reservation.CheckIn; day.Before(reservation.CheckOut); day = day.AddDate(0, 0, 1) {
		if services.IsOccupied(day, existing) {
			log.Printf("⚠️  Reservation for %s overlaps an existing booking on %s, flag for manual triage",
				reservation.Name, day.Format("2006-01-02"))
			return
		}
	}
}
