package services

import (
	"regexp"
	"strings"
	"time"

	"github.com/czdsgnr/roubenky/models"
	"github.com/czdsgnr/roubenky/utils"
)

// The reservation wizard is a linear three-step form: dates and guests,
// contact details, confirmation. The state is an immutable value; every
// transition returns a new state plus the field errors that blocked it.

type WizardStep int

const (
	StepDatesGuests WizardStep = iota + 1
	StepContactInfo
	StepConfirmSubmit
)

// ReservationSource tags records created by this form so the admin panel
// can tell them apart from phone bookings entered by hand.
const ReservationSource = "website-new-form"

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// FieldErrors maps field name to a user-facing (Czech) message.
type FieldErrors map[string]string

// BookingForm is the wizard's form state. Values survive backward
// navigation; nothing is persisted until the final submit succeeds.
type BookingForm struct {
	FirstName      string
	LastName       string
	Email          string
	Phone          string
	Company        string
	CheckIn        time.Time
	CheckOut       time.Time
	Guests         int
	Message        string
	AgreeTerms     bool
	AgreeMarketing bool

	Step WizardStep
}

// NewBookingForm starts the wizard on step one. Guests defaults to 2, the
// most common group size offered by the form.
func NewBookingForm() BookingForm {
	return BookingForm{Guests: 2, Step: StepDatesGuests}
}

// ValidateStep runs one step's gate and returns its field errors.
func (f BookingForm) ValidateStep(step WizardStep, today time.Time) FieldErrors {
	errs := FieldErrors{}

	switch step {
	case StepDatesGuests:
		if f.CheckIn.IsZero() {
			errs["checkin"] = "Vyberte datum příjezdu"
		}
		if f.CheckOut.IsZero() {
			errs["checkout"] = "Vyberte datum odjezdu"
		}
		if !f.CheckIn.IsZero() && !f.CheckOut.IsZero() {
			if Midnight(f.CheckIn).Before(Midnight(today)) {
				errs["checkin"] = "Datum příjezdu nemůže být v minulosti"
			}
			if !Midnight(f.CheckOut).After(Midnight(f.CheckIn)) {
				errs["checkout"] = "Datum odjezdu musí být po datu příjezdu"
			} else if Nights(Midnight(f.CheckIn), Midnight(f.CheckOut)) < MinNights {
				errs["checkout"] = "Minimální pobyt je 2 noci"
			}
		}
		if f.Guests < 1 || f.Guests > MaxGuests {
			errs["guests"] = "Počet hostů musí být mezi 1 a 14"
		}

	case StepContactInfo:
		if strings.TrimSpace(f.FirstName) == "" {
			errs["firstName"] = "Vyplňte jméno"
		}
		if strings.TrimSpace(f.LastName) == "" {
			errs["lastName"] = "Vyplňte příjmení"
		}
		if strings.TrimSpace(f.Email) == "" {
			errs["email"] = "Vyplňte email"
		} else if !emailPattern.MatchString(strings.TrimSpace(f.Email)) {
			errs["email"] = "Neplatný formát emailu"
		}
		if strings.TrimSpace(f.Phone) == "" {
			errs["phone"] = "Vyplňte telefon"
		} else if !utils.ValidatePhoneNumber(f.Phone) {
			errs["phone"] = "Neplatný formát telefonu"
		}

	case StepConfirmSubmit:
		if !f.AgreeTerms {
			errs["agreeTerms"] = "Musíte souhlasit s podmínkami"
		}
	}

	return errs
}

// Next advances the wizard one step if the current step's gate passes.
// On a failed gate the state is returned unchanged with the errors.
func (f BookingForm) Next(today time.Time) (BookingForm, FieldErrors) {
	if f.Step >= StepConfirmSubmit {
		return f, nil
	}
	if errs := f.ValidateStep(f.Step, today); len(errs) > 0 {
		return f, errs
	}
	f.Step++
	return f, nil
}

// Prev steps backward without touching any field values.
func (f BookingForm) Prev() BookingForm {
	if f.Step > StepDatesGuests {
		f.Step--
	}
	return f
}

// Assemble runs every gate and builds the Reservation record for
// persistence. Price and night count are recomputed one final time from
// the confirmed dates; the store assigns the identity.
func (f BookingForm) Assemble(now time.Time) (models.Reservation, FieldErrors) {
	errs := FieldErrors{}
	for step := StepDatesGuests; step <= StepConfirmSubmit; step++ {
		for field, msg := range f.ValidateStep(step, now) {
			errs[field] = msg
		}
	}
	if len(errs) > 0 {
		return models.Reservation{}, errs
	}

	checkIn := Midnight(f.CheckIn)
	checkOut := Midnight(f.CheckOut)
	nights := Nights(checkIn, checkOut)

	first := strings.TrimSpace(f.FirstName)
	last := strings.TrimSpace(f.LastName)

	reservation := models.Reservation{
		FirstName:      first,
		LastName:       last,
		Name:           first + " " + last,
		Email:          strings.TrimSpace(f.Email),
		Phone:          strings.TrimSpace(f.Phone),
		Company:        strings.TrimSpace(f.Company),
		CheckIn:        checkIn,
		CheckOut:       checkOut,
		Guests:         f.Guests,
		TotalPrice:     StayPrice(nights),
		Nights:         nights,
		Message:        strings.TrimSpace(f.Message),
		Status:         models.ReservationPending,
		Source:         ReservationSource,
		AgreeMarketing: f.AgreeMarketing,
	}
	reservation.CreatedAt = now
	return reservation, nil
}
