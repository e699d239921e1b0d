package routes

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kataras/iris/v12"
)

func buildReservationApp() *iris.Application {
	app := iris.New()
	app.Validator = validator.New()
	app.Post("/api/reservations", CreateReservation)
	if err := app.Build(); err != nil {
		panic(err)
	}
	return app
}

func TestCreateReservationRequiresFields(t *testing.T) {
	app := buildReservationApp()

	resp := postJSON(app, "/api/reservations", map[string]interface{}{
		"email": "jan.novak@example.com",
	})
	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", resp.Code, resp.Body.String())
	}

	var out struct {
		ValidationErrors []map[string]interface{} `json:"validationErrors"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(out.ValidationErrors) == 0 {
		t.Fatal("expected validation errors for missing fields")
	}
}

func TestCreateReservationRejectsBadDateFormat(t *testing.T) {
	app := buildReservationApp()

	resp := postJSON(app, "/api/reservations", map[string]interface{}{
		"firstName":  "Jan",
		"lastName":   "Novák",
		"email":      "jan.novak@example.com",
		"phone":      "+420 777 123 456",
		"checkin":    "10.06.2025",
		"checkout":   "2025-06-13",
		"guests":     4,
		"agreeTerms": true,
	})
	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", resp.Code, resp.Body.String())
	}

	var out struct {
		FieldErrors map[string]string `json:"fieldErrors"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.FieldErrors["checkin"] != "Neplatný formát data" {
		t.Fatalf("unexpected field errors: %v", out.FieldErrors)
	}
}

func TestCreateReservationRequiresConsent(t *testing.T) {
	app := buildReservationApp()

	checkIn := time.Now().AddDate(0, 0, 14)
	checkOut := checkIn.AddDate(0, 0, 3)

	resp := postJSON(app, "/api/reservations", map[string]interface{}{
		"firstName":  "Jan",
		"lastName":   "Novák",
		"email":      "jan.novak@example.com",
		"phone":      "+420 777 123 456",
		"checkin":    checkIn.Format("2006-01-02"),
		"checkout":   checkOut.Format("2006-01-02"),
		"guests":     4,
		"agreeTerms": false,
	})
	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", resp.Code, resp.Body.String())
	}

	var out struct {
		FieldErrors map[string]string `json:"fieldErrors"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.FieldErrors["agreeTerms"] != "Musíte souhlasit s podmínkami" {
		t.Fatalf("unexpected field errors: %v", out.FieldErrors)
	}
}

func TestCreateReservationRejectsOneNightStay(t *testing.T) {
	app := buildReservationApp()

	checkIn := time.Now().AddDate(0, 0, 14)
	checkOut := checkIn.AddDate(0, 0, 1)

	resp := postJSON(app, "/api/reservations", map[string]interface{}{
		"firstName":  "Jan",
		"lastName":   "Novák",
		"email":      "jan.novak@example.com",
		"phone":      "+420 777 123 456",
		"checkin":    checkIn.Format("2006-01-02"),
		"checkout":   checkOut.Format("2006-01-02"),
		"guests":     4,
		"agreeTerms": true,
	})
	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", resp.Code, resp.Body.String())
	}

	var out struct {
		FieldErrors map[string]string `json:"fieldErrors"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.FieldErrors["checkout"] != "Minimální pobyt je 2 noci" {
		t.Fatalf("unexpected field errors: %v", out.FieldErrors)
	}
}
