package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/czdsgnr/roubenky/models"
	"github.com/czdsgnr/roubenky/utils"
)

// NotificationService tells the owners about new reservations. It posts a
// JSON summary to ADMIN_NOTIFY_WEBHOOK; with no webhook configured it only
// logs, which is enough for development.
type NotificationService struct {
	WebhookURL string
	Client     *http.Client
}

// NewNotificationService creates a new notification service instance
func NewNotificationService() *NotificationService {
	return &NotificationService{
		WebhookURL: os.Getenv("ADMIN_NOTIFY_WEBHOOK"),
		Client:     &http.Client{Timeout: 10 * time.Second},
	}
}

type reservationNotification struct {
	Type       string `json:"type"`
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	CheckIn    string `json:"checkin"`
	CheckOut   string `json:"checkout"`
	Nights     int    `json:"nights"`
	Guests     int    `json:"guests"`
	TotalPrice int    `json:"totalPrice"`
	Status     string `json:"status"`
}

// NotifyNewReservation reports a freshly submitted reservation. Failures
// are logged and swallowed; the guest's submission already succeeded.
func (ns *NotificationService) NotifyNewReservation(r models.Reservation) {
	log.Printf("📩 New reservation #%d: %s, %s → %s, %d guests, %d CZK",
		r.ID, r.Name, r.CheckIn.Format("2006-01-02"), r.CheckOut.Format("2006-01-02"), r.Guests, r.TotalPrice)

	if ns.WebhookURL == "" {
		return
	}

	payload := reservationNotification{
		Type:       "reservation.created",
		ID:         r.ID,
		Name:       r.Name,
		Phone:      utils.DisplayPhoneNumber(r.Phone),
		CheckIn:    r.CheckIn.Format("2006-01-02"),
		CheckOut:   r.CheckOut.Format("2006-01-02"),
		Nights:     r.Nights,
		Guests:     r.Guests,
		TotalPrice: r.TotalPrice,
		Status:     r.Status,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		log.Println("❌ Failed to marshal reservation notification:", err)
		return
	}

	res, err := ns.Client.Post(ns.WebhookURL, "application/json", bytes.NewReader(body))
	if err != nil {
		log.Println("❌ Failed to deliver reservation notification:", err)
		return
	}
	defer res.Body.Close()

	if res.StatusCode >= 300 {
		log.Println("❌ Reservation notification rejected:", fmt.Sprintf("status %d", res.StatusCode))
		return
	}
	log.Printf("✅ Reservation notification delivered for #%d", r.ID)
}
