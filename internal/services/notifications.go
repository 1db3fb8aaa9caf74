package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/citycare/mydoctor-api/internal/models"
)

// NotificationService sends SMS confirmations through Textbelt.
type NotificationService struct {
	apiKey string
}

func NewNotificationService(apiKey string) *NotificationService {
	return &NotificationService{apiKey: apiKey}
}

// SendAppointmentConfirmationSMS notifies a patient that their appointment
// is booked. Fire-and-forget: delivery failure never fails the booking.
func (s *NotificationService) SendAppointmentConfirmationSMS(patient *models.Patient, doctor *models.Doctor, apt *models.Appointment) {
	if patient.Phone == "" {
		log.Println("SMS not sent: patient has no phone number.")
		return
	}

	smsBody := fmt.Sprintf(
		"Appointment confirmed: Dr. %s on %s.",
		doctor.FullName(),
		apt.AppointmentDate.Format("Jan 2 at 3:04 PM"),
	)

	// Send in a goroutine so it doesn't block the API response
	go s.sendSmsWithTextbelt(patient.Phone, smsBody)
}

func (s *NotificationService) sendSmsWithTextbelt(phone, message string) {
	postBody, _ := json.Marshal(map[string]string{
		"phone":   phone,
		"message": message,
		"key":     s.apiKey,
	})

	resp, err := http.Post("https://textbelt.com/text", "application/json", bytes.NewBuffer(postBody))
	if err != nil {
		log.Printf("Failed to send Textbelt request for number %s: %v", phone, err)
		return
	}
	defer resp.Body.Close()

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)

	success, _ := result["success"].(bool)
	if !success {
		errorMsg, _ := result["error"].(string)
		log.Printf("Failed to send SMS via Textbelt to %s. Reason: %s", phone, errorMsg)
	} else {
		log.Printf("Successfully sent SMS via Textbelt to %s", phone)
	}
}
