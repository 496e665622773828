package models

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/gomail.v2"
)

type EmailService struct {
	dialer *gomail.Dialer
	staff  string
}

func NewEmailService(staffEmail string) (*EmailService, error) {
	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort := os.Getenv("SMTP_PORT")
	smtpUser := os.Getenv("SMTP_USER")
	smtpPass := os.Getenv("SMTP_PASS")

	if smtpHost == "" || smtpUser == "" || smtpPass == "" || staffEmail == "" {
		return nil, fmt.Errorf("SMTP configuration missing")
	}

	port, err := strconv.Atoi(smtpPort)
	if err != nil {
		port = 587
	}

	dialer := gomail.NewDialer(smtpHost, port, smtpUser, smtpPass)

	return &EmailService{dialer: dialer, staff: staffEmail}, nil
}

// SendOrderPlacedEmail notifies the restaurant staff that a new order came in.
func (s *EmailService) SendOrderPlacedEmail(order Order) error {
	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("SMTP_FROM"))
	m.SetHeader("To", s.staff)
	m.SetHeader("Subject", fmt.Sprintf("New order — table %d", order.TableNumber))

	var items strings.Builder
	for _, line := range order.Items {
		fmt.Fprintf(&items, "<li>%d × %s</li>", line.Quantity, line.Name)
	}

	body := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif;">
    <h2>New order received</h2>
    <p>Table: <strong>%d</strong></p>
    <ul>%s</ul>
    <p>Total: <strong>%.2f</strong></p>
    <p>Order ID: %s</p>
</body>
</html>`, order.TableNumber, items.String(), order.TotalAmount, order.ID)

	m.SetBody("text/html", body)

	return s.dialer.DialAndSend(m)
}
