package utils

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

func smtpDialer() (*gomail.Dialer, string, error) {
	host := os.Getenv("SMTP_HOST")
	username := os.Getenv("SMTP_USERNAME")
	password := os.Getenv("SMTP_PASSWORD")
	from := os.Getenv("SMTP_FROM")
	if from == "" {
		from = username
	}

	port := 587
	if p, err := strconv.Atoi(os.Getenv("SMTP_PORT")); err == nil && p > 0 {
		port = p
	}

	if host == "" || username == "" {
		return nil, "", fmt.Errorf("SMTP not configured")
	}

	return gomail.NewDialer(host, port, username, password), from, nil
}

// SendOTP sends a verification OTP via email
func SendOTP(to, otp string) error {
	dialer, from, err := smtpDialer()
	if err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Your ModaMart verification code")
	m.SetBody("text/html", fmt.Sprintf(
		"<p>Your verification code is <b>%s</b>.</p><p>It expires in 10 minutes.</p>", otp))

	if err := dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send OTP email: %v", err)
	}
	return nil
}

// SendContactMessage forwards a storefront contact form submission to
// the store inbox
func SendContactMessage(to, name, email, subject, body string) error {
	dialer, from, err := smtpDialer()
	if err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", to)
	m.SetHeader("Reply-To", email)
	m.SetHeader("Subject", fmt.Sprintf("[Contact] %s", subject))
	m.SetBody("text/html", fmt.Sprintf(
		"<p>From: %s &lt;%s&gt;</p><p>%s</p>", name, email, body))

	if err := dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send contact message: %v", err)
	}
	return nil
}
