package mailing

import (
	"fmt"
	"strconv"

	"foodgram-backend/internal/utils"

	"gopkg.in/gomail.v2"
)

type MailConfig struct {
	Host     string
	Port     int
	Sender   string
	Email    string
	Password string
}

func LoadMailConfig() (MailConfig, error) {
	port, err := strconv.Atoi(utils.GetConfig("SMTP_PORT"))
	if err != nil {
		return MailConfig{}, fmt.Errorf("invalid SMTP_PORT: %w", err)
	}

	return MailConfig{
		Host:     utils.GetConfig("SMTP_HOST"),
		Port:     port,
		Sender:   utils.GetConfig("SMTP_SENDER_NAME"),
		Email:    utils.GetConfig("SMTP_AUTH_EMAIL"),
		Password: utils.GetConfig("SMTP_AUTH_PASSWORD"),
	}, nil
}

func SendMail(toEmail string, subject string, htmlBody string) error {
	cfg, err := LoadMailConfig()
	if err != nil {
		return err
	}

	message := gomail.NewMessage()
	message.SetAddressHeader("From", cfg.Email, cfg.Sender)
	message.SetHeader("To", toEmail)
	message.SetHeader("Subject", subject)
	message.SetBody("text/html", htmlBody)

	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Email, cfg.Password)
	return dialer.DialAndSend(message)
}
