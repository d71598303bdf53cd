// Package notifications implements the notifier port. Delivery is over plain
// SMTP when a host is configured; without one the notifier degrades to logging
// the message, which keeps local development mail-server free.
package notifications

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"

	"tripmanager/internal/core/domain/model/order"
)

// Config holds SMTP delivery settings. An empty Host disables delivery.
type Config struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

// EmailNotifier sends order status notifications to order owners.
type EmailNotifier struct {
	cfg  Config
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
	log  *slog.Logger
}

// NewEmailNotifier creates a notifier with the given SMTP settings.
func NewEmailNotifier(cfg Config, log *slog.Logger) *EmailNotifier {
	return &EmailNotifier{
		cfg:  cfg,
		send: smtp.SendMail,
		log:  log,
	}
}

// NotifyOrderStatusChanged emails the order's owner about the status change.
// With no SMTP host configured the message is logged instead of sent.
func (n *EmailNotifier) NotifyOrderStatusChanged(_ context.Context, aggregate *order.Order) error {
	owner := aggregate.Owner()
	subject := fmt.Sprintf("Trip order %s is now %s", aggregate.ID().String(), aggregate.Status().String())
	body := fmt.Sprintf(
		"Hello %s,\r\n\r\nYour trip order to %s (%s) departing %s has been updated to status %s.\r\n",
		owner.Name(),
		aggregate.Destination().City(),
		aggregate.Destination().IataCode(),
		aggregate.DepartureDate().Format("2006-01-02"),
		aggregate.Status().String(),
	)

	if n.cfg.Host == "" {
		n.log.Info("order status notification (smtp disabled)",
			"to", owner.Email(),
			"orderID", aggregate.ID().String(),
			"status", aggregate.Status().String())
		return nil
	}

	msg := strings.Join([]string{
		"From: " + n.cfg.From,
		"To: " + owner.Email(),
		"Subject: " + subject,
		"",
		body,
	}, "\r\n")

	var auth smtp.Auth
	if n.cfg.Username != "" {
		auth = smtp.PlainAuth("", n.cfg.Username, n.cfg.Password, n.cfg.Host)
	}

	addr := n.cfg.Host + ":" + n.cfg.Port
	return n.send(addr, auth, n.cfg.From, []string{owner.Email()}, []byte(msg))
}
