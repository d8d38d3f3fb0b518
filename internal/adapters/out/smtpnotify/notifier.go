// Package smtpnotify mails status updates to customers over plain SMTP.
package smtpnotify

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"sitebuilder/internal/core/domain/model/order"
	"sitebuilder/internal/core/ports"
	"sitebuilder/internal/pkg/errs"
)

var _ ports.Notifier = &SMTPNotifier{}

// sendMailFunc matches smtp.SendMail and lets tests intercept delivery.
type sendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPNotifier composes and sends status update mails. Subjects follow the
// order status so customers can scan their inbox by build phase.
type SMTPNotifier struct {
	addr     string
	from     string
	auth     smtp.Auth
	sendMail sendMailFunc
}

func NewSMTPNotifier(host string, port int, username, password, from string) (*SMTPNotifier, error) {
	if host == "" {
		return nil, errs.NewValueIsRequiredError("host")
	}
	if from == "" {
		return nil, errs.NewValueIsRequiredError("from")
	}

	var auth smtp.Auth
	if username != "" {
		auth = smtp.PlainAuth("", username, password, host)
	}

	return &SMTPNotifier{
		addr:     fmt.Sprintf("%s:%d", host, port),
		from:     from,
		auth:     auth,
		sendMail: smtp.SendMail,
	}, nil
}

func (n *SMTPNotifier) NotifyStatusChanged(ctx context.Context, notification ports.StatusNotification) error {
	if notification.Order == nil {
		return errs.NewValueIsRequiredError("notification.Order")
	}
	if notification.Customer == nil {
		return errs.NewValueIsRequiredError("notification.Customer")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	to := notification.Customer.Email()
	msg := composeMessage(n.from, to, notification)

	if err := n.sendMail(n.addr, n.auth, n.from, []string{to}, msg); err != nil {
		return errs.NewUpstreamFailureError("smtp", err)
	}
	return nil
}

func composeMessage(from, to string, notification ports.StatusNotification) []byte {
	var body strings.Builder
	fmt.Fprintf(&body, "From: %s\r\n", from)
	fmt.Fprintf(&body, "To: %s\r\n", to)
	fmt.Fprintf(&body, "Subject: %s\r\n", subjectFor(notification.Status))
	body.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n")

	fmt.Fprintf(&body, "Hello %s,\r\n\r\n", notification.Customer.Name())
	fmt.Fprintf(&body, "Your order for %q has been updated.\r\n\r\n",
		notification.Order.Requirements().WebsiteName())
	if notification.Message != "" {
		fmt.Fprintf(&body, "%s\r\n\r\n", notification.Message)
	}
	fmt.Fprintf(&body, "Current status: %s (%d%% complete)\r\n",
		notification.Status, notification.Order.Progress())
	if eta := notification.Order.EstimatedDeliveryDate(); !eta.IsZero() {
		fmt.Fprintf(&body, "Estimated delivery: %s\r\n", eta.Format("January 2, 2006"))
	}
	body.WriteString("\r\nThe Sitebuilder Team\r\n")

	return []byte(body.String())
}

func subjectFor(status order.Status) string {
	switch status {
	case order.StatusCompleted:
		return "Your website is ready!"
	case order.StatusCancelled:
		return "Your order has been cancelled"
	case order.StatusRevision:
		return "Your website is in revision"
	default:
		return fmt.Sprintf("Order update: %s", status)
	}
}
