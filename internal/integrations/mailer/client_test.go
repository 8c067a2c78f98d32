package mailer

import (
	"context"
	"errors"
	"net/smtp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HairBooking/pkg/logger"
)

var testConfig = Config{
	Host:     "smtp.example.com",
	Port:     587,
	User:     "mailer@example.com",
	Password: "secret",
	From:     "mailer@example.com",
}

var confirmation = BookingConfirmation{
	To:           "client@example.com",
	ShopName:     "Barber Craft",
	ServiceName:  "Ανδρικό κούρεμα",
	StaffName:    "Νίκος",
	ApptDate:     "2024-01-01",
	StartHM:      "10:00",
	EndHM:        "10:30",
	CustomerName: "Κώστας",
	Phone:        "6900000000",
}

func TestClient_Disabled(t *testing.T) {
	client := NewClient(Config{Port: 587}, logger.Nop())

	assert.False(t, client.Enabled())
	assert.ErrorIs(t, client.SendBookingConfirmation(context.Background(), confirmation), ErrDisabled)
}

func TestClient_Send(t *testing.T) {
	client := NewClient(testConfig, logger.Nop())

	var (
		gotAddr string
		gotTo   []string
		gotMsg  string
	)
	client.send = func(addr string, _ smtp.Auth, _ string, to []string, msg []byte) error {
		gotAddr = addr
		gotTo = to
		gotMsg = string(msg)
		return nil
	}

	require.NoError(t, client.SendBookingConfirmation(context.Background(), confirmation))

	assert.Equal(t, "smtp.example.com:587", gotAddr)
	assert.Equal(t, []string{"client@example.com"}, gotTo)
	assert.Contains(t, gotMsg, "To: client@example.com\r\n")
	assert.Contains(t, gotMsg, "Subject: =?utf-8?q?")
	assert.Contains(t, gotMsg, "Κατάστημα: Barber Craft")
	assert.Contains(t, gotMsg, "Ώρα: 10:00 - 10:30")
	assert.True(t, strings.HasSuffix(gotMsg, "Σε ευχαριστούμε!\r\n"))
}

func TestClient_SendError(t *testing.T) {
	client := NewClient(testConfig, logger.Nop())
	client.send = func(string, smtp.Auth, string, []string, []byte) error {
		return errors.New("535 authentication failed")
	}

	err := client.SendBookingConfirmation(context.Background(), confirmation)
	assert.ErrorIs(t, err, ErrSend)
}

func TestClient_EmptyRecipient(t *testing.T) {
	client := NewClient(testConfig, logger.Nop())

	msg := confirmation
	msg.To = "  "
	assert.ErrorIs(t, client.SendBookingConfirmation(context.Background(), msg), ErrInvalidRecipient)
}
