package mailer

import (
	"fmt"
	"strings"
)

// BookingSubject тема письма-подтверждения
const BookingSubject = "Επιβεβαίωση κράτησης – ehairstyle"

// BookingConfirmation данные письма-подтверждения записи
type BookingConfirmation struct {
	To           string
	ShopName     string
	ServiceName  string
	StaffName    string
	ApptDate     string
	StartHM      string
	EndHM        string
	CustomerName string
	Phone        string
}

// Body текст письма
func (b BookingConfirmation) Body() string {
	var sb strings.Builder
	sb.WriteString("Η κράτησή σου ολοκληρώθηκε!\n\n")
	fmt.Fprintf(&sb, "Κατάστημα: %s\n", b.ShopName)
	fmt.Fprintf(&sb, "Υπηρεσία: %s\n", b.ServiceName)
	fmt.Fprintf(&sb, "Υπάλληλος: %s\n", b.StaffName)
	fmt.Fprintf(&sb, "Ημερομηνία: %s\n", b.ApptDate)
	fmt.Fprintf(&sb, "Ώρα: %s - %s\n", b.StartHM, b.EndHM)
	fmt.Fprintf(&sb, "Όνομα: %s\n", b.CustomerName)
	fmt.Fprintf(&sb, "Τηλέφωνο: %s\n\n", b.Phone)
	sb.WriteString("Σε ευχαριστούμε!")
	return sb.String()
}
