package utils

import (
	"crypto/rand"
	"fmt"
)

const refCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// randomRef returns a random uppercase alphanumeric string of length n.
func randomRef(n int) string {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms
		panic(err)
	}
	for i, b := range buf {
		buf[i] = refCharset[int(b)%len(refCharset)]
	}
	return string(buf)
}

// ReservationNumber creates a reference of the form RES-XXXXXXXX. Called
// explicitly when constructing a reservation; uniqueness is backed by the
// unique column constraint.
func ReservationNumber() string {
	return "RES-" + randomRef(8)
}

// PaymentNumber creates a reference of the form PAY-XXXXXXXX.
func PaymentNumber() string {
	return "PAY-" + randomRef(8)
}

// TicketNumber creates a sequential reference of the form TICK-000042 from
// the id of the most recent ticket.
func TicketNumber(lastTicketID uint) string {
	return fmt.Sprintf("TICK-%06d", lastTicketID+1)
}
