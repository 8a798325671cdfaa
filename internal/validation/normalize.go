package validation

import (
	"strings"

	"github.com/hireflow/formstate/internal/formdata"
)

// Normalize canonicalizes a form payload before it reaches storage: names
// and phone trimmed, email trimmed and lower-cased, nil lists replaced by
// empty ones, and the phone sub-channels (call, SMS, WhatsApp) cleared when
// the phone channel itself is off.
func Normalize(d formdata.FormData) formdata.FormData {
	d = d.Normalized()

	d.PersonalInfo.FirstName = strings.TrimSpace(d.PersonalInfo.FirstName)
	d.PersonalInfo.LastName = strings.TrimSpace(d.PersonalInfo.LastName)
	d.PersonalInfo.Phone = strings.TrimSpace(d.PersonalInfo.Phone)
	d.PersonalInfo.Email = strings.ToLower(strings.TrimSpace(d.PersonalInfo.Email))

	if !d.Notifications.Phone {
		d.Notifications.Call = false
		d.Notifications.SMS = false
		d.Notifications.WhatsApp = false
	}

	return d
}

// HasNotificationChannel reports whether at least one channel is enabled.
// Advisory only: storage accepts payloads with every channel off.
func HasNotificationChannel(n formdata.Notifications) bool {
	return n.Email || n.Phone || n.Call || n.SMS || n.WhatsApp
}
