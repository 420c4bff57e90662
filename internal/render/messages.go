package render

import "fmt"

// RowReserved is the notification after a successful row registration.
func RowReserved(eventName string) string {
	return fmt.Sprintf("Success! Reserved 1 seat for %q.", eventName)
}

// RowFull is the notification when a row registration hits a full event.
func RowFull(eventName string) string {
	return fmt.Sprintf("Sorry, %s is fully booked.", eventName)
}

// FormConfirmation is the inline confirmation after a form registration.
func FormConfirmation(name, studentID, eventName string) string {
	return fmt.Sprintf("Thanks %s (ID: %s). You're registered for %q.", name, studentID, eventName)
}

// FormRegistered is the notification after a form registration.
func FormRegistered(eventName string) string {
	return fmt.Sprintf("Registered for %q. Check your inbox for details.", eventName)
}

// ResetDone is the notification after a reset.
const ResetDone = "Demo data has been reset."

// ResetPrompt asks for reset confirmation.
const ResetPrompt = "Reset demo data? This will clear all bookings and restore original event slots."
