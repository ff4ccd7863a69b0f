package models

import "testing"

func TestIsValidBookingStatus(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{BookingEnAttente, true},
		{BookingConfirme, true},
		{BookingAnnule, true},
		{BookingTermine, true},
		{"expédié", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsValidBookingStatus(tt.status); got != tt.want {
			t.Errorf("IsValidBookingStatus(%q) = %v, attendu %v", tt.status, got, tt.want)
		}
	}
}

func TestBookingIsActive(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{BookingEnAttente, true},
		{BookingConfirme, true},
		{BookingAnnule, false},
		{BookingTermine, false},
	}
	for _, tt := range tests {
		b := Booking{Status: tt.status}
		if got := b.IsActive(); got != tt.want {
			t.Errorf("IsActive(%q) = %v, attendu %v", tt.status, got, tt.want)
		}
	}
}
