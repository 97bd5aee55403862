package service_test

import (
	"testing"

	"github.com/vnair-dev/Personal-Finance-Tracker-Backend/internal/service"
)

// TestMonthlyFactor tests the SIP frequency to monthly installment mapping.
// WHY: Monthly SIP totals drive the cross-tab and the SIP list footer, so a
// mislabeled frequency silently inflating or deflating totals would be hard
// to spot downstream.
func TestMonthlyFactor(t *testing.T) {
	tests := []struct {
		name      string
		frequency string
		want      int
	}{
		{name: "Monthly", frequency: "Monthly", want: 1},
		{name: "Lowercase monthly", frequency: "monthly", want: 1},
		{name: "Daily", frequency: "Daily", want: 20},
		{name: "Weekly", frequency: "Weekly", want: 4},
		{name: "BiWeekly", frequency: "BiWeekly", want: 2},
		{name: "Hyphenated bi-weekly", frequency: "Bi-Weekly", want: 2},
		{name: "Fortnightly", frequency: "Fortnightly", want: 2},
		{name: "Monthly wins over bi prefix", frequency: "Bi-Monthly", want: 1},
		{name: "Unknown label", frequency: "Quarterly", want: 0},
		{name: "Empty label", frequency: "", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := service.MonthlyFactor(tt.frequency)

			if got != tt.want {
				t.Errorf("MonthlyFactor(%q) = %d, want %d", tt.frequency, got, tt.want)
			}
		})
	}
}

// TestMonthlyEquivalent tests conversion of an installment amount into a
// monthly outflow.
func TestMonthlyEquivalent(t *testing.T) {
	t.Run("Weekly installment scales by four", func(t *testing.T) {
		got := service.MonthlyEquivalent(500, "Weekly")

		if got != 2000 {
			t.Errorf("Expected monthly equivalent 2000, got %v", got)
		}
	})

	t.Run("Unknown frequency contributes nothing", func(t *testing.T) {
		got := service.MonthlyEquivalent(500, "Yearly")

		if got != 0 {
			t.Errorf("Expected monthly equivalent 0, got %v", got)
		}
	})
}
