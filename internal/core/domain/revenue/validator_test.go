package revenue

import (
	"strings"
	"testing"
)

func TestValidateCurrency(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    Currency
		wantErr bool
	}{
		{name: "euro symbol", value: "€", want: CurrencyEUR},
		{name: "dollar symbol", value: "$", want: CurrencyUSD},
		{name: "iso code rejected", value: "EUR", wantErr: true},
		{name: "empty rejected", value: "", wantErr: true},
		{name: "pound rejected", value: "£", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateCurrency(tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateCurrency(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ValidateCurrency(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestValidateCurrency_ErrorListsAllowedSet(t *testing.T) {
	_, err := ValidateCurrency("GBP")
	if err == nil {
		t.Fatal("expected an error for unknown currency")
	}
	if !strings.Contains(err.Error(), "€ - $") {
		t.Errorf("error %q does not list the allowed currencies", err.Error())
	}
}

func TestValidatePlatform(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    Platform
		wantErr bool
	}{
		{name: "fiverr", value: "fiverr", want: PlatformFiverr},
		{name: "paypal", value: "paypal", want: PlatformPaypal},
		{name: "transfer", value: "transfer", want: PlatformTransfer},
		{name: "upwork", value: "upwork", want: PlatformUpwork},
		{name: "case sensitive", value: "Fiverr", wantErr: true},
		{name: "unknown", value: "stripe", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidatePlatform(tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidatePlatform(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ValidatePlatform(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestValidatePlatform_ErrorListsAllowedSet(t *testing.T) {
	_, err := ValidatePlatform("stripe")
	if err == nil {
		t.Fatal("expected an error for unknown platform")
	}
	if !strings.Contains(err.Error(), "fiverr - paypal - transfer - upwork") {
		t.Errorf("error %q does not list the allowed platforms", err.Error())
	}
}

func TestValidateMonth(t *testing.T) {
	tests := []struct {
		name    string
		value   int
		wantErr bool
	}{
		{name: "january", value: 1},
		{name: "december", value: 12},
		{name: "zero", value: 0, wantErr: true},
		{name: "thirteen", value: 13, wantErr: true},
		{name: "negative", value: -3, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateMonth(tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateMonth(%d) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.value {
				t.Errorf("ValidateMonth(%d) = %d, want %d", tt.value, got, tt.value)
			}
			if tt.wantErr && err.Error() != "The month must be a number between 1 and 12." {
				t.Errorf("unexpected error text: %q", err.Error())
			}
		})
	}
}
