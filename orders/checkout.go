package orders

import (
	"errors"
	"regexp"

	"everbloom/models"
)

// Pricing constants, in rupees.
const (
	FreeShippingThreshold = 1000
	FlatShippingFee       = 99
	CODSurcharge          = 50
)

var (
	emailRegex   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRegex   = regexp.MustCompile(`^\d{10}$`)
	pincodeRegex = regexp.MustCompile(`^\d{6}$`)
	upiRegex     = regexp.MustCompile(`^[a-zA-Z0-9._-]+@[a-zA-Z0-9]+$`)
)

// ValidateShipping returns the first failing check as a user-facing error.
func ValidateShipping(s models.ShippingInfo) error {
	if s.FullName == "" || s.Email == "" || s.Phone == "" ||
		s.Address == "" || s.City == "" || s.State == "" || s.Pincode == "" {
		return errors.New("Please fill in all required fields")
	}
	if !emailRegex.MatchString(s.Email) {
		return errors.New("Please enter a valid email address")
	}
	if !phoneRegex.MatchString(s.Phone) {
		return errors.New("Please enter a valid 10-digit phone number")
	}
	if !pincodeRegex.MatchString(s.Pincode) {
		return errors.New("Please enter a valid 6-digit pincode")
	}
	return nil
}

// ValidatePayment checks the method-specific fields. COD needs nothing
// beyond the method itself.
func ValidatePayment(p models.PaymentInfo) error {
	switch p.Method {
	case models.PayUPI:
		if p.UpiID == "" {
			return errors.New("Please enter your UPI ID")
		}
		if !upiRegex.MatchString(p.UpiID) {
			return errors.New("Please enter a valid UPI ID (e.g., name@upi)")
		}
	case models.PayCOD, models.PayGooglePay:
	default:
		return errors.New("Unsupported payment method")
	}
	return nil
}

// ShippingCost is free above the threshold, a flat fee otherwise.
func ShippingCost(subtotal int64) int64 {
	if subtotal > FreeShippingThreshold {
		return 0
	}
	return FlatShippingFee
}

// PayableTotal is what the customer hands over. The COD surcharge is charged
// at the door and deliberately not persisted into the order's shipping cost.
func PayableTotal(o models.Order) int64 {
	if o.PaymentInfo.Method == models.PayCOD {
		return o.Total + CODSurcharge
	}
	return o.Total
}
