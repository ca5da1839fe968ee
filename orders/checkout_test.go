package orders

import (
	"testing"

	"everbloom/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validShipping() models.ShippingInfo {
	return models.ShippingInfo{
		FullName: "Asha Verma",
		Email:    "asha@example.com",
		Phone:    "9876543210",
		Address:  "12 Lotus Lane",
		City:     "Pune",
		State:    "Maharashtra",
		Pincode:  "411001",
	}
}

func TestValidateShippingAccepts(t *testing.T) {
	require.NoError(t, ValidateShipping(validShipping()))
}

func TestValidateShippingRequiredFields(t *testing.T) {
	s := validShipping()
	s.City = ""
	err := ValidateShipping(s)
	require.Error(t, err)
	assert.Equal(t, "Please fill in all required fields", err.Error())
}

func TestValidateShippingPhone(t *testing.T) {
	s := validShipping()

	s.Phone = "12345"
	require.Error(t, ValidateShipping(s), "short phone must be rejected")

	s.Phone = "98765432101"
	require.Error(t, ValidateShipping(s), "long phone must be rejected")

	s.Phone = "9876543210"
	require.NoError(t, ValidateShipping(s))
}

func TestValidateShippingPincode(t *testing.T) {
	s := validShipping()

	s.Pincode = "4110"
	require.Error(t, ValidateShipping(s))

	s.Pincode = "41100a"
	require.Error(t, ValidateShipping(s))

	s.Pincode = "411001"
	require.NoError(t, ValidateShipping(s))
}

func TestValidateShippingEmail(t *testing.T) {
	s := validShipping()

	s.Email = "not-an-email"
	require.Error(t, ValidateShipping(s))

	s.Email = "a b@example.com"
	require.Error(t, ValidateShipping(s))

	s.Email = "asha@example.com"
	require.NoError(t, ValidateShipping(s))
}

func TestValidatePaymentUPI(t *testing.T) {
	p := models.PaymentInfo{Method: models.PayUPI}
	require.Error(t, ValidatePayment(p), "missing UPI id must be rejected")

	p.UpiID = "no-handle"
	require.Error(t, ValidatePayment(p))

	p.UpiID = "asha.verma@okbank"
	require.NoError(t, ValidatePayment(p))
}

func TestValidatePaymentCODNeedsNothing(t *testing.T) {
	require.NoError(t, ValidatePayment(models.PaymentInfo{Method: models.PayCOD}))
}

func TestValidatePaymentUnknownMethod(t *testing.T) {
	require.Error(t, ValidatePayment(models.PaymentInfo{Method: "barter"}))
}

func TestShippingCost(t *testing.T) {
	assert.Equal(t, int64(99), ShippingCost(900))
	assert.Equal(t, int64(0), ShippingCost(1200))
	// threshold itself is not free
	assert.Equal(t, int64(99), ShippingCost(1000))
	assert.Equal(t, int64(0), ShippingCost(1001))
}

func TestPayableTotalCODSurcharge(t *testing.T) {
	order := models.Order{Total: 999, PaymentInfo: models.PaymentInfo{Method: models.PayCOD}}
	assert.Equal(t, int64(1049), PayableTotal(order))

	order.PaymentInfo.Method = models.PayUPI
	assert.Equal(t, int64(999), PayableTotal(order))
}
