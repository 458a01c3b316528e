package utils

import (
	"github.com/modamart/ModaMart/config"
	"github.com/modamart/ModaMart/models"
)

// GetDeliveryCharge returns the delivery charge for a pincode. Pincodes
// without an active rule (and empty pincodes) use the default charge.
func GetDeliveryCharge(pincode string, orderAmount float64) float64 {
	if pincode == "" || config.DB == nil {
		return DefaultDeliveryCharge
	}

	var deliveryCharge models.DeliveryCharge
	if err := config.DB.Where("pincode = ? AND is_active = ?", pincode, true).
		First(&deliveryCharge).Error; err == nil {
		LogInfo("Found delivery charge: %.2f for pincode %s", deliveryCharge.Charge, pincode)
		return deliveryCharge.Charge
	}

	LogInfo("Pincode %s has no delivery rule, using default charge: %.2f", pincode, DefaultDeliveryCharge)
	return DefaultDeliveryCharge
}

// IsDeliveryAvailable checks if a delivery rule exists for the pincode
func IsDeliveryAvailable(pincode string) bool {
	var count int64
	config.DB.Model(&models.DeliveryCharge{}).
		Where("pincode = ? AND is_active = ?", pincode, true).
		Count(&count)
	return count > 0
}
