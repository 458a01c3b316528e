package controllers

import (
	"testing"

	"github.com/modamart/ModaMart/models"
	"github.com/stretchr/testify/assert"
)

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"S", "M", "L"}, splitList("S,M,L"))
	assert.Equal(t, []string{"S", "M"}, splitList(" S , M , "))
	assert.Empty(t, splitList(""))
	assert.Empty(t, splitList(" , ,"))
}

func TestProductRecordStatus(t *testing.T) {
	active := productRecord(models.Product{Name: "Tee", IsActive: true})
	assert.Equal(t, "active", active["status"])

	inactive := productRecord(models.Product{Name: "Tee", IsActive: false})
	assert.Equal(t, "inactive", inactive["status"])
}

func TestProductRecordCarriesDiscountedPrice(t *testing.T) {
	record := productRecord(models.Product{Price: 100, DiscountPercentage: 10})
	assert.Equal(t, 90.0, record["discounted_price"])
}
