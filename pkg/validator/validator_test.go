package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	ItemType string `json:"item_type" validate:"required,item_type"`
	Quantity int    `json:"quantity" validate:"gt=0"`
}

func TestValidateStruct_OK(t *testing.T) {
	assert.Nil(t, ValidateStruct(sample{ItemType: "raw_material", Quantity: 3}))
}

func TestValidateStruct_UsaNombresJSON(t *testing.T) {
	errs := ValidateStruct(sample{ItemType: "service", Quantity: 0})
	require.Len(t, errs, 2)

	assert.Equal(t, "item_type", errs[0].Field)
	assert.Equal(t, "item_type", errs[0].Tag)
	assert.Equal(t, "quantity", errs[1].Field)
	assert.Equal(t, "gt", errs[1].Tag)
	assert.Equal(t, "item_type: item_type; quantity: gt=0", Summary(errs))
}
