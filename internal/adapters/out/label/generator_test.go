package label_test

import (
	"testing"

	"parcels/internal/adapters/out/label"
	"parcels/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_ProducesPDF(t *testing.T) {
	weight := 2.5
	dimensions := "30x20x10 cm"
	data := label.Data{
		TrackingNumber:   "PCL1717171717ABC12",
		SenderName:       "Acme Warehouse",
		SenderAddress:    "1 Depot Road",
		RecipientName:    "Jordan Reyes",
		RecipientAddress: "2 Home Street\nSpringfield",
		Weight:           &weight,
		Dimensions:       &dimensions,
	}

	out, err := label.NewGenerator().Generate(data)
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestGenerate_OptionalFieldsMayBeNil(t *testing.T) {
	data := label.Data{
		TrackingNumber:   "PCL1717171717XYZ89",
		SenderName:       "Acme Warehouse",
		SenderAddress:    "1 Depot Road",
		RecipientName:    "Jordan Reyes",
		RecipientAddress: "2 Home Street",
	}

	out, err := label.NewGenerator().Generate(data)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestGenerate_RequiresTrackingNumber(t *testing.T) {
	_, err := label.NewGenerator().Generate(label.Data{})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
