package shipment_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"shipment/internal/core/domain/model/shipment"
	"shipment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	cases := map[shipment.Status]string{
		shipment.Draft:     "Draft",
		shipment.Confirmed: "Confirmed",
		shipment.Loaded:    "Loaded",
		shipment.Shipped:   "Shipped",
		shipment.InTransit: "In Transit",
		shipment.Arrived:   "Arrived",
		shipment.Delivered: "Delivered",
		shipment.Cancelled: "Cancelled",
		shipment.Unknown:   "Unknown",
		shipment.Status(99): "Unknown",
	}

	for status, expected := range cases {
		assert.Equal(t, expected, status.String())
	}
}

func TestParseStatus(t *testing.T) {
	t.Run("parses every wire name", func(t *testing.T) {
		for _, s := range shipment.Workflow().States() {
			parsed, err := shipment.ParseStatus(s.String())

			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("rejects unknown names with unknown-state", func(t *testing.T) {
		for _, name := range []string{"", "InTransit", "in transit", "Customs Clearance", "Unknown"} {
			t.Run(fmt.Sprintf("%q", name), func(t *testing.T) {
				_, err := shipment.ParseStatus(name)

				require.ErrorIs(t, err, shipment.ErrUnknownState)

				var transitionErr *shipment.TransitionError
				require.ErrorAs(t, err, &transitionErr)
				assert.Equal(t, "unknown-state", transitionErr.Reason())
			})
		}
	})
}

func TestStatus_Validate(t *testing.T) {
	for _, s := range shipment.Workflow().States() {
		require.NoError(t, s.Validate(), s.String())
	}

	err := shipment.Unknown.Validate()
	require.Error(t, err)
	assert.IsType(t, &errs.ValueIsInvalidError{}, err)
	assert.Contains(t, err.Error(), "0 is not a valid status")
}

func TestStatus_Predicates(t *testing.T) {
	assert.True(t, shipment.Delivered.IsTerminal())
	assert.True(t, shipment.Cancelled.IsTerminal())
	assert.False(t, shipment.Arrived.IsTerminal())

	for _, s := range []shipment.Status{shipment.Shipped, shipment.InTransit, shipment.Arrived, shipment.Delivered} {
		assert.True(t, s.IsShippedOrLater(), s.String())
	}
	for _, s := range []shipment.Status{shipment.Draft, shipment.Confirmed, shipment.Loaded, shipment.Cancelled} {
		assert.False(t, s.IsShippedOrLater(), s.String())
	}
}

func TestStatus_JSON(t *testing.T) {
	type payload struct {
		Status shipment.Status `json:"status"`
	}

	raw, err := json.Marshal(payload{Status: shipment.InTransit})
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"In Transit"}`, string(raw))

	var decoded payload
	require.NoError(t, json.Unmarshal([]byte(`{"status":"Arrived"}`), &decoded))
	assert.Equal(t, shipment.Arrived, decoded.Status)

	require.Error(t, json.Unmarshal([]byte(`{"status":"Lost"}`), &decoded))

	_, err = json.Marshal(payload{})
	require.Error(t, err)
}
