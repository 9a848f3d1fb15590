package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingRequest_ParsedMerchantID(t *testing.T) {
	tests := []struct {
		body   string
		want   int64
		wantOK bool
	}{
		{`{"merchantId":2}`, 2, true},
		{`{"merchantId":2.0}`, 2, true},
		{`{"merchantId":2.5}`, 2, true},
		{`{"merchantId":-1}`, -1, true},
		{`{"merchantId":"3"}`, 3, true},
		{`{"merchantId":" 4 "}`, 4, true},
		{`{"merchantId":"5abc"}`, 5, true},
		{`{"merchantId":"+6"}`, 6, true},
		{`{"merchantId":"gym"}`, 0, false},
		{`{"merchantId":""}`, 0, false},
		{`{"merchantId":"-"}`, 0, false},
		{`{"merchantId":"99999999999999999999"}`, 0, false},
		{`{"merchantId":1e300}`, 0, false},
		{`{"merchantId":true}`, 0, false},
		{`{"merchantId":null}`, 0, false},
		{`{"merchantId":[2]}`, 0, false},
		{`{"merchantId":{"id":2}}`, 0, false},
		{`{}`, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			var req BookingRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))
			got, ok := req.ParsedMerchantID()
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBookingRequest_decodeErrors(t *testing.T) {
	for _, body := range []string{
		`{"merchantId":`,
		`{"userId":"1"}`,
		`{"timeSlot":10}`,
	} {
		var req BookingRequest
		assert.Error(t, json.Unmarshal([]byte(body), &req), body)
	}
}
