package checkin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain digits", in: "0912345678", want: "0912345678"},
		{name: "dashes", in: "0912-345-678", want: "0912345678"},
		{name: "spaces and parentheses", in: "(09) 1234 5678", want: "0912345678"},
		{name: "full-width digits", in: "０９１２３４５６７８", want: "0912345678"},
		{name: "country code prefix", in: "+886 912 345 678", want: "886912345678"},
		{name: "no digits", in: "abc-", want: ""},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePhone(tt.in))
		})
	}
}

func TestMatchPhone(t *testing.T) {
	tests := []struct {
		name   string
		stored string
		query  string
		want   bool
	}{
		{name: "equal", stored: "0912345678", query: "0912345678", want: true},
		{name: "stored lost leading zero", stored: "912345678", query: "0912345678", want: true},
		{name: "query without leading zero", stored: "0912345678", query: "912345678", want: true},
		{name: "stored formatted", stored: "0912-345-678", query: "0912345678", want: true},
		{name: "different numbers", stored: "0912345678", query: "0987654321", want: false},
		{name: "empty stored", stored: "", query: "0912345678", want: false},
		{name: "empty query", stored: "0912345678", query: "", want: false},
		{name: "all zeros never match by trimming", stored: "0000", query: "000", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchPhone(tt.stored, NormalizePhone(tt.query)))
		})
	}
}
