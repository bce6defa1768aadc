package errors

import "testing"

func TestSentinelMessages(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{ErrNotFound, "not found"},
		{ErrAlreadyExists, "already exists"},
		{ErrInvalidStatus, "invalid order status"},
		{ErrInvalidPaymentStatus, "invalid payment status"},
		{ErrProductMissing, "product missing during stock update"},
		{ErrInsufficientStock, "insufficient stock"},
		{ErrEmptyOrder, "order has no items"},
		{ErrInvalidQuantity, "invalid quantity"},
		{ErrForbidden, "forbidden"},
	}

	for _, tc := range cases {
		if tc.err.Error() != tc.want {
			t.Fatalf("expected %q, got %q", tc.want, tc.err.Error())
		}
	}
}
