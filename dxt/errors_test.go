package dxt_test

import (
	"errors"
	"testing"

	"github.com/nbauma109/go-dxt-encoder/dxt"
)

func TestErrorString(t *testing.T) {
	cases := []struct {
		code dxt.ErrorCode
		want string
	}{
		{dxt.Success, "SUCCESS"},
		{dxt.ErrBadFormat, "ERR_BAD_FORMAT"},
		{dxt.ErrBadGeometry, "ERR_BAD_GEOMETRY"},
		{dxt.ErrShortInput, "ERR_SHORT_INPUT"},
		{dxt.ErrShortOutput, "ERR_SHORT_OUTPUT"},
		{dxt.ErrBadParam, "ERR_BAD_PARAM"},
		{dxt.ErrBadContext, "ERR_BAD_CONTEXT"},
	}
	for _, c := range cases {
		if got := dxt.ErrorString(c.code); got != c.want {
			t.Fatalf("ErrorString(%d): got %q want %q", uint32(c.code), got, c.want)
		}
	}

	if got := dxt.ErrorString(dxt.ErrorCode(0xDEADBEEF)); got != "" {
		t.Fatalf("ErrorString(unknown): got %q want empty", got)
	}
}

func TestErrorCodeOf(t *testing.T) {
	if got := dxt.ErrorCodeOf(nil); got != dxt.Success {
		t.Fatalf("ErrorCodeOf(nil): got %v want Success", got)
	}

	if _, err := dxt.ImageSize(5, 8, dxt.FormatDXT1); err == nil {
		t.Fatalf("ImageSize(5, 8): got nil error, want ErrBadGeometry")
	} else if got := dxt.ErrorCodeOf(err); got != dxt.ErrBadGeometry {
		t.Fatalf("ErrorCodeOf(bad geometry): got %v want ErrBadGeometry", got)
	}

	if got := dxt.ErrorCodeOf(errors.New("unrelated")); got != dxt.ErrBadParam {
		t.Fatalf("ErrorCodeOf(non-dxt): got %v want ErrBadParam", got)
	}
}

func TestErrorUnwrap(t *testing.T) {
	_, err := dxt.ImageSize(4, 4, dxt.FormatUnspecified)
	if err == nil {
		t.Fatalf("ImageSize(unspecified): got nil error")
	}
	var e *dxt.Error
	if !errors.As(err, &e) {
		t.Fatalf("error %T is not a *dxt.Error", err)
	}
	if e.Code != dxt.ErrBadFormat {
		t.Fatalf("Code: got %v want ErrBadFormat", e.Code)
	}
	if e.Unwrap() == nil {
		t.Fatalf("expected a wrapped cause carrying the message")
	}
}

func TestFormatAccessors(t *testing.T) {
	if got := dxt.FormatDXT1.BlockSize(); got != 8 {
		t.Fatalf("DXT1 block size: got %d want 8", got)
	}
	if got := dxt.FormatDXT3.BlockSize(); got != 16 {
		t.Fatalf("DXT3 block size: got %d want 16", got)
	}
	if got := dxt.FormatDXT5.BlockSize(); got != 16 {
		t.Fatalf("DXT5 block size: got %d want 16", got)
	}
	if got := dxt.FormatUnspecified.BlockSize(); got != 0 {
		t.Fatalf("unspecified block size: got %d want 0", got)
	}
	if got := dxt.FormatDXT5.String(); got != "DXT5" {
		t.Fatalf("String: got %q want DXT5", got)
	}
}
