package errorx

import (
	"errors"
	"fmt"
	"testing"
)

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrapf(cause, CodeDBError, "redis get key %s", "SMS_13800000000")

	if !errors.Is(err, cause) {
		t.Fatalf("expected wrapped error to match cause")
	}
	if got := err.Error(); got != "redis get key SMS_13800000000: connection refused" {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestGetCode(t *testing.T) {
	wrapped := fmt.Errorf("service: %w", New(CodeNoData, "验证码已过期"))
	if got := GetCode(wrapped); got != CodeNoData {
		t.Fatalf("expected %s got %s", CodeNoData, got)
	}
	if got := GetCode(errors.New("plain")); got != CodeServerError {
		t.Fatalf("expected %s for plain error got %s", CodeServerError, got)
	}
}

func TestIsMatchesByCode(t *testing.T) {
	err := Wrap(errors.New("bad json"), CodeParamErr, "参数错误")
	if !errors.Is(err, ErrParam) {
		t.Fatalf("expected errors.Is to match by code")
	}
	if errors.Is(err, ErrInternal) {
		t.Fatalf("different codes must not match")
	}
}
