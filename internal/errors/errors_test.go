package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	err := Tablef("tier %d: min (%v) must be below max (%v)", 2, 100, 50)
	msg := err.Error()
	if !strings.Contains(msg, "TABLE_ERROR") {
		t.Errorf("message missing type: %s", msg)
	}
	if !strings.Contains(msg, "tier 2") {
		t.Errorf("message missing detail: %s", msg)
	}
}

func TestIsType(t *testing.T) {
	if !IsType(Input("bad quantity"), TypeInput) {
		t.Error("IsType failed for matching type")
	}
	if IsType(Input("bad quantity"), TypeRate) {
		t.Error("IsType matched the wrong type")
	}
	if IsType(stderrors.New("plain"), TypeInput) {
		t.Error("IsType matched a non-domain error")
	}
	if IsType(nil, TypeInput) {
		t.Error("IsType matched nil")
	}
}

func TestWrapUnwrap(t *testing.T) {
	cause := stderrors.New("file truncated")
	err := Parsing("reading scenario", cause)

	if !stderrors.Is(err, cause) {
		t.Error("wrapped cause not reachable via errors.Is")
	}
	if !strings.Contains(err.Error(), "file truncated") {
		t.Errorf("message missing cause: %s", err.Error())
	}
}

func TestWithContext(t *testing.T) {
	err := Table("min above max").WithContext("table", "leads")
	if err.Context["table"] != "leads" {
		t.Errorf("Context = %+v", err.Context)
	}
	// Context must not change the type.
	if !IsType(err, TypeTable) {
		t.Error("WithContext changed the error type")
	}
}
