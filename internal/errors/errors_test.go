package errors

import (
	"errors"
	"net/http"
	"testing"
)

func TestHTTPError(t *testing.T) {
	err := NewHTTPError(404, "DELETE", "/tasks/42", "task not found")

	expectedMsg := "HTTP 404 DELETE /tasks/42: task not found"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message %q, got %q", expectedMsg, err.Error())
	}

	if !IsNotFound(err) {
		t.Error("Expected HTTPError with 404 to be identified as NotFound")
	}

	if !errors.Is(err, ErrNotFound) {
		t.Error("Expected HTTPError with 404 to match ErrNotFound")
	}
}

func TestHTTPErrorWithCause(t *testing.T) {
	cause := errors.New("decode failure")
	err := NewHTTPErrorWithCause(500, "POST", "/tasks", "server error", cause)

	if !errors.Is(err, cause) {
		t.Error("Expected HTTPError to wrap the underlying cause")
	}
}

func TestHTTPErrorStatusMapping(t *testing.T) {
	tests := []struct {
		statusCode int
		expected   error
	}{
		{http.StatusNotFound, ErrNotFound},
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrUnauthorized},
		{http.StatusBadRequest, ErrInvalidInput},
		{http.StatusUnprocessableEntity, ErrInvalidInput},
	}

	for _, test := range tests {
		err := NewHTTPError(test.statusCode, "GET", "/test", "test error")
		if !errors.Is(err, test.expected) {
			t.Errorf("Expected HTTP %d to map to %v", test.statusCode, test.expected)
		}
	}
}

func TestHTTPError_ServerErrorIsNotNetwork(t *testing.T) {
	err := NewHTTPError(500, "GET", "/tasks", "boom")

	if IsNetwork(err) {
		t.Error("Expected HTTP 500 not to be classified as a network error")
	}
	if !IsHTTPStatus(err, 500) {
		t.Error("Expected IsHTTPStatus to identify status 500")
	}
}

func TestNetworkError(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewNetworkError("GET", "http://localhost:1/tasks", cause)

	expectedMsg := "network error on GET http://localhost:1/tasks: connection refused"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message %q, got %q", expectedMsg, err.Error())
	}

	if !IsNetwork(err) {
		t.Error("Expected NetworkError to be identified as network error")
	}

	if !errors.Is(err, cause) {
		t.Error("Expected NetworkError to wrap the underlying cause")
	}

	var netErr *NetworkError
	if !errors.As(error(err), &netErr) || netErr.Method != "GET" {
		t.Error("Expected to extract NetworkError with its method")
	}
}

func TestNetworkError_NilCause(t *testing.T) {
	err := NewNetworkError("DELETE", "/tasks/1", nil)

	expectedMsg := "network error on DELETE /tasks/1"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message %q, got %q", expectedMsg, err.Error())
	}
}

func TestConfigurationError(t *testing.T) {
	cause := errors.New("missing value")
	err := NewConfigurationError("api.base_url", "", "base URL is required", cause)

	expectedMsg := "configuration error in field 'api.base_url': base URL is required"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message %q, got %q", expectedMsg, err.Error())
	}

	if !IsConfiguration(err) {
		t.Error("Expected ConfigurationError to be identified as configuration error")
	}

	if !errors.Is(err, cause) {
		t.Error("Expected ConfigurationError to wrap the underlying cause")
	}
}

func TestConfigurationError_EmptyField(t *testing.T) {
	err := NewConfigurationError("", "value", "generic configuration error", nil)

	expectedMsg := "configuration error: generic configuration error"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message %q, got %q", expectedMsg, err.Error())
	}

	if err.Unwrap() != nil {
		t.Errorf("Expected unwrapped error to be nil, got %v", err.Unwrap())
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("href", "", "required", "task has no self link")

	expectedMsg := "validation error in field 'href': task has no self link"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message %q, got %q", expectedMsg, err.Error())
	}

	if !IsValidation(err) {
		t.Error("Expected ValidationError to be identified as validation error")
	}
}

func TestValidationError_EmptyField(t *testing.T) {
	err := NewValidationError("", "value", "rule", "generic validation error")

	expectedMsg := "validation error: generic validation error"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message %q, got %q", expectedMsg, err.Error())
	}
}

func TestMultiError(t *testing.T) {
	err1 := errors.New("first error")
	err2 := NewHTTPError(404, "DELETE", "/tasks/2", "")
	err3 := errors.New("third error")

	multiErr := NewMultiError([]error{err1, err2, err3})

	expectedMsg := "first error (and 2 more errors)"
	if multiErr.Error() != expectedMsg {
		t.Errorf("Expected error message %q, got %q", expectedMsg, multiErr.Error())
	}

	if !errors.Is(multiErr, err1) {
		t.Error("Expected MultiError to match first contained error")
	}

	if !IsNotFound(multiErr) {
		t.Error("Expected MultiError to match a contained 404")
	}

	var httpErr *HTTPError
	if !errors.As(multiErr, &httpErr) {
		t.Error("Expected to extract HTTPError from MultiError")
	}

	if len(multiErr.Unwrap()) != 3 {
		t.Errorf("Expected 3 unwrapped errors, got %d", len(multiErr.Unwrap()))
	}
}

func TestMultiErrorEmptyAndSingle(t *testing.T) {
	if msg := NewMultiError(nil).Error(); msg != "no errors" {
		t.Errorf("Expected 'no errors' message, got %q", msg)
	}

	single := errors.New("only error")
	if msg := NewMultiError([]error{single}).Error(); msg != "only error" {
		t.Errorf("Expected single error message, got %q", msg)
	}
}

func TestJoin(t *testing.T) {
	err1 := errors.New("error 1")
	err2 := errors.New("error 2")

	var multiErr *MultiError
	if !errors.As(Join(err1, nil, err2, nil), &multiErr) {
		t.Fatal("Expected joined error with nils to be MultiError")
	}
	if len(multiErr.Errors) != 2 {
		t.Errorf("Expected 2 errors after filtering nils, got %d", len(multiErr.Errors))
	}

	if single := Join(err1); single != err1 {
		t.Error("Expected single error to be returned as-is")
	}

	if onlyNils := Join(nil, nil); onlyNils != nil {
		t.Error("Expected joining only nils to return nil")
	}
}

func TestIsHTTPStatus_NonHTTPError(t *testing.T) {
	if IsHTTPStatus(errors.New("not an HTTP error"), 404) {
		t.Error("Expected IsHTTPStatus to return false for non-HTTP error")
	}
}
