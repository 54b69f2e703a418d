package storeclient

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// CodeNoRows - код ответа хранилища, когда Single() не нашел строк.
const CodeNoRows = "PGRST116"

// Error - ошибка, о которой сообщило само хранилище (а не транспорт).
type Error struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details"`
	Hint    string `json:"hint"`
}

func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "store error (status %d", e.Status)
	if e.Code != "" {
		fmt.Fprintf(&b, ", code %s", e.Code)
	}
	b.WriteString(")")
	if e.Message != "" {
		b.WriteString(": " + e.Message)
	}
	if e.Details != "" {
		b.WriteString(" (" + e.Details + ")")
	}
	return b.String()
}

// NotFound - true, если Single() не нашел строк.
func (e *Error) NotFound() bool {
	return e.Code == CodeNoRows
}

// Temporary - true для ошибок на стороне хранилища и проблем с доступом (ключ, лимиты).
func (e *Error) Temporary() bool {
	return e.Status >= http.StatusInternalServerError ||
		e.Status == http.StatusUnauthorized ||
		e.Status == http.StatusForbidden ||
		e.Status == http.StatusTooManyRequests
}

func decodeError(status int, raw []byte) *Error {
	storeErr := &Error{}
	if err := json.Unmarshal(raw, storeErr); err != nil || (storeErr.Code == "" && storeErr.Message == "") {
		storeErr = &Error{Message: strings.TrimSpace(string(raw))}
	}
	storeErr.Status = status
	if storeErr.Message == "" {
		storeErr.Message = http.StatusText(status)
	}
	return storeErr
}
