package services

import (
	"errors"
	"unicode/utf8"

	goa "goa.design/goa/v3/pkg"

	"inquiryapi/gen/inquiry"
	apperrors "inquiryapi/pkg/errors"
)

const (
	// SubmitSuccessMessage is returned with the id of a stored inquiry
	SubmitSuccessMessage = "Anfrage erfolgreich übermittelt"

	uploadFailurePrefix   = "Fehler beim Datei-Upload: "
	databaseFailurePrefix = "Datenbankfehler: "
	invalidInputPrefix    = "Ungültige Eingabe: "

	// maxDiagnosticLength bounds the part of an error message taken from the
	// underlying failure
	maxDiagnosticLength = 100
)

// truncate shortens s to at most n runes
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}

// diagnostic returns the user-facing description of err
func diagnostic(err error) string {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return truncate(appErr.Detail(), maxDiagnosticLength)
	}
	return truncate(err.Error(), maxDiagnosticLength)
}

// InquiryBadRequest creates a properly formatted bad request error for the inquiry service
func InquiryBadRequest(err error) *goa.ServiceError {
	return inquiry.MakeBadRequest(errors.New(invalidInputPrefix + diagnostic(err)))
}

// InquiryUploadFailed creates a properly formatted upload error for the inquiry service
func InquiryUploadFailed(err error) *goa.ServiceError {
	return inquiry.MakeUploadFailed(errors.New(uploadFailurePrefix + diagnostic(err)))
}

// InquiryDatabaseError creates a properly formatted store error for the inquiry service
func InquiryDatabaseError(err error) *goa.ServiceError {
	return inquiry.MakeDatabaseError(errors.New(databaseFailurePrefix + diagnostic(err)))
}
