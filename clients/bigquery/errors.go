package bigquery

import (
	"errors"
	"net/http"
	"strings"

	"google.golang.org/api/googleapi"
)

func isNotFound(err error) bool {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return apiErr.Code == http.StatusNotFound
	}

	return false
}

func isAlreadyExists(err error) bool {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return apiErr.Code == http.StatusConflict
	}

	return false
}

func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusInternalServerError, http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusTooManyRequests:
			return true
		}
	}

	// Table metadata update quota errors come back as 400s with this reason.
	return strings.Contains(err.Error(), "Exceeded rate limits")
}
