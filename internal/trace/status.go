package trace

// SpanStatus is the closed set of trace outcome statuses. The zero value
// means no status has been set; it is omitted from serialized output.
type SpanStatus int

const (
	StatusUndefined SpanStatus = iota
	StatusOk
	StatusCancelled
	StatusUnknown
	StatusInvalidArgument
	StatusDeadlineExceeded
	StatusNotFound
	StatusAlreadyExists
	StatusPermissionDenied
	StatusResourceExhausted
	StatusFailedPrecondition
	StatusAborted
	StatusOutOfRange
	StatusUnimplemented
	StatusInternalError
	StatusUnavailable
	StatusDataLoss
	StatusUnauthenticated
	StatusUnknownError
)

var statusNames = map[SpanStatus]string{
	StatusOk:                 "ok",
	StatusCancelled:          "cancelled",
	StatusUnknown:            "unknown",
	StatusInvalidArgument:    "invalid_argument",
	StatusDeadlineExceeded:   "deadline_exceeded",
	StatusNotFound:           "not_found",
	StatusAlreadyExists:      "already_exists",
	StatusPermissionDenied:   "permission_denied",
	StatusResourceExhausted:  "resource_exhausted",
	StatusFailedPrecondition: "failed_precondition",
	StatusAborted:            "aborted",
	StatusOutOfRange:         "out_of_range",
	StatusUnimplemented:      "unimplemented",
	StatusInternalError:      "internal_error",
	StatusUnavailable:        "unavailable",
	StatusDataLoss:           "data_loss",
	StatusUnauthenticated:    "unauthenticated",
	StatusUnknownError:       "unknown_error",
}

// String returns the wire name of the status, or "" for the zero value.
func (s SpanStatus) String() string {
	return statusNames[s]
}

// StatusFromHTTP maps an HTTP response code onto the status taxonomy.
// Total and deterministic over all integers: 2xx is Ok, the codes below
// have dedicated mappings, everything else is UnknownError.
func StatusFromHTTP(code int) SpanStatus {
	if code >= 200 && code <= 299 {
		return StatusOk
	}
	switch code {
	case 400:
		return StatusInvalidArgument
	case 401:
		return StatusUnauthenticated
	case 403:
		return StatusPermissionDenied
	case 404:
		return StatusNotFound
	case 409:
		return StatusAlreadyExists
	case 413:
		return StatusFailedPrecondition
	case 429:
		return StatusResourceExhausted
	case 499:
		return StatusCancelled
	case 500:
		return StatusInternalError
	case 501:
		return StatusUnimplemented
	case 503:
		return StatusUnavailable
	case 504:
		return StatusDeadlineExceeded
	default:
		return StatusUnknownError
	}
}
