package meeting

import "errors"

var ErrMeetingRequestNotFound = errors.New("meeting request not found")
