package attendance

import "errors"

var (
	ErrAlreadyClockedIn = errors.New("employee already clocked in today")
	ErrNoOpenRecord     = errors.New("no open attendance record for today")
)
