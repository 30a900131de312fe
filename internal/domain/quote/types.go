package quote

type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
	StatusExpired  Status = "expired"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected, StatusExpired:
		return true
	default:
		return false
	}
}

// IsLive reports whether the quote still occupies the agency's single slot on a request.
func (s Status) IsLive() bool {
	return s == StatusPending || s == StatusAccepted
}
