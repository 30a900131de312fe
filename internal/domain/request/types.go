package request

type Status string

const (
	StatusPending    Status = "pending"
	StatusQuoted     Status = "quoted"
	StatusAccepted   Status = "accepted"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusQuoted, StatusAccepted, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// HasWinner reports whether a request in this status must carry a winning agency.
func (s Status) HasWinner() bool {
	return s == StatusAccepted || s == StatusInProgress || s == StatusCompleted
}
