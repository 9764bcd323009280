package models

// Outcome is the face a coin lands on
type Outcome string

// Coin faces
const (
	Heads Outcome = "heads"
	Tails Outcome = "tails"
)

// Call results
const (
	ResultWin  = "win"
	ResultLose = "lose"
)

// Valid reports whether o is heads or tails
func (o Outcome) Valid() bool {
	return o == Heads || o == Tails
}

// Response types

type FlipResponse struct {
	Flip Outcome `json:"flip"`
}

// Summary only carries outcomes that occurred at least once
type BatchResult struct {
	Raw     []Outcome       `json:"raw"`
	Summary map[Outcome]int `json:"summary"`
}

type CallResult struct {
	Call   Outcome `json:"call"`
	Flip   Outcome `json:"flip"`
	Result string  `json:"result"`
}

// Access log

// AccessLogRecord is one row of the accesslog table.
// Time is epoch milliseconds at request arrival.
type AccessLogRecord struct {
	ID          int64   `json:"id"`
	RemoteAddr  string  `json:"remoteaddr"`
	RemoteUser  *string `json:"remoteuser"`
	Time        int64   `json:"time"`
	Method      string  `json:"method"`
	URL         string  `json:"url"`
	Protocol    string  `json:"protocol"`
	HTTPVersion string  `json:"httpversion"`
	Secure      bool    `json:"secure"`
	Status      int     `json:"status"`
	Referer     *string `json:"referer"`
	UserAgent   *string `json:"useragent"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
