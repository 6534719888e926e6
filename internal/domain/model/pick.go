package model

// PickRequest carries the user supplied company tags and accepted difficulties.
// It doubles as the event payload of the cloud function entry point.
type PickRequest struct {
	Companies    []string `json:"companies"`
	Difficulties []string `json:"difficulties"`
}

// Pick is the outcome of a single run.
type Pick struct {
	Company string
	Problem Problem
	URL     string
}
