package models

// SavedData describes the cells written for one handled answer
type SavedData struct {
	Timestamp      string `json:"timestamp"`
	Name           string `json:"name"`
	PhoneNumber    string `json:"phoneNumber"`
	QuestionNumber int    `json:"questionNumber"`
	Question       string `json:"question"`
	Answer         string `json:"answer"`

	// Row is the 1-based table row holding the session
	Row int `json:"row"`
}

// AnswerPayload is the inbound body accepted by the aggregator. Name is an
// accepted alias for PlayerName.
type AnswerPayload struct {
	PlayerName  string `json:"playerName"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
	Scene       string `json:"scene"`
	Question    string `json:"question"`
	Answer      string `json:"answer"`
	Timestamp   string `json:"timestamp"`
}
