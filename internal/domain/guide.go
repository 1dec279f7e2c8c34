package domain

// AudioTrack is one pre-written narration segment of an audio guide
type AudioTrack struct {
	ID         string `json:"id"`
	ActivityID string `json:"activityId"`
	Title      string `json:"title"`
	Text       string `json:"text"`
	Lang       string `json:"lang"` // BCP 47 tag passed to the synthesizer
}

// Pronunciation is a phrasebook entry for local place names
type Pronunciation struct {
	Word       string `json:"word"`
	Phonetic   string `json:"phonetic"`
	Simplified string `json:"simplified"`
	Meaning    string `json:"meaning"`
}
