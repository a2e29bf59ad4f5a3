package models

// Scale is one questionnaire instrument from the backend catalogue.
type Scale struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type ScaleOption struct {
	Text  string `json:"text"`
	Score int    `json:"score"`
}

type ScaleQuestion struct {
	Number  int           `json:"number"`
	Text    string        `json:"text"`
	Options []ScaleOption `json:"options"`
}
