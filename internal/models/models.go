package models

// EncryptResult describes the current state of an encryption session
type EncryptResult struct {
	Session    string `json:"session"`
	Shift      int    `json:"shift"`
	Ciphertext string `json:"ciphertext"`
}

// Candidate is one scored decoding of a ciphertext
type Candidate struct {
	Shift     int    `json:"shift"`
	Score     int    `json:"score"`
	Plaintext string `json:"plaintext"`
}

type DecryptResult struct {
	Shift      int         `json:"shift"`
	Plaintext  string      `json:"plaintext"`
	Candidates []Candidate `json:"candidates,omitempty"`
	Stats      struct {
		DictionarySize int `json:"dictionarySize"`
		TimeElapsed    int `json:"timeElapsedMs"`
	} `json:"stats"`
}
