package caesar

import "sync"

// Encryptor holds a plaintext together with the substitution map and
// ciphertext derived from its current shift. The plaintext never changes;
// ChangeShift re-derives everything from it.
type Encryptor struct {
	text string

	mu         sync.RWMutex
	shift      int
	encrypting SubstitutionMap
	ciphertext string
}

// NewEncryptor encrypts text with shift and caches the result.
func NewEncryptor(text string, shift int) *Encryptor {
	e := &Encryptor{text: text}
	e.derive(shift)
	return e
}

// Text returns the original plaintext.
func (e *Encryptor) Text() string {
	return e.text
}

// Shift returns the current shift in [0, 25].
func (e *Encryptor) Shift() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.shift
}

// EncryptingMap returns a copy of the current substitution map.
func (e *Encryptor) EncryptingMap() SubstitutionMap {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.encrypting.Clone()
}

// Ciphertext returns the text encrypted with the current shift.
func (e *Encryptor) Ciphertext() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.ciphertext
}

// State returns the current shift together with its ciphertext, read under
// one lock so the pair always matches.
func (e *Encryptor) State() (shift int, ciphertext string) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.shift, e.ciphertext
}

// ChangeShift switches to newShift and returns the new ciphertext. The
// returned text is always the encryption under NormalizeShift(newShift), even
// if another goroutine changes the shift again before the caller reads it.
func (e *Encryptor) ChangeShift(newShift int) string {
	return e.derive(newShift)
}

func (e *Encryptor) derive(shift int) string {
	shift = NormalizeShift(shift)
	m := BuildMap(shift)
	ciphertext := m.Apply(e.text)

	e.mu.Lock()
	defer e.mu.Unlock()
	e.shift = shift
	e.encrypting = m
	e.ciphertext = ciphertext
	return ciphertext
}
