package caesar

import (
	"context"
	"fmt"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"
)

// WordSet reports whether a token is a known word.
type WordSet interface {
	Contains(word string) bool
}

// ShiftScore is the number of dictionary words found when the ciphertext is
// decoded under the assumption that it was encrypted with Shift.
type ShiftScore struct {
	Shift int `json:"shift"`
	Score int `json:"score"`
}

// DecodeResult is the encryption shift chosen by Decrypt and the plaintext
// recovered by undoing it.
type DecodeResult struct {
	Shift     int    `json:"shift"`
	Plaintext string `json:"plaintext"`
}

// DecryptorOption configures a Decryptor.
type DecryptorOption func(*Decryptor)

// WithConcurrency limits how many shifts are scored at once. Values below 1
// are ignored.
func WithConcurrency(n int) DecryptorOption {
	return func(d *Decryptor) {
		if n > 0 {
			d.concurrency = n
		}
	}
}

// WithObserver registers fn to be called after each shift is scored. fn may
// be called from several goroutines at once.
func WithObserver(fn func(ShiftScore)) DecryptorOption {
	return func(d *Decryptor) {
		d.observe = fn
	}
}

// Decryptor recovers the plaintext of a ciphertext by trying every shift.
type Decryptor struct {
	text        string
	words       WordSet
	concurrency int
	observe     func(ShiftScore)
}

// NewDecryptor prepares text for brute-force decryption against words.
func NewDecryptor(text string, words WordSet, opts ...DecryptorOption) (*Decryptor, error) {
	if words == nil {
		return nil, ErrNoDictionary
	}
	d := &Decryptor{
		text:        text,
		words:       words,
		concurrency: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Candidate returns the ciphertext decoded as if it had been encrypted with
// shift.
func (d *Decryptor) Candidate(shift int) string {
	return BuildMap(shift).Inverse().Apply(d.text)
}

// ScoreShift counts the space-separated tokens of the candidate plaintext for
// shift that are dictionary words.
func (d *Decryptor) ScoreShift(shift int) ShiftScore {
	shift = NormalizeShift(shift)
	candidate := d.Candidate(shift)

	score := 0
	for _, token := range strings.Split(candidate, " ") {
		if d.words.Contains(token) {
			score++
		}
	}
	return ShiftScore{Shift: shift, Score: score}
}

// Scores evaluates all 26 shifts concurrently and returns their scores
// ordered by shift.
func (d *Decryptor) Scores(ctx context.Context) ([]ShiftScore, error) {
	scores := make([]ShiftScore, AlphabetSize)

	g := new(errgroup.Group)
	g.SetLimit(d.concurrency)
	for shift := 0; shift < AlphabetSize; shift++ {
		shift := shift
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			scores[shift] = d.ScoreShift(shift)
			if d.observe != nil {
				d.observe(scores[shift])
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("scoring shifts: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("scoring shifts: %w", err)
	}
	return scores, nil
}

// Best returns the highest score. Only a strictly greater score replaces the
// current best, so on a tie the earliest entry wins.
func Best(scores []ShiftScore) ShiftScore {
	if len(scores) == 0 {
		return ShiftScore{}
	}
	best := scores[0]
	for _, s := range scores[1:] {
		if s.Score > best.Score {
			best = s
		}
	}
	return best
}

// Decrypt picks the shift with the most dictionary words, preferring the
// smallest shift on ties, and returns it with the decoded text. The reported
// shift is the one the message was encrypted with, so "khoor zruog" yields 3.
func (d *Decryptor) Decrypt(ctx context.Context) (DecodeResult, error) {
	scores, err := d.Scores(ctx)
	if err != nil {
		return DecodeResult{}, err
	}
	best := Best(scores)
	return DecodeResult{
		Shift:     best.Shift,
		Plaintext: d.Candidate(best.Shift),
	}, nil
}
