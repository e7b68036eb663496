package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"github.com/NivBraz/shiftcipher/internal/config"
	"github.com/NivBraz/shiftcipher/internal/models"
	"github.com/NivBraz/shiftcipher/pkg/caesar"
	"github.com/NivBraz/shiftcipher/pkg/fetcher"
	"github.com/NivBraz/shiftcipher/pkg/parser"
	"github.com/NivBraz/shiftcipher/pkg/wordbank"
)

// ErrUnknownSession is returned for session IDs that were never issued or
// have been closed.
var ErrUnknownSession = errors.New("unknown session")

// App represents the main application
type App struct {
	config   *config.Config
	logger   *zap.Logger
	fetcher  *fetcher.Fetcher
	wordBank *wordbank.WordBank
	progress io.Writer

	mu       sync.RWMutex
	sessions map[string]*caesar.Encryptor
}

// Option customizes an App
type Option func(*App)

// WithLogger sets the logger; the default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(a *App) {
		a.logger = logger
	}
}

// WithProgressWriter sends progress bars to w.
func WithProgressWriter(w io.Writer) Option {
	return func(a *App) {
		a.progress = w
	}
}

// WithWordBank skips dictionary loading and uses wb instead.
func WithWordBank(wb *wordbank.WordBank) Option {
	return func(a *App) {
		a.wordBank = wb
	}
}

// New creates a new instance of the application and loads its dictionary
func New(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	a := &App{
		config:   cfg,
		logger:   zap.NewNop(),
		progress: io.Discard,
		sessions: make(map[string]*caesar.Encryptor),
	}
	for _, opt := range opts {
		opt(a)
	}

	a.fetcher = fetcher.New(fetcher.FetcherConfig{
		RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
		Burst:             cfg.RateLimit.Burst,
		Timeout:           time.Duration(cfg.HTTPClient.Timeout) * time.Second,
		UserAgent:         cfg.HTTPClient.UserAgent,
		MaxRetries:        cfg.HTTPClient.MaxRetries,
		InitialBackoff:    time.Duration(cfg.HTTPClient.RetryDelay) * time.Second,
	})

	if a.wordBank == nil {
		wordBankCtx, cancel := context.WithTimeout(ctx, time.Duration(cfg.HTTPClient.Timeout*(cfg.HTTPClient.MaxRetries+1))*time.Second)
		defer cancel()

		wb, err := a.loadWordBank(wordBankCtx)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize word bank: %w", err)
		}
		a.wordBank = wb
	}

	return a, nil
}

// WordBank returns the dictionary used for decryption
func (a *App) WordBank() *wordbank.WordBank {
	return a.wordBank
}

// Encrypt encrypts text with shift and opens a session for later shift changes
func (a *App) Encrypt(text string, shift int) models.EncryptResult {
	enc := caesar.NewEncryptor(text, shift)
	id := uuid.NewString()
	shift, ciphertext := enc.State()

	a.mu.Lock()
	a.sessions[id] = enc
	a.mu.Unlock()

	a.logger.Debug("Opened encryption session",
		zap.String("session", id),
		zap.Int("shift", shift),
		zap.Int("length", len(text)))

	return models.EncryptResult{
		Session:    id,
		Shift:      shift,
		Ciphertext: ciphertext,
	}
}

// ChangeShift re-encrypts the session's original text with newShift. The
// result pairs the normalized newShift with its own ciphertext, whatever other
// callers do to the session concurrently.
func (a *App) ChangeShift(session string, newShift int) (models.EncryptResult, error) {
	a.mu.RLock()
	enc, ok := a.sessions[session]
	a.mu.RUnlock()
	if !ok {
		return models.EncryptResult{}, fmt.Errorf("%w: %s", ErrUnknownSession, session)
	}

	shift := caesar.NormalizeShift(newShift)
	ciphertext := enc.ChangeShift(shift)
	a.logger.Debug("Changed session shift",
		zap.String("session", session),
		zap.Int("shift", shift))

	return models.EncryptResult{
		Session:    session,
		Shift:      shift,
		Ciphertext: ciphertext,
	}, nil
}

// CloseSession forgets a session. It reports whether the session existed.
func (a *App) CloseSession(session string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	_, ok := a.sessions[session]
	delete(a.sessions, session)
	return ok
}

// Decrypt finds the most likely shift for ciphertext
func (a *App) Decrypt(ctx context.Context, ciphertext string) (*models.DecryptResult, error) {
	startTime := time.Now()

	bar := a.newBar(caesar.AlphabetSize, "Scoring shifts...")
	d, err := caesar.NewDecryptor(ciphertext, a.wordBank,
		caesar.WithConcurrency(a.config.Concurrency),
		caesar.WithObserver(func(caesar.ShiftScore) {
			bar.Add(1)
		}))
	if err != nil {
		return nil, err
	}

	result := &models.DecryptResult{}
	if a.config.Output.IncludeScores {
		scores, err := d.Scores(ctx)
		if err != nil {
			return nil, err
		}
		best := caesar.Best(scores)
		result.Shift = best.Shift
		result.Plaintext = d.Candidate(best.Shift)
		result.Candidates = topCandidates(d, scores, a.config.Output.TopCandidates)
	} else {
		decoded, err := d.Decrypt(ctx)
		if err != nil {
			return nil, err
		}
		result.Shift = decoded.Shift
		result.Plaintext = decoded.Plaintext
	}
	bar.Finish()

	result.Stats.DictionarySize = a.wordBank.Len()
	result.Stats.TimeElapsed = int(time.Since(startTime).Milliseconds())

	a.logger.Info("Decrypted message",
		zap.Int("shift", result.Shift),
		zap.Int("length", len(ciphertext)),
		zap.Duration("elapsed", time.Since(startTime)))

	return result, nil
}

// Helper functions

func (a *App) newBar(max int, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(max,
		progressbar.OptionSetWriter(a.progress),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWidth(30),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))
}

func (a *App) loadWordBank(ctx context.Context) (*wordbank.WordBank, error) {
	cfg := a.config.Dictionary
	bar := a.newBar(-1, "Loading word bank...")
	defer bar.Finish()

	var (
		wb     *wordbank.WordBank
		source string
		err    error
	)
	switch {
	case cfg.File != "":
		source = cfg.File
		wb, err = loadWordBankFile(cfg.File, cfg.Format)
	case cfg.URL != "":
		source = cfg.URL
		wb, err = a.fetchWordBank(ctx, cfg.URL, cfg.Format)
	default:
		source = "embedded"
		wb = wordbank.Default()
	}
	if err != nil {
		return nil, err
	}
	bar.Add(wb.Len())

	a.logger.Info("Word bank loaded",
		zap.String("source", source),
		zap.String("format", cfg.Format),
		zap.Int("words", wb.Len()))
	return wb, nil
}

func loadWordBankFile(path, format string) (*wordbank.WordBank, error) {
	if format == config.FormatText {
		return wordbank.LoadFile(path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", wordbank.ErrIO, err)
	}
	return parseWordBank(content, format)
}

func (a *App) fetchWordBank(ctx context.Context, url, format string) (*wordbank.WordBank, error) {
	content, err := a.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to fetch %s: %v", wordbank.ErrIO, url, err)
	}
	return parseWordBank(content, format)
}

func parseWordBank(content []byte, format string) (*wordbank.WordBank, error) {
	if format == config.FormatHTML {
		words, err := parser.ParseHTMLWordBank(content)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", wordbank.ErrIO, err)
		}
		return wordbank.FromWords(words)
	}
	return wordbank.FromWords(parser.ParseWordBank(content))
}

// topCandidates returns the n best decodings, highest score first and
// smallest shift first among equal scores
func topCandidates(d *caesar.Decryptor, scores []caesar.ShiftScore, n int) []models.Candidate {
	ranked := make([]caesar.ShiftScore, len(scores))
	copy(ranked, scores)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score == ranked[j].Score {
			return ranked[i].Shift < ranked[j].Shift
		}
		return ranked[i].Score > ranked[j].Score
	})

	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}

	candidates := make([]models.Candidate, 0, len(ranked))
	for _, s := range ranked {
		candidates = append(candidates, models.Candidate{
			Shift:     s.Shift,
			Score:     s.Score,
			Plaintext: d.Candidate(s.Shift),
		})
	}
	return candidates
}
