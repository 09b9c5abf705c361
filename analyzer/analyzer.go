// Package analyzer runs the complete content analysis: validation, parsing, rule
// evaluation, readability and recommendations, with a TTL result cache in front.
package analyzer

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/seo-optimizer/content-analyzer/content"
	"github.com/seo-optimizer/content-analyzer/keywords"
	"github.com/seo-optimizer/content-analyzer/logging"
	"github.com/seo-optimizer/content-analyzer/metrics"
	"github.com/seo-optimizer/content-analyzer/readability"
	"github.com/seo-optimizer/content-analyzer/recommend"
	"github.com/seo-optimizer/content-analyzer/rules"
	"github.com/seo-optimizer/content-analyzer/stats"
)

// Cache entry with expiration
type cacheEntry struct {
	results   *Results
	timestamp time.Time
}

// Analyzer performs content analysis. It is safe for concurrent use.
type Analyzer struct {
	parser       *content.Parser
	ruleEngine   *rules.Engine
	readability  *readability.Engine
	recommenders map[string]*recommend.Engine

	logger  logging.Logger
	stats   *stats.Storage
	metrics metrics.Recorder

	cache           map[string]cacheEntry
	cacheMutex      sync.RWMutex
	cacheTTL        time.Duration
	maxCacheSize    int
	cleanupInterval time.Duration
	lastCleanup     atomic.Int64
	hits            atomic.Int64
	misses          atomic.Int64

	ruleSet         []rules.Rule
	concurrency     int
	extractMain     bool
	defaultLanguage string

	done      chan struct{}
	closeOnce sync.Once
}

// Option configures an Analyzer
type Option func(*Analyzer)

// WithLogger sets the logger
func WithLogger(logger logging.Logger) Option {
	return func(a *Analyzer) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithRules replaces the default rule catalog
func WithRules(ruleSet []rules.Rule) Option {
	return func(a *Analyzer) { a.ruleSet = ruleSet }
}

// WithStats persists counters to storage
func WithStats(storage *stats.Storage) Option {
	return func(a *Analyzer) { a.stats = storage }
}

// WithMetrics reports analyses to a metrics recorder
func WithMetrics(recorder metrics.Recorder) Option {
	return func(a *Analyzer) {
		if recorder != nil {
			a.metrics = recorder
		}
	}
}

// WithCache sets the cache TTL and size bound
func WithCache(ttl time.Duration, maxSize int) Option {
	return func(a *Analyzer) {
		a.cacheTTL = ttl
		a.maxCacheSize = maxSize
	}
}

// WithConcurrency bounds the number of analyses a batch runs at once
func WithConcurrency(n int) Option {
	return func(a *Analyzer) {
		if n > 0 {
			a.concurrency = n
		}
	}
}

// WithMainContentExtraction computes readability on the main article only
func WithMainContentExtraction(enabled bool) Option {
	return func(a *Analyzer) { a.extractMain = enabled }
}

// WithDefaultLanguage is used for inputs without a language
func WithDefaultLanguage(lang string) Option {
	return func(a *Analyzer) { a.defaultLanguage = readability.NormalizeLanguage(lang) }
}

// New creates a new Analyzer and starts its cache cleanup loop; call Close to stop it
func New(opts ...Option) *Analyzer {
	a := &Analyzer{
		logger:          logging.Nop(),
		metrics:         metrics.Nop(),
		cache:           make(map[string]cacheEntry),
		cacheTTL:        30 * time.Minute,
		maxCacheSize:    1000,
		cleanupInterval: 5 * time.Minute,
		concurrency:     4,
		defaultLanguage: readability.English,
		done:            make(chan struct{}),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.lastCleanup.Store(time.Now().UnixNano())

	a.parser = content.NewParser(a.logger)
	a.readability = readability.NewEngine(a.logger)
	a.ruleEngine = rules.NewEngine(a.ruleSet, rules.WithLogger(a.logger), rules.WithErrorHook(a.onRuleError))
	a.ruleSet = a.ruleEngine.Rules()

	a.recommenders = make(map[string]*recommend.Engine, 2)
	for _, lang := range []string{recommend.English, recommend.Greek} {
		engine := recommend.NewEngine(a.ruleSet, a.logger)
		engine.SetLanguage(lang)
		a.recommenders[lang] = engine
	}

	go a.periodicCleanup()

	return a
}

// Close stops the cleanup loop
func (a *Analyzer) Close() {
	a.closeOnce.Do(func() { close(a.done) })
}

// Rules returns the rule set the analyzer evaluates
func (a *Analyzer) Rules() []rules.Rule {
	return a.ruleEngine.Rules()
}

func (a *Analyzer) onRuleError(err *rules.RuleExecutionError) {
	a.metrics.RecordRuleError(err.RuleID)
	if a.stats != nil {
		a.stats.Add(stats.Delta{RuleErrors: 1})
	}
}

// periodicCleanup removes expired entries from the cache periodically
func (a *Analyzer) periodicCleanup() {
	ticker := time.NewTicker(a.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.cleanup()
		case <-a.done:
			return
		}
	}
}

// cleanup removes expired entries and ensures cache size limits
func (a *Analyzer) cleanup() {
	now := time.Now()

	a.cacheMutex.Lock()
	defer a.cacheMutex.Unlock()

	a.evictLocked(now)
	a.lastCleanup.Store(now.UnixNano())
}

func (a *Analyzer) evictLocked(now time.Time) {
	for key, entry := range a.cache {
		if now.Sub(entry.timestamp) > a.cacheTTL {
			delete(a.cache, key)
		}
	}

	if len(a.cache) <= a.maxCacheSize {
		return
	}

	// still over the limit: drop the oldest entries
	type aged struct {
		key       string
		timestamp time.Time
	}
	entries := make([]aged, 0, len(a.cache))
	for key, entry := range a.cache {
		entries = append(entries, aged{key, entry.timestamp})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].timestamp.Before(entries[j].timestamp)
	})
	for i := 0; i < len(entries)-a.maxCacheSize; i++ {
		delete(a.cache, entries[i].key)
	}
}

// SetMaxCacheSize sets the maximum number of cached analyses, evicting at once if needed
func (a *Analyzer) SetMaxCacheSize(size int) {
	a.cacheMutex.Lock()
	defer a.cacheMutex.Unlock()
	a.maxCacheSize = size
	a.evictLocked(time.Now())
}

// SetCacheTTL sets the cache TTL
func (a *Analyzer) SetCacheTTL(ttl time.Duration) {
	a.cacheMutex.Lock()
	defer a.cacheMutex.Unlock()
	a.cacheTTL = ttl
}

// ClearCache clears the analysis cache
func (a *Analyzer) ClearCache() {
	a.cacheMutex.Lock()
	defer a.cacheMutex.Unlock()
	a.cache = make(map[string]cacheEntry)
}

// generateCacheKey hashes every field that influences the result
func generateCacheKey(in Input) string {
	hash := md5.Sum([]byte(strings.Join([]string{
		in.HTML, in.Title, in.Description, in.Keywords, in.Language, in.URL,
	}, "\x00")))
	return hex.EncodeToString(hash[:])
}

// GetCacheStats returns statistics about the cache
func (a *Analyzer) GetCacheStats() CacheStats {
	a.cacheMutex.RLock()
	cs := CacheStats{
		Entries: len(a.cache),
		MaxSize: a.maxCacheSize,
		TTL:     a.cacheTTL,
	}
	a.cacheMutex.RUnlock()

	cs.Hits = a.hits.Load()
	cs.Misses = a.misses.Load()
	if a.stats != nil {
		monthly := a.stats.GetCurrentStats()
		cs.MonthlyHits = monthly.CacheHits
		cs.MonthlyMisses = monthly.CacheMisses
	}
	return cs
}

// IsCached checks if an input is in the cache and not expired
func (a *Analyzer) IsCached(in Input) bool {
	normalized, err := a.normalize(in)
	if err != nil {
		return false
	}
	_, ok := a.lookup(generateCacheKey(normalized))
	return ok
}

func (a *Analyzer) lookup(key string) (*Results, bool) {
	a.cacheMutex.RLock()
	defer a.cacheMutex.RUnlock()

	entry, found := a.cache[key]
	if found && time.Since(entry.timestamp) < a.cacheTTL {
		return entry.results, true
	}
	return nil, false
}

func (a *Analyzer) store(key string, res *Results) {
	a.cacheMutex.Lock()
	defer a.cacheMutex.Unlock()

	if a.maxCacheSize <= 0 {
		return
	}

	a.cache[key] = cacheEntry{results: res, timestamp: time.Now()}
	if len(a.cache) > a.maxCacheSize {
		a.evictLocked(time.Now())
	}
}

// normalize validates an input and fills in its defaults. Only this step can reject content.
func (a *Analyzer) normalize(in Input) (Input, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	in.URL = strings.TrimSpace(in.URL)
	in.Keywords = strings.Join(keywords.ParseList(in.Keywords), ",")

	if strings.TrimSpace(in.HTML) == "" && in.Title == "" && in.Description == "" {
		return in, &ValidationError{Field: "html", Message: "one of html, title or description is required"}
	}

	lang := strings.ToLower(strings.TrimSpace(in.Language))
	switch {
	case lang == "":
		in.Language = a.defaultLanguage
	case readability.NormalizeLanguage(lang) == readability.Greek, lang == "en", strings.HasPrefix(lang, "en-"):
		in.Language = readability.NormalizeLanguage(lang)
	default:
		return in, &ValidationError{Field: "language", Message: strconv.Quote(in.Language) + " is not supported; use en or el"}
	}

	if in.URL != "" {
		u, err := url.Parse(in.URL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return in, &ValidationError{Field: "url", Message: "must be an absolute URL"}
		}
	}
	return in, nil
}

// Analyze validates in and runs the complete analysis, serving repeated inputs from the cache.
// The only errors returned are a *ValidationError and the context's error.
func (a *Analyzer) Analyze(ctx context.Context, in Input) (*Results, error) {
	if time.Since(time.Unix(0, a.lastCleanup.Load())) > a.cleanupInterval {
		go a.cleanup()
	}

	start := time.Now()
	logger := logging.WithContext(ctx, a.logger)

	in, err := a.normalize(in)
	if err != nil {
		logger.Info("rejected analysis input", "error", err)
		a.metrics.RecordAnalysis(metrics.StatusInvalid, "", time.Since(start).Seconds())
		if a.stats != nil {
			a.stats.Add(stats.Delta{Rejected: 1})
		}
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	key := generateCacheKey(in)
	if cached, ok := a.lookup(key); ok {
		a.hits.Add(1)
		a.metrics.RecordCache(true)
		a.metrics.RecordAnalysis(metrics.StatusCached, cached.Grade, time.Since(start).Seconds())
		if a.stats != nil {
			a.stats.Add(stats.Delta{CacheHits: 1})
		}
		res := cached.clone()
		res.Cached = true
		return res, nil
	}
	a.misses.Add(1)
	a.metrics.RecordCache(false)

	res := a.run(in, logger)
	res.DurationMs = float64(time.Since(start).Microseconds()) / 1000
	a.store(key, res.clone())

	a.metrics.RecordAnalysis(metrics.StatusSuccess, res.Grade, time.Since(start).Seconds())
	if a.stats != nil {
		a.stats.Add(stats.Delta{Analyses: 1, CacheMisses: 1})
	}
	logger.Debug("analysis complete",
		"grade", res.Grade,
		"percentage", res.Percentage,
		"issues", len(res.Issues),
		"duration_ms", res.DurationMs,
	)
	return res, nil
}

// run is the uncached pipeline: parse, readability, rules, recommendations
func (a *Analyzer) run(in Input, logger logging.Logger) *Results {
	parsed := a.parser.ParseWithBase(in.HTML, in.URL)

	title := in.Title
	if title == "" {
		title = parsed.HTMLTitle
	}
	description := in.Description
	if description == "" {
		description = parsed.MetaDescription
	}
	kws := keywords.ParseList(in.Keywords)

	opts := readability.Options{Language: in.Language}
	var (
		read     *readability.Result
		mainUsed bool
	)
	if a.extractMain && strings.TrimSpace(in.HTML) != "" {
		article, err := content.ExtractArticle(in.HTML, in.URL)
		if err != nil {
			logger.Debug("main content extraction failed, using the whole page", "error", err)
		} else if strings.TrimSpace(article.Text) != "" {
			read = a.readability.Analyze(article.HTML, opts)
			mainUsed = read.Totals.Words > 0
		}
	}
	if !mainUsed {
		read = a.readability.AnalyzeParsed(parsed, opts)
	}

	page := rules.NewPage(parsed, title, description, kws, in.Language, in.URL).WithReadability(read)
	ev := a.ruleEngine.Evaluate(page)
	report := a.recommenders[in.Language].Generate(ev, page)

	return &Results{
		Title:                   title,
		Description:             description,
		Language:                in.Language,
		URL:                     in.URL,
		Keywords:                kws,
		Score:                   ev.Score,
		MaxScore:                ev.MaxScore,
		Percentage:              ev.Percentage,
		Grade:                   ev.Grade,
		PassedRules:             ev.PassedRules,
		FailedRules:             ev.FailedRules,
		Warnings:                ev.Warnings,
		Issues:                  ev.Issues,
		CategoryScores:          ev.CategoryScores,
		Recommendations:         ev.Recommendations,
		SkippedRules:            ev.Skipped,
		KeywordDensity:          keywords.DensityMap(parsed.Text, kws),
		Content:                 summarize(parsed, mainUsed),
		Readability:             read,
		EnhancedRecommendations: report,
		AnalyzedAt:              time.Now().UTC(),
	}
}

func summarize(c *content.ParsedContent, mainUsed bool) ContentSummary {
	headings := make(map[string]int, 6)
	for level := 1; level <= 6; level++ {
		headings["h"+strconv.Itoa(level)] = c.HeadingCount(level)
	}
	return ContentSummary{
		WordCount:        c.WordCount,
		CharacterCount:   c.CharacterCount,
		Headings:         headings,
		Paragraphs:       len(c.Paragraphs),
		Images:           len(c.Images),
		ImagesMissingAlt: c.ImagesMissingAlt(),
		InternalLinks:    len(c.LinksOfType(content.LinkInternal)),
		ExternalLinks:    len(c.LinksOfType(content.LinkExternal)),
		SemanticScore:    c.StructuralElements.SemanticScore,
		MainContentUsed:  mainUsed,
	}
}

// AnalyzeBatch analyzes inputs concurrently, at most the configured number at a time.
// Invalid inputs fail on their own; the returned error is only the context's.
// Cancellation stops scheduling further inputs, running analyses complete.
func (a *Analyzer) AnalyzeBatch(ctx context.Context, inputs []Input) ([]BatchResult, error) {
	results := make([]BatchResult, len(inputs))
	for i := range results {
		results[i].Index = i
	}

	var g errgroup.Group
	g.SetLimit(a.concurrency)

	for i, in := range inputs {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := a.Analyze(ctx, in)
			results[i].Results = res
			results[i].Err = err
			if err != nil {
				results[i].Error = err.Error()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	if err := ctx.Err(); err != nil {
		return results, err
	}
	return results, nil
}
