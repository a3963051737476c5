// Package discovery finds prospect websites by keyword, scores them against
// the ideal customer profile and stores the new ones.
package discovery

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"slices"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"wcagrep/internal/config"
	"wcagrep/pkg/domain"
	"wcagrep/pkg/llm"
	"wcagrep/pkg/logger"
	"wcagrep/pkg/serrors"
	"wcagrep/pkg/storage"
)

var tracer = otel.Tracer("wcagrep/internal/discovery") //nolint: gochecknoglobals

var listMarker = regexp.MustCompile(`^\s*(?:[-*•]|\d+[.)])\s*`)

const (
	DefaultLimit = 50
	maxLimit     = 500
	// maxExpansions caps the related queries added by the model.
	maxExpansions = 5

	MetaPromptAI       = "AI-enhanced prospect analysis"
	MetaPromptKeywords = "Standard keyword matching"
)

// Request describes a discovery run.
type Request struct {
	Keywords []string `json:"keywords"`
	Industry string   `json:"industry"`
	Region   string   `json:"region"`
	Limit    int      `json:"limit"`
	UseAI    bool     `json:"useAI"`
}

// Response lists the prospects stored by a discovery run.
type Response struct {
	Discovered     int               `json:"discovered"`
	Prospects      []domain.Prospect `json:"prospects"`
	MetaPromptUsed string            `json:"metaPromptUsed"`
}

// UsageStats reports how many searches hit the search engine.
type UsageStats struct {
	TotalAPICallsUsed int `json:"totalAPICallsUsed"`
	CachedQueries     int `json:"cachedQueries"`
	CacheHits         int `json:"cacheHits"`
}

type Options struct {
	CacheTTL    time.Duration
	Concurrency int
}

func NewOptions(cfg *config.Config) Options {
	return Options{
		CacheTTL:    cfg.Discovery.CacheTTL,
		Concurrency: cfg.Discovery.Concurrency,
	}
}

type cacheEntry struct {
	results []Result
	expires time.Time
}

// Service runs discoveries. Search results are cached per query.
type Service struct {
	storage  storage.AllStorage
	searcher Searcher
	llm      llm.Completer
	options  Options
	now      func() time.Time

	// mu protects the fields below it.
	mu    sync.Mutex
	cache map[string]cacheEntry
	calls int
	hits  int
}

// New creates a service. c may be nil, in which case keywords are never
// expanded.
func New(st storage.AllStorage, searcher Searcher, c llm.Completer, options Options) *Service {
	if options.Concurrency < 1 {
		options.Concurrency = 1
	}

	return &Service{
		storage:  st,
		searcher: searcher,
		llm:      c,
		options:  options,
		now:      time.Now,
		cache:    make(map[string]cacheEntry),
	}
}

// Discover searches every keyword, keeps the hosts that are neither known
// prospects nor on the Do Not Contact list and stores the best scored ones as
// discovered prospects.
func (s *Service) Discover(ctx context.Context, req Request) (*Response, error) {
	keywords := make([]string, 0, len(req.Keywords))
	for _, k := range req.Keywords {
		if k = strings.TrimSpace(k); k != "" && !slices.Contains(keywords, k) {
			keywords = append(keywords, k)
		}
	}
	if len(keywords) == 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "Keywords array is required")
	}
	limit := req.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	limit = min(limit, maxLimit)

	ctx, span := tracer.Start(ctx, "discovery.Discover")
	defer span.End()
	span.SetAttributes(attribute.StringSlice("keywords", keywords), attribute.Bool("useAI", req.UseAI))

	resp := &Response{Prospects: []domain.Prospect{}, MetaPromptUsed: MetaPromptKeywords}
	queries := slices.Clone(keywords)
	if req.UseAI {
		resp.MetaPromptUsed = MetaPromptAI
		queries = append(queries, s.expand(ctx, keywords, req.Industry)...)
	}

	results, err := s.searchAll(ctx, queries, req.Region)
	if err != nil {
		return nil, err
	}

	candidates, err := s.filter(ctx, results)
	if err != nil {
		return nil, err
	}

	prospects := make([]domain.Prospect, 0, len(candidates))
	for _, r := range candidates {
		u, err := url.Parse(r.URL)
		if err != nil {
			continue
		}
		company, website, industry := CompanyName(r), u.Scheme+"://"+u.Host, req.Industry
		icp := ICPScore(r, keywords, req.Industry)
		risk := LegalRisk(req.Industry).RiskLevel()
		prospects = append(prospects, domain.NewProspect(domain.ProspectInput{
			Company:   &company,
			Website:   &website,
			Industry:  &industry,
			ICPScore:  &icp,
			RiskLevel: &risk,
		}))
	}
	slices.SortStableFunc(prospects, func(a, b domain.Prospect) int {
		return cmp.Compare(b.ICPScore, a.ICPScore)
	})
	if len(prospects) > limit {
		prospects = prospects[:limit]
	}

	if len(prospects) > 0 {
		stored, err := s.storage.StoreProspects(ctx, prospects...)
		if err != nil {
			return nil, fmt.Errorf("could not store discovered prospects: %w", err)
		}
		resp.Prospects = stored
	}
	resp.Discovered = len(resp.Prospects)

	logger.Info(ctx, "discovery finished",
		zap.Strings("keywords", keywords),
		zap.Int("queries", len(queries)),
		zap.Int("results", len(results)),
		zap.Int("discovered", resp.Discovered))

	return resp, nil
}

// UsageStats reports search engine usage since the last ClearCache.
func (s *Service) UsageStats() UsageStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	var cached int
	for _, e := range s.cache {
		if now.Before(e.expires) {
			cached++
		}
	}

	return UsageStats{TotalAPICallsUsed: s.calls, CachedQueries: cached, CacheHits: s.hits}
}

// ClearCache drops cached results and resets the usage counters.
func (s *Service) ClearCache() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cache = make(map[string]cacheEntry)
	s.calls, s.hits = 0, 0
}

// searchAll runs the queries concurrently. Failed queries are logged and
// skipped; it only fails when every query failed.
func (s *Service) searchAll(ctx context.Context, queries []string, region string) ([]Result, error) {
	results := make([][]Result, len(queries))
	errs := make([]error, len(queries))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.options.Concurrency)
	for i, q := range queries {
		if region = strings.TrimSpace(region); region != "" {
			q += " " + region
		}
		g.Go(func() error {
			results[i], errs[i] = s.search(gctx, q)
			if errs[i] != nil {
				logger.Warn(gctx, "search failed", zap.String("query", q), zap.Error(errs[i]))
			}

			return nil
		})
	}
	_ = g.Wait()

	var all []Result
	var failed int
	for i := range queries {
		if errs[i] != nil {
			failed++

			continue
		}
		all = append(all, results[i]...)
	}
	if failed == len(queries) {
		return nil, fmt.Errorf("every search failed: %w", errors.Join(errs...))
	}

	return all, nil
}

func (s *Service) search(ctx context.Context, query string) ([]Result, error) {
	key := strings.ToLower(query)

	s.mu.Lock()
	if e, ok := s.cache[key]; ok && s.now().Before(e.expires) {
		s.hits++
		s.mu.Unlock()

		return e.results, nil
	}
	s.calls++
	s.mu.Unlock()

	results, err := s.searcher.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", query, err)
	}

	if s.options.CacheTTL > 0 {
		s.mu.Lock()
		s.cache[key] = cacheEntry{results: results, expires: s.now().Add(s.options.CacheTTL)}
		s.mu.Unlock()
	}

	return results, nil
}

// filter deduplicates results by host and drops known prospects and blocked
// domains.
func (s *Service) filter(ctx context.Context, results []Result) ([]Result, error) {
	seen := make(map[string]bool)
	var unique []Result
	var hosts []string
	for _, r := range results {
		host := domain.HostOf(r.URL)
		if host == "" || seen[host] {
			continue
		}
		seen[host] = true
		unique = append(unique, r)
		hosts = append(hosts, host)
	}
	if len(hosts) == 0 {
		return nil, nil
	}

	drop := make(map[string]bool)
	existing, err := s.storage.ProspectsByHosts(ctx, hosts)
	if err != nil {
		return nil, fmt.Errorf("could not look up known prospects: %w", err)
	}
	for _, p := range existing {
		drop[p.Host()] = true
	}
	blocked, err := s.storage.BlockedDomains(ctx, hosts)
	if err != nil {
		return nil, fmt.Errorf("could not look up blocked domains: %w", err)
	}
	for _, d := range blocked {
		drop[strings.ToLower(d)] = true
	}

	out := unique[:0]
	for _, r := range unique {
		if !drop[domain.HostOf(r.URL)] {
			out = append(out, r)
		}
	}

	return out, nil
}

// expand asks the model for related search queries. Failures are logged and
// yield no expansion.
func (s *Service) expand(ctx context.Context, keywords []string, industry string) []string {
	if s.llm == nil {
		return nil
	}

	prompt := "Suggest up to 5 web search queries that find company websites related to these keywords: " +
		strings.Join(keywords, ", ") + "."
	if industry != "" {
		prompt += " The companies work in the " + industry + " industry."
	}
	prompt += " Answer with one query per line and nothing else."

	resp, err := s.llm.Complete(ctx, llm.Request{
		System:    "You help sales teams find prospects.",
		Prompt:    prompt,
		MaxTokens: 300,
	})
	if err != nil {
		logger.Warn(ctx, "could not expand keywords", zap.Error(err))

		return nil
	}

	var out []string
	for _, line := range strings.Split(resp.Text, "\n") {
		line = llm.CleanText(listMarker.ReplaceAllString(line, ""))
		if line == "" || slices.Contains(keywords, line) || slices.Contains(out, line) {
			continue
		}
		out = append(out, line)
		if len(out) == maxExpansions {
			break
		}
	}
	logger.Debug(ctx, "expanded keywords", zap.Strings("queries", out))

	return out
}
