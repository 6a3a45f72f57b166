package main

import (
	"context"
	"fmt"
	"net/http"
	"phishguard/internal/blacklist"
	"phishguard/internal/config"
	"phishguard/internal/detector"
	"phishguard/internal/resultcache"
	"phishguard/internal/scorer"
	"phishguard/internal/scorer/certificate"
	"phishguard/internal/scorer/cookie"
	"phishguard/internal/scorer/lexical"
	"phishguard/internal/scorer/ml"
	"phishguard/internal/scoring"
	"phishguard/pkg/reputation/virustotal"
	"phishguard/pkg/storage"
)

// ML providers accepted by ml.provider.
const (
	providerHeuristic  = "heuristic"
	providerVirusTotal = "virustotal"
)

// newDetectorDeps builds the collaborators of the detector on top of strg.
// The blacklist store is loaded from strg before it is returned.
func newDetectorDeps(ctx context.Context, cfg *config.Config, strg storage.Storage) (detector.Deps, error) {
	store, err := blacklist.NewStore(strg, cfg.Blacklist.Allowlist)
	if err != nil {
		return detector.Deps{}, fmt.Errorf("could not create blacklist store: %w", err)
	}
	if err := store.Load(ctx); err != nil {
		return detector.Deps{}, err
	}

	mlScorer, err := newMLScorer(cfg)
	if err != nil {
		return detector.Deps{}, err
	}

	certOptions := certificate.DefaultOptions()
	if len(cfg.Certificate.FreeCAs) > 0 {
		certOptions.FreeCAs = cfg.Certificate.FreeCAs
	}

	return detector.Deps{
		Storage:     strg,
		Cache:       resultcache.New(resultcache.NewOptions(cfg)),
		Blacklist:   store,
		Refresher:   blacklist.NewRefresher(&http.Client{}, store, strg, blacklist.NewOptions(cfg)),
		Lexical:     lexical.New(lexical.DefaultRules()),
		Certificate: certificate.New(certificate.NewTLSInspector(cfg.Certificate.DialTimeout), certOptions),
		ML:          mlScorer,
		Cookies:     cookie.New(cookie.DefaultRules()),
		Policy:      scoring.NewPolicy(cfg),
	}, nil
}

func newMLScorer(cfg *config.Config) (scorer.Scorer, error) {
	heuristic := ml.NewHeuristic(ml.DefaultHeuristicOptions())

	switch cfg.ML.Provider {
	case providerHeuristic, "":
		return heuristic, nil
	case providerVirusTotal:
		if cfg.ML.VirusTotal.APIKey == "" {
			return nil, fmt.Errorf("ml provider %s requires an API key", providerVirusTotal)
		}
		client := virustotal.New(&http.Client{}, virustotal.Options{
			APIKey:            cfg.ML.VirusTotal.APIKey,
			BaseURL:           cfg.ML.VirusTotal.BaseURL,
			RequestsPerMinute: cfg.ML.VirusTotal.RequestsPerMinute,
		})

		// the stand-in model answers whenever the reputation lookup fails
		return ml.NewFallback(ml.NewReputation(client), heuristic, cfg.ML.PrimaryShare), nil
	default:
		return nil, fmt.Errorf("unknown ml provider %q", cfg.ML.Provider)
	}
}
