package detector

import (
	"context"
	"fmt"
	"phishguard/internal/scorer"
	"phishguard/pkg/domain"
	"phishguard/pkg/logger"
	"phishguard/pkg/serrors"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type measurement struct {
	signal scorer.Signal
	err    error
}

// score runs the three scorers and combines them. The lexical scorer is
// local and runs inline; the others share SignalTimeout.
func (d *detector) score(ctx context.Context, rawURL string) domain.Verdict {
	ctx, span := d.tracer.Start(ctx, "Scoring")
	defer span.End()

	var cert, ml measurement
	heuristic := d.measure(ctx, d.deps.Lexical, rawURL)

	signalCtx, cancel := context.WithTimeout(ctx, d.options.SignalTimeout)
	defer cancel()

	// goroutines never return errors: a failed signal degrades to zero
	var g errgroup.Group
	g.Go(func() error {
		cert = d.measure(signalCtx, d.deps.Certificate, rawURL)

		return nil
	})
	g.Go(func() error {
		ml = d.measure(signalCtx, d.deps.ML, rawURL)

		return nil
	})
	_ = g.Wait()

	var unavailable []string
	for _, m := range []struct {
		name string
		m    *measurement
	}{
		{domain.SignalHeuristic, &heuristic},
		{domain.SignalCertificate, &cert},
		{domain.SignalML, &ml},
	} {
		if m.m.err == nil {
			continue
		}
		unavailable = append(unavailable, m.name)
		m.m.signal = scorer.Zero
		d.instruments.failed(ctx, m.name)
		logger.Warn(ctx, "signal unavailable", zap.String("signal", m.name), zap.Error(m.m.err))
	}

	span.SetAttributes(attribute.StringSlice("phishguard.unavailable", unavailable))
	if len(unavailable) == 3 {
		span.SetStatus(codes.Error, "every signal failed")

		return d.deps.Policy.Undetermined(unavailable...)
	}

	return d.deps.Policy.Combine(heuristic.signal, cert.signal, ml.signal, unavailable...)
}

// measure runs s and gives up once ctx is done, even when s ignores ctx.
func (d *detector) measure(ctx context.Context, s scorer.Scorer, rawURL string) measurement {
	done := make(chan measurement, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- measurement{err: serrors.With(serrors.ErrInternal, "%s scorer panicked: %v", s.Name(), r)}
			}
		}()
		signal, err := s.Score(ctx, rawURL)
		if err == nil {
			signal.Score = scorer.Clamp(signal.Score)
		}
		done <- measurement{signal: signal, err: err}
	}()

	finish := func(m measurement) measurement {
		if m.err != nil {
			m.err = serrors.FromContext(m.err, "%s scorer timed out", s.Name())
		}

		return m
	}

	select {
	case m := <-done:
		return finish(m)
	case <-ctx.Done():
		// a result that raced the deadline still counts
		select {
		case m := <-done:
			return finish(m)
		default:
		}

		return measurement{err: serrors.FromContext(
			fmt.Errorf("%s scorer: %w", s.Name(), ctx.Err()), "%s scorer timed out", s.Name())}
	}
}
