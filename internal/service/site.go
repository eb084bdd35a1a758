// Package service implements the business logic for tenant site data,
// booking intake, and admin management.
package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	obs "github.com/dentalops/sitekit/internal/adapter/otel"
	"github.com/dentalops/sitekit/internal/config"
	"github.com/dentalops/sitekit/internal/domain/clinic"
	"github.com/dentalops/sitekit/internal/domain/faq"
	"github.com/dentalops/sitekit/internal/domain/testimonial"
	"github.com/dentalops/sitekit/internal/port/cache"
	"github.com/dentalops/sitekit/internal/port/database"
)

// defaultSiteKey is the cache key for the bare-root site (no slug in the URL).
const defaultSiteKey = "site:@default"

// SiteBundle is everything needed to render one clinic's site: the raw tenant
// record, its dependent collections, and the fully-resolved view.
type SiteBundle struct {
	Clinic       *clinic.Clinic            `json:"clinic"`
	Testimonials []testimonial.Testimonial `json:"testimonials"`
	FAQs         []faq.FAQ                 `json:"faqs"`
	View         clinic.View               `json:"view"`
}

// SiteService loads tenant site data. Loads are deduplicated per slug,
// cached, and bounded by a timeout so a slow database cannot hang the
// request path indefinitely.
type SiteService struct {
	store   database.Store
	cache   cache.Cache
	ttl     time.Duration
	timeout time.Duration
	group   singleflight.Group
	tracer  trace.Tracer
	metrics *obs.Metrics
}

// NewSiteService creates the site data service. cache and metrics may be nil.
func NewSiteService(store database.Store, c cache.Cache, cfg config.Config, m *obs.Metrics) *SiteService {
	return &SiteService{
		store:   store,
		cache:   c,
		ttl:     cfg.Cache.TTL,
		timeout: cfg.Site.LoadTimeout,
		tracer:  otel.Tracer("sitekit"),
		metrics: m,
	}
}

// Load resolves the clinic for slug (or the default clinic when slug is
// empty) and fetches its dependent collections. A clinic that cannot be
// resolved is fatal; testimonial and FAQ failures are not — those collections
// degrade to empty and the view falls back to default content.
//
// Concurrent loads for the same slug share one database round trip. The
// underlying fetch is detached from the caller's context so an abandoned
// request cannot cancel the fetch out from under the other waiters; each
// caller still honors its own context while waiting.
func (s *SiteService) Load(ctx context.Context, slug string) (*SiteBundle, error) {
	key := siteKey(slug)

	if s.cache != nil {
		if data, ok, err := s.cache.Get(ctx, key); err == nil && ok {
			var b SiteBundle
			if err := json.Unmarshal(data, &b); err == nil {
				if s.metrics != nil {
					s.metrics.SiteCacheHits.Add(ctx, 1)
				}
				return &b, nil
			}
		}
	}

	ch := s.group.DoChan(key, func() (any, error) {
		return s.load(context.WithoutCancel(ctx), slug, key)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*SiteBundle), nil
	}
}

func (s *SiteService) load(ctx context.Context, slug, key string) (*SiteBundle, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	ctx, span := s.tracer.Start(ctx, "site.load",
		trace.WithAttributes(attribute.String("site.slug", slug)))
	defer span.End()

	c, err := s.resolveClinic(ctx, slug)
	if err != nil {
		if s.metrics != nil {
			s.metrics.SiteLoadFailures.Add(ctx, 1)
		}
		return nil, err
	}

	var (
		ts []testimonial.Testimonial
		fs []faq.FAQ
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		ts, err = s.store.ListTestimonials(gctx, c.ID)
		if err != nil {
			slog.Warn("testimonials load failed", "clinic_id", c.ID, "error", err)
			ts = nil
		}
		return nil
	})
	g.Go(func() error {
		var err error
		fs, err = s.store.ListActiveFAQs(gctx, c.ID)
		if err != nil {
			slog.Warn("faqs load failed", "clinic_id", c.ID, "error", err)
			fs = nil
		}
		return nil
	})
	_ = g.Wait()

	b := &SiteBundle{
		Clinic:       c,
		Testimonials: ts,
		FAQs:         fs,
		View:         clinic.ResolveView(c, ts, fs),
	}

	if s.cache != nil {
		if data, err := json.Marshal(b); err == nil {
			_ = s.cache.Set(ctx, key, data, s.ttl)
		}
	}
	if s.metrics != nil {
		s.metrics.SiteLoads.Add(ctx, 1)
	}
	return b, nil
}

// ResolveClinic maps a slug to its clinic record without loading the
// dependent collections. Booking submission uses this to pin the clinic
// before any write.
func (s *SiteService) ResolveClinic(ctx context.Context, slug string) (*clinic.Clinic, error) {
	return s.resolveClinic(ctx, slug)
}

// resolveClinic maps a slug to its clinic record. An empty slug resolves to
// the default clinic rather than an error.
func (s *SiteService) resolveClinic(ctx context.Context, slug string) (*clinic.Clinic, error) {
	if slug == "" {
		return s.store.DefaultClinic(ctx)
	}
	return s.store.GetClinicBySlug(ctx, slug)
}

// Invalidate drops the cached bundle for slug. The default-site entry is
// dropped too since the updated clinic may be the alphabetical default.
func (s *SiteService) Invalidate(ctx context.Context, slug string) {
	if s.cache == nil {
		return
	}
	_ = s.cache.Delete(ctx, siteKey(slug))
	_ = s.cache.Delete(ctx, defaultSiteKey)
}

func siteKey(slug string) string {
	if slug == "" {
		return defaultSiteKey
	}
	return "site:" + slug
}
