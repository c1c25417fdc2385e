package preview

import (
	"context"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/heartmarshall/linkbook/internal/domain"
)

// OpenGraphFetcher retrieves the raw open graph metadata of a page.
type OpenGraphFetcher interface {
	Fetch(ctx context.Context, url string) (*domain.OGMetadata, error)
}

type previewCache interface {
	Get(ctx context.Context, url string) (*domain.OGPreview, bool, error)
	Set(ctx context.Context, url string, p *domain.OGPreview) error
}

// Preview image sizing.
const (
	ThumbWidth  = 150
	ThumbHeight = 150
)

// Service turns link URLs into renderable previews. It never fails a
// request: any problem yields "no preview".
type Service struct {
	fetcher OpenGraphFetcher
	cache   previewCache
	timeout time.Duration
	log     *slog.Logger
}

// NewService creates a preview service. fetcher may be nil to disable
// previews; cache may be nil to disable caching.
func NewService(log *slog.Logger, fetcher OpenGraphFetcher, cache previewCache, timeout time.Duration) *Service {
	return &Service{
		fetcher: fetcher,
		cache:   cache,
		timeout: timeout,
		log:     log.With("service", "preview"),
	}
}

// Normalize fetches url's open graph metadata and scales the preview image.
// ok is false when the metadata is missing, incomplete, or could not be
// fetched in time; the caller then renders no preview.
func (s *Service) Normalize(ctx context.Context, url string) (preview *domain.OGPreview, ok bool) {
	if s.fetcher == nil {
		return nil, false
	}

	if p, hit := s.cached(ctx, url); hit {
		return p, true
	}

	fetchCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	meta, err := s.fetcher.Fetch(fetchCtx, url)
	if err != nil {
		s.log.DebugContext(ctx, "preview fetch failed",
			slog.String("url", url),
			slog.String("error", err.Error()),
		)
		return nil, false
	}
	if !meta.IsValid() {
		return nil, false
	}

	preview = FromMetadata(meta)
	s.store(ctx, url, preview)

	return preview, true
}

func (s *Service) cached(ctx context.Context, url string) (*domain.OGPreview, bool) {
	if s.cache == nil {
		return nil, false
	}
	p, hit, err := s.cache.Get(ctx, url)
	if err != nil {
		s.log.WarnContext(ctx, "preview cache get failed", slog.String("error", err.Error()))
		return nil, false
	}
	return p, hit
}

func (s *Service) store(ctx context.Context, url string, p *domain.OGPreview) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, url, p); err != nil {
		s.log.WarnContext(ctx, "preview cache set failed", slog.String("error", err.Error()))
	}
}

// FromMetadata builds a preview from valid metadata.
func FromMetadata(meta *domain.OGMetadata) *domain.OGPreview {
	w, h := ScaleImage(meta.ImageWidth, meta.ImageHeight)
	return &domain.OGPreview{
		Title:       meta.Title,
		Type:        meta.Type,
		URL:         meta.URL,
		Image:       meta.Image,
		Description: meta.Description,
		SiteName:    meta.SiteName,
		ImageWidth:  w,
		ImageHeight: h,
	}
}

// ScaleImage returns the thumbnail size for an image with the given raw
// dimensions. With a usable width and height the image is scaled to
// ThumbWidth keeping its aspect ratio, the height rounded half away from
// zero. Otherwise, or when the scaled height rounds below 1 or past
// MaxInt32, the ThumbWidth x ThumbHeight placeholder size is used.
func ScaleImage(rawWidth, rawHeight string) (width, height int) {
	w, errW := strconv.ParseFloat(strings.TrimSpace(rawWidth), 64)
	h, errH := strconv.ParseFloat(strings.TrimSpace(rawHeight), 64)
	if errW != nil || errH != nil || !usableDimension(w) || !usableDimension(h) {
		return ThumbWidth, ThumbHeight
	}
	scaled := math.Round(ThumbWidth * h / w)
	if scaled < 1 || scaled > math.MaxInt32 {
		return ThumbWidth, ThumbHeight
	}
	return ThumbWidth, int(scaled)
}

// usableDimension reports whether v is a finite positive size.
func usableDimension(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
