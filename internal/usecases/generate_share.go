package usecases

import (
	"context"
	"fmt"
	"strings"
	"time"

	"pulse-share/internal/adapters/remote"
	"pulse-share/internal/catalog"
	"pulse-share/internal/compose"
	"pulse-share/internal/domain"
	"pulse-share/internal/metrics"
	"pulse-share/pkg/log"
)

// DefaultRemoteTimeout bounds a remote attempt when no timeout is configured.
const DefaultRemoteTimeout = 5 * time.Second

// RemoteGenerator defines the interface for the hosted generator.
type RemoteGenerator interface {
	Generate(ctx context.Context, ct domain.ContentType, item domain.ContentItem, platforms []domain.PlatformID, token string) (domain.ShareSet, error)
}

// GenerateShareUseCase produces a share set, preferring the remote generator
// and falling back to local assembly on any remote failure.
type GenerateShareUseCase struct {
	remote    RemoteGenerator
	assembler *compose.Assembler
	timeout   time.Duration
}

// NewGenerateShareUseCase creates a new GenerateShareUseCase.
// A nil remote means only local generation is used.
func NewGenerateShareUseCase(remote RemoteGenerator, assembler *compose.Assembler, timeout time.Duration) *GenerateShareUseCase {
	if timeout <= 0 {
		timeout = DefaultRemoteTimeout
	}
	return &GenerateShareUseCase{
		remote:    remote,
		assembler: assembler,
		timeout:   timeout,
	}
}

// Execute generates posts for every platform ct supports.
// The remote generator is tried only when a token is present. Remote errors
// never reach the caller; the only errors are a cancelled ctx and
// domain.ErrUnknownPlatform from a broken catalog.
func (uc *GenerateShareUseCase) Execute(ctx context.Context, ct domain.ContentType, item domain.ContentItem, token string) (domain.ShareSet, domain.Source, error) {
	if err := ctx.Err(); err != nil {
		return nil, "", err
	}

	if uc.remote != nil && token != "" {
		set, err := uc.tryRemote(ctx, ct, item, token)
		if err == nil {
			metrics.RecordGeneration(ct, domain.SourceRemote)
			return set, domain.SourceRemote, nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, "", ctxErr
		}

		reason := remote.Reason(err)
		metrics.RecordRemoteFailure(reason)
		log.GlobalWarnCtx(ctx, "remote generation failed, using local templates",
			"content_type", string(ct),
			"reason", reason,
			"error", err.Error(),
		)
	}

	set, err := uc.GenerateLocal(ct, item)
	if err != nil {
		return nil, "", err
	}
	metrics.RecordGeneration(ct, domain.SourceLocal)
	return set, domain.SourceLocal, nil
}

// GenerateLocal assembles posts from the local template tables only.
func (uc *GenerateShareUseCase) GenerateLocal(ct domain.ContentType, item domain.ContentItem) (domain.ShareSet, error) {
	return uc.assembler.AssembleAll(ct, item)
}

type remoteResult struct {
	set domain.ShareSet
	err error
}

// tryRemote makes one bounded remote attempt. The result channel is buffered
// so a generator that ignores ctx can still finish without blocking.
func (uc *GenerateShareUseCase) tryRemote(ctx context.Context, ct domain.ContentType, item domain.ContentItem, token string) (domain.ShareSet, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	done := make(chan remoteResult, 1)
	go func() {
		set, err := uc.remote.Generate(ctx, ct, item, catalog.SupportedPlatforms(ct), token)
		done <- remoteResult{set: set, err: err}
	}()

	select {
	case res := <-done:
		if res.err != nil {
			return nil, res.err
		}
		return normalizeRemote(res.set)
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %w", domain.ErrRemoteGeneration, ctx.Err())
	}
}

// normalizeRemote rejects empty sets and blank posts, then recomputes the
// character count and over-limit flag from each text.
func normalizeRemote(set domain.ShareSet) (domain.ShareSet, error) {
	if len(set) == 0 {
		return nil, fmt.Errorf("%w: %w: no content", domain.ErrRemoteGeneration, domain.ErrMalformedResponse)
	}

	out := make(domain.ShareSet, len(set))
	for platform, content := range set {
		if strings.TrimSpace(content.Text) == "" {
			return nil, fmt.Errorf("%w: %w: empty text for %s", domain.ErrRemoteGeneration, domain.ErrMalformedResponse, platform)
		}
		if profile, err := catalog.Profile(platform); err == nil {
			out[platform] = domain.NewGeneratedContent(content.Text, content.Hashtags, profile.MaxChars)
			continue
		}
		// Platforms outside the catalog have no limit to check against.
		recounted := domain.NewGeneratedContent(content.Text, content.Hashtags, 0)
		recounted.IsOverLimit = content.IsOverLimit
		out[platform] = recounted
	}
	return out, nil
}
