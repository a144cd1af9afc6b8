// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/gapps-query-service/internal/domain/gapps"
	"github.com/jsamuelsen11/gapps-query-service/internal/platform/logging"
	"github.com/jsamuelsen11/gapps-query-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/gapps-query-service/internal/ports"
)

// Query kinds used as the metric attribute value and in log records.
const (
	kindMember = "member"
	kindGroup  = "group"
	kindOwner  = "owner"
)

// Compile-time check that QueryService implements ports.QueryService.
var _ ports.QueryService = (*QueryService)(nil)

// QueryService implements ports.QueryService by populating the gapps query
// builders from request parameters. It applies the configured default domain,
// logs each build, and records the gapps.query.build.total metric. It never
// performs network I/O.
type QueryService struct {
	endpoint      gapps.Endpoint
	defaultDomain gapps.Optional[string]
	metrics       *telemetry.Metrics
	logger        *slog.Logger
}

// NewQueryService creates a QueryService that builds URLs against endpoint.
// An empty defaultDomain disables the fallback. If metrics is nil, metric
// recording is skipped; a nil logger discards output.
func NewQueryService(endpoint gapps.Endpoint, defaultDomain string, metrics *telemetry.Metrics, logger *slog.Logger) *QueryService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	dd := gapps.None[string]()
	if defaultDomain != "" {
		dd = gapps.Some(defaultDomain)
	}
	return &QueryService{
		endpoint:      endpoint,
		defaultDomain: dd,
		metrics:       metrics,
		logger:        logger,
	}
}

// MemberQueryURL builds the member feed URL for a group.
func (s *QueryService) MemberQueryURL(ctx context.Context, p ports.MemberQueryParams) (string, error) {
	q := gapps.NewMemberQuery(s.endpoint, s.domainOrDefault(p.Domain), p.GroupID, p.MemberID, p.StartMemberID)
	return s.build(ctx, kindMember, "MemberQueryURL", q,
		slog.String("group_id", p.GroupID.OrElse("")),
		slog.String("member_id", p.MemberID.OrElse("")),
	)
}

// GroupQueryURL builds the group feed URL for a domain.
func (s *QueryService) GroupQueryURL(ctx context.Context, p ports.GroupQueryParams) (string, error) {
	q := gapps.NewGroupQuery(s.endpoint, s.domainOrDefault(p.Domain), p.GroupID)
	q.SetMemberID(p.MemberID)
	q.SetDirectOnly(p.DirectOnly)
	q.SetStartGroupID(p.StartGroupID)
	return s.build(ctx, kindGroup, "GroupQueryURL", q,
		slog.String("group_id", p.GroupID.OrElse("")),
		slog.String("member_id", p.MemberID.OrElse("")),
	)
}

// OwnerQueryURL builds the owner feed URL for a group.
func (s *QueryService) OwnerQueryURL(ctx context.Context, p ports.OwnerQueryParams) (string, error) {
	q := gapps.NewOwnerQuery(s.endpoint, s.domainOrDefault(p.Domain), p.GroupID, p.OwnerEmail)
	return s.build(ctx, kindOwner, "OwnerQueryURL", q,
		slog.String("group_id", p.GroupID.OrElse("")),
		slog.String("owner_email", p.OwnerEmail.OrElse("")),
	)
}

func (s *QueryService) domainOrDefault(d gapps.Optional[string]) gapps.Optional[string] {
	if d.IsSet() {
		return d
	}
	return s.defaultDomain
}

// build runs the builder and handles logging and metrics for every query kind.
func (s *QueryService) build(ctx context.Context, kind, operation string, b gapps.Builder, attrs ...any) (string, error) {
	logger := logging.FromContextOr(ctx, s.logger)

	u, err := b.QueryURL()
	if err != nil {
		logger.WarnContext(ctx, "failed to build feed query",
			append([]any{
				slog.String("operation", operation),
				slog.Any("error", err),
			}, attrs...)...,
		)
		s.record(ctx, kind, "error")
		return "", err
	}

	logger.DebugContext(ctx, "built feed query",
		append([]any{
			slog.String("operation", operation),
			slog.String("url", u),
		}, attrs...)...,
	)
	s.record(ctx, kind, "success")
	return u, nil
}

// record increments the build counter. Safe to call with nil metrics.
func (s *QueryService) record(ctx context.Context, kind, result string) {
	if s.metrics == nil {
		return
	}
	s.metrics.QueryBuildTotal.Add(ctx, 1, metric.WithAttributes(
		telemetry.AttrQueryKind.String(kind),
		telemetry.AttrResult.String(result),
	))
}
