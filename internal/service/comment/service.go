package comment

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/linkbook/internal/domain"
	"github.com/heartmarshall/linkbook/internal/validation"
	"github.com/heartmarshall/linkbook/pkg/ctxutil"
)

type commentRepo interface {
	Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error)
	ListByLinkID(ctx context.Context, linkID uuid.UUID) ([]*domain.Comment, error)
}

type linkRepo interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service posts and lists comments on links. Comments are immutable.
type Service struct {
	comments commentRepo
	links    linkRepo
	audit    auditLogger
	tx       txManager
	log      *slog.Logger
}

// NewService creates a new comment service.
func NewService(log *slog.Logger, comments commentRepo, links linkRepo, audit auditLogger, tx txManager) *Service {
	return &Service{
		comments: comments,
		links:    links,
		audit:    audit,
		tx:       tx,
		log:      log.With("service", "comment"),
	}
}

// CreateCommentInput holds the parameters for posting a comment.
type CreateCommentInput struct {
	LinkID uuid.UUID `field:"link_id" validate:"required"`
	Text   string    `field:"text"    validate:"notblank,max=5000"`
}

// Validate checks all fields and collects all errors.
func (i CreateCommentInput) Validate() error {
	return validation.Struct(i)
}

// Create posts a comment by the authenticated user. Blank text is a
// validation error.
func (s *Service) Create(ctx context.Context, input CreateCommentInput) (*domain.Comment, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.Text = strings.TrimSpace(input.Text)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var created *domain.Comment
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		exists, err := s.links.Exists(txCtx, input.LinkID)
		if err != nil {
			return fmt.Errorf("check link: %w", err)
		}
		if !exists {
			return fmt.Errorf("link %s: %w", input.LinkID, domain.ErrNotFound)
		}

		created, err = s.comments.Create(txCtx, &domain.Comment{
			UserID: userID,
			LinkID: input.LinkID,
			Text:   input.Text,
		})
		if err != nil {
			return fmt.Errorf("create comment: %w", err)
		}

		if err := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeComment,
			EntityID:   &created.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"link_id": map[string]any{"new": input.LinkID.String()},
			},
		}); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "comment created",
		slog.String("user_id", userID.String()),
		slog.String("link_id", input.LinkID.String()),
		slog.String("comment_id", created.ID.String()),
	)

	return created, nil
}

// ListForLink returns the link's comments, oldest first.
func (s *Service) ListForLink(ctx context.Context, linkID uuid.UUID) ([]*domain.Comment, error) {
	comments, err := s.comments.ListByLinkID(ctx, linkID)
	if err != nil {
		return nil, fmt.Errorf("comment.ListForLink: %w", err)
	}
	return comments, nil
}
