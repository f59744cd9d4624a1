package usecase

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/AgentTarik/financas-api/internal/domain"
	"github.com/AgentTarik/financas-api/internal/storage"
	"github.com/AgentTarik/financas-api/telemetry"
)

// TagService covers the tag CRUD operations behind the HTTP surface.
type TagService struct {
	log  *zap.Logger
	tags storage.TagRepo
}

func NewTagService(log *zap.Logger, tags storage.TagRepo) *TagService {
	return &TagService{log: log, tags: tags}
}

// Create rejects duplicate names before construction.
func (s *TagService) Create(ctx context.Context, name, color, icon string) (domain.Tag, error) {
	if _, err := s.tags.FindTagByName(ctx, name); err == nil {
		telemetry.IncTagsCreateFailed("conflict")
		return domain.Tag{}, storage.ErrTagAlreadyExists
	} else if !errors.Is(err, storage.ErrTagNotFound) {
		telemetry.IncTagsCreateFailed("db")
		return domain.Tag{}, err
	}

	tag, err := domain.CreateTag(name, color, icon)
	if err != nil {
		telemetry.IncTagsCreateFailed("validation")
		return domain.Tag{}, err
	}
	if err := s.tags.SaveTag(ctx, tag); err != nil {
		s.log.Error("failed to save tag", zap.Error(err))
		if errors.Is(err, storage.ErrTagAlreadyExists) {
			telemetry.IncTagsCreateFailed("conflict")
		} else {
			telemetry.IncTagsCreateFailed("db")
		}
		return domain.Tag{}, err
	}
	telemetry.IncTagsCreated()
	return tag, nil
}

// Update applies the provided fields; empty strings leave a field untouched.
func (s *TagService) Update(ctx context.Context, id, name, color, icon string) (domain.Tag, error) {
	tag, err := s.tags.FindTagByID(ctx, id)
	if err != nil {
		return domain.Tag{}, err
	}
	if name != "" {
		if tag, err = tag.Rename(name); err != nil {
			return domain.Tag{}, err
		}
	}
	if color != "" {
		if tag, err = tag.Recolor(color); err != nil {
			return domain.Tag{}, err
		}
	}
	if icon != "" {
		if tag, err = tag.Reicon(icon); err != nil {
			return domain.Tag{}, err
		}
	}
	if err := s.tags.SaveTag(ctx, tag); err != nil {
		s.log.Error("failed to update tag", zap.Error(err), zap.String("tag_id", id))
		return domain.Tag{}, err
	}
	return tag, nil
}

func (s *TagService) Get(ctx context.Context, id string) (domain.Tag, error) {
	return s.tags.FindTagByID(ctx, id)
}

func (s *TagService) List(ctx context.Context) ([]domain.Tag, error) {
	return s.tags.ListTags(ctx)
}

// Delete removes the tag; its associations go with it.
func (s *TagService) Delete(ctx context.Context, id string) error {
	if err := s.tags.DeleteTag(ctx, id); err != nil {
		return err
	}
	telemetry.IncTagsDeleted()
	return nil
}

func (s *TagService) Uses(ctx context.Context, id string) (int, error) {
	if _, err := s.tags.FindTagByID(ctx, id); err != nil {
		return 0, err
	}
	return s.tags.CountTagUses(ctx, id)
}
