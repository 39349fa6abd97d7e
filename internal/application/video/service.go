// Package video implements the video use cases. Creation is the most involved
// orchestration in the catalog: three cross-aggregate existence checks, a full
// validation pass, sequential media storage and an ID-scoped cleanup when a
// late failure would otherwise leave orphaned uploads behind.
package video

import (
	"context"
	"fmt"

	"github.com/kinotek/catalog/internal/application/refs"
	"github.com/kinotek/catalog/internal/domain/castmember"
	"github.com/kinotek/catalog/internal/domain/category"
	"github.com/kinotek/catalog/internal/domain/genre"
	"github.com/kinotek/catalog/internal/domain/validation"
	"github.com/kinotek/catalog/internal/domain/video"
	"github.com/kinotek/catalog/pkg/errors"
	"github.com/kinotek/catalog/pkg/events"
	"github.com/kinotek/catalog/pkg/logger"
	"github.com/kinotek/catalog/pkg/pagination"
)

// Service orchestrates video aggregates against the video gateway, the three
// referenced-aggregate gateways and the media resource gateway.
type Service struct {
	gateway     video.Gateway
	categories  category.Gateway
	genres      genre.Gateway
	castMembers castmember.Gateway
	media       video.MediaResourceGateway
	bus         events.EventBus
	log         logger.Logger
}

// NewService creates a video service.
func NewService(
	gateway video.Gateway,
	categories category.Gateway,
	genres genre.Gateway,
	castMembers castmember.Gateway,
	media video.MediaResourceGateway,
	bus events.EventBus,
	log logger.Logger,
) *Service {
	return &Service{
		gateway:     gateway,
		categories:  categories,
		genres:      genres,
		castMembers: castMembers,
		media:       media,
		bus:         bus,
		log:         log,
	}
}

// Create builds and validates a video, then stores its media and persists it.
// When any validation or reference error exists, the call fails atomically
// with the full error list: no media is stored and nothing is persisted.
func (s *Service) Create(ctx context.Context, cmd CreateVideoCommand) (CreateVideoOutput, error) {
	// An unknown rating code maps to the zero value; the entity validator
	// reports it together with the other field errors.
	rating, _ := video.RatingOf(cmd.Rating)

	categoryIDs := refs.ToIDs[category.ID](cmd.Categories)
	genreIDs := refs.ToIDs[genre.ID](cmd.Genres)
	memberIDs := refs.ToIDs[castmember.ID](cmd.CastMembers)

	notification := validation.NewNotification()
	if err := s.checkReferences(ctx, notification, categoryIDs, genreIDs, memberIDs); err != nil {
		return CreateVideoOutput{}, err
	}

	aggregate := video.NewVideo(
		cmd.Title,
		cmd.Description,
		cmd.LaunchedAt,
		cmd.Duration,
		cmd.Opened,
		cmd.Published,
		rating,
		categoryIDs,
		genreIDs,
		memberIDs,
	)
	aggregate.Validate(notification)

	if notification.HasError() {
		return CreateVideoOutput{}, validation.DomainErrorFrom("Could not create Aggregate Video", notification)
	}

	created, err := s.storeAndPersist(ctx, "create", cmd.resources(), aggregate, s.gateway.Create)
	if err != nil {
		return CreateVideoOutput{}, err
	}

	s.bus.PublishAsync(ctx, events.NewAggregateEvent("video.created", created.ID.String(), nil))
	s.log.Info("Video created",
		logger.String("id", created.ID.String()),
		logger.String("title", created.Title))

	return CreateVideoOutput{ID: created.ID.String()}, nil
}

// Update mutates an existing video. Resources present in the command replace
// the stored asset in the same slot; the same atomicity and cleanup rules as
// Create apply.
func (s *Service) Update(ctx context.Context, cmd UpdateVideoCommand) (VideoOutput, error) {
	aggregate, err := s.gateway.FindByID(ctx, video.IDFrom(cmd.ID))
	if err != nil {
		return VideoOutput{}, err
	}

	rating, _ := video.RatingOf(cmd.Rating)
	categoryIDs := refs.ToIDs[category.ID](cmd.Categories)
	genreIDs := refs.ToIDs[genre.ID](cmd.Genres)
	memberIDs := refs.ToIDs[castmember.ID](cmd.CastMembers)

	notification := validation.NewNotification()
	if err := s.checkReferences(ctx, notification, categoryIDs, genreIDs, memberIDs); err != nil {
		return VideoOutput{}, err
	}

	aggregate.Update(
		cmd.Title,
		cmd.Description,
		cmd.LaunchedAt,
		cmd.Duration,
		cmd.Opened,
		cmd.Published,
		rating,
		categoryIDs,
		genreIDs,
		memberIDs,
	)
	aggregate.Validate(notification)

	if notification.HasError() {
		return VideoOutput{}, validation.DomainErrorFrom("Could not update Aggregate Video", notification)
	}

	updated, err := s.storeAndPersist(ctx, "update", resourceSet{
		video:         cmd.Video,
		trailer:       cmd.Trailer,
		banner:        cmd.Banner,
		thumbnail:     cmd.Thumbnail,
		thumbnailHalf: cmd.ThumbnailHalf,
	}, aggregate, s.gateway.Update)
	if err != nil {
		return VideoOutput{}, err
	}

	s.bus.PublishAsync(ctx, events.NewAggregateEvent("video.updated", updated.ID.String(), nil))

	return VideoOutputFrom(updated), nil
}

// GetByID retrieves a video by its identifier.
func (s *Service) GetByID(ctx context.Context, id string) (VideoOutput, error) {
	aggregate, err := s.gateway.FindByID(ctx, video.IDFrom(id))
	if err != nil {
		return VideoOutput{}, err
	}
	return VideoOutputFrom(aggregate), nil
}

// List returns a page of videos matching the search query.
func (s *Service) List(ctx context.Context, query pagination.SearchQuery) (pagination.Page[VideoOutput], error) {
	page, err := s.gateway.FindAll(ctx, query)
	if err != nil {
		return pagination.Page[VideoOutput]{}, err
	}
	return pagination.Map(page, VideoOutputFrom), nil
}

// Delete removes a video and every media asset stored under its ID.
func (s *Service) Delete(ctx context.Context, id string) error {
	videoID := video.IDFrom(id)
	if err := s.gateway.DeleteByID(ctx, videoID); err != nil {
		s.log.Error("Failed to delete video", logger.String("id", id), logger.Error(err))
		return err
	}
	if err := s.media.ClearResources(ctx, videoID); err != nil {
		s.log.Error("Failed to clear video resources", logger.String("id", id), logger.Error(err))
		return err
	}
	s.bus.PublishAsync(ctx, events.NewAggregateEvent("video.deleted", id, nil))
	return nil
}

// checkReferences validates the three referenced-aggregate kinds
// independently, appending at most one error per kind in a fixed order.
func (s *Service) checkReferences(
	ctx context.Context,
	notification *validation.Notification,
	categoryIDs []category.ID,
	genreIDs []genre.ID,
	memberIDs []castmember.ID,
) error {
	categoriesCheck, err := refs.CheckExists(ctx, "categories", categoryIDs, s.categories.ExistsByIDs)
	if err != nil {
		return err
	}
	notification.AppendHandler(categoriesCheck)

	genresCheck, err := refs.CheckExists(ctx, "genres", genreIDs, s.genres.ExistsByIDs)
	if err != nil {
		return err
	}
	notification.AppendHandler(genresCheck)

	membersCheck, err := refs.CheckExists(ctx, "cast members", memberIDs, s.castMembers.ExistsByIDs)
	if err != nil {
		return err
	}
	notification.AppendHandler(membersCheck)

	return nil
}

type resourceSet struct {
	video         *video.Resource
	trailer       *video.Resource
	banner        *video.Resource
	thumbnail     *video.Resource
	thumbnailHalf *video.Resource
}

func (c CreateVideoCommand) resources() resourceSet {
	return resourceSet{
		video:         c.Video,
		trailer:       c.Trailer,
		banner:        c.Banner,
		thumbnail:     c.Thumbnail,
		thumbnailHalf: c.ThumbnailHalf,
	}
}

// storeAndPersist stores each present resource through the media gateway,
// attaches the returned descriptors and persists the assembled aggregate.
// Media goes first so the persisted record references final locations. Any
// failure after the first store triggers one ID-scoped cleanup before the
// wrapped internal error is returned.
func (s *Service) storeAndPersist(
	ctx context.Context,
	action string,
	res resourceSet,
	aggregate *video.Video,
	persist func(context.Context, *video.Video) (*video.Video, error),
) (*video.Video, error) {
	id := aggregate.ID

	persisted, err := func() (*video.Video, error) {
		if res.video != nil {
			media, err := s.media.StoreAudioVideo(ctx, id, *res.video)
			if err != nil {
				return nil, err
			}
			aggregate.SetVideo(&media)
		}
		if res.trailer != nil {
			media, err := s.media.StoreAudioVideo(ctx, id, *res.trailer)
			if err != nil {
				return nil, err
			}
			aggregate.SetTrailer(&media)
		}
		if res.banner != nil {
			media, err := s.media.StoreImage(ctx, id, *res.banner)
			if err != nil {
				return nil, err
			}
			aggregate.SetBanner(&media)
		}
		if res.thumbnail != nil {
			media, err := s.media.StoreImage(ctx, id, *res.thumbnail)
			if err != nil {
				return nil, err
			}
			aggregate.SetThumbnail(&media)
		}
		if res.thumbnailHalf != nil {
			media, err := s.media.StoreImage(ctx, id, *res.thumbnailHalf)
			if err != nil {
				return nil, err
			}
			aggregate.SetThumbnailHalf(&media)
		}
		return persist(ctx, aggregate)
	}()
	if err != nil {
		if clearErr := s.media.ClearResources(ctx, id); clearErr != nil {
			s.log.Error("Failed to clear resources after aborted video write",
				logger.String("id", id.String()),
				logger.Error(clearErr))
		}
		return nil, errors.InternalWrap(
			fmt.Sprintf("An error on %s video was observed [videoId:%s]", action, id.String()), err)
	}

	return persisted, nil
}
