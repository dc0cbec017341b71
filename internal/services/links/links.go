package links

import (
	"context"
	"errors"
	"fmt"

	"shortlink/internal/domain/models"
	"shortlink/internal/repository"

	"github.com/rs/zerolog"
)

//go:generate mockgen -destination=mocks/slug_generator_mock.go -package=mocks shortlink/internal/services/links SlugGenerator
type SlugGenerator interface {
	GenerateUnique(ctx context.Context) (string, error)
}

// Config - явные политики сервиса. OpenPublicWrites сохраняет наблюдаемое
// поведение оригинала (аноним может создавать и править публичные ссылки);
// выключение требует аутентификацию для любой записи.
type Config struct {
	OpenPublicWrites bool
	ShortlinkHosts   []string
}

type Service struct {
	storage   repository.Storage
	generator SlugGenerator
	cfg       Config
	log       *zerolog.Logger
}

type CreateParams struct {
	Slug           string
	OriginalURL    string
	Description    string
	IsPersonalized bool
}

type UpdateParams struct {
	ID          string
	Slug        string
	OriginalURL string
	Description string
	IsDeleted   *bool // nil = не менять
}

func NewService(storage repository.Storage, generator SlugGenerator, cfg Config, log *zerolog.Logger) *Service {
	return &Service{
		storage:   storage,
		generator: generator,
		cfg:       cfg,
		log:       log,
	}
}

// List возвращает видимые вызывающему ссылки, новые первыми.
// Персональные списки доступны только аутентифицированному владельцу.
func (s *Service) List(ctx context.Context, caller models.Identity, personalized, trash bool) ([]models.LinkRecord, error) {
	filter := repository.Filter{Deleted: trash}

	if personalized {
		if caller.IsAnonymous() {
			return nil, fmt.Errorf("%w: personalized links require a signed-in caller", models.ErrUnauthorized)
		}
		yes := true
		filter.Personalized = &yes
		filter.OwnerID = caller.UserID
	} else {
		no := false
		filter.Personalized = &no
	}

	return s.storage.List(ctx, filter)
}

// Create валидирует запись и вставляет ее. Пустой slug означает "выдай
// автоматически". Гонку двух создателей одного slug разрешает хранилище.
func (s *Service) Create(ctx context.Context, caller models.Identity, params CreateParams) (models.LinkRecord, error) {
	link := models.LinkRecord{
		Slug:           params.Slug,
		OriginalURL:    params.OriginalURL,
		Description:    params.Description,
		IsPersonalized: params.IsPersonalized,
	}

	if params.IsPersonalized {
		if caller.IsAnonymous() {
			return models.LinkRecord{}, fmt.Errorf("%w: personalized links require a signed-in caller", models.ErrUnauthorized)
		}
		link.OwnerID = caller.UserID
	} else if !s.cfg.OpenPublicWrites && caller.IsAnonymous() {
		return models.LinkRecord{}, fmt.Errorf("%w: anonymous public writes are disabled", models.ErrUnauthorized)
	}

	if link.Slug == "" {
		generated, err := s.generator.GenerateUnique(ctx)
		if err != nil {
			return models.LinkRecord{}, fmt.Errorf("failed to generate slug: %w", err)
		}
		link.Slug = generated
	}

	if err := link.Validate(s.cfg.ShortlinkHosts); err != nil {
		return models.LinkRecord{}, err
	}

	return s.storage.Create(ctx, link)
}

// Update правит изменяемые поля существующей записи. Владелец, счетчик и
// момент создания неизменяемы.
func (s *Service) Update(ctx context.Context, caller models.Identity, params UpdateParams) (models.LinkRecord, error) {
	if params.ID == "" {
		return models.LinkRecord{}, fmt.Errorf("%w: id is required", models.ErrInvalidData)
	}

	existing, err := s.storage.GetByID(ctx, params.ID)
	if err != nil {
		return models.LinkRecord{}, err
	}

	if err := s.authorizeWrite(caller, existing); err != nil {
		return models.LinkRecord{}, err
	}

	existing.Slug = params.Slug
	existing.OriginalURL = params.OriginalURL
	existing.Description = params.Description
	if params.IsDeleted != nil {
		existing.IsDeleted = *params.IsDeleted
	}

	if err := existing.Validate(s.cfg.ShortlinkHosts); err != nil {
		return models.LinkRecord{}, err
	}

	return s.storage.Update(ctx, existing)
}

// SoftDelete помечает запись удаленной. Повторное удаление не ошибка.
func (s *Service) SoftDelete(ctx context.Context, caller models.Identity, id string) error {
	return s.setDeleted(ctx, caller, id, true)
}

// Restore возвращает запись из корзины. Идемпотентно.
func (s *Service) Restore(ctx context.Context, caller models.Identity, id string) error {
	return s.setDeleted(ctx, caller, id, false)
}

func (s *Service) setDeleted(ctx context.Context, caller models.Identity, id string, deleted bool) error {
	if id == "" {
		return fmt.Errorf("%w: id is required", models.ErrInvalidData)
	}

	existing, err := s.storage.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.authorizeWrite(caller, existing); err != nil {
		return err
	}

	return s.storage.SetDeleted(ctx, id, deleted)
}

// CheckSlug сообщает занят ли slug, учитывая удаленные записи.
func (s *Service) CheckSlug(ctx context.Context, slug string) (bool, error) {
	if slug == "" {
		return false, fmt.Errorf("%w: slug is required", models.ErrInvalidData)
	}
	return s.storage.SlugExists(ctx, slug)
}

// Resolve находит живую запись по slug и засчитывает переход. Сбой
// инкремента не блокирует редирект: счетчик - телеметрия, а не шлюз.
func (s *Service) Resolve(ctx context.Context, slug string) (models.LinkRecord, error) {
	link, err := s.storage.GetBySlug(ctx, slug, false)
	if err != nil {
		return models.LinkRecord{}, err
	}

	if err := s.storage.IncrementClicks(ctx, link.ID); err != nil {
		s.log.Warn().Err(err).Str("slug", slug).Msg("click increment failed")
	}

	return link, nil
}

// Get возвращает живую запись по slug без учета перехода.
func (s *Service) Get(ctx context.Context, slug string) (models.LinkRecord, error) {
	return s.storage.GetBySlug(ctx, slug, false)
}

func (s *Service) PingStorage(ctx context.Context) error {
	if err := s.storage.Ping(ctx); err != nil {
		return fmt.Errorf("storage ping failed: %w", err)
	}
	return nil
}

func (s *Service) authorizeWrite(caller models.Identity, link models.LinkRecord) error {
	if link.IsPersonalized {
		if caller.IsAnonymous() {
			return fmt.Errorf("%w: personalized links require a signed-in caller", models.ErrUnauthorized)
		}
		if caller.UserID != link.OwnerID {
			return fmt.Errorf("%w: caller does not own this link", models.ErrForbidden)
		}
		return nil
	}

	if !s.cfg.OpenPublicWrites && caller.IsAnonymous() {
		return fmt.Errorf("%w: anonymous public writes are disabled", models.ErrUnauthorized)
	}
	return nil
}

// IsNotFound упрощает обработчикам различение "нет записи" от сбоев.
func IsNotFound(err error) bool {
	return errors.Is(err, models.ErrUnfound)
}
