package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bytebury/ctrunner/config"
	raceRepository "github.com/bytebury/ctrunner/internal/domains/races/repository"
	"github.com/bytebury/ctrunner/internal/domains/towns/dto"
	"github.com/bytebury/ctrunner/internal/domains/towns/repository"
	userRepository "github.com/bytebury/ctrunner/internal/domains/users/repository"
	"github.com/bytebury/ctrunner/pkg/constant"
	"github.com/bytebury/ctrunner/pkg/distance"
	"github.com/bytebury/ctrunner/pkg/failure"
	"github.com/bytebury/ctrunner/pkg/gdto"
	"github.com/bytebury/ctrunner/pkg/gform"
	"github.com/bytebury/ctrunner/pkg/helper"
	"github.com/bytebury/ctrunner/pkg/logger"
	"github.com/bytebury/ctrunner/pkg/pagination"
	"github.com/bytebury/ctrunner/pkg/postgres"
	"github.com/bytebury/ctrunner/pkg/redis"
	"github.com/jackc/pgx/v5"
)

type TownService interface {
	FindAll(ctx context.Context) ([]dto.TownResponse, error)
	FindCompleted(ctx context.Context, userID int64) ([]dto.CompletedTownResponse, error)
	CompletedPage(ctx context.Context, userID int64, req gdto.PaginationRequest) (pagination.Response[dto.CompletedTownResponse], error)
	SubmitCompletedTown(ctx context.Context, user userRepository.UserView, req dto.SubmitTownRequest) (dto.SubmitTownResponse, error)
}

const (
	cacheTownsKey       = "towns"
	defaultCacheTimeout = 5 * time.Second
)

type townService struct {
	db     postgres.PgxIface
	repo   repository.Querier
	races  raceRepository.Querier
	cache  redis.IRedisCache
	config *config.Config
	logger logger.Interface
	form   gform.Form
}

func New(db postgres.PgxIface, repo repository.Querier, races raceRepository.Querier, cache redis.IRedisCache, cfg *config.Config, l logger.Interface) TownService {
	form := gform.Run169()
	if cfg.Form.ID != "" {
		form.ID = cfg.Form.ID
	}

	return &townService{
		db:     db,
		repo:   repo,
		races:  races,
		cache:  cache,
		config: cfg,
		logger: l,
		form:   form,
	}
}

// FindAll lists every town. The list is static, so it is served from cache.
func (s *townService) FindAll(ctx context.Context) ([]dto.TownResponse, error) {
	cacheKey := helper.BuildCacheKey(cacheTownsKey, "all")

	var cacheRes []dto.TownResponse
	if err := s.cache.Get(ctx, cacheKey, &cacheRes); err == nil {
		return cacheRes, nil
	}

	towns, err := s.repo.ListTowns(ctx, s.db)
	if err != nil {
		s.logger.Error("service - town - find all - %v", err)

		return nil, failure.InternalError(err)
	}

	res := dto.TownsFromModel(towns)

	go func() {
		cacheCtx, cancel := context.WithTimeout(context.Background(), defaultCacheTimeout)
		defer cancel()

		if err := s.cache.Save(cacheCtx, cacheKey, res, s.config.Cache.Duration); err != nil {
			s.logger.Error("service - town - find all - failed to set cache: %v", err)
		}
	}()

	return res, nil
}

func (s *townService) FindCompleted(ctx context.Context, userID int64) ([]dto.CompletedTownResponse, error) {
	towns, err := s.repo.ListCompletedTowns(ctx, s.db, userID)
	if err != nil {
		s.logger.Error("service - town - find completed - %v", err)

		return nil, failure.InternalError(err)
	}

	return dto.CompletedFromModel(towns), nil
}

func (s *townService) CompletedPage(ctx context.Context, userID int64, req gdto.PaginationRequest) (pagination.Response[dto.CompletedTownResponse], error) {
	page, err := s.repo.CompletedTownsPage(ctx, s.db, req.ToPagination(), userID)
	if err != nil {
		s.logger.Error("service - town - completed page - %v", err)

		return pagination.Response[dto.CompletedTownResponse]{}, failure.InternalError(err)
	}

	return dto.CompletedFromPage(page), nil
}

// SubmitCompletedTown records the town, the race and the member's result, and
// returns the society form prefilled with the same information.
func (s *townService) SubmitCompletedTown(ctx context.Context, user userRepository.UserView, req dto.SubmitTownRequest) (res dto.SubmitTownResponse, err error) {
	if user.IsOrphan() {
		return res, failure.Unprocessable("link your runner id before submitting a town")
	}

	if req.TownID < constant.TownIDMin || req.TownID > constant.TownIDMax {
		return res, failure.Unprocessable("town %d is not a valid town", req.TownID)
	}

	raceDate, err := parseRaceDate(req.RaceDate)
	if err != nil {
		return res, err
	}

	unit, err := distance.ParseUnit(req.Unit)
	if err != nil {
		return res, failure.Unprocessable("%s", err.Error())
	}

	miles := distance.ToMiles(req.Distance, unit)
	if miles <= 0 {
		return res, failure.Unprocessable("distance %v %s is too short", req.Distance, unit)
	}

	raceName := strings.TrimSpace(req.RaceName)

	town, err := s.repo.GetTownByID(ctx, s.db, req.TownID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return res, failure.NotFound(fmt.Sprintf("town %d not found", req.TownID))
		}

		s.logger.Error("service - town - submit - failed to get town: %v", err)

		return res, failure.InternalError(err)
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		s.logger.Error("service - town - submit - failed to begin transaction: %v", err)

		return res, failure.InternalError(err)
	}

	defer func(tx pgx.Tx, ctx context.Context) {
		err := tx.Rollback(ctx)
		if err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			s.logger.Error("service - town - submit - failed to rollback transaction: %v", err)
		}
	}(tx, ctx)

	newlyCompleted, err := s.repo.MarkCompleted(ctx, tx, user.ID, town.ID)
	if err != nil {
		s.logger.Error("service - town - submit - failed to mark completed: %v", err)

		return res, failure.InternalError(err)
	}

	race, err := s.races.GetOrCreateRace(ctx, tx, raceRepository.CreateRaceParams{
		TownID:        town.ID,
		Name:          raceName,
		Miles:         float64(miles),
		StartAt:       raceDate,
		StreetAddress: helper.PgText(strings.TrimSpace(req.StreetAddress)),
		RaceURL:       helper.PgText(strings.TrimSpace(req.RaceURL)),
	})
	if err != nil {
		s.logger.Error("service - town - submit - failed to get or create race: %v", err)

		return res, failure.InternalError(err)
	}

	err = s.races.SaveResult(ctx, tx, raceRepository.SaveResultParams{
		UserID: user.ID,
		RaceID: race.ID,
		Notes:  helper.PgText(strings.TrimSpace(req.Notes)),
	})
	if err != nil {
		s.logger.Error("service - town - submit - failed to save result: %v", err)

		return res, failure.InternalError(err)
	}

	completed, err := s.repo.ListCompletedTowns(ctx, tx, user.ID)
	if err != nil {
		s.logger.Error("service - town - submit - failed to count completed towns: %v", err)

		return res, failure.InternalError(err)
	}

	if err := tx.Commit(ctx); err != nil {
		s.logger.Error("service - town - submit - failed to commit transaction: %v", err)

		return res, failure.InternalError(err)
	}

	lastTown := newlyCompleted && len(completed) >= constant.TownIDMax

	answers := s.form.Answers(gform.Submission{
		RunnerID:  user.RunnerID.Int64,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Town:      town.DisplayName,
		RaceName:  raceName,
		RaceDate:  raceDate,
		Miles:     miles,
		LastTown:  lastTown,
		Comment:   strings.TrimSpace(req.Notes),
	})

	s.logger.Info("service - town - submit - user %d completed town %d (new: %t)", user.ID, town.ID, newlyCompleted)

	return dto.SubmitTownResponse{
		FormURL:        s.form.ResponseURL(),
		Answers:        answers,
		Town:           town.DisplayName,
		Miles:          float64(miles),
		NewlyCompleted: newlyCompleted,
		LastTown:       lastTown,
	}, nil
}

// parseRaceDate reads a YYYY-MM-DD date in the app timezone and rejects dates after today.
func parseRaceDate(value string) (time.Time, error) {
	today := helper.TodayInAppTimezone()

	date, err := time.ParseInLocation(constant.DateFormat, strings.TrimSpace(value), today.Location())
	if err != nil {
		return time.Time{}, failure.Unprocessable("race date must be formatted as %s", constant.DateFormat)
	}

	if date.After(today) {
		return time.Time{}, failure.Unprocessable("race date cannot be in the future")
	}

	return date, nil
}
