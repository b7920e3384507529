package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bytebury/ctrunner/config"
	"github.com/bytebury/ctrunner/internal/domains/races/dto"
	"github.com/bytebury/ctrunner/internal/domains/races/repository"
	townRepository "github.com/bytebury/ctrunner/internal/domains/towns/repository"
	"github.com/bytebury/ctrunner/pkg/distance"
	"github.com/bytebury/ctrunner/pkg/failure"
	"github.com/bytebury/ctrunner/pkg/gsheet"
	"github.com/bytebury/ctrunner/pkg/helper"
	"github.com/bytebury/ctrunner/pkg/logger"
	"github.com/bytebury/ctrunner/pkg/pagination"
	"github.com/bytebury/ctrunner/pkg/postgres"
	"github.com/jackc/pgx/v5"
)

type RaceService interface {
	SubmitTownSearch(ctx context.Context, req dto.SubmitTownSearchRequest) (pagination.Response[dto.RaceResponse], error)
	SearchUpcoming(ctx context.Context, req dto.SearchRacesRequest) (pagination.Response[dto.RaceResponse], error)
	GetRace(ctx context.Context, id int64) (dto.RaceResponse, error)
	CreateRace(ctx context.Context, req dto.CreateRaceRequest) (dto.RaceResponse, error)
	ImportUpcoming(ctx context.Context, payload []byte) (dto.ImportResponse, error)
}

// Columns of the published upcoming races sheet.
const (
	colDate = iota
	colTime
	colTown
	colName
	colDistance
	colURL
	colAddress
)

type raceService struct {
	db     postgres.PgxIface
	repo   repository.Querier
	towns  townRepository.Querier
	config *config.Config
	logger logger.Interface
}

func New(db postgres.PgxIface, repo repository.Querier, towns townRepository.Querier, cfg *config.Config, l logger.Interface) RaceService {
	return &raceService{
		db:     db,
		repo:   repo,
		towns:  towns,
		config: cfg,
		logger: l,
	}
}

// SubmitTownSearch backs the race picker on the submit town form.
func (s *raceService) SubmitTownSearch(ctx context.Context, req dto.SubmitTownSearchRequest) (pagination.Response[dto.RaceResponse], error) {
	page, err := s.repo.SubmitTownSearch(ctx, s.db, helper.ContainsPattern(req.RaceName), req.TownID)
	if err != nil {
		s.logger.Error("service - race - submit town search - %v", err)

		return pagination.Response[dto.RaceResponse]{}, failure.InternalError(err)
	}

	return dto.RacesFromPage(page), nil
}

func (s *raceService) SearchUpcoming(ctx context.Context, req dto.SearchRacesRequest) (pagination.Response[dto.RaceResponse], error) {
	var townID *int64
	if req.TownID > 0 {
		townID = &req.TownID
	}

	page, err := s.repo.SearchUpcoming(ctx, s.db, req.ToPagination(), helper.ContainsPattern(req.RaceName), townID)
	if err != nil {
		s.logger.Error("service - race - search upcoming - %v", err)

		return pagination.Response[dto.RaceResponse]{}, failure.InternalError(err)
	}

	return dto.RacesFromPage(page), nil
}

func (s *raceService) GetRace(ctx context.Context, id int64) (dto.RaceResponse, error) {
	race, err := s.repo.GetRaceByID(ctx, s.db, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dto.RaceResponse{}, failure.NotFound(fmt.Sprintf("race %d not found", id))
		}

		s.logger.Error("service - race - get - %v", err)

		return dto.RaceResponse{}, failure.InternalError(err)
	}

	return dto.RaceResponse{}.FromModel(race), nil
}

func (s *raceService) CreateRace(ctx context.Context, req dto.CreateRaceRequest) (dto.RaceResponse, error) {
	miles, err := distance.Parse(req.Distance)
	if err != nil {
		return dto.RaceResponse{}, failure.Unprocessable("%s", err.Error())
	}

	startAt, err := time.Parse(time.RFC3339, req.StartAt)
	if err != nil {
		return dto.RaceResponse{}, failure.Unprocessable("start_at must be an RFC 3339 timestamp")
	}

	if _, err := s.towns.GetTownByID(ctx, s.db, req.TownID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dto.RaceResponse{}, failure.NotFound(fmt.Sprintf("town %d not found", req.TownID))
		}

		s.logger.Error("service - race - create - failed to get town: %v", err)

		return dto.RaceResponse{}, failure.InternalError(err)
	}

	race, err := s.repo.CreateRace(ctx, s.db, repository.CreateRaceParams{
		TownID:        req.TownID,
		Name:          strings.TrimSpace(req.Name),
		Miles:         float64(miles),
		StartAt:       startAt,
		StreetAddress: helper.PgText(strings.TrimSpace(req.StreetAddress)),
		RaceURL:       helper.PgText(strings.TrimSpace(req.RaceURL)),
	})
	if err != nil {
		if errors.Is(err, postgres.ErrAlreadyExists) {
			return dto.RaceResponse{}, failure.Conflict("race already exists")
		}

		s.logger.Error("service - race - create - %v", err)

		return dto.RaceResponse{}, failure.InternalError(err)
	}

	return dto.RaceResponse{}.FromModel(race), nil
}

// ImportUpcoming loads races from a published gviz sheet payload. Rows that
// cannot be read, name an unknown town, already started or already exist are
// skipped.
func (s *raceService) ImportUpcoming(ctx context.Context, payload []byte) (res dto.ImportResponse, err error) {
	table, err := gsheet.Parse(payload)
	if err != nil {
		return res, failure.BadRequest(err)
	}

	towns, err := s.towns.ListTowns(ctx, s.db)
	if err != nil {
		s.logger.Error("service - race - import - failed to list towns: %v", err)

		return res, failure.InternalError(err)
	}

	townIDs := make(map[string]int64, len(towns)*2)
	for _, t := range towns {
		townIDs[strings.ToLower(t.Name)] = t.ID
		townIDs[strings.ToLower(t.DisplayName)] = t.ID
	}

	now := helper.NowInAppTimezone()

	tx, err := s.db.Begin(ctx)
	if err != nil {
		s.logger.Error("service - race - import - failed to begin transaction: %v", err)

		return res, failure.InternalError(err)
	}

	defer func(tx pgx.Tx, ctx context.Context) {
		err := tx.Rollback(ctx)
		if err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			s.logger.Error("service - race - import - failed to rollback transaction: %v", err)
		}
	}(tx, ctx)

	for i, row := range table.Rows {
		params, err := rowToRace(row, townIDs, now.Location())
		if err != nil {
			s.logger.Debug("service - race - import - skipping row %d: %v", i, err)
			res.Skipped++

			continue
		}

		if params.StartAt.Before(now) {
			res.Skipped++

			continue
		}

		_, err = s.repo.CreateRace(ctx, tx, params)
		if errors.Is(err, postgres.ErrAlreadyExists) {
			res.Skipped++

			continue
		}

		if err != nil {
			s.logger.Error("service - race - import - failed to create race from row %d: %v", i, err)

			return dto.ImportResponse{}, failure.InternalError(err)
		}

		res.Imported++
	}

	if err := tx.Commit(ctx); err != nil {
		s.logger.Error("service - race - import - failed to commit transaction: %v", err)

		return dto.ImportResponse{}, failure.InternalError(err)
	}

	s.logger.Info("service - race - import - imported %d, skipped %d", res.Imported, res.Skipped)

	return res, nil
}

var errMissingCell = errors.New("missing cell")

func rowToRace(row gsheet.Row, townIDs map[string]int64, loc *time.Location) (repository.CreateRaceParams, error) {
	date, ok := row.String(colDate)
	if !ok {
		return repository.CreateRaceParams{}, fmt.Errorf("date: %w", errMissingCell)
	}

	clock, ok := row.String(colTime)
	if !ok {
		return repository.CreateRaceParams{}, fmt.Errorf("time: %w", errMissingCell)
	}

	start, err := gsheet.ParseDateCells(date, clock)
	if err != nil {
		return repository.CreateRaceParams{}, err
	}

	// Sheet times are wall clock times in the app timezone.
	start = time.Date(start.Year(), start.Month(), start.Day(), start.Hour(), start.Minute(), start.Second(), 0, loc)

	town, _ := row.String(colTown)

	townID, ok := townIDs[strings.ToLower(town)]
	if !ok {
		return repository.CreateRaceParams{}, fmt.Errorf("unknown town %q", town)
	}

	name, _ := row.String(colName)
	if helper.IsBlank(name) {
		return repository.CreateRaceParams{}, fmt.Errorf("name: %w", errMissingCell)
	}

	rawDistance, ok := row.String(colDistance)
	if !ok {
		return repository.CreateRaceParams{}, fmt.Errorf("distance: %w", errMissingCell)
	}

	miles, err := distance.Parse(rawDistance)
	if err != nil {
		return repository.CreateRaceParams{}, err
	}

	raceURL, _ := row.String(colURL)
	address, _ := row.String(colAddress)

	return repository.CreateRaceParams{
		TownID:        townID,
		Name:          name,
		Miles:         float64(miles),
		StartAt:       start,
		StreetAddress: helper.PgText(address),
		RaceURL:       helper.PgText(raceURL),
	}, nil
}
