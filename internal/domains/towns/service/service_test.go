package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/bytebury/ctrunner/config"
	raceMock "github.com/bytebury/ctrunner/internal/domains/races/mock"
	raceRepository "github.com/bytebury/ctrunner/internal/domains/races/repository"
	"github.com/bytebury/ctrunner/internal/domains/towns/dto"
	"github.com/bytebury/ctrunner/internal/domains/towns/mock"
	"github.com/bytebury/ctrunner/internal/domains/towns/repository"
	userRepository "github.com/bytebury/ctrunner/internal/domains/users/repository"
	"github.com/bytebury/ctrunner/pkg/failure"
	"github.com/bytebury/ctrunner/pkg/gdto"
	"github.com/bytebury/ctrunner/pkg/helper"
	log "github.com/bytebury/ctrunner/pkg/logger/mock"
	"github.com/bytebury/ctrunner/pkg/pagination"
	"github.com/bytebury/ctrunner/pkg/redis"
	redisMock "github.com/bytebury/ctrunner/pkg/redis/mock"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	service TownService
	querier *mock.MockQuerier
	races   *raceMock.MockQuerier
	cache   *redisMock.MockIRedisCache
	pgx     pgxmock.PgxPoolIface
}

func setup(t *testing.T, cfg *config.Config) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockPgx, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockPgx.Close)

	mockLogger := log.NewMockInterface(ctrl)
	mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()

	f := fixture{
		querier: mock.NewMockQuerier(ctrl),
		races:   raceMock.NewMockQuerier(ctrl),
		cache:   redisMock.NewMockIRedisCache(ctrl),
		pgx:     mockPgx,
	}
	f.service = New(mockPgx, f.querier, f.races, f.cache, cfg, mockLogger)

	return f
}

var andover = repository.Town{ID: 1, Name: "andover", DisplayName: "Andover", CountyID: 8, County: "Tolland"}

func member() userRepository.UserView {
	return userRepository.UserView{
		ID:        7,
		RunnerID:  pgtype.Int8{Int64: 42, Valid: true},
		FirstName: "jane",
		LastName:  "doe",
	}
}

func TestTownService_FindAll(t *testing.T) {
	ctx := context.Background()

	t.Run("success: from database", func(t *testing.T) {
		f := setup(t, &config.Config{Cache: config.Cache{Duration: 60}})

		f.cache.EXPECT().Get(gomock.Any(), "ctrunner:cache:towns:all", gomock.Any()).Return(redis.ErrCacheMiss)
		f.cache.EXPECT().Save(gomock.Any(), "ctrunner:cache:towns:all", gomock.Any(), 60).Return(nil).AnyTimes()
		f.querier.EXPECT().ListTowns(gomock.Any(), gomock.Any()).Return([]repository.Town{andover}, nil)

		res, err := f.service.FindAll(ctx)

		require.NoError(t, err)
		assert.Equal(t, []dto.TownResponse{{ID: 1, Name: "Andover", Slug: "andover", CountyID: 8, County: "Tolland"}}, res)
	})

	t.Run("success: from cache", func(t *testing.T) {
		f := setup(t, &config.Config{})

		cached := dto.TownsFromModel([]repository.Town{andover})

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).SetArg(2, cached).Return(nil)

		res, err := f.service.FindAll(ctx)

		require.NoError(t, err)
		assert.Equal(t, cached, res)
	})

	t.Run("error: database", func(t *testing.T) {
		f := setup(t, &config.Config{})

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(redis.ErrCacheMiss)
		f.querier.EXPECT().ListTowns(gomock.Any(), gomock.Any()).Return(nil, errors.New("error"))

		_, err := f.service.FindAll(ctx)

		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})
}

func TestTownService_CompletedPage(t *testing.T) {
	f := setup(t, &config.Config{})

	completedAt := time.Date(2025, time.April, 5, 10, 0, 0, 0, time.UTC)
	page := pagination.NewResponse([]repository.CompletedTown{
		{UserID: 7, TownID: 1, Name: "andover", DisplayName: "Andover", County: "Tolland", CompletedAt: completedAt},
	}, pagination.Params{Page: 1, PageSize: 20}, 1)

	f.querier.EXPECT().CompletedTownsPage(gomock.Any(), gomock.Any(), pagination.Request{}, int64(7)).Return(page, nil)

	res, err := f.service.CompletedPage(context.Background(), 7, gdto.PaginationRequest{})

	require.NoError(t, err)
	assert.Equal(t, 1, res.TotalPages)
	assert.Equal(t, "Andover", res.Data[0].Name)
	assert.Equal(t, completedAt, res.Data[0].CompletedAt)
}

func TestTownService_SubmitCompletedTown(t *testing.T) {
	ctx := context.Background()
	raceDate := time.Date(2024, time.May, 4, 0, 0, 0, 0, time.UTC)

	req := dto.SubmitTownRequest{
		TownID:   1,
		RaceName: " Hop River 5K ",
		RaceDate: "2024-05-04",
		Distance: 5,
		Unit:     "km",
		Notes:    "hilly",
	}

	raceParams := raceRepository.CreateRaceParams{
		TownID:        1,
		Name:          "Hop River 5K",
		Miles:         3.1,
		StartAt:       raceDate,
		StreetAddress: helper.PgText(""),
		RaceURL:       helper.PgText(""),
	}

	t.Run("error: no runner id", func(t *testing.T) {
		f := setup(t, &config.Config{})

		_, err := f.service.SubmitCompletedTown(ctx, userRepository.UserView{ID: 7}, req)

		assert.Equal(t, http.StatusUnprocessableEntity, failure.GetCode(err))
	})

	t.Run("error: invalid input", func(t *testing.T) {
		tests := []struct {
			name   string
			modify func(r *dto.SubmitTownRequest)
		}{
			{"town out of range", func(r *dto.SubmitTownRequest) { r.TownID = 170 }},
			{"future date", func(r *dto.SubmitTownRequest) {
				r.RaceDate = helper.TodayInAppTimezone().AddDate(0, 0, 2).Format("2006-01-02")
			}},
			{"bad date", func(r *dto.SubmitTownRequest) { r.RaceDate = "05/04/2024" }},
			{"bad unit", func(r *dto.SubmitTownRequest) { r.Unit = "furlongs" }},
			{"distance rounds to zero miles", func(r *dto.SubmitTownRequest) { r.Distance = 0.04 }},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				f := setup(t, &config.Config{})

				r := req
				tt.modify(&r)

				_, err := f.service.SubmitCompletedTown(ctx, member(), r)

				assert.Equal(t, http.StatusUnprocessableEntity, failure.GetCode(err))
			})
		}
	})

	t.Run("error: unknown town", func(t *testing.T) {
		f := setup(t, &config.Config{})

		f.querier.EXPECT().GetTownByID(gomock.Any(), gomock.Any(), int64(1)).Return(repository.Town{}, pgx.ErrNoRows)

		_, err := f.service.SubmitCompletedTown(ctx, member(), req)

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("error: save result rolls back", func(t *testing.T) {
		f := setup(t, &config.Config{})

		f.querier.EXPECT().GetTownByID(gomock.Any(), gomock.Any(), int64(1)).Return(andover, nil)
		f.pgx.ExpectBegin()
		f.querier.EXPECT().MarkCompleted(gomock.Any(), gomock.Any(), int64(7), int64(1)).Return(true, nil)
		f.races.EXPECT().GetOrCreateRace(gomock.Any(), gomock.Any(), raceParams).Return(raceRepository.RaceView{ID: 3}, nil)
		f.races.EXPECT().SaveResult(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("error"))
		f.pgx.ExpectRollback()

		_, err := f.service.SubmitCompletedTown(ctx, member(), req)

		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
		assert.NoError(t, f.pgx.ExpectationsWereMet())
	})

	t.Run("success", func(t *testing.T) {
		f := setup(t, &config.Config{Form: config.Form{ID: "test-form"}})

		f.querier.EXPECT().GetTownByID(gomock.Any(), gomock.Any(), int64(1)).Return(andover, nil)
		f.pgx.ExpectBegin()
		f.querier.EXPECT().MarkCompleted(gomock.Any(), gomock.Any(), int64(7), int64(1)).Return(true, nil)
		f.races.EXPECT().GetOrCreateRace(gomock.Any(), gomock.Any(), raceParams).Return(raceRepository.RaceView{ID: 3}, nil)
		f.races.EXPECT().SaveResult(gomock.Any(), gomock.Any(), raceRepository.SaveResultParams{
			UserID: 7,
			RaceID: 3,
			Notes:  pgtype.Text{String: "hilly", Valid: true},
		}).Return(nil)
		f.querier.EXPECT().ListCompletedTowns(gomock.Any(), gomock.Any(), int64(7)).
			Return(make([]repository.CompletedTown, 12), nil)
		f.pgx.ExpectCommit()
		f.pgx.ExpectRollback()

		res, err := f.service.SubmitCompletedTown(ctx, member(), req)

		require.NoError(t, err)
		assert.Equal(t, "https://docs.google.com/forms/d/e/test-form/formResponse", res.FormURL)
		assert.Equal(t, "Andover", res.Town)
		assert.InDelta(t, 3.1, res.Miles, 1e-9)
		assert.True(t, res.NewlyCompleted)
		assert.False(t, res.LastTown)
		assert.Equal(t, "42", res.Answers.Get("entry.1858653824"))
		assert.Equal(t, "Hop River 5K", res.Answers.Get("entry.1606581847"))
		assert.Equal(t, "05", res.Answers.Get("entry.1640631443_month"))
		assert.Equal(t, "No", res.Answers.Get("entry.809023255"))
	})

	t.Run("success: last town", func(t *testing.T) {
		f := setup(t, &config.Config{})

		f.querier.EXPECT().GetTownByID(gomock.Any(), gomock.Any(), int64(1)).Return(andover, nil)
		f.pgx.ExpectBegin()
		f.querier.EXPECT().MarkCompleted(gomock.Any(), gomock.Any(), int64(7), int64(1)).Return(true, nil)
		f.races.EXPECT().GetOrCreateRace(gomock.Any(), gomock.Any(), gomock.Any()).Return(raceRepository.RaceView{ID: 3}, nil)
		f.races.EXPECT().SaveResult(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.querier.EXPECT().ListCompletedTowns(gomock.Any(), gomock.Any(), int64(7)).
			Return(make([]repository.CompletedTown, 169), nil)
		f.pgx.ExpectCommit()
		f.pgx.ExpectRollback()

		res, err := f.service.SubmitCompletedTown(ctx, member(), req)

		require.NoError(t, err)
		assert.True(t, res.LastTown)
		assert.Equal(t, "Yes", res.Answers.Get("entry.809023255"))
	})
}
